package http

import (
	"net/http"

	"github.com/officeflow/officeflow-backend-go/internal/handler/http/response"
	dashboardService "github.com/officeflow/officeflow-backend-go/internal/service/dashboard"
)

type DashboardHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService *dashboardService.Service
}

func NewDashboardHandler(svc *dashboardService.Service) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: svc}
}

// Get returns the dashboard shaped for the session's role.
func (h *DashboardHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrFail(w, r)
	if !ok {
		return
	}

	response.Success(w, h.dashboardService.ForSession(sess))
}
