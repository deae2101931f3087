package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/officeflow/officeflow-backend-go/internal/handler/http/response"
	announcementService "github.com/officeflow/officeflow-backend-go/internal/service/announcement"
)

type AnnouncementHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Post(w http.ResponseWriter, r *http.Request)
}

type AnnouncementHandlerImpl struct {
	announcementService *announcementService.Service
}

func NewAnnouncementHandler(svc *announcementService.Service) AnnouncementHandler {
	return &AnnouncementHandlerImpl{announcementService: svc}
}

// List implements AnnouncementHandler.
func (h *AnnouncementHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrFail(w, r)
	if !ok {
		return
	}

	response.Success(w, h.announcementService.List(sess))
}

// Post implements AnnouncementHandler. Author and date come from the
// session and server clock.
func (h *AnnouncementHandlerImpl) Post(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrFail(w, r)
	if !ok {
		return
	}

	var req announcementService.PostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Post announcement decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	id, err := h.announcementService.Post(r.Context(), sess, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Announcement posted successfully", map[string]string{"id": id})
}
