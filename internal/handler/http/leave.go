package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/officeflow/officeflow-backend-go/internal/domain/leave"
	"github.com/officeflow/officeflow-backend-go/internal/handler/http/response"
	leaveService "github.com/officeflow/officeflow-backend-go/internal/service/leave"
)

type LeaveHandler interface {
	CreateRequest(w http.ResponseWriter, r *http.Request)
	GetMyRequests(w http.ResponseWriter, r *http.Request)
	ListApprovals(w http.ResponseWriter, r *http.Request)
	DecideRequest(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService *leaveService.Service
}

func NewLeaveHandler(svc *leaveService.Service) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: svc}
}

// CreateRequest implements LeaveHandler. The requester identity comes
// from the session, never the payload.
func (h *LeaveHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrFail(w, r)
	if !ok {
		return
	}

	var req leave.CreateRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create leave request decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	id, err := h.leaveService.Create(r.Context(), sess, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted successfully", map[string]string{"id": id})
}

// GetMyRequests implements LeaveHandler.
func (h *LeaveHandlerImpl) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrFail(w, r)
	if !ok {
		return
	}

	response.Success(w, h.leaveService.MyRequests(sess))
}

// ListApprovals implements LeaveHandler. Returns the pending requests
// the session may decide.
func (h *LeaveHandlerImpl) ListApprovals(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrFail(w, r)
	if !ok {
		return
	}

	response.Success(w, h.leaveService.PendingApprovals(sess))
}

// DecideRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) DecideRequest(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrFail(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	var req leave.DecideRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Decide leave request decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.leaveService.Decide(r.Context(), sess, id, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request decided successfully", nil)
}
