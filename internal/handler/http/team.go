package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/officeflow/officeflow-backend-go/internal/domain/team"
	"github.com/officeflow/officeflow-backend-go/internal/handler/http/response"
	teamService "github.com/officeflow/officeflow-backend-go/internal/service/team"
)

type TeamHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	AddMember(w http.ResponseWriter, r *http.Request)
	RemoveMember(w http.ResponseWriter, r *http.Request)
}

type TeamHandlerImpl struct {
	teamService *teamService.Service
}

func NewTeamHandler(svc *teamService.Service) TeamHandler {
	return &TeamHandlerImpl{teamService: svc}
}

// List implements TeamHandler.
func (h *TeamHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrFail(w, r)
	if !ok {
		return
	}

	response.Success(w, h.teamService.List(sess))
}

// Create implements TeamHandler.
func (h *TeamHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrFail(w, r)
	if !ok {
		return
	}

	var req team.CreateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create team decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	id, err := h.teamService.Create(r.Context(), sess, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Team created successfully", map[string]string{"id": id})
}

// Delete implements TeamHandler.
func (h *TeamHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrFail(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Team ID is required", nil)
		return
	}

	var req team.DeleteTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Delete team decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.teamService.Delete(r.Context(), sess, id, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Team deleted successfully", nil)
}

// AddMember implements TeamHandler.
func (h *TeamHandlerImpl) AddMember(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrFail(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Team ID is required", nil)
		return
	}

	var req team.MemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Add team member decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.teamService.AddMember(r.Context(), sess, id, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Member added successfully", nil)
}

// RemoveMember implements TeamHandler.
func (h *TeamHandlerImpl) RemoveMember(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrFail(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Team ID is required", nil)
		return
	}

	var req team.MemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Remove team member decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.teamService.RemoveMember(r.Context(), sess, id, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Member removed successfully", nil)
}
