package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/officeflow/officeflow-backend-go/internal/domain/project"
	"github.com/officeflow/officeflow-backend-go/internal/handler/http/response"
	projectService "github.com/officeflow/officeflow-backend-go/internal/service/project"
)

type ProjectHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ProjectHandlerImpl struct {
	projectService *projectService.Service
}

func NewProjectHandler(svc *projectService.Service) ProjectHandler {
	return &ProjectHandlerImpl{projectService: svc}
}

// List implements ProjectHandler. The result is already scoped to the
// session's visibility.
func (h *ProjectHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrFail(w, r)
	if !ok {
		return
	}

	response.Success(w, h.projectService.List(sess))
}

// Create implements ProjectHandler.
func (h *ProjectHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrFail(w, r)
	if !ok {
		return
	}

	var req project.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create project decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	id, err := h.projectService.Create(r.Context(), sess, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Project created successfully", map[string]string{"id": id})
}

// Update implements ProjectHandler.
func (h *ProjectHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrFail(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Project ID is required", nil)
		return
	}

	var req project.UpdateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update project decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.projectService.Update(r.Context(), sess, id, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Project updated successfully", nil)
}

// UpdateStatus implements ProjectHandler.
func (h *ProjectHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrFail(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Project ID is required", nil)
		return
	}

	var req project.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update project status decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.projectService.UpdateStatus(r.Context(), sess, id, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Project status updated successfully", nil)
}

// Delete implements ProjectHandler.
func (h *ProjectHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrFail(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Project ID is required", nil)
		return
	}

	var req project.DeleteProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Delete project decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.projectService.Delete(r.Context(), sess, id, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Project deleted successfully", nil)
}
