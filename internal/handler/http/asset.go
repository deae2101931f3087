package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/officeflow/officeflow-backend-go/internal/domain/asset"
	"github.com/officeflow/officeflow-backend-go/internal/handler/http/response"
	assetService "github.com/officeflow/officeflow-backend-go/internal/service/asset"
)

type AssetHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Assign(w http.ResponseWriter, r *http.Request)
	Unassign(w http.ResponseWriter, r *http.Request)
	AddMaintenance(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	Maintenance(w http.ResponseWriter, r *http.Request)
}

type AssetHandlerImpl struct {
	assetService *assetService.Service
}

func NewAssetHandler(svc *assetService.Service) AssetHandler {
	return &AssetHandlerImpl{assetService: svc}
}

// List implements AssetHandler. Every asset row carries its current
// depreciated value.
func (h *AssetHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrFail(w, r)
	if !ok {
		return
	}

	assets, err := h.assetService.List(sess)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, assets)
}

// Create implements AssetHandler.
func (h *AssetHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrFail(w, r)
	if !ok {
		return
	}

	var req asset.CreateAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create asset decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	id, err := h.assetService.Create(r.Context(), sess, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Asset created successfully", map[string]string{"id": id})
}

// Update implements AssetHandler.
func (h *AssetHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrFail(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Asset ID is required", nil)
		return
	}

	var req asset.UpdateAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update asset decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.assetService.Update(r.Context(), sess, id, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Asset updated successfully", nil)
}

// Assign implements AssetHandler.
func (h *AssetHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrFail(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Asset ID is required", nil)
		return
	}

	var req asset.AssignAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Assign asset decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.assetService.Assign(r.Context(), sess, id, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Asset assigned successfully", nil)
}

// Unassign implements AssetHandler.
func (h *AssetHandlerImpl) Unassign(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrFail(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Asset ID is required", nil)
		return
	}

	if err := h.assetService.Unassign(r.Context(), sess, id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Asset unassigned successfully", nil)
}

// AddMaintenance implements AssetHandler.
func (h *AssetHandlerImpl) AddMaintenance(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrFail(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Asset ID is required", nil)
		return
	}

	var req asset.AddMaintenanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Add maintenance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	recordID, err := h.assetService.AddMaintenance(r.Context(), sess, id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Maintenance record added successfully", map[string]string{"id": recordID})
}

// History implements AssetHandler.
func (h *AssetHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrFail(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Asset ID is required", nil)
		return
	}

	history, err := h.assetService.History(sess, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, history)
}

// Maintenance implements AssetHandler.
func (h *AssetHandlerImpl) Maintenance(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionOrFail(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Asset ID is required", nil)
		return
	}

	records, err := h.assetService.Maintenance(sess, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}
