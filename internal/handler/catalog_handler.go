package handler

import (
	"encoding/json"
	"net/http"

	"github.com/luuvisa/backend/internal/model"
	"github.com/luuvisa/backend/internal/service"
)

// CatalogHandler handles public and admin routes for the service catalog.
type CatalogHandler struct {
	catalog service.CatalogService
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(catalog service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

type serviceRequest struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	LongDescription string   `json:"long_description"`
	Requirements    []string `json:"requirements"`
	Image           string   `json:"image"`
	Icon            string   `json:"icon"`
}

func (r serviceRequest) input() service.ServiceInput {
	return service.ServiceInput{
		Title:           r.Title,
		Description:     r.Description,
		LongDescription: r.LongDescription,
		Requirements:    r.Requirements,
		Image:           r.Image,
		Icon:            r.Icon,
	}
}

// PublicList handles GET /api/services. Only active services are visible.
func (h *CatalogHandler) PublicList(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalog.List(r.Context(), model.StatusActive)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list_failed")
		return
	}
	if services == nil {
		services = []model.Service{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"services": services})
}

// Get handles GET /api/services/{id}.
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	svc, err := h.catalog.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		serviceError(w, err, "get_failed")
		return
	}
	writeJSON(w, http.StatusOK, svc)
}

// AdminList handles GET /api/admin/services?status=active|trash|all.
func (h *CatalogHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalog.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list_failed")
		return
	}
	if services == nil {
		services = []model.Service{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"services": services})
}

// Create handles POST /api/admin/services.
func (h *CatalogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req serviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	svc, err := h.catalog.Create(r.Context(), req.input())
	if err != nil {
		serviceError(w, err, "create_failed")
		return
	}
	writeJSON(w, http.StatusCreated, svc)
}

// Update handles PUT /api/admin/services/{id}.
func (h *CatalogHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req serviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	svc, err := h.catalog.Update(r.Context(), r.PathValue("id"), req.input())
	if err != nil {
		serviceError(w, err, "update_failed")
		return
	}
	writeJSON(w, http.StatusOK, svc)
}

// Trash handles DELETE /api/admin/services/{id} (soft delete).
func (h *CatalogHandler) Trash(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.Trash(r.Context(), r.PathValue("id")); err != nil {
		serviceError(w, err, "trash_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"ok": "true"})
}

// Restore handles POST /api/admin/services/{id}/restore.
func (h *CatalogHandler) Restore(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.Restore(r.Context(), r.PathValue("id")); err != nil {
		serviceError(w, err, "restore_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"ok": "true"})
}

// Purge handles DELETE /api/admin/services/{id}/purge (permanent).
func (h *CatalogHandler) Purge(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.Purge(r.Context(), r.PathValue("id")); err != nil {
		serviceError(w, err, "purge_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"ok": "true"})
}

// RestoreAll handles POST /api/admin/services/restore-all.
func (h *CatalogHandler) RestoreAll(w http.ResponseWriter, r *http.Request) {
	count, err := h.catalog.RestoreAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "restore_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"restored": count})
}
