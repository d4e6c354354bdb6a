package handler

import (
	"encoding/json"
	"net/http"

	"github.com/luuvisa/backend/internal/model"
	"github.com/luuvisa/backend/internal/service"
)

// HeroHandler handles public and admin routes for the hero carousel.
type HeroHandler struct {
	hero service.HeroService
}

// NewHeroHandler creates a HeroHandler.
func NewHeroHandler(hero service.HeroService) *HeroHandler {
	return &HeroHandler{hero: hero}
}

type heroRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

func (r heroRequest) input() service.HeroImageInput {
	return service.HeroImageInput{Title: r.Title, Description: r.Description, Image: r.Image}
}

// PublicList handles GET /api/hero-images. Only active slides are visible.
func (h *HeroHandler) PublicList(w http.ResponseWriter, r *http.Request) {
	images, err := h.hero.List(r.Context(), model.StatusActive)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list_failed")
		return
	}
	if images == nil {
		images = []model.HeroImage{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"hero_images": images})
}

// AdminList handles GET /api/admin/hero-images?status=active|trash|all.
func (h *HeroHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	images, err := h.hero.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list_failed")
		return
	}
	if images == nil {
		images = []model.HeroImage{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"hero_images": images})
}

// Create handles POST /api/admin/hero-images.
func (h *HeroHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req heroRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	img, err := h.hero.Create(r.Context(), req.input())
	if err != nil {
		serviceError(w, err, "create_failed")
		return
	}
	writeJSON(w, http.StatusCreated, img)
}

// Update handles PUT /api/admin/hero-images/{id}.
func (h *HeroHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req heroRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	img, err := h.hero.Update(r.Context(), r.PathValue("id"), req.input())
	if err != nil {
		serviceError(w, err, "update_failed")
		return
	}
	writeJSON(w, http.StatusOK, img)
}

// Trash handles DELETE /api/admin/hero-images/{id} (soft delete).
func (h *HeroHandler) Trash(w http.ResponseWriter, r *http.Request) {
	if err := h.hero.Trash(r.Context(), r.PathValue("id")); err != nil {
		serviceError(w, err, "trash_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"ok": "true"})
}

// Restore handles POST /api/admin/hero-images/{id}/restore.
func (h *HeroHandler) Restore(w http.ResponseWriter, r *http.Request) {
	if err := h.hero.Restore(r.Context(), r.PathValue("id")); err != nil {
		serviceError(w, err, "restore_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"ok": "true"})
}

// Purge handles DELETE /api/admin/hero-images/{id}/purge (permanent).
func (h *HeroHandler) Purge(w http.ResponseWriter, r *http.Request) {
	if err := h.hero.Purge(r.Context(), r.PathValue("id")); err != nil {
		serviceError(w, err, "purge_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"ok": "true"})
}

// RestoreAll handles POST /api/admin/hero-images/restore-all.
func (h *HeroHandler) RestoreAll(w http.ResponseWriter, r *http.Request) {
	count, err := h.hero.RestoreAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "restore_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"restored": count})
}
