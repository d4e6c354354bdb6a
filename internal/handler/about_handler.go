package handler

import (
	"encoding/json"
	"net/http"

	"github.com/luuvisa/backend/internal/model"
	"github.com/luuvisa/backend/internal/service"
)

// AboutHandler handles the singleton about section.
type AboutHandler struct {
	about service.AboutService
}

// NewAboutHandler creates an AboutHandler.
func NewAboutHandler(about service.AboutService) *AboutHandler {
	return &AboutHandler{about: about}
}

// Get handles GET /api/about.
func (h *AboutHandler) Get(w http.ResponseWriter, r *http.Request) {
	content, err := h.about.Get(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "get_failed")
		return
	}
	writeJSON(w, http.StatusOK, content)
}

// Update handles PUT /api/admin/about.
func (h *AboutHandler) Update(w http.ResponseWriter, r *http.Request) {
	var content model.AboutContent
	if err := json.NewDecoder(r.Body).Decode(&content); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if err := h.about.Update(r.Context(), content); err != nil {
		serviceError(w, err, "update_failed")
		return
	}
	writeJSON(w, http.StatusOK, content)
}
