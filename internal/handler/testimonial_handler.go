package handler

import (
	"encoding/json"
	"net/http"

	"github.com/luuvisa/backend/internal/model"
	"github.com/luuvisa/backend/internal/service"
)

// TestimonialHandler handles public and admin testimonial routes.
type TestimonialHandler struct {
	testimonials service.TestimonialService
}

// NewTestimonialHandler creates a TestimonialHandler.
func NewTestimonialHandler(testimonials service.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{testimonials: testimonials}
}

type testimonialRequest struct {
	Name        string `json:"name"`
	Destination string `json:"destination"`
	Testimonial string `json:"testimonial"`
	Image       string `json:"image"`
	Role        string `json:"role"`
	Country     string `json:"country"`
}

func (r testimonialRequest) input() service.TestimonialInput {
	return service.TestimonialInput{
		Name:        r.Name,
		Destination: r.Destination,
		Testimonial: r.Testimonial,
		Image:       r.Image,
		Role:        r.Role,
		Country:     r.Country,
	}
}

// List handles GET /api/testimonials (public) and GET /api/admin/testimonials.
func (h *TestimonialHandler) List(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.testimonials.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list_failed")
		return
	}
	if testimonials == nil {
		testimonials = []model.Testimonial{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"testimonials": testimonials})
}

// Create handles POST /api/admin/testimonials.
func (h *TestimonialHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req testimonialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	t, err := h.testimonials.Create(r.Context(), req.input())
	if err != nil {
		serviceError(w, err, "create_failed")
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

// Update handles PUT /api/admin/testimonials/{id}.
func (h *TestimonialHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req testimonialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	t, err := h.testimonials.Update(r.Context(), r.PathValue("id"), req.input())
	if err != nil {
		serviceError(w, err, "update_failed")
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// Delete handles DELETE /api/admin/testimonials/{id}. Permanent; there is
// no trash state for testimonials.
func (h *TestimonialHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.testimonials.Delete(r.Context(), r.PathValue("id")); err != nil {
		serviceError(w, err, "delete_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"ok": "true"})
}
