package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/luuvisa/backend/internal/repository"
	"github.com/luuvisa/backend/internal/service"
)

// Handler carries cross-cutting HTTP concerns (CORS, health).
type Handler struct {
	frontendURL string
	ping        func(ctx context.Context) error
}

// New creates a Handler. ping may be nil when the backing store has no
// connectivity to check (file engine).
func New(frontendURL string, ping func(ctx context.Context) error) *Handler {
	return &Handler{frontendURL: frontendURL, ping: ping}
}

// CORS allows the public site origin to call the API with credentials.
func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", h.frontendURL)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// writeJSON writes v with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes the standard error body {"error": code}.
func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}

// serviceError maps service-layer failures onto HTTP responses: rejected
// input becomes a 400 with the validation code, missing records a 404,
// anything else the given fallback code with a 500.
func serviceError(w http.ResponseWriter, err error, fallback string) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, ve.Code)
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
	default:
		writeError(w, http.StatusInternalServerError, fallback)
	}
}
