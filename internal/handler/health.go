package handler

import "net/http"

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if h.ping != nil {
		if err := h.ping(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, healthResponse{
				Status:  "unhealthy",
				Message: err.Error(),
			})
			return
		}
	}
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Message: "LUU Visa Consultant API",
	})
}
