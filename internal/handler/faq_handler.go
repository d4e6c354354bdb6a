package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/luuvisa/backend/internal/service"
)

const maxQuestionLength = 500

// FAQHandler answers visitor questions via the assistant service.
type FAQHandler struct {
	faq service.FAQService
}

// NewFAQHandler creates a FAQHandler.
func NewFAQHandler(faq service.FAQService) *FAQHandler {
	return &FAQHandler{faq: faq}
}

// Ask handles POST /api/faq.
func (h *FAQHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Question string `json:"question"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	question := strings.TrimSpace(req.Question)
	if question == "" {
		writeError(w, http.StatusBadRequest, "question_required")
		return
	}
	if len([]rune(question)) > maxQuestionLength {
		writeError(w, http.StatusBadRequest, "question_too_long")
		return
	}

	answer, err := h.faq.Answer(r.Context(), question)
	if err != nil {
		if errors.Is(err, service.ErrAssistantUnavailable) {
			writeError(w, http.StatusServiceUnavailable, "assistant_unavailable")
			return
		}
		writeError(w, http.StatusInternalServerError, "answer_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"answer": answer})
}
