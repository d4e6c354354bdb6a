package handler

import (
	"net/http"

	"github.com/luuvisa/backend/internal/model"
	"github.com/luuvisa/backend/internal/service"
)

// LogHandler exposes the administrative audit trail.
type LogHandler struct {
	audit service.AuditService
}

// NewLogHandler creates a LogHandler.
func NewLogHandler(audit service.AuditService) *LogHandler {
	return &LogHandler{audit: audit}
}

// List handles GET /api/admin/logs. Newest first.
func (h *LogHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.audit.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list_failed")
		return
	}
	if entries == nil {
		entries = []model.LogEntry{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"logs": entries})
}

// Clear handles DELETE /api/admin/logs.
func (h *LogHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.audit.Clear(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "clear_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"ok": "true"})
}
