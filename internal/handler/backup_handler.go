package handler

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/luuvisa/backend/internal/service"
)

// maxBackupSize caps the accepted import payload at 25 MB.
const maxBackupSize = 25 << 20

// BackupHandler exports and restores the full site dataset.
type BackupHandler struct {
	backup service.BackupService
}

// NewBackupHandler creates a BackupHandler.
func NewBackupHandler(backup service.BackupService) *BackupHandler {
	return &BackupHandler{backup: backup}
}

// Export handles GET /api/admin/backup. The response is a JSON envelope
// with one key per collection, served as a download.
func (h *BackupHandler) Export(w http.ResponseWriter, r *http.Request) {
	data, err := h.backup.Export(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "export_failed")
		return
	}
	filename := "luuvisa-backup-" + time.Now().UTC().Format("2006-01-02") + ".json"
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// Import handles POST /api/admin/backup. The body is a previously
// exported envelope.
func (h *BackupHandler) Import(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBackupSize))
	if err != nil {
		writeError(w, http.StatusBadRequest, "read_failed")
		return
	}

	err = h.backup.Import(r.Context(), data)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]string{"ok": "true"})
	case errors.Is(err, service.ErrInvalidFormat):
		writeError(w, http.StatusBadRequest, "invalid_format")
	case errors.Is(err, service.ErrMissingRequiredData):
		writeError(w, http.StatusBadRequest, "missing_required_data")
	default:
		var partial *service.PartialRestoreError
		if errors.As(err, &partial) {
			writeJSON(w, http.StatusInternalServerError, map[string]any{
				"error":      "partial_restore",
				"collection": partial.Collection,
				"written":    partial.Written,
			})
			return
		}
		writeError(w, http.StatusInternalServerError, "import_failed")
	}
}
