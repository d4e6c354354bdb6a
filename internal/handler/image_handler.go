package handler

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/luuvisa/backend/internal/storage"
)

// maxImageSize caps decoded uploads at 2 MB.
const maxImageSize = 2 << 20

// ImageHandler stores uploaded images and returns their public URL.
type ImageHandler struct {
	store storage.Storage
}

// NewImageHandler creates an ImageHandler. store may be nil; uploads then
// pass through as inline data URIs instead of being stored.
func NewImageHandler(store storage.Storage) *ImageHandler {
	return &ImageHandler{store: store}
}

type uploadRequest struct {
	// Data is a base64 data URI ("data:image/png;base64,...").
	Data string `json:"data"`
	// Filename is an optional hint; only used for the audit trail.
	Filename string `json:"filename"`
}

// Upload handles POST /api/admin/images.
func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	var req uploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if req.Data == "" {
		writeError(w, http.StatusBadRequest, "data_required")
		return
	}

	contentType, data, err := storage.ParseDataURI(req.Data)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_data_uri")
		return
	}
	ext, ok := storage.Extension(contentType)
	if !ok {
		writeError(w, http.StatusBadRequest, "unsupported_type")
		return
	}
	if len(data) > maxImageSize {
		writeError(w, http.StatusBadRequest, "image_too_large")
		return
	}

	// No store configured: the data URI itself is the URL. The frontend
	// embeds it directly.
	if h.store == nil {
		writeJSON(w, http.StatusOK, map[string]string{"url": req.Data})
		return
	}

	key := "images/" + uuid.NewString() + ext
	url, err := h.store.Save(r.Context(), key, bytes.NewReader(data), contentType)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "upload_failed")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"url": url, "key": key})
}
