package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/luuvisa/backend/internal/model"
	"github.com/luuvisa/backend/internal/service"
)

const maxMessageLength = 5000

// InboxHandler handles the public contact form and the admin inbox.
type InboxHandler struct {
	inbox service.InboxService
}

// NewInboxHandler creates an InboxHandler.
func NewInboxHandler(inbox service.InboxService) *InboxHandler {
	return &InboxHandler{inbox: inbox}
}

// submitRequest is the expected JSON body for POST /api/contact.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Submit handles POST /api/contact.
// email and message are required; name and subject are optional;
// message max 5000 chars.
func (h *InboxHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	if len([]rune(req.Message)) > maxMessageLength {
		writeError(w, http.StatusBadRequest, "message_too_long")
		return
	}

	_, err := h.inbox.Submit(r.Context(), service.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		serviceError(w, err, "submit_failed")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"ok": "true"})
}

// inboxListResponse is the JSON response for GET /api/admin/emails.
type inboxListResponse struct {
	Emails []model.Email `json:"emails"`
}

// List handles GET /api/admin/emails.
// Supports query params: status (active/trash/all), q, limit, offset.
func (h *InboxHandler) List(w http.ResponseWriter, r *http.Request) {
	opts := model.EmailListOptions{
		Status: r.URL.Query().Get("status"),
		Query:  r.URL.Query().Get("q"),
		Limit:  20,
		Offset: 0,
	}

	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 100 {
			opts.Limit = n
		}
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if n, err := strconv.Atoi(o); err == nil && n >= 0 {
			opts.Offset = n
		}
	}

	emails, err := h.inbox.List(r.Context(), opts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list_failed")
		return
	}
	if emails == nil {
		emails = []model.Email{}
	}
	writeJSON(w, http.StatusOK, inboxListResponse{Emails: emails})
}

// Get handles GET /api/admin/emails/{id}.
func (h *InboxHandler) Get(w http.ResponseWriter, r *http.Request) {
	m, err := h.inbox.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		serviceError(w, err, "get_failed")
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// MarkRead handles PATCH /api/admin/emails/{id}/read.
func (h *InboxHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Read bool `json:"read"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if err := h.inbox.MarkRead(r.Context(), r.PathValue("id"), req.Read); err != nil {
		serviceError(w, err, "update_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"ok": "true"})
}

// ToggleFavorite handles POST /api/admin/emails/{id}/favorite.
func (h *InboxHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	m, err := h.inbox.ToggleFavorite(r.Context(), r.PathValue("id"))
	if err != nil {
		serviceError(w, err, "update_failed")
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// Trash handles DELETE /api/admin/emails/{id}.
func (h *InboxHandler) Trash(w http.ResponseWriter, r *http.Request) {
	if err := h.inbox.Trash(r.Context(), r.PathValue("id")); err != nil {
		serviceError(w, err, "trash_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"ok": "true"})
}

// Restore handles POST /api/admin/emails/{id}/restore.
func (h *InboxHandler) Restore(w http.ResponseWriter, r *http.Request) {
	if err := h.inbox.Restore(r.Context(), r.PathValue("id")); err != nil {
		serviceError(w, err, "restore_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"ok": "true"})
}

// Purge handles DELETE /api/admin/emails/{id}/purge.
func (h *InboxHandler) Purge(w http.ResponseWriter, r *http.Request) {
	if err := h.inbox.Purge(r.Context(), r.PathValue("id")); err != nil {
		serviceError(w, err, "purge_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"ok": "true"})
}

// RestoreAll handles POST /api/admin/emails/restore-all.
func (h *InboxHandler) RestoreAll(w http.ResponseWriter, r *http.Request) {
	count, err := h.inbox.RestoreAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "restore_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"restored": count})
}
