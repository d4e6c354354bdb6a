package handler

import (
	"encoding/json"
	"net/http"

	"github.com/luuvisa/backend/internal/model"
	"github.com/luuvisa/backend/internal/service"
)

// ClientHandler handles admin client routes.
type ClientHandler struct {
	clients service.ClientService
	ledger  service.LedgerService
}

// NewClientHandler creates a ClientHandler. The ledger service backs the
// per-client statement view.
func NewClientHandler(clients service.ClientService, ledger service.LedgerService) *ClientHandler {
	return &ClientHandler{clients: clients, ledger: ledger}
}

type clientRequest struct {
	Name string `json:"name"`
}

// List handles GET /api/admin/clients?status=active|trash|all.
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clients.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list_failed")
		return
	}
	if clients == nil {
		clients = []model.Client{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"clients": clients})
}

// Create handles POST /api/admin/clients.
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	c, err := h.clients.Create(r.Context(), req.Name)
	if err != nil {
		serviceError(w, err, "create_failed")
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// Rename handles PUT /api/admin/clients/{id}.
func (h *ClientHandler) Rename(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	c, err := h.clients.Rename(r.Context(), r.PathValue("id"), req.Name)
	if err != nil {
		serviceError(w, err, "rename_failed")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// Statement handles GET /api/admin/clients/{id}/statement.
func (h *ClientHandler) Statement(w http.ResponseWriter, r *http.Request) {
	st, err := h.ledger.Statement(r.Context(), r.PathValue("id"))
	if err != nil {
		serviceError(w, err, "statement_failed")
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// Trash handles DELETE /api/admin/clients/{id} (soft delete).
func (h *ClientHandler) Trash(w http.ResponseWriter, r *http.Request) {
	if err := h.clients.Trash(r.Context(), r.PathValue("id")); err != nil {
		serviceError(w, err, "trash_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"ok": "true"})
}

// Restore handles POST /api/admin/clients/{id}/restore.
func (h *ClientHandler) Restore(w http.ResponseWriter, r *http.Request) {
	if err := h.clients.Restore(r.Context(), r.PathValue("id")); err != nil {
		serviceError(w, err, "restore_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"ok": "true"})
}

// Purge handles DELETE /api/admin/clients/{id}/purge (permanent).
func (h *ClientHandler) Purge(w http.ResponseWriter, r *http.Request) {
	if err := h.clients.Purge(r.Context(), r.PathValue("id")); err != nil {
		serviceError(w, err, "purge_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"ok": "true"})
}

// RestoreAll handles POST /api/admin/clients/restore-all.
func (h *ClientHandler) RestoreAll(w http.ResponseWriter, r *http.Request) {
	count, err := h.clients.RestoreAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "restore_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"restored": count})
}
