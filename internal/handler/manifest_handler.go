package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/luuvisa/backend/internal/model"
	"github.com/luuvisa/backend/internal/service"
)

// ManifestHandler handles admin routes for the financial manifest and
// opening balances.
type ManifestHandler struct {
	ledger service.LedgerService
}

// NewManifestHandler creates a ManifestHandler.
func NewManifestHandler(ledger service.LedgerService) *ManifestHandler {
	return &ManifestHandler{ledger: ledger}
}

type entryRequest struct {
	ClientID    string `json:"client_id"`
	Date        string `json:"date"` // RFC 3339 or YYYY-MM-DD
	Description string `json:"description"`
	Type        string `json:"type"`
	Amount      int64  `json:"amount"`
}

func (r entryRequest) input() (service.EntryInput, bool) {
	date, err := time.Parse(time.RFC3339, r.Date)
	if err != nil {
		date, err = time.Parse("2006-01-02", r.Date)
		if err != nil {
			return service.EntryInput{}, false
		}
	}
	return service.EntryInput{
		ClientID:    r.ClientID,
		Date:        date,
		Description: r.Description,
		Type:        r.Type,
		Amount:      r.Amount,
	}, true
}

// List handles GET /api/admin/manifest?status=active|inactive|all.
func (h *ManifestHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.ledger.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list_failed")
		return
	}
	if entries == nil {
		entries = []model.ManifestEntry{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"entries": entries})
}

// Create handles POST /api/admin/manifest.
func (h *ManifestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	in, ok := req.input()
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_date")
		return
	}
	e, err := h.ledger.Add(r.Context(), in)
	if err != nil {
		serviceError(w, err, "create_failed")
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

// Update handles PUT /api/admin/manifest/{id}.
func (h *ManifestHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	in, ok := req.input()
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_date")
		return
	}
	e, err := h.ledger.Update(r.Context(), r.PathValue("id"), in)
	if err != nil {
		serviceError(w, err, "update_failed")
		return
	}
	writeJSON(w, http.StatusOK, e)
}

// PatchStatus handles PATCH /api/admin/manifest/{id}/status.
func (h *ManifestHandler) PatchStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if err := h.ledger.SetStatus(r.Context(), r.PathValue("id"), req.Status); err != nil {
		serviceError(w, err, "status_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"ok": "true"})
}

// Delete handles DELETE /api/admin/manifest/{id}. Permanent.
func (h *ManifestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.ledger.Delete(r.Context(), r.PathValue("id")); err != nil {
		serviceError(w, err, "delete_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"ok": "true"})
}

// Summary handles GET /api/admin/manifest/summary.
func (h *ManifestHandler) Summary(w http.ResponseWriter, r *http.Request) {
	s, err := h.ledger.Summary(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "summary_failed")
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// Series handles GET /api/admin/manifest/series.
func (h *ManifestHandler) Series(w http.ResponseWriter, r *http.Request) {
	points, err := h.ledger.Series(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "series_failed")
		return
	}
	if points == nil {
		points = []model.SeriesPoint{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"series": points})
}

// CloseOut handles POST /api/admin/manifest/close-out.
func (h *ManifestHandler) CloseOut(w http.ResponseWriter, r *http.Request) {
	count, err := h.ledger.CloseOut(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "close_out_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"closed": count})
}

// Flush handles DELETE /api/admin/manifest. Destructive and irreversible;
// the caller must pass ?confirm=true.
func (h *ManifestHandler) Flush(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("confirm") != "true" {
		writeError(w, http.StatusBadRequest, "confirmation_required")
		return
	}
	if err := h.ledger.Flush(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "flush_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"ok": "true"})
}

type balanceRequest struct {
	Amount int64  `json:"amount"`
	Type   string `json:"type"`
}

// ListBalances handles GET /api/admin/balances.
func (h *ManifestHandler) ListBalances(w http.ResponseWriter, r *http.Request) {
	balances, err := h.ledger.ListOpeningBalances(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list_failed")
		return
	}
	if balances == nil {
		balances = []model.ClientBalance{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"balances": balances})
}

// PutBalance handles PUT /api/admin/balances/{clientId} (upsert).
func (h *ManifestHandler) PutBalance(w http.ResponseWriter, r *http.Request) {
	var req balanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	b, err := h.ledger.SetOpeningBalance(r.Context(), r.PathValue("clientId"), req.Amount, req.Type)
	if err != nil {
		serviceError(w, err, "balance_failed")
		return
	}
	writeJSON(w, http.StatusOK, b)
}

// DeleteBalance handles DELETE /api/admin/balances/{clientId}.
func (h *ManifestHandler) DeleteBalance(w http.ResponseWriter, r *http.Request) {
	if err := h.ledger.DeleteOpeningBalance(r.Context(), r.PathValue("clientId")); err != nil {
		serviceError(w, err, "delete_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"ok": "true"})
}
