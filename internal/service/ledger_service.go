package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/luuvisa/backend/internal/model"
	"github.com/luuvisa/backend/internal/repository"
)

// EntryInput carries the editable fields of a manifest entry.
type EntryInput struct {
	ClientID    string
	Date        time.Time
	Description string
	Type        string
	Amount      int64
}

// Summary holds ledger totals over the active entries.
type Summary struct {
	Totals  model.EntryTotals `json:"totals"`
	Balance int64             `json:"balance"`
	Count   int               `json:"count"`
}

// Statement is the per-client view: opening balance, totals over the
// client's active entries and the chronological running series.
type Statement struct {
	Client  model.Client         `json:"client"`
	Opening *model.ClientBalance `json:"opening,omitempty"`
	Totals  model.EntryTotals    `json:"totals"`
	Balance int64                `json:"balance"`
	Series  []model.SeriesPoint  `json:"series"`
}

// LedgerService provides business logic for the financial manifest.
type LedgerService interface {
	List(ctx context.Context, status string) ([]model.ManifestEntry, error)
	Get(ctx context.Context, id string) (model.ManifestEntry, error)
	Add(ctx context.Context, in EntryInput) (model.ManifestEntry, error)
	Update(ctx context.Context, id string, in EntryInput) (model.ManifestEntry, error)

	// SetStatus toggles an entry between active and inactive. Inactive
	// entries are excluded from totals but stay in storage.
	SetStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error

	Summary(ctx context.Context) (Summary, error)
	Series(ctx context.Context) ([]model.SeriesPoint, error)
	Statement(ctx context.Context, clientID string) (Statement, error)

	ListOpeningBalances(ctx context.Context) ([]model.ClientBalance, error)
	SetOpeningBalance(ctx context.Context, clientID string, amount int64, typ string) (model.ClientBalance, error)
	DeleteOpeningBalance(ctx context.Context, clientID string) error

	// CloseOut ends the current accounting period: every active entry
	// becomes inactive. Returns the number of entries closed.
	CloseOut(ctx context.Context) (int, error)

	// Flush permanently deletes all manifest entries. The handler layer
	// is expected to gate this behind an explicit confirmation.
	Flush(ctx context.Context) error
}

type ledgerService struct {
	manifest repository.ManifestRepository
	balances repository.BalanceRepository
	clients  repository.ClientRepository
	audit    Recorder
}

// NewLedgerService creates a LedgerService over the manifest, balance and
// client repositories.
func NewLedgerService(manifest repository.ManifestRepository, balances repository.BalanceRepository, clients repository.ClientRepository, audit Recorder) LedgerService {
	return &ledgerService{manifest: manifest, balances: balances, clients: clients, audit: audit}
}

// Totals sums amounts grouped by entry type. Callers pass entries already
// filtered to the status they care about.
func Totals(entries []model.ManifestEntry) model.EntryTotals {
	var t model.EntryTotals
	for i := range entries {
		if entries[i].Type == model.EntryDebit {
			t.Debit += entries[i].Amount
		} else {
			t.Credit += entries[i].Amount
		}
	}
	return t
}

// RunningSeries folds entries into a running-balance series. Entries must
// be in chronological (ascending date) order; the balance accumulates the
// signed amount across the sequence.
func RunningSeries(entries []model.ManifestEntry) []model.SeriesPoint {
	points := make([]model.SeriesPoint, 0, len(entries))
	var balance int64
	for i := range entries {
		e := &entries[i]
		balance += e.Signed()
		p := model.SeriesPoint{Date: e.Date, Balance: balance}
		if e.Type == model.EntryDebit {
			p.Debit = e.Amount
		} else {
			p.Credit = e.Amount
		}
		points = append(points, p)
	}
	return points
}

// reverse flips a newest-first listing into chronological order.
func reverse(entries []model.ManifestEntry) []model.ManifestEntry {
	out := make([]model.ManifestEntry, len(entries))
	for i := range entries {
		out[len(entries)-1-i] = entries[i]
	}
	return out
}

func validateEntryInput(in EntryInput) error {
	if in.ClientID == "" {
		return invalid("client_required")
	}
	if in.Type != model.EntryCredit && in.Type != model.EntryDebit {
		return invalid("invalid_type")
	}
	if in.Amount <= 0 {
		return invalid("invalid_amount")
	}
	if in.Date.IsZero() {
		return invalid("date_required")
	}
	return nil
}

func (s *ledgerService) List(ctx context.Context, status string) ([]model.ManifestEntry, error) {
	return s.manifest.List(ctx, status)
}

func (s *ledgerService) Get(ctx context.Context, id string) (model.ManifestEntry, error) {
	return s.manifest.FindByID(ctx, id)
}

func (s *ledgerService) Add(ctx context.Context, in EntryInput) (model.ManifestEntry, error) {
	if err := validateEntryInput(in); err != nil {
		return model.ManifestEntry{}, err
	}
	client, err := s.clients.FindByID(ctx, in.ClientID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.ManifestEntry{}, invalid("unknown_client")
		}
		return model.ManifestEntry{}, err
	}

	now := time.Now().UTC()
	e := model.ManifestEntry{
		ID:          uuid.NewString(),
		ClientID:    client.ID,
		ClientName:  client.Name,
		Date:        in.Date,
		Description: in.Description,
		Type:        in.Type,
		Amount:      in.Amount,
		Status:      model.StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.manifest.Create(ctx, e); err != nil {
		return model.ManifestEntry{}, err
	}
	s.audit.Record(ctx, "manifest.add",
		fmt.Sprintf("%s %d for %s", e.Type, e.Amount, e.ClientName))
	return e, nil
}

func (s *ledgerService) Update(ctx context.Context, id string, in EntryInput) (model.ManifestEntry, error) {
	if err := validateEntryInput(in); err != nil {
		return model.ManifestEntry{}, err
	}
	e, err := s.manifest.FindByID(ctx, id)
	if err != nil {
		return model.ManifestEntry{}, err
	}
	if in.ClientID != e.ClientID {
		client, err := s.clients.FindByID(ctx, in.ClientID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return model.ManifestEntry{}, invalid("unknown_client")
			}
			return model.ManifestEntry{}, err
		}
		e.ClientID = client.ID
		e.ClientName = client.Name
	}
	e.Date = in.Date
	e.Description = in.Description
	e.Type = in.Type
	e.Amount = in.Amount
	e.UpdatedAt = time.Now().UTC()

	if err := s.manifest.Update(ctx, e); err != nil {
		return model.ManifestEntry{}, err
	}
	s.audit.Record(ctx, "manifest.update", e.ID)
	return e, nil
}

func (s *ledgerService) SetStatus(ctx context.Context, id, status string) error {
	if status != model.StatusActive && status != model.StatusInactive {
		return invalid("invalid_status")
	}
	if err := s.manifest.SetStatus(ctx, id, status); err != nil {
		return err
	}
	s.audit.Record(ctx, "manifest.status", id+" -> "+status)
	return nil
}

func (s *ledgerService) Delete(ctx context.Context, id string) error {
	if err := s.manifest.Delete(ctx, id); err != nil {
		return err
	}
	s.audit.Record(ctx, "manifest.delete", id)
	return nil
}

func (s *ledgerService) Summary(ctx context.Context) (Summary, error) {
	entries, err := s.manifest.List(ctx, model.StatusActive)
	if err != nil {
		return Summary{}, err
	}
	t := Totals(entries)
	return Summary{Totals: t, Balance: t.Balance(), Count: len(entries)}, nil
}

func (s *ledgerService) Series(ctx context.Context) ([]model.SeriesPoint, error) {
	entries, err := s.manifest.List(ctx, model.StatusActive)
	if err != nil {
		return nil, err
	}
	// The store returns newest first; the fold needs chronological order.
	return RunningSeries(reverse(entries)), nil
}

func (s *ledgerService) Statement(ctx context.Context, clientID string) (Statement, error) {
	client, err := s.clients.FindByID(ctx, clientID)
	if err != nil {
		return Statement{}, err
	}
	entries, err := s.manifest.ListByClient(ctx, clientID, model.StatusActive)
	if err != nil {
		return Statement{}, err
	}
	t := Totals(entries)
	st := Statement{
		Client:  client,
		Totals:  t,
		Balance: t.Balance(),
		Series:  RunningSeries(reverse(entries)),
	}
	if opening, err := s.balances.Get(ctx, clientID); err == nil {
		st.Opening = &opening
	} else if !errors.Is(err, repository.ErrNotFound) {
		return Statement{}, err
	}
	return st, nil
}

func (s *ledgerService) ListOpeningBalances(ctx context.Context) ([]model.ClientBalance, error) {
	return s.balances.List(ctx)
}

func (s *ledgerService) SetOpeningBalance(ctx context.Context, clientID string, amount int64, typ string) (model.ClientBalance, error) {
	if typ != model.EntryCredit && typ != model.EntryDebit {
		return model.ClientBalance{}, invalid("invalid_type")
	}
	if amount < 0 {
		return model.ClientBalance{}, invalid("invalid_amount")
	}
	client, err := s.clients.FindByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.ClientBalance{}, invalid("unknown_client")
		}
		return model.ClientBalance{}, err
	}

	b := model.ClientBalance{
		ClientID:   client.ID,
		ClientName: client.Name,
		Amount:     amount,
		Type:       typ,
		UpdatedAt:  time.Now().UTC(),
	}
	if err := s.balances.Upsert(ctx, b); err != nil {
		return model.ClientBalance{}, err
	}
	s.audit.Record(ctx, "balance.set",
		fmt.Sprintf("%s %s %d", client.Name, typ, amount))
	return b, nil
}

func (s *ledgerService) DeleteOpeningBalance(ctx context.Context, clientID string) error {
	if err := s.balances.Delete(ctx, clientID); err != nil {
		return err
	}
	s.audit.Record(ctx, "balance.delete", clientID)
	return nil
}

func (s *ledgerService) CloseOut(ctx context.Context) (int, error) {
	count, err := s.manifest.CloseOut(ctx)
	if err != nil {
		return 0, err
	}
	s.audit.Record(ctx, "manifest.close_out", fmt.Sprintf("%d entries", count))
	return count, nil
}

func (s *ledgerService) Flush(ctx context.Context) error {
	if err := s.manifest.Flush(ctx); err != nil {
		return err
	}
	s.audit.Record(ctx, "manifest.flush", "")
	return nil
}
