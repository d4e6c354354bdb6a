package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/luuvisa/backend/internal/model"
	"github.com/luuvisa/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// mockRecorder — audit stub shared by the service tests
// ---------------------------------------------------------------------------

type mockRecorder struct {
	recordFunc func(ctx context.Context, action, details string)
}

func (m *mockRecorder) Record(ctx context.Context, action, details string) {
	if m.recordFunc != nil {
		m.recordFunc(ctx, action, details)
	}
}

// ---------------------------------------------------------------------------
// Test fixture: real repositories over an in-memory engine
// ---------------------------------------------------------------------------

type ledgerFixture struct {
	ledger   LedgerService
	clients  repository.ClientRepository
	manifest repository.ManifestRepository
	balances repository.BalanceRepository
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()
	eng := repository.NewMemoryEngine()
	f := &ledgerFixture{
		clients:  repository.NewClientRepository(eng),
		manifest: repository.NewManifestRepository(eng),
		balances: repository.NewBalanceRepository(eng),
	}
	f.ledger = NewLedgerService(f.manifest, f.balances, f.clients, &mockRecorder{})
	return f
}

func (f *ledgerFixture) addClient(t *testing.T, id, name string) {
	t.Helper()
	err := f.clients.Create(context.Background(), model.Client{
		ID: id, Name: name, Status: model.StatusActive,
	})
	if err != nil {
		t.Fatalf("seed client: %v", err)
	}
}

func (f *ledgerFixture) addEntry(t *testing.T, clientID string, day int, typ string, amount int64) model.ManifestEntry {
	t.Helper()
	e, err := f.ledger.Add(context.Background(), EntryInput{
		ClientID: clientID,
		Date:     time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC),
		Type:     typ,
		Amount:   amount,
	})
	if err != nil {
		t.Fatalf("add entry: %v", err)
	}
	return e
}

// ---------------------------------------------------------------------------
// Totals and running series
// ---------------------------------------------------------------------------

func TestLedgerService_SummaryTotals(t *testing.T) {
	f := newLedgerFixture(t)
	f.addClient(t, "c1", "Nguyen")
	f.addEntry(t, "c1", 1, model.EntryCredit, 50)
	f.addEntry(t, "c1", 2, model.EntryCredit, 60)
	f.addEntry(t, "c1", 3, model.EntryDebit, 40)

	s, err := f.ledger.Summary(context.Background())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if s.Totals.Credit != 110 {
		t.Errorf("credit: want 110, got %d", s.Totals.Credit)
	}
	if s.Totals.Debit != 40 {
		t.Errorf("debit: want 40, got %d", s.Totals.Debit)
	}
	if s.Balance != 70 {
		t.Errorf("balance: want 70, got %d", s.Balance)
	}
	if s.Count != 3 {
		t.Errorf("count: want 3, got %d", s.Count)
	}
}

func TestLedgerService_InactiveEntriesExcludedFromTotals(t *testing.T) {
	f := newLedgerFixture(t)
	f.addClient(t, "c1", "Nguyen")
	excluded := f.addEntry(t, "c1", 1, model.EntryCredit, 50)
	f.addEntry(t, "c1", 2, model.EntryCredit, 60)
	ctx := context.Background()

	if err := f.ledger.SetStatus(ctx, excluded.ID, model.StatusInactive); err != nil {
		t.Fatalf("set status: %v", err)
	}
	s, err := f.ledger.Summary(ctx)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if s.Balance != 60 {
		t.Errorf("balance after deactivation: want 60, got %d", s.Balance)
	}

	// The entry is still stored and readable.
	if _, err := f.ledger.Get(ctx, excluded.ID); err != nil {
		t.Errorf("inactive entry no longer readable: %v", err)
	}
}

func TestLedgerService_SeriesIsChronologicalRunningBalance(t *testing.T) {
	f := newLedgerFixture(t)
	f.addClient(t, "c1", "Nguyen")
	f.addEntry(t, "c1", 1, model.EntryCredit, 50)
	f.addEntry(t, "c1", 2, model.EntryDebit, 20)
	f.addEntry(t, "c1", 3, model.EntryCredit, 30)

	points, err := f.ledger.Series(context.Background())
	if err != nil {
		t.Fatalf("series: %v", err)
	}
	want := []int64{50, 30, 60}
	if len(points) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(points))
	}
	for i, w := range want {
		if points[i].Balance != w {
			t.Errorf("point %d: want balance %d, got %d", i, w, points[i].Balance)
		}
	}
	for i := 1; i < len(points); i++ {
		if points[i].Date.Before(points[i-1].Date) {
			t.Errorf("series not chronological at point %d", i)
		}
	}
}

func TestRunningSeries_Empty(t *testing.T) {
	points := RunningSeries(nil)
	if len(points) != 0 {
		t.Errorf("expected empty series, got %d points", len(points))
	}
}

// ---------------------------------------------------------------------------
// Entry validation
// ---------------------------------------------------------------------------

func TestLedgerService_AddRejectsBadInput(t *testing.T) {
	f := newLedgerFixture(t)
	f.addClient(t, "c1", "Nguyen")
	ctx := context.Background()
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		in   EntryInput
		code string
	}{
		{"missing client", EntryInput{Type: model.EntryCredit, Amount: 10, Date: date}, "client_required"},
		{"unknown client", EntryInput{ClientID: "ghost", Type: model.EntryCredit, Amount: 10, Date: date}, "unknown_client"},
		{"bad type", EntryInput{ClientID: "c1", Type: "transfer", Amount: 10, Date: date}, "invalid_type"},
		{"zero amount", EntryInput{ClientID: "c1", Type: model.EntryCredit, Amount: 0, Date: date}, "invalid_amount"},
		{"negative amount", EntryInput{ClientID: "c1", Type: model.EntryDebit, Amount: -5, Date: date}, "invalid_amount"},
		{"zero date", EntryInput{ClientID: "c1", Type: model.EntryCredit, Amount: 10}, "date_required"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.ledger.Add(ctx, tc.in)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Code != tc.code {
				t.Errorf("want code %q, got %q", tc.code, verr.Code)
			}
		})
	}
}

func TestLedgerService_AddDenormalizesClientName(t *testing.T) {
	f := newLedgerFixture(t)
	f.addClient(t, "c1", "Nguyen Van A")
	e := f.addEntry(t, "c1", 1, model.EntryCredit, 50)

	if e.ClientName != "Nguyen Van A" {
		t.Errorf("expected snapshot of client name, got %q", e.ClientName)
	}
	if e.Status != model.StatusActive {
		t.Errorf("new entries must start active, got %q", e.Status)
	}
}

func TestLedgerService_SetStatusRejectsLifecycleValues(t *testing.T) {
	f := newLedgerFixture(t)
	f.addClient(t, "c1", "Nguyen")
	e := f.addEntry(t, "c1", 1, model.EntryCredit, 50)

	err := f.ledger.SetStatus(context.Background(), e.ID, model.StatusTrash)
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Code != "invalid_status" {
		t.Errorf("manifest entries must not enter trash, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Close-out and flush
// ---------------------------------------------------------------------------

func TestLedgerService_CloseOutEndsThePeriod(t *testing.T) {
	f := newLedgerFixture(t)
	f.addClient(t, "c1", "Nguyen")
	f.addEntry(t, "c1", 1, model.EntryCredit, 50)
	f.addEntry(t, "c1", 2, model.EntryDebit, 20)
	ctx := context.Background()

	count, err := f.ledger.CloseOut(ctx)
	if err != nil {
		t.Fatalf("close out: %v", err)
	}
	if count != 2 {
		t.Errorf("want 2 closed, got %d", count)
	}
	s, _ := f.ledger.Summary(ctx)
	if s.Balance != 0 || s.Count != 0 {
		t.Errorf("summary after close out should be empty, got %+v", s)
	}
	closed, _ := f.ledger.List(ctx, model.StatusInactive)
	if len(closed) != 2 {
		t.Errorf("closed entries must stay readable, got %d", len(closed))
	}
}

func TestLedgerService_Flush(t *testing.T) {
	f := newLedgerFixture(t)
	f.addClient(t, "c1", "Nguyen")
	f.addEntry(t, "c1", 1, model.EntryCredit, 50)
	ctx := context.Background()

	if err := f.ledger.Flush(ctx); err != nil {
		t.Fatalf("flush: %v", err)
	}
	all, _ := f.ledger.List(ctx, "all")
	if len(all) != 0 {
		t.Errorf("flush must delete everything, got %d entries", len(all))
	}
}

// ---------------------------------------------------------------------------
// Opening balances and statements
// ---------------------------------------------------------------------------

func TestLedgerService_SetOpeningBalanceUpserts(t *testing.T) {
	f := newLedgerFixture(t)
	f.addClient(t, "c1", "Nguyen")
	ctx := context.Background()

	if _, err := f.ledger.SetOpeningBalance(ctx, "c1", 100, model.EntryCredit); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, err := f.ledger.SetOpeningBalance(ctx, "c1", 250, model.EntryDebit); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	balances, err := f.ledger.ListOpeningBalances(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(balances) != 1 {
		t.Fatalf("expected one balance per client, got %d", len(balances))
	}
	if balances[0].Amount != 250 || balances[0].Type != model.EntryDebit {
		t.Errorf("second write should win, got %+v", balances[0])
	}
}

func TestLedgerService_SetOpeningBalanceUnknownClient(t *testing.T) {
	f := newLedgerFixture(t)
	_, err := f.ledger.SetOpeningBalance(context.Background(), "ghost", 10, model.EntryCredit)
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Code != "unknown_client" {
		t.Errorf("expected unknown_client, got %v", err)
	}
}

func TestLedgerService_StatementScopedToClient(t *testing.T) {
	f := newLedgerFixture(t)
	f.addClient(t, "c1", "Nguyen")
	f.addClient(t, "c2", "Tran")
	f.addEntry(t, "c1", 1, model.EntryCredit, 80)
	f.addEntry(t, "c1", 2, model.EntryDebit, 30)
	f.addEntry(t, "c2", 1, model.EntryCredit, 999)
	ctx := context.Background()

	if _, err := f.ledger.SetOpeningBalance(ctx, "c1", 20, model.EntryCredit); err != nil {
		t.Fatalf("opening balance: %v", err)
	}

	st, err := f.ledger.Statement(ctx, "c1")
	if err != nil {
		t.Fatalf("statement: %v", err)
	}
	if st.Client.ID != "c1" {
		t.Errorf("wrong client: %+v", st.Client)
	}
	if st.Totals.Credit != 80 || st.Totals.Debit != 30 || st.Balance != 50 {
		t.Errorf("totals leaked across clients: %+v", st.Totals)
	}
	if st.Opening == nil || st.Opening.Amount != 20 {
		t.Errorf("expected opening balance 20, got %+v", st.Opening)
	}
	if len(st.Series) != 2 {
		t.Errorf("expected 2 series points, got %d", len(st.Series))
	}
}

func TestLedgerService_StatementWithoutOpeningBalance(t *testing.T) {
	f := newLedgerFixture(t)
	f.addClient(t, "c1", "Nguyen")

	st, err := f.ledger.Statement(context.Background(), "c1")
	if err != nil {
		t.Fatalf("statement: %v", err)
	}
	if st.Opening != nil {
		t.Errorf("expected nil opening balance, got %+v", st.Opening)
	}
}
