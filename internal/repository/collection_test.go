package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/luuvisa/backend/internal/model"
)

// ---------------------------------------------------------------------------
// Lifecycle filtering
// ---------------------------------------------------------------------------

func seedServices(t *testing.T, repo ServiceRepository, statuses ...string) []model.Service {
	t.Helper()
	ctx := context.Background()
	out := make([]model.Service, 0, len(statuses))
	for i, status := range statuses {
		svc := model.Service{
			ID:        fmt.Sprintf("svc-%d", i),
			Title:     fmt.Sprintf("Service %d", i),
			Status:    status,
			CreatedAt: time.Date(2025, 1, 1+i, 0, 0, 0, 0, time.UTC),
		}
		if err := repo.Create(ctx, svc); err != nil {
			t.Fatalf("seed: %v", err)
		}
		out = append(out, svc)
	}
	return out
}

func TestServiceRepository_ListFiltersByStatus(t *testing.T) {
	repo := NewServiceRepository(NewMemoryEngine())
	seedServices(t, repo, model.StatusActive, model.StatusTrash, model.StatusActive)
	ctx := context.Background()

	active, err := repo.List(ctx, model.StatusActive)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(active) != 2 {
		t.Errorf("expected 2 active services, got %d", len(active))
	}

	trashed, _ := repo.List(ctx, model.StatusTrash)
	if len(trashed) != 1 {
		t.Errorf("expected 1 trashed service, got %d", len(trashed))
	}

	all, _ := repo.List(ctx, "all")
	if len(all) != 3 {
		t.Errorf("expected 3 services for status=all, got %d", len(all))
	}
}

func TestServiceRepository_TrashRestoreRoundTrip(t *testing.T) {
	repo := NewServiceRepository(NewMemoryEngine())
	svcs := seedServices(t, repo, model.StatusActive)
	ctx := context.Background()

	if err := repo.SetStatus(ctx, svcs[0].ID, model.StatusTrash); err != nil {
		t.Fatalf("trash: %v", err)
	}
	active, _ := repo.List(ctx, model.StatusActive)
	if len(active) != 0 {
		t.Fatalf("trashed service still listed as active")
	}

	if err := repo.SetStatus(ctx, svcs[0].ID, model.StatusActive); err != nil {
		t.Fatalf("restore: %v", err)
	}
	got, err := repo.FindByID(ctx, svcs[0].ID)
	if err != nil {
		t.Fatalf("find after restore: %v", err)
	}
	if got.Title != svcs[0].Title {
		t.Errorf("restore changed title: want %q, got %q", svcs[0].Title, got.Title)
	}
}

func TestServiceRepository_PurgeRemovesEverywhere(t *testing.T) {
	repo := NewServiceRepository(NewMemoryEngine())
	svcs := seedServices(t, repo, model.StatusTrash)
	ctx := context.Background()

	if err := repo.Delete(ctx, svcs[0].ID); err != nil {
		t.Fatalf("purge: %v", err)
	}
	if _, err := repo.FindByID(ctx, svcs[0].ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after purge, got %v", err)
	}
	all, _ := repo.List(ctx, "all")
	if len(all) != 0 {
		t.Errorf("purged service still present in status=all listing")
	}
}

func TestServiceRepository_DeleteUnknownID(t *testing.T) {
	repo := NewServiceRepository(NewMemoryEngine())
	if err := repo.Delete(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestServiceRepository_RestoreAll(t *testing.T) {
	repo := NewServiceRepository(NewMemoryEngine())
	seedServices(t, repo, model.StatusTrash, model.StatusTrash, model.StatusActive)
	ctx := context.Background()

	count, err := repo.RestoreAll(ctx)
	if err != nil {
		t.Fatalf("restore all: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 restored, got %d", count)
	}
	active, _ := repo.List(ctx, model.StatusActive)
	if len(active) != 3 {
		t.Errorf("expected 3 active after restore all, got %d", len(active))
	}
}

// ---------------------------------------------------------------------------
// Documents written before the status field existed
// ---------------------------------------------------------------------------

func TestCollection_EmptyStatusDefaultsToActive(t *testing.T) {
	eng := NewMemoryEngine()
	ctx := context.Background()
	doc := `[{"id":"old-1","title":"Legacy record"}]`
	if err := eng.Save(ctx, ColServices, []byte(doc)); err != nil {
		t.Fatalf("save: %v", err)
	}

	repo := NewServiceRepository(eng)
	active, err := repo.List(ctx, model.StatusActive)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(active) != 1 {
		t.Fatalf("expected legacy record to read as active, got %d records", len(active))
	}
	if active[0].Status != model.StatusActive {
		t.Errorf("expected status %q, got %q", model.StatusActive, active[0].Status)
	}
}

func TestCollection_CorruptDocumentReadsAsEmpty(t *testing.T) {
	eng := NewMemoryEngine()
	ctx := context.Background()
	if err := eng.Save(ctx, ColServices, []byte(`{not json`)); err != nil {
		t.Fatalf("save: %v", err)
	}

	repo := NewServiceRepository(eng)
	all, err := repo.List(ctx, "all")
	if err != nil {
		t.Fatalf("corrupt document should not error: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("expected empty listing, got %d records", len(all))
	}
}

// ---------------------------------------------------------------------------
// Manifest ordering and bulk transitions
// ---------------------------------------------------------------------------

func TestManifestRepository_ListNewestFirst(t *testing.T) {
	repo := NewManifestRepository(NewMemoryEngine())
	ctx := context.Background()
	dates := []time.Time{
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC),
	}
	for i, d := range dates {
		e := model.ManifestEntry{
			ID: fmt.Sprintf("e-%d", i), ClientID: "c1",
			Date: d, Type: model.EntryCredit, Amount: 10, Status: model.StatusActive,
		}
		if err := repo.Create(ctx, e); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	entries, err := repo.List(ctx, model.StatusActive)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Date.After(entries[i-1].Date) {
			t.Fatalf("entries not newest first: %v before %v", entries[i-1].Date, entries[i].Date)
		}
	}
}

func TestManifestRepository_CloseOut(t *testing.T) {
	repo := NewManifestRepository(NewMemoryEngine())
	ctx := context.Background()
	for i, status := range []string{model.StatusActive, model.StatusActive, model.StatusInactive} {
		e := model.ManifestEntry{
			ID: fmt.Sprintf("e-%d", i), ClientID: "c1",
			Date: time.Now(), Type: model.EntryCredit, Amount: 10, Status: status,
		}
		if err := repo.Create(ctx, e); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	count, err := repo.CloseOut(ctx)
	if err != nil {
		t.Fatalf("close out: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 entries closed, got %d", count)
	}
	active, _ := repo.List(ctx, model.StatusActive)
	if len(active) != 0 {
		t.Errorf("active entries remain after close out: %d", len(active))
	}
	inactive, _ := repo.List(ctx, model.StatusInactive)
	if len(inactive) != 3 {
		t.Errorf("expected 3 inactive entries, got %d", len(inactive))
	}
}

func TestManifestRepository_FlushRemovesEverything(t *testing.T) {
	repo := NewManifestRepository(NewMemoryEngine())
	ctx := context.Background()
	_ = repo.Create(ctx, model.ManifestEntry{ID: "e-1", ClientID: "c1", Date: time.Now(), Type: model.EntryCredit, Amount: 5, Status: model.StatusActive})
	_ = repo.Create(ctx, model.ManifestEntry{ID: "e-2", ClientID: "c1", Date: time.Now(), Type: model.EntryDebit, Amount: 3, Status: model.StatusInactive})

	if err := repo.Flush(ctx); err != nil {
		t.Fatalf("flush: %v", err)
	}
	all, _ := repo.List(ctx, "all")
	if len(all) != 0 {
		t.Errorf("expected empty manifest after flush, got %d entries", len(all))
	}
}

func TestManifestRepository_UpdateClientName(t *testing.T) {
	repo := NewManifestRepository(NewMemoryEngine())
	ctx := context.Background()
	_ = repo.Create(ctx, model.ManifestEntry{ID: "e-1", ClientID: "c1", ClientName: "Old", Date: time.Now(), Type: model.EntryCredit, Amount: 5, Status: model.StatusActive})
	_ = repo.Create(ctx, model.ManifestEntry{ID: "e-2", ClientID: "c2", ClientName: "Other", Date: time.Now(), Type: model.EntryCredit, Amount: 5, Status: model.StatusActive})

	if err := repo.UpdateClientName(ctx, "c1", "New"); err != nil {
		t.Fatalf("update client name: %v", err)
	}
	e1, _ := repo.FindByID(ctx, "e-1")
	if e1.ClientName != "New" {
		t.Errorf("expected renamed entry, got %q", e1.ClientName)
	}
	e2, _ := repo.FindByID(ctx, "e-2")
	if e2.ClientName != "Other" {
		t.Errorf("rename touched another client's entry: %q", e2.ClientName)
	}
}

// ---------------------------------------------------------------------------
// Audit trail cap
// ---------------------------------------------------------------------------

func TestLogRepository_AppendPrependsAndCaps(t *testing.T) {
	repo := NewLogRepository(NewMemoryEngine())
	ctx := context.Background()

	for i := 0; i < maxLogEntries+5; i++ {
		entry := model.LogEntry{
			ID:        fmt.Sprintf("log-%d", i),
			Timestamp: time.Now().UTC(),
			Action:    "test.action",
		}
		if err := repo.Append(ctx, entry); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	entries, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != maxLogEntries {
		t.Fatalf("expected trail capped at %d, got %d", maxLogEntries, len(entries))
	}
	// Newest entry is at the head; the oldest five were dropped.
	if entries[0].ID != fmt.Sprintf("log-%d", maxLogEntries+4) {
		t.Errorf("expected newest entry first, got %s", entries[0].ID)
	}
	if entries[len(entries)-1].ID != "log-5" {
		t.Errorf("expected oldest surviving entry log-5, got %s", entries[len(entries)-1].ID)
	}
}

func TestLogRepository_Clear(t *testing.T) {
	repo := NewLogRepository(NewMemoryEngine())
	ctx := context.Background()
	_ = repo.Append(ctx, model.LogEntry{ID: "log-1", Action: "a"})

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	entries, _ := repo.List(ctx)
	if len(entries) != 0 {
		t.Errorf("expected empty trail after clear, got %d", len(entries))
	}
}

// ---------------------------------------------------------------------------
// Singleton collections
// ---------------------------------------------------------------------------

func TestSettingsRepository_GetBeforeFirstSave(t *testing.T) {
	repo := NewSettingsRepository(NewMemoryEngine())
	if _, err := repo.Get(context.Background()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSettingsRepository_SaveGetRoundTrip(t *testing.T) {
	repo := NewSettingsRepository(NewMemoryEngine())
	ctx := context.Background()
	want := model.SiteSettings{Username: "operator", Password: "s3cret", Logo: "/uploads/logo.png"}
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != want {
		t.Errorf("round trip mismatch: want %+v, got %+v", want, got)
	}
}
