package repository

import (
	"context"
	"sort"

	"github.com/luuvisa/backend/internal/model"
)

// ManifestRepository defines persistence for the financial manifest.
// Listings come back newest-date-first; callers needing chronological order
// (running balances) must reverse.
type ManifestRepository interface {
	List(ctx context.Context, status string) ([]model.ManifestEntry, error)
	ListByClient(ctx context.Context, clientID, status string) ([]model.ManifestEntry, error)
	FindByID(ctx context.Context, id string) (model.ManifestEntry, error)
	Create(ctx context.Context, e model.ManifestEntry) error
	Update(ctx context.Context, e model.ManifestEntry) error
	SetStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error

	// CloseOut transitions every active entry to inactive and returns the
	// number of entries closed. Closed entries remain readable forever.
	CloseOut(ctx context.Context) (int, error)

	// Flush permanently deletes every manifest entry. Irreversible.
	Flush(ctx context.Context) error

	// UpdateClientName refreshes the denormalized client name on every
	// entry belonging to clientID.
	UpdateClientName(ctx context.Context, clientID, name string) error
}

type manifestRepository struct {
	c collection[model.ManifestEntry]
}

// NewManifestRepository creates a ManifestRepository on the given engine.
func NewManifestRepository(eng Engine) ManifestRepository {
	return &manifestRepository{c: collection[model.ManifestEntry]{
		eng:    eng,
		name:   ColManifest,
		id:     func(e *model.ManifestEntry) string { return e.ID },
		status: func(e *model.ManifestEntry) *string { return &e.Status },
	}}
}

var _ ManifestRepository = (*manifestRepository)(nil)

func sortByDateDesc(entries []model.ManifestEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
}

func (r *manifestRepository) List(ctx context.Context, status string) ([]model.ManifestEntry, error) {
	records, err := r.c.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	records = r.c.filterStatus(records, status)
	sortByDateDesc(records)
	return records, nil
}

func (r *manifestRepository) ListByClient(ctx context.Context, clientID, status string) ([]model.ManifestEntry, error) {
	records, err := r.List(ctx, status)
	if err != nil {
		return nil, err
	}
	out := make([]model.ManifestEntry, 0, len(records))
	for _, e := range records {
		if e.ClientID == clientID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *manifestRepository) FindByID(ctx context.Context, id string) (model.ManifestEntry, error) {
	return r.c.findByID(ctx, id)
}

func (r *manifestRepository) Create(ctx context.Context, e model.ManifestEntry) error {
	return r.c.mutate(ctx, func(records []model.ManifestEntry) ([]model.ManifestEntry, error) {
		return append(records, e), nil
	})
}

func (r *manifestRepository) Update(ctx context.Context, e model.ManifestEntry) error {
	return r.c.mutate(ctx, func(records []model.ManifestEntry) ([]model.ManifestEntry, error) {
		i := r.c.indexOf(records, e.ID)
		if i < 0 {
			return nil, ErrNotFound
		}
		records[i] = e
		return records, nil
	})
}

func (r *manifestRepository) SetStatus(ctx context.Context, id, status string) error {
	return r.c.setStatus(ctx, id, status)
}

func (r *manifestRepository) Delete(ctx context.Context, id string) error {
	return r.c.remove(ctx, id)
}

func (r *manifestRepository) CloseOut(ctx context.Context) (int, error) {
	return r.c.transitionAll(ctx, model.StatusActive, model.StatusInactive)
}

func (r *manifestRepository) Flush(ctx context.Context) error {
	return r.c.mutate(ctx, func([]model.ManifestEntry) ([]model.ManifestEntry, error) {
		return nil, nil
	})
}

func (r *manifestRepository) UpdateClientName(ctx context.Context, clientID, name string) error {
	return r.c.mutate(ctx, func(records []model.ManifestEntry) ([]model.ManifestEntry, error) {
		for i := range records {
			if records[i].ClientID == clientID {
				records[i].ClientName = name
			}
		}
		return records, nil
	})
}
