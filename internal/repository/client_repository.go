package repository

import (
	"context"
	"sort"

	"github.com/luuvisa/backend/internal/model"
)

// ClientRepository defines persistence for consultancy clients.
type ClientRepository interface {
	List(ctx context.Context, status string) ([]model.Client, error)
	FindByID(ctx context.Context, id string) (model.Client, error)
	Create(ctx context.Context, c model.Client) error
	Update(ctx context.Context, c model.Client) error
	SetStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
	RestoreAll(ctx context.Context) (int, error)
}

type clientRepository struct {
	c collection[model.Client]
}

// NewClientRepository creates a ClientRepository on the given engine.
func NewClientRepository(eng Engine) ClientRepository {
	return &clientRepository{c: collection[model.Client]{
		eng:    eng,
		name:   ColClients,
		id:     func(c *model.Client) string { return c.ID },
		status: func(c *model.Client) *string { return &c.Status },
	}}
}

var _ ClientRepository = (*clientRepository)(nil)

func (r *clientRepository) List(ctx context.Context, status string) ([]model.Client, error) {
	records, err := r.c.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	records = r.c.filterStatus(records, status)
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Name < records[j].Name
	})
	return records, nil
}

func (r *clientRepository) FindByID(ctx context.Context, id string) (model.Client, error) {
	return r.c.findByID(ctx, id)
}

func (r *clientRepository) Create(ctx context.Context, c model.Client) error {
	return r.c.mutate(ctx, func(records []model.Client) ([]model.Client, error) {
		return append(records, c), nil
	})
}

func (r *clientRepository) Update(ctx context.Context, c model.Client) error {
	return r.c.mutate(ctx, func(records []model.Client) ([]model.Client, error) {
		i := r.c.indexOf(records, c.ID)
		if i < 0 {
			return nil, ErrNotFound
		}
		records[i] = c
		return records, nil
	})
}

func (r *clientRepository) SetStatus(ctx context.Context, id, status string) error {
	return r.c.setStatus(ctx, id, status)
}

func (r *clientRepository) Delete(ctx context.Context, id string) error {
	return r.c.remove(ctx, id)
}

func (r *clientRepository) RestoreAll(ctx context.Context) (int, error) {
	return r.c.transitionAll(ctx, model.StatusTrash, model.StatusActive)
}
