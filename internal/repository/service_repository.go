package repository

import (
	"context"
	"sort"

	"github.com/luuvisa/backend/internal/model"
)

// ServiceRepository defines persistence for visa service offerings.
type ServiceRepository interface {
	// List returns services filtered by lifecycle status ("" or "all"
	// returns everything), newest first.
	List(ctx context.Context, status string) ([]model.Service, error)
	FindByID(ctx context.Context, id string) (model.Service, error)
	Create(ctx context.Context, svc model.Service) error
	Update(ctx context.Context, svc model.Service) error
	SetStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
	RestoreAll(ctx context.Context) (int, error)
}

type serviceRepository struct {
	c collection[model.Service]
}

// NewServiceRepository creates a ServiceRepository on the given engine.
func NewServiceRepository(eng Engine) ServiceRepository {
	return &serviceRepository{c: collection[model.Service]{
		eng:    eng,
		name:   ColServices,
		id:     func(s *model.Service) string { return s.ID },
		status: func(s *model.Service) *string { return &s.Status },
	}}
}

var _ ServiceRepository = (*serviceRepository)(nil)

func (r *serviceRepository) List(ctx context.Context, status string) ([]model.Service, error) {
	records, err := r.c.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	records = r.c.filterStatus(records, status)
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	return records, nil
}

func (r *serviceRepository) FindByID(ctx context.Context, id string) (model.Service, error) {
	return r.c.findByID(ctx, id)
}

func (r *serviceRepository) Create(ctx context.Context, svc model.Service) error {
	return r.c.mutate(ctx, func(records []model.Service) ([]model.Service, error) {
		return append(records, svc), nil
	})
}

func (r *serviceRepository) Update(ctx context.Context, svc model.Service) error {
	return r.c.mutate(ctx, func(records []model.Service) ([]model.Service, error) {
		i := r.c.indexOf(records, svc.ID)
		if i < 0 {
			return nil, ErrNotFound
		}
		records[i] = svc
		return records, nil
	})
}

func (r *serviceRepository) SetStatus(ctx context.Context, id, status string) error {
	return r.c.setStatus(ctx, id, status)
}

func (r *serviceRepository) Delete(ctx context.Context, id string) error {
	return r.c.remove(ctx, id)
}

func (r *serviceRepository) RestoreAll(ctx context.Context) (int, error) {
	return r.c.transitionAll(ctx, model.StatusTrash, model.StatusActive)
}
