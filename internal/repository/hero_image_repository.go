package repository

import (
	"context"
	"sort"

	"github.com/luuvisa/backend/internal/model"
)

// HeroImageRepository defines persistence for hero carousel slides.
type HeroImageRepository interface {
	List(ctx context.Context, status string) ([]model.HeroImage, error)
	FindByID(ctx context.Context, id string) (model.HeroImage, error)
	Create(ctx context.Context, img model.HeroImage) error
	Update(ctx context.Context, img model.HeroImage) error
	SetStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
	RestoreAll(ctx context.Context) (int, error)
}

type heroImageRepository struct {
	c collection[model.HeroImage]
}

// NewHeroImageRepository creates a HeroImageRepository on the given engine.
func NewHeroImageRepository(eng Engine) HeroImageRepository {
	return &heroImageRepository{c: collection[model.HeroImage]{
		eng:    eng,
		name:   ColHeroImages,
		id:     func(h *model.HeroImage) string { return h.ID },
		status: func(h *model.HeroImage) *string { return &h.Status },
	}}
}

var _ HeroImageRepository = (*heroImageRepository)(nil)

func (r *heroImageRepository) List(ctx context.Context, status string) ([]model.HeroImage, error) {
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

func (r *heroImageRepository) FindByID(ctx context.Context, id string) (model.HeroImage, error) {
	return r.c.findByID(ctx, id)
}

func (r *heroImageRepository) Create(ctx context.Context, img model.HeroImage) error {
	return r.c.mutate(ctx, func(records []model.HeroImage) ([]model.HeroImage, error) {
		return append(records, img), nil
	})
}

func (r *heroImageRepository) Update(ctx context.Context, img model.HeroImage) error {
	return r.c.mutate(ctx, func(records []model.HeroImage) ([]model.HeroImage, error) {
		i := r.c.indexOf(records, img.ID)
		if i < 0 {
			return nil, ErrNotFound
		}
		records[i] = img
		return records, nil
	})
}

func (r *heroImageRepository) SetStatus(ctx context.Context, id, status string) error {
	return r.c.setStatus(ctx, id, status)
}

func (r *heroImageRepository) Delete(ctx context.Context, id string) error {
	return r.c.remove(ctx, id)
}

func (r *heroImageRepository) RestoreAll(ctx context.Context) (int, error) {
	return r.c.transitionAll(ctx, model.StatusTrash, model.StatusActive)
}
