package repository

import (
	"context"
	"sort"

	"github.com/luuvisa/backend/internal/model"
)

// TestimonialRepository defines persistence for customer testimonials.
// Testimonials have no trash state; Delete is permanent.
type TestimonialRepository interface {
	List(ctx context.Context) ([]model.Testimonial, error)
	FindByID(ctx context.Context, id string) (model.Testimonial, error)
	Create(ctx context.Context, t model.Testimonial) error
	Update(ctx context.Context, t model.Testimonial) error
	Delete(ctx context.Context, id string) error
}

type testimonialRepository struct {
	c collection[model.Testimonial]
}

// NewTestimonialRepository creates a TestimonialRepository on the given engine.
func NewTestimonialRepository(eng Engine) TestimonialRepository {
	return &testimonialRepository{c: collection[model.Testimonial]{
		eng:  eng,
		name: ColTestimonials,
		id:   func(t *model.Testimonial) string { return t.ID },
	}}
}

var _ TestimonialRepository = (*testimonialRepository)(nil)

func (r *testimonialRepository) List(ctx context.Context) ([]model.Testimonial, error) {
	records, err := r.c.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	return records, nil
}

func (r *testimonialRepository) FindByID(ctx context.Context, id string) (model.Testimonial, error) {
	return r.c.findByID(ctx, id)
}

func (r *testimonialRepository) Create(ctx context.Context, t model.Testimonial) error {
	return r.c.mutate(ctx, func(records []model.Testimonial) ([]model.Testimonial, error) {
		return append(records, t), nil
	})
}

func (r *testimonialRepository) Update(ctx context.Context, t model.Testimonial) error {
	return r.c.mutate(ctx, func(records []model.Testimonial) ([]model.Testimonial, error) {
		i := r.c.indexOf(records, t.ID)
		if i < 0 {
			return nil, ErrNotFound
		}
		records[i] = t
		return records, nil
	})
}

func (r *testimonialRepository) Delete(ctx context.Context, id string) error {
	return r.c.remove(ctx, id)
}
