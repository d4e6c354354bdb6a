package repository

import (
	"context"

	"github.com/luuvisa/backend/internal/model"
)

// AboutRepository persists the singleton about-content document.
type AboutRepository interface {
	// Get returns the stored content, or ErrNotFound when nothing has
	// been written yet.
	Get(ctx context.Context) (model.AboutContent, error)
	Save(ctx context.Context, content model.AboutContent) error
}

type aboutRepository struct {
	s singleton[model.AboutContent]
}

// NewAboutRepository creates an AboutRepository on the given engine.
func NewAboutRepository(eng Engine) AboutRepository {
	return &aboutRepository{s: singleton[model.AboutContent]{eng: eng, name: ColAboutContent}}
}

var _ AboutRepository = (*aboutRepository)(nil)

func (r *aboutRepository) Get(ctx context.Context) (model.AboutContent, error) {
	return r.s.get(ctx)
}

func (r *aboutRepository) Save(ctx context.Context, content model.AboutContent) error {
	return r.s.put(ctx, content)
}
