package repository

import (
	"context"

	"github.com/luuvisa/backend/internal/model"
)

// SettingsRepository persists the singleton site-settings document.
type SettingsRepository interface {
	Get(ctx context.Context) (model.SiteSettings, error)
	Save(ctx context.Context, s model.SiteSettings) error
}

type settingsRepository struct {
	s singleton[model.SiteSettings]
}

// NewSettingsRepository creates a SettingsRepository on the given engine.
func NewSettingsRepository(eng Engine) SettingsRepository {
	return &settingsRepository{s: singleton[model.SiteSettings]{eng: eng, name: ColSiteSettings}}
}

var _ SettingsRepository = (*settingsRepository)(nil)

func (r *settingsRepository) Get(ctx context.Context) (model.SiteSettings, error) {
	return r.s.get(ctx)
}

func (r *settingsRepository) Save(ctx context.Context, s model.SiteSettings) error {
	return r.s.put(ctx, s)
}
