package service

import (
	"context"
	"crypto/subtle"
	"errors"

	"github.com/luuvisa/backend/internal/model"
	"github.com/luuvisa/backend/internal/repository"
)

// Default admin credentials used until the operator sets their own.
const (
	defaultUsername = "admin"
	defaultPassword = "admin"
)

// SettingsService manages the singleton site settings and admin login.
type SettingsService interface {
	Get(ctx context.Context) (model.SiteSettings, error)
	Update(ctx context.Context, s model.SiteSettings) error

	// Authenticate checks the submitted credentials against the stored
	// settings record.
	Authenticate(ctx context.Context, username, password string) (bool, error)
}

type settingsService struct {
	repo  repository.SettingsRepository
	audit Recorder
}

// NewSettingsService creates a SettingsService backed by the given repository.
func NewSettingsService(repo repository.SettingsRepository, audit Recorder) SettingsService {
	return &settingsService{repo: repo, audit: audit}
}

func (s *settingsService) Get(ctx context.Context) (model.SiteSettings, error) {
	settings, err := s.repo.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return model.SiteSettings{Username: defaultUsername, Password: defaultPassword}, nil
	}
	return settings, err
}

func (s *settingsService) Update(ctx context.Context, settings model.SiteSettings) error {
	if settings.Username == "" {
		return invalid("username_required")
	}
	if settings.Password == "" {
		return invalid("password_required")
	}
	if err := s.repo.Save(ctx, settings); err != nil {
		return err
	}
	s.audit.Record(ctx, "settings.update", settings.Username)
	return nil
}

func (s *settingsService) Authenticate(ctx context.Context, username, password string) (bool, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return false, err
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(settings.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(settings.Password)) == 1
	return userOK && passOK, nil
}
