package service

import (
	"context"
	"errors"

	"github.com/luuvisa/backend/internal/model"
	"github.com/luuvisa/backend/internal/repository"
)

// AboutService provides business logic for the singleton about section.
type AboutService interface {
	// Get returns the stored content; if nothing was ever written it
	// returns an empty document, not an error.
	Get(ctx context.Context) (model.AboutContent, error)
	Update(ctx context.Context, content model.AboutContent) error
}

type aboutService struct {
	repo  repository.AboutRepository
	audit Recorder
}

// NewAboutService creates an AboutService backed by the given repository.
func NewAboutService(repo repository.AboutRepository, audit Recorder) AboutService {
	return &aboutService{repo: repo, audit: audit}
}

func (s *aboutService) Get(ctx context.Context) (model.AboutContent, error) {
	content, err := s.repo.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return model.AboutContent{}, nil
	}
	return content, err
}

func (s *aboutService) Update(ctx context.Context, content model.AboutContent) error {
	if content.Title == "" {
		return invalid("title_required")
	}
	if content.Paragraph1 == "" {
		return invalid("paragraph_required")
	}
	if err := s.repo.Save(ctx, content); err != nil {
		return err
	}
	s.audit.Record(ctx, "about.update", content.Title)
	return nil
}
