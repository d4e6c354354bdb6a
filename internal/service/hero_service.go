package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/luuvisa/backend/internal/model"
	"github.com/luuvisa/backend/internal/repository"
)

// HeroImageInput carries the editable fields of a hero slide.
type HeroImageInput struct {
	Title       string
	Description string
	Image       string
}

// HeroService provides business logic for the hero carousel.
type HeroService interface {
	List(ctx context.Context, status string) ([]model.HeroImage, error)
	Get(ctx context.Context, id string) (model.HeroImage, error)
	Create(ctx context.Context, in HeroImageInput) (model.HeroImage, error)
	Update(ctx context.Context, id string, in HeroImageInput) (model.HeroImage, error)
	Trash(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error
	Purge(ctx context.Context, id string) error
	RestoreAll(ctx context.Context) (int, error)
}

type heroService struct {
	repo  repository.HeroImageRepository
	audit Recorder
}

// NewHeroService creates a HeroService backed by the given repository.
func NewHeroService(repo repository.HeroImageRepository, audit Recorder) HeroService {
	return &heroService{repo: repo, audit: audit}
}

func (s *heroService) List(ctx context.Context, status string) ([]model.HeroImage, error) {
	return s.repo.List(ctx, status)
}

func (s *heroService) Get(ctx context.Context, id string) (model.HeroImage, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *heroService) Create(ctx context.Context, in HeroImageInput) (model.HeroImage, error) {
	if in.Title == "" {
		return model.HeroImage{}, invalid("title_required")
	}
	if in.Image == "" {
		return model.HeroImage{}, invalid("image_required")
	}

	now := time.Now().UTC()
	img := model.HeroImage{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Image:       in.Image,
		Status:      model.StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, img); err != nil {
		return model.HeroImage{}, err
	}
	s.audit.Record(ctx, "hero.create", img.Title)
	return img, nil
}

func (s *heroService) Update(ctx context.Context, id string, in HeroImageInput) (model.HeroImage, error) {
	if in.Title == "" {
		return model.HeroImage{}, invalid("title_required")
	}

	img, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return model.HeroImage{}, err
	}
	img.Title = in.Title
	img.Description = in.Description
	if in.Image != "" {
		img.Image = in.Image
	}
	img.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, img); err != nil {
		return model.HeroImage{}, err
	}
	s.audit.Record(ctx, "hero.update", img.Title)
	return img, nil
}

func (s *heroService) Trash(ctx context.Context, id string) error {
	if err := s.repo.SetStatus(ctx, id, model.StatusTrash); err != nil {
		return err
	}
	s.audit.Record(ctx, "hero.trash", id)
	return nil
}

func (s *heroService) Restore(ctx context.Context, id string) error {
	if err := s.repo.SetStatus(ctx, id, model.StatusActive); err != nil {
		return err
	}
	s.audit.Record(ctx, "hero.restore", id)
	return nil
}

func (s *heroService) Purge(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.audit.Record(ctx, "hero.purge", id)
	return nil
}

func (s *heroService) RestoreAll(ctx context.Context) (int, error) {
	count, err := s.repo.RestoreAll(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		s.audit.Record(ctx, "hero.restore_all", "")
	}
	return count, nil
}
