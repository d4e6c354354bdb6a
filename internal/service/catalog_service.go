package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/luuvisa/backend/internal/model"
	"github.com/luuvisa/backend/internal/repository"
)

// ServiceInput carries the editable fields of a visa service offering.
type ServiceInput struct {
	Title           string
	Description     string
	LongDescription string
	Requirements    []string
	Image           string
	Icon            string
}

// CatalogService provides business logic for the visa service catalog.
type CatalogService interface {
	List(ctx context.Context, status string) ([]model.Service, error)
	Get(ctx context.Context, id string) (model.Service, error)
	Create(ctx context.Context, in ServiceInput) (model.Service, error)
	Update(ctx context.Context, id string, in ServiceInput) (model.Service, error)
	Trash(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error
	Purge(ctx context.Context, id string) error
	RestoreAll(ctx context.Context) (int, error)
}

type catalogService struct {
	repo  repository.ServiceRepository
	audit Recorder
}

// NewCatalogService creates a CatalogService backed by the given repository.
func NewCatalogService(repo repository.ServiceRepository, audit Recorder) CatalogService {
	return &catalogService{repo: repo, audit: audit}
}

func (s *catalogService) List(ctx context.Context, status string) ([]model.Service, error) {
	return s.repo.List(ctx, status)
}

func (s *catalogService) Get(ctx context.Context, id string) (model.Service, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *catalogService) Create(ctx context.Context, in ServiceInput) (model.Service, error) {
	if in.Title == "" {
		return model.Service{}, invalid("title_required")
	}
	if !model.ValidServiceIcon(in.Icon) {
		return model.Service{}, invalid("unknown_icon")
	}

	now := time.Now().UTC()
	svc := model.Service{
		ID:              uuid.NewString(),
		Slug:            slugify(in.Title),
		Title:           in.Title,
		Description:     in.Description,
		LongDescription: in.LongDescription,
		Requirements:    in.Requirements,
		Image:           in.Image,
		Icon:            in.Icon,
		Status:          model.StatusActive,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.repo.Create(ctx, svc); err != nil {
		return model.Service{}, err
	}
	s.audit.Record(ctx, "service.create", svc.Title)
	return svc, nil
}

func (s *catalogService) Update(ctx context.Context, id string, in ServiceInput) (model.Service, error) {
	if in.Title == "" {
		return model.Service{}, invalid("title_required")
	}
	if !model.ValidServiceIcon(in.Icon) {
		return model.Service{}, invalid("unknown_icon")
	}

	svc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return model.Service{}, err
	}
	svc.Title = in.Title
	svc.Slug = slugify(in.Title)
	svc.Description = in.Description
	svc.LongDescription = in.LongDescription
	svc.Requirements = in.Requirements
	svc.Image = in.Image
	svc.Icon = in.Icon
	svc.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, svc); err != nil {
		return model.Service{}, err
	}
	s.audit.Record(ctx, "service.update", svc.Title)
	return svc, nil
}

func (s *catalogService) Trash(ctx context.Context, id string) error {
	if err := s.repo.SetStatus(ctx, id, model.StatusTrash); err != nil {
		return err
	}
	s.audit.Record(ctx, "service.trash", id)
	return nil
}

func (s *catalogService) Restore(ctx context.Context, id string) error {
	if err := s.repo.SetStatus(ctx, id, model.StatusActive); err != nil {
		return err
	}
	s.audit.Record(ctx, "service.restore", id)
	return nil
}

func (s *catalogService) Purge(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.audit.Record(ctx, "service.purge", id)
	return nil
}

func (s *catalogService) RestoreAll(ctx context.Context) (int, error) {
	count, err := s.repo.RestoreAll(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		s.audit.Record(ctx, "service.restore_all", "")
	}
	return count, nil
}
