package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/luuvisa/backend/internal/model"
	"github.com/luuvisa/backend/internal/repository"
)

// TestimonialInput carries the editable fields of a testimonial.
type TestimonialInput struct {
	Name        string
	Destination string
	Testimonial string
	Image       string
	Role        string
	Country     string
}

// TestimonialService provides business logic for customer testimonials.
// There is no trash state; Delete removes the record permanently.
type TestimonialService interface {
	List(ctx context.Context) ([]model.Testimonial, error)
	Get(ctx context.Context, id string) (model.Testimonial, error)
	Create(ctx context.Context, in TestimonialInput) (model.Testimonial, error)
	Update(ctx context.Context, id string, in TestimonialInput) (model.Testimonial, error)
	Delete(ctx context.Context, id string) error
}

type testimonialService struct {
	repo  repository.TestimonialRepository
	audit Recorder
}

// NewTestimonialService creates a TestimonialService backed by the given repository.
func NewTestimonialService(repo repository.TestimonialRepository, audit Recorder) TestimonialService {
	return &testimonialService{repo: repo, audit: audit}
}

func (s *testimonialService) List(ctx context.Context) ([]model.Testimonial, error) {
	return s.repo.List(ctx)
}

func (s *testimonialService) Get(ctx context.Context, id string) (model.Testimonial, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *testimonialService) Create(ctx context.Context, in TestimonialInput) (model.Testimonial, error) {
	if in.Name == "" {
		return model.Testimonial{}, invalid("name_required")
	}
	if in.Testimonial == "" {
		return model.Testimonial{}, invalid("testimonial_required")
	}

	now := time.Now().UTC()
	t := model.Testimonial{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Destination: in.Destination,
		Testimonial: in.Testimonial,
		Image:       in.Image,
		Role:        in.Role,
		Country:     in.Country,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return model.Testimonial{}, err
	}
	s.audit.Record(ctx, "testimonial.create", t.Name)
	return t, nil
}

func (s *testimonialService) Update(ctx context.Context, id string, in TestimonialInput) (model.Testimonial, error) {
	if in.Name == "" {
		return model.Testimonial{}, invalid("name_required")
	}
	if in.Testimonial == "" {
		return model.Testimonial{}, invalid("testimonial_required")
	}

	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return model.Testimonial{}, err
	}
	t.Name = in.Name
	t.Destination = in.Destination
	t.Testimonial = in.Testimonial
	t.Image = in.Image
	t.Role = in.Role
	t.Country = in.Country
	t.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, t); err != nil {
		return model.Testimonial{}, err
	}
	s.audit.Record(ctx, "testimonial.update", t.Name)
	return t, nil
}

func (s *testimonialService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.audit.Record(ctx, "testimonial.delete", id)
	return nil
}
