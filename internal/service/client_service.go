package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/luuvisa/backend/internal/model"
	"github.com/luuvisa/backend/internal/repository"
)

// ClientService provides business logic for client records. The client ID
// is the canonical key; renaming a client refreshes the denormalized name
// on its manifest entries and opening balance.
type ClientService interface {
	List(ctx context.Context, status string) ([]model.Client, error)
	Get(ctx context.Context, id string) (model.Client, error)
	Create(ctx context.Context, name string) (model.Client, error)
	Rename(ctx context.Context, id, name string) (model.Client, error)
	Trash(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error
	Purge(ctx context.Context, id string) error
	RestoreAll(ctx context.Context) (int, error)
}

type clientService struct {
	repo     repository.ClientRepository
	manifest repository.ManifestRepository
	balances repository.BalanceRepository
	audit    Recorder
}

// NewClientService creates a ClientService. The manifest and balance
// repositories are needed to keep denormalized client names in sync.
func NewClientService(repo repository.ClientRepository, manifest repository.ManifestRepository, balances repository.BalanceRepository, audit Recorder) ClientService {
	return &clientService{repo: repo, manifest: manifest, balances: balances, audit: audit}
}

func (s *clientService) List(ctx context.Context, status string) ([]model.Client, error) {
	return s.repo.List(ctx, status)
}

func (s *clientService) Get(ctx context.Context, id string) (model.Client, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *clientService) Create(ctx context.Context, name string) (model.Client, error) {
	if name == "" {
		return model.Client{}, invalid("name_required")
	}
	now := time.Now().UTC()
	c := model.Client{
		ID:        uuid.NewString(),
		Name:      name,
		Status:    model.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return model.Client{}, err
	}
	s.audit.Record(ctx, "client.create", c.Name)
	return c, nil
}

func (s *clientService) Rename(ctx context.Context, id, name string) (model.Client, error) {
	if name == "" {
		return model.Client{}, invalid("name_required")
	}
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return model.Client{}, err
	}
	old := c.Name
	c.Name = name
	c.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, c); err != nil {
		return model.Client{}, err
	}
	if err := s.manifest.UpdateClientName(ctx, id, name); err != nil {
		return model.Client{}, err
	}
	if err := s.balances.UpdateClientName(ctx, id, name); err != nil {
		return model.Client{}, err
	}
	s.audit.Record(ctx, "client.rename", old+" -> "+name)
	return c, nil
}

func (s *clientService) Trash(ctx context.Context, id string) error {
	if err := s.repo.SetStatus(ctx, id, model.StatusTrash); err != nil {
		return err
	}
	s.audit.Record(ctx, "client.trash", id)
	return nil
}

func (s *clientService) Restore(ctx context.Context, id string) error {
	if err := s.repo.SetStatus(ctx, id, model.StatusActive); err != nil {
		return err
	}
	s.audit.Record(ctx, "client.restore", id)
	return nil
}

func (s *clientService) Purge(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.audit.Record(ctx, "client.purge", id)
	return nil
}

func (s *clientService) RestoreAll(ctx context.Context) (int, error) {
	count, err := s.repo.RestoreAll(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		s.audit.Record(ctx, "client.restore_all", "")
	}
	return count, nil
}
