package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/luuvisa/backend/internal/model"
	"github.com/luuvisa/backend/internal/repository"
)

// Recorder is the slice of AuditService the other services need to write
// trail entries. Defined here so constructors can accept mocks in tests.
type Recorder interface {
	Record(ctx context.Context, action, details string)
}

// AuditService maintains the administrative audit trail.
type AuditService interface {
	Recorder

	// List returns the trail, newest first.
	List(ctx context.Context) ([]model.LogEntry, error)

	// Clear wipes the trail.
	Clear(ctx context.Context) error
}

type auditService struct {
	repo repository.LogRepository
}

// NewAuditService creates an AuditService backed by the given repository.
func NewAuditService(repo repository.LogRepository) AuditService {
	return &auditService{repo: repo}
}

// Record appends a trail entry. A failed write must never fail the
// triggering operation, so errors are logged and swallowed here.
func (s *auditService) Record(ctx context.Context, action, details string) {
	entry := model.LogEntry{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Action:    action,
		Details:   details,
	}
	if err := s.repo.Append(ctx, entry); err != nil {
		slog.Error("audit write failed", "action", action, "error", err)
	}
}

func (s *auditService) List(ctx context.Context) ([]model.LogEntry, error) {
	return s.repo.List(ctx)
}

func (s *auditService) Clear(ctx context.Context) error {
	return s.repo.Clear(ctx)
}
