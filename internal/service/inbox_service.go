package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/luuvisa/backend/internal/model"
	"github.com/luuvisa/backend/internal/repository"
	"github.com/luuvisa/backend/pkg/mail"
)

// Notifier is the subset of the mail client the inbox needs: one
// best-effort notification per contact submission.
type Notifier interface {
	Send(ctx context.Context, msg mail.Message) error
}

// ContactInput is a public contact-form submission.
type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// InboxService stores inbound contact messages and manages the admin inbox.
type InboxService interface {
	// Submit stores the message and sends an operator notification. A
	// notification failure does not fail the submission.
	Submit(ctx context.Context, in ContactInput) (model.Email, error)

	List(ctx context.Context, opts model.EmailListOptions) ([]model.Email, error)
	Get(ctx context.Context, id string) (model.Email, error)
	MarkRead(ctx context.Context, id string, read bool) error
	ToggleFavorite(ctx context.Context, id string) (model.Email, error)
	Trash(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error
	Purge(ctx context.Context, id string) error
	RestoreAll(ctx context.Context) (int, error)
}

type inboxService struct {
	repo     repository.EmailRepository
	notifier Notifier
	audit    Recorder
}

// NewInboxService creates an InboxService. notifier may be nil to disable
// operator notifications.
func NewInboxService(repo repository.EmailRepository, notifier Notifier, audit Recorder) InboxService {
	return &inboxService{repo: repo, notifier: notifier, audit: audit}
}

func (s *inboxService) Submit(ctx context.Context, in ContactInput) (model.Email, error) {
	if in.Email == "" {
		return model.Email{}, invalid("email_required")
	}
	if in.Message == "" {
		return model.Email{}, invalid("message_required")
	}

	m := model.Email{
		ID:         uuid.NewString(),
		Name:       in.Name,
		Email:      in.Email,
		Subject:    in.Subject,
		Message:    in.Message,
		ReceivedAt: time.Now().UTC(),
		Status:     model.StatusActive,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return model.Email{}, err
	}

	if s.notifier != nil {
		err := s.notifier.Send(ctx, mail.Message{
			Subject: "New enquiry: " + in.Subject,
			Name:    in.Name,
			ReplyTo: in.Email,
			Body:    in.Message,
		})
		if err != nil {
			slog.Error("contact notification failed", "error", err, "from", in.Email)
		}
	}
	return m, nil
}

func (s *inboxService) List(ctx context.Context, opts model.EmailListOptions) ([]model.Email, error) {
	return s.repo.List(ctx, opts)
}

func (s *inboxService) Get(ctx context.Context, id string) (model.Email, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *inboxService) MarkRead(ctx context.Context, id string, read bool) error {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	m.Read = read
	return s.repo.Update(ctx, m)
}

func (s *inboxService) ToggleFavorite(ctx context.Context, id string) (model.Email, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return model.Email{}, err
	}
	m.Favorited = !m.Favorited
	if err := s.repo.Update(ctx, m); err != nil {
		return model.Email{}, err
	}
	return m, nil
}

func (s *inboxService) Trash(ctx context.Context, id string) error {
	if err := s.repo.SetStatus(ctx, id, model.StatusTrash); err != nil {
		return err
	}
	s.audit.Record(ctx, "email.trash", id)
	return nil
}

func (s *inboxService) Restore(ctx context.Context, id string) error {
	if err := s.repo.SetStatus(ctx, id, model.StatusActive); err != nil {
		return err
	}
	s.audit.Record(ctx, "email.restore", id)
	return nil
}

func (s *inboxService) Purge(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.audit.Record(ctx, "email.purge", id)
	return nil
}

func (s *inboxService) RestoreAll(ctx context.Context) (int, error) {
	count, err := s.repo.RestoreAll(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		s.audit.Record(ctx, "email.restore_all", "")
	}
	return count, nil
}
