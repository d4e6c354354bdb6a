package repository

import (
	"context"
	"sort"
	"strings"

	"github.com/luuvisa/backend/internal/model"
)

// EmailRepository defines persistence for inbound contact messages.
type EmailRepository interface {
	List(ctx context.Context, opts model.EmailListOptions) ([]model.Email, error)
	FindByID(ctx context.Context, id string) (model.Email, error)
	Create(ctx context.Context, m model.Email) error
	Update(ctx context.Context, m model.Email) error
	SetStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
	RestoreAll(ctx context.Context) (int, error)
}

type emailRepository struct {
	c collection[model.Email]
}

// NewEmailRepository creates an EmailRepository on the given engine.
func NewEmailRepository(eng Engine) EmailRepository {
	return &emailRepository{c: collection[model.Email]{
		eng:    eng,
		name:   ColEmails,
		id:     func(m *model.Email) string { return m.ID },
		status: func(m *model.Email) *string { return &m.Status },
	}}
}

var _ EmailRepository = (*emailRepository)(nil)

// matches does a case-insensitive substring search over sender, subject
// and body.
func matches(m *model.Email, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(m.Name), q) ||
		strings.Contains(strings.ToLower(m.Email), q) ||
		strings.Contains(strings.ToLower(m.Subject), q) ||
		strings.Contains(strings.ToLower(m.Message), q)
}

func (r *emailRepository) List(ctx context.Context, opts model.EmailListOptions) ([]model.Email, error) {
	records, err := r.c.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	records = r.c.filterStatus(records, opts.Status)
	if q := strings.TrimSpace(opts.Query); q != "" {
		filtered := records[:0]
		for i := range records {
			if matches(&records[i], q) {
				filtered = append(filtered, records[i])
			}
		}
		records = filtered
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].ReceivedAt.After(records[j].ReceivedAt)
	})

	if opts.Offset > 0 {
		if opts.Offset >= len(records) {
			return []model.Email{}, nil
		}
		records = records[opts.Offset:]
	}
	if opts.Limit > 0 && opts.Limit < len(records) {
		records = records[:opts.Limit]
	}
	return records, nil
}

func (r *emailRepository) FindByID(ctx context.Context, id string) (model.Email, error) {
	return r.c.findByID(ctx, id)
}

func (r *emailRepository) Create(ctx context.Context, m model.Email) error {
	return r.c.mutate(ctx, func(records []model.Email) ([]model.Email, error) {
		return append(records, m), nil
	})
}

func (r *emailRepository) Update(ctx context.Context, m model.Email) error {
	return r.c.mutate(ctx, func(records []model.Email) ([]model.Email, error) {
		i := r.c.indexOf(records, m.ID)
		if i < 0 {
			return nil, ErrNotFound
		}
		records[i] = m
		return records, nil
	})
}

func (r *emailRepository) SetStatus(ctx context.Context, id, status string) error {
	return r.c.setStatus(ctx, id, status)
}

func (r *emailRepository) Delete(ctx context.Context, id string) error {
	return r.c.remove(ctx, id)
}

func (r *emailRepository) RestoreAll(ctx context.Context) (int, error) {
	return r.c.transitionAll(ctx, model.StatusTrash, model.StatusActive)
}
