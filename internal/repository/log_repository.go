package repository

import (
	"context"

	"github.com/luuvisa/backend/internal/model"
)

// maxLogEntries caps the audit trail; the oldest entries are silently
// dropped once the cap is reached.
const maxLogEntries = 1000

// LogRepository persists the administrative audit trail.
type LogRepository interface {
	// List returns all entries, newest first.
	List(ctx context.Context) ([]model.LogEntry, error)

	// Append inserts the entry at the head and truncates to the cap.
	Append(ctx context.Context, entry model.LogEntry) error

	// Clear removes every entry.
	Clear(ctx context.Context) error
}

type logRepository struct {
	c collection[model.LogEntry]
}

// NewLogRepository creates a LogRepository on the given engine.
func NewLogRepository(eng Engine) LogRepository {
	return &logRepository{c: collection[model.LogEntry]{
		eng:  eng,
		name: ColLogs,
		id:   func(e *model.LogEntry) string { return e.ID },
	}}
}

var _ LogRepository = (*logRepository)(nil)

func (r *logRepository) List(ctx context.Context) ([]model.LogEntry, error) {
	return r.c.loadAll(ctx)
}

func (r *logRepository) Append(ctx context.Context, entry model.LogEntry) error {
	return r.c.mutate(ctx, func(records []model.LogEntry) ([]model.LogEntry, error) {
		records = append([]model.LogEntry{entry}, records...)
		if len(records) > maxLogEntries {
			records = records[:maxLogEntries]
		}
		return records, nil
	})
}

func (r *logRepository) Clear(ctx context.Context) error {
	return r.c.mutate(ctx, func([]model.LogEntry) ([]model.LogEntry, error) {
		return nil, nil
	})
}
