package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/luuvisa/backend/internal/model"
)

// collection is the shared core of every per-entity repository: an ordered
// sequence of records persisted as one JSON array document. A missing
// collection reads as empty; an undecodable one is logged and treated as
// empty rather than failing the caller. The mutex serializes the whole
// read-modify-write cycle so in-process writers cannot lose updates.
type collection[T any] struct {
	eng  Engine
	name string

	// id extracts the record key. status points at the lifecycle field,
	// or is nil for entities without one; when set, an empty status is
	// defaulted to active on read (records written before the field
	// existed).
	id     func(*T) string
	status func(*T) *string

	mu sync.Mutex
}

func (c *collection[T]) loadAll(ctx context.Context) ([]T, error) {
	data, err := c.eng.Load(ctx, c.name)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		slog.Warn("collection unreadable, treating as empty",
			"collection", c.name, "error", err)
		return nil, nil
	}
	if c.status != nil {
		for i := range records {
			if s := c.status(&records[i]); *s == "" {
				*s = model.StatusActive
			}
		}
	}
	return records, nil
}

func (c *collection[T]) saveAll(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.name, err)
	}
	return c.eng.Save(ctx, c.name, data)
}

// mutate runs fn over the current records under the collection lock and
// persists the returned sequence.
func (c *collection[T]) mutate(ctx context.Context, fn func([]T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.loadAll(ctx)
	if err != nil {
		return err
	}
	updated, err := fn(records)
	if err != nil {
		return err
	}
	return c.saveAll(ctx, updated)
}

func (c *collection[T]) findByID(ctx context.Context, id string) (T, error) {
	var zero T
	records, err := c.loadAll(ctx)
	if err != nil {
		return zero, err
	}
	for i := range records {
		if c.id(&records[i]) == id {
			return records[i], nil
		}
	}
	return zero, ErrNotFound
}

// indexOf returns the position of id in records, or -1.
func (c *collection[T]) indexOf(records []T, id string) int {
	for i := range records {
		if c.id(&records[i]) == id {
			return i
		}
	}
	return -1
}

// filterStatus returns the records whose lifecycle status matches. Status ""
// or "all" matches everything.
func (c *collection[T]) filterStatus(records []T, status string) []T {
	if c.status == nil || status == "" || status == "all" {
		return records
	}
	out := make([]T, 0, len(records))
	for i := range records {
		if *c.status(&records[i]) == status {
			out = append(out, records[i])
		}
	}
	return out
}

// setStatus flips the lifecycle tag of one record. Absent ids are a no-op.
func (c *collection[T]) setStatus(ctx context.Context, id, status string) error {
	return c.mutate(ctx, func(records []T) ([]T, error) {
		if i := c.indexOf(records, id); i >= 0 {
			*c.status(&records[i]) = status
		}
		return records, nil
	})
}

// remove permanently deletes one record. Returns ErrNotFound for absent ids.
func (c *collection[T]) remove(ctx context.Context, id string) error {
	return c.mutate(ctx, func(records []T) ([]T, error) {
		i := c.indexOf(records, id)
		if i < 0 {
			return nil, ErrNotFound
		}
		return append(records[:i], records[i+1:]...), nil
	})
}

// transitionAll bulk-transitions every record in `from` status to `to` and
// returns how many were changed.
func (c *collection[T]) transitionAll(ctx context.Context, from, to string) (int, error) {
	count := 0
	err := c.mutate(ctx, func(records []T) ([]T, error) {
		for i := range records {
			if s := c.status(&records[i]); *s == from {
				*s = to
				count++
			}
		}
		return records, nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// singleton is the document variant of collection for one-record entities
// (about content, site settings).
type singleton[T any] struct {
	eng  Engine
	name string
	mu   sync.Mutex
}

func (s *singleton[T]) get(ctx context.Context) (T, error) {
	var doc T
	data, err := s.eng.Load(ctx, s.name)
	if errors.Is(err, ErrNotFound) {
		return doc, ErrNotFound
	}
	if err != nil {
		return doc, err
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		slog.Warn("collection unreadable, treating as empty",
			"collection", s.name, "error", err)
		return doc, ErrNotFound
	}
	return doc, nil
}

func (s *singleton[T]) put(ctx context.Context, doc T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.name, err)
	}
	return s.eng.Save(ctx, s.name, data)
}
