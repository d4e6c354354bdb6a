package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileEngine stores each collection as one JSON file under a data directory.
// Writes go to a temp file first and are renamed into place, and a
// per-collection mutex serializes writers within the process. The intended
// deployment is a single admin; there is no cross-process locking.
type FileEngine struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewFileEngine creates a FileEngine rooted at dir, creating dir if needed.
func NewFileEngine(dir string) (*FileEngine, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: mkdir %s: %w", dir, err)
	}
	return &FileEngine{dir: dir, locks: make(map[string]*sync.Mutex)}, nil
}

var _ Engine = (*FileEngine)(nil)

func (e *FileEngine) lock(name string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	l, ok := e.locks[name]
	if !ok {
		l = &sync.Mutex{}
		e.locks[name] = l
	}
	return l
}

func (e *FileEngine) Load(_ context.Context, name string) ([]byte, error) {
	if !knownCollection(name) {
		return nil, ErrUnknownCollection
	}
	l := e.lock(name)
	l.Lock()
	defer l.Unlock()

	data, err := os.ReadFile(filepath.Join(e.dir, name))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", name, err)
	}
	return data, nil
}

func (e *FileEngine) Save(_ context.Context, name string, data []byte) error {
	if !knownCollection(name) {
		return ErrUnknownCollection
	}
	l := e.lock(name)
	l.Lock()
	defer l.Unlock()

	dest := filepath.Join(e.dir, name)
	tmp := dest + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("store: write %s: %w", name, err)
	}
	if err := os.Rename(tmp, dest); err != nil {
		return fmt.Errorf("store: rename %s: %w", name, err)
	}
	return nil
}
