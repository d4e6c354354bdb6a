package repository

import (
	"context"
	"sync"
)

// MemoryEngine keeps collection documents in a map. Used in tests and as a
// throwaway store when no data directory is configured.
type MemoryEngine struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewMemoryEngine creates an empty MemoryEngine.
func NewMemoryEngine() *MemoryEngine {
	return &MemoryEngine{docs: make(map[string][]byte)}
}

var _ Engine = (*MemoryEngine)(nil)

func (e *MemoryEngine) Load(_ context.Context, name string) ([]byte, error) {
	if !knownCollection(name) {
		return nil, ErrUnknownCollection
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	data, ok := e.docs[name]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (e *MemoryEngine) Save(_ context.Context, name string, data []byte) error {
	if !knownCollection(name) {
		return ErrUnknownCollection
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	stored := make([]byte, len(data))
	copy(stored, data)
	e.docs[name] = stored
	return nil
}
