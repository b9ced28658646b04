// Package storage contains key-value implementations of the session
// persistence port.
package storage

import (
	"context"
	"sync"

	"nexprev/internal/session"
)

// memoryKV is the default, process-local session storage. It backs the
// mocked deployment mode where no database is configured.
type memoryKV struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewMemory returns an empty in-memory key-value store.
func NewMemory() session.KV {
	return &memoryKV{entries: make(map[string][]byte)}
}

func (s *memoryKV) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.entries[key]
	if !ok {
		return nil, session.ErrNotFound
	}

	// Copy so callers cannot mutate the stored entry.
	out := make([]byte, len(value))
	copy(out, value)

	return out, nil
}

func (s *memoryKV) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.entries[key] = stored

	return nil
}

func (s *memoryKV) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)

	return nil
}
