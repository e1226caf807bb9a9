// Package memory provides a process-local key-value store. Data is lost on
// restart.
package memory

import (
	"context"
	"maps"
	"sync"

	"deliverydesk/internal/core/ports"
)

// Store keeps values in a map guarded by a mutex.
type Store struct {
	mu   sync.RWMutex
	data map[string]string
}

var _ ports.KeyValueStore = (*Store)(nil)

// NewStore creates a store, optionally pre-seeded with entries.
func NewStore(seed map[string]string) *Store {
	data := make(map[string]string, len(seed))
	maps.Copy(data, seed)
	return &Store{data: data}
}

func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	return value, ok, nil
}

func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return nil
}

func (s *Store) SetMany(_ context.Context, entries map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	maps.Copy(s.data, entries)
	return nil
}

// Snapshot returns a copy of every stored entry.
func (s *Store) Snapshot() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return maps.Clone(s.data)
}
