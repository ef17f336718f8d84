// Package memory implements the default in-process backend: a plain map.
package memory

import (
	"sync"

	"github.com/unkn0wn-root/webstore/backend"
)

// Store is a map-backed backend.Backend. The zero value is not usable; call New.
type Store struct {
	mu sync.RWMutex
	m  map[string]string
}

var _ backend.Backend = (*Store)(nil)

func New() *Store { return &Store{m: make(map[string]string)} }

func (s *Store) GetItem(key string) (string, bool, error) {
	s.mu.RLock()
	v, ok := s.m[key]
	s.mu.RUnlock()
	return v, ok, nil
}

func (s *Store) SetItem(key, value string) error {
	s.mu.Lock()
	s.m[key] = value
	s.mu.Unlock()
	return nil
}

func (s *Store) RemoveItem(key string) error {
	s.mu.Lock()
	delete(s.m, key)
	s.mu.Unlock()
	return nil
}

// Len reports the number of stored entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}
