package session

import (
	"context"
	"sync"

	"gangway/pkg/platform/sentinel"
)

// InMemoryStore keeps session state in a mutex-guarded map. Used in the test
// profile and as the fallback when Redis is not configured.
type InMemoryStore struct {
	mu    sync.RWMutex
	state map[string]string
}

// NewInMemoryStore creates an empty in-memory state store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{state: make(map[string]string)}
}

func (s *InMemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state[key] = value
	return nil
}

func (s *InMemoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.state[key]
	if !ok {
		return "", sentinel.ErrNotFound
	}
	return value, nil
}

// Len reports how many keys are set. Test helper.
func (s *InMemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.state)
}
