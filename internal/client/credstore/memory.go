package credstore

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory Store. It backs tests and any embedding that
// does not want credentials written to disk.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	s.values[key] = v
	return nil
}

// SetPair stores the access and refresh tokens under one lock. An empty
// refresh token leaves any previously stored one in place.
func (s *MemoryStore) SetPair(_ context.Context, access, refresh []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[KeyAuthToken] = append([]byte(nil), access...)
	if len(refresh) > 0 {
		s.values[KeyRefreshToken] = append([]byte(nil), refresh...)
	}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = make(map[string][]byte)
	return nil
}
