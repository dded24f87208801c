package storage

import (
	"context"
	"errors"
	"sync"

	"solar-chrome-service/internal/ports"
)

var errEmptyKey = errors.New("kv store: empty key")

// MemoryStore is an in-process KeyValueStore. It backs tests and
// embedded single-process setups.
type MemoryStore struct {
	mu sync.RWMutex
	m  map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{m: make(map[string][]byte)}
}

func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errEmptyKey
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.m[key]
	if !ok {
		return nil, ports.ErrNotFound
	}

	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (s *MemoryStore) Put(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return errEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	v := make([]byte, len(value))
	copy(v, value)
	s.m[key] = v
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.m, key)
	return nil
}
