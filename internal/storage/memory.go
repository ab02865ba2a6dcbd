// Package storage provides key-value blob persistence implementations.
package storage

import (
	"context"
	"sync"

	"github.com/hammamikhairi/forkcook/internal/domain"
	"github.com/hammamikhairi/forkcook/internal/logger"
)

// Compile-time interface check.
var _ domain.BlobStore = (*MemoryStore)(nil)

// MemoryStore is an in-memory blob store. Safe for concurrent access.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
	log   *logger.Logger
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore(log *logger.Logger) *MemoryStore {
	return &MemoryStore{
		blobs: make(map[string][]byte),
		log:   log,
	}
}

// Put stores a copy of value under key, replacing any previous value.
func (s *MemoryStore) Put(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.log.Debug("memory store: put %s (%d bytes)", key, len(value))
	s.blobs[key] = append([]byte(nil), value...)
	return nil
}

// Get returns a copy of the value stored under key.
func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.blobs[key]
	if !ok {
		s.log.Debug("memory store: key not found: %s", key)
		return nil, domain.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}
