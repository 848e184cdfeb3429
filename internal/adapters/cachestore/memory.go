package cachestore

import (
	"context"
	"sync"
)

type memoryStore struct {
	mutex sync.Mutex
	blobs map[string][]byte
}

// NewMemoryStore returns a Store that keeps blobs in memory. Used in
// tests and as a last-resort fallback when no durable backend is
// available.
func NewMemoryStore() Store {
	return &memoryStore{
		blobs: make(map[string][]byte),
	}
}

func (s *memoryStore) Load(ctx context.Context, namespace string) ([]byte, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	data, ok := s.blobs[namespace]
	if !ok {
		return nil, nil
	}

	copied := make([]byte, len(data))
	copy(copied, data)
	return copied, nil
}

func (s *memoryStore) Save(ctx context.Context, namespace string, data []byte) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	copied := make([]byte, len(data))
	copy(copied, data)
	s.blobs[namespace] = copied
	return nil
}
