package store

import (
	"context"
	"sync"
)

// MemoryStore keeps everything in a map. Used for tests and local dev.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]map[string][]byte)}
}

func (m *MemoryStore) Get(_ context.Context, contextID, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if bucket, ok := m.data[contextID]; ok {
		if v, ok := bucket[key]; ok {
			cp := make([]byte, len(v))
			copy(cp, v)
			return cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) Set(_ context.Context, contextID, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	bucket, ok := m.data[contextID]
	if !ok {
		bucket = make(map[string][]byte)
		m.data[contextID] = bucket
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	bucket[key] = cp
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, contextID, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if bucket, ok := m.data[contextID]; ok {
		delete(bucket, key)
	}
	return nil
}
