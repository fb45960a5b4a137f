package repository

import (
	"context"
	"sync"
)

// defaultMaxEntries caps the in-memory cache so a long-running server
// without Redis cannot grow without bound.
const defaultMaxEntries = 10000

// MemoryCache is an in-process SummaryCache used when Redis is not
// configured, and in tests. It holds at most maxEntries values; once full,
// an arbitrary entry is evicted to make room.
type MemoryCache struct {
	mu         sync.RWMutex
	data       map[string]string
	maxEntries int
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		data:       make(map[string]string),
		maxEntries: defaultMaxEntries,
	}
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	val, ok := m.data[key]
	return val, ok
}

func (m *MemoryCache) Set(_ context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.data[key]; !exists && len(m.data) >= m.maxEntries {
		for evict := range m.data {
			delete(m.data, evict)
			break
		}
	}

	m.data[key] = value
	return nil
}
