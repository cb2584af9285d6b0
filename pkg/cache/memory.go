package cache

import (
	"context"
	"sync"
	"time"
)

// item represents a cached item with expiration
type item struct {
	value      string
	expiration int64
}

// expired checks if the cache item has expired
func (i item) expired() bool {
	if i.expiration == 0 {
		return false
	}
	return time.Now().UnixNano() > i.expiration
}

// MemoryStore is a thread-safe in-memory Store with expiration.
// It is used when Redis is unreachable so lookups still benefit
// from short-lived caching within a single process.
type MemoryStore struct {
	items           map[string]item
	mu              sync.RWMutex
	cleanupInterval time.Duration
	stop            chan struct{}
	stopOnce        sync.Once
}

// NewMemoryStore creates an in-memory cache. A cleanupInterval > 0
// starts a janitor goroutine that drops expired entries.
func NewMemoryStore(cleanupInterval time.Duration) *MemoryStore {
	store := &MemoryStore{
		items:           make(map[string]item),
		cleanupInterval: cleanupInterval,
		stop:            make(chan struct{}),
	}

	if cleanupInterval > 0 {
		go store.startCleanupTimer()
	}

	return store
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	it, found := m.items[key]
	if !found || it.expired() {
		return "", false, nil
	}

	return it.value, true, nil
}

func (m *MemoryStore) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	var exp int64
	if ttl > 0 {
		exp = time.Now().Add(ttl).UnixNano()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.items[key] = item{
		value:      value,
		expiration: exp,
	}
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.items, key)
	return nil
}

// Ping always succeeds; the process-local store has no remote endpoint
func (m *MemoryStore) Ping(_ context.Context) error {
	return nil
}

// Count returns the number of items in the cache (including expired items)
func (m *MemoryStore) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.items)
}

// Close stops the janitor goroutine
func (m *MemoryStore) Close() {
	m.stopOnce.Do(func() { close(m.stop) })
}

// startCleanupTimer starts the cleanup ticker
func (m *MemoryStore) startCleanupTimer() {
	ticker := time.NewTicker(m.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.deleteExpired()
		case <-m.stop:
			return
		}
	}
}

// deleteExpired deletes all expired items from the cache
func (m *MemoryStore) deleteExpired() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UnixNano()
	for k, v := range m.items {
		if v.expiration > 0 && now > v.expiration {
			delete(m.items, k)
		}
	}
}
