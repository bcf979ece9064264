// Package cache is a small keyed cache that loads missing entries on demand.
package cache

import (
	"sync"
)

// LoadFunc produces the value for a key that is not cached yet
type LoadFunc[V any] func() (V, error)

// Cache maps keys to values behind a read/write lock. Values are only added
// through Load so a failed load never leaves an entry behind.
type Cache[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
}

func New[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{
		entries: make(map[K]V),
	}
}

func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

// Load returns the cached value for key or calls load and keeps its result.
// Concurrent misses for the same key may each call load; the last one wins.
func (c *Cache[K, V]) Load(key K, load LoadFunc[V]) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	v, err := load()
	if err != nil {
		return v, err
	}

	c.mu.Lock()
	c.entries[key] = v
	c.mu.Unlock()

	return v, nil
}

// Forget drops the given keys
func (c *Cache[K, V]) Forget(keys ...K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.entries, k)
	}
}

// Clear drops every entry
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}

func (c *Cache[K, V]) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
