// Package cache provides a small time-to-live memoization store. Entries are
// immutable once written; a refresh after expiry simply replaces the value
// (last-write-wins). There is no eviction policy beyond expiry.
package cache

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// TTL is a keyed value store where every entry carries an expiry timestamp.
type TTL[V any] struct {
	mu      sync.RWMutex
	entries map[string]entry[V]
	now     func() time.Time
}

// New creates an empty TTL store.
func New[V any]() *TTL[V] {
	return &TTL[V]{
		entries: make(map[string]entry[V]),
		now:     time.Now,
	}
}

// Get returns the live value for key, if any. Expired entries report a miss.
func (c *TTL[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || c.now().After(e.expiresAt) {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores value under key for ttl, replacing any previous entry.
func (c *TTL[V]) Set(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	c.entries[key] = entry[V]{value: value, expiresAt: c.now().Add(ttl)}
	c.mu.Unlock()
}

// GetOrLoad returns the cached value for key, loading and storing it for ttl
// on a miss or after expiry. Load errors are returned without caching, so the
// next call retries.
func (c *TTL[V]) GetOrLoad(key string, ttl time.Duration, load func() (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}
	v, err := load()
	if err != nil {
		var zero V
		return zero, err
	}
	c.Set(key, v, ttl)
	return v, nil
}
