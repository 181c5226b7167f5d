package cache

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value    V
	storedAt time.Time
	ttl      time.Duration
}

// Cache is an in-memory key/value store with a per-entry TTL. An expired
// entry is logically absent; it is evicted lazily on the read that observes
// the expiry. Values live at most for the lifetime of the process.
type Cache[V any] struct {
	mu      sync.Mutex
	entries map[string]entry[V]
	now     func() time.Time
}

func New[V any]() *Cache[V] {
	return NewWithClock[V](time.Now)
}

// NewWithClock builds a cache with an injectable clock so tests can control
// expiry without real time passing.
func NewWithClock[V any](now func() time.Time) *Cache[V] {
	return &Cache[V]{entries: make(map[string]entry[V]), now: now}
}

// Get returns the value for key, or false when the key is absent or its TTL
// has elapsed.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	e, ok := c.entries[key]
	if !ok {
		return zero, false
	}
	if c.now().Sub(e.storedAt) >= e.ttl {
		delete(c.entries, key)
		return zero, false
	}
	return e.value, true
}

// Set stores value under key with the given TTL, overwriting any existing
// entry unconditionally.
func (c *Cache[V]) Set(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[V]{value: value, storedAt: c.now(), ttl: ttl}
}
