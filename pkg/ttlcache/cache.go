// Package ttlcache provides a small bounded key/value cache with lazy
// per-entry expiration and oldest-first eviction.
package ttlcache

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value    V
	storedAt time.Time
}

// Cache is a bounded TTL cache. Entries expire ttl after insertion and are
// removed lazily on Get; there is no background sweeper. When an insert would
// exceed maxSize, the oldest-inserted entry is evicted (insertion order, not
// LRU). Safe for concurrent use.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]entry[V]
	order   []K
	maxSize int
	ttl     time.Duration
}

// New creates a cache holding at most maxSize entries, each visible for ttl.
func New[K comparable, V any](maxSize int, ttl time.Duration) *Cache[K, V] {
	if maxSize <= 0 {
		maxSize = 1
	}
	return &Cache[K, V]{
		entries: make(map[K]entry[V]),
		maxSize: maxSize,
		ttl:     ttl,
	}
}

// Get returns the value for key. An entry older than ttl is treated as
// absent and removed.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	e, ok := c.entries[key]
	if !ok {
		return zero, false
	}
	if time.Since(e.storedAt) > c.ttl {
		c.remove(key)
		return zero, false
	}
	return e.value, true
}

// Set stores value under key. If key is new and the cache is full, the
// oldest-inserted entry is evicted first. Overwriting an existing key
// refreshes its timestamp but keeps its position in eviction order.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		c.entries[key] = entry[V]{value: value, storedAt: time.Now()}
		return
	}

	if len(c.entries) >= c.maxSize {
		c.remove(c.order[0])
	}

	c.entries[key] = entry[V]{value: value, storedAt: time.Now()}
	c.order = append(c.order, key)
}

// Clear drops all entries.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]entry[V])
	c.order = nil
}

// Len returns the number of stored entries, expired or not.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// remove deletes key from both the map and the order slice.
// Caller must hold c.mu.
func (c *Cache[K, V]) remove(key K) {
	delete(c.entries, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}
