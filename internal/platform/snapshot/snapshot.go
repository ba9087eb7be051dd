// Package snapshot provides small time-boxed caches for immutable values
// fetched from external providers. A snapshot is a value plus the moment it
// was taken; readers get the value back only while it is younger than the
// cache TTL. Writes replace the snapshot wholesale.
package snapshot

import (
	"sync"
	"time"
)

// Clock returns the current time. Injectable so tests can control expiry.
type Clock func() time.Time

// Cache holds a single snapshot of T guarded for concurrent use.
type Cache[T any] struct {
	mu        sync.RWMutex
	value     T
	fetchedAt time.Time
	ttl       time.Duration
	now       Clock
}

// NewCache creates a cache with the given TTL. A nil clock means time.Now.
func NewCache[T any](ttl time.Duration, now Clock) *Cache[T] {
	if now == nil {
		now = time.Now
	}
	return &Cache[T]{ttl: ttl, now: now}
}

// Get returns the cached value and true while the snapshot is fresh.
func (c *Cache[T]) Get() (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.fetchedAt.IsZero() || c.now().Sub(c.fetchedAt) >= c.ttl {
		var zero T
		return zero, false
	}
	return c.value, true
}

// Set replaces the snapshot, stamping it with the current time.
func (c *Cache[T]) Set(value T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = value
	c.fetchedAt = c.now()
}

// KeyedCache holds one snapshot of T per string key. Used for per-origin
// lookups such as geo-IP results.
type KeyedCache[T any] struct {
	mu      sync.RWMutex
	entries map[string]entry[T]
	ttl     time.Duration
	now     Clock
}

type entry[T any] struct {
	value     T
	fetchedAt time.Time
}

// NewKeyedCache creates a keyed cache with the given TTL. A nil clock means time.Now.
func NewKeyedCache[T any](ttl time.Duration, now Clock) *KeyedCache[T] {
	if now == nil {
		now = time.Now
	}
	return &KeyedCache[T]{entries: make(map[string]entry[T]), ttl: ttl, now: now}
}

// Get returns the cached value for key and true while its snapshot is fresh.
func (c *KeyedCache[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok || c.now().Sub(e.fetchedAt) >= c.ttl {
		var zero T
		return zero, false
	}
	return e.value, true
}

// Set replaces the snapshot for key. Expired entries for other keys are
// pruned opportunistically to keep the map from growing without bound.
func (c *KeyedCache[T]) Set(key string, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	for k, e := range c.entries {
		if now.Sub(e.fetchedAt) >= c.ttl {
			delete(c.entries, k)
		}
	}
	c.entries[key] = entry[T]{value: value, fetchedAt: now}
}

// Len reports the number of stored entries, fresh or not.
func (c *KeyedCache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
