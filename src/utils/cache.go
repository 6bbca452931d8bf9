package utils

import (
	"sync"
	"time"
)

type cacheEntry[V any] struct {
	value      V
	expiration time.Time
}

// Cache is a keyed in-memory cache where every entry carries its own
// expiration. Expired entries are dropped lazily on access or by Purge.
type Cache[K comparable, V any] struct {
	entries map[K]cacheEntry[V]
	mutex   sync.RWMutex
	now     func() time.Time
}

// NewCache initializes an empty cache.
func NewCache[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{
		entries: make(map[K]cacheEntry[V]),
		now:     time.Now,
	}
}

// Set stores value under key for duration.
func (c *Cache[K, V]) Set(key K, value V, duration time.Duration) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries[key] = cacheEntry[V]{value: value, expiration: c.now().Add(duration)}
}

// Get retrieves the cached value if it has not expired yet.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mutex.RLock()
	entry, ok := c.entries[key]
	c.mutex.RUnlock()

	if !ok || !c.now().Before(entry.expiration) {
		if ok {
			c.Delete(key)
		}
		var zero V
		return zero, false
	}
	return entry.value, true
}

// Delete removes key from the cache.
func (c *Cache[K, V]) Delete(key K) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.entries, key)
}

// Purge drops every expired entry and returns how many were removed.
func (c *Cache[K, V]) Purge() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	now := c.now()
	removed := 0
	for key, entry := range c.entries {
		if !now.Before(entry.expiration) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of entries, expired or not.
func (c *Cache[K, V]) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return len(c.entries)
}

// Clear removes every cached value.
func (c *Cache[K, V]) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries = make(map[K]cacheEntry[V])
}
