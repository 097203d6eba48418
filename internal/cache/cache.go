// Package cache is a small TTL'd in-memory cache guarding catalog reads.
package cache

import (
	"strings"
	"sync"
	"time"
)

const cleanupInterval = 5 * time.Minute

type entry struct {
	value      interface{}
	expiration int64
}

type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
}

// New builds a cache with the given default TTL and starts the background
// sweep of expired entries.
func New(defaultTTL time.Duration) *Cache {
	c := &Cache{
		entries: make(map[string]entry),
		ttl:     defaultTTL,
	}
	go c.cleanupExpired()
	return c
}

// Set stores a value, overriding the default TTL when one is given.
func (c *Cache) Set(key string, value interface{}, ttl ...time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	duration := c.ttl
	if len(ttl) > 0 {
		duration = ttl[0]
	}
	c.entries[key] = entry{
		value:      value,
		expiration: time.Now().Add(duration).UnixNano(),
	}
}

// Get returns the value for key when present and not expired.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, found := c.entries[key]
	if !found || time.Now().UnixNano() > e.expiration {
		return nil, false
	}
	return e.value, true
}

// Delete removes a single key.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// DeleteByPrefix removes every key starting with prefix. Used to invalidate
// all cached listings after a catalog write.
func (c *Cache) DeleteByPrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
}

// Size returns the number of live entries.
func (c *Cache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Cache) cleanupExpired() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now().UnixNano()
		c.mu.Lock()
		for key, e := range c.entries {
			if now > e.expiration {
				delete(c.entries, key)
			}
		}
		c.mu.Unlock()
	}
}
