package acl

import (
	"strings"
	"sync"
	"time"
)

// Cache is a read-through cache for IsAllowed results, keyed on the
// (role, resource, privilege) triple. Implementations must be safe for
// concurrent use.
type Cache interface {
	Get(role, resource, privilege string) (allowed, ok bool)
	Set(role, resource, privilege string, allowed bool)
	Size() int
	Clear()
}

type cacheEntry struct {
	allowed   bool
	expiresAt time.Time // zero means no expiry
}

// memoryCache is a sync.RWMutex-guarded map with an optional fixed TTL
// applied to every entry. Adapted in shape from the teacher's CacheImpl.
type memoryCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration // zero means no expiry
}

// NewCache returns a Cache with no expiry. Use NewCacheWithTTL for
// time-bounded entries.
func NewCache() Cache {
	return &memoryCache{entries: make(map[string]cacheEntry)}
}

// NewCacheWithTTL returns a Cache whose entries expire ttl after they are
// set. A non-positive ttl is equivalent to NewCache.
func NewCacheWithTTL(ttl time.Duration) Cache {
	return &memoryCache{entries: make(map[string]cacheEntry), ttl: ttl}
}

func cacheKey(role, resource, privilege string) string {
	var b strings.Builder
	b.WriteString(role)
	b.WriteByte(0)
	b.WriteString(resource)
	b.WriteByte(0)
	b.WriteString(privilege)
	return b.String()
}

func (c *memoryCache) Get(role, resource, privilege string) (bool, bool) {
	c.mu.RLock()
	entry, ok := c.entries[cacheKey(role, resource, privilege)]
	c.mu.RUnlock()
	if !ok {
		return false, false
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		return false, false
	}
	return entry.allowed, true
}

func (c *memoryCache) Set(role, resource, privilege string, allowed bool) {
	entry := cacheEntry{allowed: allowed}
	if c.ttl > 0 {
		entry.expiresAt = time.Now().Add(c.ttl)
	}
	c.mu.Lock()
	c.entries[cacheKey(role, resource, privilege)] = entry
	c.mu.Unlock()
}

func (c *memoryCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *memoryCache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	c.mu.Unlock()
}
