package cache

import (
	"context"
	"slices"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultMemoryEntries bounds a [MemoryCache] when no size is given.
const DefaultMemoryEntries = 256

// MemoryCache holds entries in a fixed-size LRU. The least recently used
// entry is evicted when the cache is full.
type MemoryCache struct {
	lru *lru.Cache[string, cacheEntry]
	now func() time.Time
}

// NewMemoryCache creates an in-process cache holding at most entries items.
// A non-positive size selects [DefaultMemoryEntries].
func NewMemoryCache(entries int) (Cache, error) {
	if entries <= 0 {
		entries = DefaultMemoryEntries
	}
	l, err := lru.New[string, cacheEntry](entries)
	if err != nil {
		return nil, err
	}
	return &MemoryCache{lru: l, now: time.Now}, nil
}

// Get retrieves a value from the cache.
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	entry, ok := c.lru.Get(key)
	if !ok {
		return nil, false, nil
	}
	if entry.expired(c.now()) {
		c.lru.Remove(key)
		return nil, false, nil
	}
	return slices.Clone(entry.Data), true, nil
}

// Set stores a copy of data in the cache.
func (c *MemoryCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	entry := cacheEntry{Data: slices.Clone(data)}
	if ttl > 0 {
		entry.ExpiresAt = c.now().Add(ttl)
	}
	c.lru.Add(key, entry)
	return nil
}

// Delete removes a value from the cache.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.lru.Remove(key)
	return nil
}

// Len returns the number of stored entries, including expired ones not yet
// evicted.
func (c *MemoryCache) Len() int {
	return c.lru.Len()
}

// Close drops all entries.
func (c *MemoryCache) Close() error {
	c.lru.Purge()
	return nil
}

// Ensure MemoryCache implements Cache.
var _ Cache = (*MemoryCache)(nil)
