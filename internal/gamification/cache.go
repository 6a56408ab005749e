package gamification

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/funckode/funckode/internal/domain"
)

// CacheSchemaVersion is the current version of the cache schema
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

// cachedContributorEntry wraps a record with version metadata for cache invalidation
type cachedContributorEntry struct {
	Version  string              `json:"version"`
	Record   *domain.Contributor `json:"record"`
	CachedAt time.Time           `json:"cached_at"`
}

// contributorCache provides an in-memory LRU cache for contributor lookups
// with time-based expiration and version-based invalidation to prevent stale data.
type contributorCache struct {
	lru *expirable.LRU[string, *cachedContributorEntry]
}

// newContributorCache creates a new cache with the specified size and TTL.
func newContributorCache(size int, ttl time.Duration) *contributorCache {
	return &contributorCache{
		lru: expirable.NewLRU[string, *cachedContributorEntry](size, nil, ttl),
	}
}

// Get retrieves a record from the cache.
// Returns (record, true) if found and version matches.
// Automatically invalidates entries with mismatched versions.
func (c *contributorCache) Get(username string) (*domain.Contributor, bool) {
	entry, found := c.lru.Get(username)
	if !found {
		return nil, false
	}

	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(username)
		return nil, false
	}

	return entry.Record, true
}

// Set stores a record in the cache with current schema version.
func (c *contributorCache) Set(username string, record *domain.Contributor) {
	c.lru.Add(username, &cachedContributorEntry{
		Version:  CacheSchemaVersion,
		Record:   record,
		CachedAt: time.Now(),
	})
}

// Invalidate removes a record from the cache.
func (c *contributorCache) Invalidate(username string) {
	c.lru.Remove(username)
}

// Clear removes all entries from the cache.
func (c *contributorCache) Clear() {
	c.lru.Purge()
}
