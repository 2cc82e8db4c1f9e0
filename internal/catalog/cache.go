package catalog

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CacheSchemaVersion is the current version of the cached snapshot layout.
// Increment this when Snapshot changes shape to drop old entries.
const CacheSchemaVersion = "1.0"

const snapshotCacheKey = "catalog"

// cachedSnapshot wraps a snapshot with version metadata
type cachedSnapshot struct {
	Version  string
	Snapshot *Snapshot
}

// snapshotCache holds the current catalog snapshot with a TTL so changes
// made outside this process are picked up eventually.
//
// Every invalidation bumps a generation counter. A snapshot built from reads
// that started before an invalidation is not stored.
type snapshotCache struct {
	lru        *expirable.LRU[string, *cachedSnapshot]
	mu         sync.Mutex
	generation uint64
}

func newSnapshotCache(ttl time.Duration) *snapshotCache {
	return &snapshotCache{
		lru: expirable.NewLRU[string, *cachedSnapshot](1, nil, ttl),
	}
}

// Get returns the cached snapshot, false when missing, expired or stale
func (c *snapshotCache) Get() (*Snapshot, bool) {
	entry, found := c.lru.Get(snapshotCacheKey)
	if !found {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(snapshotCacheKey)
		return nil, false
	}
	return entry.Snapshot, true
}

// Generation returns the current invalidation generation
func (c *snapshotCache) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

// Set stores s unless the cache was invalidated after generation gen
func (c *snapshotCache) Set(s *Snapshot, gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		return false
	}
	c.lru.Add(snapshotCacheKey, &cachedSnapshot{
		Version:  CacheSchemaVersion,
		Snapshot: s,
	})
	return true
}

// Invalidate drops the cached snapshot after a catalog write
func (c *snapshotCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.lru.Purge()
}
