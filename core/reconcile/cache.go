package reconcile

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// statusCache coalesces concurrent status computations and optionally keeps the last
// listing for a TTL. A build that started before an invalidation is never stored.
type statusCache struct {
	ttl time.Duration
	now func() time.Time

	mu         sync.RWMutex
	entries    []SyncStatus
	built      time.Time
	valid      bool
	generation uint64

	sf singleflight.Group
}

func newStatusCache(ttl time.Duration, now func() time.Time) *statusCache {
	return &statusCache{ttl: ttl, now: now}
}

// isFresh must be called with mu held.
func (c *statusCache) isFresh() bool {
	if c.ttl <= 0 || !c.valid {
		return false
	}
	return c.now().Sub(c.built) <= c.ttl
}

// get returns a copy of the cached listing, building it with build when stale.
func (c *statusCache) get(ctx context.Context, build func(context.Context) []SyncStatus) []SyncStatus {
	// Fast path: cached and fresh
	c.mu.RLock()
	if c.isFresh() {
		out := cloneStatuses(c.entries)
		c.mu.RUnlock()
		return out
	}
	gen := c.generation
	c.mu.RUnlock()

	// Slow path: one build at a time, shared by concurrent callers
	result, _, _ := c.sf.Do("status", func() (interface{}, error) {
		c.mu.RLock()
		if c.isFresh() {
			out := c.entries
			c.mu.RUnlock()
			return out, nil
		}
		c.mu.RUnlock()

		// The build is shared, so one caller going away must not cut it short.
		// Store calls keep their own per-call timeouts.
		entries := build(context.WithoutCancel(ctx))

		c.mu.Lock()
		if c.ttl > 0 && c.generation == gen {
			c.entries = entries
			c.built = c.now()
			c.valid = true
		}
		c.mu.Unlock()
		return entries, nil
	})

	return cloneStatuses(result.([]SyncStatus))
}

// invalidate drops the cached listing and any build in flight from being stored.
func (c *statusCache) invalidate() {
	c.mu.Lock()
	c.entries = nil
	c.valid = false
	c.generation++
	c.mu.Unlock()
	c.sf.Forget("status")
}

func cloneStatuses(in []SyncStatus) []SyncStatus {
	if in == nil {
		return []SyncStatus{}
	}
	out := make([]SyncStatus, len(in))
	copy(out, in)
	return out
}
