package inventory

import (
	"context"
	"sync"
	"time"

	"cardstock/core/recon"

	"golang.org/x/sync/singleflight"
)

// CachedSource wraps a Source with a TTL cache.
// It exists for the storage-backed source so repeated reconciliations against
// the same snapshot don't refetch the object. Singleflight collapses
// concurrent loads into one fetch. Invalidation is explicit; there is no
// background refresh.
type CachedSource struct {
	source Source
	ttl    time.Duration

	mu       sync.RWMutex
	listings []recon.Listing
	built    time.Time
	sf       singleflight.Group
}

// NewCachedSource wraps source with the given TTL.
// A zero TTL disables caching; every Load hits the underlying source.
func NewCachedSource(source Source, ttl time.Duration) *CachedSource {
	return &CachedSource{source: source, ttl: ttl}
}

// Load implements Source. It returns the cached snapshot when fresh,
// otherwise loads through the underlying source.
func (c *CachedSource) Load(ctx context.Context) ([]recon.Listing, error) {
	if c.ttl <= 0 {
		return c.source.Load(ctx)
	}

	c.mu.RLock()
	if c.listings != nil && time.Since(c.built) <= c.ttl {
		listings := c.listings
		c.mu.RUnlock()
		return listings, nil
	}
	c.mu.RUnlock()

	// Single key: one snapshot per source. Concurrent callers share one load.
	result, err, _ := c.sf.Do("snapshot", func() (any, error) {
		// Re-check: another caller may have refreshed while we waited.
		c.mu.RLock()
		if c.listings != nil && time.Since(c.built) <= c.ttl {
			listings := c.listings
			c.mu.RUnlock()
			return listings, nil
		}
		c.mu.RUnlock()

		listings, err := c.source.Load(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.listings = listings
		c.built = time.Now()
		c.mu.Unlock()

		return listings, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]recon.Listing), nil
}

// Invalidate drops the cached snapshot. The next Load fetches fresh data.
func (c *CachedSource) Invalidate() {
	c.mu.Lock()
	c.listings = nil
	c.built = time.Time{}
	c.mu.Unlock()
}
