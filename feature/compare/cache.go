package compare

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"ddrconf/core/timing"
)

// cachedTiming is one parsed dump document with its build time.
type cachedTiming struct {
	doc      *timing.Timing
	warnings []string
	built    time.Time
}

func (c *cachedTiming) expired(ttl time.Duration) bool {
	return time.Since(c.built) > ttl
}

// timingCache caches parsed dump documents by object name. Concurrent
// requests for the same name are collapsed with singleflight so the
// object is fetched and parsed once per TTL window.
type timingCache struct {
	src timing.Source
	ttl time.Duration

	mu      sync.RWMutex
	entries map[string]*cachedTiming
	sf      singleflight.Group
}

func newTimingCache(src timing.Source, ttl time.Duration) *timingCache {
	return &timingCache{
		src:     src,
		ttl:     ttl,
		entries: make(map[string]*cachedTiming),
	}
}

// get returns the parsed document for name, fetching it if the cached
// copy is missing or stale.
func (c *timingCache) get(ctx context.Context, name string) (*timing.Timing, []string, error) {
	c.mu.RLock()
	entry, ok := c.entries[name]
	c.mu.RUnlock()
	if ok && !entry.expired(c.ttl) {
		return entry.doc, entry.warnings, nil
	}

	v, err, _ := c.sf.Do(name, func() (any, error) {
		// Another caller may have refreshed while we waited.
		c.mu.RLock()
		entry, ok := c.entries[name]
		c.mu.RUnlock()
		if ok && !entry.expired(c.ttl) {
			return entry, nil
		}

		doc, warnings, err := timing.Load(ctx, c.src, name)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", name, err)
		}
		entry = &cachedTiming{doc: doc, warnings: warnings, built: time.Now()}
		c.mu.Lock()
		c.entries[name] = entry
		c.mu.Unlock()
		return entry, nil
	})
	if err != nil {
		return nil, nil, err
	}
	entry = v.(*cachedTiming)
	return entry.doc, entry.warnings, nil
}

// invalidate drops the cached copy of name, if any.
func (c *timingCache) invalidate(name string) {
	c.mu.Lock()
	delete(c.entries, name)
	c.mu.Unlock()
}
