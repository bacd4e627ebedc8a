package structure

import (
	"context"
	"sort"
	"sync"
	"time"
)

// Cache holds decoded configuration files keyed by path.
// An entry expires once it is older than the TTL. A TTL of zero means every
// lookup after the instant of storing is a miss.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

type cacheEntry struct {
	data    any
	fetched time.Time
}

// EntryInfo describes a cached entry for diagnostics.
type EntryInfo struct {
	Path    string
	Fetched time.Time
	Age     time.Duration
	Expired bool
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithClock replaces time.Now as the cache clock.
func WithClock(now func() time.Time) CacheOption {
	return func(c *Cache) {
		c.now = now
	}
}

// NewCache creates an empty cache with the given TTL.
func NewCache(ttl time.Duration, opts ...CacheOption) *Cache {
	c := &Cache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TTL returns the configured time-to-live.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

func (c *Cache) expired(e cacheEntry, now time.Time) bool {
	return now.Sub(e.fetched) > c.ttl
}

// Get returns the value stored for path if it has not expired.
func (c *Cache) Get(path string) (any, bool) {
	c.mu.RLock()
	e, ok := c.entries[path]
	c.mu.RUnlock()
	if !ok || c.expired(e, c.now()) {
		return nil, false
	}
	return e.data, true
}

// Set stores v for path, replacing any existing entry.
func (c *Cache) Set(path string, v any) {
	c.mu.Lock()
	c.entries[path] = cacheEntry{data: v, fetched: c.now()}
	c.mu.Unlock()
}

// Invalidate drops the entry for path.
func (c *Cache) Invalidate(path string) {
	c.mu.Lock()
	delete(c.entries, path)
	c.mu.Unlock()
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	c.mu.Unlock()
}

// Len returns the number of stored entries, expired ones included.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Entries lists stored entries sorted by path.
func (c *Cache) Entries() []EntryInfo {
	now := c.now()
	c.mu.RLock()
	out := make([]EntryInfo, 0, len(c.entries))
	for p, e := range c.entries {
		out = append(out, EntryInfo{
			Path:    p,
			Fetched: e.fetched,
			Age:     now.Sub(e.fetched),
			Expired: c.expired(e, now),
		})
	}
	c.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// StartClearing clears the whole cache every interval until ctx is done or
// the returned stop function is called. A non-positive interval starts
// nothing.
func (c *Cache) StartClearing(ctx context.Context, interval time.Duration) (stop func()) {
	if interval <= 0 {
		return func() {}
	}
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.Clear()
			}
		}
	}()
	return func() {
		cancel()
		<-done
	}
}
