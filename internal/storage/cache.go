package storage

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/BuildersAQP/api-comida-peru/internal/models"
)

// cacheEntry holds one parsed document and its freshness deadline.
type cacheEntry struct {
	doc     *models.RegionDocument
	expires time.Time
}

// Cache is a read-through decorator over a Source. Entries are keyed by the
// resolved backing-store URL and stay fresh for a fixed TTL; expired entries
// are re-fetched lazily on the next request. Concurrent misses for the same
// key are collapsed into a single upstream fetch. Unavailable and parse
// outcomes are never cached, so each request retries the backing store.
type Cache struct {
	source Source
	keyFor func(file string) string
	ttl    time.Duration
	now    func() time.Time

	mu      sync.RWMutex
	entries map[string]cacheEntry
	group   singleflight.Group
}

// NewCache wraps source with a read-through cache. keyFor maps a filename to
// its cache key (the resolved URL for HTTP sources); a key of "" bypasses the
// cache and delegates directly, which carries the fetch-disabled case through
// unchanged.
func NewCache(source Source, keyFor func(file string) string, ttl time.Duration) *Cache {
	return &Cache{
		source:  source,
		keyFor:  keyFor,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

// NewHTTPCache wraps an HTTPSource, keying entries by resolved URL.
func NewHTTPCache(source *HTTPSource, ttl time.Duration) *Cache {
	return NewCache(source, source.URL, ttl)
}

// FetchRegion returns the cached document for file, fetching from the
// backing store on miss or expiry.
func (c *Cache) FetchRegion(ctx context.Context, file string) (*models.RegionDocument, error) {
	key := c.keyFor(file)
	if key == "" {
		return c.source.FetchRegion(ctx, file)
	}

	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if ok && c.now().Before(e.expires) {
		return e.doc, nil
	}

	doc, err, _ := c.group.Do(key, func() (interface{}, error) {
		fetched, err := c.source.FetchRegion(ctx, file)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[key] = cacheEntry{doc: fetched, expires: c.now().Add(c.ttl)}
		c.mu.Unlock()
		return fetched, nil
	})
	if err != nil {
		return nil, err
	}
	return doc.(*models.RegionDocument), nil
}
