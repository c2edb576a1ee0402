package ratelimit

import (
	"context"
	"sync"
	"time"
)

// bucket holds one client's admission credits. lastRefill advances on every
// Allow call for the key, which deliberately drops sub-second refill credit.
type bucket struct {
	tokens     int
	lastRefill time.Time
}

// MemoryLimiter is an in-memory keyed token bucket. Each key refills at one
// token per elapsed whole second, capped at the configured limit. A
// background goroutine evicts keys not seen within 2x the cleanup interval,
// and the map is additionally capped at maxEntries to bound memory under many
// distinct client identities.
type MemoryLimiter struct {
	limit           int
	cleanupInterval time.Duration
	maxEntries      int
	now             func() time.Time

	mu      sync.Mutex
	buckets map[string]*bucket
	done    chan struct{}
	closed  bool
}

// NewMemoryLimiter creates a limiter with the given bucket capacity, cleanup
// interval, and maximum tracked keys. It starts a background goroutine for
// eviction.
func NewMemoryLimiter(limit int, cleanupInterval time.Duration, maxEntries int) *MemoryLimiter {
	m := &MemoryLimiter{
		limit:           limit,
		cleanupInterval: cleanupInterval,
		maxEntries:      maxEntries,
		now:             time.Now,
		buckets:         make(map[string]*bucket),
		done:            make(chan struct{}),
	}
	go m.cleanup()
	return m
}

// Allow admits or rejects one request for key.
func (m *MemoryLimiter) Allow(_ context.Context, key string) (bool, Info, error) {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	b, exists := m.buckets[key]
	if !exists {
		if len(m.buckets) >= m.maxEntries {
			m.evictOldestLocked()
		}
		b = &bucket{tokens: m.limit, lastRefill: now}
		m.buckets[key] = b
	}

	refill := int(now.Sub(b.lastRefill) / time.Second)
	if refill > 0 {
		b.tokens += refill
		if b.tokens > m.limit {
			b.tokens = m.limit
		}
	}
	b.lastRefill = now

	allowed := b.tokens > 0
	if allowed {
		b.tokens--
	}

	info := Info{
		Limit:     m.limit,
		Remaining: b.tokens,
		ResetAt:   now.Add(time.Duration(m.limit-b.tokens) * time.Second),
	}
	if !allowed {
		// Next token arrives one whole second after this refill timestamp.
		info.RetryAfter = time.Second
	}
	return allowed, info, nil
}

// Close stops the background cleanup goroutine.
func (m *MemoryLimiter) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.closed {
		m.closed = true
		close(m.done)
	}
}

// cleanup periodically evicts buckets that have not been touched within
// 2x the cleanup interval.
func (m *MemoryLimiter) cleanup() {
	ticker := time.NewTicker(m.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.evictStale()
		}
	}
}

func (m *MemoryLimiter) evictStale() {
	cutoff := m.now().Add(-2 * m.cleanupInterval)
	m.mu.Lock()
	defer m.mu.Unlock()
	for key, b := range m.buckets {
		if b.lastRefill.Before(cutoff) {
			delete(m.buckets, key)
		}
	}
}

// evictOldestLocked drops the least recently touched bucket to make room for
// a new key. Caller holds mu.
func (m *MemoryLimiter) evictOldestLocked() {
	var oldestKey string
	var oldest time.Time
	for key, b := range m.buckets {
		if oldestKey == "" || b.lastRefill.Before(oldest) {
			oldestKey = key
			oldest = b.lastRefill
		}
	}
	if oldestKey != "" {
		delete(m.buckets, oldestKey)
	}
}
