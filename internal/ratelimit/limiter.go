// Package ratelimit provides per-client admission control for HTTP requests
// using a token bucket that refills at one token per elapsed whole second up
// to a fixed capacity. It includes in-memory and Redis-backed stores and HTTP
// middleware that sets standard rate limit response headers.
package ratelimit

import (
	"context"
	"time"
)

// Limiter defines the admission contract. Implementations must be safe for
// concurrent use.
type Limiter interface {
	// Allow checks whether a request identified by key should be admitted.
	// A bucket is created lazily on first sight of a key, full. The bucket's
	// timestamp advances on every call, admitted or not, so fractional-second
	// refill remainders are dropped. An error means the backing store failed,
	// not that the request was denied.
	Allow(ctx context.Context, key string) (allowed bool, info Info, err error)

	// Close stops background goroutines and releases resources.
	Close()
}

// Info contains rate limit state for populating response headers.
type Info struct {
	Limit      int           // Bucket capacity
	Remaining  int           // Tokens left after this call
	ResetAt    time.Time     // When the bucket will be full again
	RetryAfter time.Duration // How long to wait (meaningful only when denied)
}
