package ratelimit

import (
	"fmt"
	"log/slog"
	"net/http"
)

// FallbackKey identifies clients whose address cannot be determined. All such
// requests share one bucket.
const FallbackKey = "unknown"

// rejectedBody is the plain-text 429 response body.
const rejectedBody = "Demasiadas solicitudes"

// Middleware returns HTTP middleware that enforces the rate limit. The
// client identity is taken from the trusted edge-injected header (the proxy
// sets it to the connecting IP); requests without it fall back to a shared
// placeholder key. A limiter backend failure fails open: admission control
// degrading must not take the catalog down with it.
func Middleware(limiter Limiter, clientIPHeader string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(clientIPHeader)
			if key == "" {
				key = FallbackKey
			}

			allowed, info, err := limiter.Allow(r.Context(), key)
			if err != nil {
				slog.Error("Rate limiter unavailable, admitting request", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
			w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
			w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetAt.Unix()))

			if !allowed {
				retryAfterSecs := int(info.RetryAfter.Seconds())
				if retryAfterSecs < 1 {
					retryAfterSecs = 1
				}
				w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfterSecs))
				w.Header().Set("Content-Type", "text/plain; charset=utf-8")
				w.WriteHeader(http.StatusTooManyRequests)
				fmt.Fprintln(w, rejectedBody)

				slog.Warn("Rate limit exceeded",
					"key", key,
					"limit", info.Limit,
					"retry_after", retryAfterSecs,
				)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
