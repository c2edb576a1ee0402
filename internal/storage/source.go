// Package storage provides access to the backing store of per-region dish
// documents: an HTTP fetcher for the remote object store, a read-through
// TTL cache keyed by resolved URL, and a static in-memory source for tests.
package storage

import (
	"context"
	"errors"

	"github.com/BuildersAQP/api-comida-peru/internal/models"
)

// ErrUnavailable is returned when a region's document cannot be served:
// fetches are disabled (no base URL), the backing store is unreachable, or it
// answered non-2xx. It is a valid degraded outcome, distinct from a parse
// failure of the document body, which surfaces as its own error.
var ErrUnavailable = errors.New("region data unavailable")

// Source retrieves a region's dish document by its backing-store filename.
type Source interface {
	// FetchRegion returns the parsed document for file. The returned document
	// is shared and must be treated as read-only.
	FetchRegion(ctx context.Context, file string) (*models.RegionDocument, error)
}
