package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/BuildersAQP/api-comida-peru/internal/models"
)

// HTTPSource fetches region documents from the remote object store over
// plain HTTP GET. An empty base URL disables fetching entirely: every call
// returns ErrUnavailable without touching the network.
type HTTPSource struct {
	baseURL string
	client  *http.Client
}

// NewHTTPSource creates a source for the given base URL and per-request
// timeout. A zero timeout falls back to 10 seconds.
func NewHTTPSource(baseURL string, timeout time.Duration) *HTTPSource {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// URL resolves a backing-store filename to its fully-qualified URL. It
// returns "" when fetching is disabled.
func (s *HTTPSource) URL(file string) string {
	if s.baseURL == "" {
		return ""
	}
	return s.baseURL + "/" + url.PathEscape(file)
}

// FetchRegion issues one GET to the backing store. Network failures and
// non-2xx responses degrade to ErrUnavailable; a malformed body is a parse
// error that must not be masked, since that risks serving corrupt dish data.
func (s *HTTPSource) FetchRegion(ctx context.Context, file string) (*models.RegionDocument, error) {
	u := s.URL(file)
	if u == "" {
		return nil, ErrUnavailable
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", file, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		slog.Warn("Backing store unreachable", "file", file, "error", err)
		return nil, ErrUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Warn("Backing store returned non-success", "file", file, "status", resp.StatusCode)
		return nil, ErrUnavailable
	}

	var doc models.RegionDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse region document %s: %w", file, err)
	}
	return &doc, nil
}
