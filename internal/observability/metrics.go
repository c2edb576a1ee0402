package observability

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/BuildersAQP/api-comida-peru/internal/models"
)

// MetricsServer exposes the Prometheus scrape endpoint on its own port, away
// from the public catalog routes. The fetch instrumentation recorded by
// InstrumentedSource surfaces here.
type MetricsServer struct {
	server *http.Server
}

// NewMetricsServer builds the scrape server from the metrics configuration.
// Without a registered Prometheus exporter the server still starts but mounts
// no handler, and scrapes answer 404.
func NewMetricsServer(cfg models.MetricsConfig, provider *Provider) *MetricsServer {
	scrapeMux := http.NewServeMux()
	if provider != nil && provider.promExporter != nil {
		scrapeMux.Handle(cfg.Path, promhttp.Handler())
	}

	return &MetricsServer{
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           scrapeMux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Start serves scrapes until Shutdown. It returns http.ErrServerClosed on
// graceful shutdown.
func (ms *MetricsServer) Start() error {
	slog.Info("Starting metrics server", "addr", ms.server.Addr)
	return ms.server.ListenAndServe()
}

// Shutdown gracefully stops the metrics server.
func (ms *MetricsServer) Shutdown(ctx context.Context) error {
	return ms.server.Shutdown(ctx)
}
