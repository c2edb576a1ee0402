package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"

	"github.com/BuildersAQP/api-comida-peru/internal/api"
	"github.com/BuildersAQP/api-comida-peru/internal/catalog"
	"github.com/BuildersAQP/api-comida-peru/internal/config"
	"github.com/BuildersAQP/api-comida-peru/internal/logger"
	"github.com/BuildersAQP/api-comida-peru/internal/models"
	"github.com/BuildersAQP/api-comida-peru/internal/observability"
	"github.com/BuildersAQP/api-comida-peru/internal/ratelimit"
	"github.com/BuildersAQP/api-comida-peru/internal/storage"
	"github.com/BuildersAQP/api-comida-peru/internal/version"
)

var (
	configFile  = flag.String("config", "", "Path to configuration file")
	showVersion = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Println(version.GetInfo().String())
		return
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	log, closer, err := logger.Setup(cfg.Logging, version.GetInfo())
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}
	if closer != nil {
		defer closer.Close()
	}
	slog.SetDefault(log)

	otelProvider, err := observability.Setup(cfg.Metrics, cfg.Observability, version.GetInfo())
	if err != nil {
		slog.Error("Failed to initialize observability", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := otelProvider.Shutdown(shutdownCtx); err != nil {
			slog.Error("Failed to shutdown observability", "error", err)
		}
	}()

	// Document source: HTTP backing store behind a read-through cache. An
	// empty base URL leaves fetches disabled and every data route answers 503.
	if cfg.Data.BaseURL == "" {
		slog.Warn("DATA_BASE_URL not configured, region data routes will answer 503")
	}
	httpSource := storage.NewHTTPSource(cfg.Data.BaseURL, cfg.Data.FetchTimeout)
	var source storage.Source = storage.NewHTTPCache(httpSource, cfg.Data.CacheTTL)
	if cfg.Metrics.Enabled {
		instrumented, err := observability.NewInstrumentedSource(source)
		if err != nil {
			slog.Error("Failed to create instrumented source", "error", err)
			os.Exit(1)
		}
		source = instrumented
	}

	service := catalog.NewService(models.Regions(), source)
	handlers := api.NewHandlers(service)

	routeOpts := []api.RouteOption{}
	if cfg.Observability.Tracing.Enabled {
		routeOpts = append(routeOpts, api.WithOTelMiddleware(cfg.Observability.ServiceName))
	}

	var rateLimitMiddleware mux.MiddlewareFunc
	if cfg.RateLimit.Enabled {
		limiter, err := initializeLimiter(cfg)
		if err != nil {
			slog.Error("Failed to initialize rate limiter", "error", err)
			os.Exit(1)
		}
		defer limiter.Close()
		rateLimitMiddleware = ratelimit.Middleware(limiter, cfg.RateLimit.ClientIPHeader)
	}

	router := api.SetupRoutes(handlers, rateLimitMiddleware, routeOpts...)

	var metricsServer *observability.MetricsServer
	if cfg.Metrics.Enabled {
		metricsServer = observability.NewMetricsServer(cfg.Metrics, otelProvider)
		go func() {
			if err := metricsServer.Start(); err != nil && err != http.ErrServerClosed {
				slog.Error("Metrics server failed", "error", err)
			}
		}()
	}

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		slog.Info("Starting server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if metricsServer != nil {
		if err := metricsServer.Shutdown(ctx); err != nil {
			slog.Error("Metrics server forced to shutdown", "error", err)
		}
	}

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	slog.Info("Server shutdown complete")
}

// initializeLimiter creates the rate limiter backend selected by
// configuration.
func initializeLimiter(cfg *models.Config) (ratelimit.Limiter, error) {
	switch cfg.RateLimit.Store {
	case models.RateLimitStoreMemory:
		return ratelimit.NewMemoryLimiter(cfg.RateLimit.Limit, cfg.RateLimit.CleanupInterval, cfg.RateLimit.MaxEntries), nil
	case models.RateLimitStoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return ratelimit.NewRedisLimiter(client, cfg.RateLimit.Limit)
	default:
		return nil, fmt.Errorf("unsupported rate limit store: %s", cfg.RateLimit.Store)
	}
}
