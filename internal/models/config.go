package models

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// Rate limit store type constants.
const (
	RateLimitStoreMemory = "memory"
	RateLimitStoreRedis  = "redis"
)

// Config is the root configuration structure for the service.
type Config struct {
	Server        ServerConfig        `yaml:"server" json:"server"`
	Data          DataConfig          `yaml:"data" json:"data"`
	RateLimit     RateLimitConfig     `yaml:"rate_limit" json:"rate_limit"`
	Redis         RedisConfig         `yaml:"redis" json:"redis"`
	Logging       LoggingConfig       `yaml:"logging" json:"logging"`
	Metrics       MetricsConfig       `yaml:"metrics" json:"metrics"`
	Observability ObservabilityConfig `yaml:"observability" json:"observability"`
}

type ServerConfig struct {
	Port         int           `yaml:"port" json:"port"`
	Host         string        `yaml:"host" json:"host"`
	ReadTimeout  time.Duration `yaml:"read_timeout" json:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout" json:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" json:"idle_timeout"`
}

// DataConfig configures access to the backing store of per-region JSON
// documents. An empty BaseURL disables all fetches: region data routes then
// answer 503 until a base is configured.
type DataConfig struct {
	BaseURL      string        `yaml:"base_url" json:"base_url"`
	CacheTTL     time.Duration `yaml:"cache_ttl" json:"cache_ttl"`
	FetchTimeout time.Duration `yaml:"fetch_timeout" json:"fetch_timeout"`
}

// RateLimitConfig configures per-client admission control. Buckets refill at
// one token per elapsed whole second up to Limit.
type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled" json:"enabled"`
	Limit           int           `yaml:"limit" json:"limit"`
	Store           string        `yaml:"store" json:"store"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" json:"cleanup_interval"`
	MaxEntries      int           `yaml:"max_entries" json:"max_entries"`
	ClientIPHeader  string        `yaml:"client_ip_header" json:"client_ip_header"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr" json:"addr"`
	Password string `yaml:"password" json:"password"`
	DB       int    `yaml:"db" json:"db"`
}

type LoggingConfig struct {
	Level    string `yaml:"level" json:"level"`
	Format   string `yaml:"format" json:"format"`
	Output   string `yaml:"output" json:"output"`
	FilePath string `yaml:"file_path" json:"file_path"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" json:"enabled"`
	Path    string `yaml:"path" json:"path"`
	Port    int    `yaml:"port" json:"port"`
}

type ObservabilityConfig struct {
	ServiceName string        `yaml:"service_name" json:"service_name"`
	Tracing     TracingConfig `yaml:"tracing" json:"tracing"`
}

type TracingConfig struct {
	Enabled      bool    `yaml:"enabled" json:"enabled"`
	Exporter     string  `yaml:"exporter" json:"exporter"`
	OTLPEndpoint string  `yaml:"otlp_endpoint" json:"otlp_endpoint"`
	SampleRate   float64 `yaml:"sample_rate" json:"sample_rate"`
}

// NewDefaultConfig returns a configuration that works out of the box for a
// single instance: in-memory rate limiting at 60 requests per bucket, a 24h
// document cache, and fetches disabled until a base URL is provided.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         8080,
			Host:         "0.0.0.0",
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Data: DataConfig{
			CacheTTL:     24 * time.Hour,
			FetchTimeout: 10 * time.Second,
		},
		RateLimit: RateLimitConfig{
			Enabled:         true,
			Limit:           60,
			Store:           RateLimitStoreMemory,
			CleanupInterval: 5 * time.Minute,
			MaxEntries:      100000,
			ClientIPHeader:  "CF-Connecting-IP",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
			Port:    9090,
		},
		Observability: ObservabilityConfig{
			ServiceName: "api-comida-peru",
			Tracing: TracingConfig{
				Enabled:    false,
				Exporter:   "stdout",
				SampleRate: 1.0,
			},
		},
	}
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("invalid server config: %w", err)
	}
	if err := c.Data.Validate(); err != nil {
		return fmt.Errorf("invalid data config: %w", err)
	}
	if err := c.RateLimit.Validate(); err != nil {
		return fmt.Errorf("invalid rate limit config: %w", err)
	}
	if c.RateLimit.Enabled && c.RateLimit.Store == RateLimitStoreRedis && c.Redis.Addr == "" {
		return errors.New("redis address is required when rate limit store is redis")
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("invalid logging config: %w", err)
	}
	if err := c.Metrics.Validate(); err != nil {
		return fmt.Errorf("invalid metrics config: %w", err)
	}
	return nil
}

func (sc *ServerConfig) Validate() error {
	if sc.Port <= 0 || sc.Port > 65535 {
		return errors.New("port must be between 1 and 65535")
	}
	if sc.Host == "" {
		return errors.New("host cannot be empty")
	}
	if sc.ReadTimeout < 0 || sc.WriteTimeout < 0 || sc.IdleTimeout < 0 {
		return errors.New("timeouts cannot be negative")
	}
	return nil
}

func (dc *DataConfig) Validate() error {
	if dc.BaseURL != "" {
		if _, err := url.Parse(dc.BaseURL); err != nil {
			return fmt.Errorf("invalid base URL: %w", err)
		}
	}
	if dc.CacheTTL < 0 {
		return errors.New("cache TTL cannot be negative")
	}
	if dc.FetchTimeout < 0 {
		return errors.New("fetch timeout cannot be negative")
	}
	return nil
}

func (rc *RateLimitConfig) Validate() error {
	if !rc.Enabled {
		return nil
	}
	if rc.Limit <= 0 {
		return errors.New("limit must be positive")
	}
	if rc.Store != RateLimitStoreMemory && rc.Store != RateLimitStoreRedis {
		return fmt.Errorf("invalid rate limit store: %s", rc.Store)
	}
	if rc.CleanupInterval <= 0 {
		return errors.New("cleanup interval must be positive")
	}
	if rc.MaxEntries <= 0 {
		return errors.New("max entries must be positive")
	}
	return nil
}

func (lc *LoggingConfig) Validate() error {
	switch lc.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", lc.Level)
	}
	switch lc.Format {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log format: %s", lc.Format)
	}
	switch lc.Output {
	case "stdout", "stderr", "file":
	default:
		return fmt.Errorf("invalid log output: %s", lc.Output)
	}
	if lc.Output == "file" && lc.FilePath == "" {
		return errors.New("file path is required when output is file")
	}
	return nil
}

func (mc *MetricsConfig) Validate() error {
	if !mc.Enabled {
		return nil
	}
	if mc.Path == "" {
		return errors.New("metrics path cannot be empty")
	}
	if mc.Port <= 0 || mc.Port > 65535 {
		return errors.New("metrics port must be between 1 and 65535")
	}
	return nil
}
