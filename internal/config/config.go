// Package config loads service configuration from an optional YAML file and
// environment variables, layered over built-in defaults.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/BuildersAQP/api-comida-peru/internal/models"
)

// Load loads configuration from file and environment variables.
func Load(configPath string) (*models.Config, error) {
	config := models.NewDefaultConfig()

	if configPath != "" {
		if err := loadFromFile(config, configPath); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	loadFromEnvironment(config)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(config *models.Config, filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse YAML config: %w", err)
	}
	return nil
}

// loadFromEnvironment loads configuration from environment variables.
// DATA_BASE_URL keeps its bare name: it is the deployment contract with the
// backing store and leaving it unset disables all data fetches.
func loadFromEnvironment(config *models.Config) {
	if port := os.Getenv("COMIDA_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if host := os.Getenv("COMIDA_HOST"); host != "" {
		config.Server.Host = host
	}

	if timeout := os.Getenv("COMIDA_READ_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			config.Server.ReadTimeout = d
		}
	}

	if timeout := os.Getenv("COMIDA_WRITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			config.Server.WriteTimeout = d
		}
	}

	if timeout := os.Getenv("COMIDA_IDLE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			config.Server.IdleTimeout = d
		}
	}

	// Data configuration
	if base := os.Getenv("DATA_BASE_URL"); base != "" {
		config.Data.BaseURL = base
	}

	if ttl := os.Getenv("COMIDA_CACHE_TTL"); ttl != "" {
		if d, err := time.ParseDuration(ttl); err == nil {
			config.Data.CacheTTL = d
		}
	}

	if timeout := os.Getenv("COMIDA_FETCH_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			config.Data.FetchTimeout = d
		}
	}

	// Rate limit configuration
	if enabled := os.Getenv("COMIDA_RATE_LIMIT_ENABLED"); enabled != "" {
		config.RateLimit.Enabled = strings.ToLower(enabled) == "true"
	}

	if limit := os.Getenv("COMIDA_RATE_LIMIT"); limit != "" {
		if l, err := strconv.Atoi(limit); err == nil {
			config.RateLimit.Limit = l
		}
	}

	if store := os.Getenv("COMIDA_RATE_LIMIT_STORE"); store != "" {
		config.RateLimit.Store = store
	}

	if interval := os.Getenv("COMIDA_RATE_LIMIT_CLEANUP_INTERVAL"); interval != "" {
		if d, err := time.ParseDuration(interval); err == nil {
			config.RateLimit.CleanupInterval = d
		}
	}

	if max := os.Getenv("COMIDA_RATE_LIMIT_MAX_ENTRIES"); max != "" {
		if m, err := strconv.Atoi(max); err == nil {
			config.RateLimit.MaxEntries = m
		}
	}

	if header := os.Getenv("COMIDA_CLIENT_IP_HEADER"); header != "" {
		config.RateLimit.ClientIPHeader = header
	}

	// Redis configuration
	if addr := os.Getenv("COMIDA_REDIS_ADDR"); addr != "" {
		config.Redis.Addr = addr
	}

	if password := os.Getenv("COMIDA_REDIS_PASSWORD"); password != "" {
		config.Redis.Password = password
	}

	if db := os.Getenv("COMIDA_REDIS_DB"); db != "" {
		if dbNum, err := strconv.Atoi(db); err == nil {
			config.Redis.DB = dbNum
		}
	}

	// Logging configuration
	if level := os.Getenv("COMIDA_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if format := os.Getenv("COMIDA_LOG_FORMAT"); format != "" {
		config.Logging.Format = format
	}

	if output := os.Getenv("COMIDA_LOG_OUTPUT"); output != "" {
		config.Logging.Output = output
	}

	if filePath := os.Getenv("COMIDA_LOG_FILE_PATH"); filePath != "" {
		config.Logging.FilePath = filePath
	}

	// Metrics configuration
	if metrics := os.Getenv("COMIDA_METRICS_ENABLED"); metrics != "" {
		config.Metrics.Enabled = strings.ToLower(metrics) == "true"
	}

	if path := os.Getenv("COMIDA_METRICS_PATH"); path != "" {
		config.Metrics.Path = path
	}

	if port := os.Getenv("COMIDA_METRICS_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Metrics.Port = p
		}
	}

	// Observability configuration
	if name := os.Getenv("COMIDA_SERVICE_NAME"); name != "" {
		config.Observability.ServiceName = name
	}

	if tracing := os.Getenv("COMIDA_TRACING_ENABLED"); tracing != "" {
		config.Observability.Tracing.Enabled = strings.ToLower(tracing) == "true"
	}

	if exporter := os.Getenv("COMIDA_TRACING_EXPORTER"); exporter != "" {
		config.Observability.Tracing.Exporter = exporter
	}

	if endpoint := os.Getenv("COMIDA_OTLP_ENDPOINT"); endpoint != "" {
		config.Observability.Tracing.OTLPEndpoint = endpoint
	}
}
