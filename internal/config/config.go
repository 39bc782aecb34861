package config

import (
	"os"
	"strconv"

	"leadscope/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Export   ExportConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL     string
	SSLMode string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	UIPort  string
	APIPort string
	GinMode string
	// DevMode swaps the Postgres repository for the in-memory testkit one
	// so the dashboard runs with generated demo leads and no database.
	DevMode bool
}

// ExportConfig holds spreadsheet export settings
type ExportConfig struct {
	// MaxConcurrent bounds simultaneous workbook builds; exports are
	// memory-heavy and unbounded concurrency can take the UI down.
	MaxConcurrent int64
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{
		Database: DatabaseConfig{
			URL:     os.Getenv("DATABASE_URL"),
			SSLMode: getEnvOrDefault("SSL_MODE", "disable"),
		},
		Server: ServerConfig{
			UIPort:  getEnvOrDefault("UI_PORT", "8080"),
			APIPort: getEnvOrDefault("API_PORT", "8081"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
			DevMode: getEnvBoolOrDefault("DEV_MODE", false),
		},
		Export: ExportConfig{
			MaxConcurrent: int64(getEnvIntOrDefault("EXPORT_MAX_CONCURRENT", 2)),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if !cfg.Server.DevMode && cfg.Database.URL == "" {
		return errors.ConfigInvalid("DATABASE_URL is required unless DEV_MODE=true")
	}
	if cfg.Export.MaxConcurrent < 1 {
		return errors.ConfigInvalid("EXPORT_MAX_CONCURRENT must be at least 1")
	}
	return nil
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvIntOrDefault(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBoolOrDefault(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
