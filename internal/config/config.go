package config

import (
	"os"
	"strconv"
	"time"

	"rosterd/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database   DatabaseConfig
	Server     ServerConfig
	Transcribe TranscribeConfig
	Import     ImportConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port            string
	ShutdownTimeout time.Duration
}

// TranscribeConfig holds the speech-to-text collaborator settings
type TranscribeConfig struct {
	BaseURL string
	Timeout time.Duration
}

// ImportConfig holds spreadsheet import settings
type ImportConfig struct {
	PreviewRows   int
	MaxUploadSize int64
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Transcribe: TranscribeConfig{
			BaseURL: os.Getenv("TRANSCRIBE_URL"),
			Timeout: getDuration("TRANSCRIBE_TIMEOUT", 30*time.Second),
		},
		Import: ImportConfig{
			PreviewRows:   getInt("IMPORT_PREVIEW_ROWS", 10),
			MaxUploadSize: int64(getInt("IMPORT_MAX_UPLOAD_MB", 16)) << 20,
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Database.URL == "" {
		return errors.ConfigInvalid("DATABASE_URL is required")
	}
	if c.Import.PreviewRows <= 0 {
		return errors.ConfigInvalid("IMPORT_PREVIEW_ROWS must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
