// Package config holds application configuration, loaded from defaults,
// an optional TOML file, environment variables and CLI flag overrides,
// in that priority order.
package config

import (
	"os"
	"strconv"
)

// Backend names for the storage configuration.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config holds all configuration options for the task tracker.
type Config struct {
	Storage     StorageConfig
	Logging     LoggingConfig
	Application ApplicationConfig
}

// StorageConfig selects and locates the snapshot store.
type StorageConfig struct {
	// Backend is "json" or "sqlite".
	Backend string `toml:"backend" env:"TASKS_STORAGE_BACKEND"`
	// Path is the snapshot file path; empty means the backend default
	// (tasks.json or tasks.db in the working directory).
	Path string `toml:"path" env:"TASKS_STORAGE_PATH"`
}

// LoggingConfig configures the console log sink.
type LoggingConfig struct {
	Level      string `toml:"level" env:"TASKS_LOG_LEVEL"`
	Format     string `toml:"format" env:"TASKS_LOG_FORMAT"`
	Timestamps bool   `toml:"timestamps" env:"TASKS_LOG_TIMESTAMPS"`
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	Verbose bool `toml:"verbose" env:"TASKS_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: BackendJSON,
			Path:    "",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "text",
			Timestamps: false,
		},
		Application: ApplicationConfig{
			Verbose: false,
		},
	}
}

// LoadFromEnvironment loads configuration from environment variables.
func (c *Config) LoadFromEnvironment() error {
	if backend := os.Getenv("TASKS_STORAGE_BACKEND"); backend != "" {
		c.Storage.Backend = backend
	}
	if path := os.Getenv("TASKS_STORAGE_PATH"); path != "" {
		c.Storage.Path = path
	}
	if level := os.Getenv("TASKS_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if format := os.Getenv("TASKS_LOG_FORMAT"); format != "" {
		c.Logging.Format = format
	}
	if timestamps := os.Getenv("TASKS_LOG_TIMESTAMPS"); timestamps != "" {
		if b, err := strconv.ParseBool(timestamps); err == nil {
			c.Logging.Timestamps = b
		}
	}
	if verbose := os.Getenv("TASKS_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}
	return nil
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendJSON, BackendSQLite:
	default:
		return &ConfigError{Field: "storage.backend", Message: "backend must be \"json\" or \"sqlite\""}
	}

	switch c.Logging.Format {
	case "text", "json", "logfmt":
	default:
		return &ConfigError{Field: "logging.format", Message: "format must be \"text\", \"json\" or \"logfmt\""}
	}

	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
