package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ConfigFileName is the project-level configuration file name.
const ConfigFileName = "tasks.toml"

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the user config file, then a project config file
// 3. Override with environment variables
// 4. Override with command line flags (applied by the caller)
func (l *Loader) Load() (*Config, error) {
	if userFile := findUserConfigFile(); userFile != "" {
		if err := loadConfigFile(l.config, userFile); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", userFile, err)
		}
	}

	if projectFile := findProjectConfigFile(); projectFile != "" {
		if err := loadConfigFile(l.config, projectFile); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", projectFile, err)
		}
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		applyOverrides(config, overrides)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	StorageBackend *string
	StoragePath    *string
	LogLevel       *string
	LogFormat      *string
	Verbose        *bool
}

// applyOverrides applies command line overrides to the configuration
func applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.StorageBackend != nil {
		config.Storage.Backend = *overrides.StorageBackend
	}
	if overrides.StoragePath != nil {
		config.Storage.Path = *overrides.StoragePath
	}
	if overrides.LogLevel != nil {
		config.Logging.Level = *overrides.LogLevel
	}
	if overrides.LogFormat != nil {
		config.Logging.Format = *overrides.LogFormat
	}
	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
	}
}

// loadConfigFile merges a TOML config file into the given config.
func loadConfigFile(config *Config, path string) error {
	if _, err := toml.DecodeFile(path, config); err != nil {
		return err
	}
	return nil
}

// findUserConfigFile returns the path of the per-user config file, or
// empty when none exists.
func findUserConfigFile() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(configDir, "tasks", ConfigFileName)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// findProjectConfigFile returns the path of the config file in the
// working directory, or empty when none exists. Both tasks.toml and
// .tasks.toml are recognized.
func findProjectConfigFile() string {
	for _, name := range []string{ConfigFileName, "." + ConfigFileName} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}
