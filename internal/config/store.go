package config

import (
	"fmt"

	"task-tracker/internal/repository"
	"task-tracker/internal/repository/jsonfile"
	"task-tracker/internal/repository/sqlite"
)

// CreateStore creates the snapshot store selected by the configuration.
// An empty path hands the choice of default location to the backend.
func CreateStore(config *Config) (repository.Store, error) {
	switch config.Storage.Backend {
	case BackendSQLite:
		store, err := sqlite.New(config.Storage.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize sqlite store: %w", err)
		}
		return store, nil
	case BackendJSON:
		store, err := jsonfile.New(config.Storage.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize json store: %w", err)
		}
		return store, nil
	default:
		return nil, &ConfigError{Field: "storage.backend", Message: "unknown backend " + config.Storage.Backend}
	}
}
