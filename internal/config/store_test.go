package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateStore(t *testing.T) {
	tests := []struct {
		name     string
		backend  string
		filename string
		wantErr  bool
	}{
		{name: "should create a json store", backend: BackendJSON, filename: "tasks.json"},
		{name: "should create a sqlite store", backend: BackendSQLite, filename: "tasks.db"},
		{name: "should reject an unknown backend", backend: "postgres", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			cfg.Storage.Backend = tt.backend
			if tt.filename != "" {
				cfg.Storage.Path = filepath.Join(t.TempDir(), tt.filename)
			}

			store, err := CreateStore(cfg)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, store)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, store)
			assert.Equal(t, cfg.Storage.Path, store.Path())
			store.Close()
		})
	}
}
