// Package jsonfile implements the snapshot store on a single JSON file.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "embed"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"task-tracker/internal/errors"
	"task-tracker/internal/repository"
)

// DefaultPath is the snapshot location when none is configured.
const DefaultPath = "tasks.json"

//go:embed schema.json
var schemaJSON string

const schemaName = "tasks.schema.json"

// Store persists the task collection as an indented JSON array at a
// fixed path. Every Save rewrites the whole document.
type Store struct {
	path   string
	schema *jsonschema.Schema
}

// New creates a store for the given path. An empty path falls back to
// DefaultPath.
func New(path string) (*Store, error) {
	if path == "" {
		path = DefaultPath
	}

	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	if err := compiler.AddResource(schemaName, strings.NewReader(schemaJSON)); err != nil {
		return nil, errors.NewStorageError("compile schema", path, err)
	}
	schema, err := compiler.Compile(schemaName)
	if err != nil {
		return nil, errors.NewStorageError("compile schema", path, err)
	}

	return &Store{path: path, schema: schema}, nil
}

// Save writes the full ordered record sequence to the configured path,
// creating missing parent directories first. A nil slice produces a
// valid empty-array document.
func (s *Store) Save(records []*repository.TaskRecord) error {
	if records == nil {
		records = []*repository.TaskRecord{}
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.NewStorageError("create directory", s.path, err)
		}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return errors.NewStorageError("encode tasks", s.path, err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return errors.NewStorageError("write tasks", s.path, err)
	}

	return nil
}

// Load reads the ordered record sequence from the configured path. A
// missing file, a zero-byte file and a top-level null all load as an
// empty sequence. Anything else must be a schema-valid JSON array.
func (s *Store) Load() ([]*repository.TaskRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []*repository.TaskRecord{}, nil
		}
		return nil, errors.NewStorageError("read tasks", s.path, err)
	}

	if len(data) == 0 {
		return []*repository.TaskRecord{}, nil
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.NewStorageError("parse tasks", s.path, err)
	}
	if doc == nil {
		return []*repository.TaskRecord{}, nil
	}

	if err := s.schema.Validate(doc); err != nil {
		return nil, errors.NewStorageError("validate tasks", s.path, err)
	}

	var records []*repository.TaskRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.NewStorageError("decode tasks", s.path, err)
	}

	return records, nil
}

// Exists reports whether the snapshot file currently exists.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Size returns the snapshot file length in bytes, or SizeAbsent when
// the file does not exist.
func (s *Store) Size() int64 {
	info, err := os.Stat(s.path)
	if err != nil {
		return repository.SizeAbsent
	}
	return info.Size()
}

// Delete removes the snapshot file. A file that never existed counts
// as deleted.
func (s *Store) Delete() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.NewStorageError("delete tasks", s.path, err)
	}
	return nil
}

// Path returns the configured snapshot path.
func (s *Store) Path() string {
	return s.path
}

// Backup loads the current snapshot and rewrites it to path+suffix as a
// fresh document. A source that does not exist or does not parse fails
// the backup; an empty suffix is rejected outright so the backup can
// never target the original path.
func (s *Store) Backup(suffix string) error {
	if strings.TrimSpace(suffix) == "" {
		return errors.NewStorageError("backup", s.path, fmt.Errorf("backup suffix cannot be empty"))
	}

	if !s.Exists() {
		return errors.NewStorageError("backup", s.path, fmt.Errorf("source file does not exist"))
	}

	records, err := s.Load()
	if err != nil {
		return errors.NewStorageError("backup", s.path, err)
	}

	backup, err := New(s.path + suffix)
	if err != nil {
		return err
	}
	return backup.Save(records)
}

// Close implements repository.Store; the JSON store holds no resources.
func (s *Store) Close() error {
	return nil
}
