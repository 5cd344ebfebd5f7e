// Package sqlite implements the snapshot store on a sqlite database.
// It keeps the same full-snapshot semantics as the JSON file backend:
// every Save replaces the whole task table in one transaction.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"task-tracker/internal/errors"
	"task-tracker/internal/repository"
	"task-tracker/internal/repository/sqlite/migrations"
)

// DefaultPath is the database location when none is configured.
const DefaultPath = "tasks.db"

// Store persists the task collection in a single sqlite database.
type Store struct {
	path string
	db   *sql.DB
}

// New opens (or creates) the database at the given path and brings its
// schema up to date. An empty path falls back to DefaultPath.
func New(path string) (*Store, error) {
	if path == "" {
		path = DefaultPath
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errors.NewStorageError("create directory", path, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.NewStorageError("open database", path, err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewStorageError("run migrations", path, err)
	}

	return &Store{path: path, db: db}, nil
}

// Save replaces the stored snapshot with the given ordered records.
func (s *Store) Save(records []*repository.TaskRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return errors.NewStorageError("begin transaction", s.path, err)
	}

	if _, err := tx.Exec("DELETE FROM tasks"); err != nil {
		tx.Rollback()
		return errors.NewStorageError("clear tasks", s.path, err)
	}

	query := `
	INSERT INTO tasks (position, task_id, title, description, due_date, category, priority, status)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	for i, record := range records {
		if _, err := tx.Exec(query, i, record.ID, record.Title, record.Description,
			record.DueDate, record.Category, record.Priority, record.Status); err != nil {
			tx.Rollback()
			return errors.NewStorageError("insert task", s.path, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.NewStorageError("commit tasks", s.path, err)
	}
	return nil
}

// Load returns the stored records in their original insertion order.
func (s *Store) Load() ([]*repository.TaskRecord, error) {
	query := `
	SELECT task_id, title, description, due_date, category, priority, status
	FROM tasks
	ORDER BY position ASC`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, errors.NewStorageError("query tasks", s.path, err)
	}
	defer rows.Close()

	records := []*repository.TaskRecord{}
	for rows.Next() {
		var record repository.TaskRecord
		var description sql.NullString
		if err := rows.Scan(&record.ID, &record.Title, &description,
			&record.DueDate, &record.Category, &record.Priority, &record.Status); err != nil {
			return nil, errors.NewStorageError("scan task", s.path, err)
		}
		if description.Valid {
			record.Description = &description.String
		}
		records = append(records, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewStorageError("read tasks", s.path, err)
	}

	return records, nil
}

// Exists reports whether the database file currently exists.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Size returns the database file length in bytes, or SizeAbsent.
func (s *Store) Size() int64 {
	info, err := os.Stat(s.path)
	if err != nil {
		return repository.SizeAbsent
	}
	return info.Size()
}

// Delete removes the database file. The connection is closed first so
// no further writes can resurrect it.
func (s *Store) Delete() error {
	s.db.Close()
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.NewStorageError("delete database", s.path, err)
	}
	return nil
}

// Path returns the configured database path.
func (s *Store) Path() string {
	return s.path
}

// Backup rewrites the current snapshot into a fresh database at
// path+suffix. An empty suffix is rejected.
func (s *Store) Backup(suffix string) error {
	if strings.TrimSpace(suffix) == "" {
		return errors.NewStorageError("backup", s.path, fmt.Errorf("backup suffix cannot be empty"))
	}

	if !s.Exists() {
		return errors.NewStorageError("backup", s.path, fmt.Errorf("source database does not exist"))
	}

	records, err := s.Load()
	if err != nil {
		return errors.NewStorageError("backup", s.path, err)
	}

	backup, err := New(s.path + suffix)
	if err != nil {
		return err
	}
	defer backup.Close()

	return backup.Save(records)
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
