package jsonfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-tracker/internal/errors"
	"task-tracker/internal/repository"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "tasks.json"))
	require.NoError(t, err)
	return store
}

func sampleRecords() []*repository.TaskRecord {
	desc := "Quarterly numbers"
	return []*repository.TaskRecord{
		{
			ID:          uuid.NewString(),
			Title:       "Write report",
			Description: &desc,
			DueDate:     "2099-01-15",
			Category:    "Work",
			Priority:    "HIGH",
			Status:      "IN_PROGRESS",
		},
		{
			ID:       uuid.NewString(),
			Title:    "Buy groceries",
			DueDate:  "2099-01-16",
			Category: "Personal",
			Priority: "LOW",
			Status:   "PENDING",
		},
	}
}

func TestStore_New_DefaultPath(t *testing.T) {
	store, err := New("")

	require.NoError(t, err)
	assert.Equal(t, DefaultPath, store.Path())
}

func TestStore_SaveAndLoad_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	records := sampleRecords()

	require.NoError(t, store.Save(records))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, records[0].ID, loaded[0].ID)
	assert.Equal(t, records[0].Title, loaded[0].Title)
	require.NotNil(t, loaded[0].Description)
	assert.Equal(t, "Quarterly numbers", *loaded[0].Description)
	assert.Equal(t, records[1].Title, loaded[1].Title)
	assert.Nil(t, loaded[1].Description)
}

func TestStore_Save_PreservesOrder(t *testing.T) {
	store := newTestStore(t)

	var records []*repository.TaskRecord
	for _, title := range []string{"first", "second", "third", "fourth"} {
		records = append(records, &repository.TaskRecord{
			Title:    title,
			DueDate:  "2099-06-01",
			Category: "Work",
			Priority: "MEDIUM",
			Status:   "PENDING",
		})
	}
	require.NoError(t, store.Save(records))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 4)
	for i, title := range []string{"first", "second", "third", "fourth"} {
		assert.Equal(t, title, loaded[i].Title)
	}
}

func TestStore_Save_NilSliceWritesEmptyArray(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save(nil))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestStore_Save_CreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "tasks.json")
	store, err := New(path)
	require.NoError(t, err)

	require.NoError(t, store.Save(sampleRecords()))

	assert.True(t, store.Exists())
}

func TestStore_Save_OverwritesPreviousSnapshot(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save(sampleRecords()))
	require.NoError(t, store.Save(sampleRecords()[:1]))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, loaded, 1)
}

func TestStore_Load(t *testing.T) {
	tests := []struct {
		name           string
		content        *string
		wantCount      int
		errorAssertion func(t *testing.T, err error)
	}{
		{
			name:      "should load a missing file as empty",
			content:   nil,
			wantCount: 0,
		},
		{
			name:      "should load a zero-byte file as empty",
			content:   strPtr(""),
			wantCount: 0,
		},
		{
			name:      "should load a top-level null as empty",
			content:   strPtr("null\n"),
			wantCount: 0,
		},
		{
			name:      "should load an empty array",
			content:   strPtr("[]\n"),
			wantCount: 0,
		},
		{
			name:    "should fail on corrupt JSON",
			content: strPtr("{not json"),
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeStorage))
				assert.Contains(t, err.Error(), "parse tasks")
			},
		},
		{
			name:    "should fail when the document is not an array",
			content: strPtr(`{"title": "loose object"}`),
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeStorage))
				assert.Contains(t, err.Error(), "validate tasks")
			},
		},
		{
			name:    "should fail when a record is missing a required field",
			content: strPtr(`[{"title": "no due date", "category": "Work", "priority": "LOW", "status": "PENDING"}]`),
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeStorage))
			},
		},
		{
			name:    "should fail on an unknown priority value",
			content: strPtr(`[{"title": "t", "dueDate": "2099-01-15", "category": "Work", "priority": "EXTREME", "status": "PENDING"}]`),
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeStorage))
			},
		},
		{
			name:    "should fail on a malformed due date",
			content: strPtr(`[{"title": "t", "dueDate": "15/01/2099", "category": "Work", "priority": "LOW", "status": "PENDING"}]`),
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeStorage))
			},
		},
		{
			name:      "should accept an explicit null description",
			content:   strPtr(`[{"title": "t", "description": null, "dueDate": "2099-01-15", "category": "Work", "priority": "LOW", "status": "PENDING"}]`),
			wantCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)
			if tt.content != nil {
				require.NoError(t, os.WriteFile(store.Path(), []byte(*tt.content), 0644))
			}

			loaded, err := store.Load()

			if tt.errorAssertion != nil {
				tt.errorAssertion(t, err)
				assert.Nil(t, loaded)
				return
			}
			require.NoError(t, err)
			assert.Len(t, loaded, tt.wantCount)
		})
	}
}

func TestStore_ExistsAndSize(t *testing.T) {
	store := newTestStore(t)

	assert.False(t, store.Exists())
	assert.Equal(t, repository.SizeAbsent, store.Size())

	require.NoError(t, store.Save(sampleRecords()))

	assert.True(t, store.Exists())
	assert.Greater(t, store.Size(), int64(0))
}

func TestStore_Delete(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(sampleRecords()))

	require.NoError(t, store.Delete())
	assert.False(t, store.Exists())

	// Deleting again is not an error.
	assert.NoError(t, store.Delete())
}

func TestStore_Backup(t *testing.T) {
	t.Run("should fail before the first save", func(t *testing.T) {
		store := newTestStore(t)

		err := store.Backup(".bak")

		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeStorage))
		assert.Contains(t, err.Error(), "does not exist")
	})

	t.Run("should reject an empty suffix", func(t *testing.T) {
		store := newTestStore(t)
		require.NoError(t, store.Save(sampleRecords()))

		assert.True(t, errors.IsErrorType(store.Backup(""), errors.ErrorTypeStorage))
		assert.True(t, errors.IsErrorType(store.Backup("   "), errors.ErrorTypeStorage))
	})

	t.Run("should copy the snapshot to path plus suffix", func(t *testing.T) {
		store := newTestStore(t)
		records := sampleRecords()
		require.NoError(t, store.Save(records))

		require.NoError(t, store.Backup(".bak"))

		backup, err := New(store.Path() + ".bak")
		require.NoError(t, err)
		loaded, err := backup.Load()
		require.NoError(t, err)
		require.Len(t, loaded, len(records))
		assert.Equal(t, records[0].ID, loaded[0].ID)
	})

	t.Run("should fail when the source does not parse", func(t *testing.T) {
		store := newTestStore(t)
		require.NoError(t, os.WriteFile(store.Path(), []byte("{corrupt"), 0644))

		err := store.Backup(".bak")

		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeStorage))
		assert.False(t, fileExists(store.Path()+".bak"))
	})
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func strPtr(s string) *string {
	return &s
}
