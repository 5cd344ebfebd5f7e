package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidationError(t *testing.T) {
	cause := fmt.Errorf("underlying cause")

	err := NewValidationError("title cannot be empty", cause)

	assert.Equal(t, ErrorTypeValidation, err.Type)
	assert.Equal(t, "VALIDATION_FAILED", err.Code)
	assert.Equal(t, cause, err.Unwrap())
	assert.Contains(t, err.Error(), "validation")
	assert.Contains(t, err.Error(), "title cannot be empty")
	assert.Contains(t, err.Error(), "underlying cause")
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("task", "1234")

	assert.Equal(t, ErrorTypeNotFound, err.Type)
	assert.Contains(t, err.Error(), "task not found: 1234")

	resource, ok := err.GetContext("resource")
	require.True(t, ok)
	assert.Equal(t, "task", resource)
}

func TestNewStorageError(t *testing.T) {
	cause := fmt.Errorf("disk full")

	err := NewStorageError("save tasks", "/data/tasks.json", cause)

	assert.Equal(t, ErrorTypeStorage, err.Type)
	assert.Equal(t, "STORAGE_ERROR", err.Code)
	assert.Contains(t, err.Error(), "save tasks")
	assert.Contains(t, err.Error(), "/data/tasks.json")

	path, ok := StoragePath(err)
	require.True(t, ok)
	assert.Equal(t, "/data/tasks.json", path)
}

func TestStoragePath_NonStorageError(t *testing.T) {
	_, ok := StoragePath(NewNotFoundError("task", "1234"))
	assert.False(t, ok)

	_, ok = StoragePath(fmt.Errorf("plain error"))
	assert.False(t, ok)
}

func TestIsErrorType(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		errorType ErrorType
		want      bool
	}{
		{
			name:      "should match a storage error",
			err:       NewStorageError("load tasks", "tasks.json", nil),
			errorType: ErrorTypeStorage,
			want:      true,
		},
		{
			name:      "should match a wrapped storage error",
			err:       fmt.Errorf("loading: %w", NewStorageError("load tasks", "tasks.json", nil)),
			errorType: ErrorTypeStorage,
			want:      true,
		},
		{
			name:      "should not match a different type",
			err:       NewValidationError("bad input", nil),
			errorType: ErrorTypeStorage,
			want:      false,
		},
		{
			name:      "should not match a plain error",
			err:       fmt.Errorf("plain error"),
			errorType: ErrorTypeStorage,
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsErrorType(tt.err, tt.errorType))
		})
	}
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "should surface validation messages verbatim",
			err:  NewValidationError("title cannot be empty", nil),
			want: "title cannot be empty",
		},
		{
			name: "should surface not found messages verbatim",
			err:  NewNotFoundError("task", "1234"),
			want: "task not found: 1234",
		},
		{
			name: "should hide storage details from the user",
			err:  NewStorageError("save tasks", "tasks.json", fmt.Errorf("disk full")),
			want: "A storage error occurred. Your last change may not have been saved.",
		},
		{
			name: "should fall back to the raw message for plain errors",
			err:  fmt.Errorf("plain error"),
			want: "plain error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetUserMessage(tt.err))
		})
	}
}

func TestShouldLogError(t *testing.T) {
	assert.False(t, ShouldLogError(NewValidationError("bad", nil)))
	assert.False(t, ShouldLogError(NewNotFoundError("task", "1")))
	assert.False(t, ShouldLogError(NewInvalidInputError("id", "x", "not a UUID")))
	assert.True(t, ShouldLogError(NewStorageError("save tasks", "tasks.json", nil)))
	assert.True(t, ShouldLogError(fmt.Errorf("plain error")))
}

func TestAppError_WithContext(t *testing.T) {
	err := NewValidationError("bad input", nil).WithContext("field", "title")

	value, ok := err.GetContext("field")
	require.True(t, ok)
	assert.Equal(t, "title", value)

	_, ok = err.GetContext("missing")
	assert.False(t, ok)
}
