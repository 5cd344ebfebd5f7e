package domain

import (
	"strings"

	"task-tracker/internal/validation"
)

// Status represents the progress state of a task.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

// Statuses lists all task statuses in lifecycle order.
func Statuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusCompleted}
}

// Valid reports whether the status is one of the known states.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// String returns the wire form of the status.
func (s Status) String() string {
	return string(s)
}

// ParseStatus parses a task status, accepting any casing.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	if !st.Valid() {
		validationError := validation.NewValidationError()
		validationError.AddInvalidValueError("status", s, "must be one of PENDING, IN_PROGRESS, COMPLETED")
		return "", validationError
	}
	return st, nil
}
