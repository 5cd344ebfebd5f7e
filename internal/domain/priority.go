package domain

import (
	"strings"

	"task-tracker/internal/validation"
)

// Priority represents a task priority level.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

// Priorities lists all priority levels in ascending order of urgency.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
}

// Valid reports whether the priority is one of the known levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Rank returns the numeric position of the priority, lowest first.
// Unknown priorities rank below LOW.
func (p Priority) Rank() int {
	switch p {
	case PriorityLow:
		return 1
	case PriorityMedium:
		return 2
	case PriorityHigh:
		return 3
	case PriorityUrgent:
		return 4
	}
	return 0
}

// String returns the wire form of the priority.
func (p Priority) String() string {
	return string(p)
}

// ParsePriority parses a priority level, accepting any casing.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToUpper(strings.TrimSpace(s)))
	if !p.Valid() {
		validationError := validation.NewValidationError()
		validationError.AddInvalidValueError("priority", s, "must be one of LOW, MEDIUM, HIGH, URGENT")
		return "", validationError
	}
	return p, nil
}
