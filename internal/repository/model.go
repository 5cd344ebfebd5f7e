// Package repository defines the storage contract for task snapshots and
// the wire model shared by its backends.
package repository

// TaskRecord is the stored form of a task. The id and description keys
// may be absent in stored documents: a missing id means a fresh one is
// generated when the task is rebuilt, a missing description means none.
type TaskRecord struct {
	ID          string  `json:"id,omitempty"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	DueDate     string  `json:"dueDate"`
	Category    string  `json:"category"`
	Priority    string  `json:"priority"`
	Status      string  `json:"status"`
}
