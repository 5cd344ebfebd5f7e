package services

import (
	"fmt"

	"github.com/google/uuid"

	"task-tracker/internal/domain"
	"task-tracker/internal/repository"
)

// RepositoryInfo is an observational snapshot of the store's state.
type RepositoryInfo struct {
	Path   string
	Exists bool
	Size   int64
}

// String renders the repository info for display.
func (ri RepositoryInfo) String() string {
	size := "absent"
	if ri.Size != repository.SizeAbsent {
		size = fmt.Sprintf("%d bytes", ri.Size)
	}
	return fmt.Sprintf("Storage file: %s\nExists: %t\nSize: %s", ri.Path, ri.Exists, size)
}

// TaskService owns the authoritative in-memory task collection and
// mediates every read and write. Mutating operations persist the full
// snapshot immediately; a failed save is reported to the log sink and
// does not roll back the in-memory change, so memory and disk can
// diverge until the next successful save.
//
// Lookup and update operations given an unknown id report "not found"
// (nil task, nil error, or false) and touch neither memory nor disk.
type TaskService interface {
	// Creation
	Create(title string, description *string, dueDate string) (*domain.Task, error)
	CreateWithDetails(title string, description *string, dueDate, category string, priority domain.Priority, status domain.Status) (*domain.Task, error)

	// Lookup
	GetByID(id uuid.UUID) *domain.Task
	GetAll() []*domain.Task

	// Updates
	Update(id uuid.UUID, title string, description *string, dueDate string) (*domain.Task, error)
	UpdateWithDetails(id uuid.UUID, title string, description *string, dueDate, category string, priority domain.Priority, status domain.Status) (*domain.Task, error)
	UpdateStatus(id uuid.UUID, status domain.Status) (*domain.Task, error)
	UpdatePriority(id uuid.UUID, priority domain.Priority) (*domain.Task, error)
	UpdateCategory(id uuid.UUID, category string) (*domain.Task, error)

	// Deletion
	Delete(id uuid.UUID) bool

	// Filtering (zero-value filters return an empty slice, not an error)
	GetByCategory(category string) []*domain.Task
	GetByPriority(priority domain.Priority) []*domain.Task
	GetByStatus(status domain.Status) []*domain.Task

	// Grouping (keys with no tasks are absent)
	GroupedByCategory() map[string][]*domain.Task
	GroupedByPriority() map[domain.Priority][]*domain.Task
	GroupedByStatus() map[domain.Status][]*domain.Task

	// Storage
	CreateBackup(suffix string) bool
	RepositoryInfo() RepositoryInfo
}
