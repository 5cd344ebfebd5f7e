package domain

import (
	"github.com/google/uuid"

	"task-tracker/internal/repository"
	"task-tracker/internal/validation"
)

// TaskMapper handles conversion between domain tasks and stored records.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToRecord converts a domain Task to its stored record form.
func (m *TaskMapper) ToRecord(task *Task) *repository.TaskRecord {
	return &repository.TaskRecord{
		ID:          task.ID().String(),
		Title:       task.Title(),
		Description: task.Description(),
		DueDate:     task.DueDate(),
		Category:    task.Category(),
		Priority:    task.Priority().String(),
		Status:      task.Status().String(),
	}
}

// FromRecord rebuilds a domain Task from a stored record. A record
// without an id gets a freshly generated identifier. Field validation
// runs with the exception of the past-due-date rule, so snapshots stay
// readable after their tasks' due dates have gone by.
func (m *TaskMapper) FromRecord(record *repository.TaskRecord) (*Task, error) {
	id := uuid.New()
	if record.ID != "" {
		parsed, err := uuid.Parse(record.ID)
		if err != nil {
			validationError := validation.NewValidationError()
			validationError.AddInvalidFormatError("id", record.ID, "UUID")
			return nil, validationError
		}
		id = parsed
	}

	priority, err := ParsePriority(record.Priority)
	if err != nil {
		return nil, err
	}

	status, err := ParseStatus(record.Status)
	if err != nil {
		return nil, err
	}

	return restoreTask(id, record.Title, record.Description, record.DueDate, record.Category, priority, status)
}

// ToRecordSlice converts a slice of domain Tasks to stored records.
func (m *TaskMapper) ToRecordSlice(tasks []*Task) []*repository.TaskRecord {
	records := make([]*repository.TaskRecord, len(tasks))
	for i, task := range tasks {
		records[i] = m.ToRecord(task)
	}
	return records
}

// FromRecordSlice rebuilds domain Tasks from stored records, preserving
// order. The first invalid record fails the whole conversion.
func (m *TaskMapper) FromRecordSlice(records []*repository.TaskRecord) ([]*Task, error) {
	tasks := make([]*Task, len(records))
	for i, record := range records {
		task, err := m.FromRecord(record)
		if err != nil {
			return nil, err
		}
		tasks[i] = task
	}
	return tasks, nil
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Task *TaskMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Task: NewTaskMapper(),
	}
}
