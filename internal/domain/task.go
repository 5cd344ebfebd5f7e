package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"task-tracker/internal/validation"
)

// DefaultCategory is assigned when a task is created without one.
const DefaultCategory = "General"

// Task is a single unit of work. The identifier is assigned at creation
// and never changes; every other field is mutated through a setter that
// validates the new value and keeps the previous one on failure.
type Task struct {
	id          uuid.UUID
	title       string
	description *string
	dueDate     string
	category    string
	priority    Priority
	status      Status

	validator *validation.TaskValidator
}

// NewTask creates a fully specified task. All fields are validated; the
// first violation rejects the whole task.
func NewTask(title string, description *string, dueDate, category string, priority Priority, status Status) (*Task, error) {
	t := &Task{
		id:        uuid.New(),
		validator: validation.NewTaskValidator(),
	}

	if err := t.SetTitle(title); err != nil {
		return nil, err
	}
	if err := t.SetDescription(description); err != nil {
		return nil, err
	}
	if err := t.SetDueDate(dueDate); err != nil {
		return nil, err
	}
	if err := t.SetCategory(category); err != nil {
		return nil, err
	}
	if err := t.SetPriority(priority); err != nil {
		return nil, err
	}
	if err := t.SetStatus(status); err != nil {
		return nil, err
	}

	return t, nil
}

// NewTaskWithDefaults creates a task with category "General", MEDIUM
// priority and PENDING status.
func NewTaskWithDefaults(title string, description *string, dueDate string) (*Task, error) {
	return NewTask(title, description, dueDate, DefaultCategory, PriorityMedium, StatusPending)
}

// restoreTask rebuilds a task from stored fields, keeping its original
// identifier. The due date is checked for shape only: snapshots may
// legitimately contain dates that have since gone by.
func restoreTask(id uuid.UUID, title string, description *string, dueDate, category string, priority Priority, status Status) (*Task, error) {
	t := &Task{
		id:        id,
		validator: validation.NewTaskValidator(),
	}

	if err := t.SetTitle(title); err != nil {
		return nil, err
	}
	if err := t.SetDescription(description); err != nil {
		return nil, err
	}
	if err := t.validator.ValidateDueDateFormat(dueDate); err != nil {
		return nil, err
	}
	t.dueDate = strings.TrimSpace(dueDate)
	if err := t.SetCategory(category); err != nil {
		return nil, err
	}
	if err := t.SetPriority(priority); err != nil {
		return nil, err
	}
	if err := t.SetStatus(status); err != nil {
		return nil, err
	}

	return t, nil
}

// ID returns the immutable task identifier.
func (t *Task) ID() uuid.UUID {
	return t.id
}

// Title returns the task title.
func (t *Task) Title() string {
	return t.title
}

// SetTitle validates and sets the task title.
func (t *Task) SetTitle(title string) error {
	if err := t.validator.ValidateTitle(title); err != nil {
		return err
	}
	t.title = strings.TrimSpace(title)
	return nil
}

// Description returns the optional task description, or nil.
func (t *Task) Description() *string {
	if t.description == nil {
		return nil
	}
	d := *t.description
	return &d
}

// SetDescription validates and sets the optional description.
func (t *Task) SetDescription(description *string) error {
	if err := t.validator.ValidateDescription(description); err != nil {
		return err
	}
	if description == nil {
		t.description = nil
		return nil
	}
	d := strings.TrimSpace(*description)
	t.description = &d
	return nil
}

// DueDate returns the due date in YYYY-MM-DD form.
func (t *Task) DueDate() string {
	return t.dueDate
}

// SetDueDate validates and sets the due date. The date must parse as
// YYYY-MM-DD and must not lie before today.
func (t *Task) SetDueDate(dueDate string) error {
	if err := t.validator.ValidateDueDate(dueDate); err != nil {
		return err
	}
	t.dueDate = strings.TrimSpace(dueDate)
	return nil
}

// Category returns the task category.
func (t *Task) Category() string {
	return t.category
}

// SetCategory validates and sets the category.
func (t *Task) SetCategory(category string) error {
	if err := t.validator.ValidateCategory(category); err != nil {
		return err
	}
	t.category = strings.TrimSpace(category)
	return nil
}

// Priority returns the task priority.
func (t *Task) Priority() Priority {
	return t.priority
}

// SetPriority validates and sets the priority.
func (t *Task) SetPriority(priority Priority) error {
	if !priority.Valid() {
		validationError := validation.NewValidationError()
		validationError.AddInvalidValueError("priority", priority.String(), "must be one of LOW, MEDIUM, HIGH, URGENT")
		return validationError
	}
	t.priority = priority
	return nil
}

// Status returns the task status.
func (t *Task) Status() Status {
	return t.status
}

// SetStatus validates and sets the status.
func (t *Task) SetStatus(status Status) error {
	if !status.Valid() {
		validationError := validation.NewValidationError()
		validationError.AddInvalidValueError("status", status.String(), "must be one of PENDING, IN_PROGRESS, COMPLETED")
		return validationError
	}
	t.status = status
	return nil
}

// Equal reports whether both tasks carry the same identifier. Field
// values do not participate in identity.
func (t *Task) Equal(other *Task) bool {
	if other == nil {
		return false
	}
	return t.id == other.id
}

// Clone returns an independent copy of the task, identifier included.
func (t *Task) Clone() *Task {
	c := *t
	if t.description != nil {
		d := *t.description
		c.description = &d
	}
	return &c
}

// String returns a one-line summary for display purposes.
func (t *Task) String() string {
	return fmt.Sprintf("%s [%s/%s] due %s (%s)", t.title, t.priority, t.status, t.dueDate, t.category)
}
