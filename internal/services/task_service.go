package services

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/repository"
	"task-tracker/internal/validation"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	store  repository.Store
	mapper *domain.Mapper
	logger *log.Logger
	tasks  []*domain.Task
}

// NewTaskService creates a service backed by the given store. The
// collection is loaded once here; a load failure is reported to the
// logger and the service starts empty rather than failing construction.
func NewTaskService(store repository.Store, logger *log.Logger) TaskService {
	s := &taskServiceImpl{
		store:  store,
		mapper: domain.NewMapper(),
		logger: logger,
		tasks:  []*domain.Task{},
	}

	records, err := store.Load()
	if err != nil {
		logger.Warn("failed to load tasks, starting empty", "path", store.Path(), "error", err)
		return s
	}

	tasks, err := s.mapper.Task.FromRecordSlice(records)
	if err != nil {
		logger.Warn("failed to restore tasks, starting empty", "path", store.Path(), "error", err)
		return s
	}

	s.tasks = tasks
	return s
}

// wrapValidation converts a field-level validation error into the
// application validation kind, keeping the field message visible.
func wrapValidation(err error) error {
	if ve, ok := err.(*validation.ValidationError); ok {
		return errors.NewValidationError(ve.GetUserFriendlyMessage(), ve)
	}
	return err
}

// persist writes the full current snapshot. Failures are logged, never
// propagated: the in-memory state remains authoritative.
func (s *taskServiceImpl) persist() {
	records := s.mapper.Task.ToRecordSlice(s.tasks)
	if err := s.store.Save(records); err != nil {
		s.logger.Error("failed to persist tasks, disk copy may be stale", "path", s.store.Path(), "error", err)
	}
}

// find returns the task with the given id and its position, or nil, -1.
func (s *taskServiceImpl) find(id uuid.UUID) (*domain.Task, int) {
	if id == uuid.Nil {
		return nil, -1
	}
	for i, task := range s.tasks {
		if task.ID() == id {
			return task, i
		}
	}
	return nil, -1
}

// Create creates a task with default category, priority and status,
// appends it and persists the collection.
func (s *taskServiceImpl) Create(title string, description *string, dueDate string) (*domain.Task, error) {
	task, err := domain.NewTaskWithDefaults(title, description, dueDate)
	if err != nil {
		return nil, wrapValidation(err)
	}

	s.tasks = append(s.tasks, task)
	s.persist()
	return task, nil
}

// CreateWithDetails creates a fully specified task, appends it and
// persists the collection.
func (s *taskServiceImpl) CreateWithDetails(title string, description *string, dueDate, category string, priority domain.Priority, status domain.Status) (*domain.Task, error) {
	task, err := domain.NewTask(title, description, dueDate, category, priority, status)
	if err != nil {
		return nil, wrapValidation(err)
	}

	s.tasks = append(s.tasks, task)
	s.persist()
	return task, nil
}

// GetByID returns the task with the given id, or nil. The returned
// handle points into the owned collection.
func (s *taskServiceImpl) GetByID(id uuid.UUID) *domain.Task {
	task, _ := s.find(id)
	return task
}

// GetAll returns an independent copy of the task sequence.
func (s *taskServiceImpl) GetAll() []*domain.Task {
	all := make([]*domain.Task, len(s.tasks))
	copy(all, s.tasks)
	return all
}

// Update changes title, description and due date of the task with the
// given id. All fields are validated against a scratch copy first, then
// applied together: a failing field leaves the task fully unchanged.
// An unknown id returns nil, nil without persisting.
func (s *taskServiceImpl) Update(id uuid.UUID, title string, description *string, dueDate string) (*domain.Task, error) {
	task, _ := s.find(id)
	if task == nil {
		return nil, nil
	}

	scratch := task.Clone()
	if err := scratch.SetTitle(title); err != nil {
		return nil, wrapValidation(err)
	}
	if err := scratch.SetDescription(description); err != nil {
		return nil, wrapValidation(err)
	}
	if err := scratch.SetDueDate(dueDate); err != nil {
		return nil, wrapValidation(err)
	}

	*task = *scratch
	s.persist()
	return task, nil
}

// UpdateWithDetails is Update extended to category, priority and
// status, with the same all-or-nothing validation.
func (s *taskServiceImpl) UpdateWithDetails(id uuid.UUID, title string, description *string, dueDate, category string, priority domain.Priority, status domain.Status) (*domain.Task, error) {
	task, _ := s.find(id)
	if task == nil {
		return nil, nil
	}

	scratch := task.Clone()
	if err := scratch.SetTitle(title); err != nil {
		return nil, wrapValidation(err)
	}
	if err := scratch.SetDescription(description); err != nil {
		return nil, wrapValidation(err)
	}
	if err := scratch.SetDueDate(dueDate); err != nil {
		return nil, wrapValidation(err)
	}
	if err := scratch.SetCategory(category); err != nil {
		return nil, wrapValidation(err)
	}
	if err := scratch.SetPriority(priority); err != nil {
		return nil, wrapValidation(err)
	}
	if err := scratch.SetStatus(status); err != nil {
		return nil, wrapValidation(err)
	}

	*task = *scratch
	s.persist()
	return task, nil
}

// UpdateStatus changes only the status of the task with the given id.
func (s *taskServiceImpl) UpdateStatus(id uuid.UUID, status domain.Status) (*domain.Task, error) {
	task, _ := s.find(id)
	if task == nil {
		return nil, nil
	}

	if err := task.SetStatus(status); err != nil {
		return nil, wrapValidation(err)
	}

	s.persist()
	return task, nil
}

// UpdatePriority changes only the priority of the task with the given id.
func (s *taskServiceImpl) UpdatePriority(id uuid.UUID, priority domain.Priority) (*domain.Task, error) {
	task, _ := s.find(id)
	if task == nil {
		return nil, nil
	}

	if err := task.SetPriority(priority); err != nil {
		return nil, wrapValidation(err)
	}

	s.persist()
	return task, nil
}

// UpdateCategory changes only the category of the task with the given id.
func (s *taskServiceImpl) UpdateCategory(id uuid.UUID, category string) (*domain.Task, error) {
	task, _ := s.find(id)
	if task == nil {
		return nil, nil
	}

	if err := task.SetCategory(category); err != nil {
		return nil, wrapValidation(err)
	}

	s.persist()
	return task, nil
}

// Delete removes the task with the given id and persists. Returns false
// for an unknown id without touching the store.
func (s *taskServiceImpl) Delete(id uuid.UUID) bool {
	task, i := s.find(id)
	if task == nil {
		return false
	}

	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	s.persist()
	return true
}

// GetByCategory returns all tasks in the given category, compared
// case-insensitively, preserving their relative order. An empty
// category returns an empty slice.
func (s *taskServiceImpl) GetByCategory(category string) []*domain.Task {
	matched := []*domain.Task{}
	trimmed := strings.TrimSpace(category)
	if trimmed == "" {
		return matched
	}

	for _, task := range s.tasks {
		if strings.EqualFold(task.Category(), trimmed) {
			matched = append(matched, task)
		}
	}
	return matched
}

// GetByPriority returns all tasks with the given priority, preserving
// their relative order. An invalid priority returns an empty slice.
func (s *taskServiceImpl) GetByPriority(priority domain.Priority) []*domain.Task {
	matched := []*domain.Task{}
	if !priority.Valid() {
		return matched
	}

	for _, task := range s.tasks {
		if task.Priority() == priority {
			matched = append(matched, task)
		}
	}
	return matched
}

// GetByStatus returns all tasks with the given status, preserving
// their relative order. An invalid status returns an empty slice.
func (s *taskServiceImpl) GetByStatus(status domain.Status) []*domain.Task {
	matched := []*domain.Task{}
	if !status.Valid() {
		return matched
	}

	for _, task := range s.tasks {
		if task.Status() == status {
			matched = append(matched, task)
		}
	}
	return matched
}

// GroupedByCategory buckets the collection by exact category value.
// Only categories that occur appear as keys.
func (s *taskServiceImpl) GroupedByCategory() map[string][]*domain.Task {
	groups := make(map[string][]*domain.Task)
	for _, task := range s.tasks {
		groups[task.Category()] = append(groups[task.Category()], task)
	}
	return groups
}

// GroupedByPriority buckets the collection by priority.
func (s *taskServiceImpl) GroupedByPriority() map[domain.Priority][]*domain.Task {
	groups := make(map[domain.Priority][]*domain.Task)
	for _, task := range s.tasks {
		groups[task.Priority()] = append(groups[task.Priority()], task)
	}
	return groups
}

// GroupedByStatus buckets the collection by status.
func (s *taskServiceImpl) GroupedByStatus() map[domain.Status][]*domain.Task {
	groups := make(map[domain.Status][]*domain.Task)
	for _, task := range s.tasks {
		groups[task.Status()] = append(groups[task.Status()], task)
	}
	return groups
}

// CreateBackup delegates to the store. The result is reported as a
// boolean; the underlying error is logged, not propagated.
func (s *taskServiceImpl) CreateBackup(suffix string) bool {
	if err := s.store.Backup(suffix); err != nil {
		s.logger.Error("failed to create backup", "path", s.store.Path(), "suffix", suffix, "error", err)
		return false
	}
	return true
}

// RepositoryInfo reports the store's path, existence and size as they
// are at call time.
func (s *taskServiceImpl) RepositoryInfo() RepositoryInfo {
	return RepositoryInfo{
		Path:   s.store.Path(),
		Exists: s.store.Exists(),
		Size:   s.store.Size(),
	}
}
