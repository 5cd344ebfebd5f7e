package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-tracker/internal/repository"
	"task-tracker/internal/validation"
)

func TestTaskMapper_RoundTrip(t *testing.T) {
	mapper := NewTaskMapper()
	task, err := NewTask("Write report", strPtr("Quarterly numbers"), futureDate(7), "Work", PriorityHigh, StatusInProgress)
	require.NoError(t, err)

	record := mapper.ToRecord(task)
	restored, err := mapper.FromRecord(record)

	require.NoError(t, err)
	assert.Equal(t, task.ID(), restored.ID())
	assert.Equal(t, task.Title(), restored.Title())
	assert.Equal(t, *task.Description(), *restored.Description())
	assert.Equal(t, task.DueDate(), restored.DueDate())
	assert.Equal(t, task.Category(), restored.Category())
	assert.Equal(t, task.Priority(), restored.Priority())
	assert.Equal(t, task.Status(), restored.Status())
}

func TestTaskMapper_FromRecord(t *testing.T) {
	valid := func() *repository.TaskRecord {
		return &repository.TaskRecord{
			ID:       uuid.NewString(),
			Title:    "Write report",
			DueDate:  "2099-01-15",
			Category: "Work",
			Priority: "HIGH",
			Status:   "PENDING",
		}
	}

	tests := []struct {
		name           string
		record         func() *repository.TaskRecord
		assertion      func(t *testing.T, task *Task)
		errorAssertion func(t *testing.T, err error)
	}{
		{
			name:   "should restore a valid record",
			record: valid,
			assertion: func(t *testing.T, task *Task) {
				assert.Equal(t, "Write report", task.Title())
				assert.Nil(t, task.Description())
			},
		},
		{
			name: "should generate an id when the record has none",
			record: func() *repository.TaskRecord {
				r := valid()
				r.ID = ""
				return r
			},
			assertion: func(t *testing.T, task *Task) {
				assert.NotEqual(t, uuid.Nil, task.ID())
			},
		},
		{
			name: "should accept a past due date from storage",
			record: func() *repository.TaskRecord {
				r := valid()
				r.DueDate = "2020-01-01"
				return r
			},
			assertion: func(t *testing.T, task *Task) {
				assert.Equal(t, "2020-01-01", task.DueDate())
			},
		},
		{
			name: "should parse priority and status case-insensitively",
			record: func() *repository.TaskRecord {
				r := valid()
				r.Priority = "urgent"
				r.Status = "in_progress"
				return r
			},
			assertion: func(t *testing.T, task *Task) {
				assert.Equal(t, PriorityUrgent, task.Priority())
				assert.Equal(t, StatusInProgress, task.Status())
			},
		},
		{
			name: "should reject a malformed id",
			record: func() *repository.TaskRecord {
				r := valid()
				r.ID = "not-a-uuid"
				return r
			},
			errorAssertion: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "id")
			},
		},
		{
			name: "should reject an unknown priority",
			record: func() *repository.TaskRecord {
				r := valid()
				r.Priority = "EXTREME"
				return r
			},
			errorAssertion: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "priority")
			},
		},
		{
			name: "should reject an empty title",
			record: func() *repository.TaskRecord {
				r := valid()
				r.Title = ""
				return r
			},
			errorAssertion: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "title")
			},
		},
		{
			name: "should reject a malformed due date",
			record: func() *repository.TaskRecord {
				r := valid()
				r.DueDate = "15/01/2099"
				return r
			},
			errorAssertion: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapper := NewTaskMapper()

			task, err := mapper.FromRecord(tt.record())

			if tt.errorAssertion != nil {
				tt.errorAssertion(t, err)
				assert.Nil(t, task)
				return
			}
			require.NoError(t, err)
			tt.assertion(t, task)
		})
	}
}

func TestTaskMapper_SliceConversionsPreserveOrder(t *testing.T) {
	mapper := NewTaskMapper()
	due := time.Now().AddDate(0, 0, 5).Format(validation.DateLayout)

	var tasks []*Task
	for _, title := range []string{"first", "second", "third"} {
		task, err := NewTaskWithDefaults(title, nil, due)
		require.NoError(t, err)
		tasks = append(tasks, task)
	}

	records := mapper.ToRecordSlice(tasks)
	require.Len(t, records, 3)

	restored, err := mapper.FromRecordSlice(records)
	require.NoError(t, err)
	require.Len(t, restored, 3)
	for i := range tasks {
		assert.Equal(t, tasks[i].ID(), restored[i].ID())
		assert.Equal(t, tasks[i].Title(), restored[i].Title())
	}
}

func TestTaskMapper_FromRecordSlice_FailsOnFirstInvalidRecord(t *testing.T) {
	mapper := NewTaskMapper()

	records := []*repository.TaskRecord{
		{Title: "fine", DueDate: "2099-01-15", Category: "Work", Priority: "LOW", Status: "PENDING"},
		{Title: "", DueDate: "2099-01-15", Category: "Work", Priority: "LOW", Status: "PENDING"},
	}

	tasks, err := mapper.FromRecordSlice(records)

	assert.Error(t, err)
	assert.Nil(t, tasks)
}
