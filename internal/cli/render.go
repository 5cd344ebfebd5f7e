package cli

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"task-tracker/internal/domain"
	"task-tracker/internal/services"
)

// shortID returns the leading segment of a task id, enough to identify
// a task in small collections.
func shortID(id uuid.UUID) string {
	return id.String()[:8]
}

// resolveID turns a user-supplied identifier into a task id. Full UUIDs
// are parsed directly; anything else is matched as an id prefix against
// the current collection.
func resolveID(service services.TaskService, arg string) (uuid.UUID, error) {
	if id, err := uuid.Parse(arg); err == nil {
		return id, nil
	}

	prefix := strings.ToLower(strings.TrimSpace(arg))
	if prefix == "" {
		return uuid.Nil, fmt.Errorf("empty task id")
	}

	var matched uuid.UUID
	count := 0
	for _, task := range service.GetAll() {
		if strings.HasPrefix(task.ID().String(), prefix) {
			matched = task.ID()
			count++
		}
	}

	switch count {
	case 0:
		return uuid.Nil, fmt.Errorf("no task with id %q", arg)
	case 1:
		return matched, nil
	default:
		return uuid.Nil, fmt.Errorf("task id %q is ambiguous (%d matches)", arg, count)
	}
}

// printTasks renders tasks as an aligned table, one row per task.
func printTasks(tasks []*domain.Task) {
	if len(tasks) == 0 {
		fmt.Println("No tasks found")
		return
	}

	fmt.Printf("%-10s %-30s %-12s %-8s %-12s %s\n", "ID", "TITLE", "CATEGORY", "PRIORITY", "STATUS", "DUE")
	for _, task := range tasks {
		fmt.Printf("%-10s %-30s %-12s %-8s %-12s %s\n",
			shortID(task.ID()),
			truncate(task.Title(), 30),
			truncate(task.Category(), 12),
			task.Priority(),
			task.Status(),
			task.DueDate())
	}
}

// printTaskDetail renders a single task with all fields.
func printTaskDetail(task *domain.Task) {
	fmt.Printf("ID:          %s\n", task.ID())
	fmt.Printf("Title:       %s\n", task.Title())
	if desc := task.Description(); desc != nil {
		fmt.Printf("Description: %s\n", *desc)
	}
	fmt.Printf("Due date:    %s\n", task.DueDate())
	fmt.Printf("Category:    %s\n", task.Category())
	fmt.Printf("Priority:    %s\n", task.Priority())
	fmt.Printf("Status:      %s\n", task.Status())
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
