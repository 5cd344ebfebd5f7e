package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"task-tracker/internal/domain"
)

// newSetCommands creates the single-field update commands: done,
// status, priority and category.
func newSetCommands(root *RootCommand) []*cobra.Command {
	done := &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setStatus(root, args[0], domain.StatusCompleted)
		},
	}

	status := &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Set the status of a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := domain.ParseStatus(args[1])
			if err != nil {
				return NewErrorHandler().Handle("update status", err)
			}
			return setStatus(root, args[0], s)
		},
	}

	priority := &cobra.Command{
		Use:   "priority <id> <priority>",
		Short: "Set the priority of a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			service := root.Service()
			handler := NewErrorHandler()

			p, err := domain.ParsePriority(args[1])
			if err != nil {
				return handler.Handle("update priority", err)
			}

			id, err := resolveID(service, args[0])
			if err != nil {
				return err
			}

			task, err := service.UpdatePriority(id, p)
			if err != nil {
				return handler.Handle("update priority", err)
			}
			if task == nil {
				fmt.Printf("Task %s not found\n", args[0])
				return nil
			}
			fmt.Printf("Task %s priority set to %s\n", shortID(task.ID()), task.Priority())
			return nil
		},
	}

	category := &cobra.Command{
		Use:   "category <id> <category>",
		Short: "Set the category of a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			service := root.Service()
			handler := NewErrorHandler()

			id, err := resolveID(service, args[0])
			if err != nil {
				return err
			}

			task, err := service.UpdateCategory(id, args[1])
			if err != nil {
				return handler.Handle("update category", err)
			}
			if task == nil {
				fmt.Printf("Task %s not found\n", args[0])
				return nil
			}
			fmt.Printf("Task %s category set to %s\n", shortID(task.ID()), task.Category())
			return nil
		},
	}

	return []*cobra.Command{done, status, priority, category}
}

func setStatus(root *RootCommand, arg string, status domain.Status) error {
	service := root.Service()
	handler := NewErrorHandler()

	id, err := resolveID(service, arg)
	if err != nil {
		return err
	}

	task, err := service.UpdateStatus(id, status)
	if err != nil {
		return handler.Handle("update status", err)
	}
	if task == nil {
		fmt.Printf("Task %s not found\n", arg)
		return nil
	}
	fmt.Printf("Task %s status set to %s\n", shortID(task.ID()), task.Status())
	return nil
}
