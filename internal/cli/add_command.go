package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"task-tracker/internal/domain"
)

// newAddCommand creates the add command.
func newAddCommand(root *RootCommand) *cobra.Command {
	var (
		description string
		dueDate     string
		category    string
		priority    string
		status      string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a new task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service := root.Service()
			handler := NewErrorHandler()

			var desc *string
			if cmd.Flags().Changed("desc") {
				desc = &description
			}

			// Without any detail flags the service fills General/MEDIUM/PENDING.
			if category == "" && priority == "" && status == "" {
				task, err := service.Create(args[0], desc, dueDate)
				if err != nil {
					return handler.Handle("create task", err)
				}
				fmt.Printf("Created task %s\n", shortID(task.ID()))
				return nil
			}

			if category == "" {
				category = domain.DefaultCategory
			}
			p := domain.PriorityMedium
			if priority != "" {
				parsed, err := domain.ParsePriority(priority)
				if err != nil {
					return handler.Handle("create task", err)
				}
				p = parsed
			}
			s := domain.StatusPending
			if status != "" {
				parsed, err := domain.ParseStatus(status)
				if err != nil {
					return handler.Handle("create task", err)
				}
				s = parsed
			}

			task, err := service.CreateWithDetails(args[0], desc, dueDate, category, p, s)
			if err != nil {
				return handler.Handle("create task", err)
			}
			fmt.Printf("Created task %s\n", shortID(task.ID()))
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "desc", "", "optional task description")
	cmd.Flags().StringVar(&dueDate, "due", "", "due date in YYYY-MM-DD form")
	cmd.Flags().StringVar(&category, "category", "", "task category (default General)")
	cmd.Flags().StringVar(&priority, "priority", "", "LOW, MEDIUM, HIGH or URGENT (default MEDIUM)")
	cmd.Flags().StringVar(&status, "status", "", "PENDING, IN_PROGRESS or COMPLETED (default PENDING)")
	cmd.MarkFlagRequired("due")

	return cmd
}
