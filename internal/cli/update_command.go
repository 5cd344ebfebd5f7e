package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"task-tracker/internal/domain"
)

// newUpdateCommand creates the update command. Unset flags keep the
// task's current values; setting --desc to the empty string clears the
// description.
func newUpdateCommand(root *RootCommand) *cobra.Command {
	var (
		title       string
		description string
		dueDate     string
		category    string
		priority    string
		status      string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service := root.Service()
			handler := NewErrorHandler()

			id, err := resolveID(service, args[0])
			if err != nil {
				return err
			}

			current := service.GetByID(id)
			if current == nil {
				fmt.Printf("Task %s not found\n", args[0])
				return nil
			}

			if !cmd.Flags().Changed("title") {
				title = current.Title()
			}
			desc := current.Description()
			if cmd.Flags().Changed("desc") {
				if description == "" {
					desc = nil
				} else {
					desc = &description
				}
			}
			if !cmd.Flags().Changed("due") {
				dueDate = current.DueDate()
			}

			detailed := cmd.Flags().Changed("category") || cmd.Flags().Changed("priority") || cmd.Flags().Changed("status")
			if !detailed {
				updated, err := service.Update(id, title, desc, dueDate)
				if err != nil {
					return handler.Handle("update task", err)
				}
				fmt.Printf("Updated task %s\n", shortID(updated.ID()))
				return nil
			}

			if !cmd.Flags().Changed("category") {
				category = current.Category()
			}
			p := current.Priority()
			if cmd.Flags().Changed("priority") {
				p, err = domain.ParsePriority(priority)
				if err != nil {
					return handler.Handle("update task", err)
				}
			}
			s := current.Status()
			if cmd.Flags().Changed("status") {
				s, err = domain.ParseStatus(status)
				if err != nil {
					return handler.Handle("update task", err)
				}
			}

			updated, err := service.UpdateWithDetails(id, title, desc, dueDate, category, p, s)
			if err != nil {
				return handler.Handle("update task", err)
			}
			fmt.Printf("Updated task %s\n", shortID(updated.ID()))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&description, "desc", "", "new description (empty clears it)")
	cmd.Flags().StringVar(&dueDate, "due", "", "new due date in YYYY-MM-DD form")
	cmd.Flags().StringVar(&category, "category", "", "new category")
	cmd.Flags().StringVar(&priority, "priority", "", "new priority")
	cmd.Flags().StringVar(&status, "status", "", "new status")

	return cmd
}
