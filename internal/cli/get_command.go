package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newGetCommand creates the get command.
func newGetCommand(root *RootCommand) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a single task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service := root.Service()

			id, err := resolveID(service, args[0])
			if err != nil {
				return err
			}

			task := service.GetByID(id)
			if task == nil {
				fmt.Printf("Task %s not found\n", args[0])
				return nil
			}

			printTaskDetail(task)
			return nil
		},
	}
}
