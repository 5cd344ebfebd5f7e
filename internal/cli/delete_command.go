package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newDeleteCommand creates the delete command.
func newDeleteCommand(root *RootCommand) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service := root.Service()

			id, err := resolveID(service, args[0])
			if err != nil {
				return err
			}

			if service.Delete(id) {
				fmt.Printf("Deleted task %s\n", shortID(id))
			} else {
				fmt.Printf("Task %s not found\n", args[0])
			}
			return nil
		},
	}
}
