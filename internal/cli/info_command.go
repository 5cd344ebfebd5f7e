package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newInfoCommand creates the info command.
func newInfoCommand(root *RootCommand) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show storage path, existence and size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(root.Service().RepositoryInfo())
			return nil
		},
	}
}
