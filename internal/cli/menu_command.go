package cli

import (
	"github.com/spf13/cobra"

	"task-tracker/internal/ui"
)

// newMenuCommand creates the interactive menu command.
func newMenuCommand(root *RootCommand) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Browse tasks in an interactive terminal menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ui.RunMenu(cmd.Context(), root.Service())
		},
	}
}
