package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newBackupCommand creates the backup command.
func newBackupCommand(root *RootCommand) *cobra.Command {
	return &cobra.Command{
		Use:   "backup <suffix>",
		Short: "Back up the snapshot file to path+suffix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service := root.Service()

			if !service.CreateBackup(args[0]) {
				// The service already logged the cause; warn without stopping.
				fmt.Println("Backup failed")
				return nil
			}

			info := service.RepositoryInfo()
			fmt.Printf("Backup written to %s%s\n", info.Path, args[0])
			return nil
		},
	}
}
