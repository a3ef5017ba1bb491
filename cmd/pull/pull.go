// Package pull implements the pull command.
package pull

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alan/verpush/internal/commands"
)

// NewPullCmd creates the pull command
func NewPullCmd(projectDir *string) *cobra.Command {
	var rebase bool

	cobraCmd := &cobra.Command{
		Use:          "pull",
		Short:        "Pull from the remote (merge by default, --rebase to rebase)",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			bc := &commands.BaseCommand{ProjectDir: *projectDir}
			if err := bc.Init(); err != nil {
				return err
			}

			if err := bc.Git.Pull(rebase); err != nil {
				return err
			}

			if rebase {
				fmt.Println("Pulled from remote (rebase).")
			} else {
				fmt.Println("Pulled from remote (merge).")
			}
			return nil
		},
	}

	cobraCmd.Flags().BoolVar(&rebase, "rebase", false, "Rebase onto the upstream branch instead of merging")

	return cobraCmd
}
