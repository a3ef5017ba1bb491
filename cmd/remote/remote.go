// Package remote implements showing and updating the origin remote URL.
package remote

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alan/verpush/internal/commands"
)

// NewRemoteCmd creates the remote command group
func NewRemoteCmd(projectDir *string) *cobra.Command {
	cobraCmd := &cobra.Command{
		Use:          "remote",
		Short:        "Show or update the origin remote URL",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			bc := &commands.BaseCommand{ProjectDir: *projectDir}
			if err := bc.Init(); err != nil {
				return err
			}

			remote, err := bc.Git.RemoteURL()
			if err != nil {
				return err
			}

			fmt.Println(remote)
			return nil
		},
	}

	cobraCmd.AddCommand(newSetCmd(projectDir))

	return cobraCmd
}

func newSetCmd(projectDir *string) *cobra.Command {
	return &cobra.Command{
		Use:          "set <url>",
		Short:        "Point the origin remote at a new URL",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			bc := &commands.BaseCommand{ProjectDir: *projectDir}
			if err := bc.Init(); err != nil {
				return err
			}

			current, err := bc.Git.RemoteURL()
			if err == nil && current == args[0] {
				fmt.Println("Remote already set correctly.")
				return nil
			}

			if err := bc.Git.SetRemoteURL(args[0]); err != nil {
				return err
			}

			fmt.Println("Remote URL updated.")
			return nil
		},
	}
}
