// Package stage implements the stage and unstage commands.
package stage

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alan/verpush/internal/commands"
)

// NewStageCmd creates the stage command
func NewStageCmd(projectDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "stage <file> [file...]",
		Short: "Stage the given files",
		Long: `Add the given files to the git index.

Examples:
  verpush stage src/main.go
  verpush stage src/main.go README.md`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			bc := &commands.BaseCommand{ProjectDir: *projectDir}
			if err := bc.Init(); err != nil {
				return err
			}

			if err := bc.Git.Stage(args...); err != nil {
				return err
			}

			fmt.Printf("Staged %d file(s)\n", len(args))
			return nil
		},
	}
}

// NewUnstageCmd creates the unstage command
func NewUnstageCmd(projectDir *string) *cobra.Command {
	return &cobra.Command{
		Use:          "unstage <file> [file...]",
		Short:        "Unstage the given files",
		Long:         "Remove the given files from the git index (git reset HEAD).",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			bc := &commands.BaseCommand{ProjectDir: *projectDir}
			if err := bc.Init(); err != nil {
				return err
			}

			if err := bc.Git.Unstage(args...); err != nil {
				return err
			}

			fmt.Printf("Unstaged %d file(s)\n", len(args))
			return nil
		},
	}
}
