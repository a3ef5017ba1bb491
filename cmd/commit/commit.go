// Package commit implements the commit command: stage the named files
// and record a commit without pushing.
package commit

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alan/verpush/internal/commands"
)

type command struct {
	commands.BaseCommand
	Message string
	Files   []string
}

// NewCommitCmd creates the commit command
func NewCommitCmd(projectDir *string) *cobra.Command {
	cc := &command{}

	cobraCmd := &cobra.Command{
		Use:   "commit <file> [file...]",
		Short: "Stage the given files and commit them locally",
		Long: `Stage the given files and record a commit with the supplied message.
Nothing is pushed; use "verpush publish" or git directly for that.

Examples:
  verpush commit -m "fix parser" src/parser.go
  verpush commit -m "docs" README.md docs/usage.md`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			cc.ProjectDir = *projectDir
			cc.Files = args
			if err := cc.Init(); err != nil {
				return err
			}
			return cc.Run()
		},
	}

	cobraCmd.Flags().StringVarP(&cc.Message, "message", "m", "", "Commit message (required)")
	_ = cobraCmd.MarkFlagRequired("message")

	return cobraCmd
}

// Run stages the files and commits them
func (cc *command) Run() error {
	if cc.Message == "" {
		return fmt.Errorf("a commit message is required")
	}

	if err := cc.Git.Stage(cc.Files...); err != nil {
		return err
	}

	if err := cc.Git.Commit(cc.Message); err != nil {
		return err
	}

	fmt.Println("Files committed, but not pushed.")
	return nil
}
