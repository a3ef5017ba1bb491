// Package tag implements local tag management: list, create, delete, push.
package tag

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alan/verpush/internal/commands"
	"github.com/alan/verpush/internal/gitcmd"
)

// NewTagCmd creates the tag command group
func NewTagCmd(projectDir *string) *cobra.Command {
	cobraCmd := &cobra.Command{
		Use:   "tag",
		Short: "Manage local git tags",
	}

	cobraCmd.AddCommand(newListCmd(projectDir))
	cobraCmd.AddCommand(newCreateCmd(projectDir))
	cobraCmd.AddCommand(newDeleteCmd(projectDir))
	cobraCmd.AddCommand(newPushCmd(projectDir))

	return cobraCmd
}

func initGit(projectDir string) (*gitcmd.Runner, error) {
	bc := &commands.BaseCommand{ProjectDir: projectDir}
	if err := bc.Init(); err != nil {
		return nil, err
	}
	return bc.Git, nil
}

func newListCmd(projectDir *string) *cobra.Command {
	return &cobra.Command{
		Use:          "list",
		Short:        "List local tags, marking the latest",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			git, err := initGit(*projectDir)
			if err != nil {
				return err
			}

			tags, err := git.Tags()
			if err != nil {
				return err
			}

			if len(tags) == 0 {
				fmt.Println("No tags.")
				return nil
			}

			// The last tag in git's list order is treated as the latest,
			// matching the auto-selection behavior of the tag picker
			for i, tag := range tags {
				if i == len(tags)-1 {
					fmt.Printf("%s (latest)\n", tag)
				} else {
					fmt.Println(tag)
				}
			}
			return nil
		},
	}
}

func newCreateCmd(projectDir *string) *cobra.Command {
	return &cobra.Command{
		Use:          "create <name>",
		Short:        "Create a tag at HEAD",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			git, err := initGit(*projectDir)
			if err != nil {
				return err
			}

			if err := git.CreateTag(args[0]); err != nil {
				return err
			}

			fmt.Printf("Tag %q created locally.\n", args[0])
			return nil
		},
	}
}

func newDeleteCmd(projectDir *string) *cobra.Command {
	var yes bool

	cobraCmd := &cobra.Command{
		Use:          "delete <name>",
		Short:        "Delete a local tag",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("deleting tag %q cannot be undone; re-run with --yes to confirm", args[0])
			}

			git, err := initGit(*projectDir)
			if err != nil {
				return err
			}

			if err := git.DeleteTag(args[0]); err != nil {
				return err
			}

			fmt.Printf("Tag %q deleted locally.\n", args[0])
			return nil
		},
	}

	cobraCmd.Flags().BoolVar(&yes, "yes", false, "Confirm the deletion")

	return cobraCmd
}

func newPushCmd(projectDir *string) *cobra.Command {
	return &cobra.Command{
		Use:          "push <name>",
		Short:        "Push a tag to origin",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			git, err := initGit(*projectDir)
			if err != nil {
				return err
			}

			if err := git.PushTag(args[0]); err != nil {
				return err
			}

			fmt.Printf("Tag %q pushed to origin.\n", args[0])
			return nil
		},
	}
}
