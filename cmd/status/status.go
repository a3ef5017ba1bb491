// Package status implements the status command summarizing the selected
// project: manifest, version, branch, remote and changed files.
package status

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alan/verpush/internal/commands"
	"github.com/alan/verpush/internal/manifest"
)

type command struct {
	commands.BaseCommand
	ManifestPath string
}

// NewStatusCmd creates the status command
func NewStatusCmd(projectDir *string) *cobra.Command {
	sc := &command{}
	var manifestFlag string

	cobraCmd := &cobra.Command{
		Use:   "status",
		Short: "Show the project's version, branch, remote and changed files",
		Long: `Display a summary of the selected project: the discovered version
manifest and its version, the checked-out branch, the origin remote and
the files reported changed by git.`,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			sc.ProjectDir = *projectDir
			if err := sc.Init(); err != nil {
				return err
			}

			path, err := sc.ResolveManifest(manifestFlag)
			if err != nil {
				return err
			}
			sc.ManifestPath = path

			return sc.Run()
		},
	}

	cobraCmd.Flags().StringVar(&manifestFlag, "manifest", "", "Path to the version manifest (discovered when omitted)")

	return cobraCmd
}

// Run prints the project summary
func (sc *command) Run() error {
	version, err := manifest.ReadVersion(sc.ManifestPath)
	if err != nil {
		return err
	}

	branch, err := sc.Git.Branch()
	if err != nil {
		return err
	}

	remote, err := sc.Git.RemoteURL()
	if err != nil {
		remote = "(none set)"
	}

	fmt.Printf("Manifest: %s\n", sc.ManifestPath)
	fmt.Printf("Version:  %s\n", version)
	fmt.Printf("Branch:   %s\n", branch)
	fmt.Printf("Remote:   %s\n", remote)

	files, err := sc.Git.ChangedFiles()
	if err != nil {
		return err
	}

	if len(files) == 0 {
		fmt.Println("\nWorking tree clean.")
		return nil
	}

	fmt.Printf("\nChanged files (%d):\n", len(files))
	for _, file := range files {
		fmt.Printf("  %s\n", file)
	}

	return nil
}
