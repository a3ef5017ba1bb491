// Package publish implements the composite bump-commit-tag-push sequence.
package publish

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"

	"github.com/alan/verpush/internal/commands"
	"github.com/alan/verpush/internal/manifest"
)

// command encapsulates one publish invocation
type command struct {
	commands.BaseCommand
	Version      string
	Message      string
	ManifestPath string
	PushTags     bool
}

// NewPublishCmd creates the publish command
func NewPublishCmd(projectDir *string) *cobra.Command {
	pc := &command{}
	var manifestFlag string

	cobraCmd := &cobra.Command{
		Use:   "publish",
		Short: "Bump the manifest version, commit, tag and push",
		Long: `Run the publish sequence: rewrite the manifest's version field,
stage the manifest, commit, create a v<version> tag, push the branch and
optionally push tags.

Steps run strictly in order. The first failing step aborts the rest and
its output is reported; completed steps are not rolled back.

Examples:
  verpush publish --version 1.3.0 --message "release 1.3.0"
  verpush publish --version 1.3.0 --message "release" --push-tags=false`,
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			pc.ProjectDir = *projectDir
			if err := pc.Init(); err != nil {
				return err
			}

			if !cobraCmd.Flags().Changed("push-tags") {
				pc.PushTags = pc.Config.PushTagsEnabled()
			}

			path, err := pc.ResolveManifest(manifestFlag)
			if err != nil {
				return err
			}
			pc.ManifestPath = path

			return pc.Run()
		},
	}

	cobraCmd.Flags().StringVar(&pc.Version, "version", "", "New semantic version to publish (required)")
	cobraCmd.Flags().StringVarP(&pc.Message, "message", "m", "", "Commit message (required)")
	cobraCmd.Flags().StringVar(&manifestFlag, "manifest", "", "Path to the version manifest (discovered when omitted)")
	cobraCmd.Flags().BoolVar(&pc.PushTags, "push-tags", true, "Push tags after pushing the branch")
	_ = cobraCmd.MarkFlagRequired("version")
	_ = cobraCmd.MarkFlagRequired("message")

	return cobraCmd
}

// Run executes the publish sequence
func (pc *command) Run() error {
	if pc.Message == "" {
		return fmt.Errorf("a commit message is required")
	}

	version := strings.TrimPrefix(strings.TrimSpace(pc.Version), "v")
	if _, err := semver.NewVersion(version); err != nil {
		return fmt.Errorf("invalid version %q: %w", pc.Version, err)
	}

	slog.Info("Updating manifest version", "manifest", pc.ManifestPath, "version", version)
	if err := manifest.WriteVersion(pc.ManifestPath, version); err != nil {
		return err
	}

	stagePath := pc.ManifestPath
	if rel, err := filepath.Rel(pc.ProjectDir, pc.ManifestPath); err == nil {
		stagePath = rel
	}

	slog.Info("Staging manifest", "path", stagePath)
	if err := pc.Git.Stage(stagePath); err != nil {
		return fmt.Errorf("stage failed: %w", err)
	}

	slog.Info("Committing", "message", pc.Message)
	if err := pc.Git.Commit(pc.Message); err != nil {
		return fmt.Errorf("commit failed: %w", err)
	}

	tag := "v" + version
	slog.Info("Creating tag", "tag", tag)
	if err := pc.Git.CreateTag(tag); err != nil {
		return fmt.Errorf("tag failed: %w", err)
	}

	slog.Info("Pushing branch")
	if err := pc.Git.Push(); err != nil {
		return fmt.Errorf("push failed: %w", err)
	}

	if pc.PushTags {
		slog.Info("Pushing tags")
		if err := pc.Git.PushTags(); err != nil {
			return fmt.Errorf("push tags failed: %w", err)
		}
	}

	fmt.Printf("Version %s committed, tagged %s and pushed\n", version, tag)
	return nil
}
