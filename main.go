// package main is the entry point for the verpush tool
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/alan/verpush/cmd/commit"
	configcmd "github.com/alan/verpush/cmd/config"
	credscmd "github.com/alan/verpush/cmd/creds"
	"github.com/alan/verpush/cmd/dashboard"
	issuecmd "github.com/alan/verpush/cmd/issue"
	prcmd "github.com/alan/verpush/cmd/pr"
	"github.com/alan/verpush/cmd/publish"
	"github.com/alan/verpush/cmd/pull"
	remotecmd "github.com/alan/verpush/cmd/remote"
	"github.com/alan/verpush/cmd/shortcut"
	"github.com/alan/verpush/cmd/stage"
	"github.com/alan/verpush/cmd/status"
	tagcmd "github.com/alan/verpush/cmd/tag"
	"github.com/alan/verpush/internal/config"
)

func main() {
	var projectDir string
	var logLevel string
	var logFormat string

	rootCmd := &cobra.Command{
		Use:   "verpush",
		Short: "A git versioning and GitHub dashboard tool for package.json projects",
		Long: `verpush wraps the everyday git release workflow of a package.json
project: staging, committing, tagging, pulling and pushing, plus a live
GitHub dashboard for pull requests, issues and commits with in-place
actions such as approving, merging, replying and reacting.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			setupLogger(logLevel, logFormat)
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVarP(&projectDir, "dir", "C", ".", "Project directory")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&logFormat, "log-format", "f", "text", "Log format (text, json)")

	// Create commands with access to the global project directory
	rootCmd.AddCommand(status.NewStatusCmd(&projectDir))
	rootCmd.AddCommand(stage.NewStageCmd(&projectDir))
	rootCmd.AddCommand(stage.NewUnstageCmd(&projectDir))
	rootCmd.AddCommand(commit.NewCommitCmd(&projectDir))
	rootCmd.AddCommand(pull.NewPullCmd(&projectDir))
	rootCmd.AddCommand(tagcmd.NewTagCmd(&projectDir))
	rootCmd.AddCommand(remotecmd.NewRemoteCmd(&projectDir))
	rootCmd.AddCommand(publish.NewPublishCmd(&projectDir))
	rootCmd.AddCommand(dashboard.NewDashboardCmd(&projectDir))
	rootCmd.AddCommand(prcmd.NewPRCmd(&projectDir))
	rootCmd.AddCommand(issuecmd.NewIssueCmd(&projectDir))
	rootCmd.AddCommand(configcmd.NewConfigCmd(&projectDir, config.Load, config.Save))
	rootCmd.AddCommand(credscmd.NewCredsCmd(&projectDir))
	rootCmd.AddCommand(shortcut.NewShortcutCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogger(level, format string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	}

	slog.SetDefault(slog.New(handler))
}
