// Package dashboard implements the interactive terminal dashboard with
// live pull request, issue and commit panels and key-bound actions.
package dashboard

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alan/verpush/internal/commands"
)

type command struct {
	commands.BaseCommand
	Branch string
}

// NewDashboardCmd creates the dashboard command
func NewDashboardCmd(projectDir *string) *cobra.Command {
	dc := &command{}

	cobraCmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive PR, issue and commit dashboard",
		Long: `Open a full-screen dashboard with three panels: open pull requests,
issues and recent commits on the tracked branch. Tab cycles panels, r
refreshes all of them, and per-row keys trigger GitHub actions such as
approving or merging a PR, replying to an issue or adding a reaction.`,
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			dc.ProjectDir = *projectDir
			if err := dc.Init(); err != nil {
				return err
			}
			if err := dc.InitGitHub(cobraCmd.Context()); err != nil {
				return err
			}

			branch := dc.Branch
			if branch == "" {
				branch = dc.Config.DashboardBranch()
			}

			m := newModel(dc.GitHub, branch, dc.GitHub.Owner(), dc.GitHub.Repo())
			program := tea.NewProgram(m, tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("dashboard failed: %w", err)
			}
			return nil
		},
	}

	cobraCmd.Flags().StringVarP(&dc.Branch, "branch", "b", "", "Branch whose commits to show (default from config, then main)")

	return cobraCmd
}
