// Package creds implements the credential commands: save, show and clear
// against the OS keyring, plus the optional git credential store bridge.
package creds

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alan/verpush/internal/commands"
	"github.com/alan/verpush/internal/creds"
)

// credentialSource resolves the credentials the way the rest of the
// tool reads them. Implemented by *creds.Provider; tests inject fakes.
type credentialSource interface {
	User() string
	Token() string
}

type command struct {
	commands.BaseCommand
	User     string
	Token    string
	GitStore bool

	Provider credentialSource
}

// NewCredsCmd creates the creds command group
func NewCredsCmd(projectDir *string) *cobra.Command {
	cobraCmd := &cobra.Command{
		Use:   "creds",
		Short: "Manage the saved GitHub credentials",
	}

	cobraCmd.AddCommand(newSaveCmd(projectDir))
	cobraCmd.AddCommand(newShowCmd(projectDir))
	cobraCmd.AddCommand(newClearCmd(projectDir))

	return cobraCmd
}

func (cc *command) store() *creds.Store {
	return creds.NewStore(cc.Config.KeyringService)
}

func newSaveCmd(projectDir *string) *cobra.Command {
	cc := &command{}

	cobraCmd := &cobra.Command{
		Use:   "save",
		Short: "Save the GitHub username and token to the OS keyring",
		Long: `Save the GitHub username and access token to the OS keyring. With
--git-store the credentials are also written to ~/.git-credentials and
git is configured to use the "store" credential helper, so git push no
longer prompts for a password.`,
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			cc.ProjectDir = *projectDir
			if err := cc.Init(); err != nil {
				return err
			}
			return cc.runSave()
		},
	}

	cobraCmd.Flags().StringVarP(&cc.User, "user", "u", "", "GitHub username")
	cobraCmd.Flags().StringVarP(&cc.Token, "token", "t", "", "GitHub access token")
	cobraCmd.Flags().BoolVar(&cc.GitStore, "git-store", false, "Also write to git's credential store")
	_ = cobraCmd.MarkFlagRequired("user")
	_ = cobraCmd.MarkFlagRequired("token")

	return cobraCmd
}

func (cc *command) runSave() error {
	if err := cc.store().Save(cc.User, cc.Token); err != nil {
		if errors.Is(err, creds.ErrUnavailable) {
			slog.Warn("OS keyring unavailable, credentials not persisted there")
		} else {
			return err
		}
	} else {
		fmt.Println("Credentials saved to the OS keyring.")
	}

	if !cc.GitStore {
		return nil
	}

	path, err := creds.CredentialsFile()
	if err != nil {
		return err
	}
	if err := creds.AppendGitStoreEntry(path, cc.User, cc.Token); err != nil {
		return err
	}
	if err := cc.Git.ConfigureCredentialHelper(); err != nil {
		return err
	}

	fmt.Println("Git credential store configured.")
	return nil
}

func newShowCmd(projectDir *string) *cobra.Command {
	cc := &command{}

	return &cobra.Command{
		Use:          "show",
		Short:        "Show the saved GitHub username and a masked token",
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			cc.ProjectDir = *projectDir
			if err := cc.Init(); err != nil {
				return err
			}
			return cc.runShow()
		},
	}
}

// runShow reports the credentials through the same read path the GitHub
// client uses, so a GITHUB_TOKEN from the environment shows up here too
func (cc *command) runShow() error {
	provider := cc.Provider
	if provider == nil {
		provider = creds.NewProvider(cc.Config.KeyringService)
	}

	user := provider.User()
	token := provider.Token()
	if user == "" && token == "" {
		fmt.Println("No credentials saved.")
		return nil
	}

	fmt.Printf("User:  %s\n", user)
	fmt.Printf("Token: %s\n", maskToken(token))
	return nil
}

func newClearCmd(projectDir *string) *cobra.Command {
	cc := &command{}

	return &cobra.Command{
		Use:          "clear",
		Short:        "Remove the saved GitHub credentials from the OS keyring",
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			cc.ProjectDir = *projectDir
			if err := cc.Init(); err != nil {
				return err
			}

			if err := cc.store().Clear(); err != nil {
				return err
			}
			fmt.Println("Credentials cleared.")
			return nil
		},
	}
}

// maskToken keeps the first four characters so the user can tell which
// token is stored without exposing it
func maskToken(token string) string {
	if token == "" {
		return "(none)"
	}
	if len(token) <= 4 {
		return strings.Repeat("*", len(token))
	}
	return token[:4] + strings.Repeat("*", len(token)-4)
}
