// Package commands provides the shared initialization and helpers used
// by every verpush subcommand.
package commands

import (
	"context"
	"fmt"

	"github.com/alan/verpush/internal/config"
	"github.com/alan/verpush/internal/creds"
	"github.com/alan/verpush/internal/gitcmd"
	"github.com/alan/verpush/internal/github"
)

// TokenProvider resolves the GitHub token through a single read path.
// Implemented by *creds.Provider; tests inject fakes.
type TokenProvider interface {
	Token() string
}

// BaseCommand provides common fields and initialization for all commands
type BaseCommand struct {
	ProjectDir string
	Config     *config.Config
	Git        *gitcmd.Runner
	GitHub     *github.Client

	// Injection points for tests; nil selects the real implementations
	LoadConfig  func(string) (*config.Config, error)
	NewProvider func(service string) TokenProvider
	NewClient   func(ctx context.Context, token, owner, repo string) *github.Client
}

// Init loads the project configuration and binds a git runner to the
// project directory
func (bc *BaseCommand) Init() error {
	if bc.ProjectDir == "" {
		bc.ProjectDir = "."
	}

	loadConfig := bc.LoadConfig
	if loadConfig == nil {
		loadConfig = config.Load
	}

	cfg, err := loadConfig(bc.ProjectDir)
	if err != nil {
		return err
	}
	bc.Config = cfg

	if bc.Git == nil {
		bc.Git = gitcmd.NewRunner(bc.ProjectDir)
	}

	if !bc.Git.IsRepository() {
		return fmt.Errorf("%s is not a git repository", bc.ProjectDir)
	}

	return nil
}

// InitGitHub derives owner/repo from the origin remote, resolves a token
// and constructs the GitHub client. Must be called after Init.
func (bc *BaseCommand) InitGitHub(ctx context.Context) error {
	remote, err := bc.Git.RemoteURL()
	if err != nil {
		return fmt.Errorf("failed to read origin remote: %w", err)
	}

	owner, repo, err := github.ParseOwnerRepo(remote)
	if err != nil {
		return err
	}

	newProvider := bc.NewProvider
	if newProvider == nil {
		newProvider = func(service string) TokenProvider {
			return creds.NewProvider(service)
		}
	}
	token := newProvider(bc.Config.KeyringService).Token()

	newClient := bc.NewClient
	if newClient == nil {
		newClient = github.NewClient
	}
	bc.GitHub = newClient(ctx, token, owner, repo)

	return nil
}
