// Package config implements the config command for inspecting and
// updating the per-project .verpush.yaml file.
package config

import (
	"fmt"

	"github.com/spf13/cobra"

	cfg "github.com/alan/verpush/internal/config"
	"github.com/alan/verpush/internal/creds"
)

// NewConfigCmd creates and returns the config command
func NewConfigCmd(projectDir *string, loadConfig func(string) (*cfg.Config, error), saveConfig func(string, *cfg.Config) error) *cobra.Command {
	var (
		branch         string
		manifest       string
		pushTags       bool
		keyringService string
	)

	cobraCmd := &cobra.Command{
		Use:   "config",
		Short: "Show or update the project's .verpush.yaml settings",
		Long: `Show the project's configuration, or update it by passing flags.
Only the flags given are changed; everything else keeps its value. With
no flags the current (defaulted) configuration is printed.

Examples:
  verpush config
  verpush config --branch develop
  verpush config --push-tags=false --keyring-service my-service`,
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			config, err := loadConfig(*projectDir)
			if err != nil {
				return err
			}

			changed := false
			if cobraCmd.Flags().Changed("branch") {
				config.Branch = branch
				changed = true
			}
			if cobraCmd.Flags().Changed("manifest") {
				config.Manifest = manifest
				changed = true
			}
			if cobraCmd.Flags().Changed("push-tags") {
				config.PushTags = &pushTags
				changed = true
			}
			if cobraCmd.Flags().Changed("keyring-service") {
				config.KeyringService = keyringService
				changed = true
			}

			if !changed {
				printConfig(config)
				return nil
			}

			if err := saveConfig(*projectDir, config); err != nil {
				return err
			}
			fmt.Println("Configuration saved.")
			return nil
		},
	}

	cobraCmd.Flags().StringVar(&branch, "branch", "", "Branch whose commits the dashboard shows")
	cobraCmd.Flags().StringVar(&manifest, "manifest", "", "Manifest path relative to the project directory")
	cobraCmd.Flags().BoolVar(&pushTags, "push-tags", true, "Push tags after publishing")
	cobraCmd.Flags().StringVar(&keyringService, "keyring-service", "", "OS keyring service entry name")

	return cobraCmd
}

func printConfig(config *cfg.Config) {
	manifest := config.Manifest
	if manifest == "" {
		manifest = "(discovered)"
	}
	service := config.KeyringService
	if service == "" {
		service = creds.DefaultService
	}

	fmt.Printf("Branch:          %s\n", config.DashboardBranch())
	fmt.Printf("Manifest:        %s\n", manifest)
	fmt.Printf("Push tags:       %t\n", config.PushTagsEnabled())
	fmt.Printf("Keyring service: %s\n", service)
}
