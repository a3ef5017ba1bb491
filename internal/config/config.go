// Package config loads and saves the optional per-project verpush
// configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the per-project configuration file looked up in the
// project directory
const FileName = ".verpush.yaml"

// Config holds per-project defaults. Every value can be overridden by a
// command-line flag; the zero value is a valid configuration.
type Config struct {
	Branch         string `yaml:"branch,omitempty"`          // dashboard commit branch, default "main"
	Manifest       string `yaml:"manifest,omitempty"`        // manifest path relative to the project dir
	PushTags       *bool  `yaml:"push_tags,omitempty"`       // push tags after publish, default true
	KeyringService string `yaml:"keyring_service,omitempty"` // OS keyring service entry name
}

// DashboardBranch returns the configured branch or "main"
func (c *Config) DashboardBranch() string {
	if c.Branch == "" {
		return "main"
	}
	return c.Branch
}

// PushTagsEnabled returns the configured push-tags default, true when unset
func (c *Config) PushTagsEnabled() bool {
	if c.PushTags == nil {
		return true
	}
	return *c.PushTags
}

// Load reads the configuration from the project directory. A missing
// file is not an error; it yields the zero configuration.
func Load(projectDir string) (*Config, error) {
	path := filepath.Join(projectDir, FileName)

	data, err := os.ReadFile(path) //nolint:gosec // Project dir comes from a command-line flag
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// Save writes the configuration to the project directory
func Save(projectDir string, config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(projectDir, FileName), data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
