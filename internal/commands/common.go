package commands

import (
	"path/filepath"

	"github.com/alan/verpush/internal/manifest"
)

// ResolveManifest locates the project's version manifest. An explicit
// flag value wins, then the configured path, then a recursive discovery
// walk with an interactive picker for ambiguous results.
func (bc *BaseCommand) ResolveManifest(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	if bc.Config.Manifest != "" {
		return filepath.Join(bc.ProjectDir, bc.Config.Manifest), nil
	}

	candidates, err := manifest.Discover(bc.ProjectDir)
	if err != nil {
		return "", err
	}

	return manifest.Pick(candidates)
}
