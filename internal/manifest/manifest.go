// Package manifest locates and rewrites the project's package.json
// version manifest.
package manifest

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileName is the manifest file the discovery walk looks for
const FileName = "package.json"

// skipDirs are directory names the discovery walk never descends into
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
}

// Discover walks root recursively and returns every package.json found
func Discover(root string) ([]string, error) {
	var candidates []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if skipDirs[entry.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if entry.Name() == FileName {
			candidates = append(candidates, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	return candidates, nil
}

// ReadVersion returns the version field of the manifest at path
func ReadVersion(path string) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Manifest path comes from discovery or a flag
	if err != nil {
		return "", fmt.Errorf("failed to read manifest: %w", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", path, err)
	}

	version, ok := fields["version"].(string)
	if !ok {
		return "", fmt.Errorf("%s has no version string field", path)
	}

	return version, nil
}

// WriteVersion rewrites the manifest in place with the version field set
// to the given value. All other keys are preserved; output uses two-space
// indentation and a trailing newline.
func WriteVersion(path, version string) error {
	data, err := os.ReadFile(path) //nolint:gosec // Manifest path comes from discovery or a flag
	if err != nil {
		return fmt.Errorf("failed to read manifest: %w", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	fields["version"] = version

	out, err := json.MarshalIndent(fields, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	out = append(out, '\n')

	if err := os.WriteFile(path, out, 0600); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	return nil
}
