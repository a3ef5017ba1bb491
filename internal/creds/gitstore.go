package creds

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CredentialsFile returns the path of git's plain-text credential store
func CredentialsFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".git-credentials"), nil
}

// AppendGitStoreEntry appends an encoded credential line for the user to
// git's credential store file, unless a line for that user already appears.
// The existence check is a substring match, not a parse; duplicate or stale
// entries for rotated tokens are an accepted limitation.
func AppendGitStoreEntry(path, user, token string) error {
	entry := fmt.Sprintf("https://%s:%s@github.com", user, token)
	marker := fmt.Sprintf("https://%s:", user)

	if data, err := os.ReadFile(path); err == nil { //nolint:gosec // Well-known git credentials path
		for _, line := range strings.Split(string(data), "\n") {
			if strings.Contains(line, marker) && strings.Contains(line, "@github.com") {
				return nil
			}
		}
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600) //nolint:gosec // Well-known git credentials path
	if err != nil {
		return fmt.Errorf("failed to open credential store: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(entry + "\n"); err != nil {
		return fmt.Errorf("failed to append to credential store: %w", err)
	}

	return nil
}
