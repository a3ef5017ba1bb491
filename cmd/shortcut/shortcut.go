// Package shortcut writes a freedesktop application launcher for the
// dashboard so it can be started from a desktop menu.
package shortcut

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
)

const desktopFileName = "verpush.desktop"

const desktopEntryTemplate = `[Desktop Entry]
Type=Application
Name=Verpush Dashboard
Exec=%s dashboard
Icon=utilities-terminal
Terminal=true
Categories=Development;
`

type command struct {
	// Seams for tests, defaulted in run
	GOOS       string
	Executable func() (string, error)
	HomeDir    func() (string, error)
}

// NewShortcutCmd creates the shortcut command
func NewShortcutCmd() *cobra.Command {
	sc := &command{
		GOOS:       runtime.GOOS,
		Executable: os.Executable,
		HomeDir:    os.UserHomeDir,
	}

	return &cobra.Command{
		Use:   "shortcut",
		Short: "Create a desktop launcher for the dashboard",
		Long: `Write a freedesktop .desktop entry to ~/.local/share/applications
that launches the dashboard in a terminal. Linux only.`,
		SilenceUsage: true,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			path, err := sc.run()
			if err != nil {
				return err
			}
			fmt.Printf("Shortcut created at %s\n", path)
			return nil
		},
	}
}

func (sc *command) run() (string, error) {
	if sc.GOOS != "linux" {
		return "", fmt.Errorf("desktop shortcuts are only supported on Linux, not %s", sc.GOOS)
	}

	executable, err := sc.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to resolve executable path: %w", err)
	}

	home, err := sc.HomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}

	dir := filepath.Join(home, ".local", "share", "applications")
	if err := os.MkdirAll(dir, 0755); err != nil { //nolint:gosec // Standard applications dir permissions
		return "", fmt.Errorf("failed to create applications directory: %w", err)
	}

	path := filepath.Join(dir, desktopFileName)
	entry := fmt.Sprintf(desktopEntryTemplate, executable)
	if err := os.WriteFile(path, []byte(entry), 0755); err != nil { //nolint:gosec // Desktop entries are conventionally executable
		return "", fmt.Errorf("failed to write desktop entry: %w", err)
	}

	return path, nil
}
