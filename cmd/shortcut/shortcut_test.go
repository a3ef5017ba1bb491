package shortcut

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_WritesDesktopEntry(t *testing.T) {
	home := t.TempDir()
	sc := &command{
		GOOS:       "linux",
		Executable: func() (string, error) { return "/usr/local/bin/verpush", nil },
		HomeDir:    func() (string, error) { return home, nil },
	}

	path, err := sc.run()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".local", "share", "applications", "verpush.desktop"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[Desktop Entry]")
	assert.Contains(t, string(data), "Exec=/usr/local/bin/verpush dashboard")
}

func TestRun_RejectsNonLinux(t *testing.T) {
	sc := &command{GOOS: "darwin"}
	_, err := sc.run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only supported on Linux")
}

func TestNewShortcutCmd(t *testing.T) {
	cobraCmd := NewShortcutCmd()
	assert.Equal(t, "shortcut", cobraCmd.Use)
	assert.NotNil(t, cobraCmd.RunE)
}
