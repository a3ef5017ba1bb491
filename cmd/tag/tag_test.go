package tag

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alan/verpush/internal/gitcmd"
)

// newStatefulTagRunner simulates git's tag bookkeeping so the
// create/list/delete lifecycle can be exercised end to end
func newStatefulTagRunner(tags ...string) *gitcmd.Runner {
	existing := append([]string{}, tags...)
	return &gitcmd.Runner{
		Dir: ".",
		Exec: func(_ string, args ...string) (string, error) {
			joined := strings.Join(args, " ")
			switch {
			case joined == "tag --list":
				return strings.Join(existing, "\n"), nil
			case len(args) == 2 && args[0] == "tag":
				existing = append(existing, args[1])
				return "", nil
			case len(args) == 3 && args[0] == "tag" && args[1] == "-d":
				for i, tag := range existing {
					if tag == args[2] {
						existing = append(existing[:i], existing[i+1:]...)
						return "", nil
					}
				}
				return "", fmt.Errorf("git tag -d %s: tag not found", args[2])
			}
			return "", fmt.Errorf("unexpected git call: %s", joined)
		},
	}
}

func TestTagLifecycle(t *testing.T) {
	git := newStatefulTagRunner("v1.0.0")

	require.NoError(t, git.CreateTag("v1.1.0"))
	tags, err := git.Tags()
	require.NoError(t, err)
	assert.Contains(t, tags, "v1.1.0")

	require.NoError(t, git.DeleteTag("v1.1.0"))
	tags, err = git.Tags()
	require.NoError(t, err)
	assert.NotContains(t, tags, "v1.1.0")
	assert.Contains(t, tags, "v1.0.0")
}

func TestDeleteUnknownTagSurfacesGitError(t *testing.T) {
	git := newStatefulTagRunner()

	err := git.DeleteTag("v9.9.9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tag not found")
}

func TestNewTagCmd(t *testing.T) {
	projectDir := "."
	cobraCmd := NewTagCmd(&projectDir)

	assert.Equal(t, "tag", cobraCmd.Use)
	subcommands := make(map[string]bool)
	for _, sub := range cobraCmd.Commands() {
		subcommands[sub.Name()] = true
	}
	for _, name := range []string{"list", "create", "delete", "push"} {
		assert.True(t, subcommands[name], "missing subcommand %s", name)
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	projectDir := "."
	cobraCmd := NewTagCmd(&projectDir)
	cobraCmd.SetArgs([]string{"delete", "v1.0.0"})
	cobraCmd.SilenceErrors = true

	err := cobraCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")
}
