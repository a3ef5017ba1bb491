package pr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPRCmd(t *testing.T) {
	projectDir := "."
	cobraCmd := NewPRCmd(&projectDir)

	assert.Equal(t, "pr", cobraCmd.Use)
	subcommands := make(map[string]bool)
	for _, sub := range cobraCmd.Commands() {
		subcommands[sub.Name()] = true
	}
	for _, name := range []string{"approve", "request-changes", "comment", "merge", "reviews"} {
		assert.True(t, subcommands[name], "missing subcommand %s", name)
	}
}

func TestReviewSubcommandsAcceptBodyFlag(t *testing.T) {
	projectDir := "."
	cobraCmd := NewPRCmd(&projectDir)

	for _, sub := range cobraCmd.Commands() {
		switch sub.Name() {
		case "approve", "request-changes", "comment":
			assert.NotNil(t, sub.Flags().Lookup("body"), "%s should accept --body", sub.Name())
		}
	}
}
