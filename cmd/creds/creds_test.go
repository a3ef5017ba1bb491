package creds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCredsCmd(t *testing.T) {
	projectDir := "."
	cobraCmd := NewCredsCmd(&projectDir)

	assert.Equal(t, "creds", cobraCmd.Use)
	subcommands := make(map[string]bool)
	for _, sub := range cobraCmd.Commands() {
		subcommands[sub.Name()] = true
	}
	for _, name := range []string{"save", "show", "clear"} {
		assert.True(t, subcommands[name], "missing subcommand %s", name)
	}
}

type fakeProvider struct {
	user       string
	token      string
	userCalls  int
	tokenCalls int
}

func (f *fakeProvider) User() string {
	f.userCalls++
	return f.user
}

func (f *fakeProvider) Token() string {
	f.tokenCalls++
	return f.token
}

func TestRunShow_ReadsThroughProvider(t *testing.T) {
	provider := &fakeProvider{user: "alan", token: "ghp_secret"}
	cc := &command{Provider: provider}

	require.NoError(t, cc.runShow())
	assert.Equal(t, 1, provider.userCalls)
	assert.Equal(t, 1, provider.tokenCalls)
}

func TestRunShow_NoCredentials(t *testing.T) {
	cc := &command{Provider: &fakeProvider{}}
	require.NoError(t, cc.runShow())
}

func TestMaskToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{name: "empty", token: "", want: "(none)"},
		{name: "short", token: "abc", want: "***"},
		{name: "typical", token: "ghp_abcdef123456", want: "ghp_************"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, maskToken(tt.token))
		})
	}
}
