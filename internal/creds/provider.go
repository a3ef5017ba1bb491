package creds

import (
	"errors"
	"log/slog"
	"os"
)

// TokenEnvVar is checked before the keyring when resolving a token
const TokenEnvVar = "GITHUB_TOKEN"

// tokenSource reads the credential pair from one backing store.
// Implemented by *Store; tests inject fakes.
type tokenSource interface {
	Load() (user, token string, err error)
}

// Provider resolves the GitHub credentials through a single read path
// with fixed precedence: environment, then keyring, then anonymous.
type Provider struct {
	Getenv func(string) string
	Store  tokenSource
}

// NewProvider creates a Provider over the given keyring service name
func NewProvider(service string) *Provider {
	return &Provider{
		Getenv: os.Getenv,
		Store:  NewStore(service),
	}
}

// Token returns the access token, or an empty string for anonymous access
func (p *Provider) Token() string {
	if token := p.Getenv(TokenEnvVar); token != "" {
		return token
	}

	_, token, err := p.Store.Load()
	if err != nil {
		if errors.Is(err, ErrUnavailable) {
			slog.Warn("OS keyring unavailable, proceeding without stored token")
		} else {
			slog.Warn("Failed to read token from keyring", "error", err)
		}
		return ""
	}

	return token
}

// User returns the stored username, or an empty string when none is known
func (p *Provider) User() string {
	user, _, err := p.Store.Load()
	if err != nil {
		return ""
	}
	return user
}
