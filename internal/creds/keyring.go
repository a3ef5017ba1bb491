// Package creds stores the GitHub username and access token in the OS
// keyring and exposes a single read path with a fixed precedence order.
package creds

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// DefaultService is the keyring service entry used when none is configured
const DefaultService = "verpush-github"

const (
	userKey  = "github_user"
	tokenKey = "github_token"
)

// ErrUnavailable indicates the OS secret store cannot be used on this host.
// Callers degrade to a no-op and surface a warning instead of failing.
var ErrUnavailable = errors.New("OS keyring is unavailable")

// Store reads and writes the credential pair under one keyring service name
type Store struct {
	Service string
}

// NewStore creates a keyring-backed store, falling back to DefaultService
// when service is empty
func NewStore(service string) *Store {
	if service == "" {
		service = DefaultService
	}
	return &Store{Service: service}
}

func wrapKeyringErr(op string, err error) error {
	if errors.Is(err, keyring.ErrUnsupportedPlatform) {
		return ErrUnavailable
	}
	return fmt.Errorf("keyring %s failed: %w", op, err)
}

// Save writes the username and token. Empty values are skipped rather
// than overwriting an existing secret with nothing.
func (s *Store) Save(user, token string) error {
	if user != "" {
		if err := keyring.Set(s.Service, userKey, user); err != nil {
			return wrapKeyringErr("set", err)
		}
	}
	if token != "" {
		if err := keyring.Set(s.Service, tokenKey, token); err != nil {
			return wrapKeyringErr("set", err)
		}
	}
	return nil
}

// Load returns the stored username and token. A missing entry yields an
// empty string, not an error.
func (s *Store) Load() (string, string, error) {
	user, err := keyring.Get(s.Service, userKey)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return "", "", wrapKeyringErr("get", err)
	}

	token, err := keyring.Get(s.Service, tokenKey)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return "", "", wrapKeyringErr("get", err)
	}

	return user, token, nil
}

// Clear deletes both secrets. Entries that do not exist are ignored.
func (s *Store) Clear() error {
	if err := keyring.Delete(s.Service, userKey); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return wrapKeyringErr("delete", err)
	}
	if err := keyring.Delete(s.Service, tokenKey); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return wrapKeyringErr("delete", err)
	}
	return nil
}
