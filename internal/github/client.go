// Package github wraps the GitHub REST API operations used by verpush:
// listing pull requests, issues and commits for the dashboard, and the
// per-PR and per-issue write actions.
package github

import (
	"context"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// Client wraps the GitHub API client, bound to a single owner/repo pair
type Client struct {
	client *github.Client
	owner  string
	repo   string
}

// NewClient creates a new GitHub client for the given repository.
// An empty token yields an anonymous (rate-limited) client.
func NewClient(ctx context.Context, token, owner, repo string) *Client {
	client := github.NewClient(nil)
	if token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		client = github.NewClient(oauth2.NewClient(ctx, ts))
	}

	return &Client{
		client: client,
		owner:  owner,
		repo:   repo,
	}
}

// NewClientWithBaseURL creates a client against a custom API endpoint.
// Tests use this to point the client at an httptest server.
func NewClientWithBaseURL(baseURL, owner, repo string) (*Client, error) {
	client, err := github.NewClient(nil).WithEnterpriseURLs(baseURL, baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{client: client, owner: owner, repo: repo}, nil
}

// Owner returns the repository owner this client is bound to
func (c *Client) Owner() string { return c.owner }

// Repo returns the repository name this client is bound to
func (c *Client) Repo() string { return c.repo }
