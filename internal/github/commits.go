package github

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/go-github/v57/github"
)

// commitListLimit caps the dashboard's commit panel to the most recent commits
const commitListLimit = 20

// ListCommits fetches the most recent commits on a branch, newest first
// as returned by the API (no re-sorting), capped at commitListLimit
func (c *Client) ListCommits(ctx context.Context, branch string) ([]Commit, error) {
	opts := &github.CommitsListOptions{
		SHA: branch,
		ListOptions: github.ListOptions{
			PerPage: commitListLimit,
		},
	}

	slog.Debug("GitHub API: Listing commits", "owner", c.owner, "repo", c.repo, "branch", branch)
	commits, _, err := c.client.Repositories.ListCommits(ctx, c.owner, c.repo, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list commits on %s: %w", branch, err)
	}

	var result []Commit
	for _, commit := range commits {
		sha := commit.GetSHA()
		if len(sha) > 8 {
			sha = sha[:8]
		}

		result = append(result, Commit{
			SHA:     sha,
			Author:  commit.GetCommit().GetAuthor().GetName(),
			Message: strings.Split(commit.GetCommit().GetMessage(), "\n")[0], // First line only
			Date:    commit.GetCommit().GetAuthor().GetDate().Time,
		})
	}

	return result, nil
}
