package github

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/go-github/v57/github"
)

// CommentOnIssue posts a comment on an issue or pull request
// (the issue comments endpoint serves both)
func (c *Client) CommentOnIssue(ctx context.Context, number int, body string) error {
	comment := &github.IssueComment{
		Body: github.String(body),
	}

	slog.Debug("GitHub API: Creating comment", "owner", c.owner, "repo", c.repo, "issue", number)
	if _, _, err := c.client.Issues.CreateComment(ctx, c.owner, c.repo, number, comment); err != nil {
		return fmt.Errorf("failed to comment on #%d: %w", number, err)
	}

	return nil
}

// LatestIssueComment returns the most recent comment on an issue,
// or nil when the issue has no comments
func (c *Client) LatestIssueComment(ctx context.Context, number int) (*Comment, error) {
	opts := &github.IssueListCommentsOptions{
		ListOptions: github.ListOptions{
			PerPage: 100,
		},
	}

	var last *github.IssueComment
	for {
		slog.Debug("GitHub API: Listing issue comments", "owner", c.owner, "repo", c.repo, "issue", number, "page", opts.Page)
		comments, resp, err := c.client.Issues.ListComments(ctx, c.owner, c.repo, number, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list comments for #%d: %w", number, err)
		}

		if len(comments) > 0 {
			last = comments[len(comments)-1]
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	if last == nil {
		return nil, nil
	}

	return &Comment{
		ID:        last.GetID(),
		Author:    last.GetUser().GetLogin(),
		Body:      last.GetBody(),
		CreatedAt: last.GetCreatedAt().Time,
	}, nil
}
