package github

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/go-github/v57/github"
)

// ListIssues fetches all issues (open and closed) for the repository.
// GitHub represents pull requests as issues; those entries are filtered
// out so the result contains only true issues.
func (c *Client) ListIssues(ctx context.Context) ([]Issue, error) {
	opts := &github.IssueListByRepoOptions{
		State: "all",
		ListOptions: github.ListOptions{
			PerPage: 100,
		},
	}

	var allIssues []Issue

	for {
		slog.Debug("GitHub API: Listing issues", "owner", c.owner, "repo", c.repo, "page", opts.Page)
		issues, resp, err := c.client.Issues.ListByRepo(ctx, c.owner, c.repo, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list issues: %w", err)
		}

		for _, issue := range issues {
			if issue.IsPullRequest() {
				continue
			}

			allIssues = append(allIssues, Issue{
				Number:    issue.GetNumber(),
				Title:     issue.GetTitle(),
				Body:      issue.GetBody(),
				Author:    issue.GetUser().GetLogin(),
				State:     issue.GetState(),
				URL:       issue.GetHTMLURL(),
				CreatedAt: issue.GetCreatedAt().Time,
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return allIssues, nil
}

// GetIssue fetches a single issue by number
func (c *Client) GetIssue(ctx context.Context, number int) (*Issue, error) {
	slog.Debug("GitHub API: Getting issue", "owner", c.owner, "repo", c.repo, "issue", number)
	issue, _, err := c.client.Issues.Get(ctx, c.owner, c.repo, number)
	if err != nil {
		return nil, fmt.Errorf("failed to get issue #%d: %w", number, err)
	}

	return &Issue{
		Number:    issue.GetNumber(),
		Title:     issue.GetTitle(),
		Body:      issue.GetBody(),
		Author:    issue.GetUser().GetLogin(),
		State:     issue.GetState(),
		URL:       issue.GetHTMLURL(),
		CreatedAt: issue.GetCreatedAt().Time,
	}, nil
}

// EditIssue updates an issue's title and body
func (c *Client) EditIssue(ctx context.Context, number int, title, body string) error {
	request := &github.IssueRequest{
		Title: github.String(title),
		Body:  github.String(body),
	}

	slog.Debug("GitHub API: Editing issue", "owner", c.owner, "repo", c.repo, "issue", number)
	if _, _, err := c.client.Issues.Edit(ctx, c.owner, c.repo, number, request); err != nil {
		return fmt.Errorf("failed to edit issue #%d: %w", number, err)
	}

	return nil
}

// SetIssueState sets an issue to "open" or "closed". Callers are expected
// to check the current state first; setting the state an issue already has
// should not reach the API.
func (c *Client) SetIssueState(ctx context.Context, number int, state string) error {
	request := &github.IssueRequest{
		State: github.String(state),
	}

	slog.Debug("GitHub API: Setting issue state", "owner", c.owner, "repo", c.repo, "issue", number, "state", state)
	if _, _, err := c.client.Issues.Edit(ctx, c.owner, c.repo, number, request); err != nil {
		return fmt.Errorf("failed to mark issue #%d %s: %w", number, state, err)
	}

	return nil
}

// ReactToIssue posts a reaction (e.g. "+1", "heart", "laugh") to an issue
func (c *Client) ReactToIssue(ctx context.Context, number int, content string) error {
	slog.Debug("GitHub API: Reacting to issue", "owner", c.owner, "repo", c.repo, "issue", number, "content", content)
	if _, _, err := c.client.Reactions.CreateIssueReaction(ctx, c.owner, c.repo, number, content); err != nil {
		return fmt.Errorf("failed to react to issue #%d: %w", number, err)
	}

	return nil
}

// ReactToComment posts a reaction to an issue comment
func (c *Client) ReactToComment(ctx context.Context, commentID int64, content string) error {
	slog.Debug("GitHub API: Reacting to comment", "owner", c.owner, "repo", c.repo, "comment_id", commentID, "content", content)
	if _, _, err := c.client.Reactions.CreateIssueCommentReaction(ctx, c.owner, c.repo, commentID, content); err != nil {
		return fmt.Errorf("failed to react to comment %d: %w", commentID, err)
	}

	return nil
}
