package github

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/go-github/v57/github"
)

// ListOpenPRs fetches the open pull requests for the repository
func (c *Client) ListOpenPRs(ctx context.Context) ([]PullRequest, error) {
	opts := &github.PullRequestListOptions{
		State: "open",
		ListOptions: github.ListOptions{
			PerPage: 100,
		},
	}

	var allPRs []PullRequest

	for {
		slog.Debug("GitHub API: Listing pull requests", "owner", c.owner, "repo", c.repo, "page", opts.Page)
		prs, resp, err := c.client.PullRequests.List(ctx, c.owner, c.repo, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list pull requests: %w", err)
		}

		for _, pr := range prs {
			allPRs = append(allPRs, PullRequest{
				Number:    pr.GetNumber(),
				Title:     pr.GetTitle(),
				Author:    pr.GetUser().GetLogin(),
				State:     pr.GetState(),
				Draft:     pr.GetDraft(),
				Merged:    pr.MergedAt != nil,
				URL:       pr.GetHTMLURL(),
				CreatedAt: pr.GetCreatedAt().Time,
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return allPRs, nil
}

// ListReviews fetches the submitted reviews for a pull request
func (c *Client) ListReviews(ctx context.Context, prNumber int) ([]Review, error) {
	opts := &github.ListOptions{PerPage: 100}

	slog.Debug("GitHub API: Listing reviews", "owner", c.owner, "repo", c.repo, "pr", prNumber)
	reviews, _, err := c.client.PullRequests.ListReviews(ctx, c.owner, c.repo, prNumber, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews for PR #%d: %w", prNumber, err)
	}

	var result []Review
	for _, review := range reviews {
		result = append(result, Review{
			Author: review.GetUser().GetLogin(),
			State:  review.GetState(),
			Body:   review.GetBody(),
		})
	}

	return result, nil
}

// SubmitReview submits a review event (APPROVE, REQUEST_CHANGES or COMMENT)
// for a pull request, with an optional free-text body
func (c *Client) SubmitReview(ctx context.Context, prNumber int, event, body string) error {
	review := &github.PullRequestReviewRequest{
		Event: github.String(event),
	}
	if body != "" {
		review.Body = github.String(body)
	}

	slog.Debug("GitHub API: Submitting review", "owner", c.owner, "repo", c.repo, "pr", prNumber, "event", event)
	if _, _, err := c.client.PullRequests.CreateReview(ctx, c.owner, c.repo, prNumber, review); err != nil {
		return fmt.Errorf("failed to submit %s review for PR #%d: %w", event, prNumber, err)
	}

	return nil
}

// MergePR merges a pull request. No merge method is specified; the
// repository's default applies.
func (c *Client) MergePR(ctx context.Context, prNumber int) error {
	slog.Debug("GitHub API: Merging PR", "owner", c.owner, "repo", c.repo, "pr", prNumber)
	result, _, err := c.client.PullRequests.Merge(ctx, c.owner, c.repo, prNumber, "", nil)
	if err != nil {
		return fmt.Errorf("failed to merge PR #%d: %w", prNumber, err)
	}

	if !result.GetMerged() {
		return fmt.Errorf("PR #%d merge was not successful: %s", prNumber, result.GetMessage())
	}

	return nil
}
