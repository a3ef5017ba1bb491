package github

import "time"

// PullRequest represents a pull request as shown on the dashboard
type PullRequest struct {
	Number    int
	Title     string
	Author    string
	State     string
	Draft     bool
	Merged    bool
	URL       string
	CreatedAt time.Time
}

// Issue represents an issue as shown on the dashboard.
// Pull requests are never represented as Issues; the list
// operations filter them out.
type Issue struct {
	Number    int
	Title     string
	Body      string
	Author    string
	State     string
	URL       string
	CreatedAt time.Time
}

// Commit represents a commit on the tracked branch
type Commit struct {
	SHA     string // short hash
	Author  string
	Message string // first line of the commit message
	Date    time.Time
}

// Review represents a submitted pull request review
type Review struct {
	Author string
	State  string
	Body   string
}

// Comment represents an issue or pull request comment
type Comment struct {
	ID        int64
	Author    string
	Body      string
	CreatedAt time.Time
}

// Review events accepted by SubmitReview
const (
	ReviewApprove        = "APPROVE"
	ReviewRequestChanges = "REQUEST_CHANGES"
	ReviewComment        = "COMMENT"
)

// Issue states accepted by SetIssueState
const (
	IssueStateOpen   = "open"
	IssueStateClosed = "closed"
)
