package github

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient starts an httptest server with the given mux and returns a
// Client pointed at it. go-github prefixes enterprise endpoints with /api/v3.
func newTestClient(t *testing.T, mux *http.ServeMux) *Client {
	t.Helper()

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client, err := NewClientWithBaseURL(server.URL, "testowner", "testrepo")
	require.NoError(t, err)

	return client
}

func TestNewClient(t *testing.T) {
	client := NewClient(context.Background(), "test-token", "octocat", "hello-world")

	require.NotNil(t, client)
	require.NotNil(t, client.client)
	assert.Equal(t, "octocat", client.Owner())
	assert.Equal(t, "hello-world", client.Repo())
}

func TestNewClient_AnonymousWithoutToken(t *testing.T) {
	client := NewClient(context.Background(), "", "octocat", "hello-world")

	require.NotNil(t, client)
	require.NotNil(t, client.client)
}

func TestListIssues_FiltersPullRequests(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/repos/testowner/testrepo/issues", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "all", r.URL.Query().Get("state"))
		w.Header().Set("Content-Type", "application/json")
		// Issue #2 carries a pull_request key; GitHub represents PRs as issues
		_, _ = w.Write([]byte(`[
			{"number": 1, "title": "Real issue", "state": "open", "user": {"login": "alice"}},
			{"number": 2, "title": "Actually a PR", "state": "open", "user": {"login": "bob"},
			 "pull_request": {"url": "https://api.github.com/repos/testowner/testrepo/pulls/2"}},
			{"number": 3, "title": "Closed issue", "state": "closed", "user": {"login": "carol"}}
		]`))
	})

	client := newTestClient(t, mux)

	issues, err := client.ListIssues(context.Background())
	require.NoError(t, err)

	require.Len(t, issues, 2)
	assert.Equal(t, 1, issues[0].Number)
	assert.Equal(t, "alice", issues[0].Author)
	assert.Equal(t, 3, issues[1].Number)
	assert.Equal(t, "closed", issues[1].State)
}

func TestListIssues_APIError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/repos/testowner/testrepo/issues", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"message": "API rate limit exceeded"}`, http.StatusForbidden)
	})

	client := newTestClient(t, mux)

	_, err := client.ListIssues(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list issues")
}

func TestListCommits(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/repos/testowner/testrepo/commits", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "main", r.URL.Query().Get("sha"))
		assert.Equal(t, "20", r.URL.Query().Get("per_page"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"sha": "0123456789abcdef", "commit": {"message": "Fix bug\n\nLong body", "author": {"name": "Alice", "date": "2024-05-01T10:00:00Z"}}},
			{"sha": "fedcba9876543210", "commit": {"message": "Initial commit", "author": {"name": "Bob", "date": "2024-04-30T09:00:00Z"}}}
		]`))
	})

	client := newTestClient(t, mux)

	commits, err := client.ListCommits(context.Background(), "main")
	require.NoError(t, err)

	require.Len(t, commits, 2)
	assert.Equal(t, "01234567", commits[0].SHA)
	assert.Equal(t, "Fix bug", commits[0].Message)
	assert.Equal(t, "Alice", commits[0].Author)
}

func TestListOpenPRs(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/repos/testowner/testrepo/pulls", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "open", r.URL.Query().Get("state"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"number": 7, "title": "Add feature", "state": "open", "draft": true,
			 "user": {"login": "alice"}, "created_at": "2024-05-01T10:00:00Z"}
		]`))
	})

	client := newTestClient(t, mux)

	prs, err := client.ListOpenPRs(context.Background())
	require.NoError(t, err)

	require.Len(t, prs, 1)
	assert.Equal(t, 7, prs[0].Number)
	assert.Equal(t, "alice", prs[0].Author)
	assert.True(t, prs[0].Draft)
	assert.False(t, prs[0].Merged)
}

func TestSubmitReview(t *testing.T) {
	var received map[string]any

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/repos/testowner/testrepo/pulls/7/reviews", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 1, "state": "APPROVED"}`))
	})

	client := newTestClient(t, mux)

	err := client.SubmitReview(context.Background(), 7, ReviewApprove, "looks good")
	require.NoError(t, err)

	assert.Equal(t, "APPROVE", received["event"])
	assert.Equal(t, "looks good", received["body"])
}

func TestSubmitReview_OmitsEmptyBody(t *testing.T) {
	var received map[string]any

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/repos/testowner/testrepo/pulls/7/reviews", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 1}`))
	})

	client := newTestClient(t, mux)

	require.NoError(t, client.SubmitReview(context.Background(), 7, ReviewApprove, ""))

	_, hasBody := received["body"]
	assert.False(t, hasBody)
}

func TestMergePR_NotMerged(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/repos/testowner/testrepo/pulls/7/merge", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"merged": false, "message": "Pull Request is not mergeable"}`))
	})

	client := newTestClient(t, mux)

	err := client.MergePR(context.Background(), 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not mergeable")
}

func TestLatestIssueComment(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/repos/testowner/testrepo/issues/3/comments", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 10, "body": "first", "user": {"login": "alice"}},
			{"id": 11, "body": "second", "user": {"login": "bob"}}
		]`))
	})

	client := newTestClient(t, mux)

	comment, err := client.LatestIssueComment(context.Background(), 3)
	require.NoError(t, err)
	require.NotNil(t, comment)
	assert.Equal(t, int64(11), comment.ID)
	assert.Equal(t, "bob", comment.Author)
}

func TestLatestIssueComment_NoComments(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/repos/testowner/testrepo/issues/3/comments", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})

	client := newTestClient(t, mux)

	comment, err := client.LatestIssueComment(context.Background(), 3)
	require.NoError(t, err)
	assert.Nil(t, comment)
}
