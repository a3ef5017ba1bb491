package issue

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alan/verpush/internal/github"
)

func jsonDecode(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func newTestCommand(t *testing.T, handler http.Handler) *command {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := github.NewClientWithBaseURL(server.URL, "alan", "demo")
	require.NoError(t, err)

	ic := &command{Number: 7}
	ic.GitHub = client
	return ic
}

func TestNewIssueCmd(t *testing.T) {
	projectDir := "."
	cobraCmd := NewIssueCmd(&projectDir)

	assert.Equal(t, "issue", cobraCmd.Use)
	subcommands := make(map[string]bool)
	for _, sub := range cobraCmd.Commands() {
		subcommands[sub.Name()] = true
	}
	for _, name := range []string{"comment", "edit", "close", "reopen", "react"} {
		assert.True(t, subcommands[name], "missing subcommand %s", name)
	}
}

func TestRunSetState_ClosesOpenIssue(t *testing.T) {
	patches := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/repos/alan/demo/issues/7", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Write([]byte(`{"number": 7, "state": "open", "title": "bug"}`))
		case http.MethodPatch:
			patches++
			w.Write([]byte(`{"number": 7, "state": "closed"}`))
		}
	})

	ic := newTestCommand(t, mux)
	require.NoError(t, ic.runSetState(context.Background(), github.IssueStateClosed))
	assert.Equal(t, 1, patches)
}

func TestRunSetState_AlreadyClosedIsNoop(t *testing.T) {
	patches := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/repos/alan/demo/issues/7", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Write([]byte(`{"number": 7, "state": "closed", "title": "bug"}`))
		case http.MethodPatch:
			patches++
			w.Write([]byte(`{"number": 7, "state": "closed"}`))
		}
	})

	ic := newTestCommand(t, mux)
	require.NoError(t, ic.runSetState(context.Background(), github.IssueStateClosed))
	assert.Zero(t, patches, "a no-op transition must not patch the issue")
}

func TestRunEdit_KeepsFieldsNotPassed(t *testing.T) {
	var patched map[string]any
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/repos/alan/demo/issues/7", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Write([]byte(`{"number": 7, "state": "open", "title": "old title", "body": "old body"}`))
		case http.MethodPatch:
			require.NoError(t, jsonDecode(r, &patched))
			w.Write([]byte(`{"number": 7}`))
		}
	})

	ic := newTestCommand(t, mux)
	ic.Title = "new title"
	require.NoError(t, ic.runEdit(context.Background()))

	assert.Equal(t, "new title", patched["title"])
	assert.Equal(t, "old body", patched["body"])
}

func TestRunEdit_NothingToEdit(t *testing.T) {
	ic := newTestCommand(t, http.NewServeMux())
	err := ic.runEdit(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to edit")
}

func TestRunReact_Issue(t *testing.T) {
	reacted := false
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/repos/alan/demo/issues/7/reactions", func(w http.ResponseWriter, r *http.Request) {
		reacted = true
		var payload map[string]any
		require.NoError(t, jsonDecode(r, &payload))
		assert.Equal(t, "heart", payload["content"])
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 1, "content": "heart"}`))
	})

	ic := newTestCommand(t, mux)
	ic.Emoji = "heart"
	require.NoError(t, ic.runReact(context.Background()))
	assert.True(t, reacted)
}

func TestRunReact_LastComment(t *testing.T) {
	reacted := false
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/repos/alan/demo/issues/7/comments", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id": 41, "body": "first"}, {"id": 42, "body": "last"}]`))
	})
	mux.HandleFunc("/api/v3/repos/alan/demo/issues/comments/42/reactions", func(w http.ResponseWriter, r *http.Request) {
		reacted = true
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 1, "content": "+1"}`))
	})

	ic := newTestCommand(t, mux)
	ic.Emoji = "+1"
	ic.LastComment = true
	require.NoError(t, ic.runReact(context.Background()))
	assert.True(t, reacted)
}

func TestRunReact_LastCommentWithoutComments(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/repos/alan/demo/issues/7/comments", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	ic := newTestCommand(t, mux)
	ic.Emoji = "+1"
	ic.LastComment = true
	err := ic.runReact(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no comments")
}
