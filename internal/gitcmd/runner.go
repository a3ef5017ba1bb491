// Package gitcmd shells out to the git binary for all local repository
// operations. Every call captures combined stdout and stderr; a non-zero
// exit code is reduced to an error carrying the captured text. No command
// is retried.
package gitcmd

import (
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// ExecFunc runs git with the given arguments in dir and returns the
// combined output. Tests inject a scripted implementation.
type ExecFunc func(dir string, args ...string) (string, error)

// Runner executes git subcommands in a fixed project directory
type Runner struct {
	Dir  string
	Exec ExecFunc
}

// NewRunner creates a Runner that invokes the real git binary in dir
func NewRunner(dir string) *Runner {
	return &Runner{Dir: dir, Exec: runGit}
}

func runGit(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir

	out, err := cmd.CombinedOutput()
	text := strings.TrimSpace(string(out))
	if err != nil {
		if text != "" {
			return text, fmt.Errorf("git %s: %s", strings.Join(args, " "), text)
		}
		return text, fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}

	return text, nil
}

func (r *Runner) run(args ...string) (string, error) {
	slog.Debug("Running git command", "dir", r.Dir, "args", args)
	return r.Exec(r.Dir, args...)
}

// IsRepository reports whether the runner's directory is inside a git repository
func (r *Runner) IsRepository() bool {
	_, err := r.run("rev-parse", "--git-dir")
	return err == nil
}

// Branch returns the name of the checked-out branch
func (r *Runner) Branch() (string, error) {
	return r.run("rev-parse", "--abbrev-ref", "HEAD")
}

// RemoteURL returns the URL of the origin remote
func (r *Runner) RemoteURL() (string, error) {
	return r.run("remote", "get-url", "origin")
}

// SetRemoteURL points the origin remote at a new URL
func (r *Runner) SetRemoteURL(url string) error {
	_, err := r.run("remote", "set-url", "origin", url)
	return err
}

// ChangedFiles lists the files reported by git status --porcelain,
// with the two-letter status prefix stripped
func (r *Runner) ChangedFiles() ([]string, error) {
	out, err := r.run("status", "--porcelain")
	if err != nil {
		return nil, err
	}

	var files []string
	for _, line := range strings.Split(out, "\n") {
		if len(line) > 3 {
			files = append(files, line[3:])
		}
	}

	return files, nil
}

// Stage adds the given files to the index
func (r *Runner) Stage(files ...string) error {
	_, err := r.run(append([]string{"add"}, files...)...)
	return err
}

// Unstage removes the given files from the index
func (r *Runner) Unstage(files ...string) error {
	_, err := r.run(append([]string{"reset", "HEAD"}, files...)...)
	return err
}

// Commit records the staged changes with the given message
func (r *Runner) Commit(message string) error {
	_, err := r.run("commit", "-m", message)
	return err
}

// Pull fetches and integrates changes from the remote, merging by
// default or rebasing when rebase is true
func (r *Runner) Pull(rebase bool) error {
	args := []string{"pull"}
	if rebase {
		args = append(args, "--rebase")
	}
	_, err := r.run(args...)
	return err
}

// Tags lists the repository's tags in git's default order
func (r *Runner) Tags() ([]string, error) {
	out, err := r.run("tag", "--list")
	if err != nil {
		return nil, err
	}

	var tags []string
	for _, tag := range strings.Split(out, "\n") {
		if tag != "" {
			tags = append(tags, tag)
		}
	}

	return tags, nil
}

// CreateTag creates a lightweight tag at HEAD
func (r *Runner) CreateTag(name string) error {
	_, err := r.run("tag", name)
	return err
}

// DeleteTag deletes a local tag
func (r *Runner) DeleteTag(name string) error {
	_, err := r.run("tag", "-d", name)
	return err
}

// Push pushes the current branch to its upstream
func (r *Runner) Push() error {
	_, err := r.run("push")
	return err
}

// PushTag pushes a single tag to origin
func (r *Runner) PushTag(name string) error {
	_, err := r.run("push", "origin", name)
	return err
}

// PushTags pushes all local tags
func (r *Runner) PushTags() error {
	_, err := r.run("push", "--tags")
	return err
}

// ConfigureCredentialHelper switches git's global credential helper to
// plain-text "store" mode
func (r *Runner) ConfigureCredentialHelper() error {
	_, err := r.run("config", "--global", "credential.helper", "store")
	return err
}
