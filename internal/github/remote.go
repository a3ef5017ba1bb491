package github

import (
	"fmt"
	"strings"
)

// ParseOwnerRepo extracts owner and repository from a git remote URL.
// Only the two shapes git itself produces for GitHub remotes are
// recognized: SSH ("git@host:owner/repo.git") and HTTPS
// ("https://host/owner/repo[.git]"). Anything else is an error;
// no generalized URL grammar is attempted.
func ParseOwnerRepo(remote string) (string, string, error) {
	remote = strings.TrimSpace(remote)

	var path string
	switch {
	case strings.Contains(remote, ":") && strings.HasSuffix(remote, ".git") && !strings.Contains(remote, "://"):
		// SSH form: everything after the host colon
		path = strings.TrimSuffix(remote[strings.Index(remote, ":")+1:], ".git")
	case strings.HasPrefix(remote, "https://"):
		trimmed := strings.TrimSuffix(strings.TrimPrefix(remote, "https://"), ".git")
		slash := strings.Index(trimmed, "/")
		if slash == -1 {
			return "", "", fmt.Errorf("cannot parse owner/repo from remote %q", remote)
		}
		path = trimmed[slash+1:]
	default:
		return "", "", fmt.Errorf("cannot parse owner/repo from remote %q", remote)
	}

	parts := strings.Split(path, "/")
	if len(parts) < 2 || parts[len(parts)-1] == "" || parts[len(parts)-2] == "" {
		return "", "", fmt.Errorf("cannot parse owner/repo from remote %q", remote)
	}

	return parts[len(parts)-2], parts[len(parts)-1], nil
}
