package git

import (
	"context"
	"fmt"
	"strings"
)

// RepoRoot returns the top-level directory of the repository containing the
// current working directory.
func RepoRoot(ctx context.Context) (string, error) {
	out, err := outputGit(ctx, "", "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("not in a git repository: %v", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// RemoteURL returns the origin remote URL of the repository at dir.
func RemoteURL(ctx context.Context, dir string) (string, error) {
	out, err := outputGit(ctx, dir, "remote", "get-url", "origin")
	if err != nil {
		return "", fmt.Errorf("no origin remote: %v", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// DefaultBranch queries the remote at url for its HEAD branch.
func DefaultBranch(ctx context.Context, url string) (string, error) {
	out, err := outputGit(ctx, "", "ls-remote", "--symref", url, "HEAD")
	if err != nil {
		return "", fmt.Errorf("query default branch of %s: %v", url, err)
	}

	// First line is "ref: refs/heads/<branch>\tHEAD".
	for line := range strings.Lines(string(out)) {
		if !strings.HasPrefix(line, "ref:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) >= 2 {
			return strings.TrimPrefix(fields[1], "refs/heads/"), nil
		}
	}
	return "", fmt.Errorf("could not determine default branch of %s", url)
}

// LocalBranchExists reports whether branch exists in the repository at dir.
func LocalBranchExists(ctx context.Context, dir, branch string) bool {
	return runGit(ctx, dir, "rev-parse", "--verify", "--quiet", "refs/heads/"+branch) == nil
}

// RemoteBranchExists reports whether branch exists on the remote at url.
func RemoteBranchExists(ctx context.Context, url, branch string) (bool, error) {
	out, err := outputGit(ctx, "", "ls-remote", "--heads", url, "refs/heads/"+branch)
	if err != nil {
		return false, fmt.Errorf("query remote branch %s: %v", branch, err)
	}
	return strings.TrimSpace(string(out)) != "", nil
}

// Clone clones url into dest. A non-empty branch is checked out directly.
func Clone(ctx context.Context, url, dest, branch string) error {
	args := []string{"clone"}
	if branch != "" {
		args = append(args, "--branch", branch)
	}
	args = append(args, url, dest)
	return runGit(ctx, "", args...)
}

// AddWorktree creates a worktree for branch at path, from the repository at
// dir. With createNew the branch is created by the checkout; otherwise the
// existing local or remote branch is checked out.
func AddWorktree(ctx context.Context, dir, path, branch string, createNew bool) error {
	if createNew {
		return runGit(ctx, dir, "worktree", "add", "-b", branch, path)
	}
	return runGit(ctx, dir, "worktree", "add", path, branch)
}

// RemoveWorktree removes the worktree at path from the repository at dir.
func RemoveWorktree(ctx context.Context, dir, path string) error {
	return runGit(ctx, dir, "worktree", "remove", path)
}
