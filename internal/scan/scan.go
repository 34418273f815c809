// Package scan discovers managed repositories and worktrees under the root.
package scan

import (
	"fmt"
	"strings"

	"github.com/raphi011/grm/internal/fs"
	"github.com/raphi011/grm/internal/repo"
)

// Scanner walks the managed root looking for git repositories.
type Scanner struct {
	fsys fs.FS
}

// New returns a Scanner backed by the given filesystem.
func New(fsys fs.FS) *Scanner {
	return &Scanner{fsys: fsys}
}

// Repositories returns every directory under root that directly contains a
// .git entry. A repository is never descended into, so nested checkouts are
// not reported. Symlinked directories are skipped unconditionally, which
// both avoids double-counting and keeps cyclic links from looping the scan.
//
// The result order is unspecified; callers sort when they need determinism.
// Any directory listing failure aborts the scan.
func (s *Scanner) Repositories(root string) ([]string, error) {
	var repos []string

	// Iterative traversal keeps stack depth flat on deep trees.
	pending := []string{root}
	for len(pending) > 0 {
		dir := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		entries, err := s.fsys.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", dir, err)
		}

		for _, entry := range entries {
			if s.fsys.IsSymlink(entry) || !s.fsys.IsDir(entry) {
				continue
			}
			if s.fsys.IsGitRepository(entry) {
				repos = append(repos, entry)
			} else {
				pending = append(pending, entry)
			}
		}
	}

	return repos, nil
}

// Worktrees returns the repositories under root that are worktrees of the
// repository identified by info, i.e. whose path starts with
// {root}/{host}/{user}/{repo}+. The trailing "+" keeps a repository named
// "widgets2" from matching a filter for "widgets".
func (s *Scanner) Worktrees(root string, info repo.Info) ([]string, error) {
	all, err := s.Repositories(root)
	if err != nil {
		return nil, err
	}

	prefix := info.WorktreePath(root, "")
	var worktrees []string
	for _, path := range all {
		if strings.HasPrefix(path, prefix) {
			worktrees = append(worktrees, path)
		}
	}
	return worktrees, nil
}
