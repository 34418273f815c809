// Package repo identifies managed repositories and translates between git
// URLs, managed worktree paths and shared storage paths.
//
// Every repository lives under the managed root as
// {root}/{host}/{user}/{repo}+{branch}, and its shared resources under
// {root}/.shared/{host}/{user}/{repo}. The directory layout is the on-disk
// contract: existing managed roots depend on it, so the "+" separator and
// the ".shared" name must never change.
package repo

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// SharedDir is the name of the shared storage directory under the root.
const SharedDir = ".shared"

// ErrInvalid indicates a URL or path that does not identify a managed
// repository.
var ErrInvalid = errors.New("invalid repository reference")

// Info identifies a logical repository. Branch is only set when the Info was
// decoded from a worktree path.
type Info struct {
	Host   string
	User   string
	Repo   string
	Branch string
}

// urlShape is a recognized remote URL prefix with the separator between host
// and the user/repo tail.
type urlShape struct {
	prefix    string
	separator string
}

// Shapes are tried in order; the first matching prefix wins, even if its
// tail turns out to be malformed.
var urlShapes = []urlShape{
	{"https://", "/"},
	{"ssh://git@", "/"},
	{"git@", ":"},
}

// ParseURL parses a git remote URL into an Info.
//
// Supported shapes:
//
//	https://host/user/repo[.git]
//	ssh://git@host/user/repo[.git]
//	git@host:user/repo[.git]
func ParseURL(url string) (Info, error) {
	url = strings.TrimSpace(url)

	for _, shape := range urlShapes {
		rest, ok := strings.CutPrefix(url, shape.prefix)
		if !ok {
			continue
		}

		host, tail, ok := strings.Cut(rest, shape.separator)
		if !ok {
			return Info{}, fmt.Errorf("%w: expected %shost%suser/repo, got %q",
				ErrInvalid, shape.prefix, shape.separator, url)
		}

		parts := strings.Split(tail, "/")
		if len(parts) < 2 {
			return Info{}, fmt.Errorf("%w: expected %shost%suser/repo, got %q",
				ErrInvalid, shape.prefix, shape.separator, url)
		}

		return Info{
			Host: host,
			User: parts[0],
			Repo: strings.TrimSuffix(parts[1], ".git"),
		}, nil
	}

	return Info{}, fmt.Errorf("%w: unsupported URL format (supported: https://, ssh://git@, git@), got %q",
		ErrInvalid, url)
}

// InfoFromPath decodes a managed worktree path of the form
// {root}/{host}/{user}/{repo}+{branch} back into an Info. Branch names
// containing "/" span multiple path components after the "+" and are
// rejoined verbatim.
func InfoFromPath(root, path string) (Info, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return Info{}, fmt.Errorf("%w: path %q is not under root %q", ErrInvalid, path, root)
	}

	components := strings.Split(rel, string(filepath.Separator))
	if len(components) < 3 {
		return Info{}, fmt.Errorf("%w: path %q does not have managed repository structure", ErrInvalid, path)
	}

	info := Info{Host: components[0], User: components[1]}

	repoWithBranch := components[2]
	name, branch, found := strings.Cut(repoWithBranch, "+")
	info.Repo = name
	if !found {
		return info, nil
	}

	if rest := components[3:]; len(rest) > 0 {
		info.Branch = strings.Join(append([]string{branch}, rest...), "/")
	} else {
		info.Branch = branch
	}
	return info, nil
}

// WorktreePath returns {root}/{host}/{user}/{repo}+{branch}.
func (i Info) WorktreePath(root, branch string) string {
	return filepath.Join(root, i.Host, i.User, i.Repo+"+"+branch)
}

// SharedPath returns {root}/.shared/{host}/{user}/{repo}/{relative}.
func (i Info) SharedPath(root, relative string) string {
	return filepath.Join(root, SharedDir, i.Host, i.User, i.Repo, relative)
}

// SharedRoot returns the shared storage root for the repository.
func (i Info) SharedRoot(root string) string {
	return i.SharedPath(root, "")
}

// String returns the host/user/repo form used in log and error output.
func (i Info) String() string {
	return i.Host + "/" + i.User + "/" + i.Repo
}
