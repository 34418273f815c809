// Package share implements cross-worktree file sharing.
//
// A shared file lives in exactly one physical location under the managed
// root's .shared tree and appears in every worktree of the same repository
// as a symbolic link. Share moves the file into shared storage and fans out
// links; Unshare removes the links but keeps the shared copy; Isolate turns
// one worktree's link back into a private copy; Mount reconciles a freshly
// created worktree with everything shared before it existed.
//
// A Manager holds no state between calls: every operation re-derives paths
// and re-scans the managed root. Nothing takes a lock on the tree, so two
// processes mutating the same root concurrently can interleave their
// rename/symlink/remove sequences. Failures mid-operation are not rolled
// back either; both are accepted limitations.
package share

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/raphi011/grm/internal/fs"
	"github.com/raphi011/grm/internal/repo"
	"github.com/raphi011/grm/internal/scan"
)

// ErrNotFound indicates a missing source file, shared counterpart, or a path
// outside the caller's worktree.
var ErrNotFound = errors.New("not found")

// Manager synchronizes shared resources across the worktrees of one
// repository.
type Manager struct {
	info    repo.Info
	fsys    fs.FS
	scanner *scan.Scanner
	root    string
}

// NewManager returns a Manager for the repository identified by info, with
// root as the managed root directory.
func NewManager(info repo.Info, fsys fs.FS, root string) *Manager {
	return &Manager{
		info:    info,
		fsys:    fsys,
		scanner: scan.New(fsys),
		root:    root,
	}
}

// resolve normalizes relativePath against the process working directory and
// returns both the absolute path and the path relative to repoRoot. Paths
// that do not land inside repoRoot fail with ErrNotFound.
func (m *Manager) resolve(repoRoot, relativePath string) (abs, rel string, err error) {
	cwd, err := m.fsys.CurrentDir()
	if err != nil {
		return "", "", err
	}
	abs, err = m.fsys.Normalize(relativePath, cwd)
	if err != nil {
		return "", "", err
	}
	rel, err = filepath.Rel(repoRoot, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", "", fmt.Errorf("%w: %s is not inside %s", ErrNotFound, abs, repoRoot)
	}
	return abs, rel, nil
}

// Conflicts reports the paths in sibling worktrees that would be overwritten
// by sharing relativePath. It returns nothing when the file has no shared
// counterpart yet, and never includes the caller's own file.
func (m *Manager) Conflicts(repoRoot, relativePath string) ([]string, error) {
	file, rel, err := m.resolve(repoRoot, relativePath)
	if err != nil {
		return nil, err
	}

	if !m.fsys.Exists(m.info.SharedPath(m.root, rel)) {
		return nil, nil
	}

	worktrees, err := m.scanner.Worktrees(m.root, m.info)
	if err != nil {
		return nil, err
	}

	var conflicts []string
	for _, worktree := range worktrees {
		target := filepath.Join(worktree, rel)
		if target == file {
			continue
		}
		if m.fsys.Exists(target) || m.fsys.IsSymlink(target) {
			conflicts = append(conflicts, target)
		}
	}
	return conflicts, nil
}

// Share moves relativePath into shared storage and links it back into every
// worktree of the repository.
//
// A source that is already a symlink is treated as already shared and the
// call is a no-op; the link target is deliberately not verified. Anything
// occupying the shared destination or a worktree's link location is removed
// first: the most recent Share wins, callers guard against silent loss by
// checking Conflicts beforehand.
func (m *Manager) Share(repoRoot, relativePath string) error {
	file, rel, err := m.resolve(repoRoot, relativePath)
	if err != nil {
		return err
	}

	if !m.fsys.Exists(file) {
		return fmt.Errorf("%w: %s", ErrNotFound, relativePath)
	}
	if m.fsys.IsSymlink(file) {
		return nil
	}

	shared := m.info.SharedPath(m.root, rel)
	if err := m.fsys.CreateDir(filepath.Dir(shared)); err != nil {
		return err
	}
	if m.fsys.Exists(shared) {
		if err := m.fsys.Remove(shared); err != nil {
			return err
		}
	}
	if err := m.fsys.Rename(file, shared); err != nil {
		return err
	}

	worktrees, err := m.scanner.Worktrees(m.root, m.info)
	if err != nil {
		return err
	}
	for _, worktree := range worktrees {
		target := filepath.Join(worktree, rel)
		if err := m.replaceWithLink(shared, target); err != nil {
			return err
		}
	}
	return nil
}

// Unshare deletes the symlink for relativePath in every worktree of the
// repository and returns the number of links removed. The shared copy itself
// stays in place. Zero removals is a valid outcome.
func (m *Manager) Unshare(repoRoot, relativePath string) (int, error) {
	_, rel, err := m.resolve(repoRoot, relativePath)
	if err != nil {
		return 0, err
	}

	worktrees, err := m.scanner.Worktrees(m.root, m.info)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, worktree := range worktrees {
		target := filepath.Join(worktree, rel)
		if !m.fsys.IsSymlink(target) {
			continue
		}
		if err := m.fsys.Remove(target); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

// Isolate replaces the symlink at relativePath in the caller's worktree with
// a full copy of the shared content, making the file private to that
// worktree again. A target that is not a symlink is already isolated and the
// call is a no-op. A symlink whose shared counterpart is gone is reported as
// ErrNotFound rather than silently recreated.
func (m *Manager) Isolate(repoRoot, relativePath string) error {
	_, rel, err := m.resolve(repoRoot, relativePath)
	if err != nil {
		return err
	}

	target := filepath.Join(repoRoot, rel)
	if !m.fsys.Exists(target) && !m.fsys.IsSymlink(target) {
		return fmt.Errorf("%w: %s", ErrNotFound, rel)
	}
	if !m.fsys.IsSymlink(target) {
		return nil
	}

	shared := m.info.SharedPath(m.root, rel)
	if !m.fsys.Exists(shared) {
		return fmt.Errorf("%w: shared storage at %s (broken link?)", ErrNotFound, shared)
	}

	if err := m.fsys.Remove(target); err != nil {
		return err
	}
	return m.fsys.Copy(shared, target)
}

// Mount links every file in the repository's shared storage into repoRoot,
// mirroring the shared directory structure. It is used to reconcile a newly
// created worktree with resources shared before it existed. Directories are
// created before the links beneath them, and pre-existing entries at a link
// location are removed first.
func (m *Manager) Mount(repoRoot string) error {
	sharedRoot := m.info.SharedRoot(m.root)
	if !m.fsys.Exists(sharedRoot) {
		return fmt.Errorf("%w: shared storage at %s", ErrNotFound, sharedRoot)
	}

	pending := []string{sharedRoot}
	for len(pending) > 0 {
		dir := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		entries, err := m.fsys.ReadDir(dir)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			rel, err := filepath.Rel(sharedRoot, entry)
			if err != nil {
				return err
			}
			if m.fsys.IsDir(entry) {
				if err := m.fsys.CreateDir(filepath.Join(repoRoot, rel)); err != nil {
					return err
				}
				pending = append(pending, entry)
				continue
			}
			if err := m.replaceWithLink(entry, filepath.Join(repoRoot, rel)); err != nil {
				return err
			}
		}
	}
	return nil
}

// replaceWithLink puts a symlink to target at link, removing whatever file,
// directory or stale link currently occupies it.
func (m *Manager) replaceWithLink(target, link string) error {
	if err := m.fsys.CreateDir(filepath.Dir(link)); err != nil {
		return err
	}
	if m.fsys.Exists(link) || m.fsys.IsSymlink(link) {
		if err := m.fsys.Remove(link); err != nil {
			return err
		}
	}
	return m.fsys.CreateSymlink(target, link)
}
