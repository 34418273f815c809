package git

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

// resolveTempDir creates a temp directory and resolves macOS symlinks.
func resolveTempDir(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	resolved, err := filepath.EvalSymlinks(tmpDir)
	if err != nil {
		t.Fatalf("failed to resolve symlinks for %s: %v", tmpDir, err)
	}
	return resolved
}

// configureTestRepo sets git user config and disables GPG signing.
func configureTestRepo(t *testing.T, repoPath string) {
	t.Helper()
	ctx := context.Background()
	for _, args := range [][]string{
		{"config", "user.email", "test@test.com"},
		{"config", "user.name", "Test User"},
		{"config", "commit.gpgsign", "false"},
	} {
		if err := runGit(ctx, repoPath, args...); err != nil {
			t.Fatalf("failed to run git %v: %v", args, err)
		}
	}
}

// setupTestRepo creates a git repo with main branch, initial commit, and git
// config. Returns the resolved repo path.
func setupTestRepo(t *testing.T) string {
	t.Helper()
	tmpDir := resolveTempDir(t)
	repoPath := filepath.Join(tmpDir, "test-repo")

	ctx := context.Background()
	if err := runGit(ctx, "", "init", "-b", "main", repoPath); err != nil {
		t.Fatalf("failed to init repo: %v", err)
	}

	configureTestRepo(t, repoPath)

	readme := filepath.Join(repoPath, "README.md")
	if err := os.WriteFile(readme, []byte("# test\n"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if err := runGit(ctx, repoPath, "add", "README.md"); err != nil {
		t.Fatalf("failed to add file: %v", err)
	}
	if err := runGit(ctx, repoPath, "commit", "-m", "Initial commit"); err != nil {
		t.Fatalf("failed to commit: %v", err)
	}

	return repoPath
}

func TestRepoRoot(t *testing.T) {
	repoPath := setupTestRepo(t)
	sub := filepath.Join(repoPath, "sub")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}
	t.Chdir(sub)

	root, err := RepoRoot(context.Background())
	if err != nil {
		t.Fatalf("RepoRoot = %v, want nil", err)
	}
	if root != repoPath {
		t.Errorf("RepoRoot = %q, want %q", root, repoPath)
	}
}

func TestRepoRoot_NotARepo(t *testing.T) {
	t.Chdir(resolveTempDir(t))

	if _, err := RepoRoot(context.Background()); err == nil {
		t.Error("RepoRoot outside a repository = nil, want error")
	}
}

func TestRemoteURL(t *testing.T) {
	t.Parallel()
	repoPath := setupTestRepo(t)
	ctx := context.Background()

	if _, err := RemoteURL(ctx, repoPath); err == nil {
		t.Error("RemoteURL without origin = nil, want error")
	}

	url := "git@github.com:acme/widgets.git"
	if err := runGit(ctx, repoPath, "remote", "add", "origin", url); err != nil {
		t.Fatalf("failed to add remote: %v", err)
	}
	got, err := RemoteURL(ctx, repoPath)
	if err != nil {
		t.Fatalf("RemoteURL = %v, want nil", err)
	}
	if got != url {
		t.Errorf("RemoteURL = %q, want %q", got, url)
	}
}

func TestDefaultBranch(t *testing.T) {
	t.Parallel()
	// A local path works as a remote URL for ls-remote.
	repoPath := setupTestRepo(t)

	branch, err := DefaultBranch(context.Background(), repoPath)
	if err != nil {
		t.Fatalf("DefaultBranch = %v, want nil", err)
	}
	if branch != "main" {
		t.Errorf("DefaultBranch = %q, want %q", branch, "main")
	}
}

func TestLocalBranchExists(t *testing.T) {
	t.Parallel()
	repoPath := setupTestRepo(t)
	ctx := context.Background()

	if !LocalBranchExists(ctx, repoPath, "main") {
		t.Error("LocalBranchExists(main) = false, want true")
	}
	if LocalBranchExists(ctx, repoPath, "missing") {
		t.Error("LocalBranchExists(missing) = true, want false")
	}
}

func TestRemoteBranchExists(t *testing.T) {
	t.Parallel()
	repoPath := setupTestRepo(t)
	ctx := context.Background()

	exists, err := RemoteBranchExists(ctx, repoPath, "main")
	if err != nil {
		t.Fatalf("RemoteBranchExists(main) = %v, want nil", err)
	}
	if !exists {
		t.Error("RemoteBranchExists(main) = false, want true")
	}

	exists, err = RemoteBranchExists(ctx, repoPath, "missing")
	if err != nil {
		t.Fatalf("RemoteBranchExists(missing) = %v, want nil", err)
	}
	if exists {
		t.Error("RemoteBranchExists(missing) = true, want false")
	}
}

func TestClone(t *testing.T) {
	t.Parallel()
	repoPath := setupTestRepo(t)
	ctx := context.Background()

	dest := filepath.Join(resolveTempDir(t), "clone")
	if err := Clone(ctx, repoPath, dest, ""); err != nil {
		t.Fatalf("Clone = %v, want nil", err)
	}
	if _, err := os.Stat(filepath.Join(dest, "README.md")); err != nil {
		t.Errorf("cloned working tree incomplete: %v", err)
	}
}

func TestAddAndRemoveWorktree(t *testing.T) {
	t.Parallel()
	repoPath := setupTestRepo(t)
	ctx := context.Background()

	wt := filepath.Join(resolveTempDir(t), "feature")
	if err := AddWorktree(ctx, repoPath, wt, "feature", true); err != nil {
		t.Fatalf("AddWorktree(new branch) = %v, want nil", err)
	}
	if !LocalBranchExists(ctx, repoPath, "feature") {
		t.Error("AddWorktree did not create the branch")
	}
	if _, err := os.Stat(filepath.Join(wt, ".git")); err != nil {
		t.Errorf("worktree checkout incomplete: %v", err)
	}

	if err := RemoveWorktree(ctx, repoPath, wt); err != nil {
		t.Fatalf("RemoveWorktree = %v, want nil", err)
	}
	if _, err := os.Stat(wt); !os.IsNotExist(err) {
		t.Errorf("worktree path still exists after removal")
	}

	// Checking out the now-existing branch again, without -b.
	wt2 := filepath.Join(resolveTempDir(t), "feature2")
	if err := AddWorktree(ctx, repoPath, wt2, "feature", false); err != nil {
		t.Fatalf("AddWorktree(existing branch) = %v, want nil", err)
	}
}
