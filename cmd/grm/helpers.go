package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/raphi011/grm/internal/git"
	"github.com/raphi011/grm/internal/repo"
	"github.com/raphi011/grm/internal/ui/prompt"
	"github.com/raphi011/grm/internal/ui/styles"
)

var (
	// errCancelled is returned when the user declines a confirmation,
	// distinct from a failure.
	errCancelled = errors.New("operation cancelled by user")

	// errNotManaged is returned when the working directory is not inside
	// a repository under the managed root.
	errNotManaged = errors.New("not in a managed git repository")
)

// currentRepo resolves the worktree containing the working directory and
// decodes its identity from the managed path.
func currentRepo(ctx context.Context) (repoRoot string, info repo.Info, err error) {
	repoRoot, err = git.RepoRoot(ctx)
	if err != nil {
		return "", repo.Info{}, errNotManaged
	}
	info, err = repo.InfoFromPath(cfg.Root, repoRoot)
	if err != nil {
		return "", repo.Info{}, fmt.Errorf("%w: %v", errNotManaged, err)
	}
	return repoRoot, info, nil
}

// confirmOverwrite lists the paths that are about to be replaced and asks
// for confirmation. Declining or cancelling yields errCancelled.
func confirmOverwrite(header string, paths []string) error {
	// Stderr, like the prompt itself: stdout stays data-only.
	fmt.Fprintln(os.Stderr, header)
	sorted := append([]string(nil), paths...)
	sort.Strings(sorted)
	for _, p := range sorted {
		fmt.Fprintln(os.Stderr, "  "+styles.WarningStyle.Render(p))
	}

	result, err := prompt.Confirm("Do you want to continue?")
	if err != nil {
		return err
	}
	if !result.Confirmed || result.Cancelled {
		return errCancelled
	}
	return nil
}
