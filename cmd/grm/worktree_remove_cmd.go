package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/grm/internal/git"
	"github.com/raphi011/grm/internal/log"
	"github.com/raphi011/grm/internal/repo"
)

func newWorktreeRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove BRANCH",
		Short:   "Remove the worktree of a branch",
		Args:    cobra.ExactArgs(1),
		Example: `  grm worktree remove feature/login`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			branch := args[0]

			repoRoot, err := git.RepoRoot(ctx)
			if err != nil {
				return errNotManaged
			}
			url, err := git.RemoteURL(ctx, repoRoot)
			if err != nil {
				return errNotManaged
			}
			info, err := repo.ParseURL(url)
			if err != nil {
				return err
			}

			path := info.WorktreePath(cfg.Root, branch)
			if !fsys.Exists(path) {
				return fmt.Errorf("worktree does not exist: %s", path)
			}

			if err := git.RemoveWorktree(ctx, repoRoot, path); err != nil {
				return err
			}

			log.FromContext(ctx).Printf("Removed worktree %s\n", path)
			return nil
		},
	}
}
