package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/raphi011/grm/internal/git"
	"github.com/raphi011/grm/internal/log"
	"github.com/raphi011/grm/internal/output"
	"github.com/raphi011/grm/internal/repo"
	"github.com/raphi011/grm/internal/share"
)

func newSplitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "split BRANCH",
		Short: "Create a new worktree for a branch",
		Args:  cobra.ExactArgs(1),
		Long: `Create a worktree for BRANCH at {root}/{host}/{user}/{repo}+{branch}.

An existing local or remote branch is checked out; otherwise the branch is
created. Files shared for this repository are linked into the new worktree.`,
		Example: `  grm worktree split feature/login
  cd $(grm worktree split feature/login)`,
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

			dest := info.WorktreePath(cfg.Root, branch)
			if fsys.Exists(dest) {
				return fmt.Errorf("path already exists: %s", dest)
			}
			if err := fsys.CreateDir(filepath.Dir(dest)); err != nil {
				return err
			}

			createNew := false
			if !git.LocalBranchExists(ctx, repoRoot, branch) {
				remote, err := git.RemoteBranchExists(ctx, url, branch)
				if err != nil {
					return err
				}
				createNew = !remote
			}

			if err := git.AddWorktree(ctx, repoRoot, dest, branch, createNew); err != nil {
				return err
			}

			output.FromContext(ctx).Println(dest)

			// Bring resources shared before this worktree existed into it.
			if fsys.Exists(info.SharedRoot(cfg.Root)) {
				manager := share.NewManager(info, fsys, cfg.Root)
				if err := manager.Mount(dest); err != nil {
					return err
				}
				log.FromContext(ctx).Printf("Mounted shared files into %s\n", dest)
			}

			return nil
		},
	}
}
