package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/grm/internal/log"
	"github.com/raphi011/grm/internal/share"
)

func newShareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "share PATH",
		Short: "Share a file or directory across all worktrees",
		Args:  cobra.ExactArgs(1),
		Long: `Move PATH into shared storage and replace it with a symbolic link in
every worktree of the current repository. Worktrees whose copy of PATH
would be overwritten are listed for confirmation first.

Sharing an already-shared file is a no-op.`,
		Example: `  grm worktree share .env
  grm worktree share config/secrets.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path := args[0]

			repoRoot, info, err := currentRepo(ctx)
			if err != nil {
				return err
			}

			manager := share.NewManager(info, fsys, cfg.Root)

			conflicts, err := manager.Conflicts(repoRoot, path)
			if err != nil {
				return err
			}
			if len(conflicts) > 0 {
				if err := confirmOverwrite("The following files will be overwritten:", conflicts); err != nil {
					return err
				}
			}

			if err := manager.Share(repoRoot, path); err != nil {
				return err
			}

			log.FromContext(ctx).Printf("Shared %s across worktrees\n", path)
			return nil
		},
	}
}
