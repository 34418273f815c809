package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/grm/internal/log"
	"github.com/raphi011/grm/internal/share"
)

func newIsolateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "isolate PATH",
		Short: "Turn a shared file back into a private copy",
		Args:  cobra.ExactArgs(1),
		Long: `Replace the symbolic link at PATH in the current worktree with a full
copy of the shared content. Other worktrees keep their links; further
sharing elsewhere no longer affects this worktree's copy.

Isolating a file that is not a link is a no-op.`,
		Example: `  grm worktree isolate .env`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path := args[0]

			repoRoot, info, err := currentRepo(ctx)
			if err != nil {
				return err
			}

			if err := share.NewManager(info, fsys, cfg.Root).Isolate(repoRoot, path); err != nil {
				return err
			}

			log.FromContext(ctx).Printf("Isolated %s\n", path)
			return nil
		},
	}
}
