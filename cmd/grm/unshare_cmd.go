package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/grm/internal/log"
	"github.com/raphi011/grm/internal/share"
)

func newUnshareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unshare PATH",
		Short: "Remove the shared links for a file from all worktrees",
		Args:  cobra.ExactArgs(1),
		Long: `Delete the symbolic link for PATH in every worktree of the current
repository. The copy in shared storage is left untouched.`,
		Example: `  grm worktree unshare .env`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			path := args[0]

			repoRoot, info, err := currentRepo(ctx)
			if err != nil {
				return err
			}

			removed, err := share.NewManager(info, fsys, cfg.Root).Unshare(repoRoot, path)
			if err != nil {
				return err
			}

			if removed == 0 {
				l.Println("No shared files found to unshare.")
			} else {
				l.Printf("Unshared %d file(s) from all worktrees.\n", removed)
			}
			return nil
		},
	}
}
