package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/raphi011/grm/internal/log"
	"github.com/raphi011/grm/internal/repo"
	"github.com/raphi011/grm/internal/scan"
)

func newRemoveCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "remove URL",
		Short:   "Remove a repository and all its worktrees",
		GroupID: GroupRepo,
		Args:    cobra.ExactArgs(1),
		Long: `Remove every worktree of the repository identified by URL from the
managed root. Asks for confirmation unless --force is given.`,
		Example: `  grm remove https://github.com/acme/widgets
  grm remove git@github.com:acme/widgets.git --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			url := args[0]

			info, err := repo.ParseURL(url)
			if err != nil {
				return err
			}

			worktrees, err := scan.New(fsys).Worktrees(cfg.Root, info)
			if err != nil {
				return err
			}
			if len(worktrees) == 0 {
				searched := filepath.Join(cfg.Root, info.Host, info.User)
				return fmt.Errorf("no repositories found for URL %s (searched in %s)", url, searched)
			}

			if !force {
				if err := confirmOverwrite("The following repositories will be deleted:", worktrees); err != nil {
					return err
				}
			}

			removed := 0
			for _, worktree := range worktrees {
				// The scanner filters symlinks already; don't follow one
				// into foreign content if the tree changed underneath us.
				if fsys.IsSymlink(worktree) {
					l.Printf("Warning: skipping symlink %s\n", worktree)
					continue
				}
				if err := fsys.Remove(worktree); err != nil {
					return err
				}
				l.Printf("Removed %s\n", worktree)
				removed++
			}

			l.Printf("Removed %d repositories.\n", removed)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Remove without confirmation")

	return cmd
}
