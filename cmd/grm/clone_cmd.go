package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/raphi011/grm/internal/git"
	"github.com/raphi011/grm/internal/output"
	"github.com/raphi011/grm/internal/repo"
)

func newCloneCmd() *cobra.Command {
	var branch string

	cmd := &cobra.Command{
		Use:     "clone URL",
		Short:   "Clone a repository into the managed structure",
		GroupID: GroupRepo,
		Args:    cobra.ExactArgs(1),
		Long: `Clone a repository to {root}/{host}/{user}/{repo}+{branch}.

When no branch is given, the remote's default branch is used.`,
		Example: `  grm clone https://github.com/acme/widgets
  grm clone git@github.com:acme/widgets.git -b develop`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			url := args[0]

			info, err := repo.ParseURL(url)
			if err != nil {
				return err
			}

			if branch == "" {
				branch, err = git.DefaultBranch(ctx, url)
				if err != nil {
					return err
				}
			}

			dest := info.WorktreePath(cfg.Root, branch)
			if fsys.Exists(dest) {
				return fmt.Errorf("path already exists: %s", dest)
			}
			if err := fsys.CreateDir(filepath.Dir(dest)); err != nil {
				return err
			}

			if err := git.Clone(ctx, url, dest, branch); err != nil {
				return err
			}

			output.FromContext(ctx).Println(dest)
			return nil
		},
	}

	cmd.Flags().StringVarP(&branch, "branch", "b", "", "Branch to clone (queries the remote if not specified)")

	return cmd
}
