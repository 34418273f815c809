package main

import (
	"github.com/spf13/cobra"
)

func newWorktreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "worktree",
		Aliases: []string{"wt"},
		Short:   "Manage worktrees and shared files",
		GroupID: GroupWorktree,
	}

	cmd.AddCommand(
		newSplitCmd(),
		newWorktreeRemoveCmd(),
		newShareCmd(),
		newUnshareCmd(),
		newIsolateCmd(),
	)

	return cmd
}
