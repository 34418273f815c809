package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/raphi011/grm/internal/log"
	"github.com/raphi011/grm/internal/output"
)

func newRootDirCmd() *cobra.Command {
	var copyToClipboard bool

	cmd := &cobra.Command{
		Use:     "root",
		Short:   "Show the root directory for managed repositories",
		GroupID: GroupRepo,
		Args:    cobra.NoArgs,
		Example: `  grm root               # print the managed root
  cd $(grm root)          # jump to the managed root
  grm root --copy         # copy the path to the clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if copyToClipboard {
				if err := clipboard.WriteAll(cfg.Root); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				log.FromContext(ctx).Printf("Copied to clipboard: %s\n", cfg.Root)
				return nil
			}

			output.FromContext(ctx).Println(cfg.Root)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&copyToClipboard, "copy", "c", false, "Copy the root path to the clipboard")

	return cmd
}
