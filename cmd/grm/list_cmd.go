package main

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/raphi011/grm/internal/output"
	"github.com/raphi011/grm/internal/scan"
	"github.com/raphi011/grm/internal/ui/prompt"
)

func newListCmd() *cobra.Command {
	var (
		fullPath    bool
		filter      string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List managed repositories",
		GroupID: GroupRepo,
		Args:    cobra.NoArgs,
		Long: `List every repository checked out under the managed root.

Paths are printed relative to the root by default. With --interactive a
filterable picker is shown and the selected repository's absolute path is
printed, which combines with shell substitution: cd $(grm list -i).`,
		Example: `  grm list
  grm list --full-path
  grm list -f widgets       # fuzzy filter
  cd $(grm list -i)         # pick interactively`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			if !fsys.Exists(cfg.Root) {
				out.Println("Nothing to display")
				return nil
			}

			repos, err := scan.New(fsys).Repositories(cfg.Root)
			if err != nil {
				return err
			}
			sort.Strings(repos)

			display := make([]string, len(repos))
			for i, path := range repos {
				display[i] = displayPath(path, fullPath)
			}

			if filter != "" {
				matches := fuzzy.Find(filter, display)
				filtered := make([]string, 0, len(matches))
				kept := make([]string, 0, len(matches))
				for _, m := range matches {
					filtered = append(filtered, display[m.Index])
					kept = append(kept, repos[m.Index])
				}
				display, repos = filtered, kept
			}

			if len(display) == 0 {
				out.Println("Nothing to display")
				return nil
			}

			if interactive {
				result, err := prompt.Select("Select a repository", display)
				if err != nil {
					return err
				}
				if result.Cancelled {
					return errCancelled
				}
				// Absolute path so the selection works with cd $(...).
				out.Println(repos[result.Index])
				return nil
			}

			for _, line := range display {
				out.Println(line)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fullPath, "full-path", false, "Show full absolute paths")
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "Fuzzy-filter repositories")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Pick a repository and print its path")

	return cmd
}

// displayPath renders a repository path for listing, relative to the managed
// root unless full paths were requested.
func displayPath(path string, fullPath bool) string {
	if fullPath {
		return path
	}
	rel, err := filepath.Rel(cfg.Root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
