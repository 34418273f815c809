package main

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/raphi011/grm/internal/log"
)

// captureStderr runs fn with os.Stderr redirected to a pipe and returns
// everything written to it.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stderr = w
	defer func() { os.Stderr = old }()

	fn()

	w.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

// TestGlobalFlags_WireLogger verifies that --verbose and --quiet, parsed by
// cobra, reach the logger that commands pull from their context.
//
// Scenario: grm is invoked with -v, -q, or neither
// Expected: -v echoes external commands, -q suppresses all diagnostics
func TestGlobalFlags_WireLogger(t *testing.T) {
	check := &cobra.Command{
		Use:    "flagcheck",
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			l := log.FromContext(cmd.Context())
			l.Command("git", "status")
			l.Printf("diag\n")
			return nil
		},
	}
	rootCmd.AddCommand(check)
	defer rootCmd.RemoveCommand(check)

	run := func(args ...string) string {
		return captureStderr(t, func() {
			rootCmd.SetArgs(args)
			if err := rootCmd.Execute(); err != nil {
				t.Errorf("Execute(%v) = %v, want nil", args, err)
			}
			rootCmd.SetArgs(nil)
			verbose = false
			quiet = false
			// Reset cobra's parse state so flags set in one run are not
			// still marked as changed in the next.
			rootCmd.PersistentFlags().Lookup("verbose").Changed = false
			rootCmd.PersistentFlags().Lookup("quiet").Changed = false
		})
	}

	t.Run("verbose echoes commands", func(t *testing.T) {
		got := run("-v", "flagcheck")
		if !strings.Contains(got, "$ git status") {
			t.Errorf("stderr = %q, want the command echo", got)
		}
		if !strings.Contains(got, "diag") {
			t.Errorf("stderr = %q, want diagnostics", got)
		}
	})

	t.Run("quiet suppresses diagnostics", func(t *testing.T) {
		got := run("-q", "flagcheck")
		if got != "" {
			t.Errorf("stderr = %q, want nothing in quiet mode", got)
		}
	})

	t.Run("default logs without echo", func(t *testing.T) {
		got := run("flagcheck")
		if strings.Contains(got, "$ git status") {
			t.Errorf("stderr = %q, command echo without --verbose", got)
		}
		if !strings.Contains(got, "diag") {
			t.Errorf("stderr = %q, want diagnostics", got)
		}
	})
}
