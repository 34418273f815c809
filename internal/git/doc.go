// Package git wraps the git binary for the handful of operations grm needs:
// resolving the current repository root and origin URL, branch existence
// checks, cloning, and worktree management. All functions shell out through
// internal/cmd so --verbose echoes the exact invocations.
package git
