// Package prompt provides interactive terminal prompts for grm.
//
// Prompts render to stderr so stdout stays clean for piping, and they only
// run when stdin is a terminal: in non-interactive contexts a confirmation
// counts as declined so scripted runs never hang (use --force to skip
// confirmation entirely).
package prompt
