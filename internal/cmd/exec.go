// Package cmd executes external commands with stderr capture and
// verbose logging.
package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/raphi011/grm/internal/log"
)

// RunContext executes a command, logging it in verbose mode. If the command
// fails and wrote to stderr, the trimmed stderr text becomes the error
// message.
func RunContext(ctx context.Context, dir, name string, args ...string) error {
	log.FromContext(ctx).Command(name, args...)

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir

	var stderr bytes.Buffer
	c.Stderr = &stderr

	if err := c.Run(); err != nil {
		return commandError(ctx, &stderr, err)
	}
	return nil
}

// OutputContext executes a command and returns its stdout, logging it in
// verbose mode. Failure errors carry the command's stderr text.
func OutputContext(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	log.FromContext(ctx).Command(name, args...)

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir

	var stderr bytes.Buffer
	c.Stderr = &stderr

	out, err := c.Output()
	if err != nil {
		return nil, commandError(ctx, &stderr, err)
	}
	return out, nil
}

func commandError(ctx context.Context, stderr *bytes.Buffer, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if msg := strings.TrimSpace(stderr.String()); msg != "" {
		return fmt.Errorf("%s", msg)
	}
	return err
}
