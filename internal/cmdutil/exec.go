// Package cmdutil executes external commands for bosk.
//
// bosk shells out to the installed git binary rather than using a Go git
// library: worktree behavior must match the user's git exactly, including
// their hooks, config, and credential helpers. Three execution modes are
// distinguished:
//
//   - Run/Output: must succeed. Stderr is captured and surfaced as the
//     error text; the exit status is recoverable via [ExitCode].
//   - Probe: best effort. Never fails; reports found/not-found.
//   - Interactive: inherits the terminal and propagates the exit code.
//     Used for setup scripts.
package cmdutil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/boskcli/bosk/internal/log"
)

// Run executes a command that must succeed. On failure the returned
// error carries the trimmed stderr text when available.
func Run(ctx context.Context, dir, name string, args ...string) error {
	log.FromContext(ctx).Command(name, args...)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return wrapStderr(err, &stderr)
	}
	return nil
}

// Output executes a command that must succeed and returns its trimmed
// stdout. Stderr is surfaced in the error on failure.
func Output(ctx context.Context, dir, name string, args ...string) (string, error) {
	log.FromContext(ctx).Command(name, args...)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", wrapStderr(err, &stderr)
	}
	return strings.TrimSpace(string(out)), nil
}

// Probe executes a best-effort command. It never returns an error: a
// failing or unavailable command reports ok=false with empty output.
func Probe(ctx context.Context, dir, name string, args ...string) (out string, ok bool) {
	log.FromContext(ctx).Command(name, args...)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	b, err := cmd.Output()
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(string(b)), true
}

// Interactive executes a command attached to the caller's terminal.
// extraEnv entries ("KEY=value") are appended to the current environment.
// The command's exit code propagates through the returned error.
func Interactive(ctx context.Context, dir string, extraEnv []string, name string, args ...string) error {
	log.FromContext(ctx).Command(name, args...)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), extraEnv...)

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	return nil
}

// ExitCode extracts the exit status from a command error.
// Returns 1 when the error carries no exit status (e.g. binary missing).
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}
	return 1
}

// wrapStderr prefers the captured stderr text as the error message,
// keeping the original error wrapped so the exit code stays recoverable.
func wrapStderr(err error, stderr *bytes.Buffer) error {
	if msg := strings.TrimSpace(stderr.String()); msg != "" {
		return fmt.Errorf("%s: %w", msg, err)
	}
	return err
}
