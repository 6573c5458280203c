package git

import (
	"context"

	"github.com/boskcli/bosk/internal/cmdutil"
)

// gitArgs prepends -C <dir> to args if dir is non-empty. -C is handled
// by git itself and works correctly with every subcommand.
func gitArgs(dir string, args []string) []string {
	if dir == "" {
		return args
	}
	return append([]string{"-C", dir}, args...)
}

// runGit executes a git command that must succeed.
func runGit(ctx context.Context, dir string, args ...string) error {
	return cmdutil.Run(ctx, "", "git", gitArgs(dir, args)...)
}

// outputGit executes a git command that must succeed, returning trimmed stdout.
func outputGit(ctx context.Context, dir string, args ...string) (string, error) {
	return cmdutil.Output(ctx, "", "git", gitArgs(dir, args)...)
}

// probeGit executes a best-effort git command.
func probeGit(ctx context.Context, dir string, args ...string) (string, bool) {
	return cmdutil.Probe(ctx, "", "git", gitArgs(dir, args)...)
}
