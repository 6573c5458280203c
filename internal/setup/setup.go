// Package setup runs per-project bootstrap scripts in new worktrees.
//
// A setup script gets the worktree ready for work: installing
// dependencies, copying env files, starting services. The script runs
// attached to the terminal with the worktree as working directory and
// its absolute path exported as BOSK_WORKTREE_PATH.
package setup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/boskcli/bosk/internal/cmdutil"
	"github.com/boskcli/bosk/internal/log"
)

// PathEnvVar is the environment variable carrying the worktree's
// absolute path into the setup script.
const PathEnvVar = "BOSK_WORKTREE_PATH"

// Mode selects how setup runs: skipped, auto-detected, or an explicit
// script path.
type Mode string

const (
	// ModeNone skips setup entirely.
	ModeNone Mode = "none"
	// ModeDefault auto-detects a script from DefaultCandidates.
	ModeDefault Mode = "default"
)

// ModeFor picks the effective mode from the independent inputs. The
// skip flag wins over everything, then the explicit --setup path, then
// a configured default script.
func ModeFor(skip bool, explicit, configured string) Mode {
	switch {
	case skip:
		return ModeNone
	case explicit != "":
		return Mode(explicit)
	case configured != "":
		return Mode(configured)
	default:
		return ModeDefault
	}
}

// DefaultCandidates are the script locations probed in order by
// ModeDefault, relative to the worktree.
var DefaultCandidates = []string{
	".bosk/setup",
	".bosk/setup.sh",
	"setup-worktree.sh",
	filepath.Join("scripts", "setup-worktree.sh"),
}

// Runner executes setup scripts.
type Runner struct{}

// NewRunner creates a Runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes setup for the worktree at path according to mode.
//
// ModeNone is a silent no-op. In ModeDefault, "no script found" is a
// success — most projects have none. An explicit script that does not
// exist is an error. A script exiting non-zero is an error; the caller
// decides what that means for the worktree (it is left in place).
func (r *Runner) Run(ctx context.Context, path string, mode Mode) error {
	l := log.FromContext(ctx)

	switch mode {
	case ModeNone:
		l.Debug("setup skipped")
		return nil

	case ModeDefault:
		script := detect(path)
		if script == "" {
			l.Debug("no setup script detected", "worktree", path)
			return nil
		}
		l.Infof("Running setup script %s", script)
		return r.execute(ctx, path, script)

	default:
		script := string(mode)
		if !filepath.IsAbs(script) {
			script = filepath.Join(path, script)
		}
		if _, err := os.Stat(script); err != nil {
			return fmt.Errorf("setup script not found: %s", script)
		}
		l.Infof("Running setup script %s", script)
		return r.execute(ctx, path, script)
	}
}

// detect returns the first existing candidate script, or empty.
func detect(worktreePath string) string {
	for _, candidate := range DefaultCandidates {
		script := filepath.Join(worktreePath, candidate)
		if info, err := os.Stat(script); err == nil && !info.IsDir() {
			return script
		}
	}
	return ""
}

// execute runs the script attached to the terminal. Executable files
// run directly; everything else goes through sh.
func (r *Runner) execute(ctx context.Context, worktreePath, script string) error {
	absPath, err := filepath.Abs(worktreePath)
	if err != nil {
		absPath = worktreePath
	}
	env := []string{PathEnvVar + "=" + absPath}

	if isExecutable(script) {
		if err := cmdutil.Interactive(ctx, worktreePath, env, script); err != nil {
			return fmt.Errorf("%s: %w", filepath.Base(script), err)
		}
		return nil
	}

	if err := cmdutil.Interactive(ctx, worktreePath, env, "sh", script); err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(script), err)
	}
	return nil
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir() && info.Mode()&0o111 != 0 && !strings.HasSuffix(path, ".sh")
}
