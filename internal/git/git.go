// Package git shells out to the installed git binary.
//
// bosk deliberately does not use a Go git library: worktree add/remove
// semantics, ref resolution, and fetch behavior must match whatever git
// the user has installed, including their hooks and credential helpers.
package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// DetachedHead is the marker CurrentBranch returns when a worktree's
// checkout is not on any named branch.
const DetachedHead = "(detached)"

// RefStatus is the tri-state result of a ref existence probe.
// "Ref does not exist" stays distinct from "probe could not run".
type RefStatus int

const (
	RefNotFound RefStatus = iota
	RefFound
	RefProbeError
)

// Check verifies the git binary is available.
func Check(ctx context.Context) error {
	if _, ok := probeGit(ctx, "", "--version"); !ok {
		return fmt.Errorf("git binary not found in PATH")
	}
	return nil
}

// TopLevel returns the absolute path of the repository top-level
// directory containing dir.
func TopLevel(ctx context.Context, dir string) (string, error) {
	out, err := outputGit(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("not inside a git repository: %w", err)
	}
	return out, nil
}

// VerifyRef probes whether ref resolves to a commit.
func VerifyRef(ctx context.Context, dir, ref string) RefStatus {
	out, err := outputGit(ctx, dir, "rev-parse", "--verify", "--quiet", ref+"^{commit}")
	switch {
	case err == nil && out != "":
		return RefFound
	case err == nil:
		return RefNotFound
	default:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return RefNotFound
		}
		// git itself could not run; keep this distinguishable from a
		// missing ref even though callers usually treat both as absent.
		return RefProbeError
	}
}

// ResolveCommit pins a ref to its commit hash. Unlike VerifyRef this is
// a required operation: a missing ref is an error.
func ResolveCommit(ctx context.Context, dir, ref string) (string, error) {
	return outputGit(ctx, dir, "rev-parse", "--verify", ref+"^{commit}")
}

// BranchExists reports whether a local branch exists.
func BranchExists(ctx context.Context, dir, branch string) bool {
	return VerifyRef(ctx, dir, "refs/heads/"+branch) == RefFound
}

// CurrentBranch returns the branch checked out in dir, or the
// DetachedHead marker.
func CurrentBranch(ctx context.Context, dir string) string {
	out, ok := probeGit(ctx, dir, "branch", "--show-current")
	if !ok || out == "" {
		return DetachedHead
	}
	return out
}

// Upstream returns the short upstream ref of a local branch
// (e.g. "origin/feature/x"), or empty when none is configured.
func Upstream(ctx context.Context, dir, branch string) string {
	out, ok := probeGit(ctx, dir, "rev-parse", "--abbrev-ref", branch+"@{upstream}")
	if !ok {
		return ""
	}
	return out
}

// SetUpstream configures branch to track ref.
func SetUpstream(ctx context.Context, dir, branch, ref string) error {
	return runGit(ctx, dir, "branch", "--set-upstream-to="+ref, branch)
}

// FetchQuiet fetches from the remote, tolerating failure. A fetch that
// cannot reach the remote must never abort worktree creation.
func FetchQuiet(ctx context.Context, dir, remote string) bool {
	_, ok := probeGit(ctx, dir, "fetch", "--quiet", remote)
	return ok
}

// LocalBranches returns the short names of all local branches.
func LocalBranches(ctx context.Context, dir string) []string {
	out, ok := probeGit(ctx, dir, "branch", "--format=%(refname:short)")
	if !ok || out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

// AllBranches returns local and remote branch names, for diagnostics
// when a base branch cannot be found.
func AllBranches(ctx context.Context, dir string) []string {
	out, ok := probeGit(ctx, dir, "branch", "-a", "--format=%(refname:short)")
	if !ok || out == "" {
		return nil
	}
	var branches []string
	for _, b := range strings.Split(out, "\n") {
		if b != "" && !strings.HasSuffix(b, "/HEAD") {
			branches = append(branches, b)
		}
	}
	return branches
}
