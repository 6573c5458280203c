package git

import (
	"context"
)

// AddWorktree creates a worktree at path checking out an existing branch.
func AddWorktree(ctx context.Context, dir, path, branch string) error {
	return runGit(ctx, dir, "worktree", "add", path, branch)
}

// AddWorktreeNewBranch creates a worktree at path on a new branch.
// startPoint may be a remote ref or a pinned commit; empty means HEAD.
func AddWorktreeNewBranch(ctx context.Context, dir, path, branch, startPoint string) error {
	args := []string{"worktree", "add", "-b", branch, path}
	if startPoint != "" {
		args = append(args, startPoint)
	}
	return runGit(ctx, dir, args...)
}

// RemoveWorktree force-removes the worktree at path, discarding any
// uncommitted changes inside it.
func RemoveWorktree(ctx context.Context, dir, path string) error {
	return runGit(ctx, dir, "worktree", "remove", "--force", path)
}

// DeleteBranch force-deletes a local branch. Best effort: a branch that
// is checked out elsewhere or already gone reports false, never an error.
func DeleteBranch(ctx context.Context, dir, branch string) bool {
	_, ok := probeGit(ctx, dir, "branch", "-D", branch)
	return ok
}

// ListWorktrees returns git's own worktree listing, untransformed.
func ListWorktrees(ctx context.Context, dir string) (string, error) {
	return outputGit(ctx, dir, "worktree", "list")
}

// PruneWorktrees removes stale worktree bookkeeping and reports what was
// pruned.
func PruneWorktrees(ctx context.Context, dir string) (string, error) {
	return outputGit(ctx, dir, "worktree", "prune", "-v")
}

// Repo binds the package functions to one repository directory so the
// lifecycle controller can depend on a narrow interface instead of
// package-level functions.
type Repo struct {
	Dir string
}

// NewRepo returns a Repo rooted at dir.
func NewRepo(dir string) *Repo {
	return &Repo{Dir: dir}
}

func (r *Repo) VerifyRef(ctx context.Context, ref string) RefStatus {
	return VerifyRef(ctx, r.Dir, ref)
}

func (r *Repo) ResolveCommit(ctx context.Context, ref string) (string, error) {
	return ResolveCommit(ctx, r.Dir, ref)
}

func (r *Repo) BranchExists(ctx context.Context, branch string) bool {
	return BranchExists(ctx, r.Dir, branch)
}

// CurrentBranch takes an explicit dir because it runs inside worktrees,
// not the main repository.
func (r *Repo) CurrentBranch(ctx context.Context, dir string) string {
	return CurrentBranch(ctx, dir)
}

func (r *Repo) Upstream(ctx context.Context, branch string) string {
	return Upstream(ctx, r.Dir, branch)
}

func (r *Repo) SetUpstream(ctx context.Context, branch, ref string) error {
	return SetUpstream(ctx, r.Dir, branch, ref)
}

func (r *Repo) FetchQuiet(ctx context.Context, remote string) bool {
	return FetchQuiet(ctx, r.Dir, remote)
}

func (r *Repo) LocalBranches(ctx context.Context) []string {
	return LocalBranches(ctx, r.Dir)
}

func (r *Repo) AllBranches(ctx context.Context) []string {
	return AllBranches(ctx, r.Dir)
}

func (r *Repo) AddWorktree(ctx context.Context, path, branch string) error {
	return AddWorktree(ctx, r.Dir, path, branch)
}

func (r *Repo) AddWorktreeNewBranch(ctx context.Context, path, branch, startPoint string) error {
	return AddWorktreeNewBranch(ctx, r.Dir, path, branch, startPoint)
}

func (r *Repo) RemoveWorktree(ctx context.Context, path string) error {
	return RemoveWorktree(ctx, r.Dir, path)
}

func (r *Repo) DeleteBranch(ctx context.Context, branch string) bool {
	return DeleteBranch(ctx, r.Dir, branch)
}

func (r *Repo) ListWorktrees(ctx context.Context) (string, error) {
	return ListWorktrees(ctx, r.Dir)
}

func (r *Repo) PruneWorktrees(ctx context.Context) (string, error) {
	return PruneWorktrees(ctx, r.Dir)
}
