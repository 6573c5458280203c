package worktree

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/boskcli/bosk/internal/log"
	"github.com/boskcli/bosk/internal/resolve"
	"github.com/boskcli/bosk/internal/setup"
	"github.com/boskcli/bosk/internal/ui"
)

// GitOps is the slice of git behavior the controller needs. *git.Repo
// satisfies it; tests substitute fakes.
type GitOps interface {
	ResolveCommit(ctx context.Context, ref string) (string, error)
	BranchExists(ctx context.Context, branch string) bool
	CurrentBranch(ctx context.Context, dir string) string
	Upstream(ctx context.Context, branch string) string
	SetUpstream(ctx context.Context, branch, ref string) error
	FetchQuiet(ctx context.Context, remote string) bool
	AllBranches(ctx context.Context) []string
	AddWorktree(ctx context.Context, path, branch string) error
	AddWorktreeNewBranch(ctx context.Context, path, branch, startPoint string) error
	RemoveWorktree(ctx context.Context, path string) error
	DeleteBranch(ctx context.Context, branch string) bool
	ListWorktrees(ctx context.Context) (string, error)
	PruneWorktrees(ctx context.Context) (string, error)
}

// BranchResolver classifies a branch token. *resolve.Resolver satisfies it.
type BranchResolver interface {
	Resolve(ctx context.Context, token string) resolve.Resolution
}

// SetupRunner runs the per-project setup script. *setup.Runner satisfies it.
type SetupRunner interface {
	Run(ctx context.Context, worktreePath string, mode setup.Mode) error
}

// DetachedHead mirrors the git package marker; kept here so fakes don't
// need the git package.
const DetachedHead = "(detached)"

// Options configures a Controller.
type Options struct {
	// ProjectRoot is the repository top-level directory (from git, never
	// computed manually).
	ProjectRoot string

	// RootName is the directory name under ProjectRoot holding all
	// worktrees (e.g. ".worktrees").
	RootName string

	// Remote is the remote consulted for fetches and tracking.
	Remote string

	Git      GitOps
	Resolver BranchResolver
	Setup    SetupRunner
}

// Controller orchestrates the worktree lifecycle. All operations run
// strictly sequentially: later steps depend on the filesystem and ref
// state established by earlier ones.
type Controller struct {
	opts Options
}

// NewController creates a Controller.
func NewController(opts Options) *Controller {
	return &Controller{opts: opts}
}

// CreateResult describes a created or reused worktree.
type CreateResult struct {
	Path     string
	Branch   string
	Tracking string // upstream ref, empty when none
	Reused   bool   // path already existed; nothing was created
}

// Create resolves token and creates (or reuses) its worktree, then runs
// setup in the given mode.
//
// When setup fails the returned error is a *SetupError and the result is
// still non-nil: the worktree stays in place and the caller reports it
// before exiting non-zero.
func (c *Controller) Create(ctx context.Context, token, base string, mode setup.Mode) (*CreateResult, error) {
	l := log.FromContext(ctx)
	path := PathFor(c.opts.ProjectRoot, c.opts.RootName, token, c.opts.Remote)

	// Reuse path: skip resolution and creation entirely, but refresh the
	// tracking info for the final report.
	if _, err := os.Stat(path); err == nil {
		l.Infof("Worktree already exists, reusing %s", path)
		result := c.describe(ctx, path)
		result.Reused = true
		return c.runSetup(ctx, result, mode)
	}

	if err := c.prepare(ctx); err != nil {
		return nil, err
	}

	res := c.opts.Resolver.Resolve(ctx, token)
	l.Debug("resolved branch token", "token", token, "kind", res.Kind, "ref", res.FoundRef)

	branch, err := c.dispatch(ctx, res, path, base)
	if err != nil {
		return nil, err
	}

	result := &CreateResult{
		Path:     path,
		Branch:   branch,
		Tracking: c.opts.Git.Upstream(ctx, branch),
	}
	return c.runSetup(ctx, result, mode)
}

// prepare performs the one-time repository hygiene before a first
// creation: .gitignore entry, worktree root directory, remote fetch.
func (c *Controller) prepare(ctx context.Context) error {
	l := log.FromContext(ctx)

	added, err := EnsureGitignore(c.opts.ProjectRoot, c.opts.RootName)
	if err != nil {
		return err
	}
	if added {
		l.Infof("Added %s/ to .gitignore", c.opts.RootName)
	}

	root := filepath.Join(c.opts.ProjectRoot, c.opts.RootName)
	if err := os.MkdirAll(root, 0o755); err != nil {
		return fmt.Errorf("create worktree root: %w", err)
	}

	// Fetch failures are tolerated: creation proceeds on whatever refs
	// are already known locally.
	sp := ui.NewSpinner(fmt.Sprintf("Fetching %s…", c.opts.Remote))
	if !l.Quiet() {
		sp.Start()
	}
	ok := c.opts.Git.FetchQuiet(ctx, c.opts.Remote)
	sp.Stop()
	if !ok {
		l.Debug("fetch failed, continuing with local refs", "remote", c.opts.Remote)
	}

	return nil
}

// dispatch performs the git worktree creation for a resolution and
// returns the checked-out branch name.
func (c *Controller) dispatch(ctx context.Context, res resolve.Resolution, path, base string) (string, error) {
	g := c.opts.Git
	l := log.FromContext(ctx)

	switch res.Kind {
	case resolve.Remote:
		local := res.CleanName
		if g.BranchExists(ctx, local) {
			// Local branch already exists: check it out and attach
			// tracking only if none is configured yet.
			l.Infof("Checking out existing branch %s (remote: %s)", local, res.FoundRef)
			if err := g.AddWorktree(ctx, path, local); err != nil {
				return "", err
			}
			if g.Upstream(ctx, local) == "" {
				if err := g.SetUpstream(ctx, local, res.FoundRef); err != nil {
					return "", err
				}
			}
			return local, nil
		}

		l.Infof("Creating branch %s from %s", local, res.FoundRef)
		if err := g.AddWorktreeNewBranch(ctx, path, local, res.FoundRef); err != nil {
			return "", err
		}
		if err := g.SetUpstream(ctx, local, res.FoundRef); err != nil {
			return "", err
		}
		return local, nil

	case resolve.Local:
		l.Infof("Checking out existing local branch %s", res.FoundRef)
		if err := g.AddWorktree(ctx, path, res.FoundRef); err != nil {
			return "", err
		}
		return res.FoundRef, nil

	default: // resolve.New
		// Pin the base to a concrete commit before creating: the branch
		// starts from the object the user saw, not a moving ref.
		commit, err := g.ResolveCommit(ctx, base)
		if err != nil {
			return "", &BaseBranchMissingError{Base: base, Available: g.AllBranches(ctx)}
		}

		l.Infof("Creating new branch %s from %s (%.7s)", res.CleanName, base, commit)
		if err := g.AddWorktreeNewBranch(ctx, path, res.CleanName, commit); err != nil {
			return "", err
		}
		return res.CleanName, nil
	}
}

// runSetup triggers the setup collaborator and wraps its failure.
func (c *Controller) runSetup(ctx context.Context, result *CreateResult, mode setup.Mode) (*CreateResult, error) {
	if err := c.opts.Setup.Run(ctx, result.Path, mode); err != nil {
		return result, &SetupError{Path: result.Path, Err: err}
	}
	return result, nil
}

// describe reads branch and tracking info from an existing worktree.
func (c *Controller) describe(ctx context.Context, path string) *CreateResult {
	branch := c.opts.Git.CurrentBranch(ctx, path)
	result := &CreateResult{Path: path, Branch: branch}
	if branch != DetachedHead {
		result.Tracking = c.opts.Git.Upstream(ctx, branch)
	}
	return result
}

// RemoveResult describes a removed worktree.
type RemoveResult struct {
	Path          string
	Branch        string
	BranchDeleted bool
}

// Remove force-removes the worktree with the given directory name and
// then force-deletes its branch. Branch deletion is best effort and is
// never attempted for a detached head. Removal discards any uncommitted
// changes in the worktree.
func (c *Controller) Remove(ctx context.Context, name string) (*RemoveResult, error) {
	path := filepath.Join(c.opts.ProjectRoot, c.opts.RootName, name)

	if _, err := os.Stat(path); err != nil {
		listing, _ := c.opts.Git.ListWorktrees(ctx)
		return nil, &NotFoundError{
			Name:     name,
			Existing: c.existingNames(),
			Listing:  listing,
		}
	}

	// Capture the branch before removal; afterwards the checkout is gone.
	branch := c.opts.Git.CurrentBranch(ctx, path)

	if err := c.opts.Git.RemoveWorktree(ctx, path); err != nil {
		return nil, err
	}

	result := &RemoveResult{Path: path, Branch: branch}
	if branch != DetachedHead {
		result.BranchDeleted = c.opts.Git.DeleteBranch(ctx, branch)
	}
	return result, nil
}

// List returns git's worktree listing untransformed.
func (c *Controller) List(ctx context.Context) (string, error) {
	return c.opts.Git.ListWorktrees(ctx)
}

// Prune delegates to git worktree prune and reports what was removed.
func (c *Controller) Prune(ctx context.Context) (string, error) {
	return c.opts.Git.PruneWorktrees(ctx)
}

// existingNames lists the directory names currently under the worktree
// root, for "did you mean" suggestions.
func (c *Controller) existingNames() []string {
	entries, err := os.ReadDir(filepath.Join(c.opts.ProjectRoot, c.opts.RootName))
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names
}
