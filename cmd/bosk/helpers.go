package main

import (
	"context"

	"github.com/boskcli/bosk/internal/git"
	"github.com/boskcli/bosk/internal/resolve"
	"github.com/boskcli/bosk/internal/setup"
	"github.com/boskcli/bosk/internal/worktree"
)

// newController wires a lifecycle controller for the repository
// containing the working directory. Fails when run outside a git repo;
// no core logic runs in that case.
func newController(ctx context.Context) (*worktree.Controller, error) {
	root, err := git.TopLevel(ctx, workDir)
	if err != nil {
		return nil, err
	}

	repo := git.NewRepo(root)
	return worktree.NewController(worktree.Options{
		ProjectRoot: root,
		RootName:    cfg.WorktreeRoot,
		Remote:      cfg.Remote,
		Git:         repo,
		Resolver:    resolve.NewResolver(cfg.Remote, repo),
		Setup:       setup.NewRunner(),
	}), nil
}
