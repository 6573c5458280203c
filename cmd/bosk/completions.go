package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/boskcli/bosk/internal/git"
)

// completeBranches provides local branch name completion for new.
func completeBranches(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	ctx := cmd.Context()
	root, err := git.TopLevel(ctx, workDir)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var matches []string
	for _, b := range git.LocalBranches(ctx, root) {
		if strings.HasPrefix(b, toComplete) {
			matches = append(matches, b)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

// completeWorktreeNames provides worktree directory name completion for
// remove.
func completeWorktreeNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	root, err := git.TopLevel(cmd.Context(), workDir)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	entries, err := os.ReadDir(filepath.Join(root, cfg.WorktreeRoot))
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var matches []string
	for _, e := range entries {
		if e.IsDir() && strings.HasPrefix(e.Name(), toComplete) {
			matches = append(matches, e.Name())
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}
