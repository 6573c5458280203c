//go:build integration

package main

import (
	"slices"
	"testing"

	"github.com/spf13/cobra"
)

// TestCompleteBranches tests branch name completion for the new command.
//
// Scenario: Repo has branches main and dev; user tab-completes `bosk new d`
// Expected: Only dev is offered, no file completion
func TestCompleteBranches(t *testing.T) {
	// Not parallel - modifies command globals

	tmpDir := t.TempDir()
	repoPath := setupTestRepo(t, tmpDir, "complete")
	runGitCommand(t, repoPath, "git", "branch", "dev")
	useRepo(t, repoPath)

	cmd := newNewCmd()
	cmd.SetContext(testContext(t))

	matches, directive := completeBranches(cmd, nil, "d")
	if !slices.Equal(matches, []string{"dev"}) {
		t.Errorf("matches = %v, want [dev]", matches)
	}
	if directive != cobra.ShellCompDirectiveNoFileComp {
		t.Errorf("directive = %v, want NoFileComp", directive)
	}

	matches, _ = completeBranches(cmd, nil, "")
	if !slices.Contains(matches, "main") || !slices.Contains(matches, "dev") {
		t.Errorf("matches = %v, want main and dev", matches)
	}
}

// TestCompleteBranches_OutsideRepo tests completion outside a repository.
//
// Scenario: User tab-completes `bosk new` outside any git repo
// Expected: No suggestions, no error
func TestCompleteBranches_OutsideRepo(t *testing.T) {
	// Not parallel - modifies command globals

	useRepo(t, resolvePath(t, t.TempDir()))

	cmd := newNewCmd()
	cmd.SetContext(testContext(t))

	matches, directive := completeBranches(cmd, nil, "")
	if len(matches) != 0 {
		t.Errorf("matches = %v, want none", matches)
	}
	if directive != cobra.ShellCompDirectiveNoFileComp {
		t.Errorf("directive = %v, want NoFileComp", directive)
	}
}

// TestCompleteWorktreeNames tests worktree name completion for remove.
//
// Scenario: Worktrees feature-x and spike exist; user tab-completes
// `bosk remove f`
// Expected: Only feature-x is offered
func TestCompleteWorktreeNames(t *testing.T) {
	// Not parallel - modifies command globals

	tmpDir := t.TempDir()
	repoPath := setupTestRepo(t, tmpDir, "completewt")
	useRepo(t, repoPath)

	for _, token := range []string{"feature/x", "spike"} {
		create := newNewCmd()
		create.SetContext(testContext(t))
		create.SetArgs([]string{token, "--no-setup"})
		if err := create.Execute(); err != nil {
			t.Fatalf("new command failed: %v", err)
		}
	}

	cmd := newRemoveCmd()
	cmd.SetContext(testContext(t))

	matches, _ := completeWorktreeNames(cmd, nil, "f")
	if !slices.Equal(matches, []string{"feature-x"}) {
		t.Errorf("matches = %v, want [feature-x]", matches)
	}
}
