//go:build integration

package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// resolvePath resolves symlinks in a path. Needed on macOS where /var is
// a symlink to /private/var.
func resolvePath(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("failed to resolve path %s: %v", path, err)
	}
	return resolved
}

// setupTestRepo creates a git repo with an initial commit on main in
// dir/name and returns its absolute path.
func setupTestRepo(t *testing.T, dir, name string) string {
	t.Helper()

	dir = resolvePath(t, dir)
	repoPath := filepath.Join(dir, name)
	if err := os.MkdirAll(repoPath, 0o755); err != nil {
		t.Fatalf("failed to create repo dir: %v", err)
	}

	runGitCommand(t, repoPath, "git", "init", "-b", "main")
	runGitCommand(t, repoPath, "git", "config", "user.email", "test@test.com")
	runGitCommand(t, repoPath, "git", "config", "user.name", "Test User")
	runGitCommand(t, repoPath, "git", "config", "commit.gpgsign", "false")

	readmePath := filepath.Join(repoPath, "README.md")
	if err := os.WriteFile(readmePath, []byte("# "+name+"\n"), 0o644); err != nil {
		t.Fatalf("failed to write README: %v", err)
	}
	runGitCommand(t, repoPath, "git", "add", "README.md")
	runGitCommand(t, repoPath, "git", "commit", "-m", "Initial commit")

	return repoPath
}

// setupTestRepoWithLocalOrigin creates a repo whose origin is a local
// bare repo, so fetch and remote-branch tests work offline. Returns the
// working repo path.
func setupTestRepoWithLocalOrigin(t *testing.T, dir, name string) string {
	t.Helper()

	dir = resolvePath(t, dir)
	barePath := filepath.Join(dir, name+".git")
	if err := os.MkdirAll(barePath, 0o755); err != nil {
		t.Fatalf("failed to create bare repo dir: %v", err)
	}
	runGitCommand(t, barePath, "git", "init", "--bare", "-b", "main")

	repoPath := setupTestRepo(t, dir, name)
	runGitCommand(t, repoPath, "git", "remote", "add", "origin", barePath)
	runGitCommand(t, repoPath, "git", "push", "-u", "origin", "main")

	return repoPath
}

// createRemoteOnlyBranch creates a branch on origin that the working
// repo knows only as a remote-tracking ref.
func createRemoteOnlyBranch(t *testing.T, repoPath, branch string) {
	t.Helper()

	runGitCommand(t, repoPath, "git", "branch", branch)
	runGitCommand(t, repoPath, "git", "push", "origin", branch)
	runGitCommand(t, repoPath, "git", "branch", "-D", branch)
	runGitCommand(t, repoPath, "git", "fetch", "origin")
}

// runGitCommand runs a command and fails the test on error.
func runGitCommand(t *testing.T, dir string, args ...string) string {
	t.Helper()

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("failed to run %v: %v\n%s", args, err, out)
	}
	return strings.TrimSpace(string(out))
}
