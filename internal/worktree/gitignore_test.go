package worktree

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEnsureGitignore_CreatesFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	added, err := EnsureGitignore(dir, ".worktrees")
	if err != nil {
		t.Fatal(err)
	}
	if !added {
		t.Error("added = false, want true")
	}

	data, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	if !strings.Contains(content, "# git worktrees") {
		t.Errorf("missing comment line in %q", content)
	}
	if !strings.Contains(content, ".worktrees/\n") {
		t.Errorf("missing entry line in %q", content)
	}
}

func TestEnsureGitignore_AppendsToExisting(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	existing := "node_modules/\n*.log"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(existing), 0o644); err != nil {
		t.Fatal(err)
	}

	added, err := EnsureGitignore(dir, ".worktrees")
	if err != nil {
		t.Fatal(err)
	}
	if !added {
		t.Error("added = false, want true")
	}

	data, _ := os.ReadFile(filepath.Join(dir, ".gitignore"))
	content := string(data)
	if !strings.HasPrefix(content, "node_modules/\n*.log\n") {
		t.Errorf("existing content mangled: %q", content)
	}
	if !strings.HasSuffix(content, "# git worktrees\n.worktrees/\n") {
		t.Errorf("block not appended: %q", content)
	}
}

func TestEnsureGitignore_Idempotent(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	if _, err := EnsureGitignore(dir, ".worktrees"); err != nil {
		t.Fatal(err)
	}
	first, _ := os.ReadFile(filepath.Join(dir, ".gitignore"))

	added, err := EnsureGitignore(dir, ".worktrees")
	if err != nil {
		t.Fatal(err)
	}
	if added {
		t.Error("second run added = true, want false")
	}

	second, _ := os.ReadFile(filepath.Join(dir, ".gitignore"))
	if string(first) != string(second) {
		t.Errorf("second run changed the file:\nfirst:  %q\nsecond: %q", first, second)
	}
}

func TestEnsureGitignore_RecognizesBareEntry(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	// Entry without trailing slash still counts.
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(".worktrees\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	added, err := EnsureGitignore(dir, ".worktrees")
	if err != nil {
		t.Fatal(err)
	}
	if added {
		t.Error("added = true for already-ignored root")
	}
}

func TestEnsureGitignore_IgnoresSubstringMatches(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	// A line merely containing the name is not an entry for it.
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("old.worktrees/backup\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	added, err := EnsureGitignore(dir, ".worktrees")
	if err != nil {
		t.Fatal(err)
	}
	if !added {
		t.Error("added = false, want true for substring-only match")
	}
}
