package worktree

import (
	"path/filepath"
	"regexp"
	"testing"
)

func TestName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		token string
		want  string
	}{
		{"main", "main"},
		{"feature/auth", "feature-auth"},
		{"origin/feature/auth", "feature-auth"},
		{"remotes/origin/feature/auth", "feature-auth"},
		{"fix_underscore", "fix_underscore"},
		{"release-2.0", "release-2-0"},
		{"weird branch!name", "weird-branch-name"},
		{"ünicode/bränch", "-nicode-br-nch"},
		{"UPPER/Case", "UPPER-Case"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			t.Parallel()
			if got := Name(tt.token, "origin"); got != tt.want {
				t.Errorf("Name(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}

func TestName_Pure(t *testing.T) {
	t.Parallel()

	for range 3 {
		if got := Name("feature/auth", "origin"); got != "feature-auth" {
			t.Fatalf("Name not stable: got %q", got)
		}
	}
}

func TestName_OutputAlphabet(t *testing.T) {
	t.Parallel()

	safe := regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	tokens := []string{"a/b/c", "x.y", "héllo", "sp ace", "origin/f/1"}
	for _, token := range tokens {
		if got := Name(token, "origin"); !safe.MatchString(got) {
			t.Errorf("Name(%q) = %q, contains unsafe characters", token, got)
		}
	}
}

func TestName_RemotePrefixRoundTrip(t *testing.T) {
	t.Parallel()

	a := Name("origin/feature/auth", "origin")
	b := Name("feature/auth", "origin")
	if a != b || a != "feature-auth" {
		t.Errorf("round trip broken: %q vs %q", a, b)
	}
}

func TestPathFor(t *testing.T) {
	t.Parallel()

	got := PathFor("/repo", ".worktrees", "origin/feature/auth", "origin")
	want := filepath.Join("/repo", ".worktrees", "feature-auth")
	if got != want {
		t.Errorf("PathFor = %q, want %q", got, want)
	}
}
