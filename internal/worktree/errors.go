package worktree

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

// BaseBranchMissingError reports that the base branch for a new branch
// does not exist. Its message carries the available branches and close
// matches so the diagnostic prints before the non-zero exit.
type BaseBranchMissingError struct {
	Base      string
	Available []string
}

func (e *BaseBranchMissingError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "base branch %q does not exist", e.Base)

	if suggestions := closestMatches(e.Base, e.Available, 3); len(suggestions) > 0 {
		fmt.Fprintf(&b, "\n\nDid you mean:\n")
		for _, s := range suggestions {
			fmt.Fprintf(&b, "  %s\n", s)
		}
	}
	if len(e.Available) > 0 {
		fmt.Fprintf(&b, "\nAvailable branches:\n")
		for _, br := range e.Available {
			fmt.Fprintf(&b, "  %s\n", br)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// NotFoundError reports a remove target that has no worktree on disk.
// The current worktree listing is embedded so it prints before exit.
type NotFoundError struct {
	Name     string
	Existing []string
	Listing  string
}

func (e *NotFoundError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "no worktree named %q", e.Name)

	if suggestions := closestMatches(e.Name, e.Existing, 3); len(suggestions) > 0 {
		fmt.Fprintf(&b, "\n\nDid you mean:\n")
		for _, s := range suggestions {
			fmt.Fprintf(&b, "  %s\n", s)
		}
	}
	if e.Listing != "" {
		fmt.Fprintf(&b, "\nCurrent worktrees:\n%s", e.Listing)
	}
	return strings.TrimRight(b.String(), "\n")
}

// SetupError reports a setup script failure. The worktree stays in
// place (creation is not rolled back), but the command exits non-zero.
type SetupError struct {
	Path string
	Err  error
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("setup failed in %s: %v (worktree left in place)", e.Path, e.Err)
}

func (e *SetupError) Unwrap() error { return e.Err }

// closestMatches ranks candidates by fuzzy similarity to input.
func closestMatches(input string, candidates []string, limit int) []string {
	matches := fuzzy.Find(input, candidates)
	if len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Str)
	}
	return out
}
