// Package worktree derives worktree locations and drives the worktree
// lifecycle: create/reuse, remove, list, and prune.
package worktree

import (
	"path/filepath"
	"strings"
)

// Name derives a filesystem-safe directory name from a branch token.
//
// One leading remote prefix ("<remote>/" or "remotes/<remote>/") is
// stripped, then every rune outside [A-Za-z0-9_-] becomes '-'. The
// result is a pure function of its inputs: the same token always maps
// to the same name. Distinct tokens that sanitize to the same name
// (e.g. "a/b" and "a-b") are not disambiguated; the second one reuses
// the first one's worktree.
func Name(token, remote string) string {
	prefix := remote + "/"
	if strings.HasPrefix(token, "remotes/"+prefix) {
		token = strings.TrimPrefix(token, "remotes/"+prefix)
	} else {
		token = strings.TrimPrefix(token, prefix)
	}

	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		default:
			return '-'
		}
	}, token)
}

// PathFor returns the worktree path for a token:
// <projectRoot>/<rootName>/<Name(token)>.
func PathFor(projectRoot, rootName, token, remote string) string {
	return filepath.Join(projectRoot, rootName, Name(token, remote))
}
