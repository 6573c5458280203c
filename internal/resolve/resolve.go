// Package resolve decides how a user-supplied branch token maps onto
// git state: an existing remote branch, an existing local branch, or a
// branch that must be created from a base.
package resolve

import (
	"context"
	"strings"

	"github.com/boskcli/bosk/internal/git"
)

// Kind classifies a resolution. The three kinds are mutually exclusive
// and exhaustive.
type Kind int

const (
	// Remote means the token matched a branch on the remote.
	Remote Kind = iota
	// Local means the token matched an existing local branch only.
	Local
	// New means nothing matched; a branch must be created from a base.
	New
)

func (k Kind) String() string {
	switch k {
	case Remote:
		return "remote"
	case Local:
		return "local"
	default:
		return "new"
	}
}

// Resolution is the result of resolving a branch token.
type Resolution struct {
	Kind Kind

	// FoundRef is the ref that matched (e.g. "origin/feature/x"), empty
	// when Kind is New.
	FoundRef string

	// CleanName is the token with any remote prefix stripped. It is
	// always the canonical local branch name to create or check out.
	CleanName string
}

// RefProber probes whether a ref exists. *git.Repo satisfies it; tests
// substitute fakes.
type RefProber interface {
	VerifyRef(ctx context.Context, ref string) git.RefStatus
}

// Resolver resolves branch tokens against one remote.
type Resolver struct {
	remote string
	prober RefProber
}

// NewResolver creates a Resolver for the given remote name (usually "origin").
func NewResolver(remote string, prober RefProber) *Resolver {
	return &Resolver{remote: remote, prober: prober}
}

// Resolve classifies token.
//
// The remote candidate is probed strictly before the local ref: a branch
// that exists in both places resolves as Remote so tracking metadata
// gets attached. Probe failures count as "does not exist" — resolution
// is best effort and never fails.
func (r *Resolver) Resolve(ctx context.Context, token string) Resolution {
	remoteCandidate, cleanName := r.normalize(token)

	if r.exists(ctx, "refs/remotes/"+remoteCandidate) {
		return Resolution{Kind: Remote, FoundRef: remoteCandidate, CleanName: cleanName}
	}
	if r.exists(ctx, "refs/heads/"+cleanName) {
		return Resolution{Kind: Local, FoundRef: cleanName, CleanName: cleanName}
	}
	return Resolution{Kind: New, CleanName: cleanName}
}

// normalize splits a token into the remote ref candidate and the clean
// local branch name. "origin/x" and "remotes/origin/x" both yield
// candidate "origin/x" and clean name "x"; a bare token is tried under
// the remote as-is.
func (r *Resolver) normalize(token string) (remoteCandidate, cleanName string) {
	remotePrefix := r.remote + "/"
	switch {
	case strings.HasPrefix(token, remotePrefix):
		return token, strings.TrimPrefix(token, remotePrefix)
	case strings.HasPrefix(token, "remotes/"+remotePrefix):
		candidate := strings.TrimPrefix(token, "remotes/")
		return candidate, strings.TrimPrefix(candidate, remotePrefix)
	default:
		return remotePrefix + token, token
	}
}

func (r *Resolver) exists(ctx context.Context, ref string) bool {
	return r.prober.VerifyRef(ctx, ref) == git.RefFound
}
