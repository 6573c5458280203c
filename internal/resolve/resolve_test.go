package resolve

import (
	"context"
	"testing"

	"github.com/boskcli/bosk/internal/git"
)

// fakeProber records probe order and answers from a fixed ref set.
type fakeProber struct {
	refs   map[string]git.RefStatus
	probed []string
}

func (f *fakeProber) VerifyRef(_ context.Context, ref string) git.RefStatus {
	f.probed = append(f.probed, ref)
	if status, ok := f.refs[ref]; ok {
		return status
	}
	return git.RefNotFound
}

func TestResolve_Kinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		token     string
		refs      map[string]git.RefStatus
		wantKind  Kind
		wantRef   string
		wantClean string
	}{
		{
			name:      "bare token matches remote",
			token:     "feature/x",
			refs:      map[string]git.RefStatus{"refs/remotes/origin/feature/x": git.RefFound},
			wantKind:  Remote,
			wantRef:   "origin/feature/x",
			wantClean: "feature/x",
		},
		{
			name:      "origin-prefixed token matches remote",
			token:     "origin/hotfix",
			refs:      map[string]git.RefStatus{"refs/remotes/origin/hotfix": git.RefFound},
			wantKind:  Remote,
			wantRef:   "origin/hotfix",
			wantClean: "hotfix",
		},
		{
			name:      "remotes/origin-prefixed token matches remote",
			token:     "remotes/origin/hotfix",
			refs:      map[string]git.RefStatus{"refs/remotes/origin/hotfix": git.RefFound},
			wantKind:  Remote,
			wantRef:   "origin/hotfix",
			wantClean: "hotfix",
		},
		{
			name:      "local branch only",
			token:     "feature/y",
			refs:      map[string]git.RefStatus{"refs/heads/feature/y": git.RefFound},
			wantKind:  Local,
			wantRef:   "feature/y",
			wantClean: "feature/y",
		},
		{
			name:      "nothing matches",
			token:     "brand-new",
			refs:      nil,
			wantKind:  New,
			wantRef:   "",
			wantClean: "brand-new",
		},
		{
			name:      "probe error counts as not found",
			token:     "feature/z",
			refs:      map[string]git.RefStatus{"refs/remotes/origin/feature/z": git.RefProbeError},
			wantKind:  New,
			wantRef:   "",
			wantClean: "feature/z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := NewResolver("origin", &fakeProber{refs: tt.refs})
			got := r.Resolve(context.Background(), tt.token)

			if got.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", got.Kind, tt.wantKind)
			}
			if got.FoundRef != tt.wantRef {
				t.Errorf("FoundRef = %q, want %q", got.FoundRef, tt.wantRef)
			}
			if got.CleanName != tt.wantClean {
				t.Errorf("CleanName = %q, want %q", got.CleanName, tt.wantClean)
			}
		})
	}
}

func TestResolve_CleanNameNeverPrefixed(t *testing.T) {
	t.Parallel()

	tokens := []string{
		"origin/a", "origin/feature/x", "remotes/origin/b", "origin/origin-lookalike",
	}
	for _, token := range tokens {
		r := NewResolver("origin", &fakeProber{})
		got := r.Resolve(context.Background(), token)
		if len(got.CleanName) >= 7 && got.CleanName[:7] == "origin/" {
			t.Errorf("Resolve(%q).CleanName = %q, still remote-prefixed", token, got.CleanName)
		}
	}
}

func TestResolve_RemoteProbedBeforeLocal(t *testing.T) {
	t.Parallel()

	// Branch exists both remotely and locally: remote must win, and the
	// remote probe must happen strictly first.
	prober := &fakeProber{refs: map[string]git.RefStatus{
		"refs/remotes/origin/both": git.RefFound,
		"refs/heads/both":          git.RefFound,
	}}
	r := NewResolver("origin", prober)

	got := r.Resolve(context.Background(), "both")
	if got.Kind != Remote {
		t.Fatalf("Kind = %v, want Remote", got.Kind)
	}
	if len(prober.probed) == 0 || prober.probed[0] != "refs/remotes/origin/both" {
		t.Errorf("probe order = %v, want remote candidate first", prober.probed)
	}
}

func TestResolve_LocalNotProbedWhenRemoteFound(t *testing.T) {
	t.Parallel()

	prober := &fakeProber{refs: map[string]git.RefStatus{
		"refs/remotes/origin/x": git.RefFound,
	}}
	NewResolver("origin", prober).Resolve(context.Background(), "x")

	if len(prober.probed) != 1 {
		t.Errorf("probed %v, want only the remote candidate", prober.probed)
	}
}

func TestResolve_CustomRemote(t *testing.T) {
	t.Parallel()

	prober := &fakeProber{refs: map[string]git.RefStatus{
		"refs/remotes/upstream/dev": git.RefFound,
	}}
	got := NewResolver("upstream", prober).Resolve(context.Background(), "upstream/dev")

	if got.Kind != Remote || got.FoundRef != "upstream/dev" || got.CleanName != "dev" {
		t.Errorf("Resolve = %+v, want Remote upstream/dev dev", got)
	}
}
