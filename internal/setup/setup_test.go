package setup

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/boskcli/bosk/internal/cmdutil"
)

func TestModeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		skip       bool
		explicit   string
		configured string
		want       Mode
	}{
		{name: "all empty", want: ModeDefault},
		{name: "skip wins over everything", skip: true, explicit: "x.sh", configured: "y.sh", want: ModeNone},
		{name: "explicit wins over configured", explicit: "x.sh", configured: "y.sh", want: Mode("x.sh")},
		{name: "configured alone", configured: "y.sh", want: Mode("y.sh")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ModeFor(tt.skip, tt.explicit, tt.configured); got != tt.want {
				t.Errorf("ModeFor(%v, %q, %q) = %q, want %q",
					tt.skip, tt.explicit, tt.configured, got, tt.want)
			}
		})
	}
}

func TestRun_NoneIsNoOp(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeScript(t, filepath.Join(dir, ".bosk", "setup.sh"), "exit 1")

	// Even with a failing script present, ModeNone never touches it.
	if err := NewRunner().Run(context.Background(), dir, ModeNone); err != nil {
		t.Errorf("Run = %v, want nil", err)
	}
}

func TestRun_DefaultWithoutScriptSucceeds(t *testing.T) {
	t.Parallel()

	if err := NewRunner().Run(context.Background(), t.TempDir(), ModeDefault); err != nil {
		t.Errorf("Run = %v, want nil when no script exists", err)
	}
}

func TestRun_DefaultDetectsCandidates(t *testing.T) {
	t.Parallel()

	for _, candidate := range DefaultCandidates {
		t.Run(candidate, func(t *testing.T) {
			t.Parallel()
			dir := t.TempDir()
			marker := filepath.Join(dir, "ran")
			writeScript(t, filepath.Join(dir, candidate), "touch "+marker)

			if err := NewRunner().Run(context.Background(), dir, ModeDefault); err != nil {
				t.Fatal(err)
			}
			if _, err := os.Stat(marker); err != nil {
				t.Errorf("script %s did not run: %v", candidate, err)
			}
		})
	}
}

func TestRun_ExplicitMissingScriptFails(t *testing.T) {
	t.Parallel()

	err := NewRunner().Run(context.Background(), t.TempDir(), Mode("nope.sh"))
	if err == nil {
		t.Fatal("Run = nil, want error for missing explicit script")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("err = %v", err)
	}
}

func TestRun_ExportsWorktreePath(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeScript(t, filepath.Join(dir, "env.sh"), `printf '%s' "$`+PathEnvVar+`" > seen`)

	if err := NewRunner().Run(context.Background(), dir, Mode("env.sh")); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "seen"))
	if err != nil {
		t.Fatal(err)
	}
	abs, _ := filepath.Abs(dir)
	if string(data) != abs {
		t.Errorf("%s = %q, want %q", PathEnvVar, data, abs)
	}
}

func TestRun_RunsInWorktreeDirectory(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeScript(t, filepath.Join(dir, "pwd.sh"), "pwd > where")

	if err := NewRunner().Run(context.Background(), dir, Mode("pwd.sh")); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "where")); err != nil {
		t.Errorf("script did not run in worktree dir: %v", err)
	}
}

func TestRun_FailingScriptReportsExitCode(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeScript(t, filepath.Join(dir, "fail.sh"), "exit 3")

	err := NewRunner().Run(context.Background(), dir, Mode("fail.sh"))
	if err == nil {
		t.Fatal("Run = nil, want error")
	}
	if code := cmdutil.ExitCode(err); code != 3 {
		t.Errorf("ExitCode = %d, want 3", code)
	}
}

func writeScript(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
}
