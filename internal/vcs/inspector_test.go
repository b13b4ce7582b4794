package vcs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"rustm/internal/logging"
	"rustm/internal/run"
)

func gitDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, ".git"), 0755); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestInspect_NotARepo(t *testing.T) {
	fake := run.NewFakeRunner()
	insp := NewGitInspector(fake, logging.NopLogger())

	status := insp.Inspect(context.Background(), t.TempDir())
	if status != StatusNotARepo {
		t.Errorf("status = %v, want %v", status, StatusNotARepo)
	}
	if len(fake.Calls()) != 0 {
		t.Error("no git command should run for a directory without .git")
	}
}

func TestInspect_Clean(t *testing.T) {
	dir := gitDir(t)
	fake := run.NewFakeRunner()
	fake.Script("git", run.Result{Stdout: "\n"})
	insp := NewGitInspector(fake, logging.NopLogger())

	if status := insp.Inspect(context.Background(), dir); status != StatusClean {
		t.Errorf("status = %v, want %v", status, StatusClean)
	}

	calls := fake.CallsFor("git")
	if len(calls) != 1 {
		t.Fatalf("expected 1 git call, got %d", len(calls))
	}
	if calls[0].String() != "git status --porcelain" {
		t.Errorf("unexpected command: %s", calls[0].String())
	}
	if calls[0].Dir != dir {
		t.Errorf("command dir = %q, want %q", calls[0].Dir, dir)
	}
}

func TestInspect_Dirty(t *testing.T) {
	dir := gitDir(t)
	fake := run.NewFakeRunner()
	fake.Script("git", run.Result{Stdout: "?? src/new.rs\n M src/main.rs\n"})
	insp := NewGitInspector(fake, logging.NopLogger())

	if status := insp.Inspect(context.Background(), dir); status != StatusDirty {
		t.Errorf("status = %v, want %v", status, StatusDirty)
	}
}

func TestInspect_SpawnFailureIsUnknown(t *testing.T) {
	dir := gitDir(t)
	fake := run.NewFakeRunner()
	fake.ScriptError("git", errors.New("git not installed"))
	insp := NewGitInspector(fake, logging.NopLogger())

	if status := insp.Inspect(context.Background(), dir); status != StatusUnknown {
		t.Errorf("status = %v, want %v", status, StatusUnknown)
	}
}

func TestInspect_NonZeroExitIsUnknown(t *testing.T) {
	dir := gitDir(t)
	fake := run.NewFakeRunner()
	fake.Script("git", run.Result{ExitCode: 128, Stderr: "fatal: not a git repository"})
	insp := NewGitInspector(fake, logging.NopLogger())

	if status := insp.Inspect(context.Background(), dir); status != StatusUnknown {
		t.Errorf("status = %v, want %v", status, StatusUnknown)
	}
}

func TestSetDefaultBranch(t *testing.T) {
	fake := run.NewFakeRunner()
	insp := NewGitInspector(fake, logging.NopLogger())

	if err := insp.SetDefaultBranch(context.Background(), "main"); err != nil {
		t.Fatalf("SetDefaultBranch failed: %v", err)
	}

	calls := fake.CallsFor("git")
	if len(calls) != 1 {
		t.Fatalf("expected 1 git call, got %d", len(calls))
	}
	want := "git config --global init.defaultBranch main"
	if calls[0].String() != want {
		t.Errorf("command = %q, want %q", calls[0].String(), want)
	}
}

func TestSetDefaultBranch_Failure(t *testing.T) {
	fake := run.NewFakeRunner()
	fake.Script("git", run.Result{ExitCode: 1, Stderr: "could not lock config file"})
	insp := NewGitInspector(fake, logging.NopLogger())

	if err := insp.SetDefaultBranch(context.Background(), "main"); err == nil {
		t.Error("expected error for non-zero git config exit")
	}
}

func TestStatusStrings(t *testing.T) {
	cases := []struct {
		status Status
		str    string
		marker string
	}{
		{StatusClean, "clean", ""},
		{StatusDirty, "dirty", "*"},
		{StatusNotARepo, "no-repo", ""},
		{StatusUnknown, "unknown", "?"},
	}
	for _, c := range cases {
		if got := c.status.String(); got != c.str {
			t.Errorf("%v.String() = %q, want %q", c.status, got, c.str)
		}
		if got := c.status.Marker(); got != c.marker {
			t.Errorf("%v.Marker() = %q, want %q", c.status, got, c.marker)
		}
	}
}
