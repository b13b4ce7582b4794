// pattern: Imperative Shell

package vcs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"rustm/internal/logging"
	"rustm/internal/run"
)

// Inspector answers version-control questions about a directory.
// Inspect is total: every internal failure degrades to StatusUnknown so a
// single unreadable repository can never fail a whole listing.
type Inspector interface {
	Inspect(ctx context.Context, dir string) Status
	SetDefaultBranch(ctx context.Context, branch string) error
}

// GitInspector implements Inspector on top of the git CLI.
type GitInspector struct {
	runner run.Runner
	logger *logging.ScopedLogger
}

// NewGitInspector creates a git-backed inspector.
func NewGitInspector(runner run.Runner, logger *logging.ScopedLogger) *GitInspector {
	return &GitInspector{runner: runner, logger: logger}
}

// Inspect reports the repository status of dir. A missing .git entry means
// StatusNotARepo; `git status --porcelain` output decides clean vs dirty
// (untracked files count as dirty); any failure maps to StatusUnknown with
// the cause logged at WARN.
func (g *GitInspector) Inspect(ctx context.Context, dir string) Status {
	if _, err := os.Stat(filepath.Join(dir, ".git")); err != nil {
		return StatusNotARepo
	}

	res, err := g.runner.Run(ctx, dir, "git", "status", "--porcelain")
	if err != nil {
		g.logger.Warn("git status failed", "dir", dir, "error", err)
		return StatusUnknown
	}
	if !res.Success() {
		g.logger.Warn("git status exited non-zero",
			"dir", dir, "exit_code", res.ExitCode, "stderr", strings.TrimSpace(res.Stderr))
		return StatusUnknown
	}

	if strings.TrimSpace(res.Stdout) == "" {
		return StatusClean
	}
	return StatusDirty
}

// SetDefaultBranch writes git's global init.defaultBranch setting.
// Callers treat this as best-effort: the returned error is for logging
// only and must never gate an operation.
func (g *GitInspector) SetDefaultBranch(ctx context.Context, branch string) error {
	res, err := g.runner.Run(ctx, "", "git", "config", "--global", "init.defaultBranch", branch)
	if err != nil {
		g.logger.Warn("unable to run git to set default branch", "error", err)
		return err
	}
	if !res.Success() {
		g.logger.Warn("git config exited non-zero",
			"exit_code", res.ExitCode, "stderr", strings.TrimSpace(res.Stderr))
		return &configError{exitCode: res.ExitCode, stderr: res.Stderr}
	}
	g.logger.Debug("global default branch ensured", "branch", branch)
	return nil
}

type configError struct {
	exitCode int
	stderr   string
}

func (e *configError) Error() string {
	msg := strings.TrimSpace(e.stderr)
	if msg == "" {
		return "git config failed"
	}
	return "git config failed: " + msg
}
