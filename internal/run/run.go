// pattern: Imperative Shell

package run

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// Result captures the outcome of an external command invocation.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Success returns true if the command ran and exited zero.
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// Runner executes external commands. Implementations must distinguish
// between a command that could not be spawned (returned error) and one
// that ran but exited non-zero (nil error, Result.ExitCode != 0).
type Runner interface {
	Run(ctx context.Context, dir string, name string, args ...string) (Result, error)
}

// ExecRunner runs commands via os/exec.
type ExecRunner struct{}

// NewExecRunner creates a Runner backed by real subprocesses.
func NewExecRunner() ExecRunner {
	return ExecRunner{}
}

// Run executes the command in dir (or the process working directory when
// dir is empty) and waits for it to exit. The context cancels the child.
func (ExecRunner) Run(ctx context.Context, dir string, name string, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if dir != "" {
		cmd.Dir = dir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		// Spawn failure: binary missing, permission denied, context cancelled.
		res.ExitCode = -1
		return res, err
	}

	return res, nil
}
