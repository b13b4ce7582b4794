// pattern: Imperative Shell

package project

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"rustm/internal/logging"
	"rustm/internal/run"
	"rustm/internal/vcs"
)

// defaultBranch is written to git's global init.defaultBranch before
// generation. Advisory only; failure never blocks creation.
const defaultBranch = "main"

// CreateRequest holds validated-on-use input for a single creation.
// Consumed exactly once.
type CreateRequest struct {
	Name         string
	Kind         Kind
	Edition      Edition
	OpenInEditor bool
}

// NewCreateRequest builds a request with default kind and edition.
func NewCreateRequest(name string) CreateRequest {
	return CreateRequest{
		Name:    name,
		Kind:    KindBinary,
		Edition: DefaultEdition,
	}
}

// Creator orchestrates project generation under a fixed root.
type Creator struct {
	root      string
	inspector vcs.Inspector
	runner    run.Runner
	logger    *logging.ScopedLogger
}

// NewCreator creates a Creator for the given projects root.
func NewCreator(root string, inspector vcs.Inspector, runner run.Runner, logger *logging.ScopedLogger) *Creator {
	return &Creator{
		root:      root,
		inspector: inspector,
		runner:    runner,
		logger:    logger,
	}
}

// Create validates the request, writes the global default-branch setting
// (best effort), runs `cargo new`, and returns the resulting Project.
//
// Failure semantics: validation problems return *InputError before any
// side effect; a generation failure returns *GenerationError and no
// Project (a partial directory, if any, is left on disk and logged); the
// default-branch step never contributes to the returned error.
func (c *Creator) Create(ctx context.Context, req CreateRequest) (Project, error) {
	if err := ValidateName(req.Name); err != nil {
		return Project{}, err
	}
	if req.Edition == "" {
		req.Edition = DefaultEdition
	}

	target := filepath.Join(c.root, req.Name)
	if _, err := os.Lstat(target); err == nil {
		return Project{}, &InputError{
			Reason: fmt.Sprintf("%q already exists under the projects directory", req.Name),
		}
	}

	c.logger.Info("creating project",
		"name", req.Name, "kind", req.Kind.String(), "edition", string(req.Edition))

	// Best effort; logged inside the inspector, discarded here.
	_ = c.inspector.SetDefaultBranch(ctx, defaultBranch)

	res, err := c.runner.Run(ctx, c.root,
		"cargo", "new", req.Kind.CargoFlag(), "--edition", string(req.Edition), req.Name)
	if err != nil {
		c.logger.Error("cargo new could not be run", "name", req.Name, "error", err)
		return Project{}, &GenerationError{ExitCode: res.ExitCode, Err: err}
	}
	if !res.Success() {
		c.logger.Error("cargo new failed",
			"name", req.Name, "exit_code", res.ExitCode, "stderr", res.Stderr)
		if _, statErr := os.Lstat(target); statErr == nil {
			// Policy: leftovers from a failed run are kept for the user
			// to examine, not removed.
			c.logger.Warn("partial project directory left on disk", "path", target)
		}
		return Project{}, &GenerationError{ExitCode: res.ExitCode, Stderr: res.Stderr}
	}

	// cargo new initializes a git repository, so ask the inspector
	// rather than assuming no repo.
	status := c.inspector.Inspect(ctx, target)

	c.logger.Info("project created", "name", req.Name, "path", target, "status", status.String())

	return Project{
		Name:   req.Name,
		Path:   target,
		Status: status,
	}, nil
}

// ValidateName checks the crate-name shape rules: non-blank, no
// whitespace, ASCII alphabetic first character, then ASCII alphanumerics,
// '_' or '-'. Collisions are checked separately against the root.
func ValidateName(name string) error {
	if len(name) == 0 {
		return &InputError{Reason: "project name cannot be blank"}
	}
	first := name[0]
	if !isASCIIAlpha(first) {
		return &InputError{Reason: "project name must start with an ASCII letter"}
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c == ' ' || c == '\t' {
			return &InputError{Reason: "project name cannot contain whitespace"}
		}
		if !isASCIIAlpha(c) && !isASCIIDigit(c) && c != '_' && c != '-' {
			return &InputError{
				Reason: fmt.Sprintf("project name cannot contain %q (letters, digits, '_' and '-' only)", c),
			}
		}
	}
	return nil
}

func isASCIIAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
