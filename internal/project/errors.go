// pattern: Functional Core

package project

import (
	"fmt"
	"strings"
)

// RootError means the projects root itself could not be read. It is the
// only fatal discovery failure and signals a configuration-level problem
// the user must fix.
type RootError struct {
	Path string
	Err  error
}

func (e *RootError) Error() string {
	return fmt.Sprintf("projects directory unavailable: %s: %v", e.Path, e.Err)
}

func (e *RootError) Unwrap() error {
	return e.Err
}

// InputError rejects a creation request before any side effect.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string {
	return e.Reason
}

// GenerationError means the generation tool could not be spawned or exited
// non-zero. No Project is produced; a partial directory may remain on disk.
type GenerationError struct {
	ExitCode int
	Stderr   string
	Err      error // spawn failure, nil when the tool ran
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cargo new could not be run: %v", e.Err)
	}
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		return fmt.Sprintf("cargo new failed (exit code %d)", e.ExitCode)
	}
	return fmt.Sprintf("cargo new failed (exit code %d): %s", e.ExitCode, msg)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
