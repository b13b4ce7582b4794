// pattern: Imperative Shell

package editor

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"rustm/internal/logging"
)

// ErrNotConfigured means the editor command is blank.
var ErrNotConfigured = errors.New("editor command not configured")

// Launcher spawns the configured editor against a project path.
type Launcher struct {
	logger *logging.ScopedLogger
}

// NewLauncher creates a Launcher.
func NewLauncher(logger *logging.ScopedLogger) *Launcher {
	return &Launcher{logger: logger}
}

// Launch starts `command <args...> path` detached: the editor is spawned
// and released, never waited on, so the TUI keeps the terminal. Failures
// are reported to the caller as warnings, never as fatal errors.
func (l *Launcher) Launch(path, command string) error {
	program, args, err := splitCommand(command)
	if err != nil {
		return err
	}

	cmd := exec.Command(program, append(args, path)...)
	if err := cmd.Start(); err != nil {
		l.logger.Warn("editor launch failed", "command", command, "error", err)
		return fmt.Errorf("launch editor %q: %w", program, err)
	}

	l.logger.Info("editor launched", "command", command, "path", path)

	// Detach so the editor outlives us and we never collect its exit.
	return cmd.Process.Release()
}

// splitCommand tokenizes the configured editor command on whitespace.
// Deliberately not shell-quoting aware; the command is treated as an
// opaque program plus fixed arguments.
func splitCommand(command string) (string, []string, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return "", nil, ErrNotConfigured
	}
	return fields[0], fields[1:], nil
}
