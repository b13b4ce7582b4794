// pattern: Imperative Shell

package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"rustm/internal/config"
)

// setupField identifies the focused field on the setup form.
type setupField int

const (
	fieldProjectsDir setupField = iota
	fieldEditorCmd
	setupFieldCount
)

// setupForm holds the state of the initial configuration form.
type setupForm struct {
	reason      config.SetupReason
	projectsDir textinput.Model
	editorCmd   textinput.Model
	focused     setupField
	errMsg      string
	saving      bool
}

func newSetupForm(cfg config.Config, reason config.SetupReason) setupForm {
	projectsDir := textinput.New()
	projectsDir.Placeholder = "~/projects"
	projectsDir.CharLimit = 256
	projectsDir.Width = 50
	projectsDir.SetValue(cfg.ProjectsDirectory)

	editorCmd := textinput.New()
	editorCmd.Placeholder = "code -n"
	editorCmd.CharLimit = 256
	editorCmd.Width = 50
	editorCmd.SetValue(cfg.EditorCmd)

	return setupForm{
		reason:      reason,
		projectsDir: projectsDir,
		editorCmd:   editorCmd,
	}
}

// focusCmd focuses the first field.
func (f *setupForm) focusCmd() tea.Cmd {
	f.focused = fieldProjectsDir
	return f.projectsDir.Focus()
}

// nextField advances focus with wrap-around.
func (f *setupForm) nextField() tea.Cmd {
	f.focused = (f.focused + 1) % setupFieldCount
	return f.syncFocus()
}

// prevField moves focus backwards with wrap-around.
func (f *setupForm) prevField() tea.Cmd {
	f.focused = (f.focused + setupFieldCount - 1) % setupFieldCount
	return f.syncFocus()
}

func (f *setupForm) syncFocus() tea.Cmd {
	if f.focused == fieldProjectsDir {
		f.editorCmd.Blur()
		return f.projectsDir.Focus()
	}
	f.projectsDir.Blur()
	return f.editorCmd.Focus()
}

// intro returns the message shown above the form.
func (f setupForm) intro() string {
	if f.reason == config.SetupIncompleteData {
		return "Configuration incomplete. Please re-enter the required fields."
	}
	return "Welcome! Let's set up rustm."
}

// apply writes the form values onto the configuration.
func (f setupForm) apply(cfg config.Config) config.Config {
	cfg.ProjectsDirectory = f.projectsDir.Value()
	cfg.EditorCmd = f.editorCmd.Value()
	return cfg
}
