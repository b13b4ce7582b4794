// pattern: Imperative Shell

package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"rustm/internal/config"
	"rustm/internal/logging"
	"rustm/internal/project"
)

const (
	scanTimeout   = 10 * time.Second
	createTimeout = 60 * time.Second
	statusLinger  = 4 * time.Second
)

// projectsScannedMsg delivers a completed scan.
type projectsScannedMsg struct {
	projects []project.Project
	err      error
}

// projectCreatedMsg delivers the outcome of a creation.
type projectCreatedMsg struct {
	project project.Project
	err     error
}

// editorLaunchedMsg delivers the outcome of an editor launch.
type editorLaunchedMsg struct {
	err error
}

// configSavedMsg delivers the outcome of saving setup input.
type configSavedMsg struct {
	cfg config.Config
	err error
}

// clearStatusMsg clears the status bar after a delay.
type clearStatusMsg struct{}

// RootChangedMsg is sent from outside the program when the projects root
// changes on disk.
type RootChangedMsg struct{}

// LogEntryMsg forwards one log entry to the log panel.
type LogEntryMsg struct {
	Entry logging.Entry
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case spinner.TickMsg:
		if m.scanning || m.form.submitting || m.setup.saving {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case projectsScannedMsg:
		m.scanning = false
		if msg.err != nil {
			m.logger.Warn("scan failed", "error", msg.err)
			var rootErr *project.RootError
			if errors.As(msg.err, &rootErr) {
				// Configuration-shaped problem: re-prompt for a corrected
				// projects directory instead of failing the whole session.
				m.screen = screenSetup
				m.setup = newSetupForm(m.cfg, config.SetupIncompleteData)
				m.setup.errMsg = msg.err.Error()
				return m, m.setup.focusCmd()
			}
			m.setStatus(msg.err.Error(), true)
			return m, m.clearStatusAfter()
		}
		m.projects = msg.projects
		items := make([]list.Item, len(msg.projects))
		for i, p := range msg.projects {
			items[i] = projectItem{project: p}
		}
		return m, m.projectList.SetItems(items)

	case projectCreatedMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.form.errMsg = msg.err.Error()
			return m, nil
		}
		created := msg.project
		m.created = &created
		m.screen = screenConfirm
		m.setStatus("Project created at "+created.Path, false)
		return m, m.clearStatusAfter()

	case editorLaunchedMsg:
		if msg.err != nil {
			// The project itself is fine; only the launch failed.
			m.setStatus("Editor launch failed: "+msg.err.Error(), true)
		} else {
			m.setStatus("Editor launched", false)
		}
		return m, m.clearStatusAfter()

	case configSavedMsg:
		m.setup.saving = false
		if msg.err != nil {
			m.setup.errMsg = msg.err.Error()
			return m, nil
		}
		m.cfg = msg.cfg
		m.styles = NewStyles(m.cfg.Theme)
		m.screen = screenList
		m.scanning = true
		m.logger.Info("configuration saved")
		return m, tea.Batch(m.scanProjects(), m.spinner.Tick)

	case RootChangedMsg:
		if m.screen == screenList && !m.scanning {
			m.scanning = true
			return m, tea.Batch(m.scanProjects(), m.spinner.Tick)
		}
		return m, nil

	case LogEntryMsg:
		m.logLines = append(m.logLines, msg.Entry.String())
		if len(m.logLines) > maxLogLines {
			m.logLines = m.logLines[len(m.logLines)-maxLogLines:]
		}
		if m.logPanelOpen && m.logReady {
			m.logViewport.SetContent(strings.Join(m.logLines, "\n"))
			m.logViewport.GotoBottom()
		}
		return m, nil

	case clearStatusMsg:
		m.statusMsg = ""
		m.statusErr = false
		return m, nil
	}

	return m, nil
}

// updateKey dispatches key presses by screen.
func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.screen {
	case screenSetup:
		return m.updateSetupKey(msg)
	case screenCreate:
		return m.updateCreateKey(msg)
	case screenConfirm:
		return m.updateConfirmKey(msg)
	default:
		return m.updateListKey(msg)
	}
}

func (m Model) updateListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "n":
		m.screen = screenCreate
		m.form = newCreateForm()
		return m, m.form.focusCmd()

	case "r":
		if !m.scanning {
			m.scanning = true
			return m, tea.Batch(m.scanProjects(), m.spinner.Tick)
		}
		return m, nil

	case "enter":
		if item, ok := m.projectList.SelectedItem().(projectItem); ok {
			return m, m.launchEditor(item.project.Path)
		}
		return m, nil

	case "l":
		m.logPanelOpen = !m.logPanelOpen
		m.resize()
		return m, nil
	}

	var cmd tea.Cmd
	m.projectList, cmd = m.projectList.Update(msg)
	return m, cmd
}

func (m Model) updateSetupKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.setup.saving {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		// Setup cannot be skipped; abandoning it exits the app.
		return m, tea.Quit

	case "tab", "down":
		return m, m.setup.nextField()

	case "shift+tab", "up":
		return m, m.setup.prevField()

	case "enter":
		cfg := m.setup.apply(m.cfg)
		if cfg.EditorCmd == "" {
			m.setup.errMsg = "editor command cannot be empty"
			return m, nil
		}
		if err := config.ValidateProjectsDir(cfg.ProjectsDirectory); err != nil {
			m.setup.errMsg = err.Error()
			return m, nil
		}
		m.setup.errMsg = ""
		m.setup.saving = true
		return m, tea.Batch(m.saveConfig(cfg), m.spinner.Tick)
	}

	var cmd tea.Cmd
	if m.setup.focused == fieldProjectsDir {
		m.setup.projectsDir, cmd = m.setup.projectsDir.Update(msg)
	} else {
		m.setup.editorCmd, cmd = m.setup.editorCmd.Update(msg)
	}
	return m, cmd
}

func (m Model) updateCreateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form.submitting {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.screen = screenList
		return m, nil

	case "tab", "down":
		m.form.nextField()
		return m, nil

	case "shift+tab":
		m.form.prevField()
		return m, nil

	case "up":
		if m.form.focused == fieldName {
			m.form.prevField()
		} else {
			m.form.cycle(-1)
		}
		return m, nil

	case "left":
		if m.form.focused != fieldName {
			m.form.cycle(-1)
			return m, nil
		}

	case "right":
		if m.form.focused != fieldName {
			m.form.cycle(1)
			return m, nil
		}

	case "enter":
		if !m.form.validate() {
			return m, nil
		}
		m.form.submitting = true
		return m, tea.Batch(m.createProject(m.form.request()), m.spinner.Tick)
	}

	if m.form.focused == fieldName {
		var cmd tea.Cmd
		m.form.name, cmd = m.form.name.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		path := ""
		if m.created != nil {
			path = m.created.Path
		}
		m.created = nil
		m.screen = screenList
		m.scanning = true
		cmds := []tea.Cmd{m.scanProjects(), m.spinner.Tick}
		if path != "" {
			cmds = append(cmds, m.launchEditor(path))
		}
		return m, tea.Batch(cmds...)

	case "n", "esc":
		m.created = nil
		m.screen = screenList
		m.scanning = true
		return m, tea.Batch(m.scanProjects(), m.spinner.Tick)
	}
	return m, nil
}

// resize recomputes component sizes from the window dimensions.
func (m *Model) resize() {
	contentHeight := m.height - 6 // header, status bar, padding
	logHeight := 0
	if m.logPanelOpen {
		logHeight = m.height / 3
		contentHeight -= logHeight
	}
	if contentHeight < 3 {
		contentHeight = 3
	}
	m.projectList.SetSize(m.width-4, contentHeight)

	if m.logPanelOpen {
		if logHeight < 3 {
			logHeight = 3
		}
		if !m.logReady {
			m.logViewport = viewport.New(m.width-4, logHeight-1)
			m.logReady = true
		} else {
			m.logViewport.Width = m.width - 4
			m.logViewport.Height = logHeight - 1
		}
		m.logViewport.SetContent(strings.Join(m.logLines, "\n"))
		m.logViewport.GotoBottom()
	}
}

// scanProjects returns a command that scans the projects directory.
func (m Model) scanProjects() tea.Cmd {
	scanner := m.scanner
	root := m.cfg.ProjectsDirectory
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), scanTimeout)
		defer cancel()
		projects, err := scanner.Scan(ctx, root)
		return projectsScannedMsg{projects: projects, err: err}
	}
}

// createProject returns a command that runs the creation orchestration.
func (m Model) createProject(req project.CreateRequest) tea.Cmd {
	creator := m.newCreator()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), createTimeout)
		defer cancel()
		p, err := creator.Create(ctx, req)
		return projectCreatedMsg{project: p, err: err}
	}
}

// launchEditor returns a command that spawns the configured editor.
func (m Model) launchEditor(path string) tea.Cmd {
	launcher := m.launcher
	cmd := m.cfg.EditorCmd
	return func() tea.Msg {
		return editorLaunchedMsg{err: launcher.Launch(path, cmd)}
	}
}

// saveConfig returns a command that persists the configuration.
func (m Model) saveConfig(cfg config.Config) tea.Cmd {
	path := config.Path(m.deps.ConfigDir)
	return func() tea.Msg {
		return configSavedMsg{cfg: cfg, err: cfg.SaveTo(path)}
	}
}

// clearStatusAfter schedules the status bar to clear.
func (m Model) clearStatusAfter() tea.Cmd {
	return tea.Tick(statusLinger, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
