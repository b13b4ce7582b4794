package tui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"rustm/internal/config"
	"rustm/internal/editor"
	"rustm/internal/logging"
	"rustm/internal/project"
	"rustm/internal/run"
	"rustm/internal/vcs"
)

// screen selects which surface the TUI is showing.
type screen int

const (
	screenList    screen = iota // project list (default)
	screenSetup                 // initial configuration form
	screenCreate                // project creation form
	screenConfirm               // post-create "open in editor?" prompt
)

// maxLogLines bounds the log panel's in-memory history.
const maxLogLines = 500

// Deps bundles the collaborators injected into the model. Tests swap the
// runner and inspector for fakes.
type Deps struct {
	ConfigDir string
	Logs      logging.Provider
	Runner    run.Runner
	Inspector vcs.Inspector
}

// Model represents the TUI application state.
type Model struct {
	width  int
	height int
	styles *Styles

	cfg  config.Config
	deps Deps

	scanner  *project.Scanner
	launcher *editor.Launcher
	logger   *logging.ScopedLogger

	screen      screen
	projectList list.Model
	projects    []project.Project
	scanning    bool
	spinner     spinner.Model

	setup   setupForm
	form    createForm
	created *project.Project

	statusMsg string
	statusErr bool

	logPanelOpen bool
	logViewport  viewport.Model
	logReady     bool
	logLines     []string
}

// NewModel creates the TUI model. When reason says setup is required the
// model starts on the setup screen instead of the project list.
func NewModel(cfg config.Config, reason config.SetupReason, deps Deps) Model {
	styles := NewStyles(cfg.Theme)

	projectList := list.New([]list.Item{}, newProjectDelegate(styles), 0, 0)
	projectList.SetShowTitle(false)
	projectList.SetShowStatusBar(false)
	projectList.SetFilteringEnabled(false)
	projectList.SetShowHelp(false)

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(styles.flavor.Teal().Hex))

	m := Model{
		styles:      styles,
		cfg:         cfg,
		deps:        deps,
		scanner:     project.NewScanner(deps.Inspector, deps.Logs.For("scan")),
		launcher:    editor.NewLauncher(deps.Logs.For("editor")),
		logger:      deps.Logs.For("tui"),
		screen:      screenList,
		projectList: projectList,
		spinner:     sp,
	}

	if reason != config.SetupNotNeeded {
		m.screen = screenSetup
		m.setup = newSetupForm(cfg, reason)
	}

	return m
}

// Init returns the initial command to run.
func (m Model) Init() tea.Cmd {
	if m.screen == screenSetup {
		return m.setup.focusCmd()
	}
	return tea.Batch(m.scanProjects(), m.spinner.Tick)
}

// Projects returns the most recent scan results.
func (m Model) Projects() []project.Project {
	return m.projects
}

// Screen exposes the active screen for tests.
func (m Model) Screen() int {
	return int(m.screen)
}

// newCreator builds a Creator bound to the current projects directory.
func (m Model) newCreator() *project.Creator {
	return project.NewCreator(
		m.cfg.ProjectsDirectory,
		m.deps.Inspector,
		m.deps.Runner,
		m.deps.Logs.For("create"),
	)
}

// setStatus records a transient status-bar message.
func (m *Model) setStatus(msg string, isErr bool) {
	m.statusMsg = msg
	m.statusErr = isErr
}
