package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"rustm/internal/config"
	"rustm/internal/logging"
	"rustm/internal/project"
	"rustm/internal/run"
	"rustm/internal/vcs"
)

var errTest = errors.New("test error")

// newTestModel builds a model over a real temp projects directory with fake
// process and VCS collaborators.
func newTestModel(t *testing.T) (Model, *vcs.MockInspector, *run.FakeRunner) {
	t.Helper()

	inspector := vcs.NewMockInspector()
	runner := run.NewFakeRunner()

	cfg := config.Config{
		ProjectsDirectory: t.TempDir(),
		EditorCmd:         "true",
		Theme:             "mocha",
	}
	deps := Deps{
		ConfigDir: t.TempDir(),
		Logs:      logging.NopProvider{},
		Runner:    runner,
		Inspector: inspector,
	}

	return NewModel(cfg, config.SetupNotNeeded, deps), inspector, runner
}

func TestNewModel_StartsOnList(t *testing.T) {
	m, _, _ := newTestModel(t)
	if m.Screen() != int(screenList) {
		t.Errorf("screen = %d, want list", m.Screen())
	}
	if m.Init() == nil {
		t.Error("Init() should return the initial scan command")
	}
}

func TestNewModel_SetupRequired(t *testing.T) {
	deps := Deps{
		ConfigDir: t.TempDir(),
		Logs:      logging.NopProvider{},
		Runner:    run.NewFakeRunner(),
		Inspector: vcs.NewMockInspector(),
	}

	for _, reason := range []config.SetupReason{config.SetupMissingFile, config.SetupIncompleteData} {
		m := NewModel(config.Config{}, reason, deps)
		if m.Screen() != int(screenSetup) {
			t.Errorf("reason %v: screen = %d, want setup", reason, m.Screen())
		}
		if m.Init() == nil {
			t.Errorf("reason %v: Init() should focus the setup form", reason)
		}
	}
}

func TestUpdate_ProjectsScanned(t *testing.T) {
	m, _, _ := newTestModel(t)

	projects := []project.Project{
		{Name: "alpha", Path: "/p/alpha", Status: vcs.StatusClean},
		{Name: "beta", Path: "/p/beta", Status: vcs.StatusDirty},
	}
	updated, _ := m.Update(projectsScannedMsg{projects: projects})
	m = updated.(Model)

	if m.scanning {
		t.Error("scanning should be cleared")
	}
	if len(m.Projects()) != 2 {
		t.Errorf("projects = %v", m.Projects())
	}
	if len(m.projectList.Items()) != 2 {
		t.Errorf("list items = %d, want 2", len(m.projectList.Items()))
	}
}

func TestUpdate_ScanRootErrorReturnsToSetup(t *testing.T) {
	m, _, _ := newTestModel(t)

	err := &project.RootError{Path: "/gone", Err: errTest}
	updated, _ := m.Update(projectsScannedMsg{err: err})
	m = updated.(Model)

	if m.Screen() != int(screenSetup) {
		t.Errorf("screen = %d, want setup after root error", m.Screen())
	}
	if m.setup.errMsg == "" {
		t.Error("setup form should carry the scan error")
	}
}

func TestUpdate_WindowSize(t *testing.T) {
	m, _, _ := newTestModel(t)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(Model)

	if m.width != 100 || m.height != 40 {
		t.Errorf("size = %dx%d, want 100x40", m.width, m.height)
	}
}

func TestUpdate_LogEntriesBounded(t *testing.T) {
	m, _, _ := newTestModel(t)

	for i := 0; i < maxLogLines+50; i++ {
		updated, _ := m.Update(LogEntryMsg{Entry: logging.Entry{Message: "line"}})
		m = updated.(Model)
	}

	if len(m.logLines) != maxLogLines {
		t.Errorf("logLines = %d, want bounded at %d", len(m.logLines), maxLogLines)
	}
}
