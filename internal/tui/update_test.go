package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"rustm/internal/config"
	"rustm/internal/project"
	"rustm/internal/vcs"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestListKeys_NewOpensCreateForm(t *testing.T) {
	m, _, _ := newTestModel(t)

	updated, cmd := m.Update(keyMsg("n"))
	m = updated.(Model)

	if m.Screen() != int(screenCreate) {
		t.Errorf("screen = %d, want create", m.Screen())
	}
	if cmd == nil {
		t.Error("should return focus command for the name input")
	}
}

func TestListKeys_RefreshStartsScan(t *testing.T) {
	m, _, _ := newTestModel(t)

	updated, cmd := m.Update(keyMsg("r"))
	m = updated.(Model)

	if !m.scanning {
		t.Error("scanning should be set")
	}
	if cmd == nil {
		t.Error("should return the scan command")
	}

	// A second refresh while one is in flight is a no-op.
	updated, cmd = m.Update(keyMsg("r"))
	m = updated.(Model)
	if cmd != nil {
		t.Error("refresh during scan should not start another")
	}
}

func TestListKeys_LogPanelToggle(t *testing.T) {
	m, _, _ := newTestModel(t)

	updated, _ := m.Update(keyMsg("l"))
	m = updated.(Model)
	if !m.logPanelOpen {
		t.Error("log panel should open")
	}

	updated, _ = m.Update(keyMsg("l"))
	m = updated.(Model)
	if m.logPanelOpen {
		t.Error("log panel should close")
	}
}

func TestListKeys_Quit(t *testing.T) {
	m, _, _ := newTestModel(t)

	for _, k := range []tea.KeyMsg{keyMsg("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(k)
		if cmd == nil {
			t.Fatalf("key %v should quit", k)
		}
		if msg := cmd(); msg != tea.Quit() {
			t.Errorf("key %v returned %v, want quit", k, msg)
		}
	}
}

func TestCreateKeys_EscCancels(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.screen = screenCreate
	m.form = newCreateForm()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)

	if m.Screen() != int(screenList) {
		t.Errorf("screen = %d, want list after esc", m.Screen())
	}
}

func TestCreateKeys_EnterRejectsInvalidName(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.screen = screenCreate
	m.form = newCreateForm()
	m.form.name.SetValue("1bad name")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if m.form.submitting {
		t.Error("invalid name must not submit")
	}
	if m.form.errMsg == "" {
		t.Error("validation error should be displayed")
	}
	if cmd != nil {
		t.Error("no command expected on validation failure")
	}
}

func TestCreateKeys_EnterSubmits(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.screen = screenCreate
	m.form = newCreateForm()
	m.form.name.SetValue("valid-name")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if !m.form.submitting {
		t.Error("submitting should be set")
	}
	if cmd == nil {
		t.Error("should return the creation command")
	}
}

func TestProjectCreated_MovesToConfirm(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.screen = screenCreate
	m.form = newCreateForm()
	m.form.submitting = true

	created := project.Project{Name: "web", Path: "/p/web", Status: vcs.StatusClean}
	updated, _ := m.Update(projectCreatedMsg{project: created})
	m = updated.(Model)

	if m.Screen() != int(screenConfirm) {
		t.Errorf("screen = %d, want confirm", m.Screen())
	}
	if m.created == nil || m.created.Name != "web" {
		t.Errorf("created = %+v", m.created)
	}
	if m.form.submitting {
		t.Error("submitting should be cleared")
	}
}

func TestProjectCreated_ErrorStaysOnForm(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.screen = screenCreate
	m.form = newCreateForm()
	m.form.submitting = true

	updated, _ := m.Update(projectCreatedMsg{err: &project.InputError{Reason: "taken"}})
	m = updated.(Model)

	if m.Screen() != int(screenCreate) {
		t.Errorf("screen = %d, want create on failure", m.Screen())
	}
	if m.form.errMsg != "taken" {
		t.Errorf("errMsg = %q", m.form.errMsg)
	}
}

func TestConfirmKeys_DeclineRescans(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.screen = screenConfirm
	created := project.Project{Name: "web", Path: "/p/web"}
	m.created = &created

	updated, cmd := m.Update(keyMsg("n"))
	m = updated.(Model)

	if m.Screen() != int(screenList) {
		t.Errorf("screen = %d, want list", m.Screen())
	}
	if m.created != nil {
		t.Error("created should be cleared")
	}
	if !m.scanning || cmd == nil {
		t.Error("decline should trigger a rescan")
	}
}

func TestConfirmKeys_AcceptLaunchesAndRescans(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.screen = screenConfirm
	created := project.Project{Name: "web", Path: "/p/web"}
	m.created = &created

	updated, cmd := m.Update(keyMsg("y"))
	m = updated.(Model)

	if m.Screen() != int(screenList) {
		t.Errorf("screen = %d, want list", m.Screen())
	}
	if !m.scanning || cmd == nil {
		t.Error("accept should rescan and launch")
	}
}

func TestEditorLaunched_FailureIsNonFatal(t *testing.T) {
	m, _, _ := newTestModel(t)

	updated, _ := m.Update(editorLaunchedMsg{err: errTest})
	m = updated.(Model)

	if !m.statusErr || !strings.Contains(m.statusMsg, "Editor launch failed") {
		t.Errorf("status = %q (err=%v)", m.statusMsg, m.statusErr)
	}
	if m.Screen() != int(screenList) {
		t.Error("launch failure must not change screens")
	}
}

func TestRootChanged_TriggersRescan(t *testing.T) {
	m, _, _ := newTestModel(t)

	updated, cmd := m.Update(RootChangedMsg{})
	m = updated.(Model)

	if !m.scanning || cmd == nil {
		t.Error("root change should trigger a scan")
	}

	// While a scan is in flight further notifications are ignored.
	updated, cmd = m.Update(RootChangedMsg{})
	if cmd != nil {
		t.Error("root change during scan should be a no-op")
	}
	_ = updated
}

func TestSetupKeys_EnterValidates(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.screen = screenSetup
	m.setup = newSetupForm(m.cfg, config.SetupMissingFile)
	m.setup.projectsDir.SetValue("/does/not/exist")
	m.setup.editorCmd.SetValue("vim")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if m.setup.saving {
		t.Error("invalid directory must not save")
	}
	if m.setup.errMsg == "" {
		t.Error("validation error should be displayed")
	}
	if cmd != nil {
		t.Error("no command expected on validation failure")
	}
}

func TestSetupKeys_EnterSaves(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.screen = screenSetup
	m.setup = newSetupForm(m.cfg, config.SetupMissingFile)
	m.setup.projectsDir.SetValue(t.TempDir())
	m.setup.editorCmd.SetValue("vim")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if !m.setup.saving {
		t.Error("saving should be set")
	}
	if cmd == nil {
		t.Error("should return the save command")
	}
}

func TestConfigSaved_ReturnsToList(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.screen = screenSetup
	m.setup = newSetupForm(m.cfg, config.SetupMissingFile)
	m.setup.saving = true

	cfg := m.cfg
	cfg.ProjectsDirectory = t.TempDir()
	updated, cmd := m.Update(configSavedMsg{cfg: cfg})
	m = updated.(Model)

	if m.Screen() != int(screenList) {
		t.Errorf("screen = %d, want list after save", m.Screen())
	}
	if m.cfg.ProjectsDirectory != cfg.ProjectsDirectory {
		t.Error("saved config should be adopted")
	}
	if !m.scanning || cmd == nil {
		t.Error("save should trigger the first scan")
	}
}
