package tui

import (
	"testing"

	"rustm/internal/config"
	"rustm/internal/project"
)

func testConfig() config.Config {
	return config.Config{
		ProjectsDirectory: "/old/projects",
		EditorCmd:         "code",
		Theme:             "mocha",
	}
}

func TestCreateForm_Defaults(t *testing.T) {
	f := newCreateForm()

	req := f.request()
	if req.Kind != project.KindBinary {
		t.Errorf("default kind = %v, want binary", req.Kind)
	}
	if req.Edition != project.DefaultEdition {
		t.Errorf("default edition = %q, want %q", req.Edition, project.DefaultEdition)
	}
}

func TestCreateForm_FieldNavigationWraps(t *testing.T) {
	f := newCreateForm()

	f.nextField()
	if f.focused != fieldKind {
		t.Errorf("focused = %v after one next, want kind", f.focused)
	}
	f.nextField()
	f.nextField()
	if f.focused != fieldName {
		t.Errorf("focused = %v after full cycle, want name", f.focused)
	}

	f.prevField()
	if f.focused != fieldEdition {
		t.Errorf("focused = %v after prev from name, want edition", f.focused)
	}
}

func TestCreateForm_CycleKind(t *testing.T) {
	f := newCreateForm()
	f.focused = fieldKind

	f.cycle(1)
	if f.request().Kind != project.KindLibrary {
		t.Errorf("kind = %v after cycle, want library", f.request().Kind)
	}
	f.cycle(1)
	if f.request().Kind != project.KindBinary {
		t.Errorf("kind = %v after wrap, want binary", f.request().Kind)
	}
	f.cycle(-1)
	if f.request().Kind != project.KindLibrary {
		t.Errorf("kind = %v after backward cycle, want library", f.request().Kind)
	}
}

func TestCreateForm_CycleEdition(t *testing.T) {
	f := newCreateForm()
	f.focused = fieldEdition

	// Default points at the latest edition; forward wraps to the oldest.
	f.cycle(1)
	if got := f.request().Edition; got != project.Editions()[0] {
		t.Errorf("edition = %q after wrap, want %q", got, project.Editions()[0])
	}
}

func TestCreateForm_Validate(t *testing.T) {
	f := newCreateForm()

	f.name.SetValue("")
	if f.validate() {
		t.Error("blank name accepted")
	}
	if f.errMsg == "" {
		t.Error("error message should be set")
	}

	f.name.SetValue("good-name")
	if !f.validate() {
		t.Errorf("valid name rejected: %s", f.errMsg)
	}
	if f.errMsg != "" {
		t.Error("error message should be cleared on success")
	}
}

func TestSetupForm_Apply(t *testing.T) {
	f := newSetupForm(testConfig(), 0)
	f.projectsDir.SetValue("/new/projects")
	f.editorCmd.SetValue("hx")

	cfg := f.apply(testConfig())
	if cfg.ProjectsDirectory != "/new/projects" || cfg.EditorCmd != "hx" {
		t.Errorf("applied config = %+v", cfg)
	}
	// Untouched fields survive.
	if cfg.Theme != "mocha" {
		t.Errorf("theme = %q, want mocha", cfg.Theme)
	}
}

func TestSetupForm_PrefillsExistingValues(t *testing.T) {
	f := newSetupForm(testConfig(), 0)

	if f.projectsDir.Value() != "/old/projects" {
		t.Errorf("projectsDir prefill = %q", f.projectsDir.Value())
	}
	if f.editorCmd.Value() != "code" {
		t.Errorf("editorCmd prefill = %q", f.editorCmd.Value())
	}
}
