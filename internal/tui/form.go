// pattern: Imperative Shell

package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"rustm/internal/project"
)

// createField identifies the focused field on the creation form.
type createField int

const (
	fieldName createField = iota
	fieldKind
	fieldEdition
	createFieldCount // wrap-around bound
)

// createForm holds the state of the project creation form.
type createForm struct {
	name       textinput.Model
	kindIdx    int
	editionIdx int
	focused    createField
	errMsg     string
	submitting bool
}

var formKinds = []project.Kind{project.KindBinary, project.KindLibrary}

func newCreateForm() createForm {
	name := textinput.New()
	name.Placeholder = "my-project"
	name.CharLimit = 64
	name.Width = 30

	editions := project.Editions()
	editionIdx := 0
	for i, e := range editions {
		if e == project.DefaultEdition {
			editionIdx = i
		}
	}

	return createForm{
		name:       name,
		editionIdx: editionIdx,
	}
}

// focusCmd focuses the name input.
func (f *createForm) focusCmd() tea.Cmd {
	f.focused = fieldName
	return f.name.Focus()
}

// nextField advances focus with wrap-around.
func (f *createForm) nextField() {
	f.focused = (f.focused + 1) % createFieldCount
	f.syncFocus()
}

// prevField moves focus backwards with wrap-around.
func (f *createForm) prevField() {
	f.focused = (f.focused + createFieldCount - 1) % createFieldCount
	f.syncFocus()
}

func (f *createForm) syncFocus() {
	if f.focused == fieldName {
		f.name.Focus()
	} else {
		f.name.Blur()
	}
}

// cycle moves the focused selector by delta (kind or edition fields only).
func (f *createForm) cycle(delta int) {
	switch f.focused {
	case fieldKind:
		f.kindIdx = (f.kindIdx + delta + len(formKinds)) % len(formKinds)
	case fieldEdition:
		n := len(project.Editions())
		f.editionIdx = (f.editionIdx + delta + n) % n
	}
}

// request builds the CreateRequest from the current form values.
func (f *createForm) request() project.CreateRequest {
	req := project.NewCreateRequest(f.name.Value())
	req.Kind = formKinds[f.kindIdx]
	req.Edition = project.Editions()[f.editionIdx]
	return req
}

// validate checks the name locally so obvious problems surface before any
// subprocess is considered. Collision checks stay in the Creator.
func (f *createForm) validate() bool {
	if err := project.ValidateName(f.name.Value()); err != nil {
		f.errMsg = err.Error()
		return false
	}
	f.errMsg = ""
	return true
}
