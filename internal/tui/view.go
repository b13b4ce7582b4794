// pattern: Imperative Shell

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"rustm/internal/project"
)

// View renders the TUI.
func (m Model) View() string {
	header := m.styles.TitleStyle().Render("rustm — Rust project manager")

	var content string
	switch m.screen {
	case screenSetup:
		content = m.renderSetup()
	case screenCreate:
		content = m.renderCreateForm()
	case screenConfirm:
		content = m.renderConfirm()
	default:
		content = m.renderList()
	}

	parts := []string{header, content}

	if m.logPanelOpen && m.screen == screenList {
		parts = append(parts, m.renderLogPanel())
	}

	parts = append(parts, m.renderStatusBar())

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderList renders the project list screen.
func (m Model) renderList() string {
	if m.scanning && len(m.projects) == 0 {
		return m.spinner.View() + " Scanning projects..."
	}
	if len(m.projects) == 0 {
		return m.styles.SubtitleStyle().Render("No Rust projects found.") +
			"\n" + m.styles.HelpStyle().Render("Press n to create one.")
	}

	counts := fmt.Sprintf("%d project(s) in %s", len(m.projects), m.cfg.ProjectsDirectory)
	sub := m.styles.SubtitleStyle().Render(counts)
	if m.scanning {
		sub += " " + m.spinner.View()
	}

	return sub + "\n" + m.projectList.View()
}

// renderSetup renders the initial configuration form.
func (m Model) renderSetup() string {
	var b strings.Builder

	b.WriteString(m.styles.SubtitleStyle().Render(m.setup.intro()))
	b.WriteString("\n\n")

	b.WriteString(m.fieldLabel("Projects directory:", m.setup.focused == fieldProjectsDir))
	b.WriteString("\n" + m.setup.projectsDir.View() + "\n\n")

	b.WriteString(m.fieldLabel("Editor command (e.g. code, code -n, vim):", m.setup.focused == fieldEditorCmd))
	b.WriteString("\n" + m.setup.editorCmd.View() + "\n")

	if m.setup.errMsg != "" {
		b.WriteString("\n" + m.styles.ErrorStyle().Render(m.setup.errMsg) + "\n")
	}
	if m.setup.saving {
		b.WriteString("\n" + m.spinner.View() + " Saving...\n")
	}

	b.WriteString(m.styles.HelpStyle().Render("tab: next field • enter: save • esc: quit"))
	return b.String()
}

// renderCreateForm renders the project creation form.
func (m Model) renderCreateForm() string {
	var b strings.Builder

	b.WriteString(m.styles.SubtitleStyle().Render("Create a new project"))
	b.WriteString("\n\n")

	b.WriteString(m.fieldLabel("Name:", m.form.focused == fieldName))
	b.WriteString("\n" + m.form.name.View() + "\n\n")

	b.WriteString(m.fieldLabel("Kind:", m.form.focused == fieldKind))
	b.WriteString("\n" + m.renderChoices(kindLabels(), m.form.kindIdx, m.form.focused == fieldKind) + "\n\n")

	b.WriteString(m.fieldLabel("Edition:", m.form.focused == fieldEdition))
	b.WriteString("\n" + m.renderChoices(editionLabels(), m.form.editionIdx, m.form.focused == fieldEdition) + "\n")

	if m.form.errMsg != "" {
		b.WriteString("\n" + m.styles.ErrorStyle().Render(m.form.errMsg) + "\n")
	}
	if m.form.submitting {
		b.WriteString("\n" + m.spinner.View() + " Running cargo new...\n")
	}

	b.WriteString(m.styles.HelpStyle().Render("tab: next field • ←/→: change selection • enter: create • esc: cancel"))
	return b.String()
}

// renderConfirm renders the post-creation editor prompt.
func (m Model) renderConfirm() string {
	path := ""
	if m.created != nil {
		path = m.created.Path
	}
	return m.styles.InfoStyle().Render("Project created at:\n"+path) + "\n\n" +
		m.styles.AccentStyle().Render("Open in editor?") + "\n" +
		m.styles.HelpStyle().Render("y/enter: open • n/esc: skip")
}

// renderLogPanel renders the scrollable log history.
func (m Model) renderLogPanel() string {
	sep := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.flavor.Surface1().Hex)).
		Render(strings.Repeat("─", max(m.width, 1)))
	if !m.logReady {
		return sep
	}
	return sep + "\n" + m.logViewport.View()
}

// renderStatusBar renders the bottom help/status line.
func (m Model) renderStatusBar() string {
	if m.statusMsg != "" {
		if m.statusErr {
			return m.styles.ErrorStyle().Render(m.statusMsg)
		}
		return m.styles.AccentStyle().Render(m.statusMsg)
	}
	if m.screen == screenList {
		return m.styles.HelpStyle().Render("n: new • enter: open in editor • r: refresh • l: logs • q: quit")
	}
	return ""
}

func (m Model) fieldLabel(label string, focused bool) string {
	if focused {
		return m.styles.AccentStyle().Render("▸ " + label)
	}
	return m.styles.InfoStyle().Render(label)
}

// renderChoices renders a horizontal selector.
func (m Model) renderChoices(labels []string, selected int, focused bool) string {
	out := make([]string, len(labels))
	for i, label := range labels {
		switch {
		case i == selected && focused:
			out[i] = m.styles.AccentStyle().Render("[" + label + "]")
		case i == selected:
			out[i] = m.styles.InfoStyle().Render("[" + label + "]")
		default:
			out[i] = m.styles.SubtitleStyle().Render(" " + label + " ")
		}
	}
	return strings.Join(out, " ")
}

func kindLabels() []string {
	labels := make([]string, len(formKinds))
	for i, k := range formKinds {
		labels[i] = k.String()
	}
	return labels
}

func editionLabels() []string {
	editions := project.Editions()
	labels := make([]string, len(editions))
	for i, e := range editions {
		labels[i] = string(e)
		if e == project.DefaultEdition {
			labels[i] += " (latest)"
		}
	}
	return labels
}
