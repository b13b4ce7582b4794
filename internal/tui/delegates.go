// pattern: Imperative Shell

package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"rustm/internal/project"
	"rustm/internal/vcs"
)

// projectItem wraps a project for display in the list.
type projectItem struct {
	project project.Project
}

// Title returns the project name with its status marker.
func (i projectItem) Title() string {
	if marker := i.project.Status.Marker(); marker != "" {
		return i.project.Name + " " + marker
	}
	return i.project.Name
}

// Description returns the status word and path.
func (i projectItem) Description() string {
	return fmt.Sprintf("%s | %s", i.project.Status.String(), i.project.Path)
}

// FilterValue returns the value to filter on.
func (i projectItem) FilterValue() string {
	return i.project.Name
}

// projectDelegate renders project items with a status-colored badge.
type projectDelegate struct {
	styles *Styles
}

func newProjectDelegate(styles *Styles) projectDelegate {
	return projectDelegate{styles: styles}
}

// Height returns the height of a single item.
func (d projectDelegate) Height() int {
	return 2
}

// Spacing returns the spacing between items.
func (d projectDelegate) Spacing() int {
	return 1
}

// Update handles item-specific updates.
func (d projectDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

// Render renders a single project item.
func (d projectDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	pi, ok := item.(projectItem)
	if !ok {
		return
	}

	isSelected := index == m.Index()

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(d.styles.flavor.Text().Hex))
	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(d.styles.flavor.Subtext0().Hex))

	var statusColor lipgloss.Color
	switch pi.project.Status {
	case vcs.StatusClean:
		statusColor = lipgloss.Color(d.styles.flavor.Green().Hex)
	case vcs.StatusDirty:
		statusColor = lipgloss.Color(d.styles.flavor.Red().Hex)
	case vcs.StatusUnknown:
		statusColor = lipgloss.Color(d.styles.flavor.Yellow().Hex)
	default:
		statusColor = lipgloss.Color(d.styles.flavor.Overlay0().Hex)
	}
	statusStyle := lipgloss.NewStyle().Foreground(statusColor)

	cursor := "  "
	if isSelected {
		cursor = "▸ "
		titleStyle = titleStyle.
			Bold(true).
			Foreground(lipgloss.Color(d.styles.flavor.Mauve().Hex))
	}

	title := cursor + titleStyle.Render(pi.project.Name)
	if marker := pi.project.Status.Marker(); marker != "" {
		title += " " + statusStyle.Render(marker)
	}
	desc := "  " + statusStyle.Render(pi.project.Status.String()) +
		descStyle.Render(" | "+pi.project.Path)

	fmt.Fprintf(w, "%s\n%s", title, desc)
}
