package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/talento/internal/tui/components"
	"github.com/thenoetrevino/talento/internal/tui/layers"
	"github.com/thenoetrevino/talento/internal/tui/notifications"
	"github.com/thenoetrevino/talento/internal/tui/state"
)

// View renders the board with the modal of the current mode and the
// notifications layered on top.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	layerStack := []*lipgloss.Layer{
		lipgloss.NewLayer(m.viewBoard()),
	}

	var modal *lipgloss.Layer
	switch m.UiState.Mode() {
	case state.DeleteConfirmMode:
		modal = layers.CreateCenteredLayer(m.viewDeleteConfirm(), m.UiState.Width(), m.UiState.Height())
	case state.DetailMode:
		modal = layers.CreateCenteredLayer(m.viewDetail(), m.UiState.Width(), m.UiState.Height())
	case state.SearchMode:
		modal = layers.CreateCenteredLayer(m.viewSearch(), m.UiState.Width(), m.UiState.Height())
	case state.HelpMode:
		modal = layers.CreateCenteredLayer(m.viewHelp(), m.UiState.Width(), m.UiState.Height())
	}
	if modal != nil {
		layerStack = append(layerStack, modal)
	}

	layerStack = append(layerStack, m.NotificationState.GetLayers(func(n state.Notification) string {
		return notifications.RenderFromState(m.Config.Theme, n)
	})...)

	view.Content = lipgloss.NewCanvas(layerStack...).Render()
	return view
}

// viewBoard renders the visible columns, the status bar and the short help
func (m Model) viewBoard() string {
	cols := m.Board.Columns()
	height := m.columnHeight()

	start := m.UiState.ViewportOffset()
	end := min(start+m.UiState.ViewportSize(), len(cols))

	rendered := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		col := cols[i]
		selected := i == m.UiState.SelectedColumn()
		rendered = append(rendered, components.RenderColumn(
			col, selected, m.UiState.SelectedCard(), height, m.UiState.ScrollOffset(col.ID)))
	}
	board := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)

	props := components.StatusBarProps{
		Mode:       m.UiState.Mode().String(),
		Candidates: m.Board.Len(),
		Live:       m.EventChan != nil,
		Width:      m.UiState.Width(),
	}
	if col := m.currentColumn(); col != nil {
		props.Column = fmt.Sprintf("%s (%d/%d)", col.Title, m.UiState.SelectedColumn()+1, len(cols))
		props.ColumnLen = col.Len()
		if col.Len() > 0 {
			props.Position = m.UiState.SelectedCard() + 1
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		board,
		components.RenderStatusBar(props),
		m.help.ShortHelpView(m.keys.ShortHelp()),
	)
}

func (m Model) viewDeleteConfirm() string {
	p, ok := m.Service.PendingDelete(m.Ctx)
	if !ok {
		return ""
	}
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.Config.Theme.Delete)).
		Render("Delete candidate?")

	body := fmt.Sprintf("%s (%s) will be removed from %s.", p.Name, p.ID, m.columnTitle(p.ColumnID))
	return components.DeleteModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		components.NormalStyle.Render(body),
		"",
		components.SubtleStyle.Render("[y] confirm   [n/esc] cancel"),
	))
}

func (m Model) viewDetail() string {
	footer := components.SubtleStyle.Render(
		fmt.Sprintf("↑/↓ scroll  esc close  %3.f%%", m.Detail.ScrollPercent()*100))
	return components.ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.Detail.View(),
		"",
		footer,
	))
}

func (m Model) viewSearch() string {
	var b strings.Builder
	b.WriteString(m.SearchState.View())
	b.WriteString("\n\n")

	hits := m.SearchState.Hits()
	switch {
	case m.SearchState.Query() == "":
		b.WriteString(components.SubtleStyle.Render("Type to search candidates"))
	case len(hits) == 0:
		b.WriteString(components.SubtleStyle.Render("No candidates match"))
	}

	for i, hit := range hits {
		line := fmt.Sprintf("%s · %s · %s", hit.Item.Name, hit.Item.Position, m.columnTitle(hit.ColumnID))
		if i == m.SearchState.Selected() {
			b.WriteString(components.ModeStyle.Render("> " + line))
		} else {
			b.WriteString(components.NormalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	width := min(max(m.UiState.Width()/2, 40), 80)
	return components.ModalStyle.Width(width).Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) viewHelp() string {
	title := components.TitleStyle.Render("Keyboard shortcuts")
	return components.ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		m.help.FullHelpView(m.keys.FullHelp()),
		"",
		components.SubtleStyle.Render("press ? or esc to close"),
	))
}

// columnTitle returns the display title of a column id
func (m Model) columnTitle(id string) string {
	if col, ok := m.Board.Column(id); ok {
		return col.Title
	}
	return id
}
