// Package notifications renders the floating banners of the terminal board
package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/talento/internal/config"
	"github.com/thenoetrevino/talento/internal/tui/state"
)

// Render renders a notification banner based on severity level
func Render(theme config.Theme, severity Severity, message string) string {
	st := severity.style(theme)

	headerText := st.icon + " " + st.title
	width := max(lipgloss.Width(headerText), lipgloss.Width(message))

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(st.foreground)).
		Bold(true).
		Width(width).
		Render(headerText)

	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Normal)).
		Width(width).
		Render(message)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(st.border)).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, body))
}

// RenderFromState renders a notification banner from a state.Notification
func RenderFromState(theme config.Theme, n state.Notification) string {
	switch n.Level {
	case state.LevelWarning:
		return Render(theme, Warning, n.Message)
	case state.LevelError:
		return Render(theme, Error, n.Message)
	default:
		return Render(theme, Info, n.Message)
	}
}
