// Package components renders the pieces of the terminal board: columns,
// candidate cards, the detail pane and the status bar.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/talento/internal/config"
)

// Theme is the active color set. Set through Init.
var Theme = config.DefaultTheme()

var (
	ColumnStyle         lipgloss.Style
	SelectedColumnStyle lipgloss.Style
	CardStyle           lipgloss.Style
	SelectedCardStyle   lipgloss.Style
	TitleStyle          lipgloss.Style
	SubtleStyle         lipgloss.Style
	NormalStyle         lipgloss.Style
	ModalStyle          lipgloss.Style
	DeleteModalStyle    lipgloss.Style
	StatusBarStyle      lipgloss.Style
	ModeStyle           lipgloss.Style
)

func init() {
	Init(config.DefaultTheme())
}

// Init rebuilds every style from the given theme
func Init(theme config.Theme) {
	Theme = theme

	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.ColumnBorder)).
		Padding(0, 1).
		Width(ColumnWidth)

	SelectedColumnStyle = ColumnStyle.
		BorderForeground(lipgloss.Color(theme.Accent))

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.CardBorder)).
		Padding(0, 1).
		Width(CardWidth)

	SelectedCardStyle = CardStyle.
		BorderForeground(lipgloss.Color(theme.SelectedBorder))

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))

	NormalStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Normal))

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(1, 2)

	DeleteModalStyle = ModalStyle.
		BorderForeground(lipgloss.Color(theme.Delete))

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))

	ModeStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Accent))
}
