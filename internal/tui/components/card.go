package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/talento/internal/models"
)

// RenderCard renders a candidate as a fixed-size card
//
//	╭──────────────────────────╮
//	│ {Name}                   │
//	│ {Position} · {Dept}      │
//	│ PRIORITY [tag] [tag]     │
//	╰──────────────────────────╯
func RenderCard(item *models.CandidateItem, selected bool) string {
	textWidth := cardTextWidth

	name := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(Theme.Normal)).
		Render(truncate(item.Name, textWidth))

	role := item.Position
	if item.Department != "" {
		role += " · " + item.Department
	}
	role = SubtleStyle.Render(truncate(role, textWidth))

	meta := RenderPriority(item.Priority)
	if len(item.Tags) > 0 {
		chips := make([]string, len(item.Tags))
		for i, t := range item.Tags {
			chips[i] = "[" + t + "]"
		}
		meta += " " + SubtleStyle.Render(truncate(strings.Join(chips, " "), textWidth-lipgloss.Width(meta)-1))
	}

	style := CardStyle
	if selected {
		style = SelectedCardStyle
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, name, role, meta))
}

// RenderPriority renders a priority in its color
func RenderPriority(p models.Priority) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(p.Color())).
		Render(string(p))
}

// truncate shortens s to width cells, marking the cut with an ellipsis
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
