package components

import (
	"fmt"

	"charm.land/lipgloss/v2"
)

// StatusBarProps is everything the status bar shows
type StatusBarProps struct {
	Mode       string
	Candidates int
	Column     string
	Position   int // 1-based, 0 when the column is empty
	ColumnLen  int
	Live       bool // event subscription active
	Width      int
}

// RenderStatusBar renders the bottom line of the board
func RenderStatusBar(p StatusBarProps) string {
	left := ModeStyle.Render(" "+p.Mode+" ") + " " + NormalStyle.Render(p.Column)
	if p.ColumnLen > 0 {
		left += SubtleStyle.Render(fmt.Sprintf(" %d/%d", p.Position, p.ColumnLen))
	}

	live := "offline"
	if p.Live {
		live = "live"
	}
	right := SubtleStyle.Render(fmt.Sprintf("%d candidatos · %s · ? help ", p.Candidates, live))

	gap := max(p.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return StatusBarStyle.Render(left + fmt.Sprintf("%*s", gap, "") + right)
}
