package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/talento/internal/models"
)

// VisibleCards returns how many cards fit in a column of the given height
func VisibleCards(height int) int {
	return max((height-columnOverhead)/CardHeight, 1)
}

// RenderColumn renders a column with its title and the visible cards
//
// Layout:
//
//	{Title} ({count})
//	▲ more above
//	{Card 1}
//	{Card 2}
//	...
//	▼ more below
//
// selectedIdx is ignored unless selected is true. scrollOffset is the index
// of the first visible card.
func RenderColumn(col *models.Column, selected bool, selectedIdx, height, scrollOffset int) string {
	header := TitleStyle.Render(truncate(fmt.Sprintf("%s (%d)", col.Title, col.Len()), columnTextWidth))

	var b strings.Builder
	b.WriteString(header + "\n")

	indicator := SubtleStyle.Width(columnTextWidth).Align(lipgloss.Center)

	if col.Len() == 0 {
		b.WriteString("\n" + SubtleStyle.Italic(true).Render("Sin candidatos"))
	} else {
		visible := VisibleCards(height)
		scrollOffset = min(max(scrollOffset, 0), col.Len()-1)
		end := min(scrollOffset+visible, col.Len())

		if scrollOffset > 0 {
			b.WriteString(indicator.Render("▲ more above"))
		}
		b.WriteString("\n")

		for i := scrollOffset; i < end; i++ {
			b.WriteString(RenderCard(col.Items[i], selected && i == selectedIdx) + "\n")
		}
		if end < col.Len() {
			b.WriteString(indicator.Render("▼ more below"))
		}
	}

	style := ColumnStyle
	if selected {
		style = SelectedColumnStyle
	}
	if height > 0 {
		style = style.Height(height)
	}
	return style.Render(strings.TrimRight(b.String(), "\n"))
}
