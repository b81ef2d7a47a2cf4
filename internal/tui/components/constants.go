package components

import "github.com/thenoetrevino/talento/internal/tui/state"

// Widths and heights are totals: lipgloss counts borders and padding in them.
const (
	// ColumnWidth is the rendered width of a column
	ColumnWidth = state.ColumnWidth

	// columnTextWidth is the space inside the column border and padding
	columnTextWidth = ColumnWidth - 4

	// CardWidth is the rendered width of a card inside a column
	CardWidth = columnTextWidth

	// cardTextWidth is the space inside the card border and padding
	cardTextWidth = CardWidth - 4

	// CardHeight is the rendered height of one card
	CardHeight = 5

	// columnOverhead covers the column border, header and scroll indicators
	columnOverhead = 6
)
