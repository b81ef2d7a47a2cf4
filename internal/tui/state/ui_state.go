package state

// Mode represents the current interaction mode of the terminal board.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode        Mode = iota // Default navigation mode
	DeleteConfirmMode             // Confirming a staged candidate delete
	DetailMode                    // Candidate detail pane
	SearchMode                    // Vim-style search mode (/)
	HelpMode                      // Displaying help screen
)

// String returns the mode name shown in the status bar
func (m Mode) String() string {
	switch m {
	case DeleteConfirmMode:
		return "DELETE"
	case DetailMode:
		return "DETAIL"
	case SearchMode:
		return "SEARCH"
	case HelpMode:
		return "HELP"
	default:
		return "NORMAL"
	}
}

// UIState manages the user interface state.
// This includes navigation (column/card selection), horizontal scrolling,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	// selectedColumn is the index of the currently selected column
	selectedColumn int

	// selectedCard is the index of the selected card within the selected column
	selectedCard int

	width  int
	height int

	mode Mode

	// viewportOffset is the index of the leftmost visible column
	viewportOffset int

	// viewportSize is the number of columns that fit on the screen
	viewportSize int

	// scrollOffsets tracks the first visible card of each column
	// Key: column id, Value: index of first visible card
	scrollOffsets map[string]int
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:          NormalMode,
		viewportSize:  1, // recalculated when width is set
		scrollOffsets: make(map[string]int),
	}
}

// SelectedColumn returns the index of the currently selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn updates the selected column index and scrolls it into view.
func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = index
	s.EnsureColumnVisible(index)
}

// SelectedCard returns the index of the currently selected card.
func (s *UIState) SelectedCard() int {
	return s.selectedCard
}

// SetSelectedCard updates the selected card index.
func (s *UIState) SetSelectedCard(index int) {
	s.selectedCard = index
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width and recalculates viewport size.
func (s *UIState) SetWidth(width int) {
	s.width = width
	s.viewportSize = max(width/ColumnWidth, 1)
	s.EnsureColumnVisible(s.selectedColumn)
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode switches the interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// ViewportOffset returns the index of the leftmost visible column.
func (s *UIState) ViewportOffset() int {
	return s.viewportOffset
}

// ViewportSize returns how many columns fit on screen.
func (s *UIState) ViewportSize() int {
	return s.viewportSize
}

// EnsureColumnVisible scrolls the viewport so the column at index is shown.
func (s *UIState) EnsureColumnVisible(index int) {
	if index < s.viewportOffset {
		s.viewportOffset = index
	}
	if index >= s.viewportOffset+s.viewportSize {
		s.viewportOffset = index - s.viewportSize + 1
	}
	s.viewportOffset = max(s.viewportOffset, 0)
}

// ScrollOffset returns the first visible card of a column.
func (s *UIState) ScrollOffset(columnID string) int {
	return s.scrollOffsets[columnID]
}

// EnsureCardVisible adjusts the column's scroll offset so the card at index
// is among the visible ones.
func (s *UIState) EnsureCardVisible(columnID string, index, visible int) {
	visible = max(visible, 1)
	offset := s.scrollOffsets[columnID]
	if index < offset {
		offset = index
	}
	if index >= offset+visible {
		offset = index - visible + 1
	}
	s.scrollOffsets[columnID] = max(offset, 0)
}

// ColumnWidth is the rendered width of one board column, borders included
const ColumnWidth = 34
