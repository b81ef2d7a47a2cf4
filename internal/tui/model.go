// Package tui is the interactive terminal board. It renders the pipeline as
// columns of candidate cards and drives every change through board.Service.
package tui

import (
	"context"
	"log/slog"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/talento/internal/config"
	"github.com/thenoetrevino/talento/internal/events"
	"github.com/thenoetrevino/talento/internal/models"
	"github.com/thenoetrevino/talento/internal/pipeline"
	"github.com/thenoetrevino/talento/internal/services/board"
	"github.com/thenoetrevino/talento/internal/tui/components"
	"github.com/thenoetrevino/talento/internal/tui/state"
)

// searchLimit caps the hits listed under the search prompt
const searchLimit = 8

// RefreshMsg is sent when the board changed outside of this model
type RefreshMsg struct {
	Event events.Event
}

// Model is the bubbletea model of the board. State structs are pointers so
// value-receiver handlers share them.
type Model struct {
	Ctx     context.Context
	Service board.Service
	Config  *config.Config

	// Board is the snapshot currently rendered
	Board *pipeline.Board

	UiState           *state.UIState
	NotificationState *state.NotificationState
	SearchState       *state.SearchState

	Detail viewport.Model

	// EventChan delivers board change events. Nil when events are unavailable.
	EventChan <-chan events.Event

	keys KeyMap
	help help.Model
}

// InitialModel builds the board model and subscribes to board events.
// cfg may be nil, in which case defaults are used.
func InitialModel(ctx context.Context, svc board.Service, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	components.Init(cfg.Theme)

	eventChan, err := svc.Listen(ctx)
	if err != nil {
		slog.Warn("board events unavailable, live refresh disabled", "error", err)
		eventChan = nil
	}

	return Model{
		Ctx:               ctx,
		Service:           svc,
		Config:            cfg,
		Board:             svc.Board(ctx),
		UiState:           state.NewUIState(),
		NotificationState: state.NewNotificationState(),
		SearchState:       state.NewSearchState(),
		Detail:            viewport.New(),
		EventChan:         eventChan,
		keys:              NewKeyMap(cfg.KeyMappings),
		help:              help.New(),
	}
}

// Init starts listening for board events
func (m Model) Init() tea.Cmd {
	return m.subscribeToEvents()
}

// subscribeToEvents returns a command that waits for the next board event
// and turns it into a RefreshMsg. Returns nil if EventChan is not set.
func (m Model) subscribeToEvents() tea.Cmd {
	if m.EventChan == nil {
		return nil
	}

	return func() tea.Msg {
		select {
		case event, ok := <-m.EventChan:
			if !ok {
				return nil
			}
			return RefreshMsg{Event: event}
		case <-m.Ctx.Done():
			return nil
		}
	}
}

// ============================================================================
// SELECTION ACCESSORS
// ============================================================================

// currentColumn returns the selected column, or nil when the board is empty
func (m Model) currentColumn() *models.Column {
	cols := m.Board.Columns()
	idx := m.UiState.SelectedColumn()
	if idx < 0 || idx >= len(cols) {
		return nil
	}
	return cols[idx]
}

// currentCard returns the selected candidate, or nil when the column is empty
func (m Model) currentCard() *models.CandidateItem {
	col := m.currentColumn()
	idx := m.UiState.SelectedCard()
	if col == nil || idx < 0 || idx >= col.Len() {
		return nil
	}
	return col.Items[idx]
}

// setBoard replaces the rendered snapshot, following the selected card when
// it is still in the selected column and clamping the selection otherwise.
func (m *Model) setBoard(b *pipeline.Board) {
	var selectedID string
	if card := m.currentCard(); card != nil {
		selectedID = card.ID
	}
	var columnID string
	if col := m.currentColumn(); col != nil {
		columnID = col.ID
	}

	m.Board = b

	if selectedID != "" {
		if colID, idx, ok := b.Find(selectedID); ok && colID == columnID {
			m.UiState.SetSelectedCard(idx)
			return
		}
	}
	m.clampSelection()
}

// selectCard moves the selection onto the candidate with the given id
func (m *Model) selectCard(id string) bool {
	colID, idx, ok := m.Board.Find(id)
	if !ok {
		return false
	}
	m.UiState.SetSelectedColumn(m.Board.ColumnIndex(colID))
	m.UiState.SetSelectedCard(idx)
	m.ensureCardVisible()
	return true
}

// clampSelection keeps the selected column and card within the board
func (m *Model) clampSelection() {
	cols := m.Board.Columns()
	if len(cols) == 0 {
		m.UiState.SetSelectedColumn(0)
		m.UiState.SetSelectedCard(0)
		return
	}
	colIdx := min(max(m.UiState.SelectedColumn(), 0), len(cols)-1)
	if colIdx != m.UiState.SelectedColumn() {
		m.UiState.SetSelectedColumn(colIdx)
	}

	n := cols[colIdx].Len()
	cardIdx := min(m.UiState.SelectedCard(), n-1)
	m.UiState.SetSelectedCard(max(cardIdx, 0))
	m.ensureCardVisible()
}

// ensureCardVisible scrolls the selected column to its selected card
func (m *Model) ensureCardVisible() {
	col := m.currentColumn()
	if col == nil {
		return
	}
	m.UiState.EnsureCardVisible(col.ID, m.UiState.SelectedCard(), components.VisibleCards(m.columnHeight()))
}

// columnHeight is the height available to each column
func (m Model) columnHeight() int {
	// status bar and help line
	return max(m.UiState.Height()-2, 0)
}
