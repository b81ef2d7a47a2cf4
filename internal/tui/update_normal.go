package tui

import (
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/talento/internal/services/board"
	"github.com/thenoetrevino/talento/internal/tui/state"
)

func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.NotificationState.Clear()

	km := m.Config.KeyMappings

	switch msg.String() {
	case km.Quit, "ctrl+c":
		return m, tea.Quit
	case km.ShowHelp:
		m.UiState.SetMode(state.HelpMode)
		return m, nil
	case km.PrevColumn, "left":
		return m.handleNavigateColumn(-1)
	case km.NextColumn, "right":
		return m.handleNavigateColumn(1)
	case km.PrevCard, "up":
		return m.handleNavigateCard(-1)
	case km.NextCard, "down":
		return m.handleNavigateCard(1)
	case km.MoveCardLeft:
		return m.handleMoveAcross(-1)
	case km.MoveCardRight:
		return m.handleMoveAcross(1)
	case km.MoveCardUp:
		return m.handleReorder(-1)
	case km.MoveCardDown:
		return m.handleReorder(1)
	case km.DeleteCard:
		return m.handleDeleteCard()
	case km.ViewCard:
		return m.handleViewCard()
	case km.Search:
		m.UiState.SetMode(state.SearchMode)
		return m, m.SearchState.Start()
	case km.Reload:
		return m.handleReload()
	}

	return m, nil
}

// handleNavigateColumn selects the neighbouring column, keeping the card
// index where the new column allows it
func (m Model) handleNavigateColumn(delta int) (tea.Model, tea.Cmd) {
	next := m.UiState.SelectedColumn() + delta
	if next < 0 || next >= len(m.Board.Columns()) {
		return m, nil
	}
	m.UiState.SetSelectedColumn(next)
	m.clampSelection()
	return m, nil
}

func (m Model) handleNavigateCard(delta int) (tea.Model, tea.Cmd) {
	col := m.currentColumn()
	next := m.UiState.SelectedCard() + delta
	if col == nil || next < 0 || next >= col.Len() {
		return m, nil
	}
	m.UiState.SetSelectedCard(next)
	m.ensureCardVisible()
	return m, nil
}

// handleMoveAcross moves the selected card to the neighbouring stage,
// appending it at the end of that column
func (m Model) handleMoveAcross(delta int) (tea.Model, tea.Cmd) {
	card := m.currentCard()
	if card == nil {
		return m, nil
	}
	cols := m.Board.Columns()
	destIdx := m.UiState.SelectedColumn() + delta
	if destIdx < 0 || destIdx >= len(cols) {
		return m, nil
	}
	dest := cols[destIdx]

	b, err := m.Service.MoveCandidate(m.Ctx, card.ID, dest.ID, dest.Len())
	if err != nil {
		m.notifyError("move", err)
		return m, nil
	}
	m.Board = b
	m.selectCard(card.ID)
	return m, nil
}

// handleReorder moves the selected card one slot up or down in its column
func (m Model) handleReorder(delta int) (tea.Model, tea.Cmd) {
	card := m.currentCard()
	col := m.currentColumn()
	if card == nil {
		return m, nil
	}
	target := m.UiState.SelectedCard() + delta
	if target < 0 || target >= col.Len() {
		return m, nil
	}

	b, err := m.Service.MoveCandidate(m.Ctx, card.ID, col.ID, target)
	if err != nil {
		m.notifyError("reorder", err)
		return m, nil
	}
	m.Board = b
	m.selectCard(card.ID)
	return m, nil
}

// handleDeleteCard stages a delete of the selected card and asks for
// confirmation
func (m Model) handleDeleteCard() (tea.Model, tea.Cmd) {
	card := m.currentCard()
	if card == nil {
		return m, nil
	}
	if _, err := m.Service.RequestDelete(m.Ctx, card.ID, m.currentColumn().ID); err != nil {
		m.notifyError("delete", err)
		return m, nil
	}
	m.UiState.SetMode(state.DeleteConfirmMode)
	return m, nil
}

// handleViewCard opens the detail pane of the selected card
func (m Model) handleViewCard() (tea.Model, tea.Cmd) {
	card := m.currentCard()
	if card == nil {
		return m, nil
	}
	m.resizeDetail()
	m.Detail.SetContent(m.renderDetail(card))
	m.Detail.GotoTop()
	m.UiState.SetMode(state.DetailMode)
	return m, nil
}

// handleReload re-reads the persisted board
func (m Model) handleReload() (tea.Model, tea.Cmd) {
	if err := m.Service.Reload(m.Ctx); err != nil && !errors.Is(err, board.ErrNoStore) {
		m.notifyError("reload", err)
		return m, nil
	}
	m.setBoard(m.Service.Board(m.Ctx))
	m.NotificationState.Add(state.LevelInfo, "Board reloaded")
	return m, nil
}

// notifyError shows a failed operation as an error banner
func (m Model) notifyError(op string, err error) {
	m.NotificationState.Add(state.LevelError, fmt.Sprintf("Could not %s: %v", op, err))
}
