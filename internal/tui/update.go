package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/talento/internal/events"
	"github.com/thenoetrevino/talento/internal/tui/state"
)

// Update handles all messages and updates the model accordingly.
// This implements the "Update" part of the Model-View-Update pattern.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetWidth(msg.Width)
		m.UiState.SetHeight(msg.Height)
		m.NotificationState.SetWindowSize(msg.Width, msg.Height)
		m.help.SetWidth(msg.Width)
		m.resizeDetail()
		m.ensureCardVisible()
		return m, nil

	case RefreshMsg:
		if msg.Event.Type == events.EventBoardChanged {
			slog.Debug("board changed, refreshing", "action", msg.Event.Action, "sequence", msg.Event.SequenceID)
			m.setBoard(m.Service.Board(m.Ctx))
		}
		return m, m.subscribeToEvents()

	case tea.KeyPressMsg:
		switch m.UiState.Mode() {
		case state.DeleteConfirmMode:
			return m.handleDeleteConfirm(msg)
		case state.DetailMode:
			return m.handleDetailMode(msg)
		case state.SearchMode:
			return m.handleSearchMode(msg)
		case state.HelpMode:
			return m.handleHelpMode(msg)
		default:
			return m.handleNormalMode(msg)
		}
	}

	if m.UiState.Mode() == state.SearchMode {
		return m, m.SearchState.Update(msg)
	}
	return m, nil
}
