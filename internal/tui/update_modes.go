package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/talento/internal/models"
	"github.com/thenoetrevino/talento/internal/tui/components"
	"github.com/thenoetrevino/talento/internal/tui/state"
)

// ============================================================================
// DELETE CONFIRMATION
// ============================================================================

// handleDeleteConfirm resolves the staged delete: y confirms, n or esc
// cancels. Other keys are ignored while the modal is open.
func (m Model) handleDeleteConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		p, removed, err := m.Service.ConfirmDelete(m.Ctx)
		m.UiState.SetMode(state.NormalMode)
		switch {
		case err != nil:
			m.notifyError("delete", err)
		case !removed:
			m.NotificationState.Add(state.LevelWarning, fmt.Sprintf("%s was already gone", p.Name))
		default:
			m.NotificationState.Add(state.LevelInfo, fmt.Sprintf("Deleted %s", p.Name))
		}
		m.setBoard(m.Service.Board(m.Ctx))
		return m, nil

	case "n", "N", "esc":
		m.Service.CancelDelete(m.Ctx)
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}
	return m, nil
}

// ============================================================================
// DETAIL PANE
// ============================================================================

func (m Model) handleDetailMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings
	switch msg.String() {
	case "esc", km.Quit, km.ViewCard:
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	var cmd tea.Cmd
	m.Detail, cmd = m.Detail.Update(msg)
	return m, cmd
}

// renderDetail renders the candidate for the detail viewport
func (m Model) renderDetail(card *models.CandidateItem) string {
	title := card.ID
	if colID, _, ok := m.Board.Find(card.ID); ok {
		if col, ok := m.Board.Column(colID); ok {
			title = col.Title
		}
	}
	return components.RenderDetail(card, title, m.detailWidth()-2)
}

// detailWidth is the content width of the detail pane
func (m Model) detailWidth() int {
	return min(max(m.UiState.Width()*2/3, 40), 100)
}

// resizeDetail fits the detail viewport to the terminal
func (m *Model) resizeDetail() {
	m.Detail.SetWidth(m.detailWidth())
	m.Detail.SetHeight(max(m.UiState.Height()*3/4, 5))
}

// ============================================================================
// SEARCH
// ============================================================================

// handleSearchMode edits the query and lists hits as the user types.
// enter jumps to the highlighted candidate, esc leaves search.
func (m Model) handleSearchMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.SearchState.Stop()
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	case "enter":
		m.SearchState.Stop()
		m.UiState.SetMode(state.NormalMode)
		if hit, ok := m.SearchState.Current(); ok && !m.selectCard(hit.Item.ID) {
			m.NotificationState.Add(state.LevelWarning, fmt.Sprintf("%s is no longer on the board", hit.Item.Name))
		}
		return m, nil
	case "up", "ctrl+p":
		m.SearchState.MoveSelection(-1)
		return m, nil
	case "down", "ctrl+n":
		m.SearchState.MoveSelection(1)
		return m, nil
	}

	cmd := m.SearchState.Update(msg)
	m.SearchState.SetHits(m.Service.Search(m.Ctx, m.SearchState.Query(), searchLimit))
	return m, cmd
}

// ============================================================================
// HELP
// ============================================================================

// handleHelpMode closes the help screen.
func (m Model) handleHelpMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.Config.KeyMappings.ShowHelp, m.Config.KeyMappings.Quit, "esc", "enter", " ", "space":
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}
