package tui

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/talento/internal/events"
	"github.com/thenoetrevino/talento/internal/models"
	"github.com/thenoetrevino/talento/internal/services/board"
	"github.com/thenoetrevino/talento/internal/tui/state"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// setupTestModel builds a sized model over an in-memory seeded board.
// Seed layout: nuevos=[cand-1], revision-cv=[cand-2, cand-3], preseleccion=[].
func setupTestModel(t *testing.T) (Model, board.Service) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	broker := events.NewBroker()
	t.Cleanup(func() { _ = broker.Close() })

	svc, err := board.NewService(ctx, board.Options{Events: broker})
	require.NoError(t, err)

	m := InitialModel(ctx, svc, nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 160, Height: 40})
	return next.(Model), svc
}

// press builds a key press the way the terminal reports it
func press(k string) tea.KeyPressMsg {
	switch k {
	case "enter":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})
	case "esc":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape})
	case "left":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyLeft})
	case "right":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyRight})
	case "up":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyUp})
	case "down":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyDown})
	}
	r := []rune(k)[0]
	return tea.KeyPressMsg(tea.Key{Text: k, Code: r})
}

// send feeds keys to the model in order
func send(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(press(k))
		m = next.(Model)
	}
	return m
}

func columnItemIDs(m Model, columnID string) []string {
	col, ok := m.Board.Column(columnID)
	if !ok {
		return nil
	}
	ids := make([]string, col.Len())
	for i, item := range col.Items {
		ids[i] = item.ID
	}
	return ids
}

func selectedID(m Model) string {
	if card := m.currentCard(); card != nil {
		return card.ID
	}
	return ""
}

// ============================================================================
// NAVIGATION
// ============================================================================

func TestNavigation_ArrowsAndVimKeys(t *testing.T) {
	m, _ := setupTestModel(t)
	assert.Equal(t, "cand-1", selectedID(m))

	m = send(t, m, "right")
	assert.Equal(t, 1, m.UiState.SelectedColumn())
	assert.Equal(t, "cand-2", selectedID(m))

	m = send(t, m, "j")
	assert.Equal(t, "cand-3", selectedID(m))

	// Already on the last card
	m = send(t, m, "down")
	assert.Equal(t, "cand-3", selectedID(m))

	m = send(t, m, "k", "h")
	assert.Equal(t, 0, m.UiState.SelectedColumn())
	assert.Equal(t, "cand-1", selectedID(m))

	// Already on the first column
	m = send(t, m, "left")
	assert.Equal(t, 0, m.UiState.SelectedColumn())
}

func TestNavigation_ClampsCardIndexOnEmptyColumn(t *testing.T) {
	m, _ := setupTestModel(t)

	m = send(t, m, "l", "j", "l")
	assert.Equal(t, 2, m.UiState.SelectedColumn())
	assert.Equal(t, 0, m.UiState.SelectedCard())
	assert.Nil(t, m.currentCard(), "preselección starts empty")
}

// ============================================================================
// MOVES
// ============================================================================

func TestMoveAcross_AppendsAtEndOfNextColumn(t *testing.T) {
	m, svc := setupTestModel(t)

	m = send(t, m, ">")

	assert.Empty(t, columnItemIDs(m, models.StageNuevos))
	assert.Equal(t, []string{"cand-2", "cand-3", "cand-1"}, columnItemIDs(m, models.StageRevisionCV))
	assert.Equal(t, 1, m.UiState.SelectedColumn(), "selection follows the card")
	assert.Equal(t, "cand-1", selectedID(m))

	// The service holds the same board the model renders
	colID, idx, ok := svc.Board(context.Background()).Find("cand-1")
	require.True(t, ok)
	assert.Equal(t, models.StageRevisionCV, colID)
	assert.Equal(t, 2, idx)
}

func TestMoveAcross_PreviousColumn(t *testing.T) {
	m, _ := setupTestModel(t)

	m = send(t, m, "l", "j", "<")

	assert.Equal(t, []string{"cand-1", "cand-3"}, columnItemIDs(m, models.StageNuevos))
	assert.Equal(t, []string{"cand-2"}, columnItemIDs(m, models.StageRevisionCV))
	assert.Equal(t, "cand-3", selectedID(m))
}

func TestMoveAcross_AtBoardEdgeIsNoop(t *testing.T) {
	m, _ := setupTestModel(t)

	m = send(t, m, "<")

	assert.Equal(t, []string{"cand-1"}, columnItemIDs(m, models.StageNuevos))
	assert.False(t, m.NotificationState.HasAny())
}

func TestReorder_WithinColumn(t *testing.T) {
	tests := []struct {
		name     string
		keys     []string
		want     []string
		selected string
	}{
		{"down from top", []string{"l", "J"}, []string{"cand-3", "cand-2"}, "cand-2"},
		{"up from bottom", []string{"l", "j", "K"}, []string{"cand-3", "cand-2"}, "cand-3"},
		{"up from top is noop", []string{"l", "K"}, []string{"cand-2", "cand-3"}, "cand-2"},
		{"down from bottom is noop", []string{"l", "j", "J"}, []string{"cand-2", "cand-3"}, "cand-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := setupTestModel(t)
			m = send(t, m, tt.keys...)

			assert.Equal(t, tt.want, columnItemIDs(m, models.StageRevisionCV))
			assert.Equal(t, tt.selected, selectedID(m))
		})
	}
}

// ============================================================================
// DELETE CONFIRMATION
// ============================================================================

func TestDelete_ConfirmRemovesCard(t *testing.T) {
	m, svc := setupTestModel(t)
	m = send(t, m, "l", "d")

	require.Equal(t, state.DeleteConfirmMode, m.UiState.Mode())
	p, ok := svc.PendingDelete(context.Background())
	require.True(t, ok)
	assert.Equal(t, "cand-2", p.ID)
	assert.Contains(t, m.View().Content, "Carlos Gómez")

	m = send(t, m, "y")

	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Equal(t, []string{"cand-3"}, columnItemIDs(m, models.StageRevisionCV))
	assert.Equal(t, "cand-3", selectedID(m))
	_, ok = svc.PendingDelete(context.Background())
	assert.False(t, ok)
	require.Len(t, m.NotificationState.All(), 1)
	assert.Equal(t, "Deleted Carlos Gómez", m.NotificationState.All()[0].Message)
}

func TestDelete_CancelKeepsCard(t *testing.T) {
	for _, key := range []string{"n", "esc"} {
		t.Run(key, func(t *testing.T) {
			m, svc := setupTestModel(t)
			m = send(t, m, "d", key)

			assert.Equal(t, state.NormalMode, m.UiState.Mode())
			assert.Equal(t, []string{"cand-1"}, columnItemIDs(m, models.StageNuevos))
			_, ok := svc.PendingDelete(context.Background())
			assert.False(t, ok)
		})
	}
}

func TestDelete_OtherKeysIgnoredWhileConfirming(t *testing.T) {
	m, _ := setupTestModel(t)
	m = send(t, m, "d", "l", "q", ">")

	assert.Equal(t, state.DeleteConfirmMode, m.UiState.Mode())
	assert.Equal(t, 0, m.UiState.SelectedColumn())
	assert.Equal(t, []string{"cand-1"}, columnItemIDs(m, models.StageNuevos))
}

func TestDelete_CandidateRemovedMeanwhile(t *testing.T) {
	m, svc := setupTestModel(t)
	m = send(t, m, "d")

	// Another surface deletes the same candidate before confirmation
	_, err := svc.DeleteCandidate(context.Background(), "cand-1", models.StageNuevos)
	require.NoError(t, err)

	m = send(t, m, "y")

	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	require.Len(t, m.NotificationState.All(), 1)
	assert.Equal(t, state.LevelWarning, m.NotificationState.All()[0].Level)
	assert.Nil(t, m.currentCard())
}

func TestDelete_EmptyColumnIsNoop(t *testing.T) {
	m, _ := setupTestModel(t)
	m = send(t, m, "l", "l", "d")

	assert.Equal(t, state.NormalMode, m.UiState.Mode())
}

// ============================================================================
// DETAIL, SEARCH, HELP
// ============================================================================

func TestDetail_OpensAndCloses(t *testing.T) {
	m, _ := setupTestModel(t)
	m = send(t, m, "l", "enter")

	require.Equal(t, state.DetailMode, m.UiState.Mode())
	view := m.View().Content
	assert.Contains(t, view, "Carlos Gómez")
	assert.Contains(t, view, "carlos.gomez@example.com")

	m = send(t, m, "esc")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
}

func TestSearch_JumpsToCandidate(t *testing.T) {
	m, _ := setupTestModel(t)
	m = send(t, m, "/")
	require.Equal(t, state.SearchMode, m.UiState.Mode())

	m = send(t, m, "M", "a", "r", "t", "a")
	assert.Equal(t, "Marta", m.SearchState.Query())
	require.NotEmpty(t, m.SearchState.Hits())
	assert.Equal(t, "cand-3", m.SearchState.Hits()[0].Item.ID)

	m = send(t, m, "enter")

	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Equal(t, 1, m.UiState.SelectedColumn())
	assert.Equal(t, "cand-3", selectedID(m))
}

func TestSearch_EscLeavesSelectionAlone(t *testing.T) {
	m, _ := setupTestModel(t)
	m = send(t, m, "/", "M", "a", "r", "t", "a", "esc")

	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Equal(t, "cand-1", selectedID(m))
}

func TestHelp_Toggle(t *testing.T) {
	m, _ := setupTestModel(t)
	m = send(t, m, "?")
	require.Equal(t, state.HelpMode, m.UiState.Mode())
	assert.Contains(t, m.View().Content, "Keyboard shortcuts")

	m = send(t, m, "?")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
}

func TestQuit(t *testing.T) {
	m, _ := setupTestModel(t)
	_, cmd := m.Update(press("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestReload_WithoutStoreKeepsBoard(t *testing.T) {
	m, _ := setupTestModel(t)
	m = send(t, m, "r")

	assert.Equal(t, []string{"cand-1"}, columnItemIDs(m, models.StageNuevos))
	require.Len(t, m.NotificationState.All(), 1)
	assert.Equal(t, "Board reloaded", m.NotificationState.All()[0].Message)
}

// ============================================================================
// EVENTS AND RENDERING
// ============================================================================

func TestRefresh_FollowsExternalChanges(t *testing.T) {
	m, svc := setupTestModel(t)
	m = send(t, m, "l", "j") // cand-3 selected

	// Another surface reorders the column
	_, err := svc.MoveCandidate(context.Background(), "cand-3", models.StageRevisionCV, 0)
	require.NoError(t, err)

	cmd := m.Init()
	require.NotNil(t, cmd)
	msg := cmd()
	refresh, ok := msg.(RefreshMsg)
	require.True(t, ok, "got %T", msg)
	assert.Equal(t, events.ActionMove, refresh.Event.Action)

	next, resubscribe := m.Update(refresh)
	m = next.(Model)

	assert.Equal(t, []string{"cand-3", "cand-2"}, columnItemIDs(m, models.StageRevisionCV))
	assert.Equal(t, "cand-3", selectedID(m), "selection follows the card")
	assert.NotNil(t, resubscribe)
}

func TestView_RendersBoard(t *testing.T) {
	m, _ := setupTestModel(t)
	view := m.View()

	assert.True(t, view.AltScreen)
	assert.Contains(t, view.Content, "Laura Martínez")
	assert.Contains(t, view.Content, "NORMAL")
	assert.True(t, strings.Contains(view.Content, "live"))
}

func TestView_LoadingBeforeSize(t *testing.T) {
	_, svc := setupTestModel(t)
	m := InitialModel(context.Background(), svc, nil)

	assert.Equal(t, "Loading...", m.View().Content)
}
