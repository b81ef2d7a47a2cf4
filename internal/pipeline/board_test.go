package pipeline

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/talento/internal/models"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// itemIDs returns the ids of a column's items in order
func itemIDs(t *testing.T, b *Board, columnID string) []string {
	t.Helper()
	col, ok := b.Column(columnID)
	require.True(t, ok, "column %s should exist", columnID)
	ids := make([]string, 0, len(col.Items))
	for _, item := range col.Items {
		ids = append(ids, item.ID)
	}
	return ids
}

// columnsHolding returns every column id that holds the given candidate
func columnsHolding(b *Board, itemID string) []string {
	var out []string
	for _, col := range b.Columns() {
		if col.IndexOf(itemID) >= 0 {
			out = append(out, col.ID)
		}
	}
	return out
}

// ============================================================================
// TEST CASES
// ============================================================================

func TestSeedBoard_Layout(t *testing.T) {
	t.Parallel()

	b := SeedBoard()

	assert.Len(t, b.Columns(), 12)
	assert.Equal(t, SeedIDCount, b.Len())
	assert.Equal(t, models.StageNuevos, b.ColumnIDs()[0])
	assert.Equal(t, models.StageDescartado, b.ColumnIDs()[11])
	assert.Equal(t, []string{"cand-2", "cand-3"}, itemIDs(t, b, models.StageRevisionCV))
}

func TestBoard_Find(t *testing.T) {
	t.Parallel()

	b := SeedBoard()

	colID, idx, ok := b.Find("cand-3")
	require.True(t, ok)
	assert.Equal(t, models.StageRevisionCV, colID)
	assert.Equal(t, 1, idx)

	_, _, ok = b.Find("cand-404")
	assert.False(t, ok)

	item, colID, ok := b.Item("cand-4")
	require.True(t, ok)
	assert.Equal(t, "Javier López", item.Name)
	assert.Equal(t, models.StageEntrevistaRRHH, colID)
}

func TestRestore_RoundTrip(t *testing.T) {
	t.Parallel()

	seed := SeedBoard()
	restored, err := Restore(models.PipelineStages, seed.Columns())
	require.NoError(t, err)

	assert.Equal(t, seed.ColumnIDs(), restored.ColumnIDs())
	for _, id := range seed.ColumnIDs() {
		assert.Equal(t, itemIDs(t, seed, id), itemIDs(t, restored, id))
	}
}

func TestRestore_RejectsDuplicates(t *testing.T) {
	t.Parallel()

	cols := NewBoard(models.PipelineStages).Columns()
	dup := &models.CandidateItem{ID: "cand-1", Name: "Dup"}
	cols[0] = &models.Column{ID: cols[0].ID, Items: []*models.CandidateItem{dup}}
	cols[1] = &models.Column{ID: cols[1].ID, Items: []*models.CandidateItem{dup}}

	_, err := Restore(models.PipelineStages, cols)
	assert.ErrorIs(t, err, ErrDuplicateItem)
}

func TestRestore_RejectsUnknownColumn(t *testing.T) {
	t.Parallel()

	cols := NewBoard(models.PipelineStages).Columns()
	cols[3] = &models.Column{ID: "not-a-column"}

	_, err := Restore(models.PipelineStages, cols)
	assert.ErrorIs(t, err, ErrUnknownColumn)

	_, err = Restore(models.PipelineStages, cols[:2])
	assert.ErrorIs(t, err, ErrInvalidBoard)
}

func TestBoard_MarshalJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(SeedBoard())
	require.NoError(t, err)

	var decoded struct {
		Columns []models.Column `json:"columns"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.Columns, 12)
	assert.Equal(t, models.StageNuevos, decoded.Columns[0].ID)
	assert.Equal(t, "cand-1", decoded.Columns[0].Items[0].ID)
}
