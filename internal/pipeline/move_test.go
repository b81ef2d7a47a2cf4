package pipeline

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/talento/internal/models"
)

// boardWithColumn returns a board whose nuevos column holds n candidates a0..a(n-1)
func boardWithColumn(n int) *Board {
	b := NewBoard(models.PipelineStages)
	col := b.columns[models.StageNuevos]
	for i := 0; i < n; i++ {
		col.Items = append(col.Items, &models.CandidateItem{ID: string(rune('a'+i)) + "0", Name: "c"})
	}
	return b
}

func TestApplyMove_SameColumnPreservesSet(t *testing.T) {
	t.Parallel()

	const n = 5
	base := boardWithColumn(n)
	before := itemIDs(t, base, models.StageNuevos)

	for src := 0; src < n; src++ {
		for dst := 0; dst < n; dst++ {
			next, err := ApplyMove(base, Move{
				SourceColumnID: models.StageNuevos, SourceIndex: src,
				DestColumnID: models.StageNuevos, DestIndex: dst,
			})
			require.NoError(t, err, "move %d -> %d", src, dst)

			after := itemIDs(t, next, models.StageNuevos)
			assert.Len(t, after, n)
			assert.ElementsMatch(t, before, after)
			assert.Equal(t, before[src], after[dst], "moved item should land at %d", dst)
		}
	}

	// The original board is never touched
	assert.Equal(t, before, itemIDs(t, base, models.StageNuevos))
}

func TestApplyMove_SameColumnReorder(t *testing.T) {
	t.Parallel()

	b := boardWithColumn(4) // a0 b0 c0 d0
	next, err := ApplyMove(b, Move{
		SourceColumnID: models.StageNuevos, SourceIndex: 0,
		DestColumnID: models.StageNuevos, DestIndex: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"b0", "c0", "a0", "d0"}, itemIDs(t, next, models.StageNuevos))
}

func TestApplyMove_CrossColumn(t *testing.T) {
	t.Parallel()

	b := SeedBoard()
	total := b.Len()

	next, err := ApplyMove(b, Move{
		SourceColumnID: models.StageRevisionCV, SourceIndex: 0,
		DestColumnID: models.StageEntrevistaRRHH, DestIndex: 0,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{models.StageEntrevistaRRHH}, columnsHolding(next, "cand-2"))
	assert.Equal(t, []string{"cand-2", "cand-4"}, itemIDs(t, next, models.StageEntrevistaRRHH))
	assert.Equal(t, []string{"cand-3"}, itemIDs(t, next, models.StageRevisionCV))
	assert.Equal(t, total, next.Len())

	// Untouched columns are shared, touched ones are replaced
	oldNuevos, _ := b.Column(models.StageNuevos)
	newNuevos, _ := next.Column(models.StageNuevos)
	assert.Same(t, oldNuevos, newNuevos)
	oldCV, _ := b.Column(models.StageRevisionCV)
	newCV, _ := next.Column(models.StageRevisionCV)
	assert.NotSame(t, oldCV, newCV)
}

func TestApplyMove_CrossColumnEveryDestination(t *testing.T) {
	t.Parallel()

	b := SeedBoard()
	for _, dest := range b.ColumnIDs() {
		if dest == models.StageRevisionCV {
			continue
		}
		destCol, _ := b.Column(dest)
		for idx := 0; idx <= len(destCol.Items); idx++ {
			next, err := ApplyMove(b, Move{
				SourceColumnID: models.StageRevisionCV, SourceIndex: 1,
				DestColumnID: dest, DestIndex: idx,
			})
			require.NoError(t, err)
			assert.Equal(t, []string{dest}, columnsHolding(next, "cand-3"))
			assert.Equal(t, b.Len(), next.Len())
			assert.Equal(t, idx, slices.Index(itemIDs(t, next, dest), "cand-3"))
		}
	}
}

func TestApplyMove_CancelledIsIdentity(t *testing.T) {
	t.Parallel()

	b := SeedBoard()
	next, err := ApplyMove(b, Move{SourceColumnID: models.StageRevisionCV, SourceIndex: 0})

	require.NoError(t, err)
	assert.Same(t, b, next)
}

func TestApplyMove_Preconditions(t *testing.T) {
	t.Parallel()

	b := SeedBoard()
	tests := []struct {
		name string
		move Move
		want error
	}{
		{"unknown source", Move{SourceColumnID: "nope", DestColumnID: models.StageNuevos}, ErrUnknownColumn},
		{"unknown destination", Move{SourceColumnID: models.StageNuevos, DestColumnID: "nope"}, ErrUnknownColumn},
		{"negative source", Move{SourceColumnID: models.StageNuevos, SourceIndex: -1, DestColumnID: models.StageNuevos}, ErrIndexOutOfRange},
		{"source past end", Move{SourceColumnID: models.StageNuevos, SourceIndex: 1, DestColumnID: models.StageContratado}, ErrIndexOutOfRange},
		{"empty source column", Move{SourceColumnID: models.StagePreseleccion, DestColumnID: models.StageNuevos}, ErrIndexOutOfRange},
		{"destination past end", Move{SourceColumnID: models.StageNuevos, DestColumnID: models.StageRevisionCV, DestIndex: 3}, ErrIndexOutOfRange},
		{"same column past end", Move{SourceColumnID: models.StageRevisionCV, DestColumnID: models.StageRevisionCV, DestIndex: 2}, ErrIndexOutOfRange},
		{"negative destination", Move{SourceColumnID: models.StageNuevos, DestColumnID: models.StageRevisionCV, DestIndex: -1}, ErrIndexOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := ApplyMove(b, tt.move)
			assert.ErrorIs(t, err, tt.want)
			assert.Same(t, b, next, "failed move must not produce a new board")
		})
	}
}

func TestMoveItem(t *testing.T) {
	t.Parallel()

	b := SeedBoard()
	next, err := MoveItem(b, "cand-1", models.StageContratado, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"cand-7", "cand-1"}, itemIDs(t, next, models.StageContratado))

	_, err = MoveItem(b, "cand-404", models.StageContratado, 0)
	assert.ErrorIs(t, err, ErrItemNotFound)
}
