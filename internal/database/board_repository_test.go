package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/talento/internal/models"
	"github.com/thenoetrevino/talento/internal/pipeline"
)

func TestMigrations_SeedStages(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)

	rows, err := db.QueryContext(context.Background(), "SELECT id FROM columns ORDER BY position")
	require.NoError(t, err)
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		require.NoError(t, rows.Scan(&id))
		ids = append(ids, id)
	}
	require.NoError(t, rows.Err())

	require.Len(t, ids, len(models.PipelineStages))
	for i, stage := range models.PipelineStages {
		assert.Equal(t, stage.ID, ids[i])
	}
}

func TestBoardRepo_LoadEmpty(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))

	snap, found, err := repo.LoadBoard(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, snap.Board)
	assert.Zero(t, snap.Version)
}

func TestBoardRepo_SaveLoadRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))

	seed := pipeline.SeedBoard()
	version, err := repo.SaveBoard(ctx, seed, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	snap, found, err := repo.LoadBoard(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, version, snap.Version)
	loaded := snap.Board

	assert.Equal(t, seed.Len(), loaded.Len())
	for _, col := range seed.Columns() {
		got, ok := loaded.Column(col.ID)
		require.True(t, ok)
		require.Len(t, got.Items, len(col.Items), "column %s", col.ID)
		for i, want := range col.Items {
			assert.Equal(t, want.ID, got.Items[i].ID)
			assert.Equal(t, want.Name, got.Items[i].Name)
			assert.Equal(t, want.Skills, got.Items[i].Skills)
			assert.Equal(t, want.Tags, got.Items[i].Tags)
			assert.Equal(t, want.Priority, got.Items[i].Priority)
			assert.True(t, want.ApplicationDate.Equal(got.Items[i].ApplicationDate))
		}
	}

	hired, _, ok := loaded.Item("cand-7")
	require.True(t, ok)
	require.NotNil(t, hired.HireDate)
	assert.True(t, hired.HireDate.Equal(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)))
	require.NotNil(t, hired.ContractType)
	assert.Equal(t, models.ContractTemporal, *hired.ContractType)

	fresh, _, ok := loaded.Item("cand-1")
	require.True(t, ok)
	assert.Nil(t, fresh.InterviewDate)
	assert.Nil(t, fresh.ContractType)
}

func TestBoardRepo_SaveReplacesSnapshot(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))

	seed := pipeline.SeedBoard()
	version, err := repo.SaveBoard(ctx, seed, 0)
	require.NoError(t, err)

	moved, err := pipeline.ApplyMove(seed, pipeline.Move{
		SourceColumnID: models.StageRevisionCV, SourceIndex: 1,
		DestColumnID: models.StageRevisionCV, DestIndex: 0,
	})
	require.NoError(t, err)
	trimmed, _, err := pipeline.Delete(moved, "cand-8", models.StageDescartado)
	require.NoError(t, err)
	_, err = repo.SaveBoard(ctx, trimmed, version)
	require.NoError(t, err)

	snap, _, err := repo.LoadBoard(ctx)
	require.NoError(t, err)
	loaded := snap.Board
	assert.Equal(t, seed.Len()-1, loaded.Len())
	col, _ := loaded.Column(models.StageRevisionCV)
	require.Len(t, col.Items, 2)
	assert.Equal(t, "cand-3", col.Items[0].ID)
	assert.Equal(t, "cand-2", col.Items[1].ID)
}

func TestBoardRepo_EmptyBoardStaysEmpty(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))

	_, err := repo.SaveBoard(ctx, pipeline.NewBoard(models.PipelineStages), 0)
	require.NoError(t, err)

	snap, found, err := repo.LoadBoard(ctx)
	require.NoError(t, err)
	assert.True(t, found, "an emptied board is still a saved board")
	assert.Zero(t, snap.Board.Len())
}

func TestBoardRepo_SaveRejectsStaleVersion(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := setupTestDBFile(t)

	open := func() *Repository {
		db, err := InitDB(ctx, path)
		require.NoError(t, err)
		repo := NewRepository(db)
		t.Cleanup(func() { _ = repo.Close() })
		return repo
	}
	first, second := open(), open()

	_, err := first.SaveBoard(ctx, pipeline.SeedBoard(), 0)
	require.NoError(t, err)

	// second still believes the board is at version 0
	_, err = second.SaveBoard(ctx, pipeline.NewBoard(models.PipelineStages), 0)
	require.ErrorIs(t, err, ErrStaleBoard)

	snap, found, err := second.LoadBoard(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, pipeline.SeedBoard().Len(), snap.Board.Len(), "rejected save left the board alone")

	version, err := second.SaveBoard(ctx, pipeline.NewBoard(models.PipelineStages), snap.Version)
	require.NoError(t, err)
	assert.Equal(t, snap.Version+1, version)
}
