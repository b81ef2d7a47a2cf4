package board

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/talento/internal/cli"
	"github.com/thenoetrevino/talento/internal/models"
	"github.com/thenoetrevino/talento/internal/pipeline"
	"github.com/thenoetrevino/talento/internal/testutil"
)

func TestShowCommand(t *testing.T) {
	testApp := testutil.NewTestApp(t)

	tests := []struct {
		name      string
		args      []string
		wantCode  int
		checkFunc func(t *testing.T, output string)
	}{
		{
			name: "human-readable output lists every column",
			args: nil,
			checkFunc: func(t *testing.T, output string) {
				for _, s := range models.PipelineStages {
					assert.Contains(t, output, s.Title)
				}
				assert.Contains(t, output, "Laura Martínez")
			},
		},
		{
			name: "quiet prints one id per line",
			args: []string{"--quiet"},
			checkFunc: func(t *testing.T, output string) {
				lines := strings.Split(strings.TrimSpace(output), "\n")
				assert.Len(t, lines, pipeline.SeedIDCount)
				assert.Equal(t, "cand-1", lines[0])
			},
		},
		{
			name: "json filtered by column title",
			args: []string{"--json", "--column", "Revisión de CV"},
			checkFunc: func(t *testing.T, output string) {
				result := testutil.ParseJSON(t, output)
				assert.Equal(t, true, result["success"])
				columns := result["columns"].([]any)
				require.Len(t, columns, 1)
				col := columns[0].(map[string]any)
				assert.Equal(t, models.StageRevisionCV, col["id"])
				assert.Len(t, col["items"], 2)
			},
		},
		{
			name:     "unknown column",
			args:     []string{"--column", "archivo"},
			wantCode: cli.ExitValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := testutil.ExecuteCommand(t, testApp, ShowCmd(), tt.args...)
			assert.Equal(t, tt.wantCode, cli.ExitCodeFor(err))
			if tt.checkFunc != nil {
				tt.checkFunc(t, output)
			}
		})
	}
}

func TestStatsCommand(t *testing.T) {
	testApp := testutil.NewTestApp(t)

	output, err := testutil.ExecuteCommand(t, testApp, StatsCmd(), "--json")
	require.NoError(t, err)
	result := testutil.ParseJSON(t, output)
	summary := result["stats"].(map[string]any)
	assert.Equal(t, float64(pipeline.SeedIDCount), summary["total"])

	output, err = testutil.ExecuteCommand(t, testApp, StatsCmd())
	require.NoError(t, err)
	assert.Contains(t, output, "Embudo")
}

func TestResetCommand(t *testing.T) {
	ctx := context.Background()
	testApp := testutil.NewTestApp(t)

	_, err := testApp.BoardService.DeleteCandidate(ctx, "cand-1", models.StageNuevos)
	require.NoError(t, err)

	// No --yes and no answer on stdin cancels
	output, err := testutil.ExecuteCommand(t, testApp, ResetCmd())
	require.NoError(t, err)
	assert.Contains(t, output, "Cancelled")
	assert.Equal(t, pipeline.SeedIDCount-1, testApp.BoardService.Board(ctx).Len())

	output, err = testutil.ExecuteCommand(t, testApp, ResetCmd(), "--yes")
	require.NoError(t, err)
	assert.Contains(t, output, "Board reset")
	assert.Equal(t, pipeline.SeedIDCount, testApp.BoardService.Board(ctx).Len())
}
