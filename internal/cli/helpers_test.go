package cli

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/talento/internal/models"
	"github.com/thenoetrevino/talento/internal/pipeline"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-03-04")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDate("04/03/2024")
	assert.Error(t, err)

	ptr, err := ParseDatePtr("")
	require.NoError(t, err)
	assert.Nil(t, ptr)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"Go", "SQL"}, SplitList(" Go, ,SQL ,"))
	assert.Nil(t, SplitList(""))
}

func TestResolveColumn(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"nuevos", models.StageNuevos},
		{"CONTRATADO", models.StageContratado},
		{"Revisión de CV", models.StageRevisionCV},
		{"archivo", "archivo"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveColumn(tt.in))
		})
	}
}

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"not found", fmt.Errorf("edit: %w", pipeline.ErrItemNotFound), ExitNotFound},
		{"unknown column", pipeline.ErrUnknownColumn, ExitValidation},
		{"bad priority", models.ErrInvalidPriority, ExitValidation},
		{"explicit", &ExitError{Code: ExitUsage, Err: errors.New("missing --id")}, ExitUsage},
		{"other", errors.New("disk full"), ExitGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFor(tt.err))
		})
	}
	assert.Equal(t, "UNKNOWN_COLUMN", ErrorCode(pipeline.ErrUnknownColumn))
	assert.Equal(t, "NOT_FOUND", ErrorCode(pipeline.ErrItemNotFound))
}
