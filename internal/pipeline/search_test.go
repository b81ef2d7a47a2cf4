package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	t.Parallel()

	b := SeedBoard()
	tests := []struct {
		name    string
		query   string
		wantTop string
	}{
		{"exact name", "carlos", "cand-2"},
		{"department", "finanzas", "cand-3"},
		{"tag", "referido", "cand-4"},
		{"skill", "kubernetes", "cand-5"},
		{"typo in surname", "fernandes", "cand-7"},
		{"without accents", "lucia", "cand-7"},
		{"accented query", "GÓMEZ", "cand-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits := Search(b, tt.query, 0)
			require.NotEmpty(t, hits)
			assert.Equal(t, tt.wantTop, hits[0].Item.ID)
		})
	}
}

func TestSearch_LimitAndEmpty(t *testing.T) {
	t.Parallel()

	b := SeedBoard()
	assert.Nil(t, Search(b, "  ", 10))
	assert.Len(t, Search(b, "tecnología", 2), 2)
	assert.Len(t, Search(b, "tecnologia", 0), 4)
	assert.Empty(t, Search(b, "zzzzzzzz", 0))
}

func TestIDGenerators(t *testing.T) {
	t.Parallel()

	seq := NewSequentialIDs(9)
	assert.Equal(t, "cand-9", seq.NewID())
	assert.Equal(t, "cand-10", seq.NewID())

	var u UUIDGenerator
	a, c := u.NewID(), u.NewID()
	assert.NotEqual(t, a, c)
	assert.Len(t, a, len(IDPrefix)+36)
}
