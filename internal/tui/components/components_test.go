package components

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/talento/internal/models"
)

func testColumn(n int) *models.Column {
	col := &models.Column{ID: models.StageNuevos, Title: "Nuevos candidatos"}
	for i := range n {
		col.Items = append(col.Items, &models.CandidateItem{
			ID:       "c" + string(rune('a'+i)),
			Name:     "Candidate " + string(rune('A'+i)),
			Position: "Backend",
			Priority: models.PriorityAlta,
			Tags:     []string{"remoto"},
		})
	}
	return col
}

func TestRenderCard_ShowsNameAndPriority(t *testing.T) {
	out := RenderCard(testColumn(1).Items[0], false)

	assert.Contains(t, out, "Candidate A")
	assert.Contains(t, out, "ALTA")
	assert.Contains(t, out, "[remoto]")
	assert.Equal(t, CardHeight, lipgloss.Height(out))
}

func TestRenderCard_TruncatesLongNames(t *testing.T) {
	item := &models.CandidateItem{ID: "x", Name: strings.Repeat("Larguísimo ", 10), Priority: models.PriorityBaja}
	out := RenderCard(item, true)

	assert.Contains(t, out, "…")
	assert.Equal(t, CardHeight, lipgloss.Height(out))
}

func TestRenderColumn_Empty(t *testing.T) {
	out := RenderColumn(&models.Column{ID: "x", Title: "Descartado"}, false, 0, 30, 0)

	assert.Contains(t, out, "Descartado (0)")
	assert.Contains(t, out, "Sin candidatos")
}

func TestRenderColumn_ScrollIndicators(t *testing.T) {
	col := testColumn(6)
	height := columnOverhead + 2*CardHeight

	top := RenderColumn(col, true, 0, height, 0)
	assert.Contains(t, top, "Candidate A")
	assert.NotContains(t, top, "Candidate C")
	assert.NotContains(t, top, "more above")
	assert.Contains(t, top, "more below")

	bottom := RenderColumn(col, true, 5, height, 4)
	assert.Contains(t, bottom, "Candidate F")
	assert.Contains(t, bottom, "more above")
	assert.NotContains(t, bottom, "more below")
}

func TestVisibleCards_AtLeastOne(t *testing.T) {
	assert.Equal(t, 1, VisibleCards(0))
	assert.Equal(t, 3, VisibleCards(columnOverhead+3*CardHeight))
}

func TestRenderNotes(t *testing.T) {
	assert.Contains(t, RenderNotes("", 40), "Sin notas")
	assert.Contains(t, RenderNotes("**fintech** background", 40), "fintech")
}

func TestRenderDetail_ListsFields(t *testing.T) {
	ct := models.ContractType("INDEFINIDO")
	item := &models.CandidateItem{
		ID:           "cand-1",
		Name:         "Ana",
		Email:        "ana@example.com",
		Salary:       42000,
		Priority:     models.PriorityMedia,
		ContractType: &ct,
		Notes:        "Strong",
	}
	out := RenderDetail(item, "Nuevos candidatos", 50)

	for _, want := range []string{"Ana", "cand-1 · Nuevos candidatos", "ana@example.com", "42000 €", "INDEFINIDO", "Strong"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "Entrevista", "unset dates are omitted")
}

func TestRenderStatusBar(t *testing.T) {
	out := RenderStatusBar(StatusBarProps{
		Mode: "NORMAL", Candidates: 8, Column: "Nuevos", Position: 1, ColumnLen: 2, Live: true, Width: 100,
	})
	assert.Contains(t, out, "NORMAL")
	assert.Contains(t, out, "1/2")
	assert.Contains(t, out, "8 candidatos · live")
}
