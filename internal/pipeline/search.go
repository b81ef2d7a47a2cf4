package pipeline

import (
	"sort"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
	"github.com/thenoetrevino/talento/internal/models"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// fuzzyThreshold is the minimum name similarity for a fuzzy hit
const fuzzyThreshold = 0.6

// SearchHit is one candidate matched by Search
type SearchHit struct {
	Item     *models.CandidateItem `json:"item"`
	ColumnID string                `json:"columnId"`
	Score    float64               `json:"score"`
}

// Search matches candidates by substring on name, email, position,
// department and tags, falling back to Levenshtein similarity on the name
// so that typos still find the candidate. Hits are ranked by score and then
// by board order. A limit <= 0 returns all hits.
func Search(b *Board, query string, limit int) []SearchHit {
	q := fold(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var hits []SearchHit
	for _, col := range b.Columns() {
		for _, item := range col.Items {
			if score := matchScore(item, q); score > 0 {
				hits = append(hits, SearchHit{Item: item, ColumnID: col.ID, Score: score})
			}
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})
	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	return hits
}

func matchScore(item *models.CandidateItem, q string) float64 {
	name := fold(item.Name)
	if strings.Contains(name, q) {
		return 1
	}

	fields := []string{item.Email, item.Position, item.Department}
	fields = append(fields, item.Tags...)
	fields = append(fields, item.Skills...)
	for _, f := range fields {
		if strings.Contains(fold(f), q) {
			return 0.8
		}
	}

	best := similarity(name, q)
	for _, word := range strings.Fields(name) {
		if s := similarity(word, q); s > best {
			best = s
		}
	}
	if best >= fuzzyThreshold {
		return best * 0.75
	}
	return 0
}

func similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	longest := max(len(ra), len(rb))
	if longest == 0 {
		return 0
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}

// fold lowercases s and strips diacritics so "lucia" finds "Lucía"
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}
