// Package pipeline holds the recruiting board and the pure transition
// functions that act on it. A Board is never mutated after construction:
// every transition returns a new *Board, and a transition that changes
// nothing returns the input pointer so callers can detect changes by identity.
package pipeline

import (
	"encoding/json"
	"fmt"

	"github.com/thenoetrevino/talento/internal/models"
)

// Board maps column ids to columns. The set of columns is fixed at construction.
type Board struct {
	order   []string
	columns map[string]*models.Column
}

// NewBoard creates an empty board with one column per stage, in stage order
func NewBoard(stages []models.Stage) *Board {
	b := &Board{
		order:   make([]string, 0, len(stages)),
		columns: make(map[string]*models.Column, len(stages)),
	}
	for _, s := range stages {
		b.order = append(b.order, s.ID)
		b.columns[s.ID] = &models.Column{ID: s.ID, Title: s.Title, Items: []*models.CandidateItem{}}
	}
	return b
}

// Restore builds a board from persisted columns. Column ids must match the
// stages exactly and every candidate id must be unique across the board.
func Restore(stages []models.Stage, columns []*models.Column) (*Board, error) {
	b := NewBoard(stages)
	if len(columns) != len(stages) {
		return nil, fmt.Errorf("%w: got %d columns, want %d", ErrInvalidBoard, len(columns), len(stages))
	}

	seen := make(map[string]string)
	for _, col := range columns {
		if _, ok := b.columns[col.ID]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, col.ID)
		}
		items := make([]*models.CandidateItem, 0, len(col.Items))
		for _, item := range col.Items {
			if prev, dup := seen[item.ID]; dup {
				return nil, fmt.Errorf("%w: %s in %s and %s", ErrDuplicateItem, item.ID, prev, col.ID)
			}
			seen[item.ID] = col.ID
			items = append(items, item.Clone())
		}
		b.columns[col.ID] = &models.Column{ID: col.ID, Title: b.columns[col.ID].Title, Items: items}
	}
	return b, nil
}

// ColumnIDs returns the column ids in display order
func (b *Board) ColumnIDs() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

// Columns returns the columns in display order.
// The returned columns are shared with the board and must not be modified.
func (b *Board) Columns() []*models.Column {
	out := make([]*models.Column, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.columns[id])
	}
	return out
}

// Column returns the column with the given id
func (b *Board) Column(id string) (*models.Column, bool) {
	col, ok := b.columns[id]
	return col, ok
}

// HasColumn reports whether id names a board column
func (b *Board) HasColumn(id string) bool {
	_, ok := b.columns[id]
	return ok
}

// ColumnIndex returns the display position of a column, or -1
func (b *Board) ColumnIndex(id string) int {
	for i, cid := range b.order {
		if cid == id {
			return i
		}
	}
	return -1
}

// Find locates a candidate by id with a linear scan over all columns
func (b *Board) Find(itemID string) (columnID string, index int, ok bool) {
	for _, id := range b.order {
		if i := b.columns[id].IndexOf(itemID); i >= 0 {
			return id, i, true
		}
	}
	return "", -1, false
}

// Item returns the candidate with the given id and the column holding it
func (b *Board) Item(itemID string) (*models.CandidateItem, string, bool) {
	colID, i, ok := b.Find(itemID)
	if !ok {
		return nil, "", false
	}
	return b.columns[colID].Items[i], colID, true
}

// Len returns the total number of candidates on the board
func (b *Board) Len() int {
	n := 0
	for _, col := range b.columns {
		n += len(col.Items)
	}
	return n
}

// with returns a copy of the board where the given columns replace the
// columns with the same id. Untouched columns are shared.
func (b *Board) with(cols ...*models.Column) *Board {
	next := &Board{
		order:   b.order,
		columns: make(map[string]*models.Column, len(b.columns)),
	}
	for id, col := range b.columns {
		next.columns[id] = col
	}
	for _, col := range cols {
		next.columns[col.ID] = col
	}
	return next
}

// MarshalJSON encodes the board as an ordered list of columns
func (b *Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Columns []*models.Column `json:"columns"`
	}{Columns: b.Columns()})
}

// replaceItems returns a new column with the same identity and the given items
func replaceItems(col *models.Column, items []*models.CandidateItem) *models.Column {
	return &models.Column{ID: col.ID, Title: col.Title, Items: items}
}
