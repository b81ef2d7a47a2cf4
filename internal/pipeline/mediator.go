package pipeline

import (
	"fmt"
	"slices"
	"strings"

	"github.com/thenoetrevino/talento/internal/models"
)

// EditOutcome describes what an edit did to the board
type EditOutcome struct {
	Item       *models.CandidateItem
	FromColumn string // empty when the item was not on the board
	ToColumn   string
	Moved      bool
	// Recovered is set when the item was not found and was appended to the
	// destination column instead. Callers should surface this as a warning.
	Recovered bool
}

// Create appends a new candidate to the column named by in.Status
func Create(b *Board, gen IDGenerator, in models.CandidateInput) (*Board, *models.CandidateItem, error) {
	if err := validateInput(b, in); err != nil {
		return b, nil, err
	}

	col, _ := b.Column(in.Status)
	item := in.ToItem(gen.NewID())
	items := append(slices.Clone(col.Items), item)

	return b.with(replaceItems(col, items)), item, nil
}

// Edit replaces the candidate with the given id using the editor payload.
// If the item stays in its column it keeps its rank; if its status changed it
// is removed from the old column and appended to the new one. An item that
// cannot be found is appended to the destination column and the outcome is
// flagged as Recovered.
func Edit(b *Board, id string, in models.CandidateInput) (*Board, EditOutcome, error) {
	if err := validateInput(b, in); err != nil {
		return b, EditOutcome{}, err
	}

	dst, _ := b.Column(in.Status)
	item := in.ToItem(id)
	outcome := EditOutcome{Item: item, ToColumn: dst.ID}

	fromID, idx, found := b.Find(id)
	if !found {
		outcome.Recovered = true
		return b.with(replaceItems(dst, append(slices.Clone(dst.Items), item))), outcome, nil
	}

	outcome.FromColumn = fromID
	if fromID == dst.ID {
		items := slices.Clone(dst.Items)
		items[idx] = item
		return b.with(replaceItems(dst, items)), outcome, nil
	}

	src, _ := b.Column(fromID)
	srcItems := slices.Delete(slices.Clone(src.Items), idx, idx+1)
	dstItems := append(slices.Clone(dst.Items), item)
	outcome.Moved = true

	return b.with(replaceItems(src, srcItems), replaceItems(dst, dstItems)), outcome, nil
}

// Delete removes the candidate with the given id from the named column.
// Deleting an id that is not in the column returns b unchanged and false.
func Delete(b *Board, id, columnID string) (*Board, bool, error) {
	col, ok := b.Column(columnID)
	if !ok {
		return b, false, fmt.Errorf("%w: %q", ErrUnknownColumn, columnID)
	}

	idx := col.IndexOf(id)
	if idx < 0 {
		return b, false, nil
	}

	items := slices.Delete(slices.Clone(col.Items), idx, idx+1)
	return b.with(replaceItems(col, items)), true, nil
}

func validateInput(b *Board, in models.CandidateInput) error {
	if !b.HasColumn(in.Status) {
		return fmt.Errorf("%w: %q", ErrUnknownColumn, in.Status)
	}
	if strings.TrimSpace(in.Name) == "" {
		return ErrEmptyName
	}
	if in.Priority != "" && !in.Priority.Valid() {
		return fmt.Errorf("%w: %q", models.ErrInvalidPriority, in.Priority)
	}
	return nil
}
