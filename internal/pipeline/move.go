package pipeline

import (
	"fmt"
	"slices"
)

// Move describes a drag of one card. An empty DestColumnID means the drag
// was cancelled (dropped outside any column).
type Move struct {
	SourceColumnID string `json:"sourceColumnId"`
	SourceIndex    int    `json:"sourceIndex"`
	DestColumnID   string `json:"destColumnId,omitempty"`
	DestIndex      int    `json:"destIndex"`
}

// Cancelled reports whether the move has no destination
func (m Move) Cancelled() bool {
	return m.DestColumnID == ""
}

// ApplyMove relocates one card and returns the resulting board.
// A cancelled move returns b itself. Indexes are never clamped: a source
// index outside [0, len) or a destination index outside [0, len] of the
// destination sequence (after removal, for same-column moves) fails with
// ErrIndexOutOfRange.
func ApplyMove(b *Board, m Move) (*Board, error) {
	if m.Cancelled() {
		return b, nil
	}

	src, ok := b.Column(m.SourceColumnID)
	if !ok {
		return b, fmt.Errorf("%w: %q", ErrUnknownColumn, m.SourceColumnID)
	}
	dst, ok := b.Column(m.DestColumnID)
	if !ok {
		return b, fmt.Errorf("%w: %q", ErrUnknownColumn, m.DestColumnID)
	}
	if m.SourceIndex < 0 || m.SourceIndex >= len(src.Items) {
		return b, fmt.Errorf("%w: source index %d in %s (len %d)", ErrIndexOutOfRange, m.SourceIndex, src.ID, len(src.Items))
	}

	item := src.Items[m.SourceIndex]
	srcItems := slices.Delete(slices.Clone(src.Items), m.SourceIndex, m.SourceIndex+1)

	if src.ID == dst.ID {
		if m.DestIndex < 0 || m.DestIndex > len(srcItems) {
			return b, fmt.Errorf("%w: destination index %d in %s (len %d)", ErrIndexOutOfRange, m.DestIndex, dst.ID, len(srcItems))
		}
		return b.with(replaceItems(src, slices.Insert(srcItems, m.DestIndex, item))), nil
	}

	if m.DestIndex < 0 || m.DestIndex > len(dst.Items) {
		return b, fmt.Errorf("%w: destination index %d in %s (len %d)", ErrIndexOutOfRange, m.DestIndex, dst.ID, len(dst.Items))
	}
	dstItems := slices.Insert(slices.Clone(dst.Items), m.DestIndex, item)

	return b.with(replaceItems(src, srcItems), replaceItems(dst, dstItems)), nil
}

// MoveItem moves the candidate with the given id to a column position.
// It is a convenience wrapper over ApplyMove for callers that address cards
// by id rather than by drag coordinates.
func MoveItem(b *Board, itemID, destColumnID string, destIndex int) (*Board, error) {
	colID, idx, ok := b.Find(itemID)
	if !ok {
		return b, fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
	}
	return ApplyMove(b, Move{
		SourceColumnID: colID,
		SourceIndex:    idx,
		DestColumnID:   destColumnID,
		DestIndex:      destIndex,
	})
}
