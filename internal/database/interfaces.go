// Package database defines repository interfaces for data access
package database

import (
	"context"
	"errors"

	"github.com/thenoetrevino/talento/internal/pipeline"
)

// ErrStaleBoard is returned by SaveBoard when another writer saved the
// board after the snapshot the caller based its change on.
var ErrStaleBoard = errors.New("board was changed by another writer")

// Snapshot is a persisted board and the version it was saved as
type Snapshot struct {
	Board   *pipeline.Board
	Version int64
}

// BoardStore persists board snapshots with optimistic versioning. Every
// save names the version it was based on and returns the new one.
// This interface enables swapping the sqlite store for a fake in unit tests.
type BoardStore interface {
	LoadBoard(ctx context.Context) (Snapshot, bool, error)
	SaveBoard(ctx context.Context, b *pipeline.Board, expectedVersion int64) (int64, error)
}

// Compile-time verification that *Repository implements BoardStore
var _ BoardStore = (*Repository)(nil)
