package database

import (
	"context"
	"database/sql"

	"github.com/thenoetrevino/talento/internal/pipeline"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*BoardRepo
	db *sql.DB
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		BoardRepo: &BoardRepo{db: db},
		db:        db,
	}
}

// LoadBoard reads the persisted board and its version
func (r *Repository) LoadBoard(ctx context.Context) (Snapshot, bool, error) {
	return r.BoardRepo.Load(ctx)
}

// SaveBoard replaces the persisted board if it is still at expectedVersion
func (r *Repository) SaveBoard(ctx context.Context, b *pipeline.Board, expectedVersion int64) (int64, error) {
	return r.BoardRepo.Save(ctx, b, expectedVersion)
}

// Close closes the underlying database
func (r *Repository) Close() error {
	return r.db.Close()
}
