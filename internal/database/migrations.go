package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/talento/internal/models"
)

// runMigrations creates the database schema and seeds the pipeline stages if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS columns (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			position INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS candidates (
			id TEXT PRIMARY KEY,
			column_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			email TEXT NOT NULL DEFAULT '',
			job_position TEXT NOT NULL DEFAULT '',
			department TEXT NOT NULL DEFAULT '',
			skills TEXT NOT NULL DEFAULT '[]',
			salary REAL NOT NULL DEFAULT 0,
			priority TEXT NOT NULL DEFAULT 'MEDIA',
			application_date TEXT NOT NULL,
			interview_date TEXT,
			hire_date TEXT,
			notes TEXT NOT NULL DEFAULT '',
			tags TEXT NOT NULL DEFAULT '[]',
			contract_type TEXT,
			FOREIGN KEY (column_id) REFERENCES columns(id) ON DELETE CASCADE,
			UNIQUE(column_id, position)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_candidates_column
		ON candidates(column_id, position)`,
		`CREATE TABLE IF NOT EXISTS board_meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
		`INSERT OR IGNORE INTO board_meta (key, value) VALUES ('version', '0')`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	return seedStages(ctx, db)
}

// seedStages inserts the fixed pipeline stages if the columns table is empty
func seedStages(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM columns").Scan(&count); err != nil {
		return err
	}

	// If columns exist, don't seed
	if count > 0 {
		return nil
	}

	return withTx(ctx, db, func(tx *sql.Tx) error {
		for i, stage := range models.PipelineStages {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO columns (id, title, position) VALUES (?, ?, ?)",
				stage.ID, stage.Title, i,
			); err != nil {
				return fmt.Errorf("failed to seed stage %s: %w", stage.ID, err)
			}
		}
		return nil
	})
}
