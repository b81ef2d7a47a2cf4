package database

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/thenoetrevino/talento/internal/models"
	"github.com/thenoetrevino/talento/internal/pipeline"
)

// metaSeeded marks that the sample candidates were written once, so an
// emptied board is not re-seeded on the next start
const metaSeeded = "seeded"

// metaVersion counts saves. Writers compare it to detect that another
// process saved in between.
const metaVersion = "version"

// BoardRepo persists whole-board snapshots
type BoardRepo struct {
	db *sql.DB
}

// Load reads the persisted board and its version in one transaction.
// found is false when nothing was ever saved; the version is still set so
// the first save can be checked against it.
func (r *BoardRepo) Load(ctx context.Context) (snap Snapshot, found bool, err error) {
	err = withTx(ctx, r.db, func(tx *sql.Tx) error {
		version, err := readVersion(ctx, tx)
		if err != nil {
			return err
		}
		snap.Version = version

		var seeded string
		err = tx.QueryRowContext(ctx, "SELECT value FROM board_meta WHERE key = ?", metaSeeded).Scan(&seeded)
		if err == sql.ErrNoRows {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read board metadata: %w", err)
		}

		columns, err := r.loadColumns(ctx, tx)
		if err != nil {
			return err
		}
		if snap.Board, err = pipeline.Restore(models.PipelineStages, columns); err != nil {
			return fmt.Errorf("failed to restore board: %w", err)
		}
		found = true
		return nil
	})
	if err != nil {
		return Snapshot{}, false, err
	}
	return snap, found, nil
}

func readVersion(ctx context.Context, q queryer) (int64, error) {
	var raw string
	err := q.QueryRowContext(ctx, "SELECT value FROM board_meta WHERE key = ?", metaVersion).Scan(&raw)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read board version: %w", err)
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid board version %q: %w", raw, err)
	}
	return v, nil
}

func (r *BoardRepo) loadColumns(ctx context.Context, q queryer) ([]*models.Column, error) {
	rows, err := q.QueryContext(ctx, "SELECT id, title FROM columns ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("failed to query columns: %w", err)
	}
	defer rows.Close()

	var columns []*models.Column
	byID := make(map[string]*models.Column)
	for rows.Next() {
		col := &models.Column{Items: []*models.CandidateItem{}}
		if err := rows.Scan(&col.ID, &col.Title); err != nil {
			return nil, fmt.Errorf("failed to scan column: %w", err)
		}
		columns = append(columns, col)
		byID[col.ID] = col
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	candRows, err := q.QueryContext(ctx, `
		SELECT id, column_id, name, email, job_position, department, skills, salary,
		       priority, application_date, interview_date, hire_date, notes, tags, contract_type
		FROM candidates
		ORDER BY column_id, position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer candRows.Close()

	for candRows.Next() {
		item, columnID, err := scanCandidate(candRows)
		if err != nil {
			return nil, err
		}
		col, ok := byID[columnID]
		if !ok {
			return nil, fmt.Errorf("candidate %s references unknown column %s", item.ID, columnID)
		}
		col.Items = append(col.Items, item)
	}
	return columns, candRows.Err()
}

func scanCandidate(rows *sql.Rows) (*models.CandidateItem, string, error) {
	var (
		item                             models.CandidateItem
		columnID, skills, tags, priority string
		applied                          string
		interview, hire, contractType    sql.NullString
	)
	if err := rows.Scan(&item.ID, &columnID, &item.Name, &item.Email, &item.Position, &item.Department,
		&skills, &item.Salary, &priority, &applied, &interview, &hire, &item.Notes, &tags, &contractType); err != nil {
		return nil, "", fmt.Errorf("failed to scan candidate: %w", err)
	}

	var err error
	item.Priority = models.Priority(priority)
	if item.Skills, err = decodeList(skills); err != nil {
		return nil, "", err
	}
	if item.Tags, err = decodeList(tags); err != nil {
		return nil, "", err
	}
	if item.ApplicationDate, err = time.Parse(dateLayout, applied); err != nil {
		return nil, "", fmt.Errorf("invalid application date for %s: %w", item.ID, err)
	}
	if item.InterviewDate, err = nullStringToTime(interview); err != nil {
		return nil, "", err
	}
	if item.HireDate, err = nullStringToTime(hire); err != nil {
		return nil, "", err
	}
	if contractType.Valid {
		ct := models.ContractType(contractType.String)
		item.ContractType = &ct
	}
	return &item, columnID, nil
}

// Save replaces the persisted board with b in a single transaction and
// returns the new version. It fails with ErrStaleBoard when the stored
// version is no longer expectedVersion.
func (r *BoardRepo) Save(ctx context.Context, b *pipeline.Board, expectedVersion int64) (int64, error) {
	next := expectedVersion + 1
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		// Bumping the version first takes the write lock before anything is read
		res, err := tx.ExecContext(ctx,
			"UPDATE board_meta SET value = ? WHERE key = ? AND value = ?",
			strconv.FormatInt(next, 10), metaVersion, strconv.FormatInt(expectedVersion, 10))
		if err != nil {
			return fmt.Errorf("failed to update board version: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check board version: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("%w: expected version %d", ErrStaleBoard, expectedVersion)
		}

		if _, err := tx.ExecContext(ctx, "DELETE FROM candidates"); err != nil {
			return fmt.Errorf("failed to clear candidates: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO candidates (id, column_id, position, name, email, job_position, department,
				skills, salary, priority, application_date, interview_date, hire_date, notes, tags, contract_type)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare insert: %w", err)
		}
		defer stmt.Close()

		for _, col := range b.Columns() {
			for pos, item := range col.Items {
				if err := insertCandidate(ctx, stmt, col.ID, pos, item); err != nil {
					return err
				}
			}
		}

		if _, err := tx.ExecContext(ctx,
			"INSERT INTO board_meta (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
			metaSeeded, time.Now().UTC().Format(dateLayout),
		); err != nil {
			return fmt.Errorf("failed to update board metadata: %w", err)
		}
		return nil
	})
	if err != nil {
		return expectedVersion, err
	}
	return next, nil
}

func insertCandidate(ctx context.Context, stmt *sql.Stmt, columnID string, pos int, item *models.CandidateItem) error {
	skills, err := encodeList(item.Skills)
	if err != nil {
		return err
	}
	tags, err := encodeList(item.Tags)
	if err != nil {
		return err
	}
	var contractType sql.NullString
	if item.ContractType != nil {
		contractType = sql.NullString{String: string(*item.ContractType), Valid: true}
	}

	_, err = stmt.ExecContext(ctx,
		item.ID, columnID, pos, item.Name, item.Email, item.Position, item.Department,
		skills, item.Salary, string(item.Priority), item.ApplicationDate.Format(dateLayout),
		timeToNullString(item.InterviewDate), timeToNullString(item.HireDate),
		item.Notes, tags, contractType,
	)
	if err != nil {
		return fmt.Errorf("failed to insert candidate %s: %w", item.ID, err)
	}
	return nil
}
