// Package board owns the mutable recruiting board. Every surface (terminal
// board, HTTP API, CLI) reads and changes the board through Service.
package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/thenoetrevino/talento/internal/database"
	"github.com/thenoetrevino/talento/internal/events"
	"github.com/thenoetrevino/talento/internal/metrics"
	"github.com/thenoetrevino/talento/internal/models"
	"github.com/thenoetrevino/talento/internal/pipeline"
	"github.com/thenoetrevino/talento/internal/stats"
)

// publishRetries bounds PublishWithRetry for board events
const publishRetries = 3

// commitAttempts bounds how often a transition is re-applied after another
// process saved the board first
const commitAttempts = 3

// Service defines all board operations
type Service interface {
	// Read operations
	Board(ctx context.Context) *pipeline.Board
	Search(ctx context.Context, query string, limit int) []pipeline.SearchHit
	Stats(ctx context.Context) stats.Summary
	PendingDelete(ctx context.Context) (models.PendingDelete, bool)
	Listen(ctx context.Context) (<-chan events.Event, error)

	// Write operations
	Move(ctx context.Context, m pipeline.Move) (*pipeline.Board, error)
	MoveCandidate(ctx context.Context, id, destColumnID string, destIndex int) (*pipeline.Board, error)
	CreateCandidate(ctx context.Context, in models.CandidateInput) (*models.CandidateItem, error)
	EditCandidate(ctx context.Context, id string, in models.CandidateInput) (pipeline.EditOutcome, error)
	DeleteCandidate(ctx context.Context, id, columnID string) (bool, error)
	Reset(ctx context.Context) error
	Reload(ctx context.Context) error

	// Two-phase delete
	RequestDelete(ctx context.Context, id, columnID string) (models.PendingDelete, error)
	ConfirmDelete(ctx context.Context) (models.PendingDelete, bool, error)
	CancelDelete(ctx context.Context)
}

// Options wires the service's collaborators. All are optional: a nil Store
// keeps the board in memory, nil Events and Metrics are skipped and a nil
// IDs uses uuid-based ids.
type Options struct {
	Store       database.BoardStore
	Events      events.EventPublisher
	Metrics     metrics.Recorder
	IDs         pipeline.IDGenerator
	StrictEdits bool
}

// service implements Service. mu serialises transitions; readers get the
// current immutable board and never lock while using it.
type service struct {
	mu      sync.Mutex
	board   *pipeline.Board
	version int64 // store version board was loaded or saved as
	confirm pipeline.DeleteConfirmation

	store       database.BoardStore
	eventClient events.EventPublisher
	recorder    metrics.Recorder
	ids         pipeline.IDGenerator
	strictEdits bool
}

// NewService loads the persisted board, seeding it on first use
func NewService(ctx context.Context, opts Options) (Service, error) {
	s := &service{
		store:       opts.Store,
		eventClient: opts.Events,
		recorder:    opts.Metrics,
		ids:         opts.IDs,
		strictEdits: opts.StrictEdits,
	}
	if s.recorder == nil {
		s.recorder = metrics.NoopRecorder{}
	}
	if s.ids == nil {
		s.ids = pipeline.UUIDGenerator{}
	}

	if err := s.load(ctx); err != nil {
		return nil, err
	}
	s.recordSizes(s.board)
	return s, nil
}

// transition computes the next board from the current one. Returning the
// given board unchanged means there is nothing to persist.
type transition func(b *pipeline.Board) (*pipeline.Board, error)

func (s *service) load(ctx context.Context) error {
	if s.store == nil {
		s.board = pipeline.SeedBoard()
		return nil
	}

	for attempt := 1; ; attempt++ {
		snap, found, err := s.store.LoadBoard(ctx)
		if err != nil {
			return fmt.Errorf("failed to load board: %w", err)
		}
		if found {
			s.board, s.version = snap.Board, snap.Version
			return nil
		}

		seed := pipeline.SeedBoard()
		version, err := s.store.SaveBoard(ctx, seed, snap.Version)
		if errors.Is(err, database.ErrStaleBoard) && attempt < commitAttempts {
			// another process seeded first
			continue
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrPersistFailed, err)
		}
		s.board, s.version = seed, version
		slog.Info("seeded board with sample candidates", "candidates", seed.Len())
		return nil
	}
}

// Board returns the current board
func (s *service) Board(ctx context.Context) *pipeline.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board
}

// Search ranks candidates on the current board
func (s *service) Search(ctx context.Context, query string, limit int) []pipeline.SearchHit {
	return pipeline.Search(s.Board(ctx), query, limit)
}

// Stats summarises the current board
func (s *service) Stats(ctx context.Context) stats.Summary {
	return stats.Summarize(s.Board(ctx))
}

// Listen streams board change events from the configured publisher
func (s *service) Listen(ctx context.Context) (<-chan events.Event, error) {
	if s.eventClient == nil {
		return nil, events.ErrNotConnected
	}
	return s.eventClient.Listen(ctx)
}

// Move applies a drag-and-drop result. The coordinates refer to the board
// as this process last saw it; if another process saved in between, the
// dragged candidate is moved by id on the fresh board.
func (s *service) Move(ctx context.Context, m pipeline.Move) (*pipeline.Board, error) {
	start := time.Now()
	s.mu.Lock()

	if m.Cancelled() {
		b := s.board
		s.mu.Unlock()
		return b, nil
	}

	origin := s.board
	var candidateID string
	if col, ok := origin.Column(m.SourceColumnID); ok && m.SourceIndex >= 0 && m.SourceIndex < col.Len() {
		candidateID = col.Items[m.SourceIndex].ID
	}
	fromColumn := m.SourceColumnID

	next, err := s.applyLocked(ctx, func(b *pipeline.Board) (*pipeline.Board, error) {
		if b == origin {
			return pipeline.ApplyMove(b, m)
		}
		fromColumn, _, _ = b.Find(candidateID)
		return pipeline.MoveItem(b, candidateID, m.DestColumnID, m.DestIndex)
	})
	s.mu.Unlock()
	if err != nil {
		s.fail("move", start, err, "source_column", m.SourceColumnID, "dest_column", m.DestColumnID,
			"source_index", m.SourceIndex, "dest_index", m.DestIndex)
		return s.Board(ctx), err
	}

	s.finishMove(ctx, start, candidateID, fromColumn, m.DestColumnID, m.DestIndex)
	return next, nil
}

// MoveCandidate moves a candidate by id, for surfaces without drag indexes.
// The lookup and the move happen under the same lock.
func (s *service) MoveCandidate(ctx context.Context, id, destColumnID string, destIndex int) (*pipeline.Board, error) {
	if id == "" {
		return s.Board(ctx), ErrEmptyID
	}

	start := time.Now()
	s.mu.Lock()
	var fromColumn string
	next, err := s.applyLocked(ctx, func(b *pipeline.Board) (*pipeline.Board, error) {
		fromColumn, _, _ = b.Find(id)
		return pipeline.MoveItem(b, id, destColumnID, destIndex)
	})
	s.mu.Unlock()
	if err != nil {
		s.fail("move", start, err, "candidate_id", id, "dest_column", destColumnID, "dest_index", destIndex)
		return s.Board(ctx), err
	}

	s.finishMove(ctx, start, id, fromColumn, destColumnID, destIndex)
	return next, nil
}

func (s *service) finishMove(ctx context.Context, start time.Time, candidateID, from, to string, index int) {
	columns := []string{from}
	if to != from {
		columns = append(columns, to)
	}
	slog.Info("candidate moved", "candidate_id", candidateID, "from", from, "to", to, "index", index)
	s.succeed(ctx, "move", start, events.BoardChanged(events.ActionMove, candidateID, columns...))
}

// CreateCandidate adds a candidate at the end of its status column
func (s *service) CreateCandidate(ctx context.Context, in models.CandidateInput) (*models.CandidateItem, error) {
	start := time.Now()
	s.mu.Lock()

	var item *models.CandidateItem
	_, err := s.applyLocked(ctx, func(b *pipeline.Board) (*pipeline.Board, error) {
		next, created, err := pipeline.Create(b, s.ids, in)
		item = created
		return next, err
	})
	s.mu.Unlock()
	if err != nil {
		s.fail("create", start, err, "status", in.Status)
		return nil, err
	}

	slog.Info("candidate created", "candidate_id", item.ID, "column", in.Status)
	s.succeed(ctx, "create", start, events.BoardChanged(events.ActionCreate, item.ID, in.Status))
	return item, nil
}

// EditCandidate replaces a candidate. When the candidate is missing it is
// re-added (reported as Recovered) unless strict edits are enabled.
func (s *service) EditCandidate(ctx context.Context, id string, in models.CandidateInput) (pipeline.EditOutcome, error) {
	if id == "" {
		return pipeline.EditOutcome{}, ErrEmptyID
	}

	start := time.Now()
	s.mu.Lock()

	var outcome pipeline.EditOutcome
	_, err := s.applyLocked(ctx, func(b *pipeline.Board) (*pipeline.Board, error) {
		if _, _, found := b.Find(id); !found && s.strictEdits {
			return b, fmt.Errorf("%w: %s", pipeline.ErrItemNotFound, id)
		}
		next, out, err := pipeline.Edit(b, id, in)
		outcome = out
		return next, err
	})
	s.mu.Unlock()
	if err != nil {
		s.fail("edit", start, err, "candidate_id", id, "status", in.Status)
		return pipeline.EditOutcome{}, err
	}

	if outcome.Recovered {
		slog.Warn("edited candidate was not on the board, appended to destination",
			"candidate_id", id, "column", outcome.ToColumn)
	} else {
		slog.Info("candidate edited", "candidate_id", id, "from", outcome.FromColumn, "to", outcome.ToColumn)
	}

	columns := []string{outcome.ToColumn}
	if outcome.Moved {
		columns = []string{outcome.FromColumn, outcome.ToColumn}
	}
	s.succeed(ctx, "edit", start, events.BoardChanged(events.ActionEdit, id, columns...))
	return outcome, nil
}

// DeleteCandidate removes a candidate immediately. Returns false when the
// candidate was not in the column.
func (s *service) DeleteCandidate(ctx context.Context, id, columnID string) (bool, error) {
	start := time.Now()
	s.mu.Lock()
	removed, err := s.deleteLocked(ctx, id, columnID)
	s.mu.Unlock()
	return s.finishDelete(ctx, start, id, columnID, removed, err)
}

func (s *service) deleteLocked(ctx context.Context, id, columnID string) (bool, error) {
	var removed bool
	_, err := s.applyLocked(ctx, func(b *pipeline.Board) (*pipeline.Board, error) {
		next, ok, err := pipeline.Delete(b, id, columnID)
		removed = ok
		return next, err
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}

func (s *service) finishDelete(ctx context.Context, start time.Time, id, columnID string, removed bool, err error) (bool, error) {
	if err != nil {
		s.fail("delete", start, err, "candidate_id", id, "column", columnID)
		return false, err
	}
	if !removed {
		slog.Debug("delete found nothing to remove", "candidate_id", id, "column", columnID)
		return false, nil
	}

	slog.Info("candidate deleted", "candidate_id", id, "column", columnID)
	s.succeed(ctx, "delete", start, events.BoardChanged(events.ActionDelete, id, columnID))
	return true, nil
}

// RequestDelete stages a delete of a candidate that is currently in columnID
func (s *service) RequestDelete(ctx context.Context, id, columnID string) (models.PendingDelete, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	col, ok := s.board.Column(columnID)
	if !ok {
		err := fmt.Errorf("%w: %q", pipeline.ErrUnknownColumn, columnID)
		slog.Warn("delete requested for unknown column", "column", columnID)
		return models.PendingDelete{}, err
	}
	idx := col.IndexOf(id)
	if idx < 0 {
		return models.PendingDelete{}, fmt.Errorf("%w: %s in %s", pipeline.ErrItemNotFound, id, columnID)
	}

	p := models.PendingDelete{ID: id, ColumnID: columnID, Name: col.Items[idx].Name}
	s.confirm.Request(p)
	slog.Debug("delete staged", "candidate_id", id, "column", columnID)
	return p, nil
}

// ConfirmDelete executes the staged delete. ok is false when nothing was
// staged; removed reports whether the candidate was still there.
func (s *service) ConfirmDelete(ctx context.Context) (models.PendingDelete, bool, error) {
	start := time.Now()
	s.mu.Lock()
	p, ok := s.confirm.Confirm()
	if !ok {
		s.mu.Unlock()
		return models.PendingDelete{}, false, nil
	}
	removed, err := s.deleteLocked(ctx, p.ID, p.ColumnID)
	s.mu.Unlock()

	removed, err = s.finishDelete(ctx, start, p.ID, p.ColumnID, removed, err)
	return p, removed, err
}

// CancelDelete discards the staged delete
func (s *service) CancelDelete(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.confirm.Pending(); ok {
		slog.Debug("delete cancelled", "candidate_id", p.ID)
	}
	s.confirm.Cancel()
}

// PendingDelete returns the staged delete, if any
func (s *service) PendingDelete(ctx context.Context) (models.PendingDelete, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.confirm.Pending()
}

// Reset restores the sample board
func (s *service) Reset(ctx context.Context) error {
	start := time.Now()
	s.mu.Lock()
	_, err := s.applyLocked(ctx, func(*pipeline.Board) (*pipeline.Board, error) {
		return pipeline.SeedBoard(), nil
	})
	if err == nil {
		s.confirm.Cancel()
	}
	s.mu.Unlock()
	if err != nil {
		s.fail("reset", start, err)
		return err
	}

	slog.Info("board reset to sample candidates")
	s.succeed(ctx, "reset", start, events.BoardChanged(events.ActionReset, "", models.StageIDs()...))
	return nil
}

// Reload re-reads the persisted board, picking up changes made by other processes
func (s *service) Reload(ctx context.Context) error {
	if s.store == nil {
		return ErrNoStore
	}
	s.mu.Lock()
	err := s.reloadLocked(ctx)
	b := s.board
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.recordSizes(b)
	return nil
}

// reloadLocked replaces the board with the stored one. Caller holds mu.
func (s *service) reloadLocked(ctx context.Context) error {
	snap, found, err := s.store.LoadBoard(ctx)
	if err != nil {
		return fmt.Errorf("failed to reload board: %w", err)
	}
	if found {
		s.board = snap.Board
	}
	s.version = snap.Version
	return nil
}

// applyLocked runs tr on the current board, persists the result and makes
// it current. When another process saved since the board was loaded, the
// stored board is reloaded and tr runs again on it, so writes from other
// processes are never overwritten. The current board is kept when tr or
// persistence fails. Caller holds mu.
func (s *service) applyLocked(ctx context.Context, tr transition) (*pipeline.Board, error) {
	for attempt := 1; ; attempt++ {
		next, err := tr(s.board)
		if err != nil {
			return s.board, err
		}
		if next == s.board {
			return next, nil
		}
		if s.store == nil {
			s.board = next
			return next, nil
		}

		version, err := s.store.SaveBoard(ctx, next, s.version)
		if err == nil {
			s.board, s.version = next, version
			return next, nil
		}
		if !errors.Is(err, database.ErrStaleBoard) || attempt == commitAttempts {
			return s.board, fmt.Errorf("%w: %w", ErrPersistFailed, err)
		}

		slog.Info("board changed in another process, reapplying", "attempt", attempt)
		if err := s.reloadLocked(ctx); err != nil {
			return s.board, fmt.Errorf("%w: %w", ErrPersistFailed, err)
		}
	}
}

func (s *service) succeed(ctx context.Context, action string, start time.Time, ev events.Event) {
	s.recorder.ObserveTransition(action, time.Since(start), nil)
	s.recordSizes(s.Board(ctx))

	if s.eventClient == nil {
		return
	}
	err := events.PublishWithRetry(ctx, s.eventClient, ev, publishRetries)
	s.recorder.IncEventPublished(err == nil)
}

func (s *service) fail(action string, start time.Time, err error, attrs ...any) {
	s.recorder.ObserveTransition(action, time.Since(start), err)

	attrs = append(attrs, "action", action, "error", err)
	switch {
	case errors.Is(err, pipeline.ErrUnknownColumn):
		slog.Warn("transition rejected: unknown column", attrs...)
	case errors.Is(err, ErrPersistFailed):
		slog.Error("transition not persisted", attrs...)
	default:
		slog.Warn("transition rejected", attrs...)
	}
}

func (s *service) recordSizes(b *pipeline.Board) {
	for _, col := range b.Columns() {
		s.recorder.SetColumnSize(col.ID, col.Len())
	}
}
