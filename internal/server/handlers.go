package server

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/thenoetrevino/talento/internal/chat"
	"github.com/thenoetrevino/talento/internal/metrics"
	"github.com/thenoetrevino/talento/internal/models"
	"github.com/thenoetrevino/talento/internal/pipeline"
)

// defaultSearchLimit caps search results when ?limit is absent
const defaultSearchLimit = 20

func (s *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.board.Board(r.Context()))
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var m pipeline.Move
	if !decodeJSON(w, r, &m) {
		return
	}
	b, err := s.board.Move(r.Context(), m)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if err := s.board.Reset(r.Context()); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.board.Board(r.Context()))
}

// normalizeInput accepts priorities and contract types in any case
func normalizeInput(in *models.CandidateInput) error {
	if in.Priority != "" {
		p, err := models.ParsePriority(string(in.Priority))
		if err != nil {
			return err
		}
		in.Priority = p
	}
	if in.ContractType != nil {
		ct, err := models.ParseContractType(string(*in.ContractType))
		if err != nil {
			return err
		}
		in.ContractType = &ct
	}
	return nil
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var in models.CandidateInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if err := normalizeInput(&in); err != nil {
		writeServiceError(w, err)
		return
	}
	item, err := s.board.CreateCandidate(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Location", "/api/candidates/"+item.ID)
	writeJSON(w, http.StatusCreated, item)
}

// CandidateResponse is a candidate with the column it sits in
type CandidateResponse struct {
	Item     *models.CandidateItem `json:"item"`
	ColumnID string                `json:"columnId"`
}

func (s *Server) handleGetCandidate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	item, columnID, ok := s.board.Board(r.Context()).Item(id)
	if !ok {
		writeError(w, http.StatusNotFound, CodeNotFound, "candidate "+id+" not found")
		return
	}
	writeJSON(w, http.StatusOK, CandidateResponse{Item: item, ColumnID: columnID})
}

// EditResponse reports the edited candidate. Recovered is set when the
// candidate was missing and has been re-added to its status column.
type EditResponse struct {
	Item       *models.CandidateItem `json:"item"`
	FromColumn string                `json:"fromColumn,omitempty"`
	ToColumn   string                `json:"toColumn"`
	Moved      bool                  `json:"moved"`
	Recovered  bool                  `json:"recovered"`
}

func (s *Server) handleEdit(w http.ResponseWriter, r *http.Request) {
	var in models.CandidateInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if err := normalizeInput(&in); err != nil {
		writeServiceError(w, err)
		return
	}
	outcome, err := s.board.EditCandidate(r.Context(), r.PathValue("id"), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, EditResponse{
		Item:       outcome.Item,
		FromColumn: outcome.FromColumn,
		ToColumn:   outcome.ToColumn,
		Moved:      outcome.Moved,
		Recovered:  outcome.Recovered,
	})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	columnID := r.URL.Query().Get("column")
	if columnID == "" {
		found, _, ok := s.board.Board(r.Context()).Find(id)
		if !ok {
			writeError(w, http.StatusNotFound, CodeNotFound, "candidate "+id+" not found")
			return
		}
		columnID = found
	}

	removed, err := s.board.DeleteCandidate(r.Context(), id, columnID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !removed {
		writeError(w, http.StatusNotFound, CodeNotFound, "candidate "+id+" not in "+columnID)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteRequest stages a two-phase delete
type DeleteRequest struct {
	ID       string `json:"id"`
	ColumnID string `json:"columnId"`
}

// ConfirmResponse reports the executed delete
type ConfirmResponse struct {
	Deleted models.PendingDelete `json:"deleted"`
	Removed bool                 `json:"removed"`
}

func (s *Server) handleRequestDelete(w http.ResponseWriter, r *http.Request) {
	var req DeleteRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	p, err := s.board.RequestDelete(r.Context(), req.ID, req.ColumnID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, p)
}

func (s *Server) handlePendingDelete(w http.ResponseWriter, r *http.Request) {
	p, ok := s.board.PendingDelete(r.Context())
	if !ok {
		writeError(w, http.StatusNotFound, CodeNoPendingDelete, "no delete is awaiting confirmation")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleConfirmDelete(w http.ResponseWriter, r *http.Request) {
	p, removed, err := s.board.ConfirmDelete(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if p.ID == "" {
		writeError(w, http.StatusConflict, CodeNoPendingDelete, "no delete is awaiting confirmation")
		return
	}
	writeJSON(w, http.StatusOK, ConfirmResponse{Deleted: p, Removed: removed})
}

func (s *Server) handleCancelDelete(w http.ResponseWriter, r *http.Request) {
	s.board.CancelDelete(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		writeError(w, http.StatusBadRequest, CodeValidation, "query parameter q is required")
		return
	}
	limit := defaultSearchLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, CodeValidation, "limit must be a positive integer")
			return
		}
		limit = n
	}
	hits := s.board.Search(r.Context(), q, limit)
	if hits == nil {
		hits = []pipeline.SearchHit{}
	}
	writeJSON(w, http.StatusOK, hits)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.board.Stats(r.Context()))
}

// ChatRequest is the body of POST /api/chat
type ChatRequest struct {
	Message string `json:"message"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if s.chat == nil {
		writeError(w, http.StatusServiceUnavailable, CodeChatDisabled, "chat assistant is not configured")
		return
	}
	var req ChatRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	answer, err := s.chat.Ask(r.Context(), req.Message)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, answer)
}

func (s *Server) handleChatStatus(w http.ResponseWriter, r *http.Request) {
	if s.chat == nil {
		writeError(w, http.StatusServiceUnavailable, CodeChatDisabled, "chat assistant is not configured")
		return
	}
	if r.URL.Query().Get("refresh") == "true" {
		// The report below carries the failure
		_, _ = s.chat.CheckStatus(r.Context())
	}
	writeJSON(w, http.StatusOK, s.chat.LastStatus())
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status     string             `json:"status"`
	Timestamp  time.Time          `json:"timestamp"`
	Candidates int                `json:"candidates"`
	Counters   *metrics.Snapshot  `json:"counters,omitempty"`
	Chat       *chat.StatusReport `json:"chat,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:     "ok",
		Timestamp:  time.Now(),
		Candidates: s.board.Board(r.Context()).Len(),
	}
	if s.snapshots != nil {
		snap := s.snapshots.Snapshot()
		resp.Counters = &snap
	}
	if s.chat != nil {
		report := s.chat.LastStatus()
		resp.Chat = &report
	}
	writeJSON(w, http.StatusOK, resp)
}
