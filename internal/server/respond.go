package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/thenoetrevino/talento/internal/chat"
	"github.com/thenoetrevino/talento/internal/models"
	"github.com/thenoetrevino/talento/internal/pipeline"
	"github.com/thenoetrevino/talento/internal/services/board"
)

// Error codes of the JSON error envelope
const (
	CodeUnknownColumn    = "UNKNOWN_COLUMN"
	CodeIndexOutOfRange  = "INDEX_OUT_OF_RANGE"
	CodeNotFound         = "NOT_FOUND"
	CodeValidation       = "VALIDATION"
	CodeBadRequest       = "BAD_REQUEST"
	CodeNoPendingDelete  = "NO_PENDING_DELETE"
	CodeChatDisabled     = "CHAT_DISABLED"
	CodeEventsDisabled   = "EVENTS_DISABLED"
	CodePersistFailed    = "PERSIST_FAILED"
	CodeInternal         = "INTERNAL"
	CodeStreamingUnavail = "STREAMING_UNSUPPORTED"
)

// ErrorBody is the payload of every error response
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail names the failure
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON encodes into a buffer first so a failed encode never sends a partial body
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
		http.Error(w, `{"error":{"code":"INTERNAL","message":"encode failure"}}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Error("failed writing JSON response body", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorBody{Error: ErrorDetail{Code: code, Message: message}})
}

// writeServiceError maps board service errors to HTTP statuses
func writeServiceError(w http.ResponseWriter, err error) {
	status, code := classify(err)
	writeError(w, status, code, err.Error())
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, pipeline.ErrUnknownColumn):
		return http.StatusUnprocessableEntity, CodeUnknownColumn
	case errors.Is(err, pipeline.ErrIndexOutOfRange):
		return http.StatusUnprocessableEntity, CodeIndexOutOfRange
	case errors.Is(err, pipeline.ErrItemNotFound):
		return http.StatusNotFound, CodeNotFound
	case errors.Is(err, pipeline.ErrEmptyName),
		errors.Is(err, models.ErrInvalidPriority),
		errors.Is(err, models.ErrInvalidContractType),
		errors.Is(err, board.ErrEmptyID),
		errors.Is(err, chat.ErrEmptyMessage):
		return http.StatusBadRequest, CodeValidation
	case errors.Is(err, board.ErrPersistFailed):
		return http.StatusInternalServerError, CodePersistFailed
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}

// decodeJSON reads a single JSON document, rejecting unknown fields
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "invalid JSON body: "+err.Error())
		return false
	}
	return true
}
