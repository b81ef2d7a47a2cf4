package cli

import (
	"errors"

	"github.com/thenoetrevino/talento/internal/chat"
	"github.com/thenoetrevino/talento/internal/models"
	"github.com/thenoetrevino/talento/internal/pipeline"
	"github.com/thenoetrevino/talento/internal/services/board"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneral indicates a general error occurred.
	// Use for: Database errors, network errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitGeneral = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested candidate was not on the board.
	ExitNotFound = 3

	// ExitValidation indicates a validation error.
	// Use for: Unknown columns, out of range indexes, invalid priorities,
	// empty names, or any case where input fails validation rules.
	ExitValidation = 5
)

// ExitError carries the process exit code for a failed command. The error
// has already been reported to the user when it is returned.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCodeFor maps an error returned by a command to its exit code
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	switch {
	case errors.Is(err, pipeline.ErrItemNotFound):
		return ExitNotFound
	case errors.Is(err, pipeline.ErrUnknownColumn),
		errors.Is(err, pipeline.ErrIndexOutOfRange),
		errors.Is(err, pipeline.ErrEmptyName),
		errors.Is(err, models.ErrInvalidPriority),
		errors.Is(err, models.ErrInvalidContractType),
		errors.Is(err, board.ErrEmptyID),
		errors.Is(err, chat.ErrEmptyMessage),
		errors.Is(err, ErrInvalidValue):
		return ExitValidation
	default:
		return ExitGeneral
	}
}

// ErrorCode is the machine readable code printed in JSON error output
func ErrorCode(err error) string {
	switch ExitCodeFor(err) {
	case ExitNotFound:
		return "NOT_FOUND"
	case ExitValidation:
		if errors.Is(err, pipeline.ErrUnknownColumn) {
			return "UNKNOWN_COLUMN"
		}
		if errors.Is(err, pipeline.ErrIndexOutOfRange) {
			return "INDEX_OUT_OF_RANGE"
		}
		return "VALIDATION_ERROR"
	case ExitUsage:
		return "USAGE_ERROR"
	default:
		return "ERROR"
	}
}
