package board

import "errors"

// Board service errors. Precondition errors from the pipeline package
// (unknown column, index out of range, empty name) pass through wrapped.
var (
	ErrEmptyID       = errors.New("candidate id cannot be empty")
	ErrPersistFailed = errors.New("failed to persist board")
	ErrNoStore       = errors.New("board has no persistent store")
)
