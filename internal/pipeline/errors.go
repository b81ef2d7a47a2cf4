package pipeline

import "errors"

// Precondition errors. None of them mutate the board.
var (
	ErrUnknownColumn   = errors.New("unknown pipeline column")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrEmptyName       = errors.New("candidate name cannot be empty")
	ErrInvalidBoard    = errors.New("invalid board layout")
	ErrDuplicateItem   = errors.New("candidate appears in more than one column")
)

// ErrItemNotFound is reported when an item id is not on the board.
// It is kept distinct from ErrUnknownColumn so callers can tell a bad
// target column from a stale item reference.
var ErrItemNotFound = errors.New("candidate not found")
