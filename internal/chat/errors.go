package chat

import "errors"

var (
	ErrEmptyMessage     = errors.New("message cannot be empty")
	ErrUnexpectedStatus = errors.New("unexpected response status")
	ErrEmptyAnswer      = errors.New("assistant returned an empty answer")
)
