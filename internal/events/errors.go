package events

import "errors"

var (
	// ErrQueueFull is returned when an event cannot be queued without blocking
	ErrQueueFull = errors.New("event queue full")
	// ErrClosed is returned by publishers that were already closed
	ErrClosed = errors.New("publisher closed")
	// ErrNotConnected is returned when sending before Connect
	ErrNotConnected = errors.New("not connected")
)
