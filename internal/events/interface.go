package events

import "context"

// EventPublisher defines the interface for sending and receiving events.
// This interface allows for loose coupling and easier testing by depending
// on behavior rather than concrete implementation.
type EventPublisher interface {
	// Connect prepares the transport
	Connect(ctx context.Context) error

	// SendEvent queues an event for delivery without blocking
	SendEvent(event Event) error

	// Listen returns a channel of delivered events, closed when ctx is done
	Listen(ctx context.Context) (<-chan Event, error)

	// Close stops delivery and releases the transport
	Close() error
}

// Compile-time verification of the implementations
var (
	_ EventPublisher = (*Broker)(nil)
	_ EventPublisher = (*NATSPublisher)(nil)
	_ EventPublisher = (Fanout)(nil)
)
