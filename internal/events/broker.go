package events

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
)

// listenerBuffer is the per-listener channel capacity. Slow listeners lose
// events rather than stall the publisher.
const listenerBuffer = 16

// Broker fans events out to in-process listeners (TUI, SSE streams).
type Broker struct {
	mu        sync.Mutex
	listeners map[int]chan Event
	nextID    int
	sequence  atomic.Int64
	closed    bool
}

// NewBroker creates an empty broker
func NewBroker() *Broker {
	return &Broker{listeners: make(map[int]chan Event)}
}

// Connect is a no-op for the in-process broker
func (b *Broker) Connect(ctx context.Context) error {
	return nil
}

// SendEvent stamps the event with the next sequence id and delivers it to
// every listener whose buffer has room.
func (b *Broker) SendEvent(event Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrClosed
	}

	event.SequenceID = b.sequence.Add(1)
	for id, ch := range b.listeners {
		select {
		case ch <- event:
		default:
			slog.Warn("dropping event for slow listener", "listener", id, "sequence", event.SequenceID)
		}
	}
	return nil
}

// Listen registers a listener. The channel is closed when ctx is done or
// the broker is closed.
func (b *Broker) Listen(ctx context.Context) (<-chan Event, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, ErrClosed
	}

	id := b.nextID
	b.nextID++
	ch := make(chan Event, listenerBuffer)
	b.listeners[id] = ch

	go func() {
		<-ctx.Done()
		b.remove(id)
	}()

	return ch, nil
}

func (b *Broker) remove(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if ch, ok := b.listeners[id]; ok {
		delete(b.listeners, id)
		close(ch)
	}
}

// ListenerCount reports the number of registered listeners
func (b *Broker) ListenerCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners)
}

// Close closes every listener channel. Further sends fail with ErrClosed.
func (b *Broker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	for id, ch := range b.listeners {
		delete(b.listeners, id)
		close(ch)
	}
	return nil
}
