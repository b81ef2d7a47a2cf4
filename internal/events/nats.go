package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

// DefaultSubject is the NATS subject board events are published on
const DefaultSubject = "talento.board.changed"

// NATSPublisher publishes board events to a NATS subject so other processes
// (another `talento serve`, dashboards) can follow the board.
type NATSPublisher struct {
	url     string
	subject string
	origin  string

	mu     sync.Mutex
	conn   *nats.Conn
	closed bool

	queue    chan Event
	sequence atomic.Int64

	ctx         context.Context
	cancel      context.CancelFunc
	senderDone  chan struct{}
	sendStarted bool
}

// NewNATSPublisher creates a publisher but does not connect.
// An empty subject uses DefaultSubject.
func NewNATSPublisher(url, subject string) *NATSPublisher {
	if subject == "" {
		subject = DefaultSubject
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &NATSPublisher{
		url:        url,
		subject:    subject,
		origin:     uuid.NewString(),
		queue:      make(chan Event, 100),
		ctx:        ctx,
		cancel:     cancel,
		senderDone: make(chan struct{}),
	}
}

// Origin identifies this publisher in the events it sends
func (p *NATSPublisher) Origin() string {
	return p.origin
}

// Subject returns the subject events are published on
func (p *NATSPublisher) Subject() string {
	return p.subject
}

// Connect dials the NATS server and starts the sender goroutine
func (p *NATSPublisher) Connect(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}
	if p.conn != nil {
		return nil
	}

	opts := []nats.Option{
		nats.Name("talento"),
		nats.Timeout(5 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				slog.Warn("NATS disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			slog.Info("NATS reconnected", "url", c.ConnectedUrl())
		}),
	}
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining > 0 {
			opts = append(opts, nats.Timeout(remaining))
		}
	}

	conn, err := nats.Connect(p.url, opts...)
	if err != nil {
		return fmt.Errorf("failed to connect to NATS: %w", err)
	}
	p.conn = conn

	slog.Info("NATS publisher connected", "url", p.url, "subject", p.subject)

	p.sendStarted = true
	go p.sender()
	return nil
}

// SendEvent queues an event for publishing.
// Returns ErrQueueFull instead of blocking when the sender falls behind.
func (p *NATSPublisher) SendEvent(event Event) error {
	p.mu.Lock()
	closed := p.closed
	p.mu.Unlock()
	if closed {
		return ErrClosed
	}

	select {
	case p.queue <- event:
		return nil
	default:
		return ErrQueueFull
	}
}

// sender drains the queue until Close
func (p *NATSPublisher) sender() {
	defer close(p.senderDone)

	for {
		select {
		case <-p.ctx.Done():
			// Flush whatever is already queued
			for {
				select {
				case event := <-p.queue:
					p.publish(event)
				default:
					return
				}
			}
		case event := <-p.queue:
			p.publish(event)
		}
	}
}

func (p *NATSPublisher) publish(event Event) {
	p.mu.Lock()
	conn := p.conn
	p.mu.Unlock()
	if conn == nil {
		return
	}

	event.SequenceID = p.sequence.Add(1)
	event.Origin = p.origin
	data, err := json.Marshal(event)
	if err != nil {
		slog.Error("failed to marshal event", "error", err)
		return
	}
	if err := conn.Publish(p.subject, data); err != nil {
		slog.Warn("failed to publish event", "subject", p.subject, "error", err)
		return
	}

	slog.Debug("published board event",
		"subject", p.subject,
		"action", event.Action,
		"sequence", event.SequenceID)
}

// Listen subscribes to the subject and delivers the events of other
// processes. This publisher's own events are skipped, as are duplicates and
// stale sequence ids of each remote publisher.
func (p *NATSPublisher) Listen(ctx context.Context) (<-chan Event, error) {
	p.mu.Lock()
	conn := p.conn
	p.mu.Unlock()
	if conn == nil {
		return nil, ErrNotConnected
	}

	msgs := make(chan *nats.Msg, 64)
	sub, err := conn.ChanSubscribe(p.subject, msgs)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to %s: %w", p.subject, err)
	}

	out := make(chan Event, 10)
	go func() {
		defer close(out)
		defer func() {
			if err := sub.Unsubscribe(); err != nil && err != nats.ErrConnectionClosed {
				slog.Debug("failed to unsubscribe", "error", err)
			}
		}()

		filter := newRemoteFilter(p.origin)
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-msgs:
				var event Event
				if err := json.Unmarshal(msg.Data, &event); err != nil {
					slog.Warn("discarding malformed event", "subject", msg.Subject, "error", err)
					continue
				}
				if !filter.accept(event) {
					continue
				}
				select {
				case out <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

// remoteFilter drops events published by self and replays of events
// already seen. Sequence ids are only ordered per origin, since every
// process numbers its own events from 1.
type remoteFilter struct {
	self string
	last map[string]int64
}

func newRemoteFilter(self string) *remoteFilter {
	return &remoteFilter{self: self, last: make(map[string]int64)}
}

func (f *remoteFilter) accept(event Event) bool {
	if event.Origin == f.self {
		return false
	}
	if event.SequenceID == 0 {
		return true
	}
	if event.SequenceID <= f.last[event.Origin] {
		return false
	}
	f.last[event.Origin] = event.SequenceID
	return true
}

// Close flushes queued events and closes the connection
func (p *NATSPublisher) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	started := p.sendStarted
	p.mu.Unlock()

	p.cancel()
	if started {
		<-p.senderDone
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.conn != nil {
		if err := p.conn.Drain(); err != nil {
			p.conn.Close()
		}
		p.conn = nil
	}
	return nil
}
