package metrics

import (
	"sync/atomic"
	"time"
)

// Counters tracks process statistics using atomic operations for thread-safety
type Counters struct {
	Transitions     atomic.Int64
	FailedMoves     atomic.Int64
	EventsPublished atomic.Int64
	EventsDropped   atomic.Int64
	ChatRequests    atomic.Int64
	ChatFailures    atomic.Int64
	ChatAvailable   atomic.Bool
	StartTime       time.Time
}

// NewCounters creates a new Counters instance
func NewCounters() *Counters {
	return &Counters{
		StartTime: time.Now(),
	}
}

// Snapshot represents a point-in-time snapshot of the counters
type Snapshot struct {
	Transitions     int64     `json:"transitions"`
	FailedMoves     int64     `json:"failed_transitions"`
	EventsPublished int64     `json:"events_published"`
	EventsDropped   int64     `json:"events_dropped"`
	ChatRequests    int64     `json:"chat_requests"`
	ChatFailures    int64     `json:"chat_failures"`
	ChatAvailable   bool      `json:"chat_available"`
	StartTime       time.Time `json:"start_time"`
	Uptime          string    `json:"uptime"`
}

// Snapshot returns a snapshot of current counters
func (c *Counters) Snapshot() Snapshot {
	return Snapshot{
		Transitions:     c.Transitions.Load(),
		FailedMoves:     c.FailedMoves.Load(),
		EventsPublished: c.EventsPublished.Load(),
		EventsDropped:   c.EventsDropped.Load(),
		ChatRequests:    c.ChatRequests.Load(),
		ChatFailures:    c.ChatFailures.Load(),
		ChatAvailable:   c.ChatAvailable.Load(),
		StartTime:       c.StartTime,
		Uptime:          time.Since(c.StartTime).Round(time.Second).String(),
	}
}

func (c *Counters) observeTransition(err error) {
	if err != nil {
		c.FailedMoves.Add(1)
		return
	}
	c.Transitions.Add(1)
}

func (c *Counters) incEvent(ok bool) {
	if ok {
		c.EventsPublished.Add(1)
		return
	}
	c.EventsDropped.Add(1)
}

func (c *Counters) incChat(ok bool) {
	c.ChatRequests.Add(1)
	if !ok {
		c.ChatFailures.Add(1)
	}
}
