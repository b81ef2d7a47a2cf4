package events

import (
	"context"
	"errors"
)

// Fanout sends every event to each publisher in order. Listen reads from the
// first publisher only, which is the in-process broker in practice.
type Fanout []EventPublisher

// Connect connects every publisher, stopping at the first failure
func (f Fanout) Connect(ctx context.Context) error {
	for _, p := range f {
		if err := p.Connect(ctx); err != nil {
			return err
		}
	}
	return nil
}

// SendEvent delivers to all publishers and joins their errors
func (f Fanout) SendEvent(event Event) error {
	var errs []error
	for _, p := range f {
		if err := p.SendEvent(event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Listen implements EventPublisher
func (f Fanout) Listen(ctx context.Context) (<-chan Event, error) {
	if len(f) == 0 {
		return nil, ErrNotConnected
	}
	return f[0].Listen(ctx)
}

// Close closes every publisher
func (f Fanout) Close() error {
	var errs []error
	for _, p := range f {
		if err := p.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
