package events

import (
	"context"
	"log/slog"
	"time"
)

// retryBaseDelay is the first backoff step; each retry doubles it
const retryBaseDelay = 50 * time.Millisecond

// PublishWithRetry makes up to maxRetries attempts to queue an event,
// backing off exponentially (50ms, 100ms, 200ms, ...) between attempts.
// Board transitions never fail because of it: callers log and move on.
// A nil publisher is skipped. Cancelling ctx abandons the remaining attempts.
func PublishWithRetry(ctx context.Context, publisher EventPublisher, event Event, maxRetries int) error {
	if publisher == nil {
		return nil
	}

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		err := publisher.SendEvent(event)
		if err == nil {
			if attempt > 0 {
				slog.Debug("event published after retry",
					"attempt", attempt+1,
					"event_type", event.Type,
					"action", event.Action)
			}
			return nil
		}
		lastErr = err

		if attempt == maxRetries-1 {
			break
		}

		delay := retryBaseDelay * (1 << attempt)
		slog.Debug("event publish failed, retrying",
			"attempt", attempt+1,
			"max_retries", maxRetries,
			"retry_delay", delay,
			"error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	if lastErr != nil {
		slog.Warn("event publish failed after all retries",
			"attempts", maxRetries,
			"event_type", event.Type,
			"action", event.Action,
			"error", lastErr)
	}
	return lastErr
}
