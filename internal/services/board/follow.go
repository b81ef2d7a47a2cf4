package board

import (
	"context"
	"log/slog"

	"github.com/thenoetrevino/talento/internal/events"
)

// FollowRemote keeps svc in step with other processes sharing its store.
// Every board change arriving on remote reloads svc and is then forwarded
// to local so the terminal board and event streams refresh. It returns when
// ctx is done or remote is closed.
func FollowRemote(ctx context.Context, svc Service, remote <-chan events.Event, local events.EventPublisher) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-remote:
			if !ok {
				return
			}
			if ev.Type != events.EventBoardChanged {
				continue
			}
			if err := svc.Reload(ctx); err != nil {
				slog.Warn("failed to reload board after remote change", "origin", ev.Origin, "error", err)
				continue
			}
			slog.Debug("board reloaded after remote change",
				"origin", ev.Origin, "action", ev.Action, "candidate_id", ev.CandidateID)

			if local == nil {
				continue
			}
			if err := local.SendEvent(ev); err != nil {
				slog.Debug("failed to forward remote change", "error", err)
			}
		}
	}
}
