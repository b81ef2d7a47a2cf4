package chat

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// Monitor refreshes a session's status on a fixed interval
type Monitor struct {
	scheduler gocron.Scheduler
	session   *Session
	interval  time.Duration
	ctx       context.Context
}

// NewMonitor creates a monitor; nothing runs until Start
func NewMonitor(session *Session, interval time.Duration) (*Monitor, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create gocron scheduler: %w", err)
	}
	return &Monitor{scheduler: s, session: session, interval: interval}, nil
}

// Start schedules the status check, running it once immediately
func (m *Monitor) Start(ctx context.Context) error {
	m.ctx = ctx
	_, err := m.scheduler.NewJob(
		gocron.DurationJob(m.interval),
		gocron.NewTask(m.check),
		gocron.WithName("chat-status"),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to create chat status job: %w", err)
	}

	slog.Info("Starting chat status monitor", "interval", m.interval)
	m.scheduler.Start()
	return nil
}

// Stop gracefully shuts down the scheduler
func (m *Monitor) Stop() error {
	slog.Info("Stopping chat status monitor")
	return m.scheduler.Shutdown()
}

func (m *Monitor) check() {
	if m.ctx.Err() != nil {
		return
	}
	status, err := m.session.CheckStatus(m.ctx)
	if err != nil {
		slog.Warn("chat assistant unavailable", "error", err)
		return
	}
	slog.Debug("chat status", "ok", status.OK, "manual_loaded", status.ManualCargado)
}
