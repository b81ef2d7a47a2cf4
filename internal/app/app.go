// Package app wires configuration, storage, events, metrics and services
// into one container shared by the CLI, the HTTP server and the TUI.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/talento/internal/chat"
	"github.com/thenoetrevino/talento/internal/config"
	"github.com/thenoetrevino/talento/internal/database"
	"github.com/thenoetrevino/talento/internal/events"
	"github.com/thenoetrevino/talento/internal/logging"
	"github.com/thenoetrevino/talento/internal/metrics"
	"github.com/thenoetrevino/talento/internal/pipeline"
	"github.com/thenoetrevino/talento/internal/services/board"
)

// App holds all application services and provides dependency injection.
type App struct {
	Config *config.Config

	// Repository layer (direct database access)
	repo *database.Repository

	// Event system for live updates. broker and remote are nil when the
	// publisher was injected with WithEventPublisher.
	eventClient events.EventPublisher
	broker      *events.Broker
	remote      *events.NATSPublisher

	Recorder *metrics.PrometheusRecorder

	// Service layer
	BoardService board.Service
	Chat         *chat.Session

	logger *slog.Logger
}

// New opens the board database named by cfg and builds every service.
// NATS is optional: a failed connection is logged and the app keeps the
// in-process broker only.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	o := &appConfig{logger: slog.Default(), ids: pipeline.UUIDGenerator{}}
	for _, opt := range opts {
		opt(o)
	}

	path := cfg.Database.Path
	if path == "" {
		p, err := database.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	db, err := database.InitDB(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	repo := database.NewRepository(db)

	var (
		broker *events.Broker
		remote *events.NATSPublisher
	)
	eventClient := o.eventClient
	if eventClient == nil {
		broker, remote = newEventClients(ctx, cfg.Events, o.logger)
		eventClient = broker
		if remote != nil {
			eventClient = events.Fanout{broker, remote}
		}
	}

	recorder := metrics.NewPrometheusRecorder(nil)

	svc, err := board.NewService(ctx, board.Options{
		Store:       repo,
		Events:      eventClient,
		Metrics:     recorder,
		IDs:         o.ids,
		StrictEdits: cfg.Pipeline.StrictEdits,
	})
	if err != nil {
		_ = eventClient.Close()
		_ = repo.Close()
		return nil, err
	}

	client := chat.NewClient(cfg.Chat.BaseURL, cfg.Chat.Timeout, chat.WithRecorder(recorder))

	return &App{
		Config:       cfg,
		repo:         repo,
		eventClient:  eventClient,
		broker:       broker,
		remote:       remote,
		Recorder:     recorder,
		BoardService: svc,
		Chat:         chat.NewSession(client),
		logger:       o.logger,
	}, nil
}

// newEventClients returns the in-process broker and, when an URL is
// configured and reachable, a connected NATS publisher.
func newEventClients(ctx context.Context, cfg config.EventsConfig, logger *slog.Logger) (*events.Broker, *events.NATSPublisher) {
	broker := events.NewBroker()
	if cfg.NATSURL == "" {
		return broker, nil
	}

	nc := events.NewNATSPublisher(cfg.NATSURL, cfg.Subject)
	if err := nc.Connect(ctx); err != nil {
		logger.Warn("NATS unavailable, publishing in-process only", "url", cfg.NATSURL, "error", err)
		return broker, nil
	}
	logger.Info("publishing board events to NATS", "url", cfg.NATSURL, "subject", nc.Subject())
	return broker, nc
}

// FollowRemoteChanges reloads the board whenever another process publishes
// a change over NATS, until ctx is done. Local listeners are notified after
// each reload. It reports false when there is no NATS connection to follow.
func (a *App) FollowRemoteChanges(ctx context.Context) bool {
	if a.remote == nil {
		return false
	}
	remote, err := a.remote.Listen(ctx)
	if err != nil {
		a.logger.Warn("not following remote board changes", "error", err)
		return false
	}
	a.logger.Info("following remote board changes", "subject", a.remote.Subject())
	go board.FollowRemote(ctx, a.BoardService, remote, a.broker)
	return true
}

// Events returns the publisher board changes are sent through
func (a *App) Events() events.EventPublisher {
	return a.eventClient
}

// Logger returns the logger the app was built with
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Reconfigure applies a reloaded config to the parts that can change at runtime
func (a *App) Reconfigure(cfg *config.Config) {
	a.Chat.Client().Reconfigure(cfg.Chat.BaseURL, cfg.Chat.Timeout)
	if err := logging.SetLevel(cfg.Log.Level); err != nil {
		a.logger.Warn("ignoring log level from reloaded config", "error", err)
	}
	a.Config = cfg
	a.logger.Info("configuration reloaded", "chat_url", cfg.Chat.BaseURL)
}

// Close releases the event publisher and the database
func (a *App) Close() error {
	var firstErr error
	if a.eventClient != nil {
		if err := a.eventClient.Close(); err != nil {
			firstErr = err
		}
	}
	if err := a.repo.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
