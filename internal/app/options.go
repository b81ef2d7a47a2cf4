package app

import (
	"log/slog"

	"github.com/thenoetrevino/talento/internal/events"
	"github.com/thenoetrevino/talento/internal/pipeline"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	eventClient events.EventPublisher
	logger      *slog.Logger
	ids         pipeline.IDGenerator
}

// WithEventPublisher replaces the broker/NATS publisher built from config
func WithEventPublisher(ec events.EventPublisher) Option {
	return func(cfg *appConfig) {
		cfg.eventClient = ec
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithIDGenerator sets how new candidates get their ids
func WithIDGenerator(ids pipeline.IDGenerator) Option {
	return func(cfg *appConfig) {
		cfg.ids = ids
	}
}
