// Package server exposes the recruiting board over a JSON HTTP API
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/thenoetrevino/talento/internal/chat"
	"github.com/thenoetrevino/talento/internal/metrics"
	"github.com/thenoetrevino/talento/internal/services/board"
)

// shutdownTimeout bounds graceful shutdown of in-flight requests
const shutdownTimeout = 10 * time.Second

// heartbeatInterval keeps idle event streams open through proxies
const heartbeatInterval = 15 * time.Second

// SnapshotProvider reports process counters for /healthz
type SnapshotProvider interface {
	Snapshot() metrics.Snapshot
}

// Options wires the server. Chat, Metrics, Recorder and Snapshots are optional.
type Options struct {
	Board     board.Service
	Chat      *chat.Session
	Metrics   http.Handler
	Recorder  metrics.Recorder
	Snapshots SnapshotProvider
	Logger    *slog.Logger
}

// Server routes HTTP requests to the board service and the chat session
type Server struct {
	board     board.Service
	chat      *chat.Session
	metrics   http.Handler
	snapshots SnapshotProvider
	logger    *slog.Logger
	handler   http.Handler
	heartbeat time.Duration
}

// New builds the server and its routes
func New(opts Options) *Server {
	s := &Server{
		board:     opts.Board,
		chat:      opts.Chat,
		metrics:   opts.Metrics,
		snapshots: opts.Snapshots,
		logger:    opts.Logger,
		heartbeat: heartbeatInterval,
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/board", s.handleBoard)
	mux.HandleFunc("POST /api/board/moves", s.handleMove)
	mux.HandleFunc("POST /api/board/reset", s.handleReset)

	mux.HandleFunc("POST /api/candidates", s.handleCreate)
	mux.HandleFunc("GET /api/candidates/search", s.handleSearch)
	mux.HandleFunc("GET /api/candidates/{id}", s.handleGetCandidate)
	mux.HandleFunc("PUT /api/candidates/{id}", s.handleEdit)
	mux.HandleFunc("DELETE /api/candidates/{id}", s.handleDelete)

	mux.HandleFunc("POST /api/delete-requests", s.handleRequestDelete)
	mux.HandleFunc("GET /api/delete-requests", s.handlePendingDelete)
	mux.HandleFunc("POST /api/delete-requests/confirm", s.handleConfirmDelete)
	mux.HandleFunc("POST /api/delete-requests/cancel", s.handleCancelDelete)

	mux.HandleFunc("GET /api/stats", s.handleStats)
	mux.HandleFunc("POST /api/chat", s.handleChat)
	mux.HandleFunc("GET /api/chat/status", s.handleChatStatus)
	mux.HandleFunc("GET /api/events", s.handleEvents)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	if s.metrics != nil {
		mux.Handle("GET /metrics", s.metrics)
	}

	s.handler = Chain(s.logger, opts.Recorder)(mux)
	return s
}

// Handler returns the root handler with middleware applied
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on an existing listener until ctx is cancelled
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.logger.Info("HTTP server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
