// Package chat talks to the HR manual assistant over its JSON HTTP API
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/thenoetrevino/talento/internal/metrics"
)

// maxErrorBody bounds how much of a failed response is kept for the error
const maxErrorBody = 512

// Client calls GET /status and POST /chat. It does not retry.
type Client struct {
	mu      sync.RWMutex
	baseURL string
	timeout time.Duration

	http     *http.Client
	recorder metrics.Recorder
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithRecorder records request durations and results
func WithRecorder(r metrics.Recorder) Option {
	return func(c *Client) { c.recorder = r }
}

// NewClient creates a client for the assistant at baseURL. Each call is
// bounded by timeout in addition to the caller's context.
func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		timeout:  timeout,
		http:     &http.Client{},
		recorder: metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the current assistant address
func (c *Client) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL
}

// Reconfigure re-points the client, used when the config file changes
func (c *Client) Reconfigure(baseURL string, timeout time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.baseURL = strings.TrimRight(baseURL, "/")
	if timeout > 0 {
		c.timeout = timeout
	}
}

func (c *Client) endpoint(path string) (string, time.Duration) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL + path, c.timeout
}

// Status fetches the assistant's health report
func (c *Client) Status(ctx context.Context) (Status, error) {
	var status Status
	if err := c.do(ctx, http.MethodGet, "/status", nil, &status); err != nil {
		c.recorder.SetChatAvailable(false)
		return Status{}, err
	}
	c.recorder.SetChatAvailable(status.OK)
	return status, nil
}

// Send asks a question. Only the last HistoryWindow turns of history are sent.
func (c *Client) Send(ctx context.Context, message string, history []Message) (Reply, error) {
	if strings.TrimSpace(message) == "" {
		return Reply{}, ErrEmptyMessage
	}

	req := Request{Message: message, History: lastTurns(history, HistoryWindow)}

	start := time.Now()
	var reply Reply
	err := c.do(ctx, http.MethodPost, "/chat", req, &reply)
	if err == nil && strings.TrimSpace(reply.Answer) == "" {
		err = ErrEmptyAnswer
	}
	c.recorder.ObserveChatRequest(time.Since(start), err == nil)
	if err != nil {
		return Reply{}, err
	}
	return reply, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	url, timeout := c.endpoint(path)
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Debug("failed to close chat response body", "error", err)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("%w: %s %s returned %d: %s",
			ErrUnexpectedStatus, method, path, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

// lastTurns returns a copy of the last n entries of history
func lastTurns(history []Message, n int) []Message {
	if len(history) > n {
		history = history[len(history)-n:]
	}
	out := make([]Message, len(history))
	copy(out, history)
	return out
}
