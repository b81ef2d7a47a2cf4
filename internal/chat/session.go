package chat

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// recheckTimeout bounds the status check that follows a failed question
const recheckTimeout = 5 * time.Second

// Answer is what the user sees for a question
type Answer struct {
	Text string `json:"answer"`
	// Fallback is set when Text is FallbackMessage because the assistant failed
	Fallback bool `json:"fallback"`
}

// Session keeps one conversation with the assistant and the last known status
type Session struct {
	client *Client

	mu          sync.Mutex
	history     []Message
	status      Status
	lastChecked time.Time
	checkErr    error

	rechecks sync.WaitGroup
}

// NewSession starts an empty conversation
func NewSession(client *Client) *Session {
	return &Session{client: client}
}

// Client returns the underlying API client
func (s *Session) Client() *Client {
	return s.client
}

// Ask sends a question with the recent history. Failures never reach the
// caller as errors: they are logged, answered with FallbackMessage and
// followed by a best-effort status re-check. Only an empty message is rejected.
func (s *Session) Ask(ctx context.Context, message string) (Answer, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return Answer{}, ErrEmptyMessage
	}

	s.mu.Lock()
	history := lastTurns(s.history, HistoryWindow)
	s.history = append(s.history, Message{Role: RoleUser, Content: message})
	s.mu.Unlock()

	reply, err := s.client.Send(ctx, message, history)
	if err != nil {
		slog.Error("chat request failed", "base_url", s.client.BaseURL(), "error", err)
		s.appendTurn(Message{Role: RoleAssistant, Content: FallbackMessage})
		s.recheck()
		return Answer{Text: FallbackMessage, Fallback: true}, nil
	}

	s.mu.Lock()
	s.history = append(s.history, Message{Role: RoleAssistant, Content: reply.Answer})
	if reply.ManualCargado != nil {
		s.status.ManualCargado = *reply.ManualCargado
	}
	s.mu.Unlock()

	return Answer{Text: reply.Answer}, nil
}

func (s *Session) appendTurn(m Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, m)
}

// recheck refreshes the status in the background after a failure
func (s *Session) recheck() {
	s.rechecks.Add(1)
	go func() {
		defer s.rechecks.Done()
		ctx, cancel := context.WithTimeout(context.Background(), recheckTimeout)
		defer cancel()
		if _, err := s.CheckStatus(ctx); err != nil {
			slog.Warn("chat status re-check failed", "error", err)
		}
	}()
}

// WaitRechecks blocks until background status re-checks have finished
func (s *Session) WaitRechecks() {
	s.rechecks.Wait()
}

// CheckStatus queries the assistant and stores the result. On failure the
// stored status becomes not-ok.
func (s *Session) CheckStatus(ctx context.Context) (Status, error) {
	status, err := s.client.Status(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastChecked = time.Now()
	s.checkErr = err
	if err != nil {
		s.status = Status{}
		return s.status, err
	}
	s.status = status
	return status, nil
}

// StatusReport is the last known status with when it was taken
type StatusReport struct {
	Status
	LastChecked time.Time `json:"lastChecked"`
	Error       string    `json:"error,omitempty"`
}

// LastStatus returns the most recent status without calling the assistant
func (s *Session) LastStatus() StatusReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := StatusReport{Status: s.status, LastChecked: s.lastChecked}
	if s.checkErr != nil {
		r.Error = s.checkErr.Error()
	}
	return r
}

// History returns a copy of the conversation
func (s *Session) History() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lastTurns(s.history, len(s.history))
}
