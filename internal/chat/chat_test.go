package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAssistant records requests and serves configurable answers
type fakeAssistant struct {
	mu          sync.Mutex
	requests    []Request
	statusCalls atomic.Int32
	failChat    bool
	statusOK    bool
	delay       time.Duration
}

func (f *fakeAssistant) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /status", func(w http.ResponseWriter, r *http.Request) {
		f.statusCalls.Add(1)
		_ = json.NewEncoder(w).Encode(Status{OK: f.statusOK, ManualCargado: f.statusOK})
	})
	mux.HandleFunc("POST /chat", func(w http.ResponseWriter, r *http.Request) {
		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		f.mu.Lock()
		f.requests = append(f.requests, req)
		fail := f.failChat
		f.mu.Unlock()

		if f.delay > 0 {
			time.Sleep(f.delay)
		}
		if fail {
			http.Error(w, "manual not loaded", http.StatusInternalServerError)
			return
		}
		loaded := true
		_ = json.NewEncoder(w).Encode(Reply{Answer: "Respuesta a: " + req.Message, ManualCargado: &loaded})
	})
	return mux
}

func (f *fakeAssistant) lastRequest(t *testing.T) Request {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.requests)
	return f.requests[len(f.requests)-1]
}

func newFake(t *testing.T, fake *fakeAssistant) *Client {
	t.Helper()
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", time.Second)
}

func TestClient_Status(t *testing.T) {
	t.Parallel()
	fake := &fakeAssistant{statusOK: true}
	client := newFake(t, fake)

	status, err := client.Status(context.Background())
	require.NoError(t, err)
	assert.True(t, status.OK)
	assert.True(t, status.ManualCargado)
}

func TestClient_SendTrimsHistory(t *testing.T) {
	t.Parallel()
	fake := &fakeAssistant{statusOK: true}
	client := newFake(t, fake)

	history := []Message{
		{RoleUser, "uno"}, {RoleAssistant, "1"},
		{RoleUser, "dos"}, {RoleAssistant, "2"},
		{RoleUser, "tres"}, {RoleAssistant, "3"},
	}
	reply, err := client.Send(context.Background(), "¿Vacaciones?", history)
	require.NoError(t, err)
	assert.Equal(t, "Respuesta a: ¿Vacaciones?", reply.Answer)

	req := fake.lastRequest(t)
	assert.Equal(t, "¿Vacaciones?", req.Message)
	assert.Equal(t, history[2:], req.History)
}

func TestClient_Errors(t *testing.T) {
	t.Parallel()
	fake := &fakeAssistant{failChat: true}
	client := newFake(t, fake)

	_, err := client.Send(context.Background(), "hola", nil)
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Contains(t, err.Error(), "500")

	_, err = client.Send(context.Background(), "   ", nil)
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestClient_Timeout(t *testing.T) {
	t.Parallel()
	fake := &fakeAssistant{delay: 300 * time.Millisecond}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	client := NewClient(srv.URL, 50*time.Millisecond)
	_, err := client.Send(context.Background(), "hola", nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClient_Reconfigure(t *testing.T) {
	t.Parallel()
	client := NewClient("http://old:5000/", time.Second)
	assert.Equal(t, "http://old:5000", client.BaseURL())

	client.Reconfigure("http://new:6000", 0)
	assert.Equal(t, "http://new:6000", client.BaseURL())
}

func TestSession_AskKeepsHistory(t *testing.T) {
	t.Parallel()
	fake := &fakeAssistant{statusOK: true}
	session := NewSession(newFake(t, fake))
	ctx := context.Background()

	for _, q := range []string{"a", "b", "c"} {
		answer, err := session.Ask(ctx, q)
		require.NoError(t, err)
		assert.False(t, answer.Fallback)
	}

	// Third question carries the four turns before it
	req := fake.lastRequest(t)
	require.Len(t, req.History, HistoryWindow)
	assert.Equal(t, Message{RoleUser, "a"}, req.History[0])
	assert.Equal(t, Message{RoleAssistant, "Respuesta a: b"}, req.History[3])

	assert.Len(t, session.History(), 6)
	assert.True(t, session.LastStatus().ManualCargado)
}

func TestSession_FallbackAndRecheck(t *testing.T) {
	t.Parallel()
	fake := &fakeAssistant{failChat: true, statusOK: false}
	session := NewSession(newFake(t, fake))

	answer, err := session.Ask(context.Background(), "¿Cuántos días de vacaciones tengo?")
	require.NoError(t, err)
	assert.True(t, answer.Fallback)
	assert.Equal(t, FallbackMessage, answer.Text)

	session.WaitRechecks()
	assert.Equal(t, int32(1), fake.statusCalls.Load())

	history := session.History()
	require.Len(t, history, 2)
	assert.Equal(t, Message{RoleAssistant, FallbackMessage}, history[1])
	assert.False(t, session.LastStatus().OK)
}

func TestSession_UnreachableAssistant(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	session := NewSession(NewClient(url, time.Second))
	answer, err := session.Ask(context.Background(), "hola")
	require.NoError(t, err)
	assert.True(t, answer.Fallback)

	session.WaitRechecks()
	report := session.LastStatus()
	assert.False(t, report.OK)
	assert.NotEmpty(t, report.Error)
	assert.False(t, report.LastChecked.IsZero())

	_, err = session.Ask(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestMonitor_ChecksImmediatelyAndPeriodically(t *testing.T) {
	t.Parallel()
	fake := &fakeAssistant{statusOK: true}
	session := NewSession(newFake(t, fake))

	monitor, err := NewMonitor(session, 100*time.Millisecond)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, monitor.Start(ctx))

	require.Eventually(t, func() bool { return fake.statusCalls.Load() >= 2 }, 3*time.Second, 20*time.Millisecond)
	require.NoError(t, monitor.Stop())
	assert.True(t, session.LastStatus().OK)
}
