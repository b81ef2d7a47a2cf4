// Package metrics records board and chat activity for prometheus and for
// the in-process snapshot served on /healthz.
package metrics

import "time"

// Result labels
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Recorder receives measurements from the pipeline service and chat client
type Recorder interface {
	ObserveTransition(action string, d time.Duration, err error)
	SetColumnSize(columnID string, n int)
	IncEventPublished(ok bool)
	ObserveChatRequest(d time.Duration, ok bool)
	SetChatAvailable(ok bool)
	ObserveHTTPRequest(method, route string, status int, d time.Duration)
}

// NoopRecorder discards every measurement
type NoopRecorder struct{}

func (NoopRecorder) ObserveTransition(string, time.Duration, error)          {}
func (NoopRecorder) SetColumnSize(string, int)                              {}
func (NoopRecorder) IncEventPublished(bool)                                 {}
func (NoopRecorder) ObserveChatRequest(time.Duration, bool)                 {}
func (NoopRecorder) SetChatAvailable(bool)                                  {}
func (NoopRecorder) ObserveHTTPRequest(string, string, int, time.Duration) {}

func resultLabel(ok bool) string {
	if ok {
		return ResultOK
	}
	return ResultError
}
