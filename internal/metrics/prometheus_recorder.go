package metrics

import (
	"net/http"
	"strconv"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	promcollect "github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "talento"

// PrometheusRecorder implements Recorder using Prometheus metrics and keeps
// the atomic Counters in step for the health snapshot.
type PrometheusRecorder struct {
	registry *prom.Registry
	counters *Counters

	transitionDuration *prom.HistogramVec
	transitions        *prom.CounterVec
	columnSize         *prom.GaugeVec
	events             *prom.CounterVec
	chatDuration       prom.Histogram
	chatRequests       *prom.CounterVec
	chatAvailable      prom.Gauge
	httpDuration       *prom.HistogramVec
	httpRequests       *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers the metrics on reg.
// A nil registry gets a fresh one with the Go and process collectors.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
		reg.MustRegister(promcollect.NewGoCollector(), promcollect.NewProcessCollector(promcollect.ProcessCollectorOpts{}))
	}

	pr := &PrometheusRecorder{
		registry: reg,
		counters: NewCounters(),
		transitionDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "transition_duration_seconds",
			Help:      "Duration of board transitions including persistence",
			Buckets:   prom.DefBuckets,
		}, []string{"action"}),
		transitions: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "transitions_total",
			Help:      "Board transitions by action and result",
		}, []string{"action", "result"}),
		columnSize: prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "column_candidates",
			Help:      "Candidates currently in each pipeline column",
		}, []string{"column"}),
		events: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Board change events by publish result",
		}, []string{"result"}),
		chatDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "chat_request_duration_seconds",
			Help:      "Duration of chat API requests",
			Buckets:   prom.DefBuckets,
		}),
		chatRequests: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "chat_requests_total",
			Help:      "Chat API requests by result",
		}, []string{"result"}),
		chatAvailable: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "chat_available",
			Help:      "1 when the last chat status check succeeded",
		}),
		httpDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP API requests by route",
			Buckets:   prom.DefBuckets,
		}, []string{"method", "route"}),
		httpRequests: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP API requests by route and status code",
		}, []string{"method", "route", "status"}),
	}

	reg.MustRegister(pr.transitionDuration, pr.transitions, pr.columnSize, pr.events,
		pr.chatDuration, pr.chatRequests, pr.chatAvailable, pr.httpDuration, pr.httpRequests)
	return pr
}

// Handler serves the registry in the prometheus exposition format
func (p *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

// Snapshot returns the atomic counters
func (p *PrometheusRecorder) Snapshot() Snapshot {
	return p.counters.Snapshot()
}

func (p *PrometheusRecorder) ObserveTransition(action string, d time.Duration, err error) {
	if p == nil {
		return
	}
	p.counters.observeTransition(err)
	p.transitionDuration.WithLabelValues(action).Observe(d.Seconds())
	p.transitions.WithLabelValues(action, resultLabel(err == nil)).Inc()
}

func (p *PrometheusRecorder) SetColumnSize(columnID string, n int) {
	if p == nil {
		return
	}
	p.columnSize.WithLabelValues(columnID).Set(float64(n))
}

func (p *PrometheusRecorder) IncEventPublished(ok bool) {
	if p == nil {
		return
	}
	p.counters.incEvent(ok)
	p.events.WithLabelValues(resultLabel(ok)).Inc()
}

func (p *PrometheusRecorder) ObserveChatRequest(d time.Duration, ok bool) {
	if p == nil {
		return
	}
	p.counters.incChat(ok)
	p.chatDuration.Observe(d.Seconds())
	p.chatRequests.WithLabelValues(resultLabel(ok)).Inc()
}

func (p *PrometheusRecorder) SetChatAvailable(ok bool) {
	if p == nil {
		return
	}
	p.counters.ChatAvailable.Store(ok)
	if ok {
		p.chatAvailable.Set(1)
	} else {
		p.chatAvailable.Set(0)
	}
}

func (p *PrometheusRecorder) ObserveHTTPRequest(method, route string, status int, d time.Duration) {
	if p == nil {
		return
	}
	p.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
	p.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

var _ Recorder = (*PrometheusRecorder)(nil)
