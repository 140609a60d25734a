package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics covers the participation workflow, event moderation and the stats integration.
// All methods are safe on a nil receiver so tests can pass nil.
type Metrics struct {
	RequestsCreated   *prometheus.CounterVec
	RequestDecisions  *prometheus.CounterVec
	CascadeRejected   prometheus.Counter
	EventTransitions  *prometheus.CounterVec
	StatsCallDuration *prometheus.HistogramVec
	HitsPublished     *prometheus.CounterVec
	HitsDelivered     *prometheus.CounterVec
}

// New registers all metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		RequestsCreated: f.NewCounterVec(prometheus.CounterOpts{
			Name: "eventhub_requests_created_total",
			Help: "Participation requests created, by initial state",
		}, []string{"state"}),
		RequestDecisions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "eventhub_request_decisions_total",
			Help: "Requests confirmed or rejected by event initiators",
		}, []string{"state"}),
		CascadeRejected: f.NewCounter(prometheus.CounterOpts{
			Name: "eventhub_requests_cascade_rejected_total",
			Help: "Pending requests rejected because the participant limit was reached",
		}),
		EventTransitions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "eventhub_event_transitions_total",
			Help: "Event state transitions, by action",
		}, []string{"action"}),
		StatsCallDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "eventhub_stats_call_duration_seconds",
			Help:    "Duration of calls to the stats service",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"endpoint", "outcome"}),
		HitsPublished: f.NewCounterVec(prometheus.CounterOpts{
			Name: "eventhub_hits_published_total",
			Help: "Hits handed to the hit queue",
		}, []string{"outcome"}),
		HitsDelivered: f.NewCounterVec(prometheus.CounterOpts{
			Name: "eventhub_hits_delivered_total",
			Help: "Hits forwarded from the queue to the stats service",
		}, []string{"outcome"}),
	}
}

func (m *Metrics) IncRequestCreated(state string) {
	if m == nil {
		return
	}
	m.RequestsCreated.WithLabelValues(state).Inc()
}

func (m *Metrics) AddRequestDecisions(state string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.RequestDecisions.WithLabelValues(state).Add(float64(n))
}

func (m *Metrics) AddCascadeRejected(n int) {
	if m == nil || n == 0 {
		return
	}
	m.CascadeRejected.Add(float64(n))
}

func (m *Metrics) IncEventTransition(action string) {
	if m == nil {
		return
	}
	m.EventTransitions.WithLabelValues(action).Inc()
}

func (m *Metrics) ObserveStatsCall(endpoint string, d time.Duration, ok bool) {
	if m == nil {
		return
	}
	m.StatsCallDuration.WithLabelValues(endpoint, outcome(ok)).Observe(d.Seconds())
}

func (m *Metrics) IncHitPublished(ok bool) {
	if m == nil {
		return
	}
	m.HitsPublished.WithLabelValues(outcome(ok)).Inc()
}

func (m *Metrics) IncHitDelivered(ok bool) {
	if m == nil {
		return
	}
	m.HitsDelivered.WithLabelValues(outcome(ok)).Inc()
}

func outcome(ok bool) string {
	if ok {
		return "success"
	}
	return "failure"
}
