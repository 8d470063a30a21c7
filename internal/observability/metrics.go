package observability

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"example.com/roster/internal/domain"
)

var (
	rosterMutationCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "roster_service",
		Subsystem: "roster",
		Name:      "mutations_total",
		Help:      "Roster signups and removals grouped by event type, activity and outcome.",
	}, []string{"event_type", "activity", "outcome"})

	publishFailureCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "roster_service",
		Subsystem: "roster",
		Name:      "publish_failures_total",
		Help:      "Roster events that could not be handed to the outbox.",
	}, []string{"event_type"})

	lastMutationGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "roster_service",
		Subsystem: "roster",
		Name:      "last_mutation_timestamp_seconds",
		Help:      "Unix timestamp of the most recent successful roster mutation.",
	})

	httpRequestCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "roster_service",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests served, labeled by method and status code.",
	}, []string{"method", "code"})

	httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "roster_service",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Time spent serving HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})
)

func init() {
	prometheus.MustRegister(rosterMutationCounter, publishFailureCounter, lastMutationGauge, httpRequestCounter, httpRequestDuration)
}

// Outcome labels a roster mutation result.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrActivityNotFound):
		return "activity_not_found"
	case errors.Is(err, domain.ErrParticipantNotFound):
		return "participant_not_found"
	default:
		return "error"
	}
}

// Recorder implements domain.MutationRecorder on top of the package metrics.
type Recorder struct{}

// RecordMutation counts a roster mutation and moves the watermark on success.
func (Recorder) RecordMutation(eventType domain.EventType, activityName string, err error) {
	outcome := Outcome(err)
	// Unknown names are caller input; collapse them to keep label cardinality bounded.
	if errors.Is(err, domain.ErrActivityNotFound) {
		activityName = "unknown"
	}
	rosterMutationCounter.WithLabelValues(string(eventType), activityName, outcome).Inc()
	if err == nil {
		lastMutationGauge.Set(float64(time.Now().Unix()))
	}
}

// RecordPublishFailure counts an event that never reached the outbox.
func (Recorder) RecordPublishFailure(eventType domain.EventType) {
	publishFailureCounter.WithLabelValues(string(eventType)).Inc()
}

// RecordHTTPRequest records a served request.
func RecordHTTPRequest(method string, code int, elapsed time.Duration) {
	httpRequestCounter.WithLabelValues(method, strconv.Itoa(code)).Inc()
	httpRequestDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}
