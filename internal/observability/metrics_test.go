package observability

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	"example.com/roster/internal/domain"
)

func TestOutcome(t *testing.T) {
	require.Equal(t, "ok", Outcome(nil))
	require.Equal(t, "activity_not_found", Outcome(domain.ErrActivityNotFound))
	require.Equal(t, "participant_not_found", Outcome(domain.ErrParticipantNotFound))
	require.Equal(t, "error", Outcome(errors.New("boom")))
}

func TestRecorderCountsMutations(t *testing.T) {
	signedUp := rosterMutationCounter.WithLabelValues(string(domain.EventParticipantSignedUp), "Chess Club", "ok")
	unknown := rosterMutationCounter.WithLabelValues(string(domain.EventParticipantSignedUp), "unknown", "activity_not_found")
	before := testutil.ToFloat64(signedUp)
	beforeUnknown := testutil.ToFloat64(unknown)

	var rec Recorder
	rec.RecordMutation(domain.EventParticipantSignedUp, "Chess Club", nil)
	rec.RecordMutation(domain.EventParticipantSignedUp, "Nonexistent Club", domain.ErrActivityNotFound)

	require.InDelta(t, before+1, testutil.ToFloat64(signedUp), 0.0001)
	require.InDelta(t, beforeUnknown+1, testutil.ToFloat64(unknown), 0.0001)
	require.Greater(t, testutil.ToFloat64(lastMutationGauge), 0.0)
}

func TestRecorderCountsPublishFailures(t *testing.T) {
	counter := publishFailureCounter.WithLabelValues(string(domain.EventParticipantRemoved))
	before := testutil.ToFloat64(counter)

	Recorder{}.RecordPublishFailure(domain.EventParticipantRemoved)

	require.InDelta(t, before+1, testutil.ToFloat64(counter), 0.0001)
}

func TestRecordHTTPRequest(t *testing.T) {
	counter := httpRequestCounter.WithLabelValues("GET", "200")
	before := testutil.ToFloat64(counter)
	samplesBefore := durationSamples(t, "GET")

	RecordHTTPRequest("GET", 200, 15*time.Millisecond)

	require.InDelta(t, before+1, testutil.ToFloat64(counter), 0.0001)
	require.Equal(t, samplesBefore+1, durationSamples(t, "GET"))
}

func durationSamples(t *testing.T, method string) uint64 {
	t.Helper()
	observer, err := httpRequestDuration.GetMetricWithLabelValues(method)
	require.NoError(t, err)

	metric := &dto.Metric{}
	require.NoError(t, observer.(prometheus.Histogram).Write(metric))
	return metric.GetHistogram().GetSampleCount()
}
