package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	t.Parallel()
	m := New()

	m.ObserveIntent("chat")
	m.ObserveIntent("chat")
	m.ObserveIntent("create_reminder")
	m.ObserveAIFailure()
	m.ObserveRequest("200")
	m.ObserveDispatch(true)
	m.ObserveDispatch(false)
	m.ObserveDispatch(false)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.intents.WithLabelValues("chat")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.intents.WithLabelValues("create_reminder")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.aiFailures))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("200")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.dispatched.WithLabelValues("failed")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	t.Parallel()
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveIntent("chat")
		m.ObserveAIFailure()
		m.ObserveRequest("500")
		m.ObserveDispatch(true)
	})
}

func TestHandlerExposesCounters(t *testing.T) {
	t.Parallel()
	m := New()
	m.ObserveAIFailure()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "assistant_ai_failures_total 1")
}

func TestRegistryIncludesRuntimeCollectors(t *testing.T) {
	t.Parallel()
	m := New()
	m.ObserveRequest("200")

	families, err := m.Registry().Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["assistant_http_requests_total"])
	assert.True(t, names["go_goroutines"])
	assert.True(t, names["process_start_time_seconds"] || names["go_threads"])
}
