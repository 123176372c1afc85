// Package metrics exposes the assistant's Prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry so tests can create as many as they like.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry   *prometheus.Registry
	requests   *prometheus.CounterVec
	intents    *prometheus.CounterVec
	aiFailures prometheus.Counter
	dispatched *prometheus.CounterVec
}

// New registers every collector on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "assistant",
			Name:      "http_requests_total",
			Help:      "Requests to the ask endpoint by response status code.",
		}, []string{"code"}),
		intents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "assistant",
			Name:      "intents_total",
			Help:      "Messages processed by classified intent.",
		}, []string{"intent"}),
		aiFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "assistant",
			Name:      "ai_failures_total",
			Help:      "Failed calls to the AI collaborator.",
		}),
		dispatched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "assistant",
			Name:      "reminders_dispatched_total",
			Help:      "Due reminders handed to the notifier by outcome.",
		}, []string{"outcome"}),
	}
	m.registry.MustRegister(
		m.requests, m.intents, m.aiFailures, m.dispatched,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveRequest counts one ask response by status code.
func (m *Metrics) ObserveRequest(code string) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(code).Inc()
}

// ObserveIntent counts one classified message.
func (m *Metrics) ObserveIntent(intent string) {
	if m == nil {
		return
	}
	m.intents.WithLabelValues(intent).Inc()
}

// ObserveAIFailure counts one failed or timed-out AI call.
func (m *Metrics) ObserveAIFailure() {
	if m == nil {
		return
	}
	m.aiFailures.Inc()
}

// ObserveDispatch counts one due-reminder notification attempt.
func (m *Metrics) ObserveDispatch(ok bool) {
	if m == nil {
		return
	}
	outcome := "sent"
	if !ok {
		outcome = "failed"
	}
	m.dispatched.WithLabelValues(outcome).Inc()
}
