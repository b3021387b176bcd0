// Package metrics holds the Prometheus instruments for the scan pipeline.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "threatscan"

type Metrics struct {
	registry *prometheus.Registry

	lookups         *prometheus.CounterVec
	lookupDuration  prometheus.Histogram
	batches         *prometheus.CounterVec
	rateLimitAborts prometheus.Counter
	verdicts        *prometheus.CounterVec
	storedVerdicts  prometheus.Gauge
}

// New registers the pipeline instruments plus the Go and process collectors
// on a private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{
		registry: reg,
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookups_total",
			Help:      "Reputation lookups by outcome (ok, error, rate_limited).",
		}, []string{"outcome"}),
		lookupDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "lookup_duration_seconds",
			Help:      "Latency of single reputation lookups.",
			Buckets:   prometheus.DefBuckets,
		}),
		batches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batches_total",
			Help:      "Completed batches by result (success, partial, failed).",
		}, []string{"result"}),
		rateLimitAborts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limit_aborts_total",
			Help:      "Batches stopped early by an upstream rate limit.",
		}),
		verdicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "verdicts_total",
			Help:      "Persisted verdicts by status.",
		}, []string{"status"}),
		storedVerdicts: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "stored_verdicts",
			Help:      "Verdicts currently held by the result store.",
		}),
	}
	reg.MustRegister(m.lookups, m.lookupDuration, m.batches, m.rateLimitAborts, m.verdicts, m.storedVerdicts)
	return m
}

// All methods are safe on a nil *Metrics so tests can skip instrumentation.

func (m *Metrics) ObserveLookup(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.lookups.WithLabelValues(outcome).Inc()
	m.lookupDuration.Observe(d.Seconds())
}

func (m *Metrics) ObserveBatch(result string, rateLimited bool) {
	if m == nil {
		return
	}
	m.batches.WithLabelValues(result).Inc()
	if rateLimited {
		m.rateLimitAborts.Inc()
	}
}

func (m *Metrics) ObserveVerdict(status string) {
	if m == nil {
		return
	}
	m.verdicts.WithLabelValues(status).Inc()
	m.storedVerdicts.Inc()
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the private registry, e.g. for gathering in tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }
