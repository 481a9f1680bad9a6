// Package metrics defines the Prometheus collectors exported at /metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors and the private registry they live in.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	selections      *prometheus.CounterVec
	aggregations    *prometheus.CounterVec
	aggregationDays prometheus.Histogram
	aggregationTime prometheus.Histogram
	rpcRequests     *prometheus.CounterVec
	rpcDuration     *prometheus.HistogramVec
}

// New creates a registry with the dailypick collectors plus the Go runtime
// and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		selections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dailypick",
			Name:      "selections_total",
			Help:      "Single-day selections served, by roster.",
		}, []string{"roster"}),
		aggregations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dailypick",
			Name:      "aggregations_total",
			Help:      "Range aggregations computed, by roster.",
		}, []string{"roster"}),
		aggregationDays: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "dailypick",
			Name:      "aggregation_days",
			Help:      "Number of days replayed per aggregation.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
		aggregationTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "dailypick",
			Name:      "aggregation_duration_seconds",
			Help:      "Wall time spent replaying a date range.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		rpcRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dailypick",
			Name:      "rpc_requests_total",
			Help:      "RPC calls handled, by procedure and result code.",
		}, []string{"procedure", "code"}),
		rpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "dailypick",
			Name:      "rpc_duration_seconds",
			Help:      "RPC handling latency, by procedure.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.selections,
		m.aggregations,
		m.aggregationDays,
		m.aggregationTime,
		m.rpcRequests,
		m.rpcDuration,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveSelection records one single-day selection.
func (m *Metrics) ObserveSelection(roster string) {
	if m == nil {
		return
	}
	m.selections.WithLabelValues(roster).Inc()
}

// ObserveAggregation records one range replay.
func (m *Metrics) ObserveAggregation(roster string, days int, took time.Duration) {
	if m == nil {
		return
	}
	m.aggregations.WithLabelValues(roster).Inc()
	m.aggregationDays.Observe(float64(days))
	m.aggregationTime.Observe(took.Seconds())
}

// ObserveRPC records one handled RPC.
func (m *Metrics) ObserveRPC(procedure, code string, took time.Duration) {
	if m == nil {
		return
	}
	m.rpcRequests.WithLabelValues(procedure, code).Inc()
	m.rpcDuration.WithLabelValues(procedure).Observe(took.Seconds())
}
