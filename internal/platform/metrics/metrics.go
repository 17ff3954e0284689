package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	Lookups         *prometheus.CounterVec
	CacheResults    *prometheus.CounterVec
	FetchAttempts   *prometheus.CounterVec
	FetchDuration   *prometheus.HistogramVec
	HistoryEntries  prometheus.Gauge
	EndpointLatency *prometheus.HistogramVec
}

// New creates and registers all metrics with the default registry.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers metrics on reg; tests pass a fresh registry.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lookupdesk_lookups_total",
			Help: "Lookups by domain and outcome",
		}, []string{"domain", "outcome"}),
		CacheResults: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lookupdesk_cache_results_total",
			Help: "Cache reads by domain and result (hit, miss, expired)",
		}, []string{"domain", "result"}),
		FetchAttempts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lookupdesk_fetch_attempts_total",
			Help: "Upstream fetch attempts by route (direct, relay) and outcome",
		}, []string{"route", "outcome"}),
		FetchDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lookupdesk_fetch_duration_seconds",
			Help:    "Upstream fetch attempt latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		HistoryEntries: factory.NewGauge(prometheus.GaugeOpts{
			Name: "lookupdesk_history_entries",
			Help: "Entries currently held in the search history",
		}),
		EndpointLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lookupdesk_http_request_duration_seconds",
			Help:    "HTTP request latency by route pattern",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
	}
}

func (m *Metrics) IncrementLookup(domain, outcome string) {
	if m == nil {
		return
	}
	m.Lookups.WithLabelValues(domain, outcome).Inc()
}

func (m *Metrics) IncrementCacheResult(domain, result string) {
	if m == nil {
		return
	}
	m.CacheResults.WithLabelValues(domain, result).Inc()
}

func (m *Metrics) ObserveFetchAttempt(route, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.FetchAttempts.WithLabelValues(route, outcome).Inc()
	m.FetchDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

func (m *Metrics) SetHistoryEntries(count int) {
	if m == nil {
		return
	}
	m.HistoryEntries.Set(float64(count))
}

func (m *Metrics) ObserveEndpointLatency(route string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.EndpointLatency.WithLabelValues(route).Observe(elapsed.Seconds())
}
