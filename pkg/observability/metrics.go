package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics handles application metrics and monitoring
type Metrics struct {
	registry *prometheus.Registry

	cacheHits    *prometheus.CounterVec
	cacheMisses  *prometheus.CounterVec
	storeCalls   *prometheus.CounterVec
	storeLatency *prometheus.HistogramVec
	mutations    *prometheus.CounterVec
}

// NewMetrics creates a metrics instance with its own registry
func NewMetrics(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		cacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_hits_total",
			Help:      "Cache reads served from a fresh entry.",
		}, []string{"entity"}),
		cacheMisses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_misses_total",
			Help:      "Cache reads that triggered an upstream fetch.",
		}, []string{"entity"}),
		storeCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_requests_total",
			Help:      "Requests issued to the upstream store.",
		}, []string{"entity", "verb", "status"}),
		storeLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "store_request_duration_seconds",
			Help:      "Upstream store request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"entity", "verb"}),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mutations_total",
			Help:      "Mutation outcomes by command and terminal phase.",
		}, []string{"command", "outcome"}),
	}

	m.registry.MustRegister(m.cacheHits, m.cacheMisses, m.storeCalls, m.storeLatency, m.mutations)
	return m
}

// Registry exposes the registry for the /metrics endpoint
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordCacheHit records a cache read served without an upstream fetch
func (m *Metrics) RecordCacheHit(entity string) {
	m.cacheHits.WithLabelValues(entity).Inc()
}

// RecordCacheMiss records a cache read that went upstream
func (m *Metrics) RecordCacheMiss(entity string) {
	m.cacheMisses.WithLabelValues(entity).Inc()
}

// RecordStoreCall records one upstream request and its latency
func (m *Metrics) RecordStoreCall(entity, verb, status string, duration time.Duration) {
	m.storeCalls.WithLabelValues(entity, verb, status).Inc()
	m.storeLatency.WithLabelValues(entity, verb).Observe(duration.Seconds())
}

// RecordMutation records a mutation's terminal outcome
func (m *Metrics) RecordMutation(command, outcome string) {
	m.mutations.WithLabelValues(command, outcome).Inc()
}
