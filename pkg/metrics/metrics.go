package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	SearchRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_requests_total",
			Help: "Resolved search requests by response source",
		},
		[]string{"source"}, // cache|provider
	)
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Cache read outcomes",
		},
		[]string{"op"}, // hit|miss|stale|read_error
	)
	CacheWrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_writes_total",
			Help: "Asynchronous cache write outcomes",
		},
		[]string{"result"}, // ok|error
	)
)

var (
	ProviderCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "provider_calls_total",
			Help: "External product search calls",
		},
		[]string{"result"}, // ok|error
	)
	ProviderDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "provider_call_duration_seconds",
			Help:    "External product search call latency",
			Buckets: prometheus.DefBuckets,
		},
	)
)

var registerOnce sync.Once

// MustRegister — регистрация метрик в глобальном реестре.
// Повторный вызов безопасен (нужно для тестов разных пакетов).
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(SearchRequests, CacheOps, CacheWrites, ProviderCalls, ProviderDuration)
	})
}
