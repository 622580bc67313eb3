package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce          sync.Once
	apiRequestsTotal      *prometheus.CounterVec
	apiLatencySeconds     *prometheus.HistogramVec
	apiErrorsTotal        *prometheus.CounterVec
	engineRecomputesTotal *prometheus.CounterVec
	changeEventsTotal     *prometheus.CounterVec
)

// RegisterMetrics initialises the Prometheus collectors.
func RegisterMetrics() {
	registerOnce.Do(func() {
		apiRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests served.",
		}, []string{"method", "route", "status"})

		apiLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "api_latency_seconds",
			Help:    "Latency distribution for API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		}, []string{"method", "route"})

		apiErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "api_errors_total",
			Help: "Total number of error responses returned by API endpoints.",
		}, []string{"method", "route", "status"})

		engineRecomputesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "engine_recomputes_total",
			Help: "Total number of academic aggregate recomputations by view.",
		}, []string{"view"})

		changeEventsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "change_events_published_total",
			Help: "Total number of mutation events published to the broker.",
		}, []string{"entity", "action"})

		prometheus.MustRegister(apiRequestsTotal, apiLatencySeconds, apiErrorsTotal, engineRecomputesTotal, changeEventsTotal)
	})
}

// APIRequests exposes the counter for API requests.
func APIRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return apiRequestsTotal
}

// APILatency exposes the latency histogram for API requests.
func APILatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return apiLatencySeconds
}

// APIErrors exposes the counter for API error responses.
func APIErrors() *prometheus.CounterVec {
	RegisterMetrics()
	return apiErrorsTotal
}

// EngineRecomputesTotal exposes the counter for aggregate recomputations.
func EngineRecomputesTotal() *prometheus.CounterVec {
	RegisterMetrics()
	return engineRecomputesTotal
}

// ChangeEventsPublishedTotal exposes the counter for published mutation
// events.
func ChangeEventsPublishedTotal() *prometheus.CounterVec {
	RegisterMetrics()
	return changeEventsTotal
}
