package infrastructure

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusMetrics implements the MetricsCollector port
type PrometheusMetrics struct {
	apiRequests *prometheus.CounterVec
	apiLatency  *prometheus.HistogramVec
	searches    *prometheus.CounterVec
	searchTime  *prometheus.HistogramVec
	superseded  prometheus.Counter
}

// NewPrometheusMetrics registers the weather lookup collectors on reg.
// Passing prometheus.DefaultRegisterer exposes them through promhttp.Handler.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		apiRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weather_api_requests_total",
				Help: "The total number of weather provider requests",
			},
			[]string{"endpoint", "outcome"},
		),
		apiLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "weather_api_request_duration_seconds",
				Help:    "Weather provider request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		searches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weather_searches_total",
				Help: "The total number of completed searches by final status",
			},
			[]string{"status"},
		),
		searchTime: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "weather_search_duration_seconds",
				Help:    "End-to-end search duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"status"},
		),
		superseded: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "weather_searches_superseded_total",
				Help: "The total number of searches abandoned because a newer search started",
			},
		),
	}
}

func (m *PrometheusMetrics) RecordWeatherAPICall(endpoint, outcome string, duration time.Duration) {
	m.apiRequests.WithLabelValues(endpoint, outcome).Inc()
	m.apiLatency.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *PrometheusMetrics) RecordSearch(status string, duration time.Duration) {
	m.searches.WithLabelValues(status).Inc()
	m.searchTime.WithLabelValues(status).Observe(duration.Seconds())
}

func (m *PrometheusMetrics) RecordSupersededSearch() {
	m.superseded.Inc()
}
