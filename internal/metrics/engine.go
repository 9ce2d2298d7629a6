package metrics

import "github.com/prometheus/client_golang/prometheus"

// Engine Prometheus metrics.
var (
	CatalogBuildDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "moodflix",
			Name:      "catalog_build_duration_seconds",
			Help:      "Catalog ingestion duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	CatalogSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "moodflix",
			Name:      "catalog_size",
			Help:      "Number of movies in the built catalog",
		},
	)

	CatalogBuildErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "moodflix",
			Name:      "catalog_build_errors_total",
			Help:      "Total failed catalog builds",
		},
	)

	RecommendationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "moodflix",
			Name:      "recommendations_total",
			Help:      "Total recommendation requests served",
		},
		[]string{"preference"},
	)

	RecommendationResults = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "moodflix",
			Name:      "recommendation_results",
			Help:      "Number of results returned per recommendation request",
			Buckets:   []float64{0, 1, 5, 10, 20, 50, 100},
		},
		[]string{"preference"},
	)
)

var engineMetricsRegistered bool

// RegisterEngineMetrics registers Prometheus engine metrics. Must be called once from main.
func RegisterEngineMetrics() {
	if engineMetricsRegistered {
		return
	}
	prometheus.MustRegister(CatalogBuildDuration)
	prometheus.MustRegister(CatalogSize)
	prometheus.MustRegister(CatalogBuildErrorsTotal)
	prometheus.MustRegister(RecommendationsTotal)
	prometheus.MustRegister(RecommendationResults)
	engineMetricsRegistered = true
}
