// Package metrics provides the centralized Prometheus registry for the
// handicapping engine and its data collectors.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	CacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "paddock_edge",
		Name:      "cache_hits_total",
		Help:      "Total number of race days served from the file cache",
	})
	CacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "paddock_edge",
		Name:      "cache_misses_total",
		Help:      "Total number of race days not found in the file cache",
	})
	DaysCollectedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "paddock_edge",
		Name:      "days_collected_total",
		Help:      "Total number of race days collected from a data source",
	})
	EmptyDaysTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "paddock_edge",
		Name:      "empty_days_total",
		Help:      "Total number of collected days with no entry data",
	})
	CollectionFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "paddock_edge",
		Name:      "collection_failures_total",
		Help:      "Total number of failed collection attempts",
	})
	RacesEvaluatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "paddock_edge",
		Name:      "races_evaluated_total",
		Help:      "Total number of races scored during backtests",
	})
	NarrativeRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "paddock_edge",
		Name:      "narrative_requests_total",
		Help:      "Total number of narrative generation requests by outcome",
	}, []string{"outcome"})
)

// Gauge metrics
var (
	LastRunPlaceHitRate = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "paddock_edge",
		Name:      "last_run_place_hit_rate",
		Help:      "Place hit rate of the most recent backtest run, percent",
	})
	LastRunTrioROI = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "paddock_edge",
		Name:      "last_run_trio_roi",
		Help:      "Trio return on investment of the most recent backtest run, percent",
	})
)

// Histogram metrics
var (
	CollectionDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "paddock_edge",
		Name:      "collection_duration_seconds",
		Help:      "Duration of single-day collection operations in seconds",
		Buckets:   prometheus.DefBuckets,
	})
	BacktestDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "paddock_edge",
		Name:      "backtest_duration_seconds",
		Help:      "Duration of backtest runs in seconds",
		Buckets:   []float64{1, 5, 10, 30, 60, 300, 600, 1800},
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		// Register counter metrics
		registry.MustRegister(CacheHitsTotal)
		registry.MustRegister(CacheMissesTotal)
		registry.MustRegister(DaysCollectedTotal)
		registry.MustRegister(EmptyDaysTotal)
		registry.MustRegister(CollectionFailuresTotal)
		registry.MustRegister(RacesEvaluatedTotal)
		registry.MustRegister(NarrativeRequestsTotal)

		// Register gauge metrics
		registry.MustRegister(LastRunPlaceHitRate)
		registry.MustRegister(LastRunTrioROI)

		// Register histogram metrics
		registry.MustRegister(CollectionDuration)
		registry.MustRegister(BacktestDuration)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordCacheHit records a race day served from the file cache.
func RecordCacheHit() {
	CacheHitsTotal.Inc()
}

// RecordCacheMiss records a race day missing from the file cache.
func RecordCacheMiss() {
	CacheMissesTotal.Inc()
}

// RecordDayCollected records a completed collection with its duration.
func RecordDayCollected(durationSeconds float64) {
	DaysCollectedTotal.Inc()
	CollectionDuration.Observe(durationSeconds)
}

// RecordEmptyDay records a collected day that carried no entries.
func RecordEmptyDay() {
	EmptyDaysTotal.Inc()
}

// RecordCollectionFailure records a failed collection attempt.
func RecordCollectionFailure() {
	CollectionFailuresTotal.Inc()
}

// RecordRaceEvaluated records a race scored during a backtest.
func RecordRaceEvaluated() {
	RacesEvaluatedTotal.Inc()
}

// RecordNarrativeRequest records a narrative generation request. The
// outcome is one of "generated", "cached" or "failed".
func RecordNarrativeRequest(outcome string) {
	NarrativeRequestsTotal.WithLabelValues(outcome).Inc()
}

// RecordBacktestDuration records backtest duration.
func RecordBacktestDuration(durationSeconds float64) {
	BacktestDuration.Observe(durationSeconds)
}

// UpdatePlaceHitRate updates the last-run place hit rate gauge.
func UpdatePlaceHitRate(percent float64) {
	LastRunPlaceHitRate.Set(percent)
}

// UpdateTrioROI updates the last-run trio ROI gauge.
func UpdateTrioROI(percent float64) {
	LastRunTrioROI.Set(percent)
}
