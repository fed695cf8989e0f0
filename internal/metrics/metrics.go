// Package metrics provides the centralized Prometheus metrics registry for
// the rule miner.
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
	PairsEvaluatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "lay_scout",
		Name:      "pairs_evaluated_total",
		Help:      "Total number of (context, outcome) combinations evaluated",
	})
	PairsFailedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "lay_scout",
		Name:      "pairs_failed_total",
		Help:      "Total number of combinations skipped after an isolated failure",
	})
	RulesApprovedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "lay_scout",
		Name:      "rules_approved_total",
		Help:      "Total number of combinations promoted to approved status",
	})
	MiningRunsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "lay_scout",
		Name:      "mining_runs_total",
		Help:      "Total number of completed mining runs",
	})
	RecommendationsEmittedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "lay_scout",
		Name:      "recommendations_emitted_total",
		Help:      "Total number of per-match recommendations emitted",
	})
	TableFetchesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "lay_scout",
		Name:      "table_fetches_total",
		Help:      "Total number of remote table fetches",
	})
)

// Gauge metrics
var (
	ApprovedRules = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "lay_scout",
		Name:      "approved_rules",
		Help:      "Number of approved rules after the latest mining run",
	})
	HistoricalRows = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "lay_scout",
		Name:      "historical_rows",
		Help:      "Row count of the historical table after league filtering",
	})
	TableCacheHitRatio = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "lay_scout",
		Name:      "table_cache_hit_ratio",
		Help:      "Hit ratio of the fetched-table cache",
	})
)

// Histogram metrics
var (
	MiningRunDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "lay_scout",
		Name:      "mining_run_duration_seconds",
		Help:      "Duration of full mining runs in seconds",
		Buckets:   []float64{1, 5, 10, 30, 60, 300, 600, 1800},
	})
	PairEvaluationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "lay_scout",
		Name:      "pair_evaluation_duration_seconds",
		Help:      "Duration of single combination evaluations in seconds",
		Buckets:   prometheus.DefBuckets,
	})
	TableFetchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "lay_scout",
		Name:      "table_fetch_duration_seconds",
		Help:      "Duration of remote table fetches in seconds",
		Buckets:   prometheus.DefBuckets,
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(PairsEvaluatedTotal)
		registry.MustRegister(PairsFailedTotal)
		registry.MustRegister(RulesApprovedTotal)
		registry.MustRegister(MiningRunsTotal)
		registry.MustRegister(RecommendationsEmittedTotal)
		registry.MustRegister(TableFetchesTotal)

		registry.MustRegister(ApprovedRules)
		registry.MustRegister(HistoricalRows)
		registry.MustRegister(TableCacheHitRatio)

		registry.MustRegister(MiningRunDuration)
		registry.MustRegister(PairEvaluationDuration)
		registry.MustRegister(TableFetchDuration)
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

// RecordPairEvaluated records one evaluated combination.
func RecordPairEvaluated(durationSeconds float64) {
	PairsEvaluatedTotal.Inc()
	PairEvaluationDuration.Observe(durationSeconds)
}

// RecordPairFailed records one skipped combination.
func RecordPairFailed() {
	PairsFailedTotal.Inc()
}

// RecordMiningRun records a completed run and its approved-rule count.
func RecordMiningRun(durationSeconds float64, approvedCount int) {
	MiningRunsTotal.Inc()
	MiningRunDuration.Observe(durationSeconds)
	ApprovedRules.Set(float64(approvedCount))
	RulesApprovedTotal.Add(float64(approvedCount))
}

// RecordTableFetch records one remote fetch.
func RecordTableFetch(durationSeconds float64) {
	TableFetchesTotal.Inc()
	TableFetchDuration.Observe(durationSeconds)
}
