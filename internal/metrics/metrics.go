// Package metrics provides the centralized Prometheus metrics registry for
// the analysis engine.
package metrics

import (
	"net/http"
	"sync"
	"time"

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
	AnalysesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "match_edge",
		Name:      "analyses_total",
		Help:      "Total number of match analyses by probability source and status",
	}, []string{"source", "status"})
	ValueSignalsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "match_edge",
		Name:      "value_signals_total",
		Help:      "Total number of positive expected value signals by market",
	}, []string{"market"})
)

// Histogram metrics
var (
	DistributionBuildDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "match_edge",
		Name:      "distribution_build_duration_seconds",
		Help:      "Duration of scoreline distribution construction in seconds",
		Buckets:   prometheus.DefBuckets,
	})
	SimulationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "match_edge",
		Name:      "simulation_duration_seconds",
		Help:      "Duration of Monte Carlo simulation runs in seconds",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10},
	})
	SimulationSamples = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "match_edge",
		Name:      "simulation_samples",
		Help:      "Sample counts of Monte Carlo simulation runs",
		Buckets:   []float64{1e3, 1e4, 1e5, 1e6, 1e7},
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(AnalysesTotal)
		registry.MustRegister(ValueSignalsTotal)

		registry.MustRegister(DistributionBuildDuration)
		registry.MustRegister(SimulationDuration)
		registry.MustRegister(SimulationSamples)
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

// RecordAnalysis records an analysis event.
// status should be one of: "success", "failure", "invalid"
func RecordAnalysis(source, status string) {
	AnalysesTotal.WithLabelValues(source, status).Inc()
}

// RecordValueSignal records a positive expected value signal for a market.
func RecordValueSignal(market string) {
	ValueSignalsTotal.WithLabelValues(market).Inc()
}

// ObserveDistributionBuild records the duration of a distribution build.
func ObserveDistributionBuild(d time.Duration) {
	DistributionBuildDuration.Observe(d.Seconds())
}

// ObserveSimulation records the duration and sample count of a simulation run.
func ObserveSimulation(d time.Duration, samples int) {
	SimulationDuration.Observe(d.Seconds())
	SimulationSamples.Observe(float64(samples))
}
