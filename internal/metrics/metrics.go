// Package metrics holds the Prometheus collectors of the almanac engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application. Collectors live
// on their own registry so that several instances can coexist in one process.
type Metrics struct {
	Registry *prometheus.Registry

	StagesApplied  *prometheus.CounterVec
	FragmentsOut   *prometheus.CounterVec
	Queries        *prometheus.CounterVec
	QueryDurations *prometheus.HistogramVec
}

// New creates and registers all metrics.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		StagesApplied: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "almanac_stages_applied_total",
			Help: "Number of times a stage was applied to a range set or value list",
		}, []string{"stage"}),
		FragmentsOut: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "almanac_stage_fragments_total",
			Help: "Resolved intervals produced by each stage",
		}, []string{"stage"}),
		Queries: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "almanac_queries_total",
			Help: "Lowest-location queries by mode and outcome",
		}, []string{"mode", "outcome"}),
		QueryDurations: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "almanac_query_duration_seconds",
			Help:    "Time spent answering lowest-location queries",
			Buckets: prometheus.DefBuckets,
		}, []string{"mode"}),
	}
}

// ObserveStage implements traversal.Recorder.
func (m *Metrics) ObserveStage(stage string, in, out int) {
	m.StagesApplied.WithLabelValues(stage).Inc()
	m.FragmentsOut.WithLabelValues(stage).Add(float64(out))
}

// ObserveQuery records the outcome and latency of a query.
func (m *Metrics) ObserveQuery(mode string, seconds float64, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.Queries.WithLabelValues(mode, outcome).Inc()
	m.QueryDurations.WithLabelValues(mode).Observe(seconds)
}
