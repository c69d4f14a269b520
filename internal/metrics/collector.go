// Package metrics provides internal metrics collection.
// This package is internal and should not be imported by external projects.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

// Collector records simulation and layout metrics.
type Collector struct {
	plansBuilt    *prometheus.CounterVec
	planLength    prometheus.Histogram
	stepsTotal    *prometheus.CounterVec
	stepDuration  prometheus.Histogram
	tracesTotal   *prometheus.CounterVec
	traceDuration prometheus.Histogram
	layoutRuns    *prometheus.CounterVec

	logger *zap.Logger
}

// NewCollector creates a collector registering on reg. A nil reg uses the
// default Prometheus registry; tests pass their own registry to avoid
// duplicate registration.
func NewCollector(namespace string, reg prometheus.Registerer, logger *zap.Logger) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	c := &Collector{
		logger: logger.With(zap.String("component", "metrics")),
	}

	c.plansBuilt = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "simulation_plans_built_total",
			Help:      "Total number of execution plans built",
		},
		[]string{"workflow"},
	)

	c.planLength = factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "simulation_plan_length_steps",
			Help:      "Execution plan length in steps",
			Buckets:   []float64{1, 2, 5, 10, 25, 50, 100},
		},
	)

	c.stepsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "simulation_steps_total",
			Help:      "Total number of simulated steps",
		},
		[]string{"status"},
	)

	c.stepDuration = factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "simulation_step_duration_seconds",
			Help:      "Simulated step duration in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5},
		},
	)

	c.tracesTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "simulation_traces_total",
			Help:      "Total number of finished traces",
		},
		[]string{"status"},
	)

	c.traceDuration = factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "simulation_trace_duration_seconds",
			Help:      "Trace wall-clock duration in seconds",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60, 120},
		},
	)

	c.layoutRuns = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "layout_runs_total",
			Help:      "Total number of layout runs",
		},
		[]string{"algorithm"},
	)

	logger.Info("metrics collector initialized", zap.String("namespace", namespace))
	return c
}

// RecordPlanBuilt records a built execution plan and its length.
func (c *Collector) RecordPlanBuilt(workflow string, steps int) {
	c.plansBuilt.WithLabelValues(workflow).Inc()
	c.planLength.Observe(float64(steps))
}

// RecordStep records one simulated step.
func (c *Collector) RecordStep(status string, duration time.Duration) {
	c.stepsTotal.WithLabelValues(status).Inc()
	c.stepDuration.Observe(duration.Seconds())
}

// RecordTrace records one finished trace.
func (c *Collector) RecordTrace(status string, duration time.Duration) {
	c.tracesTotal.WithLabelValues(status).Inc()
	c.traceDuration.Observe(duration.Seconds())
}

// RecordLayout records one layout run.
func (c *Collector) RecordLayout(algorithm string) {
	c.layoutRuns.WithLabelValues(algorithm).Inc()
}
