// Package stepflow provides a top-level convenience entry point for the
// workflow layout engine and execution simulator with minimal boilerplate.
//
// Usage:
//
//	import "github.com/stepflow-io/stepflow"
//
//	e := stepflow.New(stepflow.WithLogger(logger))
//	result := e.Layout(nodes, edges, layout.AlgorithmHierarchical, layout.Options{})
//	traceID := e.Simulator.CreateTrace("checkout", nodes, edges)
//
// This is a thin wrapper over the layout and sim packages; both can also be
// used directly. The wrapper adds Prometheus metrics wiring, keeping the
// layout package itself pure.
package stepflow

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/stepflow-io/stepflow/internal/metrics"
	"github.com/stepflow-io/stepflow/layout"
	"github.com/stepflow-io/stepflow/model"
	"github.com/stepflow-io/stepflow/sim"
)

// Engine bundles a simulator with shared observability wiring.
type Engine struct {
	// Simulator drives simulated workflow runs.
	Simulator *sim.Simulator

	collector *metrics.Collector
	logger    *zap.Logger
}

// Option configures the engine created by New.
type Option func(*engineConfig)

type engineConfig struct {
	logger   *zap.Logger
	registry prometheus.Registerer
	metrics  bool
}

// WithLogger sets a custom zap logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *engineConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetrics enables Prometheus metrics on the given registerer. A nil
// registerer uses the default registry.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *engineConfig) {
		c.metrics = true
		c.registry = reg
	}
}

// New creates an engine with a ready-to-use simulator.
func New(opts ...Option) *Engine {
	cfg := &engineConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(cfg)
	}

	e := &Engine{logger: cfg.logger}

	simOpts := []sim.SimulatorOption{sim.WithLogger(cfg.logger)}
	if cfg.metrics {
		e.collector = metrics.NewCollector("stepflow", cfg.registry, cfg.logger)
		simOpts = append(simOpts, sim.WithMetrics(e.collector))
	}
	e.Simulator = sim.NewSimulator(simOpts...)
	return e
}

// Layout positions the nodes under the selected algorithm and records the
// run when metrics are enabled. The layout computation itself is pure.
func (e *Engine) Layout(nodes []model.Node, edges []model.Edge, algorithm layout.Algorithm, opts layout.Options) layout.Result {
	if e.collector != nil {
		e.collector.RecordLayout(string(algorithm))
	}
	return layout.Apply(nodes, edges, algorithm, opts)
}

// Optimize classifies the graph's rendering complexity. Advisory only.
func (e *Engine) Optimize(nodes []model.Node, edges []model.Edge) layout.Recommendation {
	return layout.OptimizeForPerformance(nodes, edges)
}
