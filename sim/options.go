package sim

import (
	"context"
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// Options configures one simulated run.
type Options struct {
	// StepDelayMs is the pause between consecutive steps, in milliseconds.
	StepDelayMs int `json:"step_delay_ms" yaml:"stepDelay"`
	// EnableRetries is part of the configuration shape; the current executor
	// does not consult per-step retry policies.
	EnableRetries bool `json:"enable_retries" yaml:"enableRetries"`
	// EnableGuards is part of the configuration shape; the current executor
	// does not evaluate guards when selecting edges.
	EnableGuards bool `json:"enable_guards" yaml:"enableGuards"`
	// MockStepBehavior forces step outcomes, looked up first by node id and
	// then by step type. Values: "success", "failure", "random".
	MockStepBehavior map[string]string `json:"mock_step_behavior,omitempty" yaml:"mockStepBehavior,omitempty"`
	// MaxExecutionTimeMs is part of the configuration shape; no wall-clock
	// cutoff is enforced beyond the 100-entry plan bound.
	MaxExecutionTimeMs int `json:"max_execution_time_ms" yaml:"maxExecutionTime"`
	// Breakpoints lists node ids that pause the trace after completing.
	Breakpoints []string `json:"breakpoints,omitempty" yaml:"breakpoints,omitempty"`
}

// behaviorFor resolves the mock behavior for a step: node id first, then
// step type, defaulting to success.
func (o Options) behaviorFor(nodeID, stepType string) string {
	if b, ok := o.MockStepBehavior[nodeID]; ok {
		return b
	}
	if b, ok := o.MockStepBehavior[stepType]; ok {
		return b
	}
	return BehaviorSuccess
}

// Mock behavior values.
const (
	BehaviorSuccess = "success"
	BehaviorFailure = "failure"
	BehaviorRandom  = "random"
)

// SleepFunc waits for the given duration, returning early with the context
// error when the context is canceled.
type SleepFunc func(ctx context.Context, d time.Duration) error

// MetricsRecorder receives simulation metrics. Implemented by
// internal/metrics.Collector; nil disables recording.
type MetricsRecorder interface {
	// RecordPlanBuilt records a built plan and its length.
	RecordPlanBuilt(workflow string, steps int)
	// RecordStep records one executed step and its duration.
	RecordStep(status string, duration time.Duration)
	// RecordTrace records one finished trace and its duration.
	RecordTrace(status string, duration time.Duration)
}

// SimulatorOption configures a Simulator instance.
type SimulatorOption func(*Simulator)

// WithLogger sets the zap logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) SimulatorOption {
	return func(s *Simulator) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics attaches a metrics recorder.
func WithMetrics(recorder MetricsRecorder) SimulatorOption {
	return func(s *Simulator) {
		s.metrics = recorder
	}
}

// WithRandSource seeds the simulator's randomness (work delays and the
// "random" mock behavior) for reproducible runs.
func WithRandSource(src rand.Source) SimulatorOption {
	return func(s *Simulator) {
		s.rng = rand.New(src)
	}
}

// WithSleepFunc replaces the wait implementation. Tests use this to skip
// the simulated work delays.
func WithSleepFunc(sleep SleepFunc) SimulatorOption {
	return func(s *Simulator) {
		if sleep != nil {
			s.sleep = sleep
		}
	}
}
