package sim

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/stepflow-io/stepflow/model"
)

// Configuration errors surfaced by StartSimulation's synchronous validation.
// Plan and run failures beyond these are recorded as trace state and logged,
// never propagated.
var (
	// ErrTraceNotFound indicates an unknown trace id.
	ErrTraceNotFound = errors.New("trace not found")
	// ErrWorkflowNotFound indicates the flow config has no such request.
	ErrWorkflowNotFound = errors.New("workflow not found")
	// ErrStepNotFound indicates a plan node has no step catalog entry.
	ErrStepNotFound = errors.New("step definition not found")
	// ErrSimulationActive indicates another trace is currently advancing.
	ErrSimulationActive = errors.New("a simulation is already in progress")
)

// Plan and work-delay bounds.
const (
	// maxPlanSteps is the hard safety bound on plan length.
	maxPlanSteps = 100
	// minWorkDelay/maxWorkDelay bound the pseudo-random per-step work delay.
	minWorkDelay = 200 * time.Millisecond
	maxWorkDelay = 1200 * time.Millisecond
	// randomFailureRate is the failure probability of the "random" behavior.
	randomFailureRate = 0.2
)

const tracerName = "github.com/stepflow-io/stepflow/sim"

// Simulator drives simulated workflow runs. All state is per instance;
// multiple independent simulators can coexist safely. Only one trace is
// actively advanced at a time per instance.
type Simulator struct {
	mu             sync.RWMutex
	traces         map[string]*ExecutionTrace
	currentTraceID string
	isSimulating   bool
	stopRequested  bool
	pauseRequested bool

	events  *eventBus
	logger  *zap.Logger
	metrics MetricsRecorder
	rng     *rand.Rand
	sleep   SleepFunc
	tracer  oteltrace.Tracer
}

// NewSimulator creates a simulator with the given options.
func NewSimulator(opts ...SimulatorOption) *Simulator {
	s := &Simulator{
		traces: make(map[string]*ExecutionTrace),
		logger: zap.NewNop(),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		sleep:  contextSleep,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(zap.String("component", "simulator"))
	s.events = newEventBus(s.logger)
	s.tracer = otel.Tracer(tracerName)
	return s
}

// contextSleep waits for d or until the context is canceled.
func contextSleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// On registers a lifecycle event listener and returns its subscription.
func (s *Simulator) On(event EventType, fn Listener) Subscription {
	return s.events.on(event, fn)
}

// Off removes a previously registered listener.
func (s *Simulator) Off(event EventType, sub Subscription) {
	s.events.off(event, sub)
}

// CreateTrace allocates a new trace id and registers an empty running trace.
// The execution plan is built later by StartSimulation. The node and edge
// lists are recorded as context metadata for visualization.
func (s *Simulator) CreateTrace(workflowName string, nodes []model.Node, edges []model.Edge) string {
	trace := &ExecutionTrace{
		ID:           uuid.NewString(),
		WorkflowName: workflowName,
		StartTime:    time.Now(),
		Status:       TraceRunning,
		Steps:        make([]*ExecutionStep, 0),
		Context: map[string]any{
			"nodeCount": len(nodes),
			"edgeCount": len(edges),
		},
	}

	s.mu.Lock()
	s.traces[trace.ID] = trace
	s.mu.Unlock()

	s.logger.Info("trace created",
		zap.String("trace_id", trace.ID),
		zap.String("workflow", workflowName),
	)
	return trace.ID
}

// StartSimulation resolves the named workflow from the flow config, builds
// the execution plan, and drives it step by step until completion, a
// breakpoint, a stop request, or context cancellation.
//
// Synchronous validation failures (unknown trace, unknown workflow, missing
// step definition, a run already active) mark the trace failed, are logged,
// and are returned. Failures during plan execution are represented only as
// trace and step state.
func (s *Simulator) StartSimulation(ctx context.Context, traceID string, cfg *model.FlowConfig, requestName string, opts Options) error {
	s.mu.Lock()
	trace, ok := s.traces[traceID]
	if !ok {
		s.mu.Unlock()
		s.logger.Error("start rejected: unknown trace", zap.String("trace_id", traceID))
		return fmt.Errorf("%w: %s", ErrTraceNotFound, traceID)
	}
	if s.isSimulating {
		s.mu.Unlock()
		s.logger.Error("start rejected: simulation already active", zap.String("trace_id", traceID))
		return ErrSimulationActive
	}
	s.isSimulating = true
	s.currentTraceID = traceID
	s.stopRequested = false
	s.pauseRequested = false
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.isSimulating = false
		s.mu.Unlock()
	}()

	ctx, span := s.tracer.Start(ctx, "sim.run",
		oteltrace.WithAttributes(
			attribute.String("stepflow.trace_id", traceID),
			attribute.String("stepflow.request", requestName),
		))
	defer span.End()

	wf, ok := cfg.Workflow(requestName)
	if !ok {
		err := fmt.Errorf("%w: %s", ErrWorkflowNotFound, requestName)
		s.failTrace(trace, err)
		return err
	}

	plan, err := buildExecutionPlan(wf, cfg.Steps)
	if err != nil {
		s.failTrace(trace, err)
		return err
	}

	s.mu.Lock()
	trace.Steps = plan
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.RecordPlanBuilt(requestName, len(plan))
	}
	s.logger.Info("execution plan built",
		zap.String("trace_id", traceID),
		zap.String("request", requestName),
		zap.Int("steps", len(plan)),
	)

	s.runPlan(ctx, trace, opts)
	return nil
}

// buildExecutionPlan derives the ordered step list for one request: starting
// at the root, it repeatedly follows the first edge whose from matches the
// current step. It stops on a missing edge, a terminal identifier, an
// already-visited step (cycle guard), or the hard plan-length bound. A
// terminal identifier never becomes a plan entry.
func buildExecutionPlan(wf model.WorkflowDefinition, steps map[string]model.StepDefinition) ([]*ExecutionStep, error) {
	plan := make([]*ExecutionStep, 0)
	visited := make(map[string]bool)
	current := wf.Root

	for len(plan) < maxPlanSteps {
		def, ok := steps[current]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrStepNotFound, current)
		}
		plan = append(plan, &ExecutionStep{
			NodeID:    current,
			StepType:  def.Type,
			Timestamp: time.Now(),
			Status:    StepPending,
		})
		visited[current] = true

		next, found := "", false
		for _, edge := range wf.Edges {
			if edge.From == current {
				next, found = edge.To, true
				break
			}
		}
		if !found || model.IsTerminal(next) || visited[next] {
			break
		}
		current = next
	}
	return plan, nil
}

// runPlan executes the plan sequentially, checking stop and pause requests
// between steps. Step failure does not short-circuit the run; the overall
// outcome is computed only after all steps or a breakpoint.
func (s *Simulator) runPlan(ctx context.Context, trace *ExecutionTrace, opts Options) {
	for i, step := range trace.Steps {
		if ctx.Err() != nil {
			s.failTrace(trace, ctx.Err())
			return
		}

		s.mu.Lock()
		if s.stopRequested {
			// StopSimulation already marked the trace.
			s.mu.Unlock()
			return
		}
		if s.pauseRequested {
			s.pauseRequested = false
			trace.Status = TracePaused
			s.mu.Unlock()
			s.logger.Info("simulation paused",
				zap.String("trace_id", trace.ID),
				zap.Int("step_index", i),
			)
			return
		}
		step.Status = StepRunning
		trace.CurrentStepIndex = i
		s.mu.Unlock()

		s.events.emit(EventStepStart, trace, step)

		stepCtx, stepSpan := s.tracer.Start(ctx, "sim.step",
			oteltrace.WithAttributes(
				attribute.String("stepflow.node_id", step.NodeID),
				attribute.String("stepflow.step_type", step.StepType),
			))
		started := time.Now()
		output, err := s.simulateStepBehavior(stepCtx, step, opts)
		duration := time.Since(started)

		s.mu.Lock()
		step.Duration = duration
		if err != nil {
			step.Status = StepFailed
			step.Error = err.Error()
		} else {
			step.Status = StepSuccess
			step.Output = output
		}
		s.mu.Unlock()

		stepSpan.SetAttributes(attribute.String("stepflow.status", string(step.Status)))
		stepSpan.End()
		if s.metrics != nil {
			s.metrics.RecordStep(string(step.Status), duration)
		}

		if err != nil {
			s.logger.Warn("step failed",
				zap.String("trace_id", trace.ID),
				zap.String("node_id", step.NodeID),
				zap.Error(err),
			)
			s.events.emit(EventStepFailed, trace, step)
		} else {
			s.events.emit(EventStepComplete, trace, step)
		}

		if slices.Contains(opts.Breakpoints, step.NodeID) {
			s.mu.Lock()
			trace.Status = TracePaused
			s.mu.Unlock()
			s.logger.Info("breakpoint hit",
				zap.String("trace_id", trace.ID),
				zap.String("node_id", step.NodeID),
			)
			s.events.emit(EventBreakpoint, trace, step)
			return
		}

		if opts.StepDelayMs > 0 && i < len(trace.Steps)-1 {
			if err := s.sleep(ctx, time.Duration(opts.StepDelayMs)*time.Millisecond); err != nil {
				s.failTrace(trace, err)
				return
			}
		}
	}

	s.finalizeTrace(trace)
}

// simulateStepBehavior emulates one step: it sleeps a pseudo-random work
// delay, then resolves the configured mock behavior for the step.
func (s *Simulator) simulateStepBehavior(ctx context.Context, step *ExecutionStep, opts Options) (any, error) {
	delay := minWorkDelay + time.Duration(s.rng.Int63n(int64(maxWorkDelay-minWorkDelay)))
	if err := s.sleep(ctx, delay); err != nil {
		return nil, err
	}

	behavior := opts.behaviorFor(step.NodeID, step.StepType)
	switch behavior {
	case BehaviorFailure:
		return nil, fmt.Errorf("simulated failure in step %s", step.NodeID)
	case BehaviorRandom:
		if s.rng.Float64() < randomFailureRate {
			return nil, fmt.Errorf("simulated random failure in step %s", step.NodeID)
		}
	}

	return map[string]any{
		"success":   true,
		"data":      fmt.Sprintf("Mock output for %s", step.NodeID),
		"timestamp": time.Now(),
	}, nil
}

// finalizeTrace stamps the natural-completion outcome: failed if any step
// failed, success otherwise.
func (s *Simulator) finalizeTrace(trace *ExecutionTrace) {
	s.mu.Lock()
	status := TraceSuccess
	for _, step := range trace.Steps {
		if step.Status == StepFailed {
			status = TraceFailed
			break
		}
	}
	trace.Status = status
	now := time.Now()
	trace.EndTime = &now
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.RecordTrace(string(status), now.Sub(trace.StartTime))
	}
	s.logger.Info("simulation finished",
		zap.String("trace_id", trace.ID),
		zap.String("status", string(status)),
	)
}

// failTrace marks the trace failed with an end time and logs the cause. The
// error is surfaced to the caller of StartSimulation only for synchronous
// validation failures.
func (s *Simulator) failTrace(trace *ExecutionTrace, cause error) {
	s.mu.Lock()
	trace.Status = TraceFailed
	now := time.Now()
	trace.EndTime = &now
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.RecordTrace(string(TraceFailed), now.Sub(trace.StartTime))
	}
	s.logger.Error("simulation failed",
		zap.String("trace_id", trace.ID),
		zap.Error(cause),
	)
}

// PauseSimulation requests a cooperative pause of the active run. The pause
// takes effect between steps; an in-flight step's work delay runs to
// completion first.
func (s *Simulator) PauseSimulation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.isSimulating {
		return
	}
	s.pauseRequested = true
	s.logger.Info("pause requested", zap.String("trace_id", s.currentTraceID))
}

// ResumeSimulation marks a paused trace running again. Continuation is
// best-effort: the plan run loop is not re-entered; callers re-drive the
// remaining steps themselves or restart the simulation.
func (s *Simulator) ResumeSimulation(traceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	trace, ok := s.traces[traceID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrTraceNotFound, traceID)
	}
	if trace.Status != TracePaused {
		return fmt.Errorf("trace %s is not paused", traceID)
	}
	trace.Status = TraceRunning
	s.pauseRequested = false
	s.logger.Info("resume requested, continuation is best-effort",
		zap.String("trace_id", traceID),
		zap.Int("step_index", trace.CurrentStepIndex),
	)
	return nil
}

// StopSimulation halts the active run and marks its trace failed with an
// end time, regardless of prior step outcomes.
func (s *Simulator) StopSimulation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.isSimulating {
		return
	}
	s.stopRequested = true
	if trace, ok := s.traces[s.currentTraceID]; ok {
		trace.Status = TraceFailed
		now := time.Now()
		trace.EndTime = &now
	}
	s.logger.Info("stop requested", zap.String("trace_id", s.currentTraceID))
}

// GetTrace returns the trace for an id.
func (s *Simulator) GetTrace(traceID string) (*ExecutionTrace, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	trace, ok := s.traces[traceID]
	return trace, ok
}

// AllTraces returns all stored traces in unspecified order.
func (s *Simulator) AllTraces() []*ExecutionTrace {
	s.mu.RLock()
	defer s.mu.RUnlock()
	traces := make([]*ExecutionTrace, 0, len(s.traces))
	for _, trace := range s.traces {
		traces = append(traces, trace)
	}
	return traces
}

// ClearTrace removes a trace. Clearing the currently advancing trace is not
// supported; callers stop the run first.
func (s *Simulator) ClearTrace(traceID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.traces, traceID)
}

// ClearAllTraces removes every stored trace.
func (s *Simulator) ClearAllTraces() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.traces = make(map[string]*ExecutionTrace)
}

// ExecutionSummary computes step counts by status, total wall-clock
// duration, and the average duration over steps that recorded one.
func (s *Simulator) ExecutionSummary(traceID string) (Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	trace, ok := s.traces[traceID]
	if !ok {
		return Summary{}, fmt.Errorf("%w: %s", ErrTraceNotFound, traceID)
	}

	summary := Summary{
		TraceID:      trace.ID,
		WorkflowName: trace.WorkflowName,
		Status:       trace.Status,
		TotalSteps:   len(trace.Steps),
		StepCounts:   make(map[StepStatus]int),
	}

	var timed int
	var total time.Duration
	for _, step := range trace.Steps {
		summary.StepCounts[step.Status]++
		if step.Duration > 0 {
			timed++
			total += step.Duration
		}
	}
	if timed > 0 {
		summary.AverageStepDuration = total / time.Duration(timed)
	}

	if trace.EndTime != nil {
		summary.TotalDuration = trace.EndTime.Sub(trace.StartTime)
	} else {
		summary.TotalDuration = time.Since(trace.StartTime)
	}
	return summary, nil
}
