package sim

import "time"

// StepStatus is the lifecycle status of a single simulated step.
type StepStatus string

const (
	// StepPending indicates the step has been planned but not started.
	StepPending StepStatus = "pending"
	// StepRunning indicates the step is currently executing.
	StepRunning StepStatus = "running"
	// StepSuccess indicates the step completed successfully.
	StepSuccess StepStatus = "success"
	// StepFailed indicates the step failed.
	StepFailed StepStatus = "failed"
	// StepSkipped indicates the step was never attempted.
	StepSkipped StepStatus = "skipped"
)

// TraceStatus is the overall status of a simulated run.
type TraceStatus string

const (
	// TraceRunning indicates the run is in progress.
	TraceRunning TraceStatus = "running"
	// TraceSuccess indicates the run completed with every step succeeding.
	TraceSuccess TraceStatus = "success"
	// TraceFailed indicates the run completed with at least one failed step,
	// or was stopped/aborted.
	TraceFailed TraceStatus = "failed"
	// TracePaused indicates the run is suspended and resumable.
	TracePaused TraceStatus = "paused"
)

// ExecutionStep records one planned step's simulated execution. Created with
// status pending when the plan is built and mutated in place as the
// simulator advances.
type ExecutionStep struct {
	// NodeID is the step id in the workflow graph.
	NodeID string `json:"node_id"`
	// StepType is the catalog-declared implementation identifier.
	StepType string `json:"step_type"`
	// Timestamp is when the step entered the plan.
	Timestamp time.Time `json:"timestamp"`
	// Status is the current lifecycle status.
	Status StepStatus `json:"status"`
	// Duration is the recorded execution time; zero means not recorded.
	Duration time.Duration `json:"duration,omitempty"`
	// Input is the simulated step input, if any.
	Input any `json:"input,omitempty"`
	// Output is the simulated step output, if any.
	Output any `json:"output,omitempty"`
	// Error describes the simulated failure, if any.
	Error string `json:"error,omitempty"`
	// RetryAttempt counts retries; always zero under the current executor.
	RetryAttempt int `json:"retry_attempt,omitempty"`
}

// ExecutionTrace is the mutable record of one simulated run. The simulator
// may hold many traces, each independently controllable.
type ExecutionTrace struct {
	// ID is the unique trace identifier.
	ID string `json:"id"`
	// WorkflowName names the simulated workflow.
	WorkflowName string `json:"workflow_name"`
	// StartTime is when the trace was created.
	StartTime time.Time `json:"start_time"`
	// EndTime is when the run reached a terminal status; nil while running
	// or paused.
	EndTime *time.Time `json:"end_time,omitempty"`
	// Status is the overall run status.
	Status TraceStatus `json:"status"`
	// Steps is the ordered execution plan with per-step results.
	Steps []*ExecutionStep `json:"steps"`
	// CurrentStepIndex is the index of the most recently advanced step.
	CurrentStepIndex int `json:"current_step_index"`
	// Context carries free-form run metadata.
	Context map[string]any `json:"context,omitempty"`
}

// Summary aggregates a trace's step counts and timing.
type Summary struct {
	// TraceID identifies the summarized trace.
	TraceID string `json:"trace_id"`
	// WorkflowName names the simulated workflow.
	WorkflowName string `json:"workflow_name"`
	// Status is the trace's overall status.
	Status TraceStatus `json:"status"`
	// TotalSteps is the plan length.
	TotalSteps int `json:"total_steps"`
	// StepCounts maps step status to occurrence count.
	StepCounts map[StepStatus]int `json:"step_counts"`
	// TotalDuration is wall-clock end minus start (now if still running).
	TotalDuration time.Duration `json:"total_duration"`
	// AverageStepDuration averages over steps with a recorded duration.
	AverageStepDuration time.Duration `json:"average_step_duration"`
}
