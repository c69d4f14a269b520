package model

// Terminal identifiers are reserved step ids that mark plan termination
// rather than a real executable step.
const (
	// TerminalSuccess marks a successful workflow outcome.
	TerminalSuccess = "SUCCESS"
	// TerminalFailure marks a failed workflow outcome.
	TerminalFailure = "FAILURE"
	// TerminalFailed is a legacy alias for TerminalFailure that still occurs
	// in older flow documents. Treated as terminal everywhere.
	TerminalFailed = "FAILED"
)

// IsTerminal reports whether id is one of the reserved terminal identifiers.
func IsTerminal(id string) bool {
	return id == TerminalSuccess || id == TerminalFailure || id == TerminalFailed
}

// EdgeKind distinguishes normal transitions from terminal outcomes.
type EdgeKind string

const (
	// EdgeKindNormal is a transition between two catalog steps.
	EdgeKindNormal EdgeKind = "normal"
	// EdgeKindTerminal is a transition into a terminal identifier.
	EdgeKindTerminal EdgeKind = "terminal"
)

// FailureStrategy selects how an edge reacts when its source step fails.
type FailureStrategy string

const (
	// FailureNone takes no failure-handling action.
	FailureNone FailureStrategy = "NONE"
	// FailureRetry re-attempts the source step.
	FailureRetry FailureStrategy = "RETRY"
	// FailureAlternative routes to an alternative target step.
	FailureAlternative FailureStrategy = "ALTERNATIVE"
)

// RetryPolicy configures per-step retry behavior.
type RetryPolicy struct {
	// MaxAttempts is the maximum number of attempts, at least 1.
	MaxAttempts int `json:"max_attempts" yaml:"maxAttempts"`
	// DelayMs is the delay between attempts in milliseconds.
	DelayMs int `json:"delay_ms" yaml:"delay"`
	// Guard optionally names a guard that gates whether to retry.
	Guard string `json:"guard,omitempty" yaml:"guard,omitempty"`
}

// StepDefinition is a step catalog entry.
type StepDefinition struct {
	// Type identifies the step implementation.
	Type string `json:"type" yaml:"type"`
	// Config holds arbitrary step configuration (scalars, lists, nested maps).
	Config map[string]any `json:"config,omitempty" yaml:"config,omitempty"`
	// Guards lists guard names in evaluation order.
	Guards []string `json:"guards,omitempty" yaml:"guards,omitempty"`
	// Retry optionally configures retry behavior for this step.
	Retry *RetryPolicy `json:"retry,omitempty" yaml:"retry,omitempty"`
}

// FailurePolicy is the per-edge failure-handling policy.
type FailurePolicy struct {
	// Strategy selects the failure-handling behavior.
	Strategy FailureStrategy `json:"strategy" yaml:"strategy"`
	// RetryAttempts is the retry count when Strategy is RETRY.
	RetryAttempts int `json:"retry_attempts,omitempty" yaml:"retryAttempts,omitempty"`
	// RetryDelayMs is the retry delay in milliseconds when Strategy is RETRY.
	RetryDelayMs int `json:"retry_delay_ms,omitempty" yaml:"retryDelay,omitempty"`
	// AlternativeTarget is the step id to route to when Strategy is ALTERNATIVE.
	AlternativeTarget string `json:"alternative_target,omitempty" yaml:"alternativeTarget,omitempty"`
}

// EdgeDefinition is a directed transition in a workflow.
type EdgeDefinition struct {
	// From is the source step id, or a terminal identifier.
	From string `json:"from" yaml:"from"`
	// To is the target step id, or a terminal identifier.
	To string `json:"to" yaml:"to"`
	// Guard optionally names a guard labeling/gating this edge.
	Guard string `json:"guard,omitempty" yaml:"guard,omitempty"`
	// Condition is an optional expression string labeling this edge.
	Condition string `json:"condition,omitempty" yaml:"condition,omitempty"`
	// Kind distinguishes normal transitions from terminal outcomes.
	Kind EdgeKind `json:"kind,omitempty" yaml:"kind,omitempty"`
	// OnFailure optionally configures failure handling for this edge.
	OnFailure *FailurePolicy `json:"on_failure,omitempty" yaml:"onFailure,omitempty"`
}

// WorkflowDefinition is one named workflow: an entry point plus an ordered
// edge list. Edge order matters — it is the priority order for edge
// selection during plan building.
type WorkflowDefinition struct {
	// Root is the entry step id.
	Root string `json:"root" yaml:"root"`
	// Edges is the priority-ordered transition list.
	Edges []EdgeDefinition `json:"edges" yaml:"edges"`
}

// FlowConfig bundles named workflows with their shared step catalog.
type FlowConfig struct {
	// Requests maps workflow names to their definitions.
	Requests map[string]WorkflowDefinition `json:"requests" yaml:"requests"`
	// Steps is the step catalog keyed by step id.
	Steps map[string]StepDefinition `json:"steps" yaml:"steps"`
}

// Workflow returns the named workflow definition.
func (c *FlowConfig) Workflow(name string) (WorkflowDefinition, bool) {
	wf, ok := c.Requests[name]
	return wf, ok
}

// Step returns the catalog entry for a step id.
func (c *FlowConfig) Step(id string) (StepDefinition, bool) {
	step, ok := c.Steps[id]
	return step, ok
}
