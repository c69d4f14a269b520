package model

import "fmt"

// ValidationError reports a structural problem in a flow document.
type ValidationError struct {
	// Workflow is the workflow name, when the problem is scoped to one.
	Workflow string
	// Field names the offending field or reference.
	Field string
	// Message describes the problem.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Workflow != "" {
		return fmt.Sprintf("workflow %q: %s: %s", e.Workflow, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the workflow's structural invariants against a step
// catalog: every edge source must reference a catalog step or terminal id,
// and alternative targets must resolve the same way.
func (w WorkflowDefinition) Validate(name string, steps map[string]StepDefinition) error {
	if w.Root == "" {
		return &ValidationError{Workflow: name, Field: "root", Message: "missing entry step"}
	}
	resolves := func(id string) bool {
		if IsTerminal(id) {
			return true
		}
		_, ok := steps[id]
		return ok
	}
	if !resolves(w.Root) {
		return &ValidationError{Workflow: name, Field: "root", Message: fmt.Sprintf("references unknown step %q", w.Root)}
	}
	for i, edge := range w.Edges {
		field := fmt.Sprintf("edges[%d]", i)
		if !resolves(edge.From) {
			return &ValidationError{Workflow: name, Field: field + ".from", Message: fmt.Sprintf("references unknown step %q", edge.From)}
		}
		if edge.OnFailure != nil && edge.OnFailure.Strategy == FailureAlternative {
			target := edge.OnFailure.AlternativeTarget
			if target == "" || !resolves(target) {
				return &ValidationError{Workflow: name, Field: field + ".onFailure.alternativeTarget", Message: fmt.Sprintf("references unknown step %q", target)}
			}
		}
	}
	return nil
}

// Validate checks every workflow in the config against the shared step
// catalog, plus per-step retry bounds.
func (c *FlowConfig) Validate() error {
	for id, step := range c.Steps {
		if step.Retry == nil {
			continue
		}
		if step.Retry.MaxAttempts < 1 {
			return &ValidationError{Field: fmt.Sprintf("steps[%s].retry.maxAttempts", id), Message: "must be at least 1"}
		}
		if step.Retry.DelayMs < 0 {
			return &ValidationError{Field: fmt.Sprintf("steps[%s].retry.delay", id), Message: "must not be negative"}
		}
	}
	for name, wf := range c.Requests {
		if err := wf.Validate(name, c.Steps); err != nil {
			return err
		}
	}
	return nil
}
