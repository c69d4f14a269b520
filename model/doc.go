/*
Package model defines the shared workflow graph model consumed by both the
layout engine and the execution simulator.

# Core types

  - StepDefinition / RetryPolicy — the step catalog entry
  - EdgeDefinition / FailurePolicy — transitions, terminal outcomes, and
    failure-handling policy
  - WorkflowDefinition — entry point plus a priority-ordered edge list
  - FlowConfig — named workflows plus the step catalog
  - Node / Edge / Position / Size / Bounds — canvas-facing graph shapes

The package carries shape and invariants only; all behavior lives in the
layout and sim packages. Workflow graphs may legally contain cycles
(introduced via ALTERNATIVE failure edges), so every traversal over this
model must be visited-set guarded.
*/
package model
