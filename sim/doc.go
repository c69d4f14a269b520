/*
Package sim simulates workflow execution over the graph model.

# Overview

The Simulator walks a workflow definition to produce a time-stamped,
replayable execution trace. It performs no real step execution — each step's
outcome is driven by configuration (mock behaviors, breakpoints, delays), so
traces are reproducible visualization material, not business results.

A run proceeds in two phases: StartSimulation first builds an execution plan
(the ordered list of steps derived from the workflow root and edge priority
order, bounded at 100 entries), then drives it step by step, emitting
stepStart / stepComplete / stepFailed / breakpoint events and mutating the
trace in place.

# Control model

The simulator holds many traces concurrently, keyed by trace id, but only
one trace is actively advanced at a time. Pause, resume, and stop are
cooperative: they are checked between steps, never preemptively, so an
in-flight step's simulated work delay always runs to completion first.
Resume is best-effort — it marks the trace running again and logs; it does
not re-enter plan execution.

Guard references, per-step retry policies, and per-edge failure strategies
are part of the data model but are not consulted during plan building or
execution: the plan always follows the first matching edge and records
failure as a terminal step status.
*/
package sim
