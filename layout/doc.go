/*
Package layout computes deterministic 2D placements for workflow graphs.

# Overview

The engine is a pure function over the graph model: Apply takes nodes, edges,
an algorithm selector, and options, and returns position-bearing copies of
the nodes plus a bounding box. Input nodes are never mutated, and no state is
shared across calls.

# Algorithms

  - AlgorithmHierarchical — BFS level assignment from a root, siblings
    centered within each level (default)
  - AlgorithmForce        — position-relaxation force simulation
  - AlgorithmCircular     — even angular placement on a fixed circle
  - AlgorithmTree         — recursive subtree-proportional placement
  - AlgorithmGrid         — row-major grid, edges ignored

Malformed input never produces an error: an empty node set yields a minimal
bounding box, and an unresolvable root degrades to a deterministic row-major
fallback. OptimizeForPerformance classifies rendering complexity and returns
advisory recommendations only; it has no effect on layout output.
*/
package layout
