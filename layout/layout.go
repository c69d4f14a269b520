package layout

import (
	"math"

	"github.com/stepflow-io/stepflow/model"
)

// Algorithm selects a layout strategy.
type Algorithm string

const (
	// AlgorithmHierarchical assigns BFS levels from a root node.
	AlgorithmHierarchical Algorithm = "hierarchical"
	// AlgorithmForce runs a force-directed position relaxation.
	AlgorithmForce Algorithm = "force"
	// AlgorithmCircular places nodes evenly on a circle.
	AlgorithmCircular Algorithm = "circular"
	// AlgorithmTree places nodes as a rooted tree.
	AlgorithmTree Algorithm = "tree"
	// AlgorithmGrid places nodes row-major on a grid, ignoring edges.
	AlgorithmGrid Algorithm = "grid"
)

// Direction controls the growth axis of the hierarchical layout.
type Direction string

const (
	// DirectionTB grows levels top to bottom.
	DirectionTB Direction = "TB"
	// DirectionLR grows levels left to right.
	DirectionLR Direction = "LR"
)

// Vector is a 2D spacing or padding pair.
type Vector struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Options tunes a layout run. Zero-valued fields fall back to the defaults.
type Options struct {
	// Spacing separates siblings (X) and levels (Y) in TB direction.
	Spacing Vector `json:"spacing" yaml:"spacing"`
	// Padding offsets the whole layout from the canvas origin.
	Padding Vector `json:"padding" yaml:"padding"`
	// Direction is the hierarchical growth axis (TB or LR).
	Direction Direction `json:"direction,omitempty" yaml:"direction,omitempty"`
}

// Default option values, merged per field over caller-supplied options.
const (
	DefaultSpacingX = 280.0
	DefaultSpacingY = 150.0
	DefaultPaddingX = 50.0
	DefaultPaddingY = 50.0
)

// withDefaults fills omitted option fields.
func (o Options) withDefaults() Options {
	if o.Spacing.X == 0 {
		o.Spacing.X = DefaultSpacingX
	}
	if o.Spacing.Y == 0 {
		o.Spacing.Y = DefaultSpacingY
	}
	if o.Padding.X == 0 {
		o.Padding.X = DefaultPaddingX
	}
	if o.Padding.Y == 0 {
		o.Padding.Y = DefaultPaddingY
	}
	if o.Direction != DirectionLR {
		o.Direction = DirectionTB
	}
	return o
}

// Result is the output of a layout run: position-bearing node copies plus
// the bounding box over their footprints.
type Result struct {
	Nodes  []model.Node `json:"nodes"`
	Bounds model.Bounds `json:"bounds"`
}

// Apply positions the given nodes under the selected algorithm. Input nodes
// are treated as immutable; the result carries copies with new positions.
// An unknown algorithm falls back to hierarchical, malformed input falls
// back to a deterministic row-major placement. Apply never returns an error.
func Apply(nodes []model.Node, edges []model.Edge, algorithm Algorithm, opts Options) Result {
	opts = opts.withDefaults()

	out := make([]model.Node, len(nodes))
	copy(out, nodes)

	switch algorithm {
	case AlgorithmForce:
		forceLayout(out, edges, opts)
	case AlgorithmCircular:
		circularLayout(out, opts)
	case AlgorithmTree:
		treeLayout(out, edges, opts)
	case AlgorithmGrid:
		gridLayout(out, opts)
	default:
		hierarchicalLayout(out, edges, opts)
	}

	return Result{Nodes: out, Bounds: boundsOf(out)}
}

// fallbackLayout is the deterministic row-major placement used when an
// algorithm cannot make sense of its input. Shared with the grid algorithm.
func fallbackLayout(nodes []model.Node, opts Options) {
	gridLayout(nodes, opts)
}

// setPosition stores a fresh position on the node copy.
func setPosition(n *model.Node, x, y float64) {
	n.Position = &model.Position{X: x, Y: y}
}

// boundsOf computes the bounding box over node footprints. Nodes without a
// position (which Apply never produces) are skipped. An empty node set
// yields a minimal 100x100 box.
func boundsOf(nodes []model.Node) model.Bounds {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	positioned := 0
	for _, n := range nodes {
		if n.Position == nil {
			continue
		}
		positioned++
		size := n.Footprint()
		minX = math.Min(minX, n.Position.X)
		minY = math.Min(minY, n.Position.Y)
		maxX = math.Max(maxX, n.Position.X+size.Width)
		maxY = math.Max(maxY, n.Position.Y+size.Height)
	}
	if positioned == 0 {
		return model.Bounds{Width: 100, Height: 100, MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}
	}
	return model.Bounds{
		Width:  maxX - minX,
		Height: maxY - minY,
		MinX:   minX,
		MinY:   minY,
		MaxX:   maxX,
		MaxY:   maxY,
	}
}

// pickRoot returns the first node flagged as root, else the first node.
func pickRoot(nodes []model.Node) (model.Node, bool) {
	if len(nodes) == 0 {
		return model.Node{}, false
	}
	for _, n := range nodes {
		if n.Data.IsRoot {
			return n, true
		}
	}
	return nodes[0], true
}

// adjacency builds a source→targets list preserving edge input order.
func adjacency(edges []model.Edge) map[string][]string {
	adj := make(map[string][]string, len(edges))
	for _, e := range edges {
		adj[e.Source] = append(adj[e.Source], e.Target)
	}
	return adj
}
