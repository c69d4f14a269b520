package model

// Default node footprint assumed when a node carries no measured size.
const (
	DefaultNodeWidth  = 200.0
	DefaultNodeHeight = 100.0
)

// Position is a 2D node placement on the canvas.
type Position struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Size is a measured node footprint.
type Size struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// NodeData carries canvas-facing node annotations.
type NodeData struct {
	// IsRoot flags the node as the preferred layout root.
	IsRoot bool `json:"is_root,omitempty" yaml:"isRoot,omitempty"`
	// Label is the display label.
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

// Node is a canvas-facing graph node shared by both engines.
type Node struct {
	// ID is the unique node identifier.
	ID string `json:"id" yaml:"id"`
	// Type identifies the node kind (step, guard, terminal, ...).
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
	// Data carries canvas annotations.
	Data NodeData `json:"data,omitempty" yaml:"data,omitempty"`
	// Position is the 2D placement, if one has been computed.
	Position *Position `json:"position,omitempty" yaml:"position,omitempty"`
	// Size is the measured footprint; nil means the default footprint.
	Size *Size `json:"size,omitempty" yaml:"size,omitempty"`
}

// Footprint returns the node's measured size, or the default footprint.
func (n Node) Footprint() Size {
	if n.Size != nil {
		return *n.Size
	}
	return Size{Width: DefaultNodeWidth, Height: DefaultNodeHeight}
}

// Edge is a canvas-facing connection between two nodes.
type Edge struct {
	// ID is the unique edge identifier.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`
	// Source is the source node id.
	Source string `json:"source" yaml:"source"`
	// Target is the target node id.
	Target string `json:"target" yaml:"target"`
	// Label is the display label.
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
	// Condition is an optional expression labeling this edge.
	Condition string `json:"condition,omitempty" yaml:"condition,omitempty"`
}

// Bounds is the bounding box of a set of positioned nodes.
type Bounds struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
	MinX   float64 `json:"min_x" yaml:"minX"`
	MinY   float64 `json:"min_y" yaml:"minY"`
	MaxX   float64 `json:"max_x" yaml:"maxX"`
	MaxY   float64 `json:"max_y" yaml:"maxY"`
}
