package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stepflow-io/stepflow/model"
)

func TestHierarchical_LevelsFollowBFSDistance(t *testing.T) {
	t.Parallel()
	// a -> b -> d, a -> c; diamond join c -> d must not re-level d.
	nodes := makeNodes("a", "b", "c", "d")
	edges := makeEdges(
		[2]string{"a", "b"},
		[2]string{"a", "c"},
		[2]string{"b", "d"},
		[2]string{"c", "d"},
	)
	opts := Options{Spacing: Vector{X: 100, Y: 100}, Padding: Vector{X: 50, Y: 50}}
	result := Apply(nodes, edges, AlgorithmHierarchical, opts)

	assert.Equal(t, 50.0, positionOf(t, result, "a").Y)
	assert.Equal(t, 150.0, positionOf(t, result, "b").Y)
	assert.Equal(t, 150.0, positionOf(t, result, "c").Y)
	assert.Equal(t, 250.0, positionOf(t, result, "d").Y)
}

func TestHierarchical_CycleLeveledOnce(t *testing.T) {
	t.Parallel()
	nodes := makeNodes("a", "b")
	edges := makeEdges([2]string{"a", "b"}, [2]string{"b", "a"})
	result := Apply(nodes, edges, AlgorithmHierarchical, Options{Spacing: Vector{X: 100, Y: 100}, Padding: Vector{X: 50, Y: 50}})

	assert.Equal(t, 50.0, positionOf(t, result, "a").Y)
	assert.Equal(t, 150.0, positionOf(t, result, "b").Y)
}

func TestHierarchical_RootFlagWins(t *testing.T) {
	t.Parallel()
	nodes := []model.Node{
		{ID: "a"},
		{ID: "b", Data: model.NodeData{IsRoot: true}},
	}
	edges := makeEdges([2]string{"b", "a"})
	result := Apply(nodes, edges, AlgorithmHierarchical, Options{Spacing: Vector{X: 100, Y: 100}, Padding: Vector{X: 50, Y: 50}})

	assert.Equal(t, 50.0, positionOf(t, result, "b").Y)
	assert.Equal(t, 150.0, positionOf(t, result, "a").Y)
}

func TestHierarchical_UnreachableNodesDefensivelyLevelZero(t *testing.T) {
	t.Parallel()
	nodes := makeNodes("a", "b", "island")
	edges := makeEdges([2]string{"a", "b"})
	result := Apply(nodes, edges, AlgorithmHierarchical, Options{Spacing: Vector{X: 100, Y: 100}, Padding: Vector{X: 50, Y: 50}})

	// The island still appears in output, at level 0 alongside the root.
	assert.Equal(t, 50.0, positionOf(t, result, "island").Y)
}

func TestHierarchical_SiblingsSeparatedAndCentered(t *testing.T) {
	t.Parallel()
	nodes := makeNodes("root", "l", "m", "r")
	edges := makeEdges(
		[2]string{"root", "l"},
		[2]string{"root", "m"},
		[2]string{"root", "r"},
	)
	opts := Options{Spacing: Vector{X: 100, Y: 100}, Padding: Vector{X: 50, Y: 50}}
	result := Apply(nodes, edges, AlgorithmHierarchical, opts)

	l := positionOf(t, result, "l")
	m := positionOf(t, result, "m")
	r := positionOf(t, result, "r")
	assert.Equal(t, -50.0, l.X)
	assert.Equal(t, 50.0, m.X)
	assert.Equal(t, 150.0, r.X)
	// The lone root is centered on the padding origin.
	assert.Equal(t, 50.0, positionOf(t, result, "root").X)
}

func TestHierarchical_DirectionLR(t *testing.T) {
	t.Parallel()
	nodes := makeNodes("a", "b", "c")
	edges := makeEdges([2]string{"a", "b"}, [2]string{"b", "c"})
	opts := Options{Spacing: Vector{X: 100, Y: 80}, Padding: Vector{X: 50, Y: 50}, Direction: DirectionLR}
	result := Apply(nodes, edges, AlgorithmHierarchical, opts)

	// LR grows x with level; singleton levels are centered on padding.y.
	assert.Equal(t, model.Position{X: 50, Y: 50}, positionOf(t, result, "a"))
	assert.Equal(t, model.Position{X: 150, Y: 50}, positionOf(t, result, "b"))
	assert.Equal(t, model.Position{X: 250, Y: 50}, positionOf(t, result, "c"))
}
