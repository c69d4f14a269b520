package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTree_ChildrenCenteredBeneathParent(t *testing.T) {
	t.Parallel()
	nodes := makeNodes("root", "l", "r")
	edges := makeEdges([2]string{"root", "l"}, [2]string{"root", "r"})
	opts := Options{Spacing: Vector{X: 100, Y: 100}, Padding: Vector{X: 0, Y: 0}}
	result := Apply(nodes, edges, AlgorithmTree, opts)

	// Subtree size 3 -> total width 300; root centered over the whole span,
	// each child centered over its proportional half.
	root := positionOf(t, result, "root")
	l := positionOf(t, result, "l")
	r := positionOf(t, result, "r")
	assert.Equal(t, 150.0, root.X)
	assert.Equal(t, 0.0, root.Y)
	assert.Equal(t, 75.0, l.X)
	assert.Equal(t, 100.0, l.Y)
	assert.Equal(t, 225.0, r.X)
	assert.Equal(t, 100.0, r.Y)
	assert.Equal(t, (l.X+r.X)/2, root.X)
}

func TestTree_WidthProportionalToSubtreeSize(t *testing.T) {
	t.Parallel()
	// "big" carries two grandchildren, "small" none: big gets 3/4 of the span.
	nodes := makeNodes("root", "big", "small", "g1", "g2")
	edges := makeEdges(
		[2]string{"root", "big"},
		[2]string{"root", "small"},
		[2]string{"big", "g1"},
		[2]string{"big", "g2"},
	)
	opts := Options{Spacing: Vector{X: 100, Y: 100}, Padding: Vector{X: 0, Y: 0}}
	result := Apply(nodes, edges, AlgorithmTree, opts)

	big := positionOf(t, result, "big")
	small := positionOf(t, result, "small")
	// Total width 500; big spans [0,375] centered 187.5, small [375,500].
	assert.Equal(t, 187.5, big.X)
	assert.Equal(t, 437.5, small.X)
}

func TestTree_MultiParentLastWriterWins(t *testing.T) {
	t.Parallel()
	// Both a and b point at c; the later edge (b -> c) wins.
	nodes := makeNodes("root", "a", "b", "c")
	edges := makeEdges(
		[2]string{"root", "a"},
		[2]string{"root", "b"},
		[2]string{"a", "c"},
		[2]string{"b", "c"},
	)
	opts := Options{Spacing: Vector{X: 100, Y: 100}, Padding: Vector{X: 0, Y: 0}}
	result := Apply(nodes, edges, AlgorithmTree, opts)

	b := positionOf(t, result, "b")
	c := positionOf(t, result, "c")
	// c hangs beneath b, centered on b's span.
	assert.InDelta(t, b.X, c.X, 1e-9)
	assert.Equal(t, b.Y+100, c.Y)
}

func TestTree_CycleDoesNotRecurseForever(t *testing.T) {
	t.Parallel()
	nodes := makeNodes("a", "b")
	edges := makeEdges([2]string{"a", "b"}, [2]string{"b", "a"})
	result := Apply(nodes, edges, AlgorithmTree, Options{})

	for _, n := range result.Nodes {
		assert.NotNil(t, n.Position, "node %s unpositioned", n.ID)
	}
}

func TestTree_NodesOutsideTreeGetDeterministicSpots(t *testing.T) {
	t.Parallel()
	nodes := makeNodes("root", "child", "island")
	edges := makeEdges([2]string{"root", "child"})
	opts := Options{Spacing: Vector{X: 100, Y: 100}, Padding: Vector{X: 0, Y: 0}}

	first := Apply(nodes, edges, AlgorithmTree, opts)
	second := Apply(nodes, edges, AlgorithmTree, opts)
	assert.Equal(t, first, second)

	island := positionOf(t, first, "island")
	child := positionOf(t, first, "child")
	assert.Greater(t, island.Y, child.Y)
}
