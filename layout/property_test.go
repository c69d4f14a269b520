package layout

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/stepflow-io/stepflow/model"
)

// randomGraph decodes a node count and raw edge values into a graph. Each
// raw value v encodes the pair (v/count, v%count), so arbitrary int slices
// produce arbitrary directed graphs, cycles and self-loops included.
func randomGraph(count int, raw []int) ([]model.Node, []model.Edge) {
	nodes := make([]model.Node, count)
	for i := range nodes {
		nodes[i] = model.Node{ID: fmt.Sprintf("n%d", i)}
	}
	var edges []model.Edge
	for _, v := range raw {
		src := (v / count) % count
		dst := v % count
		edges = append(edges, model.Edge{
			Source: nodes[src].ID,
			Target: nodes[dst].ID,
		})
	}
	return nodes, edges
}

// bfsLevels mirrors the leveling contract: BFS distance from the first
// node along forward edges, unreached nodes defensively at level 0.
func bfsLevels(nodes []model.Node, edges []model.Edge) map[string]int {
	levels := make(map[string]int, len(nodes))
	if len(nodes) == 0 {
		return levels
	}
	adj := make(map[string][]string)
	for _, e := range edges {
		adj[e.Source] = append(adj[e.Source], e.Target)
	}
	root := nodes[0].ID
	visited := map[string]bool{root: true}
	queue := []string{root}
	levels[root] = 0
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, next := range adj[current] {
			if visited[next] {
				continue
			}
			visited[next] = true
			levels[next] = levels[current] + 1
			queue = append(queue, next)
		}
	}
	return levels
}

func TestProperty_HierarchicalLevelEqualsBFSDistance(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	opts := Options{Spacing: Vector{X: 100, Y: 100}, Padding: Vector{X: 50, Y: 50}}

	properties.Property("node y encodes its BFS distance from the root", prop.ForAll(
		func(count int, raw []int) bool {
			nodes, edges := randomGraph(count, raw)
			result := Apply(nodes, edges, AlgorithmHierarchical, opts)
			want := bfsLevels(nodes, edges)

			for _, n := range result.Nodes {
				if n.Position == nil {
					return false
				}
				wantY := opts.Padding.Y + float64(want[n.ID])*opts.Spacing.Y
				if n.Position.Y != wantY {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 12),
		gen.SliceOf(gen.IntRange(0, 143)),
	))

	properties.Property("no two same-level nodes share an x coordinate", prop.ForAll(
		func(count int, raw []int) bool {
			nodes, edges := randomGraph(count, raw)
			result := Apply(nodes, edges, AlgorithmHierarchical, opts)

			seen := make(map[float64]map[float64]bool)
			for _, n := range result.Nodes {
				y := n.Position.Y
				if seen[y] == nil {
					seen[y] = make(map[float64]bool)
				}
				if seen[y][n.Position.X] {
					return false
				}
				seen[y][n.Position.X] = true
			}
			return true
		},
		gen.IntRange(1, 12),
		gen.SliceOf(gen.IntRange(0, 143)),
	))

	properties.Property("bounds contain every node position", prop.ForAll(
		func(count int, raw []int) bool {
			nodes, edges := randomGraph(count, raw)
			for _, algo := range []Algorithm{AlgorithmHierarchical, AlgorithmCircular, AlgorithmTree, AlgorithmGrid} {
				result := Apply(nodes, edges, algo, opts)
				b := result.Bounds
				for _, n := range result.Nodes {
					if n.Position == nil {
						return false
					}
					if n.Position.X < b.MinX || n.Position.X > b.MaxX {
						return false
					}
					if n.Position.Y < b.MinY || n.Position.Y > b.MaxY {
						return false
					}
				}
			}
			return true
		},
		gen.IntRange(1, 12),
		gen.SliceOf(gen.IntRange(0, 143)),
	))

	properties.TestingRun(t)
}
