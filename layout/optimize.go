package layout

import "github.com/stepflow-io/stepflow/model"

// Complexity classifies a graph's rendering cost.
type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// Advisory thresholds for OptimizeForPerformance.
const (
	virtualizeNodeThreshold = 100
	clusteringNodeThreshold = 50
	forceEdgeRatioThreshold = 3.0
	guardNodeRatioThreshold = 1.0 / 3.0
)

// Recommendation is the advisory output of OptimizeForPerformance. It never
// affects layout output; callers decide what to do with it.
type Recommendation struct {
	// Complexity is the overall rendering-cost classification.
	Complexity Complexity `json:"complexity"`
	// NodeCount and EdgeCount echo the graph size.
	NodeCount int `json:"node_count"`
	EdgeCount int `json:"edge_count"`
	// EdgeToNodeRatio is edges per node (0 for an empty graph).
	EdgeToNodeRatio float64 `json:"edge_to_node_ratio"`
	// VirtualizeCanvas recommends canvas virtualization above 100 nodes.
	VirtualizeCanvas bool `json:"virtualize_canvas"`
	// SuggestClustering recommends clustering above 50 nodes.
	SuggestClustering bool `json:"suggest_clustering"`
	// PreferForceDirected recommends force-directed over hierarchical when
	// the edge-to-node ratio exceeds 3.
	PreferForceDirected bool `json:"prefer_force_directed"`
	// ReduceGuardNodes flags graphs where guard nodes crowd the canvas.
	ReduceGuardNodes bool `json:"reduce_guard_nodes"`
}

// OptimizeForPerformance classifies a graph's rendering complexity and
// returns boolean recommendations for the rendering layer.
func OptimizeForPerformance(nodes []model.Node, edges []model.Edge) Recommendation {
	rec := Recommendation{
		Complexity: ComplexityLow,
		NodeCount:  len(nodes),
		EdgeCount:  len(edges),
	}
	if len(nodes) > 0 {
		rec.EdgeToNodeRatio = float64(len(edges)) / float64(len(nodes))
	}

	switch {
	case len(nodes) > virtualizeNodeThreshold || rec.EdgeToNodeRatio > 2*forceEdgeRatioThreshold:
		rec.Complexity = ComplexityHigh
	case len(nodes) > clusteringNodeThreshold || rec.EdgeToNodeRatio > forceEdgeRatioThreshold:
		rec.Complexity = ComplexityMedium
	}

	rec.VirtualizeCanvas = len(nodes) > virtualizeNodeThreshold
	rec.SuggestClustering = len(nodes) > clusteringNodeThreshold
	rec.PreferForceDirected = rec.EdgeToNodeRatio > forceEdgeRatioThreshold

	guards := 0
	for _, n := range nodes {
		if n.Type == "guard" {
			guards++
		}
	}
	rec.ReduceGuardNodes = len(nodes) > 0 && float64(guards)/float64(len(nodes)) > guardNodeRatioThreshold

	return rec
}
