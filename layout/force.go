package layout

import (
	"math"
	"math/rand"

	"github.com/stepflow-io/stepflow/model"
)

// Force simulation constants. Forces are recomputed from scratch every
// iteration and applied directly to position (position relaxation, not true
// velocity integration).
const (
	forceIterations        = 100
	forceRepulsionStrength = 5000.0
	forceAttractionFactor  = 0.1
	forceDamping           = 0.85
	forceInitWidth         = 800.0
	forceInitHeight        = 600.0
)

// forceLayout runs a fixed-iteration force simulation: O(n²) pairwise
// Coulomb-like repulsion plus Hooke's-law attraction along edges. Nodes
// without an existing position start at a uniformly random point, so output
// is only order-stable when every input node is pre-seeded.
func forceLayout(nodes []model.Node, edges []model.Edge, opts Options) {
	n := len(nodes)
	if n == 0 {
		return
	}

	xs := make([]float64, n)
	ys := make([]float64, n)
	index := make(map[string]int, n)
	for i, node := range nodes {
		index[node.ID] = i
		if node.Position != nil {
			xs[i], ys[i] = node.Position.X, node.Position.Y
		} else {
			xs[i] = opts.Padding.X + rand.Float64()*forceInitWidth
			ys[i] = opts.Padding.Y + rand.Float64()*forceInitHeight
		}
	}

	fx := make([]float64, n)
	fy := make([]float64, n)

	for iter := 0; iter < forceIterations; iter++ {
		for i := range fx {
			fx[i], fy[i] = 0, 0
		}

		// Pairwise repulsion between all node centers.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				dx := xs[i] - xs[j]
				dy := ys[i] - ys[j]
				dist := math.Hypot(dx, dy)
				if dist == 0 {
					dist = 1
				}
				f := forceRepulsionStrength / (dist * dist)
				ux, uy := dx/dist, dy/dist
				fx[i] += ux * f
				fy[i] += uy * f
				fx[j] -= ux * f
				fy[j] -= uy * f
			}
		}

		// Spring attraction along edges toward the rest length spacing.x.
		for _, e := range edges {
			i, okI := index[e.Source]
			j, okJ := index[e.Target]
			if !okI || !okJ {
				continue
			}
			dx := xs[j] - xs[i]
			dy := ys[j] - ys[i]
			dist := math.Hypot(dx, dy)
			if dist == 0 {
				dist = 1
			}
			f := forceAttractionFactor * (dist - opts.Spacing.X)
			ux, uy := dx/dist, dy/dist
			fx[i] += ux * f
			fy[i] += uy * f
			fx[j] -= ux * f
			fy[j] -= uy * f
		}

		for i := 0; i < n; i++ {
			xs[i] += fx[i] * forceDamping
			ys[i] += fy[i] * forceDamping
		}
	}

	for i := range nodes {
		setPosition(&nodes[i], xs[i], ys[i])
	}
}
