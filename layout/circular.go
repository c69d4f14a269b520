package layout

import (
	"math"

	"github.com/stepflow-io/stepflow/model"
)

// Circle geometry is fixed; the radius scales with node count so large
// graphs do not overlap at the default footprint.
const (
	circularCenterX   = 400.0
	circularCenterY   = 300.0
	circularMinRadius = 200.0
	circularPerNode   = 30.0
)

// circularLayout spaces all nodes evenly by angle on a fixed-center circle,
// in input order.
func circularLayout(nodes []model.Node, opts Options) {
	n := len(nodes)
	if n == 0 {
		return
	}
	radius := math.Max(circularMinRadius, float64(n)*circularPerNode)
	for i := range nodes {
		angle := 2 * math.Pi * float64(i) / float64(n)
		x := circularCenterX + radius*math.Cos(angle)
		y := circularCenterY + radius*math.Sin(angle)
		setPosition(&nodes[i], x, y)
	}
}
