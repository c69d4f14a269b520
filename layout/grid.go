package layout

import (
	"math"

	"github.com/stepflow-io/stepflow/model"
)

// gridLayout places nodes row-major into a ceil(√n)-column grid at the
// spacing cell size, ignoring edges entirely.
func gridLayout(nodes []model.Node, opts Options) {
	n := len(nodes)
	if n == 0 {
		return
	}
	cols := int(math.Ceil(math.Sqrt(float64(n))))
	for i := range nodes {
		x := opts.Padding.X + float64(i%cols)*opts.Spacing.X
		y := opts.Padding.Y + float64(i/cols)*opts.Spacing.Y
		setPosition(&nodes[i], x, y)
	}
}
