package layout

import "github.com/stepflow-io/stepflow/model"

// hierarchicalLayout assigns each node a level equal to its BFS distance
// from the root along forward edges, then centers each level's nodes along
// the axis orthogonal to growth.
func hierarchicalLayout(nodes []model.Node, edges []model.Edge, opts Options) {
	root, ok := pickRoot(nodes)
	if !ok {
		fallbackLayout(nodes, opts)
		return
	}

	adj := adjacency(edges)

	// BFS from the root. Each node is leveled exactly once, at the level of
	// first discovery; the visited set guards cycles and diamond joins.
	levels := map[string]int{root.ID: 0}
	visited := map[string]bool{root.ID: true}
	queue := []string{root.ID}
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

	// Group nodes by level in input order. Nodes the BFS never reached get
	// level 0 defensively so they still appear in the output.
	groups := make(map[int][]int)
	maxLevel := 0
	for i, n := range nodes {
		level := levels[n.ID]
		groups[level] = append(groups[level], i)
		if level > maxLevel {
			maxLevel = level
		}
	}

	for level := 0; level <= maxLevel; level++ {
		group := groups[level]
		for i, idx := range group {
			// Siblings spread around a centered origin on the cross axis.
			offset := float64(i) - float64(len(group)-1)/2
			if opts.Direction == DirectionLR {
				x := opts.Padding.X + float64(level)*opts.Spacing.X
				y := opts.Padding.Y + offset*opts.Spacing.Y
				setPosition(&nodes[idx], x, y)
			} else {
				x := opts.Padding.X + offset*opts.Spacing.X
				y := opts.Padding.Y + float64(level)*opts.Spacing.Y
				setPosition(&nodes[idx], x, y)
			}
		}
	}
}
