package layout

import "github.com/stepflow-io/stepflow/model"

// treeLayout places the graph as a rooted tree: each node's subtree is
// allocated horizontal width proportional to its size, children centered
// beneath their parent, one spacing.y per depth level. A node with multiple
// parents keeps only its last one (an explicit simplification, not a general
// DAG layout). Nodes outside the tree fall back to row-major placement.
func treeLayout(nodes []model.Node, edges []model.Edge, opts Options) {
	root, ok := pickRoot(nodes)
	if !ok {
		fallbackLayout(nodes, opts)
		return
	}

	// Parent/children maps, last writer wins on re-parenting.
	parent := make(map[string]string, len(edges))
	children := make(map[string][]string, len(edges))
	for _, e := range edges {
		if prev, ok := parent[e.Target]; ok {
			children[prev] = removeID(children[prev], e.Target)
		}
		parent[e.Target] = e.Source
		children[e.Source] = append(children[e.Source], e.Target)
	}

	// Subtree sizes, visited-set guarded against cycles.
	sizes := make(map[string]int, len(nodes))
	var measure func(id string, visited map[string]bool) int
	measure = func(id string, visited map[string]bool) int {
		if visited[id] {
			return 0
		}
		visited[id] = true
		size := 1
		for _, child := range children[id] {
			size += measure(child, visited)
		}
		sizes[id] = size
		return size
	}
	total := measure(root.ID, make(map[string]bool))

	index := make(map[string]int, len(nodes))
	for i, n := range nodes {
		index[n.ID] = i
	}

	placed := make(map[string]bool, len(nodes))
	maxDepth := 0
	var place func(id string, left, right float64, depth int)
	place = func(id string, left, right float64, depth int) {
		if placed[id] {
			return
		}
		placed[id] = true
		if depth > maxDepth {
			maxDepth = depth
		}
		if i, ok := index[id]; ok {
			setPosition(&nodes[i], (left+right)/2, opts.Padding.Y+float64(depth)*opts.Spacing.Y)
		}
		kids := children[id]
		if len(kids) == 0 {
			return
		}
		span := 0
		for _, child := range kids {
			if !placed[child] {
				span += sizes[child]
			}
		}
		if span == 0 {
			return
		}
		cursor := left
		for _, child := range kids {
			if placed[child] {
				continue
			}
			width := (right - left) * float64(sizes[child]) / float64(span)
			place(child, cursor, cursor+width, depth+1)
			cursor += width
		}
	}
	place(root.ID, opts.Padding.X, opts.Padding.X+float64(total)*opts.Spacing.X, 0)

	// Anything the tree never reached still needs a deterministic spot.
	var leftovers []int
	for i, n := range nodes {
		if !placed[n.ID] {
			leftovers = append(leftovers, i)
		}
	}
	for row, i := range leftovers {
		x := opts.Padding.X
		y := opts.Padding.Y + float64(maxDepth+1+row)*opts.Spacing.Y
		setPosition(&nodes[i], x, y)
	}
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
