package main

// searchFunc computes a path over g from start to (and including) goal,
// excluding start itself. A nil result means no path exists.
type searchFunc func(g *grid, start, goal cell) []cell

// searchPreempted reports whether a search can return an empty path without
// exploring: the goal is already reached, an endpoint is unusable, or the
// goal cell cannot be stood on.
func searchPreempted(g *grid, start, goal cell) bool {
	return start == goal || !g.inBounds(start) || !g.isTraversable(goal)
}

// reconstructPath walks parent links from goal back to start and returns the
// cells in travel order. Presence in parents marks a reached cell; there is
// no sentinel coordinate.
func reconstructPath(parents map[cell]cell, start, goal cell) []cell {
	path := make([]cell, 0, len(parents))
	for cur := goal; cur != start; {
		path = append(path, cur)
		prev, ok := parents[cur]
		if !ok {
			return nil
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
