package main

// findPathBFS runs breadth-first search over the 4-connected grid and returns
// a shortest path in hop count. Cells are marked visited when enqueued, which
// fixes which of several equal-length paths is produced.
func findPathBFS(g *grid, start, goal cell) []cell {
	if searchPreempted(g, start, goal) {
		return nil
	}

	visited := make([]bool, g.cols*g.rows)
	parents := make(map[cell]cell, g.cols*g.rows)
	queue := make([]cell, 0, g.cols*g.rows)

	queue = append(queue, start)
	visited[g.index(start)] = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == goal {
			return reconstructPath(parents, start, goal)
		}
		for _, off := range neighborOffsets {
			next := cell{cur.x + off.x, cur.y + off.y}
			if !g.isTraversable(next) || visited[g.index(next)] {
				continue
			}
			visited[g.index(next)] = true
			parents[next] = cur
			queue = append(queue, next)
		}
	}
	return nil
}
