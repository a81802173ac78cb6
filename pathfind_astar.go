package main

import (
	"container/heap"
	"math"
)

// openNode is one entry in the A* frontier. seq records insertion order so
// that equal f-costs pop oldest first, keeping expansion reproducible.
type openNode struct {
	pos cell
	f   int
	seq int
}

// openSet is a min-heap over f-cost with insertion-order tie-breaking.
type openSet []*openNode

func (s openSet) Len() int { return len(s) }

func (s openSet) Less(i, j int) bool {
	if s[i].f != s[j].f {
		return s[i].f < s[j].f
	}
	return s[i].seq < s[j].seq
}

func (s openSet) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

func (s *openSet) Push(x any) { *s = append(*s, x.(*openNode)) }

func (s *openSet) Pop() any {
	old := *s
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*s = old[:n-1]
	return item
}

// findPathAStar runs A* over the 4-connected grid with the Manhattan distance
// heuristic. On a uniform-cost grid the heuristic is admissible and
// consistent, so the result length always matches BFS. Cells are relaxed and
// re-pushed whenever a strictly smaller g-cost is found; stale duplicate
// entries are skipped when popped.
func findPathAStar(g *grid, start, goal cell) []cell {
	if searchPreempted(g, start, goal) {
		return nil
	}

	size := g.cols * g.rows
	visited := make([]bool, size)
	parents := make(map[cell]cell, size)
	bestG := make([]int, size)
	for i := range bestG {
		bestG[i] = math.MaxInt
	}

	open := &openSet{}
	seq := 0
	heap.Push(open, &openNode{pos: start, f: start.manhattan(goal), seq: seq})
	seq++
	bestG[g.index(start)] = 0

	for open.Len() > 0 {
		cur := heap.Pop(open).(*openNode)
		if cur.pos == goal {
			return reconstructPath(parents, start, goal)
		}
		curIdx := g.index(cur.pos)
		if visited[curIdx] {
			continue
		}
		visited[curIdx] = true

		for _, off := range neighborOffsets {
			next := cell{cur.pos.x + off.x, cur.pos.y + off.y}
			if !g.isTraversable(next) {
				continue
			}
			nextIdx := g.index(next)
			if visited[nextIdx] {
				continue
			}
			nextG := bestG[curIdx] + 1
			if nextG >= bestG[nextIdx] {
				continue
			}
			bestG[nextIdx] = nextG
			parents[next] = cur.pos
			heap.Push(open, &openNode{pos: next, f: nextG + next.manhattan(goal), seq: seq})
			seq++
		}
	}
	return nil
}
