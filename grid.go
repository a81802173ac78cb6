package main

import "errors"

// errGridSize is returned when a replacement layout does not match the fixed
// grid dimensions.
var errGridSize = errors.New("replacement layout has wrong dimensions")

// cell identifies a single grid square by column and row.
type cell struct {
	x int
	y int
}

// manhattan returns the L1 distance between two cells.
func (c cell) manhattan(other cell) int {
	dx := c.x - other.x
	if dx < 0 {
		dx = -dx
	}
	dy := c.y - other.y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// neighborOffsets lists the 4-connected neighbor steps in the fixed expansion
// order used by both searches: up, right, down, left.
var neighborOffsets = [4]cell{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// cellState is the occupancy of a single grid cell.
type cellState uint8

const (
	cellFree cellState = iota
	cellObstacle
)

// grid holds the occupancy of every cell in a flat row-major buffer. The
// dimensions are fixed at construction and never change.
type grid struct {
	cols, rows int
	cells      []cellState
}

// newGrid allocates an all-free grid of the given dimensions.
func newGrid(cols, rows int) *grid {
	return &grid{
		cols:  cols,
		rows:  rows,
		cells: make([]cellState, cols*rows),
	}
}

// index converts a cell to its flat buffer offset. The cell must be in bounds.
func (g *grid) index(c cell) int {
	return c.y*g.cols + c.x
}

// inBounds reports whether the cell lies within the grid.
func (g *grid) inBounds(c cell) bool {
	return c.x >= 0 && c.x < g.cols && c.y >= 0 && c.y < g.rows
}

// isTraversable reports whether the cell is in bounds and free of obstacles.
// Both searches use this as their only admissibility test.
func (g *grid) isTraversable(c cell) bool {
	return g.inBounds(c) && g.cells[g.index(c)] == cellFree
}

// toggleObstacle flips a cell between free and obstacle. Out-of-bounds cells
// are ignored.
func (g *grid) toggleObstacle(c cell) {
	if !g.inBounds(c) {
		return
	}
	idx := g.index(c)
	if g.cells[idx] == cellFree {
		g.cells[idx] = cellObstacle
	} else {
		g.cells[idx] = cellFree
	}
}

// setObstacle marks an in-bounds cell as an obstacle.
func (g *grid) setObstacle(c cell) {
	if !g.inBounds(c) {
		return
	}
	g.cells[g.index(c)] = cellObstacle
}

// replaceAll swaps the entire occupancy buffer. The replacement must match
// the grid dimensions exactly; on mismatch the grid is left untouched.
func (g *grid) replaceAll(cells []cellState) error {
	if len(cells) != g.cols*g.rows {
		return errGridSize
	}
	copy(g.cells, cells)
	return nil
}

// snapshot returns a copy of the occupancy buffer.
func (g *grid) snapshot() []cellState {
	out := make([]cellState, len(g.cells))
	copy(out, g.cells)
	return out
}
