package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// errTruncatedLayout is returned when a layout file holds fewer values than
// the grid needs.
var errTruncatedLayout = errors.New("layout file has fewer values than the grid needs")

// saveLayout writes the occupancy grid as rows of space-separated integers,
// 0 for free and 1 for obstacle, one line per grid row.
func saveLayout(path string, g *grid) error {
	var b strings.Builder
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			if g.cells[g.index(cell{x, y})] == cellObstacle {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("save layout: %w", err)
	}
	return nil
}

// loadLayout reads a layout file and replaces the grid occupancy in one
// step. The file must supply at least cols*rows integers in row-major order;
// nonzero values are treated as obstacles. On any error the grid is left
// unmodified.
func loadLayout(path string, g *grid) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load layout: %w", err)
	}
	tokens := strings.Fields(string(data))
	need := g.cols * g.rows
	if len(tokens) < need {
		return fmt.Errorf("load layout: %w: got %d of %d values", errTruncatedLayout, len(tokens), need)
	}
	cells := make([]cellState, need)
	for i := 0; i < need; i++ {
		v, err := strconv.Atoi(tokens[i])
		if err != nil {
			return fmt.Errorf("load layout: value %d: %w", i, err)
		}
		if v != 0 {
			cells[i] = cellObstacle
		}
	}
	return g.replaceAll(cells)
}
