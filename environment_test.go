package main

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateWallsKeepsRobotClear(t *testing.T) {
	g := &Game{
		grid:      newGrid(gridCols, gridRows),
		robot:     newRobot(cell{gridCols / 2, gridRows / 2}),
		levelRand: rand.New(rand.NewSource(7)),
	}
	g.generateWalls()

	obstacles := 0
	for _, s := range g.grid.snapshot() {
		if s == cellObstacle {
			obstacles++
		}
	}
	assert.Greater(t, obstacles, 0, "generation places at least one wall")

	for y := 0; y < gridRows; y++ {
		for x := 0; x < gridCols; x++ {
			c := cell{x, y}
			if c.manhattan(g.robot.gridPos) <= wallExclusionRadius {
				assert.True(t, g.grid.isTraversable(c), "cell %v inside the exclusion zone", c)
			}
		}
	}
}
