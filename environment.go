package main

import (
	"math/rand"
	"time"
)

// generateWalls procedurally places obstacle segments across the grid while
// keeping a clear zone around the robot's starting cell.
func (g *Game) generateWalls() {
	if g.levelRand == nil {
		g.levelRand = rand.New(rand.NewSource(time.Now().UnixNano() + 1))
	}
	for s := 0; s < wallSegments; s++ {
		lengthRange := wallMaxLen - wallMinLen + 1
		if lengthRange <= 0 {
			lengthRange = 1
		}
		length := wallMinLen + g.levelRand.Intn(lengthRange)
		horizontal := g.levelRand.Intn(2) == 0
		dx, dy := 0, 1
		if horizontal {
			dx, dy = 1, 0
		}
		cx := g.levelRand.Intn(gridCols)
		cy := g.levelRand.Intn(gridRows)
		for l := 0; l < length; l++ {
			g.trySetWall(cell{cx, cy})
			cx += dx
			cy += dy
		}
	}
}

// trySetWall marks a grid cell as an obstacle while enforcing spacing from
// the robot.
func (g *Game) trySetWall(c cell) {
	if !g.grid.inBounds(c) {
		return
	}
	if c.manhattan(g.robot.gridPos) <= wallExclusionRadius {
		return
	}
	g.grid.setObstacle(c)
}
