package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveTowardStepsAndSnaps(t *testing.T) {
	r := newRobot(cell{0, 0})
	target := cell{1, 0}

	r.moveToward(target, robotSpeed)
	assert.InDelta(t, float64(cellSize/2)+robotSpeed, r.x, 1e-9)
	assert.Equal(t, cell{0, 0}, r.gridPos, "grid position holds until arrival")

	// One cell is cellSize pixels; enough ticks must land exactly on center.
	for i := 0; i < cellSize; i++ {
		r.moveToward(target, robotSpeed)
	}
	tx, ty := cellCenter(target)
	assert.Equal(t, tx, r.x)
	assert.Equal(t, ty, r.y)
	assert.Equal(t, target, r.gridPos)
}

func TestMoveTowardDiagonalSpeed(t *testing.T) {
	r := newRobot(cell{0, 0})
	r.moveToward(cell{1, 1}, robotSpeed)
	dx := r.x - float64(cellSize/2)
	dy := r.y - float64(cellSize/2)
	assert.InDelta(t, robotSpeed, math.Hypot(dx, dy), 1e-9, "step length equals speed")
}

func TestFollowRouteReachesGoal(t *testing.T) {
	g := &Game{
		grid:  newGrid(gridCols, gridRows),
		robot: newRobot(cell{0, 0}),
	}
	g.planner = newRoutePlanner(g.grid, algoBFS)
	goal := cell{2, 1}
	g.planner.setGoal(g.robot.gridPos, goal)
	require.NotEmpty(t, g.planner.route())

	// Three cells at 40 px each, 2 px per tick, plus slack.
	for i := 0; i < 3*cellSize && g.robot.gridPos != goal; i++ {
		g.followRoute()
	}

	assert.Equal(t, goal, g.robot.gridPos)
	_, ok := g.planner.currentWaypoint()
	assert.False(t, ok, "path consumed on arrival")
}

func TestFollowRouteIdleWithoutDestination(t *testing.T) {
	g := &Game{
		grid:  newGrid(gridCols, gridRows),
		robot: newRobot(cell{3, 3}),
	}
	g.planner = newRoutePlanner(g.grid, algoBFS)
	x, y := g.robot.x, g.robot.y

	g.followRoute()

	assert.Equal(t, x, g.robot.x)
	assert.Equal(t, y, g.robot.y)
}
