package main

import "math"

// robot tracks a continuous pixel position for smooth animation alongside the
// grid cell it logically occupies.
type robot struct {
	x, y    float64
	gridPos cell
}

// newRobot places a robot at the center of the given cell.
func newRobot(c cell) *robot {
	x, y := cellCenter(c)
	return &robot{x: x, y: y, gridPos: c}
}

// cellCenter returns the pixel coordinates of a cell's center.
func cellCenter(c cell) (float64, float64) {
	return float64(c.x*cellSize + cellSize/2), float64(c.y*cellSize + cellSize/2)
}

// moveToward steps the robot toward the center of the target cell at the
// given speed in pixels per tick. When the remaining distance fits within one
// step the robot snaps onto the cell and adopts it as its grid position.
func (r *robot) moveToward(target cell, speed float64) {
	tx, ty := cellCenter(target)
	dx := tx - r.x
	dy := ty - r.y
	dist := math.Hypot(dx, dy)
	if dist > speed {
		r.x += speed * dx / dist
		r.y += speed * dy / dist
		return
	}
	r.x = tx
	r.y = ty
	r.gridPos = target
}

// followRoute advances the robot one tick along the planned path and reports
// waypoint arrivals to the planner. Replans always reset progress before the
// next call, so the planner index only ever moves forward here.
func (g *Game) followRoute() {
	waypoint, ok := g.planner.currentWaypoint()
	if !ok {
		return
	}
	g.robot.moveToward(waypoint, robotSpeed)
	if g.robot.gridPos == waypoint {
		g.planner.advance()
	}
}
