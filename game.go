package main

import "math/rand"

// Game owns the occupancy grid, the route planner, and the robot. All input
// handling, replanning, and movement happen synchronously inside Update, so
// the grid is never mutated while a search is reading it.
type Game struct {
	grid    *grid
	planner *routePlanner
	robot   *robot

	levelRand *rand.Rand
	status    string
}

// newGame constructs a fully initialized Game instance.
func newGame() *Game {
	g := &Game{
		grid:  newGrid(gridCols, gridRows),
		robot: newRobot(cell{0, 0}),
	}
	algo := algoBFS
	if *useAStarFlag {
		algo = algoAStar
	}
	g.planner = newRoutePlanner(g.grid, algo)
	if *randomWallsFlag {
		g.generateWalls()
	}
	return g
}

// Update processes input events and advances the robot one tick.
func (g *Game) Update() error {
	g.handleInput()
	g.followRoute()
	return nil
}
