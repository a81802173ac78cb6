package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Palette for the grid, actors, and overlays.
var (
	colorBackground = color.RGBA{20, 20, 20, 255}
	colorGridLine   = color.RGBA{50, 50, 50, 255}
	colorObstacle   = color.RGBA{200, 50, 50, 255}
	colorRobot      = color.RGBA{50, 200, 50, 255}
	colorGoal       = color.RGBA{50, 50, 200, 255}
	colorPath       = color.RGBA{255, 215, 0, 255}
	colorText       = color.RGBA{255, 255, 255, 255}
)

// Draw renders the grid, obstacles, planned path, destination, robot, and
// text overlays for the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	g.drawGridLines(screen)
	g.drawObstacles(screen)
	g.drawPath(screen)
	g.drawDestination(screen)
	g.drawRobot(screen)
	g.drawInstructions(screen)

	if *debugFlag {
		progress := g.planner.pathIndex
		debugMsg := fmt.Sprintf("FPS: %.1f\nAlgo: %s\nPath: %d cells (progress %d)",
			ebiten.ActualFPS(), g.planner.algo, len(g.planner.route()), progress)
		ebitenutil.DebugPrintAt(screen, debugMsg, 10, screenHeight-60)
	}
}

// drawGridLines strokes the cell boundaries across the whole window.
func (g *Game) drawGridLines(screen *ebiten.Image) {
	for y := 0; y <= gridRows; y++ {
		fy := float32(y * cellSize)
		vector.StrokeLine(screen, 0, fy, screenWidth, fy, 1, colorGridLine, false)
	}
	for x := 0; x <= gridCols; x++ {
		fx := float32(x * cellSize)
		vector.StrokeLine(screen, fx, 0, fx, screenHeight, 1, colorGridLine, false)
	}
}

// drawObstacles fills every obstacle cell.
func (g *Game) drawObstacles(screen *ebiten.Image) {
	for y := 0; y < gridRows; y++ {
		for x := 0; x < gridCols; x++ {
			if g.grid.cells[g.grid.index(cell{x, y})] != cellObstacle {
				continue
			}
			vector.DrawFilledRect(screen,
				float32(x*cellSize), float32(y*cellSize),
				cellSize, cellSize, colorObstacle, false)
		}
	}
}

// drawPath marks each cell along the planned route.
func (g *Game) drawPath(screen *ebiten.Image) {
	for _, c := range g.planner.route() {
		vector.DrawFilledRect(screen,
			float32(c.x*cellSize+cellSize/3), float32(c.y*cellSize+cellSize/3),
			cellSize/3, cellSize/3, colorPath, false)
	}
}

// drawDestination marks the active goal cell, if any.
func (g *Game) drawDestination(screen *ebiten.Image) {
	goal, ok := g.planner.destination()
	if !ok {
		return
	}
	vector.DrawFilledRect(screen,
		float32(goal.x*cellSize+cellSize/4), float32(goal.y*cellSize+cellSize/4),
		cellSize/2, cellSize/2, colorGoal, false)
}

// drawRobot renders the robot square centered on its continuous position.
func (g *Game) drawRobot(screen *ebiten.Image) {
	vector.DrawFilledRect(screen,
		float32(g.robot.x-robotRadius), float32(g.robot.y-robotRadius),
		robotRadius*2, robotRadius*2, colorRobot, false)
}

// drawInstructions prints the control reference and the last save/load
// outcome.
func (g *Game) drawInstructions(screen *ebiten.Image) {
	face := basicfont.Face7x13
	text.Draw(screen, "Left Click: Set Destination   Right Click: Toggle Obstacle", face, 10, 16, colorText)
	text.Draw(screen, fmt.Sprintf("R: Reset   T: Toggle Algorithm   (Current: %s)", g.planner.algo), face, 10, 32, colorText)
	text.Draw(screen, "S: Save Layout   L: Load Layout", face, 10, 48, colorText)
	if g.status != "" {
		text.Draw(screen, g.status, face, 10, 64, colorText)
	}
}

// Layout reports the logical screen size used by Ebiten.
func (g *Game) Layout(_, _ int) (int, int) { return screenWidth, screenHeight }
