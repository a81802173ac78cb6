package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// cellAtPixel converts window pixel coordinates to the containing grid cell.
func cellAtPixel(px, py int) cell {
	return cell{px / cellSize, py / cellSize}
}

// handleInput processes one tick of mouse and keyboard events. Left click
// sets the destination, right click toggles an obstacle, R resets, T switches
// the search algorithm, and S/L save or load the layout file.
func (g *Game) handleInput() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		g.planner.setGoal(g.robot.gridPos, cellAtPixel(mx, my))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		mx, my := ebiten.CursorPosition()
		g.grid.toggleObstacle(cellAtPixel(mx, my))
		g.planner.obstacleChanged(g.robot.gridPos)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.planner.reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.planner.toggleAlgorithm(g.robot.gridPos)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := saveLayout(*layoutFileFlag, g.grid); err != nil {
			log.Printf("save layout: %v", err)
			g.status = fmt.Sprintf("save failed: %v", err)
		} else {
			log.Printf("layout saved to %s", *layoutFileFlag)
			g.status = "layout saved to " + *layoutFileFlag
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		if err := loadLayout(*layoutFileFlag, g.grid); err != nil {
			log.Printf("load layout: %v", err)
			g.status = fmt.Sprintf("load failed: %v", err)
		} else {
			log.Printf("layout loaded from %s", *layoutFileFlag)
			g.status = "layout loaded from " + *layoutFileFlag
			g.planner.layoutLoaded(g.robot.gridPos)
		}
	}
}
