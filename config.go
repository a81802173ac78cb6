package main

// Window geometry, grid sizing, and movement configuration constants used
// throughout the application. The grid dimensions are derived from the fixed
// window size and cell size and never change at runtime.
const (
	screenWidth  = 800
	screenHeight = 600
	cellSize     = 40
	gridCols     = screenWidth / cellSize
	gridRows     = screenHeight / cellSize
	robotRadius  = cellSize / 3
	robotSpeed   = 2.0

	defaultLayoutFile = "warehouse_layout.txt"

	wallSegments        = 7
	wallMinLen          = 3
	wallMaxLen          = 9
	wallExclusionRadius = 2
)
