package main

import "flag"

// Command-line flags that control optional startup and runtime behavior.
var (
	// layoutFileFlag selects the file used by the S (save) and L (load) keys.
	layoutFileFlag = flag.String("layout", defaultLayoutFile, "layout file used by the S/L save and load keys")

	// useAStarFlag starts the planner with A* instead of BFS.
	useAStarFlag = flag.Bool("astar", false, "start with the A* planner instead of BFS")

	// randomWallsFlag scatters procedural wall segments across the grid at startup.
	randomWallsFlag = flag.Bool("random-walls", false, "generate random wall segments at startup")

	// debugFlag enables the FPS and planner state overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and planner state overlay")

	// cpuProfileFlag writes a CPU profile for the whole run to the given path.
	cpuProfileFlag = flag.String("cpuprofile", "", "write a CPU profile to the given path")
)
