package main

// algorithm selects which search the planner invokes.
type algorithm int

const (
	algoBFS algorithm = iota
	algoAStar
)

// String returns the display name of the algorithm.
func (a algorithm) String() string {
	if a == algoAStar {
		return "A*"
	}
	return "BFS"
}

// routePlanner owns the current destination, the planned path, and the
// robot's progress along it. Every replanning event runs a full search from
// the robot's current grid cell; no partial search state is kept between
// events.
type routePlanner struct {
	grid *grid
	algo algorithm

	goal    cell
	hasGoal bool

	path      []cell
	pathIndex int
}

// newRoutePlanner creates a planner with no destination set.
func newRoutePlanner(g *grid, algo algorithm) *routePlanner {
	return &routePlanner{grid: g, algo: algo}
}

// search dispatches to the active algorithm.
func (p *routePlanner) search(start, goal cell) []cell {
	if p.algo == algoAStar {
		return findPathAStar(p.grid, start, goal)
	}
	return findPathBFS(p.grid, start, goal)
}

// replan recomputes the path from the given cell to the current goal and
// resets progress. An unreachable goal yields an empty path; the destination
// stays set so a later grid change can restore the route.
func (p *routePlanner) replan(from cell) {
	if !p.hasGoal {
		return
	}
	p.path = p.search(from, p.goal)
	p.pathIndex = 0
}

// setGoal stores a new destination and plans to it immediately. Goals on
// obstacle or out-of-bounds cells are ignored.
func (p *routePlanner) setGoal(from, goal cell) {
	if !p.grid.isTraversable(goal) {
		return
	}
	p.goal = goal
	p.hasGoal = true
	p.replan(from)
}

// toggleAlgorithm switches between BFS and A*, replanning in place when a
// destination exists.
func (p *routePlanner) toggleAlgorithm(from cell) {
	if p.algo == algoBFS {
		p.algo = algoAStar
	} else {
		p.algo = algoBFS
	}
	p.replan(from)
}

// obstacleChanged must be called after any grid mutation so the route stays
// valid.
func (p *routePlanner) obstacleChanged(from cell) {
	p.replan(from)
}

// layoutLoaded must be called after a bulk grid replacement.
func (p *routePlanner) layoutLoaded(from cell) {
	p.replan(from)
}

// reset clears the destination and path.
func (p *routePlanner) reset() {
	p.hasGoal = false
	p.path = nil
	p.pathIndex = 0
}

// advance records that the robot arrived at the current waypoint. The
// progress index never passes the end of the path.
func (p *routePlanner) advance() {
	if p.pathIndex < len(p.path) {
		p.pathIndex++
	}
}

// currentWaypoint returns the next cell the robot should move to, or false
// when there is no destination or the path is exhausted.
func (p *routePlanner) currentWaypoint() (cell, bool) {
	if !p.hasGoal || p.pathIndex >= len(p.path) {
		return cell{}, false
	}
	return p.path[p.pathIndex], true
}

// destination returns the active goal cell, if one is set.
func (p *routePlanner) destination() (cell, bool) {
	return p.goal, p.hasGoal
}

// route exposes the planned path for rendering. Callers must not modify it.
func (p *routePlanner) route() []cell {
	return p.path
}
