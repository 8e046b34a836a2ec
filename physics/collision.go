package physics

import (
	"github.com/lixenwraith/blind-maze/maze"
	"github.com/lixenwraith/blind-maze/vmath"
)

// WinTrailThreshold is the trail length a round must exceed for a gap exit to count as a win
// Shorter trails mean the player backed out through the entrance
const WinTrailThreshold = 10

// Status classifies a player position against the maze
type Status uint8

const (
	StatusPlaying Status = iota
	StatusOutOfBounds
	// StatusEscaped marks a position off-grid but inside the bounding box, only reachable through an opening
	// Classify resolves it into StatusWin or StatusWallHit
	StatusEscaped
	StatusWin
	StatusWallHit
)

var statusNames = [...]string{"playing", "out_of_bounds", "escaped", "win", "wall_hit"}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

// Terminal reports whether the status ends the round
func (s Status) Terminal() bool {
	return s == StatusOutOfBounds || s == StatusWin || s == StatusWallHit
}

// Won reports whether the status is a win
func (s Status) Won() bool {
	return s == StatusWin
}

// Classify resolves a player disc against the maze, first match wins:
// outside the inflated bounds, off-grid through a gap, wall closer than radius
// trailLen is the number of distinct positions recorded before this tick
func Classify(pos vmath.Vec2, radius float64, m *maze.Maze, trailLen int) Status {
	switch s := locate(pos, radius, m); s {
	case StatusEscaped:
		if trailLen > WinTrailThreshold {
			return StatusWin
		}
		return StatusWallHit
	case StatusPlaying:
		return touchesWall(pos, radius, m)
	default:
		return s
	}
}

// locate runs the bounding box and grid checks
func locate(pos vmath.Vec2, radius float64, m *maze.Maze) Status {
	b := m.Bounds().Inflate(radius)
	if pos.X < b.Min.X || pos.X > b.Max.X || pos.Y < b.Min.Y || pos.Y > b.Max.Y {
		return StatusOutOfBounds
	}

	if !m.Contains(m.Locate(pos)) {
		return StatusEscaped
	}
	return StatusPlaying
}

// touchesWall checks distances from pos to each present wall of its cell
// Tangency (distance == radius) does not collide
func touchesWall(pos vmath.Vec2, radius float64, m *maze.Maze) Status {
	p := m.Locate(pos)
	c := m.Cell(p.Row, p.Col)
	local := pos.Sub(m.CellOrigin(p.Row, p.Col))

	dist := [4]float64{
		maze.Top:    local.Y,
		maze.Right:  m.CellSize - local.X,
		maze.Bottom: m.CellSize - local.Y,
		maze.Left:   local.X,
	}

	for side, d := range dist {
		if c.Walls[side] && d < radius {
			return StatusWallHit
		}
	}
	return StatusPlaying
}
