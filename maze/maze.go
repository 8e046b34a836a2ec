// Package maze generates perfect mazes over a square grid of walled cells.
//
// Generation is an iterative recursive backtracker driven by a seeded LCG,
// so a (size, cell size, seed) triple always yields the same maze. Entrance
// and exit openings are carved on the first and last rows afterwards and
// placed in world space, centred in the caller's viewport.
package maze

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/blind-maze/vmath"
)

// ErrInvalidGrid is returned when the parameters do not produce at least one cell
var ErrInvalidGrid = errors.New("maze: grid size must be at least 1")

// Params describes a maze to generate
type Params struct {
	Size     float64 // Side length of the maze area in world units
	CellSize float64 // Side length of one cell in world units
	Seed     int64

	// Viewport is the world extent the maze is centred in
	// Zero viewport places the maze at the origin
	Viewport vmath.Vec2
}

// GridSize returns floor(Size/CellSize), or 0 for non-positive inputs
func (p Params) GridSize() int {
	if p.Size <= 0 || p.CellSize <= 0 || math.IsNaN(p.Size) || math.IsNaN(p.CellSize) {
		return 0
	}
	return int(math.Floor(p.Size / p.CellSize))
}

// Maze is an immutable generated grid plus its placement in world space
type Maze struct {
	GridSize int
	CellSize float64
	Size     float64
	Seed     int64

	Viewport vmath.Vec2
	Offset   vmath.Vec2 // Top-left corner of the grid in world space

	EntranceCol, ExitCol int
	Entrance, Exit       vmath.Vec2 // Midpoints of the opening edges in world space

	grid [][]Cell
}

// Generate builds a maze for p
func Generate(p Params) (*Maze, error) {
	n := p.GridSize()
	if n < 1 {
		return nil, fmt.Errorf("%w: size=%g cell_size=%g", ErrInvalidGrid, p.Size, p.CellSize)
	}

	m := &Maze{
		GridSize: n,
		CellSize: p.CellSize,
		Size:     p.Size,
		Seed:     p.Seed,
		Viewport: p.Viewport,
		grid:     newGrid(n),
	}

	extent := float64(n) * p.CellSize
	if p.Viewport.IsZero() {
		m.Viewport = vmath.V2(extent, extent)
	}
	m.Offset = m.Viewport.Sub(vmath.V2(extent, extent)).Scale(0.5)

	m.carve(NewRandom(p.Seed))
	// Openings restart from the seed rather than continuing the carving stream
	m.openings(NewRandom(p.Seed))

	return m, nil
}

func newGrid(n int) [][]Cell {
	grid := make([][]Cell, n)
	for row := range grid {
		grid[row] = make([]Cell, n)
		for col := range grid[row] {
			grid[row][col].Walls = [4]bool{true, true, true, true}
		}
	}
	return grid
}

// carve runs the recursive backtracker from (0,0) on an explicit stack
func (m *Maze) carve(rng *Random) {
	stack := make([]Point, 0, m.GridSize*m.GridSize)
	m.grid[0][0].Visited = true
	stack = append(stack, Point{0, 0})

	var candidates [4]direction
	for len(stack) > 0 {
		curr := stack[len(stack)-1]

		count := 0
		for _, d := range directions {
			r, c := curr.Row+d.dRow, curr.Col+d.dCol
			if m.inGrid(r, c) && !m.grid[r][c].Visited {
				candidates[count] = d
				count++
			}
		}

		if count == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		// A lone candidate is taken without consuming a draw
		d := candidates[0]
		if count > 1 {
			d = candidates[rng.Intn(count)]
		}

		next := Point{curr.Row + d.dRow, curr.Col + d.dCol}
		m.grid[curr.Row][curr.Col].Walls[d.side] = false
		m.grid[next.Row][next.Col].Walls[d.side.Opposite()] = false
		m.grid[next.Row][next.Col].Visited = true
		stack = append(stack, next)
	}
}

func (m *Maze) openings(rng *Random) {
	m.EntranceCol = rng.Intn(m.GridSize)
	m.ExitCol = rng.Intn(m.GridSize)

	m.grid[0][m.EntranceCol].Walls[Top] = false
	m.grid[m.GridSize-1][m.ExitCol].Walls[Bottom] = false

	half := m.CellSize / 2
	m.Entrance = vmath.V2(float64(m.EntranceCol)*m.CellSize+half, 0).Add(m.Offset)
	m.Exit = vmath.V2(float64(m.ExitCol)*m.CellSize+half, float64(m.GridSize)*m.CellSize).Add(m.Offset)
}

func (m *Maze) inGrid(row, col int) bool {
	return row >= 0 && row < m.GridSize && col >= 0 && col < m.GridSize
}

// Contains reports whether (row, col) addresses a cell
func (m *Maze) Contains(p Point) bool {
	return m.inGrid(p.Row, p.Col)
}

// Cell returns a copy of the cell at (row, col)
// Panics on out-of-range indices like slice access
func (m *Maze) Cell(row, col int) Cell {
	return m.grid[row][col]
}

// HasWall reports whether the wall on side s of (row, col) is present
func (m *Maze) HasWall(row, col int, s Side) bool {
	return m.grid[row][col].Walls[s]
}

// Extent returns the rendered side length of the grid in world units
func (m *Maze) Extent() float64 {
	return float64(m.GridSize) * m.CellSize
}

// Bounds returns the grid's world-space bounding box
func (m *Maze) Bounds() vmath.Rect {
	e := m.Extent()
	return vmath.RectFrom(m.Offset, vmath.V2(e, e))
}

// CellOrigin returns the world-space top-left corner of (row, col)
func (m *Maze) CellOrigin(row, col int) vmath.Vec2 {
	return vmath.V2(float64(col)*m.CellSize, float64(row)*m.CellSize).Add(m.Offset)
}

// Locate maps a world position to the cell containing it
// The result may lie outside the grid; check with Contains
func (m *Maze) Locate(pos vmath.Vec2) Point {
	local := pos.Sub(m.Offset)
	return Point{
		Row: int(math.Floor(local.Y / m.CellSize)),
		Col: int(math.Floor(local.X / m.CellSize)),
	}
}

// EntranceCell returns the grid address of the entrance opening
func (m *Maze) EntranceCell() Point {
	return Point{0, m.EntranceCol}
}

// ExitCell returns the grid address of the exit opening
func (m *Maze) ExitCell() Point {
	return Point{m.GridSize - 1, m.ExitCol}
}

// CarvedEdges counts passages between adjacent cells
// A perfect maze has exactly GridSize²-1
func (m *Maze) CarvedEdges() int {
	edges := 0
	for row := 0; row < m.GridSize; row++ {
		for col := 0; col < m.GridSize; col++ {
			// Count each pair once via its right and bottom sides
			if col+1 < m.GridSize && !m.grid[row][col].Walls[Right] {
				edges++
			}
			if row+1 < m.GridSize && !m.grid[row][col].Walls[Bottom] {
				edges++
			}
		}
	}
	return edges
}

// Neighbors returns cells reachable from p through a single open wall
func (m *Maze) Neighbors(p Point) []Point {
	out := make([]Point, 0, 4)
	for _, d := range directions {
		r, c := p.Row+d.dRow, p.Col+d.dCol
		if m.inGrid(r, c) && !m.grid[p.Row][p.Col].Walls[d.side] {
			out = append(out, Point{r, c})
		}
	}
	return out
}
