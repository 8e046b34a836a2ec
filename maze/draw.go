package maze

import (
	"bufio"
	"io"
	"strings"
)

// Glyphs used by Draw, each two columns wide to keep cells roughly square
const (
	glyphWall     = "██"
	glyphOpen     = "  "
	glyphPath     = "••"
	glyphEntrance = "SS"
	glyphExit     = "EE"
)

// Draw writes the maze as a (2n+1)x(2n+1) block map
// Cells on path are marked; nil path draws walls only
func (m *Maze) Draw(w io.Writer, path []Point) error {
	size := 2*m.GridSize + 1
	canvas := make([][]string, size)
	for y := range canvas {
		canvas[y] = make([]string, size)
		for x := range canvas[y] {
			canvas[y][x] = glyphWall
		}
	}

	for row := 0; row < m.GridSize; row++ {
		for col := 0; col < m.GridSize; col++ {
			y, x := 2*row+1, 2*col+1
			canvas[y][x] = glyphOpen
			c := m.grid[row][col]
			if !c.Walls[Top] {
				canvas[y-1][x] = glyphOpen
			}
			if !c.Walls[Right] {
				canvas[y][x+1] = glyphOpen
			}
			if !c.Walls[Bottom] {
				canvas[y+1][x] = glyphOpen
			}
			if !c.Walls[Left] {
				canvas[y][x-1] = glyphOpen
			}
		}
	}

	// Mark path cells and the passages between consecutive ones
	for i, p := range path {
		if !m.Contains(p) {
			continue
		}
		canvas[2*p.Row+1][2*p.Col+1] = glyphPath
		if i > 0 {
			prev := path[i-1]
			canvas[p.Row+prev.Row+1][p.Col+prev.Col+1] = glyphPath
		}
	}

	canvas[0][2*m.EntranceCol+1] = glyphEntrance
	canvas[size-1][2*m.ExitCol+1] = glyphExit

	bw := bufio.NewWriter(w)
	for _, line := range canvas {
		if _, err := bw.WriteString(strings.Join(line, "")); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// String renders the maze without a path
func (m *Maze) String() string {
	var sb strings.Builder
	_ = m.Draw(&sb, nil)
	return sb.String()
}
