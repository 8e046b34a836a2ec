package render

import (
	"github.com/gdamore/tcell/v2"
)

// Cell is one composited screen cell
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
	Bold bool
}

// Buffer is a compositor the renderer draws layers into before flushing
// the whole frame to a tcell screen
type Buffer struct {
	cells  []Cell
	width  int
	height int
	bg     RGB
}

// NewBuffer creates a buffer with the specified dimensions
func NewBuffer(width, height int, bg RGB) *Buffer {
	b := &Buffer{bg: bg}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to empty using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Fg: b.bg, Bg: b.bg}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Bounds returns the buffer dimensions
func (b *Buffer) Bounds() (int, int) {
	return b.width, b.height
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at (x, y), or an empty cell out of bounds
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Set writes a rune with foreground colour, keeping the cell background
func (b *Buffer) Set(x, y int, r rune, fg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	c := &b.cells[y*b.width+x]
	c.Rune = r
	c.Fg = fg
	c.Bold = false
}

// SetText writes s starting at (x, y) and returns the column after the last rune
func (b *Buffer) SetText(x, y int, s string, fg RGB, bold bool) int {
	for _, r := range s {
		if b.inBounds(x, y) {
			b.cells[y*b.width+x] = Cell{Rune: r, Fg: fg, Bg: b.cells[y*b.width+x].Bg, Bold: bold}
		}
		x++
	}
	return x
}

// Dim blends every cell toward c by alpha
func (b *Buffer) Dim(c RGB, alpha float64) {
	if alpha <= 0 {
		return
	}
	for i := range b.cells {
		b.cells[i].Fg = Blend(b.cells[i].Fg, c, alpha)
		b.cells[i].Bg = Blend(b.cells[i].Bg, c, alpha)
	}
}

// Flush copies the buffer to screen; the caller shows it
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			style := tcell.StyleDefault.Foreground(c.Fg.Color()).Background(c.Bg.Color()).Bold(c.Bold)
			screen.SetContent(x, y, r, nil, style)
		}
	}
}
