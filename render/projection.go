package render

import (
	"math"

	"github.com/lixenwraith/blind-maze/vmath"
)

// HUDRows are kept free of maze so the top bar and config panel never overlap walls
const HUDRows = 2

// Projection maps world units to terminal cells
// Terminal cells are roughly twice as tall as wide, so one row spans 2*Scale
type Projection struct {
	Scale      float64 // World units per column
	Cols, Rows int
	OffsetX    int // Screen column of world x = 0
	OffsetY    int // Screen row of world y = 0
}

// Fit picks the scale at which a size×size maze fits a cols×rows screen
// with HUDRows to spare
func Fit(cols, rows int, size float64) Projection {
	cols, rows = max(cols, 1), max(rows, 1)
	avail := max(rows-HUDRows, 1)

	s := math.Max(size/float64(cols), 2*size/float64(avail))
	if s <= 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		s = 1
	}
	return Projection{Scale: s, Cols: cols, Rows: rows}
}

// FitViewport fits world extent vp into a cols×rows screen, centred
func FitViewport(cols, rows int, vp vmath.Vec2) Projection {
	cols, rows = max(cols, 1), max(rows, 1)

	s := math.Max(vp.X/float64(cols), vp.Y/(2*float64(rows)))
	if s <= 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		return Projection{Scale: 1, Cols: cols, Rows: rows}
	}

	// Epsilon absorbs rounding when vp came from Fit on the same screen
	usedCols := int(math.Ceil(vp.X/s - 1e-9))
	usedRows := int(math.Ceil(vp.Y/(2*s) - 1e-9))
	return Projection{
		Scale:   s,
		Cols:    cols,
		Rows:    rows,
		OffsetX: max((cols-usedCols)/2, 0),
		OffsetY: max((rows-usedRows)/2, 0),
	}
}

// Viewport returns the world extent covered by the whole screen
func (p Projection) Viewport() vmath.Vec2 {
	return vmath.V2(float64(p.Cols)*p.Scale, float64(p.Rows)*2*p.Scale)
}

// WorldToCell returns the screen cell containing world point v
func (p Projection) WorldToCell(v vmath.Vec2) (x, y int) {
	return p.OffsetX + int(math.Floor(v.X/p.Scale)),
		p.OffsetY + int(math.Floor(v.Y/(2*p.Scale)))
}

// CellCenter returns the world point at the centre of screen cell (x, y)
func (p Projection) CellCenter(x, y int) vmath.Vec2 {
	return vmath.V2(
		(float64(x-p.OffsetX)+0.5)*p.Scale,
		(float64(y-p.OffsetY)+0.5)*2*p.Scale,
	)
}
