// Package render draws game snapshots onto a tcell screen.
//
// The world is rasterised into a Buffer at the projection's scale, walls as
// box-drawing glyphs, then faded by the intro/finish backdrop and overlaid
// with HUD text before a single flush.
package render

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blind-maze/game"
	"github.com/lixenwraith/blind-maze/maze"
	"github.com/lixenwraith/blind-maze/vmath"
)

// BackdropRate is the per-frame approach of the overlay fade
const BackdropRate = 0.1

const (
	glyphTrail  = '·'
	glyphPlayer = '●'
	glyphFill   = '█'
	glyphLoss   = '✕'
)

// Wall connection bits per screen cell
const (
	linkUp uint8 = 1 << iota
	linkRight
	linkDown
	linkLeft
	markH // Isolated horizontal stub
	markV // Isolated vertical stub
)

// boxGlyphs is indexed by the four link bits
var boxGlyphs = []rune(" │─└││┌├─┘─┴┐┤┬┼")

// IntroLines explain the game on the intro screen
var IntroLines = []string{
	"Traverse the maze blindfolded while friends",
	"can either direct you in directions or tell you to stop.",
	"You lose if you hit a wall, you win if you escape the maze.",
	"",
	"WASD/Arrow Keys to move.",
	"Adjust the difficulty of the game by changing the game configuration.",
}

// HelpLines list the keys below the intro text
var HelpLines = []string{
	"[ ] cell   - = radius   , . speed   ; ' friction   < > size",
	"TAB blind   M mute   R new maze   Q quit",
}

// Renderer composes snapshots; it keeps only the fade state between frames
type Renderer struct {
	buf      *Buffer
	links    []uint8
	backdrop float64
}

// NewRenderer starts fully faded, matching the intro screen
func NewRenderer() *Renderer {
	return &Renderer{
		buf:      NewBuffer(0, 0, RgbBackground),
		backdrop: 1,
	}
}

// Draw renders snap to screen; the caller calls Show
func (r *Renderer) Draw(screen tcell.Screen, snap game.Snapshot) {
	cols, rows := screen.Size()
	if w, h := r.buf.Bounds(); w != cols || h != rows {
		r.buf.Resize(cols, rows)
	} else {
		r.buf.Clear()
	}

	if snap.Maze != nil {
		proj := FitViewport(cols, rows, snap.Maze.Viewport)
		r.drawTrail(proj, snap.Trail)
		r.drawPlayer(proj, snap)
		if snap.WallsVisible() {
			r.drawWalls(proj, snap.Maze)
		}
	}

	target := 1.0
	if snap.Phase == game.PhasePlaying {
		target = 0
	}
	r.backdrop = Fade(r.backdrop, target)
	r.buf.Dim(RgbBackdrop, r.backdrop)

	r.drawHUD(snap)
	r.drawPanel(snap)

	switch snap.Phase {
	case game.PhaseIntro:
		r.drawIntro()
	case game.PhaseFinished:
		r.drawFinish(snap)
	}

	r.buf.Flush(screen)
}

// Fade moves a backdrop opacity one frame toward target, snapping when close
func Fade(current, target float64) float64 {
	return settle(Lerp(current, target, BackdropRate))
}

func settle(v float64) float64 {
	if v < 0.005 {
		return 0
	}
	if v > 0.995 {
		return 1
	}
	return v
}

func (r *Renderer) drawTrail(proj Projection, trail []vmath.Vec2) {
	for _, p := range trail {
		x, y := proj.WorldToCell(p)
		r.buf.Set(x, y, glyphTrail, RgbPath)
	}
}

func (r *Renderer) drawPlayer(proj Projection, snap game.Snapshot) {
	switch snap.Outcome.Kind {
	case game.OutcomePlaying:
		r.drawDisk(proj, snap.Position, snap.Radius, RgbPlayer)
	case game.OutcomeWon:
		r.drawDisk(proj, snap.Maze.Exit, snap.Radius, RgbPath)
	case game.OutcomeLost:
		x, y := proj.WorldToCell(snap.Outcome.Position)
		r.buf.Set(x, y, glyphLoss, RgbPlayer)
	}
}

// drawDisk fills cells whose centres lie within radius; small disks collapse to one glyph
func (r *Renderer) drawDisk(proj Projection, center vmath.Vec2, radius float64, fg RGB) {
	cx, cy := proj.WorldToCell(center)
	if radius < proj.Scale {
		r.buf.Set(cx, cy, glyphPlayer, fg)
		return
	}

	rx := int(math.Ceil(radius / proj.Scale))
	ry := int(math.Ceil(radius / (2 * proj.Scale)))
	for y := cy - ry; y <= cy+ry; y++ {
		for x := cx - rx; x <= cx+rx; x++ {
			if proj.CellCenter(x, y).Distance(center) <= radius {
				r.buf.Set(x, y, glyphFill, fg)
			}
		}
	}
	r.buf.Set(cx, cy, glyphFill, fg)
}

func (r *Renderer) drawWalls(proj Projection, m *maze.Maze) {
	cols, rows := r.buf.Bounds()
	if cap(r.links) < cols*rows {
		r.links = make([]uint8, cols*rows)
	} else {
		r.links = r.links[:cols*rows]
		clear(r.links)
	}

	for row := 0; row < m.GridSize; row++ {
		for col := 0; col < m.GridSize; col++ {
			o := m.CellOrigin(row, col)
			far := o.Add(vmath.V2(m.CellSize, m.CellSize))
			if m.HasWall(row, col, maze.Top) {
				r.linkH(proj, o, vmath.V2(far.X, o.Y))
			}
			if m.HasWall(row, col, maze.Bottom) {
				r.linkH(proj, vmath.V2(o.X, far.Y), far)
			}
			if m.HasWall(row, col, maze.Left) {
				r.linkV(proj, o, vmath.V2(o.X, far.Y))
			}
			if m.HasWall(row, col, maze.Right) {
				r.linkV(proj, vmath.V2(far.X, o.Y), far)
			}
		}
	}

	for i, l := range r.links {
		if l == 0 {
			continue
		}
		g := boxGlyphs[l&0x0F]
		if g == ' ' {
			if l&markV != 0 {
				g = '│'
			} else {
				g = '─'
			}
		}
		r.buf.Set(i%cols, i/cols, g, RgbMaze)
	}
}

func (r *Renderer) link(x, y int, bits uint8) {
	cols, rows := r.buf.Bounds()
	if x < 0 || x >= cols || y < 0 || y >= rows {
		return
	}
	r.links[y*cols+x] |= bits
}

func (r *Renderer) linkH(proj Projection, a, b vmath.Vec2) {
	x0, y := proj.WorldToCell(a)
	x1, _ := proj.WorldToCell(b)
	if x0 == x1 {
		r.link(x0, y, markH)
		return
	}
	for x := x0; x <= x1; x++ {
		var bits uint8
		if x > x0 {
			bits |= linkLeft
		}
		if x < x1 {
			bits |= linkRight
		}
		r.link(x, y, bits)
	}
}

func (r *Renderer) linkV(proj Projection, a, b vmath.Vec2) {
	x, y0 := proj.WorldToCell(a)
	_, y1 := proj.WorldToCell(b)
	if y0 == y1 {
		r.link(x, y0, markV)
		return
	}
	for y := y0; y <= y1; y++ {
		var bits uint8
		if y > y0 {
			bits |= linkUp
		}
		if y < y1 {
			bits |= linkDown
		}
		r.link(x, y, bits)
	}
}

func (r *Renderer) drawHUD(snap game.Snapshot) {
	cols, _ := r.buf.Bounds()
	r.buf.SetText(1, 0, fmt.Sprintf("%.1f FPS", snap.FPS), RgbText, true)

	timer := "Time: " + game.FormatElapsed(snap.Elapsed)
	r.buf.SetText(cols-len(timer)-1, 0, timer, RgbText, true)
}

// drawPanel lists the staged config on the bottom row; values that differ
// from the running round are highlighted until the next round picks them up
func (r *Renderer) drawPanel(snap game.Snapshot) {
	_, rows := r.buf.Bounds()
	a, p := snap.Active, snap.Pending

	items := []struct {
		label, value string
		pending      bool
	}{
		{"size", fmt.Sprintf("%g", p.Size), p.Size != a.Size},
		{"cell", fmt.Sprintf("%g", p.CellSize), p.CellSize != a.CellSize},
		{"speed", fmt.Sprintf("%g", p.Speed), p.Speed != a.Speed},
		{"friction", fmt.Sprintf("%.2f", p.Friction), p.Friction != a.Friction},
		{"radius", fmt.Sprintf("%g", p.Radius), p.Radius != a.Radius},
		{"seed", fmt.Sprintf("%d", snap.Seed), false},
	}

	x := 1
	for _, it := range items {
		x = r.buf.SetText(x, rows-1, it.label+" ", RgbTextDim, false)
		fg := RgbText
		if it.pending {
			fg = RgbPending
		}
		x = r.buf.SetText(x, rows-1, it.value, fg, true)
		x += 2
	}
	if a.Blind {
		x = r.buf.SetText(x, rows-1, "blind", RgbPending, true) + 2
	}
	if a.Mute {
		r.buf.SetText(x, rows-1, "mute", RgbPending, true)
	}
}

func (r *Renderer) centerText(y int, s string, fg RGB, bold bool) int {
	cols, _ := r.buf.Bounds()
	x := max((cols-len([]rune(s)))/2, 0)
	r.buf.SetText(x, y, s, fg, bold)
	return x
}

func (r *Renderer) drawIntro() {
	_, rows := r.buf.Bounds()
	mid := rows / 2

	y := mid - len(IntroLines) - 1
	for _, line := range IntroLines {
		r.centerText(y, line, RgbText, false)
		y++
	}
	r.centerText(mid, "Press [ENTER] to begin.", RgbText, true)
	for i, line := range HelpLines {
		r.centerText(mid+2+i, line, RgbTextDim, false)
	}
}

func (r *Renderer) drawFinish(snap game.Snapshot) {
	_, rows := r.buf.Bounds()
	mid := rows / 2

	word, fg := "lose.", RgbLose
	if snap.Outcome.Kind == game.OutcomeWon {
		word, fg = "win.", RgbWin
	}
	x := r.centerText(mid-3, "You "+word, RgbText, true)
	r.buf.SetText(x+len("You "), mid-3, word, fg, true)

	r.centerText(mid-2, PlayedFor(snap.Elapsed), RgbText, false)
	r.centerText(mid, "Press [ENTER] to restart.", RgbText, true)
}

// PlayedFor is the finish screen's round duration line
func PlayedFor(d time.Duration) string {
	h, m, s := game.Clock(d)
	return fmt.Sprintf("You played for %d hours, %d minutes, and %d seconds.", h, m, s)
}
