package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/blind-maze/config"
	"github.com/lixenwraith/blind-maze/game"
	"github.com/lixenwraith/blind-maze/maze"
	"github.com/lixenwraith/blind-maze/physics"
	"github.com/lixenwraith/blind-maze/vmath"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func rowText(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func screenText(screen tcell.Screen) string {
	_, h := screen.Size()
	rows := make([]string, h)
	for y := range rows {
		rows[y] = rowText(screen, y)
	}
	return strings.Join(rows, "\n")
}

func countRunes(screen tcell.Screen, set string) int {
	n := 0
	for _, r := range screenText(screen) {
		if strings.ContainsRune(set, r) {
			n++
		}
	}
	return n
}

const boxSet = "│─└┌├┘┴┐┤┬┼"

// snapshot builds a 3x3 maze fitted to an 80x24 screen
func snapshot(t *testing.T, phase game.Phase) game.Snapshot {
	t.Helper()
	cfg := config.Default()
	cfg.Size, cfg.CellSize = 300, 100

	proj := Fit(80, 24, cfg.Size)
	m, err := maze.Generate(maze.Params{Size: cfg.Size, CellSize: cfg.CellSize, Seed: 42, Viewport: proj.Viewport()})
	require.NoError(t, err)

	return game.Snapshot{
		Phase:    phase,
		Seed:     42,
		Maze:     m,
		Position: m.Entrance,
		Radius:   cfg.Radius,
		Active:   cfg,
		Pending:  cfg,
	}
}

func TestFit(t *testing.T) {
	p := Fit(80, 24, 300)
	// Rows bind: 2*300/22
	assert.InDelta(t, 600.0/22, p.Scale, 1e-9)
	assert.Equal(t, vmath.V2(80*p.Scale, 48*p.Scale), p.Viewport())

	wide := Fit(20, 100, 300)
	assert.InDelta(t, 15.0, wide.Scale, 1e-9, "columns bind")

	assert.Equal(t, 1.0, Fit(0, 0, 0).Scale)
}

func TestFitViewportRoundTrip(t *testing.T) {
	p := Fit(80, 24, 300)
	q := FitViewport(80, 24, p.Viewport())
	assert.InDelta(t, p.Scale, q.Scale, 1e-9)
	assert.Zero(t, q.OffsetX)
	assert.Zero(t, q.OffsetY)

	x, y := q.WorldToCell(vmath.V2(0, 0))
	assert.Equal(t, [2]int{0, 0}, [2]int{x, y})
	x, y = q.WorldToCell(vmath.V2(q.Scale*10.5, q.Scale*2*3.2))
	assert.Equal(t, [2]int{10, 3}, [2]int{x, y})

	c := q.CellCenter(10, 3)
	assert.Equal(t, vmath.V2(q.Scale*10.5, q.Scale*2*3.5), c)
}

func TestFitViewportCentersSmallerWorld(t *testing.T) {
	// Viewport produced for a 40x24 terminal shown on 80x24
	p := Fit(40, 24, 300)
	q := FitViewport(80, 24, p.Viewport())
	assert.InDelta(t, p.Scale, q.Scale, 1e-9)
	assert.Equal(t, 20, q.OffsetX)
}

func TestDrawIntro(t *testing.T) {
	screen := newScreen(t, 80, 24)
	NewRenderer().Draw(screen, snapshot(t, game.PhaseIntro))

	text := screenText(screen)
	assert.Contains(t, text, "Traverse the maze blindfolded while friends")
	assert.Contains(t, text, "Press [ENTER] to begin.")
	assert.Contains(t, rowText(screen, 0), "0.0 FPS")
	assert.Contains(t, rowText(screen, 0), "Time: 00:00:00")
	assert.Contains(t, rowText(screen, 23), "size 300")
	assert.Contains(t, rowText(screen, 23), "seed 42")
}

func TestDrawPlayingWalls(t *testing.T) {
	screen := newScreen(t, 80, 24)
	snap := snapshot(t, game.PhasePlaying)

	NewRenderer().Draw(screen, snap)
	assert.Greater(t, countRunes(screen, boxSet), 20)
	assert.Equal(t, 1, countRunes(screen, "●"), "player dot")
	assert.NotContains(t, screenText(screen), "Press [ENTER]")

	snap.Active.Blind = true
	NewRenderer().Draw(screen, snap)
	assert.Zero(t, countRunes(screen, boxSet), "blind hides walls")
	assert.Contains(t, rowText(screen, 23), "blind")

	// Walls come back once the round is over
	snap.Outcome = game.Outcome{Kind: game.OutcomeLost, Position: snap.Position, Status: physics.StatusWallHit}
	NewRenderer().Draw(screen, snap)
	assert.Greater(t, countRunes(screen, boxSet), 20)
	assert.Equal(t, 1, countRunes(screen, "✕"))
	assert.Zero(t, countRunes(screen, "●"))
}

func TestDrawTrail(t *testing.T) {
	screen := newScreen(t, 80, 24)
	snap := snapshot(t, game.PhasePlaying)
	p := snap.Maze.Entrance
	snap.Trail = []vmath.Vec2{p, p.Add(vmath.V2(0, 10))}
	snap.Position = p.Add(vmath.V2(0, 60))

	NewRenderer().Draw(screen, snap)
	assert.Equal(t, 1, countRunes(screen, "·"), "points sharing a cell collapse")
	assert.Equal(t, 1, countRunes(screen, "●"))
}

func TestDrawFinish(t *testing.T) {
	screen := newScreen(t, 80, 24)
	snap := snapshot(t, game.PhaseFinished)
	snap.Outcome = game.Outcome{Kind: game.OutcomeWon, Position: snap.Maze.Exit, Status: physics.StatusWin}
	snap.Elapsed = time.Hour + 2*time.Minute + 3*time.Second

	NewRenderer().Draw(screen, snap)
	text := screenText(screen)
	assert.Contains(t, text, "You win.")
	assert.Contains(t, text, "You played for 1 hours, 2 minutes, and 3 seconds.")
	assert.Contains(t, text, "Press [ENTER] to restart.")
	assert.Contains(t, rowText(screen, 0), "Time: 01:02:03")

	snap.Outcome.Kind = game.OutcomeLost
	NewRenderer().Draw(screen, snap)
	assert.Contains(t, screenText(screen), "You lose.")
}

func TestPanelHighlightsPending(t *testing.T) {
	screen := newScreen(t, 80, 24)
	snap := snapshot(t, game.PhasePlaying)
	snap.Pending.Speed = 25

	NewRenderer().Draw(screen, snap)
	row := rowText(screen, 23)
	require.Contains(t, row, "speed 25")

	x := strings.Index(row, "speed 25") + len("speed ")
	_, _, style, _ := screen.GetContent(x, 23)
	fg, _, _ := style.Decompose()
	assert.Equal(t, RgbPending.Color(), fg)
}

func TestBufferDimAndClear(t *testing.T) {
	b := NewBuffer(4, 2, RgbBackground)
	b.Set(1, 1, 'x', RgbText)
	b.Set(9, 9, 'y', RgbText)
	assert.Equal(t, 'x', b.Get(1, 1).Rune)
	assert.Equal(t, Cell{}, b.Get(9, 9))

	b.Dim(RGBBlack, 1)
	assert.Equal(t, RGBBlack, b.Get(1, 1).Fg)

	b.Clear()
	assert.Equal(t, rune(0), b.Get(1, 1).Rune)
	assert.Equal(t, RgbBackground, b.Get(1, 1).Bg)
}

func TestBlend(t *testing.T) {
	a, c := RGB{0, 0, 0}, RGB{200, 100, 50}
	assert.Equal(t, c, Blend(a, c, 1))
	assert.Equal(t, a, Blend(a, c, 0))
	assert.Equal(t, RGB{100, 50, 25}, Blend(a, c, 0.5))
	assert.Equal(t, RGB{0x23, 0x24, 0x24}, Hex(0x232424))
}

func TestFitPixels(t *testing.T) {
	p := FitPixels(800, 600, 300, 20)
	assert.InDelta(t, 560.0/300, p.Scale, 1e-9, "height minus hud bands is the limit")

	vp := p.Viewport()
	assert.InDelta(t, 800/p.Scale, vp.X, 1e-9)
	assert.InDelta(t, 600/p.Scale, vp.Y, 1e-9)

	back := FitPixelViewport(800, 600, vp)
	assert.InDelta(t, p.Scale, back.Scale, 1e-9)
	assert.InDelta(t, 0, back.OffsetX, 1e-6)
	assert.InDelta(t, 0, back.OffsetY, 1e-6)

	assert.Equal(t, 1.0, FitPixels(800, 600, 0, 20).Scale)
}

func TestFitPixelViewportCenters(t *testing.T) {
	p := FitPixelViewport(200, 100, vmath.V2(100, 100))
	assert.Equal(t, 1.0, p.Scale)
	assert.Equal(t, 50.0, p.OffsetX)
	assert.Equal(t, 0.0, p.OffsetY)

	x, y := p.ToScreen(vmath.V2(10, 20))
	assert.Equal(t, float32(60), x)
	assert.Equal(t, float32(20), y)
	assert.Equal(t, float32(5), p.Length(5))
}

func TestFade(t *testing.T) {
	assert.InDelta(t, 0.9, Fade(1, 0), 1e-9)
	assert.InDelta(t, 0.1, Fade(0, 1), 1e-9)
	assert.Equal(t, 0.0, Fade(0.004, 0), "snaps when close")
	assert.Equal(t, 1.0, Fade(0.996, 1))
}

func TestPlayedFor(t *testing.T) {
	assert.Equal(t, "You played for 1 hours, 2 minutes, and 3 seconds.", PlayedFor(time.Hour+2*time.Minute+3*time.Second))
	c := Hex(0x94c8d4).RGBA()
	assert.Equal(t, [4]uint8{0x94, 0xc8, 0xd4, 0xff}, [4]uint8{c.R, c.G, c.B, c.A})
}
