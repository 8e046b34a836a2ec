package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/blind-maze/config"
	"github.com/lixenwraith/blind-maze/game"
	"github.com/lixenwraith/blind-maze/input"
	"github.com/lixenwraith/blind-maze/maze"
	"github.com/lixenwraith/blind-maze/render"
	"github.com/lixenwraith/blind-maze/vmath"
)

const (
	hudHeight   = 48.0 // Pixels kept free of maze above and below
	wallWidth   = 2
	trailWidth  = 2
	strokeWidth = 3
)

// muter is the optional audio side of a cue player
type muter interface {
	SetMuted(bool)
}

// Game implements ebiten.Game over one session
type Game struct {
	session *game.Session
	cues    game.CuePlayer
	logger  *log.Logger
	fonts   *fonts

	width, height int
	resized       bool
	backdrop      float64
	keys          []ebiten.Key
}

// NewGame builds a session sized for a w×h window
func NewGame(cfg config.Config, w, h int, cues game.CuePlayer, f *fonts, logger *log.Logger) (*Game, error) {
	viewport := render.FitPixels(w, h, cfg.Size, hudHeight).Viewport()
	session, err := game.NewSession(cfg, viewport,
		game.WithCuePlayer(cues),
		game.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	g := &Game{
		session:  session,
		cues:     cues,
		logger:   logger,
		fonts:    f,
		width:    w,
		height:   h,
		backdrop: 1,
	}
	g.applyMute(cfg.Mute)
	return g, nil
}

// Update runs one tick: commands first, then steering
func (g *Game) Update() error {
	if g.resized {
		g.resized = false
		g.refit()
	}

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		action, ok := commandKeys[k]
		if !ok {
			continue
		}
		if err := g.apply(action); err != nil {
			return err
		}
	}

	g.session.Tick(heldIntent(ebiten.IsKeyPressed))
	g.session.Frame()
	return nil
}

// apply executes a command action; quitting returns ebiten.Termination
func (g *Game) apply(action input.Action) error {
	switch action.Type {
	case input.ActionQuit:
		return ebiten.Termination

	case input.ActionBegin:
		if err := g.session.Begin(); err != nil {
			g.logger.Printf("[GAME] [ERROR] begin: %v", err)
		}

	case input.ActionReseed:
		if err := g.session.Reseed(); err != nil {
			g.logger.Printf("[GAME] [ERROR] reseed: %v", err)
		}

	case input.ActionTune:
		g.setConfig(g.session.Config().Tune(action.Param, action.Steps))

	case input.ActionToggleBlind:
		cfg := g.session.Config()
		cfg.Blind = !cfg.Blind
		g.setConfig(cfg)

	case input.ActionToggleMute:
		cfg := g.session.Config()
		cfg.Mute = !cfg.Mute
		g.setConfig(cfg)
	}
	return nil
}

func (g *Game) setConfig(cfg config.Config) {
	prev := g.session.Config()
	if err := g.session.SetConfig(cfg); err != nil {
		g.logger.Printf("[CONFIG] [WARN] rejected: %v", err)
		return
	}
	g.applyMute(cfg.Mute)
	if cfg.Size != prev.Size {
		g.refit()
	}
}

func (g *Game) applyMute(muted bool) {
	if m, ok := g.cues.(muter); ok {
		m.SetMuted(muted)
	}
}

// refit stages a viewport matching the window and the staged maze size
func (g *Game) refit() {
	vp := render.FitPixels(g.width, g.height, g.session.Config().Size, hudHeight).Viewport()
	if err := g.session.Resize(vp); err != nil {
		g.logger.Printf("[GAME] [ERROR] resize: %v", err)
	}
}

// Layout follows the window size; a change is applied on the next Update
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.resized = true
	}
	return g.width, g.height
}

// Draw renders the current snapshot
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.RgbBackground.RGBA())
	snap := g.session.Snapshot()

	if snap.Maze != nil {
		proj := render.FitPixelViewport(g.width, g.height, snap.Maze.Viewport)
		drawTrail(screen, proj, snap.Trail)
		drawPlayer(screen, proj, snap)
		if snap.WallsVisible() {
			drawWalls(screen, proj, snap.Maze)
		}
	}

	target := 1.0
	if snap.Phase == game.PhasePlaying {
		target = 0
	}
	g.backdrop = render.Fade(g.backdrop, target)
	if g.backdrop > 0 {
		vector.DrawFilledRect(screen, 0, 0, float32(g.width), float32(g.height),
			color.NRGBA{A: uint8(g.backdrop * 255)}, false)
	}

	g.drawHUD(screen, snap)

	cx, cy := float64(g.width)/2, float64(g.height)/2
	switch snap.Phase {
	case game.PhaseIntro:
		g.drawIntro(screen, cx, cy)
	case game.PhaseFinished:
		g.drawFinish(screen, cx, cy, snap)
	}
}

func drawTrail(screen *ebiten.Image, proj render.PixelProjection, trail []vmath.Vec2) {
	clr := render.RgbPath.RGBA()
	for i := 1; i < len(trail); i++ {
		x0, y0 := proj.ToScreen(trail[i-1])
		x1, y1 := proj.ToScreen(trail[i])
		vector.StrokeLine(screen, x0, y0, x1, y1, trailWidth, clr, true)
	}
}

func drawPlayer(screen *ebiten.Image, proj render.PixelProjection, snap game.Snapshot) {
	r := proj.Length(snap.Radius)
	switch snap.Outcome.Kind {
	case game.OutcomePlaying:
		x, y := proj.ToScreen(snap.Position)
		vector.DrawFilledCircle(screen, x, y, r, render.RgbPlayer.RGBA(), true)
		vector.StrokeCircle(screen, x, y, r, strokeWidth, render.RgbPlayerStroke.RGBA(), true)
	case game.OutcomeWon:
		x, y := proj.ToScreen(snap.Maze.Exit)
		vector.DrawFilledCircle(screen, x, y, r, render.RgbPath.RGBA(), true)
		vector.StrokeCircle(screen, x, y, r, strokeWidth, render.RgbPathStroke.RGBA(), true)
	case game.OutcomeLost:
		x, y := proj.ToScreen(snap.Outcome.Position)
		clr := render.RgbPlayerStroke.RGBA()
		vector.StrokeLine(screen, x-r, y-r, x+r, y+r, strokeWidth, clr, true)
		vector.StrokeLine(screen, x+r, y-r, x-r, y+r, strokeWidth, clr, true)
	}
}

// drawWalls strokes each cell's top and left walls, plus the outer bottom and right edges
func drawWalls(screen *ebiten.Image, proj render.PixelProjection, m *maze.Maze) {
	clr := render.RgbMaze.RGBA()
	line := func(a, b vmath.Vec2) {
		x0, y0 := proj.ToScreen(a)
		x1, y1 := proj.ToScreen(b)
		vector.StrokeLine(screen, x0, y0, x1, y1, wallWidth, clr, true)
	}

	n, cs := m.GridSize, m.CellSize
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			o := m.CellOrigin(row, col)
			if m.HasWall(row, col, maze.Top) {
				line(o, o.Add(vmath.V2(cs, 0)))
			}
			if m.HasWall(row, col, maze.Left) {
				line(o, o.Add(vmath.V2(0, cs)))
			}
			if row == n-1 && m.HasWall(row, col, maze.Bottom) {
				line(o.Add(vmath.V2(0, cs)), o.Add(vmath.V2(cs, cs)))
			}
			if col == n-1 && m.HasWall(row, col, maze.Right) {
				line(o.Add(vmath.V2(cs, 0)), o.Add(vmath.V2(cs, cs)))
			}
		}
	}
}

// panelItem is one config readout; pending values wait for the next round
type panelItem struct {
	label, value string
	pending      bool
}

func (g *Game) drawHUD(screen *ebiten.Image, snap game.Snapshot) {
	white := render.RgbText.RGBA()
	g.fonts.draw(screen, fmt.Sprintf("%.1f FPS", snap.FPS), 12, 12, g.fonts.small, white, text.AlignStart)

	timer := "Time: " + game.FormatElapsed(snap.Elapsed)
	g.fonts.draw(screen, timer, float64(g.width)-12, 12, g.fonts.small, white, text.AlignEnd)

	a, p := snap.Active, snap.Pending
	items := []panelItem{
		{"size", fmt.Sprintf("%g", p.Size), p.Size != a.Size},
		{"cell", fmt.Sprintf("%g", p.CellSize), p.CellSize != a.CellSize},
		{"speed", fmt.Sprintf("%g", p.Speed), p.Speed != a.Speed},
		{"friction", fmt.Sprintf("%.2f", p.Friction), p.Friction != a.Friction},
		{"radius", fmt.Sprintf("%g", p.Radius), p.Radius != a.Radius},
		{"seed", fmt.Sprintf("%d", snap.Seed), false},
	}
	if a.Blind {
		items = append(items, panelItem{value: "blind", pending: true})
	}
	if a.Mute {
		items = append(items, panelItem{value: "mute", pending: true})
	}

	x, y := 12.0, float64(g.height)-12-g.fonts.small.Size
	for _, it := range items {
		if it.label != "" {
			x += g.fonts.draw(screen, it.label+" ", x, y, g.fonts.small, render.RgbTextDim.RGBA(), text.AlignStart)
		}
		clr := white
		if it.pending {
			clr = render.RgbPending.RGBA()
		}
		x += g.fonts.draw(screen, it.value, x, y, g.fonts.small, clr, text.AlignStart) + 16
	}
}

func (g *Game) drawIntro(screen *ebiten.Image, cx, cy float64) {
	white := render.RgbText.RGBA()
	y := cy - 200
	for _, line := range render.IntroLines {
		if line == "" {
			y += 10
			continue
		}
		g.fonts.draw(screen, line, cx, y, g.fonts.body, white, text.AlignCenter)
		y += 30
	}
	g.fonts.draw(screen, "Press [ENTER] to begin.", cx, cy, g.fonts.title, white, text.AlignCenter)
	for i, line := range render.HelpLines {
		g.fonts.draw(screen, line, cx, cy+80+float64(i)*24, g.fonts.small, render.RgbTextDim.RGBA(), text.AlignCenter)
	}
}

func (g *Game) drawFinish(screen *ebiten.Image, cx, cy float64, snap game.Snapshot) {
	white := render.RgbText.RGBA()
	word, clr := "lose.", render.RgbLose.RGBA()
	if snap.Outcome.Kind == game.OutcomeWon {
		word, clr = "win.", render.RgbWin.RGBA()
	}
	g.fonts.draw(screen, "You", cx-8, cy-200, g.fonts.title, white, text.AlignEnd)
	g.fonts.draw(screen, word, cx+8, cy-200, g.fonts.title, clr, text.AlignStart)
	g.fonts.draw(screen, render.PlayedFor(snap.Elapsed), cx, cy-150, g.fonts.body, white, text.AlignCenter)
	g.fonts.draw(screen, "Press [ENTER] to restart.", cx, cy, g.fonts.title, white, text.AlignCenter)
}
