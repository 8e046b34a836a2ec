package main

import (
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/blind-maze/config"
	"github.com/lixenwraith/blind-maze/game"
	"github.com/lixenwraith/blind-maze/input"
)

type cueLog struct {
	cues  []game.Cue
	muted bool
}

func (c *cueLog) Play(cue game.Cue) { c.cues = append(c.cues, cue) }
func (c *cueLog) SetMuted(muted bool) { c.muted = muted }

type fixture struct {
	app    *app
	screen tcell.SimulationScreen
	clock  *game.MockTimeProvider
	cues   *cueLog
}

func newFixture(t *testing.T, cfg config.Config) *fixture {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	clock := game.NewMockTimeProvider(time.Unix(1_700_000_000, 0))
	cues := &cueLog{}
	a, err := newApp(screen, cfg, input.DefaultKeyTable(), cues, clock, log.New(io.Discard, "", 0))
	require.NoError(t, err)
	return &fixture{app: a, screen: screen, clock: clock, cues: cues}
}

func (f *fixture) key(k tcell.Key) bool {
	return f.app.handleEvent(tcell.NewEventKey(k, 0, tcell.ModNone))
}

func (f *fixture) press(r rune) bool {
	return f.app.handleEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
}

func (f *fixture) frames(n int) {
	for i := 0; i < n; i++ {
		f.clock.Advance(frameInterval)
		f.app.frame()
	}
}

func seeded() config.Config {
	cfg := config.Default()
	cfg.Seed = 42
	return cfg
}

func TestQuitKeys(t *testing.T) {
	f := newFixture(t, seeded())
	assert.True(t, f.press('x'))
	assert.False(t, f.press('q'))
	assert.False(t, f.key(tcell.KeyEscape))
	assert.False(t, f.app.handleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
}

func TestEnterBeginsRound(t *testing.T) {
	f := newFixture(t, seeded())
	assert.Equal(t, game.PhaseIntro, f.app.session.Phase())

	// Steering is ignored before the round starts
	f.press('s')
	assert.True(t, f.app.steering.Intent(f.clock.Now()).IsZero())

	require.True(t, f.key(tcell.KeyEnter))
	assert.Equal(t, game.PhasePlaying, f.app.session.Phase())
	assert.Equal(t, []game.Cue{game.CueStart}, f.cues.cues)
	assert.EqualValues(t, 42, f.app.session.Seed())
}

func TestSteeringMovesPlayer(t *testing.T) {
	f := newFixture(t, seeded())
	f.key(tcell.KeyEnter)
	start := f.app.session.Round().Body.Position

	f.press('s')
	f.frames(1)
	pos := f.app.session.Round().Body.Position
	assert.Greater(t, pos.Y, start.Y, "down moves +Y")
	assert.Equal(t, start.X, pos.X)

	// Space releases; friction bleeds off the velocity
	f.press(' ')
	f.frames(20)
	assert.InDelta(t, 0, f.app.session.Round().Body.Velocity.Magnitude(), 1e-3)
}

func TestReseedChangesSeed(t *testing.T) {
	f := newFixture(t, seeded())
	f.press('r')
	assert.Equal(t, game.PhasePlaying, f.app.session.Phase())
	assert.NotEqual(t, int64(0), f.app.session.Seed())
}

func TestTuneStagesConfig(t *testing.T) {
	f := newFixture(t, seeded())
	f.key(tcell.KeyEnter)

	f.press('.')
	assert.Equal(t, config.DefaultSpeed+1, f.app.session.Config().Speed)
	assert.Equal(t, config.DefaultSpeed, f.app.session.Round().Motion.Speed, "running round keeps its speed")

	f.key(tcell.KeyEnter)
	assert.Equal(t, config.DefaultSpeed+1, f.app.session.Round().Motion.Speed)
}

func TestToggles(t *testing.T) {
	f := newFixture(t, seeded())

	f.key(tcell.KeyTab)
	assert.True(t, f.app.session.Config().Blind)
	assert.True(t, f.app.session.Snapshot().Active.Blind)

	f.press('m')
	assert.True(t, f.app.session.Config().Mute)
	assert.True(t, f.cues.muted)
	f.press('m')
	assert.False(t, f.cues.muted)
}

func TestKeyHoldFollowsConfig(t *testing.T) {
	f := newFixture(t, seeded())
	f.key(tcell.KeyEnter)

	f.press('d')
	f.clock.Advance(time.Second)
	assert.True(t, f.app.steering.Intent(f.clock.Now()).IsZero(), "default hold expires")

	cfg := f.app.session.Config()
	cfg.KeyHoldMs = 0
	f.app.setConfig(cfg)

	f.press('d')
	f.clock.Advance(time.Second)
	assert.Equal(t, 1.0, f.app.steering.Intent(f.clock.Now()).X, "zero hold latches until stop")

	f.press(' ')
	assert.True(t, f.app.steering.Intent(f.clock.Now()).IsZero())
}

func TestResizeRefitsIntro(t *testing.T) {
	f := newFixture(t, seeded())
	before := f.app.session.Round().Maze.Viewport

	f.screen.SetSize(120, 40)
	f.app.handleEvent(tcell.NewEventResize(120, 40))
	assert.NotEqual(t, before, f.app.session.Round().Maze.Viewport)
}

func TestFrameDrawsIntro(t *testing.T) {
	f := newFixture(t, seeded())
	f.frames(1)

	w, _ := f.screen.Size()
	found := false
	for y := 0; y < 24 && !found; y++ {
		line := make([]rune, 0, w)
		for x := 0; x < w; x++ {
			r, _, _, _ := f.screen.GetContent(x, y)
			line = append(line, r)
		}
		found = strings.Contains(string(line), "Press [ENTER] to begin.")
	}
	assert.True(t, found)
}
