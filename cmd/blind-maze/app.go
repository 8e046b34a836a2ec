package main

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blind-maze/config"
	"github.com/lixenwraith/blind-maze/game"
	"github.com/lixenwraith/blind-maze/input"
	"github.com/lixenwraith/blind-maze/render"
)

// muter is the optional audio side of a cue player
type muter interface {
	SetMuted(bool)
}

// app wires one terminal screen to one session; all methods run on the frame loop goroutine
type app struct {
	screen   tcell.Screen
	session  *game.Session
	renderer *render.Renderer
	steering *input.Steering
	keys     *input.KeyTable
	cues     game.CuePlayer
	clock    game.TimeProvider
	logger   *log.Logger
}

func newApp(screen tcell.Screen, cfg config.Config, keys *input.KeyTable, cues game.CuePlayer, clock game.TimeProvider, logger *log.Logger) (*app, error) {
	cols, rows := screen.Size()
	viewport := render.Fit(cols, rows, cfg.Size).Viewport()

	session, err := game.NewSession(cfg, viewport,
		game.WithClock(clock),
		game.WithCuePlayer(cues),
		game.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	a := &app{
		screen:   screen,
		session:  session,
		renderer: render.NewRenderer(),
		steering: input.NewSteering(cfg.KeyHold()),
		keys:     keys,
		cues:     cues,
		clock:    clock,
		logger:   logger,
	}
	a.applyMute(cfg.Mute)
	return a, nil
}

// handleEvent processes one terminal event; false means quit
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventResize:
		a.screen.Sync()
		a.refit()
	}
	return true
}

func (a *app) handleKey(ev *tcell.EventKey) bool {
	action := a.keys.Map(ev)

	switch action.Type {
	case input.ActionQuit:
		return false

	case input.ActionBegin:
		a.steering.Stop()
		if err := a.session.Begin(); err != nil {
			a.logger.Printf("[GAME] [ERROR] begin: %v", err)
		}

	case input.ActionReseed:
		a.steering.Stop()
		if err := a.session.Reseed(); err != nil {
			a.logger.Printf("[GAME] [ERROR] reseed: %v", err)
		}

	case input.ActionSteer:
		if a.session.Phase() == game.PhasePlaying {
			a.steering.Press(action.Dir, a.clock.Now())
		}

	case input.ActionStop:
		a.steering.Stop()

	case input.ActionTune:
		cfg := a.session.Config()
		a.setConfig(cfg.Tune(action.Param, action.Steps))

	case input.ActionToggleBlind:
		cfg := a.session.Config()
		cfg.Blind = !cfg.Blind
		a.setConfig(cfg)

	case input.ActionToggleMute:
		cfg := a.session.Config()
		cfg.Mute = !cfg.Mute
		a.setConfig(cfg)
	}
	return true
}

func (a *app) setConfig(cfg config.Config) {
	prev := a.session.Config()
	if err := a.session.SetConfig(cfg); err != nil {
		a.logger.Printf("[CONFIG] [WARN] rejected: %v", err)
		return
	}
	a.applyMute(cfg.Mute)
	a.steering.SetHold(cfg.KeyHold())
	if cfg.Size != prev.Size {
		a.refit()
	}
}

func (a *app) applyMute(muted bool) {
	if m, ok := a.cues.(muter); ok {
		m.SetMuted(muted)
	}
}

// refit stages a viewport matching the current screen and staged maze size
func (a *app) refit() {
	cols, rows := a.screen.Size()
	vp := render.Fit(cols, rows, a.session.Config().Size).Viewport()
	if err := a.session.Resize(vp); err != nil {
		a.logger.Printf("[GAME] [ERROR] resize: %v", err)
	}
}

// frame advances the session one tick and draws it
func (a *app) frame() {
	a.session.Tick(a.steering.Intent(a.clock.Now()))
	a.session.Frame()
	a.renderer.Draw(a.screen, a.session.Snapshot())
	a.screen.Show()
}
