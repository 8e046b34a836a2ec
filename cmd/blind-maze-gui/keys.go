package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/blind-maze/config"
	"github.com/lixenwraith/blind-maze/input"
	"github.com/lixenwraith/blind-maze/vmath"
)

// steerKeys are polled every tick; a key counts for as long as it is down
var steerKeys = [...][]ebiten.Key{
	input.DirUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
	input.DirRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	input.DirDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
	input.DirLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
}

func tune(p config.Param, steps int) input.Action {
	return input.Action{Type: input.ActionTune, Param: p, Steps: steps}
}

// commandKeys fire once per press
var commandKeys = map[ebiten.Key]input.Action{
	ebiten.KeyEnter:  {Type: input.ActionBegin},
	ebiten.KeyR:      {Type: input.ActionReseed},
	ebiten.KeyEscape: {Type: input.ActionQuit},
	ebiten.KeyQ:      {Type: input.ActionQuit},
	ebiten.KeyTab:    {Type: input.ActionToggleBlind},
	ebiten.KeyM:      {Type: input.ActionToggleMute},

	ebiten.KeyBracketLeft:  tune(config.ParamCellSize, -1),
	ebiten.KeyBracketRight: tune(config.ParamCellSize, 1),
	ebiten.KeyMinus:        tune(config.ParamRadius, -1),
	ebiten.KeyEqual:        tune(config.ParamRadius, 1),
	ebiten.KeyComma:        tune(config.ParamSpeed, -1),
	ebiten.KeyPeriod:       tune(config.ParamSpeed, 1),
	ebiten.KeySemicolon:    tune(config.ParamFriction, -1),
	ebiten.KeyQuote:        tune(config.ParamFriction, 1),
	ebiten.KeyPageDown:     tune(config.ParamSize, -1),
	ebiten.KeyPageUp:       tune(config.ParamSize, 1),
}

// heldIntent sums the direction vectors of every steering key reported down by pressed
func heldIntent(pressed func(ebiten.Key) bool) vmath.Vec2 {
	var v vmath.Vec2
	for d, keys := range steerKeys {
		for _, k := range keys {
			if pressed(k) {
				v.AddInPlace(input.Direction(d).Vector())
				break
			}
		}
	}
	return v
}
