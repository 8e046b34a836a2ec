package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blind-maze/config"
)

// actionRegistry maps canonical action names to actions
// Used by the keymap loader to resolve TOML action strings to bindings
var actionRegistry = map[string]Action{
	// Unbind sentinel
	"none": {},

	"begin":        {Type: ActionBegin},
	"reseed":       {Type: ActionReseed},
	"quit":         {Type: ActionQuit},
	"stop":         {Type: ActionStop},
	"toggle_blind": {Type: ActionToggleBlind},
	"toggle_mute":  {Type: ActionToggleMute},

	"steer_up":    steer(DirUp),
	"steer_right": steer(DirRight),
	"steer_down":  steer(DirDown),
	"steer_left":  steer(DirLeft),

	"size_down":      tune(config.ParamSize, -1),
	"size_up":        tune(config.ParamSize, 1),
	"cell_size_down": tune(config.ParamCellSize, -1),
	"cell_size_up":   tune(config.ParamCellSize, 1),
	"speed_down":     tune(config.ParamSpeed, -1),
	"speed_up":       tune(config.ParamSpeed, 1),
	"friction_down":  tune(config.ParamFriction, -1),
	"friction_up":    tune(config.ParamFriction, 1),
	"radius_down":    tune(config.ParamRadius, -1),
	"radius_up":      tune(config.ParamRadius, 1),
}

// ActionByName returns the action registered under name
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}

// keyNames lists the special keys a keymap may bind
var keyNames = map[string]tcell.Key{
	"enter":     tcell.KeyEnter,
	"esc":       tcell.KeyEscape,
	"escape":    tcell.KeyEscape,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace2,
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"ctrl-c":    tcell.KeyCtrlC,
	"ctrl-q":    tcell.KeyCtrlQ,
	"ctrl-r":    tcell.KeyCtrlR,
}

// KeyByName resolves a lowercase special key name
func KeyByName(name string) (tcell.Key, bool) {
	k, ok := keyNames[name]
	return k, ok
}
