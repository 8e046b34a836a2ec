// Package input translates terminal key events into game actions and turns
// direction key presses into a steering vector.
package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blind-maze/config"
)

// ActionType classifies what a key does
type ActionType uint8

const (
	ActionNone ActionType = iota
	ActionBegin
	ActionReseed
	ActionQuit
	ActionSteer
	ActionStop
	ActionTune
	ActionToggleBlind
	ActionToggleMute
)

// Direction is one of the four steering keys
type Direction uint8

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// Action describes a key's effect without function pointers
type Action struct {
	Type  ActionType
	Dir   Direction    // ActionSteer
	Param config.Param // ActionTune
	Steps int          // ActionTune, signed
}

// KeyTable maps keys to actions
type KeyTable struct {
	// Special keys (Enter, Esc, arrows, Ctrl+*)
	SpecialKeys map[tcell.Key]Action

	// Printable rune bindings
	Runes map[rune]Action
}

func steer(d Direction) Action { return Action{Type: ActionSteer, Dir: d} }

func tune(p config.Param, steps int) Action {
	return Action{Type: ActionTune, Param: p, Steps: steps}
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Action{
			tcell.KeyEnter:  {Type: ActionBegin},
			tcell.KeyEscape: {Type: ActionQuit},
			tcell.KeyCtrlC:  {Type: ActionQuit},
			tcell.KeyTab:    {Type: ActionToggleBlind},
			tcell.KeyUp:     steer(DirUp),
			tcell.KeyRight:  steer(DirRight),
			tcell.KeyDown:   steer(DirDown),
			tcell.KeyLeft:   steer(DirLeft),
		},

		Runes: map[rune]Action{
			'r': {Type: ActionReseed},
			'q': {Type: ActionQuit},
			'm': {Type: ActionToggleMute},
			' ': {Type: ActionStop},

			'w': steer(DirUp),
			'd': steer(DirRight),
			's': steer(DirDown),
			'a': steer(DirLeft),
			'W': steer(DirUp),
			'D': steer(DirRight),
			'S': steer(DirDown),
			'A': steer(DirLeft),

			'[':  tune(config.ParamCellSize, -1),
			']':  tune(config.ParamCellSize, 1),
			'-':  tune(config.ParamRadius, -1),
			'=':  tune(config.ParamRadius, 1),
			',':  tune(config.ParamSpeed, -1),
			'.':  tune(config.ParamSpeed, 1),
			';':  tune(config.ParamFriction, -1),
			'\'': tune(config.ParamFriction, 1),
			'<':  tune(config.ParamSize, -1),
			'>':  tune(config.ParamSize, 1),
		},
	}
}

var defaultTable = DefaultKeyTable()

// Map resolves ev against the default bindings
func Map(ev *tcell.EventKey) Action {
	return defaultTable.Map(ev)
}

// Map resolves ev to an action, ActionNone when unbound
func (kt *KeyTable) Map(ev *tcell.EventKey) Action {
	if ev == nil {
		return Action{}
	}
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: maps.Clone(kt.SpecialKeys),
		Runes:       maps.Clone(kt.Runes),
	}
}
