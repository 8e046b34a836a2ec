package input

import (
	"time"

	"github.com/lixenwraith/blind-maze/vmath"
)

var dirVectors = [4]vmath.Vec2{
	DirUp:    {X: 0, Y: -1},
	DirRight: {X: 1, Y: 0},
	DirDown:  {X: 0, Y: 1},
	DirLeft:  {X: -1, Y: 0},
}

// Vector returns the unit acceleration for d in screen space (+Y down)
func (d Direction) Vector() vmath.Vec2 {
	return dirVectors[d]
}

// Steering approximates held keys on terminals, which report presses and
// auto-repeats but never releases. A direction counts as held until hold has
// passed since its last press; a zero hold latches it until Stop.
type Steering struct {
	hold    time.Duration
	pressed [4]time.Time // Last press per direction; zero when released
}

// NewSteering creates steering with the given hold window
func NewSteering(hold time.Duration) *Steering {
	return &Steering{hold: hold}
}

// SetHold changes the hold window for subsequent queries
func (s *Steering) SetHold(hold time.Duration) {
	s.hold = hold
}

// Press marks d as held at now
func (s *Steering) Press(d Direction, now time.Time) {
	s.pressed[d] = now
}

// Stop releases every direction
func (s *Steering) Stop() {
	s.pressed = [4]time.Time{}
}

// Held reports whether d is still held at now
func (s *Steering) Held(d Direction, now time.Time) bool {
	t := s.pressed[d]
	if t.IsZero() {
		return false
	}
	if s.hold <= 0 {
		return true
	}
	return now.Sub(t) < s.hold
}

// Intent returns the summed direction vector of every held key
// Opposite keys cancel; callers normalise
func (s *Steering) Intent(now time.Time) vmath.Vec2 {
	var v vmath.Vec2
	for d := DirUp; d <= DirLeft; d++ {
		if s.Held(d, now) {
			v.AddInPlace(d.Vector())
		}
	}
	return v
}
