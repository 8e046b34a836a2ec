package game

import (
	"github.com/lixenwraith/blind-maze/vmath"
)

// Trail is an insertion-ordered set of floored positions
// It only grows during a round and is replaced with the round
type Trail struct {
	seen   map[vmath.Vec2]struct{}
	points []vmath.Vec2
}

func NewTrail() *Trail {
	return &Trail{seen: make(map[vmath.Vec2]struct{})}
}

// Add records the floored position, ignoring repeats; returns true if new
func (t *Trail) Add(pos vmath.Vec2) bool {
	p := pos.Floor()
	if _, ok := t.seen[p]; ok {
		return false
	}
	t.seen[p] = struct{}{}
	t.points = append(t.points, p)
	return true
}

// Len returns the number of distinct positions
func (t *Trail) Len() int {
	return len(t.points)
}

// Points returns positions in insertion order; callers must not modify the slice
func (t *Trail) Points() []vmath.Vec2 {
	return t.points
}
