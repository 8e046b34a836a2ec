package physics

import (
	"github.com/lixenwraith/blind-maze/vmath"
)

// Body is the player's kinematic state in world space
type Body struct {
	Position vmath.Vec2
	Velocity vmath.Vec2
}

// Motion holds per-round movement tuning
type Motion struct {
	Speed    float64 // Acceleration added per tick at full intent
	Friction float64 // Fraction of velocity lost per tick, in [0, 1]
}

// Step advances b by one tick under intent and clamps it into [0, viewport]
// Intent is normalised, so diagonals accelerate no faster than a single axis
func Step(b *Body, intent vmath.Vec2, m Motion, viewport vmath.Vec2) {
	b.Velocity.AddInPlace(intent.Normalize().Scale(m.Speed))
	b.Velocity.ScaleInPlace(1 - m.Friction)
	b.Position.AddInPlace(b.Velocity)
	b.Position = b.Position.Constrain(vmath.Vec2{}, viewport)
}
