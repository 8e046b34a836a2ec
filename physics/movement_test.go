package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/blind-maze/vmath"
)

func TestStep_AccelerationAndFriction(t *testing.T) {
	b := Body{Position: vmath.V2(100, 100)}
	m := Motion{Speed: 10, Friction: 0.5}
	vp := vmath.V2(1000, 1000)

	Step(&b, vmath.V2(1, 0), m, vp)
	assert.Equal(t, vmath.V2(5, 0), b.Velocity)
	assert.Equal(t, vmath.V2(105, 100), b.Position)

	Step(&b, vmath.V2(1, 0), m, vp)
	assert.Equal(t, vmath.V2(7.5, 0), b.Velocity)
	assert.Equal(t, vmath.V2(112.5, 100), b.Position)

	// Released input decays velocity geometrically
	Step(&b, vmath.Vec2{}, m, vp)
	assert.Equal(t, vmath.V2(3.75, 0), b.Velocity)
}

func TestStep_DiagonalNormalized(t *testing.T) {
	b := Body{}
	Step(&b, vmath.V2(1, 1), Motion{Speed: 10, Friction: 0}, vmath.V2(100, 100))
	assert.InDelta(t, 10.0, b.Velocity.Magnitude(), 1e-9)
	assert.InDelta(t, 10/math.Sqrt2, b.Position.X, 1e-9)
}

func TestStep_FullFrictionStops(t *testing.T) {
	b := Body{Position: vmath.V2(10, 10), Velocity: vmath.V2(3, 3)}
	Step(&b, vmath.V2(0, -1), Motion{Speed: 10, Friction: 1}, vmath.V2(100, 100))
	assert.Equal(t, vmath.V2(10, 10), b.Position)
	assert.True(t, b.Velocity.IsZero())
}

func TestStep_ClampedToViewport(t *testing.T) {
	b := Body{Position: vmath.V2(2, 98)}
	Step(&b, vmath.V2(-1, 1), Motion{Speed: 50, Friction: 0}, vmath.V2(100, 100))
	assert.Equal(t, 0.0, b.Position.X)
	assert.Equal(t, 100.0, b.Position.Y)
}
