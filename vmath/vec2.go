package vmath

import (
	"math"
)

// Vec2 is a float64 2D vector in world space
// Value methods return new vectors; *InPlace methods mutate the receiver
type Vec2 struct {
	X, Y float64
}

// V2 is shorthand for Vec2{x, y}
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Normalize returns the unit vector, zero-safe
func (v Vec2) Normalize() Vec2 {
	mag := v.Magnitude()
	if mag == 0 {
		return Vec2{}
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}
}

func (v *Vec2) AddInPlace(o Vec2) *Vec2 {
	v.X += o.X
	v.Y += o.Y
	return v
}

func (v *Vec2) ScaleInPlace(s float64) *Vec2 {
	v.X *= s
	v.Y *= s
	return v
}

func (v Vec2) MagnitudeSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Magnitude() float64 {
	return math.Sqrt(v.MagnitudeSq())
}

func (v Vec2) Distance(o Vec2) float64 {
	return v.Sub(o).Magnitude()
}

// Constrain clamps each component into [lo, hi]
func (v Vec2) Constrain(lo, hi Vec2) Vec2 {
	return Vec2{
		math.Max(lo.X, math.Min(v.X, hi.X)),
		math.Max(lo.Y, math.Min(v.Y, hi.Y)),
	}
}

// Floor returns v with both components floored
func (v Vec2) Floor() Vec2 {
	return Vec2{math.Floor(v.X), math.Floor(v.Y)}
}

func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
