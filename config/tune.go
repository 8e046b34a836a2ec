package config

import (
	"math"
)

// Param selects a tunable field
type Param uint8

const (
	ParamSize Param = iota
	ParamCellSize
	ParamSpeed
	ParamFriction
	ParamRadius
)

var paramNames = [...]string{"Maze Size", "Maze Cell Size", "Player Speed", "Surface Friction", "Player Radius"}

func (p Param) String() string {
	if int(p) < len(paramNames) {
		return paramNames[p]
	}
	return "unknown"
}

// Tuning ranges of the settings panel
const (
	MinSize      = 50.0
	MaxSize      = 1000.0
	SizeStep     = 10.0
	CellSizeStep = 10.0
	MinSpeed     = 1.0
	MaxSpeed     = 100.0
	SpeedStep    = 1.0
	FrictionStep = 0.05
	MinRadius    = 1.0
	MaxRadius    = 50.0
	RadiusStep   = 1.0

	// MaxGridSize bounds cells per side for hand-written configs
	MaxGridSize = int(MaxSize / CellSizeStep)
)

// CellSizeRange returns the cell size bounds for a maze size: size/20 .. size/5, rounded to 10
func CellSizeRange(size float64) (lo, hi float64) {
	lo = math.Max(CellSizeStep, roundTo(size/20, CellSizeStep))
	hi = math.Max(lo, roundTo(size/5, CellSizeStep))
	return lo, hi
}

// Tune returns c with p moved by steps increments, clamped to the panel range
// Cell size is re-clamped whenever size changes
func (c Config) Tune(p Param, steps int) Config {
	d := float64(steps)
	switch p {
	case ParamSize:
		c.Size = clamp(roundTo(c.Size+d*SizeStep, SizeStep), MinSize, MaxSize)
		lo, hi := CellSizeRange(c.Size)
		c.CellSize = clamp(c.CellSize, lo, hi)
	case ParamCellSize:
		lo, hi := CellSizeRange(c.Size)
		c.CellSize = clamp(roundTo(c.CellSize+d*CellSizeStep, CellSizeStep), lo, hi)
	case ParamSpeed:
		c.Speed = clamp(c.Speed+d*SpeedStep, MinSpeed, MaxSpeed)
	case ParamFriction:
		c.Friction = clamp(roundTo(c.Friction+d*FrictionStep, FrictionStep), 0, 1)
	case ParamRadius:
		c.Radius = clamp(c.Radius+d*RadiusStep, MinRadius, MaxRadius)
	}
	return c
}

func roundTo(v, step float64) float64 {
	r := math.Round(v/step) * step
	// Trim binary noise from decimal steps like 0.05
	return math.Round(r*1e6) / 1e6
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
