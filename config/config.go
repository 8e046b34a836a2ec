// Package config holds the immutable game configuration.
//
// Values come from built-in defaults, then an optional TOML file, then
// .env / BLINDMAZE_* environment overrides. Validate rejects inconsistent
// combinations; it never clamps. Clamping belongs to the Tune helpers used by
// the in-game tuning panel.
package config

import (
	"fmt"
	"math"
	"time"
)

// Defaults for a maze that fits a laptop screen
const (
	DefaultSize      = 730.0
	DefaultCellSize  = 100.0
	DefaultSpeed     = 10.0
	DefaultFriction  = 0.5
	DefaultRadius    = 20.0
	DefaultKeyHoldMs = 300
)

// Config is passed by value to every component constructor
type Config struct {
	Size     float64 `toml:"size"`      // Maze side length in world units
	CellSize float64 `toml:"cell_size"` // Cell side length in world units
	Speed    float64 `toml:"speed"`     // Acceleration per tick at full input
	Friction float64 `toml:"friction"`  // Velocity fraction lost per tick, [0, 1]
	Radius   float64 `toml:"radius"`    // Player disc radius in world units

	// Seed fixes the first maze; 0 picks a random seed
	Seed int64 `toml:"seed"`

	// KeyHoldMs keeps a terminal direction key held this long after its last repeat
	KeyHoldMs int `toml:"key_hold_ms"`

	Blind bool `toml:"blind"` // Hide maze walls until the round ends
	Mute  bool `toml:"mute"`
	Debug bool `toml:"debug"` // File logging under logs/
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Size:      DefaultSize,
		CellSize:  DefaultCellSize,
		Speed:     DefaultSpeed,
		Friction:  DefaultFriction,
		Radius:    DefaultRadius,
		KeyHoldMs: DefaultKeyHoldMs,
	}
}

// GridSize returns floor(Size/CellSize), 0 for non-positive inputs
func (c Config) GridSize() int {
	if c.Size <= 0 || c.CellSize <= 0 {
		return 0
	}
	return int(math.Floor(c.Size / c.CellSize))
}

// KeyHold returns KeyHoldMs as a duration
func (c Config) KeyHold() time.Duration {
	return time.Duration(c.KeyHoldMs) * time.Millisecond
}

// Error is a configuration error naming the offending field
type Error struct {
	Field  string
	Value  any
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("config: invalid %s=%v: %s", e.Field, e.Value, e.Reason)
}

// Validate checks internal consistency, first failure wins
func (c Config) Validate() error {
	switch {
	case isBad(c.Size) || c.Size <= 0:
		return &Error{"size", c.Size, "must be positive"}
	case isBad(c.CellSize) || c.CellSize <= 0:
		return &Error{"cell_size", c.CellSize, "must be positive"}
	case c.GridSize() < 1:
		return &Error{"cell_size", c.CellSize, fmt.Sprintf("must not exceed size %g (grid size < 1)", c.Size)}
	case c.Size/c.CellSize >= float64(MaxGridSize+1):
		return &Error{"cell_size", c.CellSize, fmt.Sprintf("too small for size %g (grid size > %d)", c.Size, MaxGridSize)}
	case isBad(c.Friction) || c.Friction < 0 || c.Friction > 1:
		return &Error{"friction", c.Friction, "must lie in [0, 1]"}
	case isBad(c.Speed) || c.Speed <= 0:
		return &Error{"speed", c.Speed, "must be positive"}
	case isBad(c.Radius) || c.Radius <= 0:
		return &Error{"radius", c.Radius, "must be positive"}
	case c.KeyHoldMs < 0:
		return &Error{"key_hold_ms", c.KeyHoldMs, "must not be negative"}
	}
	return nil
}

func isBad(f float64) bool {
	return math.IsNaN(f) || math.IsInf(f, 0)
}
