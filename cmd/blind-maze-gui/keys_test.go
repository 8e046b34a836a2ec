package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/blind-maze/config"
	"github.com/lixenwraith/blind-maze/input"
	"github.com/lixenwraith/blind-maze/vmath"
)

func pressing(keys ...ebiten.Key) func(ebiten.Key) bool {
	return func(k ebiten.Key) bool {
		for _, p := range keys {
			if p == k {
				return true
			}
		}
		return false
	}
}

func TestHeldIntent(t *testing.T) {
	tests := []struct {
		name string
		keys []ebiten.Key
		want vmath.Vec2
	}{
		{"none", nil, vmath.Vec2{}},
		{"down", []ebiten.Key{ebiten.KeyS}, vmath.V2(0, 1)},
		{"arrow left", []ebiten.Key{ebiten.KeyArrowLeft}, vmath.V2(-1, 0)},
		{"diagonal", []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowRight}, vmath.V2(1, -1)},
		{"opposites cancel", []ebiten.Key{ebiten.KeyA, ebiten.KeyD}, vmath.Vec2{}},
		{"both bindings count once", []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}, vmath.V2(0, -1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, heldIntent(pressing(tt.keys...)))
		})
	}
}

func TestCommandKeys(t *testing.T) {
	assert.Equal(t, input.ActionBegin, commandKeys[ebiten.KeyEnter].Type)
	assert.Equal(t, input.ActionQuit, commandKeys[ebiten.KeyEscape].Type)

	up := commandKeys[ebiten.KeyPageUp]
	assert.Equal(t, input.ActionTune, up.Type)
	assert.Equal(t, config.ParamSize, up.Param)
	assert.Equal(t, 1, up.Steps)

	// Every tunable param has a key each way
	seen := map[config.Param]int{}
	for _, a := range commandKeys {
		if a.Type == input.ActionTune {
			seen[a.Param] += a.Steps
		}
	}
	assert.Len(t, seen, 5)
	for p, net := range seen {
		assert.Zero(t, net, p.String())
	}
}
