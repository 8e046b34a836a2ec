package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/blind-maze/maze"
)

func TestGenerateReferenceMaze(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, generate(&buf, 300, 100, 42, true))

	out := buf.String()
	assert.Contains(t, out, "Seed 42, grid 3x3, entrance col 2, exit col 2")
	assert.Contains(t, out, "Solution Path Length:")

	// Header lines plus the 7-row block map
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 3+7)
	assert.Contains(t, out, "SS")
	assert.Contains(t, out, "EE")
}

func TestGenerateInvalid(t *testing.T) {
	err := generate(&bytes.Buffer{}, 50, 100, 1, false)
	assert.ErrorIs(t, err, maze.ErrInvalidGrid)
}
