package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/blind-maze/maze"
	"github.com/lixenwraith/blind-maze/vmath"
)

// referenceMaze is 3x3, seed 42, offset (100,100), openings in column 2
//
//	row0: T R . L | T . . L | . R B .
//	row1: . R . L | . . B L | T R . .
//	row2: . . B L | T . B . | . R . .
func referenceMaze(t *testing.T) *maze.Maze {
	t.Helper()
	m, err := maze.Generate(maze.Params{Size: 300, CellSize: 100, Seed: 42, Viewport: vmath.V2(500, 500)})
	require.NoError(t, err)
	require.Equal(t, 2, m.EntranceCol)
	require.Equal(t, 2, m.ExitCol)
	return m
}

func TestClassify_OutOfBounds(t *testing.T) {
	m := referenceMaze(t)
	const r = 10.0
	b := m.Bounds()

	cases := []vmath.Vec2{
		{X: b.Min.X - r - 1, Y: 150},
		{X: b.Max.X + r + 1, Y: 150},
		{X: 150, Y: b.Min.Y - r - 1},
		{X: 150, Y: b.Max.Y + r + 1},
	}
	for _, pos := range cases {
		// Trail length must not matter for out-of-bounds
		assert.Equal(t, StatusOutOfBounds, Classify(pos, r, m, 1000), "pos %v", pos)
	}
}

func TestClassify_EscapeVersusBackout(t *testing.T) {
	m := referenceMaze(t)
	// Just above the entrance opening, inside the inflated bounds
	pos := vmath.V2(350, 95)

	assert.Equal(t, StatusWallHit, Classify(pos, 10, m, 0))
	assert.Equal(t, StatusWallHit, Classify(pos, 10, m, WinTrailThreshold))
	assert.Equal(t, StatusWin, Classify(pos, 10, m, WinTrailThreshold+1))

	// Below the exit opening
	exit := vmath.V2(350, 405)
	assert.Equal(t, StatusWin, Classify(exit, 10, m, 50))
}

func TestClassify_Tangency(t *testing.T) {
	m := referenceMaze(t)
	// Cell (0,0) has its top wall; origin is (100,100)
	const r = 20.0
	assert.Equal(t, StatusPlaying, Classify(vmath.V2(150, 100+r), r, m, 0))
	assert.Equal(t, StatusWallHit, Classify(vmath.V2(150, 100+r-1e-9), r, m, 0))
	assert.Equal(t, StatusWallHit, Classify(vmath.V2(150, 100+r), r+1e-9, m, 0))

	// Right wall of (0,0) at x=200
	assert.Equal(t, StatusPlaying, Classify(vmath.V2(200-r, 150), r, m, 0))
	assert.Equal(t, StatusWallHit, Classify(vmath.V2(200-r+0.5, 150), r, m, 0))
}

func TestClassify_OpenSidesIgnored(t *testing.T) {
	m := referenceMaze(t)
	// Cell (1,0) is open top and bottom, walled left and right; origin (100,200)
	assert.Equal(t, StatusPlaying, Classify(vmath.V2(150, 201), 20, m, 0))
	assert.Equal(t, StatusPlaying, Classify(vmath.V2(150, 299), 20, m, 0))
	assert.Equal(t, StatusWallHit, Classify(vmath.V2(105, 250), 20, m, 0))
}

func TestClassify_CenteredNeverCollides(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		m, err := maze.Generate(maze.Params{Size: 730, CellSize: 50, Seed: seed, Viewport: vmath.V2(1280, 800)})
		require.NoError(t, err)
		for row := 0; row < m.GridSize; row++ {
			for col := 0; col < m.GridSize; col++ {
				center := m.CellOrigin(row, col).Add(vmath.V2(25, 25))
				require.Equal(t, StatusPlaying, Classify(center, 24.9, m, 0), "seed %d cell %d,%d", seed, row, col)
			}
		}
	}
}

func TestClassify_SingleCell(t *testing.T) {
	m, err := maze.Generate(maze.Params{Size: 100, CellSize: 100, Seed: 3})
	require.NoError(t, err)
	require.Equal(t, 1, m.GridSize)

	assert.Equal(t, StatusPlaying, Classify(vmath.V2(50, 50), 10, m, 0))
	// Top and bottom walls are both openings
	assert.Equal(t, StatusPlaying, Classify(vmath.V2(50, 5), 10, m, 0))
	assert.Equal(t, StatusPlaying, Classify(vmath.V2(50, 95), 10, m, 0))
	// Left and right are still walled
	assert.Equal(t, StatusWallHit, Classify(vmath.V2(5, 50), 10, m, 0))
	assert.Equal(t, StatusWallHit, Classify(vmath.V2(95, 50), 10, m, 0))
	assert.Equal(t, StatusPlaying, Classify(vmath.V2(10, 50), 10, m, 0))
}

func TestStatus_Helpers(t *testing.T) {
	assert.False(t, StatusPlaying.Terminal())
	assert.False(t, StatusEscaped.Terminal())
	assert.True(t, StatusOutOfBounds.Terminal())
	assert.True(t, StatusWallHit.Terminal())
	assert.True(t, StatusWin.Terminal())
	assert.True(t, StatusWin.Won())
	assert.False(t, StatusWallHit.Won())
	assert.Equal(t, "wall_hit", StatusWallHit.String())
	assert.Equal(t, "unknown", Status(42).String())
}
