package maze

// Side indexes a cell's walls, clockwise from the top
type Side uint8

const (
	Top Side = iota
	Right
	Bottom
	Left
)

var sideNames = [...]string{"top", "right", "bottom", "left"}

func (s Side) String() string {
	if int(s) < len(sideNames) {
		return sideNames[s]
	}
	return "invalid"
}

// Opposite returns the facing side of the neighbouring cell
func (s Side) Opposite() Side {
	return (s + 2) % 4
}

// Cell is a single grid square with one wall flag per Side
type Cell struct {
	Visited bool
	Walls   [4]bool
}

// HasWall reports whether the wall on side s is present
func (c Cell) HasWall(s Side) bool {
	return c.Walls[s]
}

// Point addresses a cell by row and column
type Point struct {
	Row, Col int
}

// direction is a carving step: grid delta plus the wall it crosses
type direction struct {
	dRow, dCol int
	side       Side
}

// Fixed traversal order: up, right, down, left
var directions = [4]direction{
	{-1, 0, Top},
	{0, 1, Right},
	{1, 0, Bottom},
	{0, -1, Left},
}
