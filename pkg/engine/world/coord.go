package world

import (
	"fmt"
	"math"
)

// Coord is a grid position: X is the column, Y is the row, both 0-based.
type Coord struct {
	X int
	Y int
}

// Step returns the coordinate one cell away in the given direction
func (c Coord) Step(dir Direction) Coord {
	dx, dy := dir.Delta()
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Distance returns the Euclidean distance between two grid coordinates
func (c Coord) Distance(o Coord) float64 {
	return math.Hypot(float64(c.X-o.X), float64(c.Y-o.Y))
}

// Manhattan returns the taxicab distance between two grid coordinates
func (c Coord) Manhattan(o Coord) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

// Mirror reflects o through c, i.e. the cell on the far side of c as seen from o.
func (c Coord) Mirror(o Coord) Coord {
	return Coord{X: 2*c.X - o.X, Y: 2*c.Y - o.Y}
}

func (c Coord) String() string {
	return fmt.Sprintf("%d:%d", c.X, c.Y)
}

// Vec3 is a position in continuous world space. The grid lies on the X/Z plane.
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
