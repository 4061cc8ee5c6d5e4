package world

import (
	"math"

	"github.com/zyedidia/generic"
)

// clampMargin keeps clamped positions one world unit inside the grid edge,
// but never inside the outermost cell centres.
func (g *Grid) clampMargin() float64 {
	return math.Min(1, g.cellSize/2)
}

// ToGrid converts a world position to the nearest grid coordinate. The X/Z
// input is clamped to the grid extent first, so the result is always in bounds.
func (g *Grid) ToGrid(p Vec3) Coord {
	maxX := float64(g.width)/2*g.cellSize - g.clampMargin()
	maxZ := float64(g.height)/2*g.cellSize - g.clampMargin()

	x := generic.Clamp(p.X, -maxX, maxX)
	z := generic.Clamp(p.Z, -maxZ, maxZ)

	col := int(math.Round(x/g.cellSize + float64(g.width-1)/2))
	row := int(math.Round(float64(g.height-1)/2 - z/g.cellSize))

	return Coord{
		X: generic.Clamp(col, 0, g.width-1),
		Y: generic.Clamp(row, 0, g.height-1),
	}
}

// ToWorld converts a grid coordinate to the world position of the cell centre
// at height y. The grid is centred on the world origin; row 0 is the far (+Z) edge.
func (g *Grid) ToWorld(c Coord, y float64) Vec3 {
	return Vec3{
		X: (float64(c.X) - float64(g.width-1)/2) * g.cellSize,
		Y: y,
		Z: (float64(g.height-1)/2 - float64(c.Y)) * g.cellSize,
	}
}

// EntityHeight is the world height entities sit at on this grid
func (g *Grid) EntityHeight() float64 {
	return g.cellSize / 3
}

// ToGridAll converts a list of world positions to grid coordinates
func (g *Grid) ToGridAll(positions []Vec3) []Coord {
	coords := make([]Coord, len(positions))
	for i, p := range positions {
		coords[i] = g.ToGrid(p)
	}
	return coords
}

// ToWorldAll converts a list of grid coordinates to world positions at height y
func (g *Grid) ToWorldAll(coords []Coord, y float64) []Vec3 {
	positions := make([]Vec3, len(coords))
	for i, c := range coords {
		positions[i] = g.ToWorld(c, y)
	}
	return positions
}
