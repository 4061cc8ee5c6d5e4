package world

import (
	"math"
	"testing"
)

func TestTransform_RoundTrip(t *testing.T) {
	for _, size := range []float64{0.5, 1, 2, 8} {
		g := NewGrid(7, 4, size)
		g.ForEachCell(func(cell *Cell) {
			c := cell.Coord()
			if got := g.ToGrid(g.ToWorld(c, 1)); got != c {
				t.Errorf("cell size %v: ToGrid(ToWorld(%v)) = %v", size, c, got)
			}
		})
	}
}

func TestTransform_ToWorldCentresGrid(t *testing.T) {
	g := NewGrid(5, 3, 8)

	centre := g.ToWorld(Coord{2, 1}, 0)
	if centre.X != 0 || centre.Z != 0 {
		t.Errorf("centre cell at %+v, want origin", centre)
	}

	topLeft := g.ToWorld(Coord{0, 0}, g.EntityHeight())
	if topLeft.X != -16 || topLeft.Z != 8 {
		t.Errorf("top left cell at %+v, want X=-16 Z=8", topLeft)
	}
	if math.Abs(topLeft.Y-8.0/3) > 1e-9 {
		t.Errorf("entity height = %v, want %v", topLeft.Y, 8.0/3)
	}
}

func TestTransform_ToGridClampsOutOfRange(t *testing.T) {
	g := NewGrid(5, 3, 8)

	tests := []struct {
		in   Vec3
		want Coord
	}{
		{Vec3{X: -1000, Z: 1000}, Coord{0, 0}},
		{Vec3{X: 1000, Z: -1000}, Coord{4, 2}},
		{Vec3{X: 3, Z: -3}, Coord{2, 1}},
		{Vec3{X: 5, Z: 0}, Coord{3, 1}},
	}
	for _, tt := range tests {
		if got := g.ToGrid(tt.in); got != tt.want {
			t.Errorf("ToGrid(%+v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
