package world

import (
	"testing"
)

func TestNewGrid_NeighbourCounts(t *testing.T) {
	g := NewGrid(5, 4, 8)

	tests := []struct {
		name       string
		at         Coord
		neighbours int
		orthogonal int
		diagonal   int
		edge       bool
		corner     bool
	}{
		{"top left corner", Coord{0, 0}, 3, 2, 1, true, true},
		{"bottom right corner", Coord{4, 3}, 3, 2, 1, true, true},
		{"top edge", Coord{2, 0}, 5, 3, 2, true, false},
		{"left edge", Coord{0, 2}, 5, 3, 2, true, false},
		{"interior", Coord{2, 2}, 8, 4, 4, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell := g.Cell(tt.at)
			if cell == nil {
				t.Fatalf("Cell(%v) = nil", tt.at)
			}
			if got := len(cell.Neighbours()); got != tt.neighbours {
				t.Errorf("len(Neighbours()) = %d, want %d", got, tt.neighbours)
			}
			if got := len(cell.Orthogonal()); got != tt.orthogonal {
				t.Errorf("len(Orthogonal()) = %d, want %d", got, tt.orthogonal)
			}
			if got := len(cell.Diagonal()); got != tt.diagonal {
				t.Errorf("len(Diagonal()) = %d, want %d", got, tt.diagonal)
			}
			if cell.IsEdge() != tt.edge {
				t.Errorf("IsEdge() = %v, want %v", cell.IsEdge(), tt.edge)
			}
			if cell.IsCorner() != tt.corner {
				t.Errorf("IsCorner() = %v, want %v", cell.IsCorner(), tt.corner)
			}
			if len(cell.PathNeighbours()) != tt.neighbours {
				t.Errorf("fresh cell has %d path neighbours, want %d", len(cell.PathNeighbours()), tt.neighbours)
			}
		})
	}
}

func TestNewGrid_InvalidDimensionsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewGrid(0, 3, 8) did not panic")
		}
	}()
	NewGrid(0, 3, 8)
}

func TestNewGrid_OversizedPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("NewGrid(%d, 1, 8) did not panic", MaxDimension+1)
		}
	}()
	NewGrid(MaxDimension+1, 1, 8)
}

func TestGrid_CellOutOfBounds(t *testing.T) {
	g := NewGrid(3, 3, 8)
	for _, c := range []Coord{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		if g.Cell(c) != nil {
			t.Errorf("Cell(%v) != nil, want nil", c)
		}
	}
}

func TestGrid_IndexRoundTrip(t *testing.T) {
	g := NewGrid(7, 3, 8)
	for i := 0; i < 21; i++ {
		c := g.IndexToCoord(i)
		if got := g.CoordToIndex(c); got != i {
			t.Errorf("CoordToIndex(IndexToCoord(%d)) = %d", i, got)
		}
	}
	if got := g.CoordToIndex(Coord{X: 2, Y: 1}); got != 9 {
		t.Errorf("CoordToIndex(2:1) = %d, want 9", got)
	}
}

func TestGrid_AddRemoveWallBookkeeping(t *testing.T) {
	g := NewGrid(4, 4, 8)
	at := Coord{1, 1}

	if !g.AddWall(at) {
		t.Fatal("AddWall on a path cell returned false")
	}
	if g.AddWall(at) {
		t.Error("AddWall on an existing wall returned true")
	}
	if g.WallCount() != 1 || len(g.PathCoords()) != 15 {
		t.Errorf("walls=%d paths=%d, want 1 and 15", g.WallCount(), len(g.PathCoords()))
	}
	if g.ChunkCount() != 1 {
		t.Errorf("ChunkCount() = %d, want 1", g.ChunkCount())
	}
	for _, n := range g.Cell(at).Neighbours() {
		cell := g.Cell(n)
		if !cell.HasWallNeighbour(at) {
			t.Errorf("%v does not list %v as wall neighbour", n, at)
		}
		if cell.HasPathNeighbour(at) {
			t.Errorf("%v still lists %v as path neighbour", n, at)
		}
	}
	for _, c := range g.ValidWallLocations() {
		if c == at {
			t.Error("wall still in the candidate pool")
		}
	}

	// Touching wall joins the existing chunk
	g.AddWall(Coord{2, 1})
	if g.ChunkCount() != 1 {
		t.Errorf("ChunkCount() after adjacent wall = %d, want 1", g.ChunkCount())
	}

	g.RemoveWall(Coord{2, 1})
	if !g.RemoveWall(at) {
		t.Fatal("RemoveWall on a wall returned false")
	}
	if g.WallCount() != 0 || g.ChunkCount() != 0 {
		t.Errorf("walls=%d chunks=%d after removal, want 0 and 0", g.WallCount(), g.ChunkCount())
	}
	for _, n := range g.Cell(at).Neighbours() {
		if len(g.Cell(n).WallNeighbours()) != 0 {
			t.Errorf("%v still has wall neighbours", n)
		}
	}
	if len(g.ValidWallLocations()) != 16 {
		t.Errorf("candidate pool has %d entries, want 16", len(g.ValidWallLocations()))
	}
}

func TestGrid_TanksFirstIsPlayer(t *testing.T) {
	g := NewGrid(5, 5, 8)
	g.AddWall(Coord{2, 2})

	if g.AddTank(Coord{2, 2}) {
		t.Error("AddTank on a wall returned true")
	}
	g.AddTank(Coord{0, 0})
	g.AddTank(Coord{4, 4})

	if g.Cell(Coord{0, 0}).Type() != Player {
		t.Errorf("first tank type = %v, want player", g.Cell(Coord{0, 0}).Type())
	}
	if g.Cell(Coord{4, 4}).Type() != Tank {
		t.Errorf("second tank type = %v, want tank", g.Cell(Coord{4, 4}).Type())
	}
	if p, ok := g.PlayerStart(); !ok || p != (Coord{0, 0}) {
		t.Errorf("PlayerStart() = %v, %v", p, ok)
	}

	// Every coordinate belongs to exactly one membership list
	seen := map[Coord]int{}
	for _, list := range [][]Coord{g.WallCoords(), g.PathCoords(), g.TankCoords()} {
		for _, c := range list {
			seen[c]++
		}
	}
	if len(seen) != 25 {
		t.Errorf("membership lists cover %d coords, want 25", len(seen))
	}
	for c, n := range seen {
		if n != 1 {
			t.Errorf("%v appears in %d lists", c, n)
		}
	}

	g.ClearTanks()
	if g.TankCount() != 0 || len(g.PathCoords()) != 24 {
		t.Errorf("after ClearTanks tanks=%d paths=%d", g.TankCount(), len(g.PathCoords()))
	}
}

func TestGrid_ResetRestoresEmptyGrid(t *testing.T) {
	g := NewGrid(6, 6, 8)
	g.AddWall(Coord{1, 1})
	g.AddWall(Coord{4, 4})
	g.SetFailedCheck(Coord{3, 3}, CheckID(2))
	g.AddTank(Coord{0, 5})

	g.Reset()

	if g.WallCount() != 0 || g.TankCount() != 0 || g.ChunkCount() != 0 {
		t.Errorf("Reset left walls=%d tanks=%d chunks=%d", g.WallCount(), g.TankCount(), g.ChunkCount())
	}
	if g.Cell(Coord{3, 3}).FailedCheck() != NoCheck {
		t.Error("Reset kept a failed check tag")
	}
}

func TestGrid_IsPathConnected(t *testing.T) {
	g := NewGrid(5, 5, 8)
	for y := 0; y < 4; y++ {
		g.AddWall(Coord{2, y})
	}
	if !g.IsPathConnected() {
		t.Fatal("open bottom row should keep the grid connected")
	}
	g.AddWall(Coord{2, 4})
	if g.IsPathConnected() {
		t.Error("full wall column should split the grid")
	}
}

func TestGrid_CountChunks(t *testing.T) {
	g := NewGrid(7, 7, 8)
	g.AddWall(Coord{1, 1})
	g.AddWall(Coord{2, 2}) // diagonal: same chunk
	g.AddWall(Coord{5, 5})

	if got := g.CountChunks(); got != 2 {
		t.Errorf("CountChunks() = %d, want 2", got)
	}
	if got := g.Chunk(Coord{1, 1}).Size(); got != 2 {
		t.Errorf("Chunk(1:1).Size() = %d, want 2", got)
	}
}

func TestGrid_BorderedTypes(t *testing.T) {
	g := NewGrid(3, 2, 8)
	g.AddWall(Coord{1, 0})
	types := g.BorderedTypes()

	if len(types) != 5*4 {
		t.Fatalf("len(BorderedTypes()) = %d, want 20", len(types))
	}
	// Row 1 of the bordered layout is grid row 0: wall, path, wall, path, wall
	want := []CellType{Wall, Path, Wall, Path, Wall}
	for i, w := range want {
		if types[5+i] != w {
			t.Errorf("types[%d] = %v, want %v", 5+i, types[5+i], w)
		}
	}
}

func TestDirection_OppositeAndDelta(t *testing.T) {
	for _, d := range AllDirections() {
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		if dx != -ox || dy != -oy {
			t.Errorf("%v delta (%d,%d) is not the negation of %v delta (%d,%d)", d, dx, dy, d.Opposite(), ox, oy)
		}
		if d.IsDiagonal() != (dx != 0 && dy != 0) {
			t.Errorf("%v.IsDiagonal() = %v with delta (%d,%d)", d, d.IsDiagonal(), dx, dy)
		}
	}
}
