package world

import "testing"

func TestDump_Format(t *testing.T) {
	g := NewGrid(3, 2, 8)
	g.AddWall(Coord{X: 1, Y: 0})
	g.AddTank(Coord{X: 0, Y: 1})
	g.AddTank(Coord{X: 2, Y: 1})

	want := "_ X _ \nP _ O \n"
	if got := g.Dump(); got != want {
		t.Errorf("Dump() = %q, want %q", got, want)
	}
}

func TestDumpFailed_UsesCheckSymbols(t *testing.T) {
	g := NewGrid(3, 1, 8)
	g.AddWall(Coord{X: 0, Y: 0})
	g.SetFailedCheck(Coord{X: 1, Y: 0}, 4)

	symbol := func(id CheckID) string {
		if id == 4 {
			return "S"
		}
		return "_"
	}
	want := "X S _ \n"
	if got := g.DumpFailed(symbol); got != want {
		t.Errorf("DumpFailed() = %q, want %q", got, want)
	}
}
