package world

import "strings"

// Dump renders the grid one row per line, each cell as its type symbol
// followed by a space.
func (g *Grid) Dump() string {
	return g.dump(func(cell *Cell) string {
		return cell.kind.Symbol()
	})
}

// DumpFailed renders walls as their type symbol and every other cell as the
// symbol of the check that last rejected it, as named by symbol.
func (g *Grid) DumpFailed(symbol func(CheckID) string) string {
	return g.dump(func(cell *Cell) string {
		if cell.kind == Wall {
			return cell.kind.Symbol()
		}
		return symbol(cell.failedCheck)
	})
}

func (g *Grid) dump(symbol func(*Cell) string) string {
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			sb.WriteString(symbol(g.cells[g.CoordToIndex(Coord{X: x, Y: y})]))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
