// Package world provides the grid primitives of an arena level: cells with a
// fixed 8-neighbourhood, the Grid arena that owns every cell mutation, the
// grid/world coordinate transforms and the shortest-path search.
package world

// CellType is the occupancy of a single grid cell
type CellType int

// Cell types
const (
	Path CellType = iota
	Wall
	Tank
	Player
)

var cellSymbols = map[CellType]string{
	Path:   "_",
	Wall:   "X",
	Tank:   "O",
	Player: "P",
}

// Symbol returns the one-character display code of the cell type
func (t CellType) Symbol() string {
	if s, ok := cellSymbols[t]; ok {
		return s
	}
	return "?"
}

func (t CellType) String() string {
	switch t {
	case Path:
		return "path"
	case Wall:
		return "wall"
	case Tank:
		return "tank"
	case Player:
		return "player"
	default:
		return "unknown"
	}
}

// CheckID identifies the validity check that last rejected a wall on a cell
type CheckID int

// NoCheck marks a cell that has not been rejected by any check
const NoCheck CheckID = -1

// maxNeighbours is the size of a full 8-neighbourhood
const maxNeighbours = 8

// Cell represents a single square of the grid.
// Neighbour lists are computed once; the wall/path lists are kept current by the Grid.
type Cell struct {
	coord Coord
	kind  CellType

	neighbours []Coord
	orthogonal []Coord
	diagonal   []Coord

	wallNeighbours []Coord
	pathNeighbours []Coord

	failedCheck CheckID
}

// newCell creates a path cell and computes its in-bounds neighbours
func newCell(coord Coord, width, height int) *Cell {
	c := &Cell{
		coord:       coord,
		kind:        Path,
		failedCheck: NoCheck,
	}

	for _, dir := range AllDirections() {
		n := coord.Step(dir)
		if n.X < 0 || n.X >= width || n.Y < 0 || n.Y >= height {
			continue
		}

		c.neighbours = append(c.neighbours, n)
		if dir.IsDiagonal() {
			c.diagonal = append(c.diagonal, n)
		} else {
			c.orthogonal = append(c.orthogonal, n)
		}
	}

	c.pathNeighbours = append([]Coord(nil), c.neighbours...)
	return c
}

// Coord returns the grid position of the cell
func (c *Cell) Coord() Coord {
	return c.coord
}

// Type returns the current cell type
func (c *Cell) Type() CellType {
	return c.kind
}

// IsPath returns true for open, unoccupied cells
func (c *Cell) IsPath() bool {
	return c.kind == Path
}

// IsWall returns true for wall cells
func (c *Cell) IsWall() bool {
	return c.kind == Wall
}

// IsTankStart returns true for player and opponent start cells
func (c *Cell) IsTankStart() bool {
	return c.kind == Tank || c.kind == Player
}

// Neighbours returns every in-bounds neighbour
func (c *Cell) Neighbours() []Coord {
	return c.neighbours
}

// Orthogonal returns the edge-sharing neighbours
func (c *Cell) Orthogonal() []Coord {
	return c.orthogonal
}

// Diagonal returns the corner-sharing neighbours
func (c *Cell) Diagonal() []Coord {
	return c.diagonal
}

// WallNeighbours returns the neighbours that are currently walls
func (c *Cell) WallNeighbours() []Coord {
	return c.wallNeighbours
}

// PathNeighbours returns the neighbours that are currently not walls
func (c *Cell) PathNeighbours() []Coord {
	return c.pathNeighbours
}

// FailedCheck returns the check that last rejected a wall here, or NoCheck
func (c *Cell) FailedCheck() CheckID {
	return c.failedCheck
}

// IsEdge returns true if the cell touches the grid boundary
func (c *Cell) IsEdge() bool {
	return len(c.neighbours) < maxNeighbours
}

// IsCorner returns true if the cell sits in a grid corner
func (c *Cell) IsCorner() bool {
	return len(c.diagonal) == 1
}

// EffectiveWallNeighbours counts wall neighbours plus missing off-grid neighbours
func (c *Cell) EffectiveWallNeighbours() int {
	return len(c.wallNeighbours) + maxNeighbours - len(c.neighbours)
}

// HasMaxedWallNeighbours returns true if the effective wall count exceeds max
func (c *Cell) HasMaxedWallNeighbours(max int) bool {
	return c.EffectiveWallNeighbours() > max
}

// Opposite returns the cell on the far side of neighbour n
func (c *Cell) Opposite(n Coord) Coord {
	return n.Mirror(c.coord)
}

// IsOrthogonalTo returns true if o shares an edge with this cell
func (c *Cell) IsOrthogonalTo(o Coord) bool {
	return containsCoord(c.orthogonal, o)
}

// HasWallNeighbour returns true if o is a neighbouring wall
func (c *Cell) HasWallNeighbour(o Coord) bool {
	return containsCoord(c.wallNeighbours, o)
}

// HasPathNeighbour returns true if o is a neighbouring non-wall cell
func (c *Cell) HasPathNeighbour(o Coord) bool {
	return containsCoord(c.pathNeighbours, o)
}

func containsCoord(list []Coord, c Coord) bool {
	for _, v := range list {
		if v == c {
			return true
		}
	}
	return false
}

// removeCoord deletes the first occurrence of c, preserving order
func removeCoord(list []Coord, c Coord) []Coord {
	for i, v := range list {
		if v == c {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// Intersect returns the elements of a that also appear in b, in a's order
func Intersect(a, b []Coord) []Coord {
	var out []Coord
	for _, v := range a {
		if containsCoord(b, v) {
			out = append(out, v)
		}
	}
	return out
}
