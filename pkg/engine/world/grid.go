package world

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"
)

// MaxDimension bounds each side of a grid, which keeps width*height far from
// overflowing and caps a grid at MaxDimension*MaxDimension cells
const MaxDimension = 1024

// Grid is the arena of cells making up a level. Every change of a cell's type,
// and of the wall/path neighbour lists that depend on it, goes through Grid.
type Grid struct {
	width    int
	height   int
	cellSize float64

	cells []*Cell

	// Membership lists in placement order; a coord is in exactly one of them.
	wallCoords []Coord
	pathCoords []Coord
	tankCoords []Coord

	// Candidate pools for generation
	validWallLocations []Coord
	validTankLocations []Coord

	chunkCount int
}

// NewGrid creates an all-path grid with the given dimensions and world cell size
func NewGrid(width, height int, cellSize float64) *Grid {
	g := &Grid{}
	g.Build(width, height, cellSize)
	return g
}

// Build initializes the grid with the given dimensions
func (g *Grid) Build(width, height int, cellSize float64) {
	if width <= 0 || height <= 0 {
		panic("Grid dimensions must be positive")
	}
	if width > MaxDimension || height > MaxDimension {
		panic("Grid dimensions exceed MaxDimension")
	}
	if cellSize <= 0 {
		panic("Grid cell size must be positive")
	}

	g.width = width
	g.height = height
	g.cellSize = cellSize
	g.Reset()
}

// Reset empties the grid: every cell is rebuilt as a path cell and all lists,
// pools and the chunk count start over.
func (g *Grid) Reset() {
	size := g.width * g.height
	g.cells = make([]*Cell, size)
	g.wallCoords = nil
	g.tankCoords = nil
	g.pathCoords = make([]Coord, 0, size)
	g.chunkCount = 0

	// Row-major, top left going down
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := Coord{X: x, Y: y}
			g.cells[g.CoordToIndex(c)] = newCell(c, g.width, g.height)
			g.pathCoords = append(g.pathCoords, c)
		}
	}

	g.validWallLocations = append([]Coord(nil), g.pathCoords...)
	g.validTankLocations = append([]Coord(nil), g.pathCoords...)
}

// Width returns the number of columns
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return g.height
}

// CellSize returns the world-space edge length of one cell
func (g *Grid) CellSize() float64 {
	return g.cellSize
}

// InBounds checks if a coordinate lies within the grid
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Cell returns the cell at the given coordinate, or nil if out of bounds
func (g *Grid) Cell(c Coord) *Cell {
	if !g.InBounds(c) {
		return nil
	}
	return g.cells[g.CoordToIndex(c)]
}

// CoordToIndex returns the linear index x + y*width
func (g *Grid) CoordToIndex(c Coord) int {
	return c.X + c.Y*g.width
}

// IndexToCoord is the inverse of CoordToIndex
func (g *Grid) IndexToCoord(index int) Coord {
	return Coord{X: index % g.width, Y: index / g.width}
}

// IsWall reports whether c is an in-bounds wall cell
func (g *Grid) IsWall(c Coord) bool {
	cell := g.Cell(c)
	return cell != nil && cell.kind == Wall
}

// IsPath reports whether c is an in-bounds path cell
func (g *Grid) IsPath(c Coord) bool {
	cell := g.Cell(c)
	return cell != nil && cell.kind == Path
}

// WallCoords returns the wall coordinates in placement order
func (g *Grid) WallCoords() []Coord {
	return append([]Coord(nil), g.wallCoords...)
}

// PathCoords returns the unoccupied open coordinates
func (g *Grid) PathCoords() []Coord {
	return append([]Coord(nil), g.pathCoords...)
}

// TankCoords returns the tank start coordinates in placement order; the first is the player
func (g *Grid) TankCoords() []Coord {
	return append([]Coord(nil), g.tankCoords...)
}

// OpenCoords returns every non-wall coordinate (path cells and tank starts)
func (g *Grid) OpenCoords() []Coord {
	open := make([]Coord, 0, len(g.pathCoords)+len(g.tankCoords))
	open = append(open, g.pathCoords...)
	return append(open, g.tankCoords...)
}

// WallCount returns the number of walls placed
func (g *Grid) WallCount() int {
	return len(g.wallCoords)
}

// TankCount returns the number of tank starts placed, player included
func (g *Grid) TankCount() int {
	return len(g.tankCoords)
}

// PlayerStart returns the player's start coordinate, if placed
func (g *Grid) PlayerStart() (Coord, bool) {
	if len(g.tankCoords) == 0 {
		return Coord{}, false
	}
	return g.tankCoords[0], true
}

// ChunkCount returns the number of wall chunks seeded by an isolated wall
func (g *Grid) ChunkCount() int {
	return g.chunkCount
}

// ValidWallLocations returns the current wall candidate pool
func (g *Grid) ValidWallLocations() []Coord {
	return append([]Coord(nil), g.validWallLocations...)
}

// ValidTankLocations returns the current tank candidate pool
func (g *Grid) ValidTankLocations() []Coord {
	return append([]Coord(nil), g.validTankLocations...)
}

// ResetWallCandidates refills the wall candidate pool with every path cell
func (g *Grid) ResetWallCandidates() {
	g.validWallLocations = append([]Coord(nil), g.pathCoords...)
}

// ResetTankCandidates refills the tank candidate pool with every path cell
func (g *Grid) ResetTankCandidates() {
	g.validTankLocations = append([]Coord(nil), g.pathCoords...)
}

// DropWallCandidate removes c from the wall candidate pool
func (g *Grid) DropWallCandidate(c Coord) {
	g.validWallLocations = removeCoord(g.validWallLocations, c)
}

// DropTankCandidate removes c from the tank candidate pool
func (g *Grid) DropTankCandidate(c Coord) {
	g.validTankLocations = removeCoord(g.validTankLocations, c)
}

// SetFailedCheck tags the cell at c with the check that rejected it
func (g *Grid) SetFailedCheck(c Coord, id CheckID) {
	if cell := g.Cell(c); cell != nil {
		cell.failedCheck = id
	}
}

// ClearFailedChecks removes every failed check tag
func (g *Grid) ClearFailedChecks() {
	for _, cell := range g.cells {
		cell.failedCheck = NoCheck
	}
}

// AddWall turns the path cell at c into a wall and updates every neighbour's
// wall/path lists. Returns false if c is out of bounds or not a path cell.
func (g *Grid) AddWall(c Coord) bool {
	cell := g.Cell(c)
	if cell == nil || cell.kind != Path {
		return false
	}

	g.wallCoords = append(g.wallCoords, c)
	g.pathCoords = removeCoord(g.pathCoords, c)
	cell.kind = Wall

	for _, n := range cell.neighbours {
		neighbour := g.Cell(n)
		neighbour.wallNeighbours = append(neighbour.wallNeighbours, c)
		neighbour.pathNeighbours = removeCoord(neighbour.pathNeighbours, c)
	}

	if len(cell.wallNeighbours) == 0 {
		g.chunkCount++
	}

	g.validWallLocations = removeCoord(g.validWallLocations, c)
	return true
}

// RemoveWall reverts the wall at c back to a path cell.
// Returns false if c is out of bounds or not a wall.
func (g *Grid) RemoveWall(c Coord) bool {
	cell := g.Cell(c)
	if cell == nil || cell.kind != Wall {
		return false
	}

	g.wallCoords = removeCoord(g.wallCoords, c)
	g.pathCoords = append(g.pathCoords, c)
	cell.kind = Path

	for _, n := range cell.neighbours {
		neighbour := g.Cell(n)
		neighbour.wallNeighbours = removeCoord(neighbour.wallNeighbours, c)
		neighbour.pathNeighbours = append(neighbour.pathNeighbours, c)
	}

	if len(cell.wallNeighbours) == 0 {
		g.chunkCount--
	}

	if !containsCoord(g.validWallLocations, c) {
		g.validWallLocations = append(g.validWallLocations, c)
	}
	return true
}

// AddTank marks the path cell at c as a tank start. The first tank placed on a
// grid is the player. Returns false if c is out of bounds or not a path cell.
func (g *Grid) AddTank(c Coord) bool {
	cell := g.Cell(c)
	if cell == nil || cell.kind != Path {
		return false
	}

	g.tankCoords = append(g.tankCoords, c)
	g.pathCoords = removeCoord(g.pathCoords, c)
	if len(g.tankCoords) == 1 {
		cell.kind = Player
	} else {
		cell.kind = Tank
	}

	g.validTankLocations = removeCoord(g.validTankLocations, c)
	return true
}

// RemoveTank reverts the tank start at c back to a path cell.
// Returns false if c is out of bounds or holds no tank.
func (g *Grid) RemoveTank(c Coord) bool {
	cell := g.Cell(c)
	if cell == nil || !cell.IsTankStart() {
		return false
	}

	g.tankCoords = removeCoord(g.tankCoords, c)
	g.pathCoords = append(g.pathCoords, c)
	cell.kind = Path

	if !containsCoord(g.validTankLocations, c) {
		g.validTankLocations = append(g.validTankLocations, c)
	}
	return true
}

// ClearTanks removes every tank start
func (g *Grid) ClearTanks() {
	for len(g.tankCoords) > 0 {
		g.RemoveTank(g.tankCoords[len(g.tankCoords)-1])
	}
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(cell *Cell)) {
	for _, cell := range g.cells {
		fn(cell)
	}
}

// IsPathConnected returns true if every non-wall cell is reachable from every
// other one through edge-sharing non-wall cells.
func (g *Grid) IsPathConnected() bool {
	open := g.OpenCoords()
	if len(open) == 0 {
		return true
	}
	return g.Reachable(open[0]).Size() == len(open)
}

// Reachable flood fills from start through orthogonal non-wall cells
func (g *Grid) Reachable(start Coord) mapset.Set[Coord] {
	visited := mapset.New[Coord]()
	if cell := g.Cell(start); cell == nil || cell.kind == Wall {
		return visited
	}

	todo := stack.New[Coord]()
	todo.Push(start)
	visited.Put(start)

	for todo.Size() > 0 {
		current := g.Cell(todo.Pop())
		for _, n := range current.orthogonal {
			if visited.Has(n) || g.IsWall(n) {
				continue
			}
			visited.Put(n)
			todo.Push(n)
		}
	}
	return visited
}

// Chunk returns the wall chunk containing the wall at c, following wall
// neighbours in all eight directions.
func (g *Grid) Chunk(c Coord) mapset.Set[Coord] {
	chunk := mapset.New[Coord]()
	if !g.IsWall(c) {
		return chunk
	}

	todo := stack.New[Coord]()
	todo.Push(c)
	chunk.Put(c)

	for todo.Size() > 0 {
		current := g.Cell(todo.Pop())
		for _, n := range current.wallNeighbours {
			if chunk.Has(n) {
				continue
			}
			chunk.Put(n)
			todo.Push(n)
		}
	}
	return chunk
}

// CountChunks counts the connected wall chunks currently on the grid
func (g *Grid) CountChunks() int {
	seen := mapset.New[Coord]()
	chunks := 0
	for _, w := range g.wallCoords {
		if seen.Has(w) {
			continue
		}
		chunks++
		g.Chunk(w).Each(func(c Coord) {
			seen.Put(c)
		})
	}
	return chunks
}

// BorderedTypes returns the cell types in row-major order wrapped in a
// one-cell wall border, giving (width+2)*(height+2) entries.
func (g *Grid) BorderedTypes() []CellType {
	types := make([]CellType, 0, (g.width+2)*(g.height+2))
	for i := 0; i < g.width+2; i++ {
		types = append(types, Wall)
	}
	for y := 0; y < g.height; y++ {
		types = append(types, Wall)
		for x := 0; x < g.width; x++ {
			types = append(types, g.Cell(Coord{X: x, Y: y}).kind)
		}
		types = append(types, Wall)
	}
	for i := 0; i < g.width+2; i++ {
		types = append(types, Wall)
	}
	return types
}
