package generator

import (
	"tankarena/pkg/engine/world"
)

// Rule is a single validity check run against a freshly committed wall or
// tank. Rules only read grid state; committing and rolling back the candidate
// is the caller's job.
type Rule interface {
	ID() world.CheckID
	Name() string
	Symbol() string
	Passes(g *world.Grid, cell *world.Cell) bool
}

// Wall check identifiers, in battery order
const (
	CheckChunkDistance world.CheckID = iota
	CheckBoundaryDistance
	CheckMaxChunks
	CheckDiagonalToWall
	CheckCShape
	CheckConnectivity
	CheckMaxNeighbours
	CheckLargeCShape
	CheckDiagonalGap
)

// Limits are the configurable bounds used by the wall rules
type Limits struct {
	MaxWallNeighbours int
	MaxChunks         int
}

type rule struct {
	id     world.CheckID
	name   string
	symbol string
	check  func(g *world.Grid, cell *world.Cell) bool
}

func (r rule) ID() world.CheckID { return r.id }
func (r rule) Name() string      { return r.name }
func (r rule) Symbol() string    { return r.symbol }

func (r rule) Passes(g *world.Grid, cell *world.Cell) bool {
	return r.check(g, cell)
}

// WallRules returns the wall battery in evaluation order. The order matters:
// later rules assume the earlier ones already passed.
func WallRules(limits Limits) []Rule {
	return []Rule{
		rule{CheckChunkDistance, "chunk distance", "C", chunkDistance},
		rule{CheckBoundaryDistance, "boundary distance", "B", boundaryDistance},
		rule{CheckMaxChunks, "max chunks", "M", func(g *world.Grid, wall *world.Cell) bool {
			return maxChunks(g, wall, limits.MaxChunks)
		}},
		rule{CheckDiagonalToWall, "diagonal to wall", "D", diagonalToWall},
		rule{CheckCShape, "c-shape", "S", cShape},
		rule{CheckConnectivity, "path connectivity", "Z", connectivity},
		rule{CheckMaxNeighbours, "max neighbours", "N", func(g *world.Grid, wall *world.Cell) bool {
			return maxNeighbours(g, wall, limits.MaxWallNeighbours)
		}},
		rule{CheckLargeCShape, "large c-shape", "L", largeCShape},
		rule{CheckDiagonalGap, "diagonal gap", "G", diagonalGap},
	}
}

// FirstFailure runs rules in order and returns the first one that fails, or nil
func FirstFailure(rules []Rule, g *world.Grid, cell *world.Cell) Rule {
	for _, r := range rules {
		if !r.Passes(g, cell) {
			return r
		}
	}
	return nil
}

// RuleSymbol returns the display symbol for a check id, "_" for NoCheck
func RuleSymbol(rules []Rule, id world.CheckID) string {
	for _, r := range rules {
		if r.ID() == id {
			return r.Symbol()
		}
	}
	return "_"
}

// chunkDistance: no path cell next to the wall may also touch a wall from a different chunk
func chunkDistance(g *world.Grid, wall *world.Cell) bool {
	chunk := g.Chunk(wall.Coord())
	for _, p := range wall.PathNeighbours() {
		for _, w := range g.Cell(p).WallNeighbours() {
			if !chunk.Has(w) {
				return false
			}
		}
	}
	return true
}

// boundaryDistance keeps interior walls off the ring of path cells along the edge
func boundaryDistance(g *world.Grid, wall *world.Cell) bool {
	for _, n := range wall.Orthogonal() {
		cell := g.Cell(n)
		if !cell.IsPath() {
			continue
		}
		if cell.IsEdge() && !wall.IsEdge() {
			return false
		}
		if cell.IsCorner() {
			return false
		}
	}
	return true
}

// maxChunks rejects a new isolated wall once the chunk budget is exceeded
func maxChunks(g *world.Grid, wall *world.Cell, max int) bool {
	if len(wall.WallNeighbours()) == 0 {
		return g.ChunkCount() <= max
	}
	return true
}

// diagonalToWall requires every diagonal wall neighbour to share an orthogonal wall with the new wall
func diagonalToWall(g *world.Grid, wall *world.Cell) bool {
	for _, d := range world.Intersect(wall.Diagonal(), wall.WallNeighbours()) {
		shared := world.Intersect(wall.Orthogonal(), g.Cell(d).Orthogonal())
		joined := false
		for _, s := range shared {
			if g.IsWall(s) {
				joined = true
				break
			}
		}
		if !joined {
			return false
		}
	}
	return true
}

// cShape forbids a one-cell corridor between the new wall and a wall in line beyond it
func cShape(g *world.Grid, wall *world.Cell) bool {
	for _, p := range world.Intersect(wall.PathNeighbours(), wall.Orthogonal()) {
		if g.IsWall(wall.Opposite(p)) {
			return false
		}
	}
	return true
}

func connectivity(g *world.Grid, _ *world.Cell) bool {
	return g.IsPathConnected()
}

// maxNeighbours checks the wall and every neighbour against the effective wall budget
func maxNeighbours(g *world.Grid, wall *world.Cell, max int) bool {
	if wall.HasMaxedWallNeighbours(max) {
		return false
	}
	for _, n := range wall.Neighbours() {
		if g.Cell(n).HasMaxedWallNeighbours(max) {
			return false
		}
	}
	return true
}

// largeCShape looks one knight's move out for walls that pocket the path beside the new wall
func largeCShape(g *world.Grid, wall *world.Cell) bool {
	for _, p := range world.Intersect(wall.PathNeighbours(), wall.Orthogonal()) {
		side := g.Cell(p)
		for _, k := range world.Intersect(side.Diagonal(), side.WallNeighbours()) {
			if wall.IsOrthogonalTo(k) {
				continue
			}
			for _, c := range world.Intersect(g.Cell(k).Orthogonal(), wall.Diagonal()) {
				if g.IsPath(c) {
					return false
				}
			}
		}
	}
	return true
}

// diagonalGap closes a one-cell diagonal leak between the new wall and a wall
// two steps diagonally away. The leak exists when the 2x2 block spanned by the
// wall and its diagonal neighbour d has three open cells: d and both cells
// the two share.
func diagonalGap(g *world.Grid, wall *world.Cell) bool {
	for _, d := range world.Intersect(wall.PathNeighbours(), wall.Diagonal()) {
		shared := world.Intersect(g.Cell(d).PathNeighbours(), wall.PathNeighbours())
		if len(shared)+1 == 3 && g.IsWall(wall.Opposite(d)) {
			return false
		}
	}
	return true
}
