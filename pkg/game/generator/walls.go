package generator

import (
	"log"

	"github.com/zyedidia/generic/stack"

	"tankarena/pkg/engine/world"
)

// generateWalls fills the grid with walls, restarting from an empty grid
// whenever the finished layout fails the end checks. Returns the number of
// passes used.
func (gen *Generator) generateWalls(g *world.Grid) (int, error) {
	for attempt := 1; attempt <= gen.cfg.MaxAttempts; attempt++ {
		g.Reset()
		gen.placeWalls(g)

		if gen.wallsAcceptable(g) {
			if gen.cfg.Debug {
				log.Printf("walls placed: %d/%d after %d attempt(s)\n%s", g.WallCount(), gen.cfg.Walls, attempt, g.DumpFailed(gen.failedSymbol))
			}
			return attempt, nil
		}

		if gen.cfg.Debug {
			log.Printf("wall attempt %d rejected with %d/%d walls", attempt, g.WallCount(), gen.cfg.Walls)
		}
	}
	return gen.cfg.MaxAttempts, exhausted(ErrWallsExhausted, gen.cfg.MaxAttempts)
}

// placeWalls runs one backtracking pass until the target is met or no
// candidate is left
func (gen *Generator) placeWalls(g *world.Grid) {
	g.ResetWallCandidates()
	for g.WallCount() < gen.cfg.Walls {
		pool := g.ValidWallLocations()
		if len(pool) == 0 {
			return
		}
		gen.placeOneWall(g, pool)
	}
}

// placeOneWall tries random candidates from local until one is accepted.
// Every rejected candidate also leaves the grid's pool, so repeated calls
// always make progress.
func (gen *Generator) placeOneWall(g *world.Grid, local []world.Coord) bool {
	for len(local) > 0 {
		i := gen.rng.Intn(len(local))
		c := local[i]
		local = append(local[:i], local[i+1:]...)

		if !g.IsPath(c) {
			g.DropWallCandidate(c)
			continue
		}
		if gen.tryWall(g, c) {
			gen.revalidate(g, c)
			return true
		}
	}
	return false
}

// tryWall commits a wall at c and runs the battery. On failure the wall is
// rolled back, dropped from the pool and tagged with the failing check.
func (gen *Generator) tryWall(g *world.Grid, c world.Coord) bool {
	g.AddWall(c)
	if failed := FirstFailure(gen.wallRules, g, g.Cell(c)); failed != nil {
		g.RemoveWall(c)
		g.DropWallCandidate(c)
		g.SetFailedCheck(c, failed.ID())
		return false
	}
	g.SetFailedCheck(c, world.NoCheck)
	return true
}

// revalidate retries previously rejected path neighbours of a new wall, since
// the new wall may have changed their verdict. Accepted cells stay as walls
// and have their own rejected neighbours retried in turn.
func (gen *Generator) revalidate(g *world.Grid, placed world.Coord) {
	todo := stack.New[world.Coord]()
	todo.Push(placed)

	for todo.Size() > 0 {
		wall := g.Cell(todo.Pop())
		// AddWall edits the neighbour lists in place
		neighbours := append([]world.Coord(nil), wall.PathNeighbours()...)

		for _, n := range neighbours {
			if g.WallCount() >= gen.cfg.Walls {
				return
			}
			cell := g.Cell(n)
			if !cell.IsPath() || cell.FailedCheck() == world.NoCheck {
				continue
			}
			if gen.tryWall(g, n) {
				todo.Push(n)
			}
		}
	}
}

// wallsAcceptable is the end check of a finished pass
func (gen *Generator) wallsAcceptable(g *world.Grid) bool {
	if gen.cfg.RequireExactWalls && g.WallCount() != gen.cfg.Walls {
		return false
	}
	if !g.IsPathConnected() {
		return false
	}
	if g.ChunkCount() > gen.cfg.MaxChunks {
		return false
	}
	for _, w := range g.WallCoords() {
		if g.Cell(w).HasMaxedWallNeighbours(gen.cfg.MaxWallNeighbours) {
			return false
		}
	}
	return true
}

func (gen *Generator) failedSymbol(id world.CheckID) string {
	return RuleSymbol(gen.wallRules, id)
}
