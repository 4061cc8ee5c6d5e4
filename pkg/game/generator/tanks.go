package generator

import (
	"log"

	"tankarena/pkg/engine/world"
	"tankarena/pkg/game/tanks"
)

// Tank check identifiers follow the wall battery
const (
	CheckTankSpacing world.CheckID = CheckDiagonalGap + 1 + iota
	CheckPlayerSpacing
)

// TankRules returns the placement checks for tank starts, in evaluation order
func TankRules(minFromTank, minFromPlayer float64) []Rule {
	return []Rule{
		rule{CheckTankSpacing, "tank spacing", "T", func(g *world.Grid, cell *world.Cell) bool {
			return tankSpacing(g, cell, minFromTank)
		}},
		rule{CheckPlayerSpacing, "player spacing", "R", func(g *world.Grid, cell *world.Cell) bool {
			return playerSpacing(g, cell, minFromPlayer)
		}},
	}
}

// tankSpacing keeps every pair of tanks strictly further apart than min
func tankSpacing(g *world.Grid, cell *world.Cell, min float64) bool {
	at := cell.Coord()
	for _, t := range g.TankCoords() {
		if t != at && t.Distance(at) <= min {
			return false
		}
	}
	return true
}

// playerSpacing keeps opponents away from the player start; the player itself always passes
func playerSpacing(g *world.Grid, cell *world.Cell, min float64) bool {
	if cell.Type() == world.Player {
		return true
	}
	player, ok := g.PlayerStart()
	if !ok {
		return true
	}
	return player.Distance(cell.Coord()) > min
}

// generateTanks places count tank starts on the walled grid, restarting the
// placement from scratch while the count is not met.
func (gen *Generator) generateTanks(g *world.Grid, count int) (int, error) {
	for attempt := 1; attempt <= gen.cfg.MaxAttempts; attempt++ {
		gen.placeTanks(g, count)
		if g.TankCount() == count {
			if gen.cfg.Debug {
				log.Printf("tanks placed: %d after %d attempt(s)\n%s", count, attempt, g.Dump())
			}
			return attempt, nil
		}

		if gen.cfg.Debug {
			log.Printf("tank attempt %d placed only %d/%d", attempt, g.TankCount(), count)
		}
	}
	g.ClearTanks()
	return gen.cfg.MaxAttempts, exhausted(ErrTanksExhausted, gen.cfg.MaxAttempts)
}

func (gen *Generator) placeTanks(g *world.Grid, count int) {
	g.ClearTanks()
	g.ResetTankCandidates()
	for g.TankCount() < count {
		pool := g.ValidTankLocations()
		if len(pool) == 0 {
			return
		}
		gen.placeOneTank(g, pool)
	}
}

func (gen *Generator) placeOneTank(g *world.Grid, local []world.Coord) bool {
	for len(local) > 0 {
		i := gen.rng.Intn(len(local))
		c := local[i]
		local = append(local[:i], local[i+1:]...)

		if !g.IsPath(c) {
			g.DropTankCandidate(c)
			continue
		}

		g.AddTank(c)
		if FirstFailure(gen.tankRules, g, g.Cell(c)) == nil {
			return true
		}
		g.RemoveTank(c)
		g.DropTankCandidate(c)
	}
	return false
}

// tankTypes resolves the type of every slot; slot 0 is always the player
func (gen *Generator) tankTypes() ([]tanks.Type, error) {
	if len(gen.cfg.TankCodes) > 0 {
		types := make([]tanks.Type, len(gen.cfg.TankCodes))
		for i, code := range gen.cfg.TankCodes {
			t, err := tanks.FromCode(code)
			if err != nil {
				return nil, err
			}
			types[i] = t
		}
		return types, nil
	}

	table := tanks.DefaultTable(gen.cfg.Difficulty)
	types := make([]tanks.Type, gen.cfg.Tanks)
	types[0] = tanks.Player
	for i := 1; i < len(types); i++ {
		t, err := table.Pick(gen.rng)
		if err != nil {
			return nil, err
		}
		types[i] = t
	}
	return types, nil
}
