// Package generator builds arena levels: a backtracking wall search guarded
// by an ordered battery of validity rules, followed by spaced tank placement.
package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"tankarena/pkg/engine/world"
	"tankarena/pkg/game/tanks"
)

var (
	// ErrWallsExhausted is returned when no wall layout passed the end checks within the attempt budget
	ErrWallsExhausted = errors.New("wall generation exhausted")
	// ErrTanksExhausted is returned when the tanks could not all be placed within the attempt budget
	ErrTanksExhausted = errors.New("tank placement exhausted")
)

func exhausted(err error, attempts int) error {
	return fmt.Errorf("%w after %d attempts", err, attempts)
}

// Result is a generated level before runtime state is attached
type Result struct {
	Grid    *world.Grid
	Entries []tanks.Entry
	Rating  float64

	Seed         int64
	WallAttempts int
	TankAttempts int
}

// Generator holds the configuration, random source and rule batteries of one generation run
type Generator struct {
	cfg       Config
	rng       *rand.Rand
	seed      int64
	wallRules []Rule
	tankRules []Rule
}

// New validates cfg and prepares a generator. A zero seed is replaced by a
// time-based one; the seed actually used is reported in the Result.
func New(cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Generator{
		cfg:  cfg,
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
		wallRules: WallRules(Limits{
			MaxWallNeighbours: cfg.MaxWallNeighbours,
			MaxChunks:         cfg.MaxChunks,
		}),
		tankRules: TankRules(cfg.MinDistanceFromTank, cfg.MinDistanceFromPlayer),
	}, nil
}

// Generate builds a level from cfg
func Generate(cfg Config) (*Result, error) {
	gen, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return gen.Generate()
}

// WallRules returns the wall battery this generator evaluates
func (gen *Generator) WallRules() []Rule {
	return gen.wallRules
}

// Generate runs the wall search, places the tanks and rates the result
func (gen *Generator) Generate() (*Result, error) {
	types, err := gen.tankTypes()
	if err != nil {
		return nil, fmt.Errorf("failed to assign tank types: %w", err)
	}

	g := world.NewGrid(gen.cfg.Width, gen.cfg.Height, gen.cfg.CellSize)

	wallAttempts, err := gen.generateWalls(g)
	if err != nil {
		return nil, err
	}

	tankAttempts, err := gen.generateTanks(g, len(types))
	if err != nil {
		return nil, err
	}
	g.ClearFailedChecks()

	entries := make([]tanks.Entry, 0, len(types))
	for i, c := range g.TankCoords() {
		entries = append(entries, tanks.Entry{
			Type:     types[i],
			Position: g.ToWorld(c, g.EntityHeight()),
			Index:    g.CoordToIndex(c),
		})
	}

	return &Result{
		Grid:         g,
		Entries:      entries,
		Rating:       tanks.Score(entries),
		Seed:         gen.seed,
		WallAttempts: wallAttempts,
		TankAttempts: tankAttempts,
	}, nil
}
