// Package level wraps a generated grid with the runtime state a running
// match needs: static obstacles, the player's live position and the path
// queries tank controllers make against them.
package level

import (
	"math/rand"
	"sync"
	"time"

	"tankarena/pkg/engine/world"
	"tankarena/pkg/game/generator"
	"tankarena/pkg/game/tanks"
)

// Level is a built grid plus its tank entries and runtime state. The grid
// topology never changes after construction; the obstacle set and player
// position do, guarded by mu.
type Level struct {
	grid    *world.Grid
	entries []tanks.Entry
	rating  float64

	mu        sync.Mutex
	obstacles map[world.Coord]int // Registrations per blocked cell
	player    world.Coord
	rng       *rand.Rand
}

// New wraps a grid and its entries. Stationary tanks are registered as
// obstacles and the player's runtime position starts at the player entry.
// A zero seed picks a time-based one for random destinations.
func New(grid *world.Grid, entries []tanks.Entry, seed int64) *Level {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	l := &Level{
		grid:      grid,
		entries:   append([]tanks.Entry(nil), entries...),
		rating:    tanks.Score(entries),
		obstacles: make(map[world.Coord]int),
		rng:       rand.New(rand.NewSource(seed)),
	}

	for _, e := range l.entries {
		c := grid.IndexToCoord(e.Index)
		if e.IsPlayer() {
			l.player = c
		}
		if e.Type.IsStatic() {
			l.obstacles[c]++
		}
	}
	return l
}

// Generate builds a new level from cfg
func Generate(cfg generator.Config) (*Level, error) {
	res, err := generator.Generate(cfg)
	if err != nil {
		return nil, err
	}
	return FromResult(res), nil
}

// FromResult wraps a generation result, reusing its seed for runtime randomness
func FromResult(res *generator.Result) *Level {
	return New(res.Grid, res.Entries, res.Seed)
}

// Grid returns the level grid. Callers must treat it as read-only.
func (l *Level) Grid() *world.Grid {
	return l.grid
}

// Entries returns the placed tanks, player first
func (l *Level) Entries() []tanks.Entry {
	return append([]tanks.Entry(nil), l.entries...)
}

// Rating returns the difficulty rating of the level
func (l *Level) Rating() float64 {
	return l.rating
}

// ToGrid converts a world position to its grid coordinate
func (l *Level) ToGrid(p world.Vec3) world.Coord {
	return l.grid.ToGrid(p)
}

// ToWorld converts a grid coordinate to a world position at entity height
func (l *Level) ToWorld(c world.Coord) world.Vec3 {
	return l.grid.ToWorld(c, l.grid.EntityHeight())
}

// AddObstacle registers the cell under p as blocked for path queries.
// Registrations stack: the cell stays blocked until each one is removed.
func (l *Level) AddObstacle(p world.Vec3) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.obstacles[l.grid.ToGrid(p)]++
}

// RemoveObstacle drops one registration of the cell under p
func (l *Level) RemoveObstacle(p world.Vec3) {
	l.mu.Lock()
	defer l.mu.Unlock()

	c := l.grid.ToGrid(p)
	if l.obstacles[c] <= 1 {
		delete(l.obstacles, c)
		return
	}
	l.obstacles[c]--
}

// Obstacles returns the current static obstacle cells
func (l *Level) Obstacles() []world.Coord {
	l.mu.Lock()
	defer l.mu.Unlock()

	coords := make([]world.Coord, 0, len(l.obstacles))
	for c := range l.obstacles {
		coords = append(coords, c)
	}
	return coords
}

// IsObstacle reports whether the cell under p is a static obstacle
func (l *Level) IsObstacle(p world.Vec3) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.obstacles[l.grid.ToGrid(p)] > 0
}

// UpdatePlayerPosition records where the player is now
func (l *Level) UpdatePlayerPosition(p world.Vec3) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.player = l.grid.ToGrid(p)
}

// PlayerCoord returns the player's last recorded grid coordinate
func (l *Level) PlayerCoord() world.Coord {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.player
}
