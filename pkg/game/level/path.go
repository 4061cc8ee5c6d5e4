package level

import (
	"github.com/zyedidia/generic/mapset"

	"tankarena/pkg/engine/world"
)

// Mover is any moving entity whose cells other entities should route around
type Mover interface {
	Position() world.Vec3
	Destination() world.Vec3
	Path() []world.Vec3
}

// PathTo returns the world positions leading from `from` towards `to`,
// avoiding static obstacles and every cell movers occupy, head for or plan to
// cross. The path excludes the start cell. If `to` cannot be reached the path
// ends at the closest reachable cell instead.
func (l *Level) PathTo(from, to world.Vec3, movers []Mover) []world.Vec3 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.findPath(l.grid.ToGrid(from), l.grid.ToGrid(to), movers)
}

// Path returns a path from `from` to the player when chasePlayer is set,
// otherwise to a random open cell that is not a static obstacle. Returns nil
// when no such cell exists.
func (l *Level) Path(from world.Vec3, chasePlayer bool, movers []Mover) []world.Vec3 {
	l.mu.Lock()
	defer l.mu.Unlock()

	start := l.grid.ToGrid(from)
	if chasePlayer {
		return l.findPath(start, l.player, movers)
	}

	free := make([]world.Coord, 0)
	for _, c := range l.grid.OpenCoords() {
		if l.obstacles[c] == 0 {
			free = append(free, c)
		}
	}
	if len(free) == 0 {
		return nil
	}
	return l.findPath(start, free[l.rng.Intn(len(free))], movers)
}

// findPath must be called with mu held
func (l *Level) findPath(start, goal world.Coord, movers []Mover) []world.Vec3 {
	blocked := l.avoidSet(movers)
	coords := l.grid.ShortestPath(start, goal, blocked)
	return l.grid.ToWorldAll(coords, l.grid.EntityHeight())
}

// avoidSet unions the static obstacles with the cells of every mover's
// position, destination and planned path
func (l *Level) avoidSet(movers []Mover) mapset.Set[world.Coord] {
	blocked := mapset.New[world.Coord]()
	for c := range l.obstacles {
		blocked.Put(c)
	}
	for _, m := range movers {
		for _, c := range l.grid.ToGridAll(m.Path()) {
			blocked.Put(c)
		}
		blocked.Put(l.grid.ToGrid(m.Position()))
		blocked.Put(l.grid.ToGrid(m.Destination()))
	}
	return blocked
}
