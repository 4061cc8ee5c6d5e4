package world

import (
	"math"

	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"
)

// stepCost is the uniform edge weight between orthogonal neighbours
const stepCost = 1

const costUnreached = math.MaxInt

type pathEntry struct {
	index int
	cost  int
}

// ShortestPath runs a Dijkstra relaxation from start over orthogonal non-wall
// neighbours, never entering a blocked coordinate. The returned path excludes
// start and ends at goal. If goal cannot be reached the path ends at the
// explored cell nearest to goal instead. Cost and parent tables are local to
// the call, so the grid is not modified.
func (g *Grid) ShortestPath(start, goal Coord, blocked mapset.Set[Coord]) []Coord {
	if !g.InBounds(start) || !g.InBounds(goal) || start == goal {
		return nil
	}

	size := g.width * g.height
	cost := make([]int, size)
	parent := make([]int, size)
	for i := range cost {
		cost[i] = costUnreached
		parent[i] = -1
	}

	startIdx := g.CoordToIndex(start)
	goalIdx := g.CoordToIndex(goal)
	nearest := start

	open := heap.New[pathEntry](func(a, b pathEntry) bool {
		return a.cost < b.cost
	})
	cost[startIdx] = 0
	open.Push(pathEntry{index: startIdx, cost: 0})

	for open.Size() > 0 {
		entry, _ := open.Pop()
		if entry.cost > cost[entry.index] {
			continue // Stale entry
		}

		if entry.index == goalIdx {
			return g.tracePath(parent, startIdx, goalIdx)
		}

		current := g.cells[entry.index]
		for _, n := range current.orthogonal {
			if g.IsWall(n) || blocked.Has(n) {
				continue
			}

			nIdx := g.CoordToIndex(n)
			newCost := entry.cost + stepCost
			if newCost >= cost[nIdx] {
				continue
			}

			cost[nIdx] = newCost
			parent[nIdx] = entry.index
			open.Push(pathEntry{index: nIdx, cost: newCost})

			if n.Distance(goal) < nearest.Distance(goal) {
				nearest = n
			}
		}
	}

	// Goal unreachable: head for the closest cell seen instead
	return g.tracePath(parent, startIdx, g.CoordToIndex(nearest))
}

// tracePath walks parent links back from end and returns the path start→end, exclusive of start
func (g *Grid) tracePath(parent []int, startIdx, endIdx int) []Coord {
	var reversed []Coord
	for idx := endIdx; idx != startIdx && idx >= 0; idx = parent[idx] {
		reversed = append(reversed, g.IndexToCoord(idx))
	}

	path := make([]Coord, len(reversed))
	for i, c := range reversed {
		path[len(reversed)-1-i] = c
	}
	return path
}
