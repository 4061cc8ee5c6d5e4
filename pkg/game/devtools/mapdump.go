// Package devtools provides developer tools for inspecting generated arenas.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"tankarena/pkg/engine/world"
	"tankarena/pkg/game/level"
	"tankarena/pkg/game/tanks"
)

const mapDumpFilename = "map.txt"

// cellSymbol returns the single-character symbol for a cell, tanks by code
func cellSymbol(l *level.Level, c world.Coord, tankAt map[world.Coord]tanks.Type, obstacles map[world.Coord]bool) string {
	if t, ok := tankAt[c]; ok {
		if t == tanks.Player {
			return world.Player.Symbol()
		}
		return fmt.Sprintf("%d", t.Code()%10)
	}
	cell := l.Grid().Cell(c)
	switch {
	case cell.IsWall():
		return world.Wall.Symbol()
	case obstacles[c]:
		return "#"
	default:
		return world.Path.Symbol()
	}
}

// writeMapGrid writes the grid with the player's runtime position as '@'
func writeMapGrid(w io.Writer, l *level.Level) {
	g := l.Grid()
	tankAt := make(map[world.Coord]tanks.Type)
	for _, e := range l.Entries() {
		tankAt[g.IndexToCoord(e.Index)] = e.Type
	}
	obstacles := make(map[world.Coord]bool)
	for _, c := range l.Obstacles() {
		obstacles[c] = true
	}
	player := l.PlayerCoord()

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := world.Coord{X: x, Y: y}
			if c == player {
				fmt.Fprint(w, "@")
				continue
			}
			fmt.Fprint(w, cellSymbol(l, c, tankAt, obstacles))
		}
		fmt.Fprintln(w)
	}
}

// DumpLevel writes a full debug dump: metadata, legend, map, tank and
// obstacle lists, and the wall chunks.
func DumpLevel(w io.Writer, l *level.Level, seed int64) {
	g := l.Grid()
	player := l.PlayerCoord()

	// --- Metadata ---
	fmt.Fprintln(w, "=== MAP DUMP DEBUG (arena layout, tanks, obstacles) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "seed: %d\n", seed)
	fmt.Fprintf(w, "grid_width: %d\n", g.Width())
	fmt.Fprintf(w, "grid_height: %d\n", g.Height())
	fmt.Fprintf(w, "cell_size: %v\n", g.CellSize())
	fmt.Fprintf(w, "coordinate_system: x:y (0-based, x=horizontal, y=vertical)\n")
	fmt.Fprintf(w, "walls: %d\n", g.WallCount())
	fmt.Fprintf(w, "chunks: %d\n", g.CountChunks())
	fmt.Fprintf(w, "path_connected: %v\n", g.IsPathConnected())
	fmt.Fprintf(w, "player_cell: %s\n", player)
	fmt.Fprintf(w, "rating: %.4f\n", l.Rating())
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend (cell symbols) ---")
	fmt.Fprintln(w, "_ = open floor  X = wall  P = player start  1-9 = tank by code  # = obstacle  @ = player now")
	fmt.Fprintln(w, "")

	// --- Map ---
	fmt.Fprintln(w, "--- Map ---")
	writeMapGrid(w, l)
	fmt.Fprintln(w, "")

	// --- Tanks ---
	fmt.Fprintln(w, "--- Tanks ---")
	for _, e := range l.Entries() {
		fmt.Fprintf(w, "  cell: %s index: %d type: %s code: %d static: %v score: %v\n",
			g.IndexToCoord(e.Index), e.Index, e.Type, e.Type.Code(), e.Type.IsStatic(), e.Type.Score())
	}
	fmt.Fprintln(w, "")

	// --- Obstacles ---
	fmt.Fprintln(w, "--- Obstacles ---")
	obstacles := l.Obstacles()
	sort.Slice(obstacles, func(i, j int) bool {
		return g.CoordToIndex(obstacles[i]) < g.CoordToIndex(obstacles[j])
	})
	for _, c := range obstacles {
		fmt.Fprintf(w, "  cell: %s\n", c)
	}
	fmt.Fprintln(w, "")

	// --- Chunks ---
	fmt.Fprintln(w, "--- Wall chunks ---")
	seen := make(map[world.Coord]bool)
	n := 0
	for _, c := range g.WallCoords() {
		if seen[c] {
			continue
		}
		chunk := g.Chunk(c)
		chunk.Each(func(m world.Coord) {
			seen[m] = true
		})
		n++
		fmt.Fprintf(w, "  chunk: %d seed: %s size: %d\n", n, c, chunk.Size())
	}
}

// DumpLevelToFile writes DumpLevel output to map.txt in the working
// directory and returns its absolute path.
func DumpLevelToFile(l *level.Level, seed int64) (string, error) {
	return DumpLevelToPath(l, seed, mapDumpFilename)
}

// DumpLevelToPath writes DumpLevel output to path and returns its absolute path
func DumpLevelToPath(l *level.Level, seed int64, path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	DumpLevel(f, l, seed)
	return absPath, nil
}
