package devtools

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tankarena/pkg/engine/world"
	"tankarena/pkg/game/level"
	"tankarena/pkg/game/tanks"
)

func testLevel() *level.Level {
	g := world.NewGrid(4, 3, 8)
	g.AddWall(world.Coord{X: 1, Y: 1})
	g.AddWall(world.Coord{X: 2, Y: 1})
	g.AddTank(world.Coord{X: 0, Y: 0})
	g.AddTank(world.Coord{X: 3, Y: 2})
	entries := []tanks.Entry{
		{Type: tanks.Player, Index: 0},
		{Type: tanks.Brown, Index: 11},
	}
	return level.New(g, entries, 1)
}

func TestDumpLevel_Sections(t *testing.T) {
	var buf bytes.Buffer
	DumpLevel(&buf, testLevel(), 42)
	out := buf.String()

	for _, want := range []string{
		"seed: 42",
		"grid_width: 4",
		"walls: 2",
		"chunks: 1",
		"path_connected: true",
		"--- Map ---\n@___\n_XX_\n___1\n",
		"type: brown code: 1 static: true",
		"  cell: 3:2\n",
		"chunk: 1 seed: 1:1 size: 2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q:\n%s", want, out)
		}
	}
}

func TestDumpLevel_PlayerMoved(t *testing.T) {
	l := testLevel()
	l.UpdatePlayerPosition(l.ToWorld(world.Coord{X: 2, Y: 0}))

	var buf bytes.Buffer
	DumpLevel(&buf, l, 0)
	if !strings.Contains(buf.String(), "--- Map ---\nP_@_\n") {
		t.Errorf("moved player not shown:\n%s", buf.String())
	}
}

func TestDumpLevelToPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.txt")
	abs, err := DumpLevelToPath(testLevel(), 7, path)
	if err != nil {
		t.Fatalf("DumpLevelToPath() error = %v", err)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.HasPrefix(string(data), "=== MAP DUMP DEBUG") {
		t.Errorf("unexpected dump header: %q", string(data[:20]))
	}
}

func TestRenderHTML(t *testing.T) {
	out := RenderHTML(testLevel(), "Arena <1>")

	for _, want := range []string{
		"<title>Arena &lt;1&gt;</title>",
		`<span class="player">P</span>`,
		`<span class="tank-brown">1</span>`,
		`<span class="wall">▒</span>`,
		"4x3, 2 walls, 2 tanks",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderHTML() missing %q", want)
		}
	}
}
