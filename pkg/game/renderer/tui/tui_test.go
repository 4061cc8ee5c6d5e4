package tui

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/gdamore/tcell/v2"

	"tankarena/pkg/engine/world"
	"tankarena/pkg/game/level"
	"tankarena/pkg/game/tanks"
)

// testBrowser builds a 4x3 arena:
//
//	P _ _ _
//	_ X X _
//	_ _ _ 1
func testBrowser(t *testing.T) (*Browser, tcell.SimulationScreen) {
	t.Helper()

	g := world.NewGrid(4, 3, 8)
	g.AddWall(world.Coord{X: 1, Y: 1})
	g.AddWall(world.Coord{X: 2, Y: 1})
	g.AddTank(world.Coord{X: 0, Y: 0})
	g.AddTank(world.Coord{X: 3, Y: 2})
	l := level.New(g, []tanks.Entry{
		{Type: tanks.Player, Index: 0},
		{Type: tanks.Brown, Index: 11},
	}, 1)

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 10)

	return New(screen, l, 1), screen
}

func press(b *Browser, keys string) bool {
	quit := false
	for _, r := range keys {
		quit = b.HandleEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
	return quit
}

func TestBrowser_CursorStaysInBounds(t *testing.T) {
	b, _ := testBrowser(t)

	press(b, "kh")
	if b.cursor != (world.Coord{X: 0, Y: 0}) {
		t.Errorf("cursor = %v, want 0:0", b.cursor)
	}

	press(b, "lllll")
	if b.cursor != (world.Coord{X: 3, Y: 0}) {
		t.Errorf("cursor = %v, want 3:0", b.cursor)
	}

	b.HandleEvent(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	if b.cursor != (world.Coord{X: 3, Y: 1}) {
		t.Errorf("cursor = %v, want 3:1", b.cursor)
	}
}

func TestBrowser_Route(t *testing.T) {
	b, _ := testBrowser(t)

	press(b, "lll")
	b.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))

	if len(b.route) != 3 {
		t.Fatalf("route = %v, want 3 steps", b.route)
	}
	if got := b.route[len(b.route)-1]; got != (world.Coord{X: 3, Y: 0}) {
		t.Errorf("route ends at %v, want 3:0", got)
	}
	if b.denied {
		t.Errorf("message %q marked as denied", b.message)
	}

	press(b, "c")
	if len(b.route) != 0 {
		t.Errorf("route after clear = %v, want empty", b.route)
	}
}

func TestBrowser_RouteToSelf(t *testing.T) {
	b, _ := testBrowser(t)

	b.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if len(b.route) != 0 {
		t.Errorf("route = %v, want empty", b.route)
	}
	if !b.denied {
		t.Error("empty route should be reported as denied")
	}
}

func TestBrowser_MovePlayer(t *testing.T) {
	b, _ := testBrowser(t)

	press(b, "jlm")
	if !b.denied {
		t.Error("moving onto a wall should be denied")
	}
	if got := b.level.PlayerCoord(); got != (world.Coord{X: 0, Y: 0}) {
		t.Errorf("player = %v after denied move, want 0:0", got)
	}

	press(b, "kllm")
	if got := b.level.PlayerCoord(); got != (world.Coord{X: 3, Y: 0}) {
		t.Errorf("player = %v, want 3:0", got)
	}
}

func TestBrowser_ToggleObstacle(t *testing.T) {
	b, _ := testBrowser(t)
	p := b.level.ToWorld(world.Coord{X: 2, Y: 0})

	press(b, "llo")
	if !b.level.IsObstacle(p) {
		t.Fatal("obstacle not added")
	}
	press(b, "o")
	if b.level.IsObstacle(p) {
		t.Error("obstacle not removed")
	}

	press(b, "jo")
	if !b.denied {
		t.Error("obstacle on a wall should be denied")
	}
}

func TestBrowser_Quit(t *testing.T) {
	tests := []struct {
		name string
		ev   tcell.Event
	}{
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)},
		{"closed", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _ := testBrowser(t)
			if !b.HandleEvent(tt.ev) {
				t.Errorf("HandleEvent(%s) = false, want true", tt.name)
			}
		})
	}

	b, _ := testBrowser(t)
	if press(b, "x") {
		t.Error("unbound key quit the browser")
	}
}

func TestBrowser_Draw(t *testing.T) {
	b, screen := testBrowser(t)
	press(b, "lll")
	b.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	b.Draw()

	tests := []struct {
		x, y int
		want rune
	}{
		{0, 0, '@'},
		{2, 0, '*'},
		{6, 0, '*'},
		{2, 1, 'X'},
		{4, 1, 'X'},
		{0, 2, '_'},
		{6, 2, '1'},
	}
	for _, tt := range tests {
		got, _, _, _ := screen.GetContent(tt.x, tt.y)
		if got != tt.want {
			t.Errorf("cell %d,%d = %q, want %q", tt.x, tt.y, got, tt.want)
		}
	}

	_, _, style, _ := screen.GetContent(6, 0)
	if _, _, attr := style.Decompose(); attr&tcell.AttrReverse == 0 {
		t.Error("cursor cell is not drawn reversed")
	}
	_, _, style, _ = screen.GetContent(4, 0)
	if _, _, attr := style.Decompose(); attr&tcell.AttrReverse != 0 {
		t.Error("non-cursor cell drawn reversed")
	}
}

// The screen owns the terminal, so denied actions must only reach the
// message line
func TestBrowser_DeniedActionsStayOnScreen(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	b, _ := testBrowser(t)
	press(b, "jlm")

	if !b.denied {
		t.Fatal("moving onto a wall should be denied")
	}
	if buf.Len() != 0 {
		t.Errorf("denied action logged %q", buf.String())
	}
}
