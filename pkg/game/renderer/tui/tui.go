// Package tui is a full-screen terminal browser for arenas. A cursor walks
// the grid and drives the same path-query intents as the window viewer.
package tui

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/leonelquinteros/gotext"

	engineinput "tankarena/pkg/engine/input"
	"tankarena/pkg/engine/world"
	"tankarena/pkg/game/devtools"
	"tankarena/pkg/game/level"
	"tankarena/pkg/game/tanks"
)

var (
	styleDefault  = tcell.StyleDefault
	styleWall     = tcell.StyleDefault.Foreground(tcell.ColorSilver).Bold(true)
	styleFloor    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePlayer   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleTank     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleStatic   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleRoute    = tcell.StyleDefault.Foreground(tcell.ColorTeal).Bold(true)
	styleObstacle = tcell.StyleDefault.Foreground(tcell.ColorPurple)
	styleSubtle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleDenied   = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// Browser draws a level on a tcell screen and reacts to key events
type Browser struct {
	screen tcell.Screen
	level  *level.Level
	seed   int64

	cursor  world.Coord
	route   []world.Coord
	message string
	denied  bool
}

// New creates a browser for l drawing on an initialised screen
func New(screen tcell.Screen, l *level.Level, seed int64) *Browser {
	return &Browser{
		screen:  screen,
		level:   l,
		seed:    seed,
		cursor:  l.PlayerCoord(),
		message: gotext.Get("Move the cursor and press enter to plan a route"),
	}
}

// Run opens the terminal screen and browses l until the user quits
func Run(l *level.Level, seed int64) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	b := New(screen, l, seed)
	b.Draw()
	for {
		if b.HandleEvent(screen.PollEvent()) {
			return nil
		}
		b.Draw()
	}
}

// HandleEvent applies one screen event and reports whether to quit
func (b *Browser) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		b.screen.Sync()
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return true
		}
		intent := engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
			Device:    engineinput.DeviceTerminal,
			Code:      keyCode(ev),
			Timestamp: time.Now(),
		}))
		if intent.Action == engineinput.ActionQuit {
			return true
		}
		b.apply(intent)
	case nil:
		// Screen finalised
		return true
	}
	return false
}

// keyCode converts a tcell key event to a raw input code
func keyCode(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return "arrow_up"
	case tcell.KeyDown:
		return "arrow_down"
	case tcell.KeyLeft:
		return "arrow_left"
	case tcell.KeyRight:
		return "arrow_right"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyEscape:
		return "escape"
	case tcell.KeyF8:
		return "f8"
	case tcell.KeyF12:
		return "f12"
	case tcell.KeyRune:
		return string(ev.Rune())
	}
	return ""
}

func (b *Browser) apply(intent engineinput.Intent) {
	l := b.level
	switch intent.Action {
	case engineinput.ActionCursorUp:
		b.moveCursor(world.North)
	case engineinput.ActionCursorDown:
		b.moveCursor(world.South)
	case engineinput.ActionCursorLeft:
		b.moveCursor(world.West)
	case engineinput.ActionCursorRight:
		b.moveCursor(world.East)
	case engineinput.ActionRoute:
		b.setRoute(l.PathTo(l.ToWorld(l.PlayerCoord()), l.ToWorld(b.cursor), nil))
		if len(b.route) == 0 {
			b.warn(gotext.Get("No route to %s", b.cursor))
		} else {
			b.info(gotext.Get("Route to %s: %d steps", b.cursor, len(b.route)))
		}
	case engineinput.ActionWander:
		b.setRoute(l.Path(l.ToWorld(l.PlayerCoord()), false, nil))
		if len(b.route) == 0 {
			b.warn(gotext.Get("Nowhere to wander"))
		} else {
			b.info(gotext.Get("Wander route: %d steps", len(b.route)))
		}
	case engineinput.ActionClearRoute:
		b.route = nil
		b.info("")
	case engineinput.ActionMovePlayer:
		if !l.Grid().IsPath(b.cursor) {
			b.warn(gotext.Get("The player cannot stand on %s", b.cursor))
			return
		}
		l.UpdatePlayerPosition(l.ToWorld(b.cursor))
		b.route = nil
		b.info(gotext.Get("Player moved to %s", b.cursor))
	case engineinput.ActionToggleObstacle:
		b.toggleObstacle()
	case engineinput.ActionDumpMap:
		path, err := devtools.DumpLevelToFile(l, b.seed)
		if err != nil {
			b.warn(gotext.Get("Map dump failed: %v", err))
			return
		}
		b.info(gotext.Get("Map dumped to %s", path))
	case engineinput.ActionScreenshot:
		name, err := devtools.SaveScreenshotHTML(l)
		if err != nil {
			b.warn(gotext.Get("Screenshot failed: %v", err))
			return
		}
		b.info(gotext.Get("Screenshot saved to %s", name))
	case engineinput.ActionRegenerate:
		b.warn(gotext.Get("Regeneration is only available in the window viewer"))
	}
}

func (b *Browser) moveCursor(dir world.Direction) {
	next := b.cursor.Step(dir)
	if b.level.Grid().InBounds(next) {
		b.cursor = next
	}
}

func (b *Browser) setRoute(path []world.Vec3) {
	b.route = b.route[:0]
	for _, p := range path {
		b.route = append(b.route, b.level.ToGrid(p))
	}
}

func (b *Browser) toggleObstacle() {
	l := b.level
	if !l.Grid().IsPath(b.cursor) {
		b.warn(gotext.Get("Obstacles can only go on open floor"))
		return
	}
	p := l.ToWorld(b.cursor)
	if l.IsObstacle(p) {
		l.RemoveObstacle(p)
		b.info(gotext.Get("Obstacle removed at %s", b.cursor))
	} else {
		l.AddObstacle(p)
		b.info(gotext.Get("Obstacle added at %s", b.cursor))
	}
	b.route = nil
}

func (b *Browser) info(msg string) {
	b.message = msg
	b.denied = false
}

func (b *Browser) warn(msg string) {
	b.message = msg
	b.denied = true
}

// Draw renders the map, status and help lines
func (b *Browser) Draw() {
	b.screen.Clear()

	l := b.level
	g := l.Grid()

	tankAt := make(map[world.Coord]tanks.Type)
	for _, e := range l.Entries() {
		tankAt[g.IndexToCoord(e.Index)] = e.Type
	}
	obstacles := make(map[world.Coord]bool)
	for _, c := range l.Obstacles() {
		obstacles[c] = true
	}
	onRoute := make(map[world.Coord]bool, len(b.route))
	for _, c := range b.route {
		onRoute[c] = true
	}

	g.ForEachCell(func(cell *world.Cell) {
		c := cell.Coord()
		r, style := cellRune(cell, tankAt, obstacles[c], onRoute[c])
		if c == l.PlayerCoord() {
			r, style = '@', stylePlayer
		}
		if c == b.cursor {
			style = style.Reverse(true)
		}
		// Two columns per cell keeps the map roughly square
		b.screen.SetContent(2*c.X, c.Y, r, nil, style)
		b.screen.SetContent(2*c.X+1, c.Y, ' ', nil, styleDefault)
	})

	y := g.Height() + 1
	b.drawText(0, y, styleDefault, gotext.Get("%dx%d arena, %d walls, %d tanks, rating %.2f", g.Width(), g.Height(), g.WallCount(), len(l.Entries()), l.Rating())+"  "+b.cursor.String())
	msgStyle := styleSubtle
	if b.denied {
		msgStyle = styleDenied
	}
	b.drawText(0, y+1, msgStyle, b.message)
	b.drawText(0, y+2, styleSubtle, gotext.Get("arrows/hjkl: cursor  enter: route  m: move player  o: obstacle  w: wander  c: clear  F8: dump  F12: screenshot  q: quit"))

	b.screen.Show()
}

func cellRune(cell *world.Cell, tankAt map[world.Coord]tanks.Type, obstacle, route bool) (rune, tcell.Style) {
	if t, ok := tankAt[cell.Coord()]; ok {
		switch {
		case t == tanks.Player:
			return 'P', stylePlayer
		case t.IsStatic():
			return rune('0' + t.Code()%10), styleStatic
		default:
			return rune('0' + t.Code()%10), styleTank
		}
	}
	switch {
	case cell.IsWall():
		return 'X', styleWall
	case obstacle:
		return '#', styleObstacle
	case route:
		return '*', styleRoute
	default:
		return '_', styleFloor
	}
}

func (b *Browser) drawText(x, y int, style tcell.Style, s string) {
	for _, r := range s {
		b.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
