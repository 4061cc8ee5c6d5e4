package ebiten

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/leonelquinteros/gotext"

	engineinput "tankarena/pkg/engine/input"
	"tankarena/pkg/engine/world"
	"tankarena/pkg/game/devtools"
)

// Update handles input (Ebiten interface)
func (v *Viewer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !v.windowOpenedLogged {
		v.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Viewer window opened (%dx%d)", w, h)
	}

	v.hover, v.hovered = v.cellAt(ebiten.CursorPosition())

	for _, intent := range v.checkInput() {
		if intent.Action == engineinput.ActionQuit {
			return ebiten.Termination
		}
		v.apply(intent)
	}
	return nil
}

// keyCodes are the keys the viewer polls, by raw input code
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyW:              "w",
	ebiten.KeyC:              "c",
	ebiten.KeyR:              "r",
	ebiten.KeyQ:              "q",
	ebiten.KeyEscape:         "escape",
	ebiten.KeyF8:             "f8",
	ebiten.KeyF12:            "f12",
	ebiten.KeyEqual:          "=",
	ebiten.KeyNumpadAdd:      "numpad_add",
	ebiten.KeyMinus:          "-",
	ebiten.KeyNumpadSubtract: "numpad_subtract",
}

// checkInput polls keyboard and mouse and maps the events to intents
func (v *Viewer) checkInput() []engineinput.Intent {
	var intents []engineinput.Intent
	emit := func(device engineinput.Device, code string) {
		intent := engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
			Device:    device,
			Code:      code,
			Timestamp: time.Now(),
		}))
		if intent.Action != engineinput.ActionNone {
			intents = append(intents, intent)
		}
	}

	for key, code := range keyCodes {
		if inpututil.IsKeyJustPressed(key) {
			emit(engineinput.DeviceKeyboard, code)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			emit(engineinput.DeviceMouse, "shift_mouse_left")
		} else {
			emit(engineinput.DeviceMouse, "mouse_left")
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		emit(engineinput.DeviceMouse, "mouse_right")
	}
	return intents
}

// apply carries out one intent. Cell actions act on the hovered cell.
func (v *Viewer) apply(intent engineinput.Intent) {
	switch intent.Action {
	case engineinput.ActionWander:
		v.planWander()
	case engineinput.ActionClearRoute:
		v.route = nil
		v.info("")
	case engineinput.ActionRegenerate:
		v.regenerateLevel()
	case engineinput.ActionDumpMap:
		v.dumpMap()
	case engineinput.ActionScreenshot:
		v.screenshot()
	case engineinput.ActionZoomIn:
		v.zoom(4)
	case engineinput.ActionZoomOut:
		v.zoom(-4)
	}

	if !v.hovered {
		return
	}
	switch intent.Action {
	case engineinput.ActionRoute:
		v.planRoute(v.hover)
	case engineinput.ActionMovePlayer:
		v.movePlayer(v.hover)
	case engineinput.ActionToggleObstacle:
		v.toggleObstacle(v.hover)
	}
}

// cellAt converts a logical screen position to the grid cell under it
func (v *Viewer) cellAt(x, y int) (world.Coord, bool) {
	x -= marginSize
	y -= marginSize
	if x < 0 || y < 0 {
		return world.Coord{}, false
	}
	c := world.Coord{X: x / v.tileSize, Y: y / v.tileSize}
	return c, v.level.Grid().InBounds(c)
}

// planRoute asks the level for a path from the player to target
func (v *Viewer) planRoute(target world.Coord) {
	l := v.level
	path := l.PathTo(l.ToWorld(l.PlayerCoord()), l.ToWorld(target), nil)
	v.setRoute(path)
	if len(v.route) == 0 {
		v.warn(gotext.Get("No route to %s", target))
		return
	}
	v.info(gotext.Get("Route to %s: %d steps", target, len(v.route)))
}

// planWander plans the route a patrolling tank at the player's cell would take
func (v *Viewer) planWander() {
	l := v.level
	v.setRoute(l.Path(l.ToWorld(l.PlayerCoord()), false, nil))
	if len(v.route) == 0 {
		v.warn(gotext.Get("Nowhere to wander"))
		return
	}
	v.info(gotext.Get("Wander route: %d steps", len(v.route)))
}

func (v *Viewer) setRoute(path []world.Vec3) {
	v.route = v.route[:0]
	for _, p := range path {
		v.route = append(v.route, v.level.ToGrid(p))
	}
}

// movePlayer relocates the player's runtime position
func (v *Viewer) movePlayer(target world.Coord) {
	if !v.level.Grid().IsPath(target) {
		v.warn(gotext.Get("The player cannot stand on %s", target))
		return
	}
	v.level.UpdatePlayerPosition(v.level.ToWorld(target))
	v.route = nil
	v.info(gotext.Get("Player moved to %s", target))
}

// toggleObstacle adds or removes a runtime obstacle on an open cell
func (v *Viewer) toggleObstacle(target world.Coord) {
	l := v.level
	if !l.Grid().IsPath(target) {
		v.warn(gotext.Get("Obstacles can only go on open floor"))
		return
	}

	p := l.ToWorld(target)
	if l.IsObstacle(p) {
		l.RemoveObstacle(p)
		v.info(gotext.Get("Obstacle removed at %s", target))
	} else {
		l.AddObstacle(p)
		v.info(gotext.Get("Obstacle added at %s", target))
	}
	v.route = nil
}

func (v *Viewer) regenerateLevel() {
	if v.regenerate == nil {
		return
	}

	l, seed, err := v.regenerate()
	if err != nil {
		log.Printf("Regeneration failed: %v", err)
		v.warn(gotext.Get("Regeneration failed: %v", err))
		return
	}

	v.level = l
	v.seed = seed
	v.route = nil
	v.info(gotext.Get("New arena, rating %.2f", l.Rating()))
}

// dumpMap writes the debug map dump next to the working directory
func (v *Viewer) dumpMap() {
	path, err := devtools.DumpLevelToFile(v.level, v.seed)
	if err != nil {
		log.Printf("Map dump failed: %v", err)
		v.warn(gotext.Get("Map dump failed: %v", err))
		return
	}
	log.Printf("Map dumped to %s", path)
	v.info(gotext.Get("Map dumped to %s", path))
}

func (v *Viewer) screenshot() {
	name, err := devtools.SaveScreenshotHTML(v.level)
	if err != nil {
		log.Printf("Screenshot failed: %v", err)
		v.warn(gotext.Get("Screenshot failed: %v", err))
		return
	}
	v.info(gotext.Get("Screenshot saved to %s", name))
}

// zoom changes the tile size, keeping it above the minimum
func (v *Viewer) zoom(delta int) {
	size := v.tileSize + delta
	if size < minTileSize {
		size = minTileSize
	}
	v.tileSize = size
	w, h := v.screenSize()
	ebiten.SetWindowSize(w, h)
}

func (v *Viewer) info(msg string) {
	v.message = msg
	v.denied = false
}

func (v *Viewer) warn(msg string) {
	v.message = msg
	v.denied = true
}
