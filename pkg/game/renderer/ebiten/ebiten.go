// Package ebiten provides a windowed viewer for generated arenas. It draws the
// grid and tanks, and lets the user exercise the level's path queries with the
// mouse.
package ebiten

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"

	"tankarena/pkg/engine/world"
	"tankarena/pkg/game/level"
)

// Viewer is an ebiten.Game showing a single level
type Viewer struct {
	level *level.Level
	seed  int64

	// regenerate builds a replacement level and reports its seed, nil
	// disables the key binding
	regenerate func() (*level.Level, int64, error)

	tileSize int

	// route is the last planned path, in grid coordinates
	route   []world.Coord
	hover   world.Coord
	hovered bool
	message string
	denied  bool

	fonts fontCache

	windowOpenedLogged bool
}

// New creates a viewer for l, generated from seed. A tileSize below the
// minimum uses the default.
func New(l *level.Level, seed int64, tileSize int) (*Viewer, error) {
	if tileSize < minTileSize {
		tileSize = defaultTileSize
	}

	fonts, err := newFontCache()
	if err != nil {
		return nil, err
	}

	return &Viewer{
		level:    l,
		seed:     seed,
		tileSize: tileSize,
		fonts:    fonts,
		message:  gotext.Get("Click a cell to plan a route from the player"),
	}, nil
}

// SetRegenerate installs the function the R key uses to replace the level
func (v *Viewer) SetRegenerate(fn func() (*level.Level, int64, error)) {
	v.regenerate = fn
}

// screenSize returns the logical size needed to show the whole grid
func (v *Viewer) screenSize() (int, int) {
	g := v.level.Grid()
	width := g.Width()*v.tileSize + 2*marginSize
	height := g.Height()*v.tileSize + 2*marginSize + footerLines*v.lineHeight()
	return width, height
}

// Layout returns the logical screen size; ebiten scales it to the window
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.screenSize()
}

// Run opens the viewer window and blocks until it is closed
func Run(v *Viewer) error {
	w, h := v.screenSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(gotext.Get("Tank Arena"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	log.Printf("Opening viewer (%dx%d)", w, h)
	return ebiten.RunGame(v)
}
