// Package renderer turns levels into coloured terminal maps with a localised
// legend.
package renderer

import (
	"fmt"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"tankarena/pkg/engine/terminal"
	"tankarena/pkg/engine/world"
	"tankarena/pkg/game/level"
	"tankarena/pkg/game/tanks"
)

// Map symbols beyond the cell type symbols
const (
	SymbolRoute    = "*"
	SymbolObstacle = "#"
)

// Printer renders coloured maps for the terminal
type Printer struct {
	colorWall     color.Style
	colorPath     color.Style
	colorPlayer   color.Style
	colorTank     color.Style
	colorStatic   color.Style
	colorRoute    color.Style
	colorObstacle color.Style
	colorSubtle   color.Style

	// width is the terminal width the map must fit in
	width int
}

// NewPrinter creates a printer sized to the current terminal
func NewPrinter() *Printer {
	return &Printer{
		colorWall:     color.Style{color.FgGray, color.OpBold},
		colorPath:     color.Style{color.FgGray},
		colorPlayer:   color.Style{color.FgGreen, color.BgBlack, color.OpBold},
		colorTank:     color.Style{color.FgRed, color.OpBold},
		colorStatic:   color.Style{color.FgYellow},
		colorRoute:    color.Style{color.FgCyan, color.OpBold},
		colorObstacle: color.Style{color.FgMagenta},
		colorSubtle:   color.Style{color.FgGray, color.OpBold},
		width:         terminal.GetWidth(),
	}
}

// Level renders the level map with tank codes and an optional route overlay.
// Maps too wide for the terminal drop the spacing between cells.
func (p *Printer) Level(l *level.Level, route []world.Coord) string {
	g := l.Grid()

	onRoute := make(map[world.Coord]bool, len(route))
	for _, c := range route {
		onRoute[c] = true
	}
	obstacles := make(map[world.Coord]bool)
	for _, c := range l.Obstacles() {
		obstacles[c] = true
	}
	tankAt := make(map[world.Coord]tanks.Type)
	for _, e := range l.Entries() {
		tankAt[g.IndexToCoord(e.Index)] = e.Type
	}

	sep := " "
	if 2*g.Width() > p.width {
		sep = ""
	}

	var sb strings.Builder
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := world.Coord{X: x, Y: y}
			sb.WriteString(p.cell(g.Cell(c), tankAt, obstacles[c], onRoute[c]))
			sb.WriteString(sep)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (p *Printer) cell(cell *world.Cell, tankAt map[world.Coord]tanks.Type, obstacle, route bool) string {
	if t, ok := tankAt[cell.Coord()]; ok {
		switch {
		case t == tanks.Player:
			return p.colorPlayer.Sprint(world.Player.Symbol())
		case t.IsStatic():
			return p.colorStatic.Sprint(tankSymbol(t))
		default:
			return p.colorTank.Sprint(tankSymbol(t))
		}
	}

	switch {
	case cell.IsWall():
		return p.colorWall.Sprint(world.Wall.Symbol())
	case obstacle:
		return p.colorObstacle.Sprint(SymbolObstacle)
	case route:
		return p.colorRoute.Sprint(SymbolRoute)
	default:
		return p.colorPath.Sprint(world.Path.Symbol())
	}
}

// tankSymbol shows opponents by their single-digit code
func tankSymbol(t tanks.Type) string {
	return fmt.Sprintf("%d", t.Code()%10)
}

// Legend explains the symbols used by Level
func (p *Printer) Legend() string {
	lines := []string{
		fmt.Sprintf("%s %s", p.colorWall.Sprint(world.Wall.Symbol()), gotext.Get("wall")),
		fmt.Sprintf("%s %s", p.colorPath.Sprint(world.Path.Symbol()), gotext.Get("open floor")),
		fmt.Sprintf("%s %s", p.colorPlayer.Sprint(world.Player.Symbol()), gotext.Get("player start")),
		fmt.Sprintf("%s %s", p.colorTank.Sprint("1-9"), gotext.Get("opponent, by tank code")),
		fmt.Sprintf("%s %s", p.colorStatic.Sprint("1-9"), gotext.Get("stationary opponent")),
		fmt.Sprintf("%s %s", p.colorRoute.Sprint(SymbolRoute), gotext.Get("planned route")),
	}
	return strings.Join(lines, "\n") + "\n"
}

// Summary lists the level size, wall count, tanks and rating
func (p *Printer) Summary(l *level.Level) string {
	g := l.Grid()
	var sb strings.Builder

	sb.WriteString(gotext.Get("Arena %dx%d with %d walls in %d chunks", g.Width(), g.Height(), g.WallCount(), g.CountChunks()))
	sb.WriteByte('\n')
	for _, e := range l.Entries() {
		c := g.IndexToCoord(e.Index)
		sb.WriteString(p.colorSubtle.Sprint(gotext.Get("  %s tank at %s", e.Type, c)))
		sb.WriteByte('\n')
	}
	sb.WriteString(gotext.Get("Difficulty rating: %.2f", l.Rating()))
	sb.WriteByte('\n')
	return sb.String()
}
