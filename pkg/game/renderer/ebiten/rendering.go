package ebiten

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"tankarena/pkg/engine/world"
	"tankarena/pkg/game/tanks"
)

// Draw renders the level to the screen (Ebiten interface)
func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	l := v.level
	g := l.Grid()
	ts := float32(v.tileSize)

	obstacles := make(map[world.Coord]bool)
	for _, c := range l.Obstacles() {
		obstacles[c] = true
	}
	onRoute := make(map[world.Coord]bool, len(v.route))
	for _, c := range v.route {
		onRoute[c] = true
	}

	g.ForEachCell(func(cell *world.Cell) {
		c := cell.Coord()
		x, y := v.cellOrigin(c)

		bg := colorFloor
		switch {
		case cell.IsWall():
			bg = colorWall
		case obstacles[c]:
			bg = colorObstacle
		case onRoute[c]:
			bg = colorRoute
		}
		// One pixel gap keeps the grid lines visible
		vector.DrawFilledRect(screen, x, y, ts-1, ts-1, bg, false)
	})

	for _, e := range l.Entries() {
		v.drawTank(screen, e, g.IndexToCoord(e.Index))
	}

	// The player's runtime position may have moved off its start cell
	px, py := v.cellOrigin(l.PlayerCoord())
	vector.StrokeRect(screen, px+1, py+1, ts-3, ts-3, 2, tankColors[tanks.Player], false)

	if v.hovered {
		hx, hy := v.cellOrigin(v.hover)
		vector.DrawFilledRect(screen, hx, hy, ts-1, ts-1, colorHover, false)
	}

	v.drawStatus(screen)
}

// cellOrigin returns the top-left screen position of a grid cell
func (v *Viewer) cellOrigin(c world.Coord) (float32, float32) {
	return float32(marginSize + c.X*v.tileSize), float32(marginSize + c.Y*v.tileSize)
}

func (v *Viewer) drawTank(screen *ebiten.Image, e tanks.Entry, c world.Coord) {
	x, y := v.cellOrigin(c)
	ts := float32(v.tileSize)
	inset := ts / 6

	vector.DrawFilledRect(screen, x+inset, y+inset, ts-2*inset-1, ts-2*inset-1, tankColors[e.Type], false)

	label := "P"
	if !e.IsPlayer() {
		label = fmt.Sprintf("%d", e.Type.Code())
	}
	v.drawText(screen, label, v.getTileFontSize(), float64(x+ts/2), float64(y+ts/2), labelColor(e.Type), text.AlignCenter)
}

// labelColor keeps tank codes readable on light and dark tank colours
func labelColor(t tanks.Type) color.Color {
	c := tankColors[t]
	if int(c.R)+int(c.G)+int(c.B) > 3*128 {
		return color.Black
	}
	return color.White
}

func (v *Viewer) drawStatus(screen *ebiten.Image) {
	l := v.level
	g := l.Grid()
	size := v.getUIFontSize()
	lh := float64(v.lineHeight())
	x := float64(marginSize)
	y := float64(marginSize+g.Height()*v.tileSize) + lh/2

	summary := gotext.Get("%dx%d arena, %d walls, %d tanks, rating %.2f", g.Width(), g.Height(), g.WallCount(), len(l.Entries()), l.Rating())
	if v.hovered {
		summary += "  " + v.hover.String()
	}
	v.drawText(screen, summary, size, x, y, colorText, text.AlignStart)

	msgColor := color.Color(colorSubtle)
	if v.denied {
		msgColor = colorDenied
	}
	v.drawText(screen, v.message, size, x, y+lh, msgColor, text.AlignStart)

	help := gotext.Get("click: route  shift+click: move player  right click: obstacle  W: wander  R: regenerate  F8: dump  F12: screenshot  Q: quit")
	v.drawText(screen, help, size*0.8, x, y+2*lh, colorSubtle, text.AlignStart)
}

// drawText draws s vertically centred on y
func (v *Viewer) drawText(screen *ebiten.Image, s string, size, x, y float64, clr color.Color, align text.Align) {
	if s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, v.fonts.face(size), op)
}
