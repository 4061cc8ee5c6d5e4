package ebiten

import (
	"image/color"

	"tankarena/pkg/game/tanks"
)

// Color palette for the arena viewer
var (
	colorBackground = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorFloor      = color.RGBA{50, 50, 70, 255}    // Open floor
	colorWall       = color.RGBA{180, 180, 200, 255} // Light gray-blue
	colorRoute      = color.RGBA{60, 120, 160, 255}  // Planned route
	colorObstacle   = color.RGBA{120, 60, 120, 255}  // Runtime obstacle
	colorHover      = color.RGBA{255, 255, 255, 90}  // Cursor highlight
	colorText       = color.RGBA{200, 210, 245, 255} // Soft off-white
	colorSubtle     = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorDenied     = color.RGBA{255, 100, 100, 255} // Bright red
)

// tankColors follows the colour each tank type is named after
var tankColors = map[tanks.Type]color.RGBA{
	tanks.Player: {0, 255, 0, 255},
	tanks.Brown:  {150, 100, 50, 255},
	tanks.Grey:   {140, 140, 140, 255},
	tanks.Teal:   {0, 170, 170, 255},
	tanks.Yellow: {240, 220, 60, 255},
	tanks.Pink:   {255, 150, 200, 255},
	tanks.Green:  {40, 140, 40, 255},
	tanks.Violet: {150, 80, 220, 255},
	tanks.White:  {245, 245, 245, 255},
	tanks.Black:  {10, 10, 10, 255},
}

// Layout constants, in logical pixels
const (
	defaultTileSize = 32
	minTileSize     = 8
	marginSize      = 16
	footerLines     = 3
	baseFontSize    = 14.0
)
