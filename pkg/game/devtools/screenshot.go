package devtools

import (
	"fmt"
	"html"
	"os"
	"strings"
	"time"

	"tankarena/pkg/engine/world"
	"tankarena/pkg/game/level"
	"tankarena/pkg/game/tanks"
)

// tankClasses maps tank types to the CSS classes of the screenshot palette
var tankClasses = map[tanks.Type]string{
	tanks.Player: "player",
	tanks.Brown:  "tank-brown",
	tanks.Grey:   "tank-grey",
	tanks.Teal:   "tank-teal",
	tanks.Yellow: "tank-yellow",
	tanks.Pink:   "tank-pink",
	tanks.Green:  "tank-green",
	tanks.Violet: "tank-violet",
	tanks.White:  "tank-white",
	tanks.Black:  "tank-black",
}

// RenderHTML returns the level map as a standalone HTML page
func RenderHTML(l *level.Level, title string) string {
	g := l.Grid()

	var page strings.Builder

	page.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>` + html.EscapeString(title) + `</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row {
            white-space: pre;
            line-height: 1.2;
            font-size: 16px;
        }
        .player { color: #00ff00; font-weight: bold; }
        .wall { color: #b4b4c8; }
        .floor { color: #555; }
        .obstacle { color: #aa55aa; }
        .tank-brown { color: #96643c; font-weight: bold; }
        .tank-grey { color: #8c8c8c; font-weight: bold; }
        .tank-teal { color: #00aaaa; font-weight: bold; }
        .tank-yellow { color: #f0dc3c; font-weight: bold; }
        .tank-pink { color: #ff96c8; font-weight: bold; }
        .tank-green { color: #288c28; font-weight: bold; }
        .tank-violet { color: #9650dc; font-weight: bold; }
        .tank-white { color: #f5f5f5; font-weight: bold; }
        .tank-black { color: #000; background-color: #666; font-weight: bold; }
        .summary { margin-top: 20px; color: #888; }
    </style>
</head>
<body>
`)

	page.WriteString(fmt.Sprintf(`    <div class="header">%s</div>`+"\n", html.EscapeString(title)))
	page.WriteString(`    <div class="map-container">` + "\n")

	tankAt := make(map[world.Coord]tanks.Type)
	for _, e := range l.Entries() {
		tankAt[g.IndexToCoord(e.Index)] = e.Type
	}
	obstacles := make(map[world.Coord]bool)
	for _, c := range l.Obstacles() {
		obstacles[c] = true
	}

	for y := 0; y < g.Height(); y++ {
		page.WriteString(`        <div class="map-row">`)
		for x := 0; x < g.Width(); x++ {
			c := world.Coord{X: x, Y: y}
			icon, class := cellHTMLInfo(l, c, tankAt, obstacles)
			page.WriteString(fmt.Sprintf(`<span class="%s">%s</span> `, class, icon))
		}
		page.WriteString("</div>\n")
	}
	page.WriteString(`    </div>` + "\n")

	page.WriteString(fmt.Sprintf(`    <div class="summary">%dx%d, %d walls, %d tanks, rating %.2f</div>`+"\n",
		g.Width(), g.Height(), g.WallCount(), len(l.Entries()), l.Rating()))

	page.WriteString(`</body>
</html>
`)
	return page.String()
}

func cellHTMLInfo(l *level.Level, c world.Coord, tankAt map[world.Coord]tanks.Type, obstacles map[world.Coord]bool) (string, string) {
	if t, ok := tankAt[c]; ok {
		return cellSymbol(l, c, tankAt, obstacles), tankClasses[t]
	}
	if l.Grid().IsWall(c) {
		return "▒", "wall"
	}
	if obstacles[c] {
		return "#", "obstacle"
	}
	return "·", "floor"
}

// SaveScreenshotHTML saves the level map as a timestamped HTML file and
// returns the file name
func SaveScreenshotHTML(l *level.Level) (string, error) {
	timestamp := time.Now().Format("20060102-150405")
	filename := fmt.Sprintf("screenshot-%s.html", timestamp)
	return filename, SaveHTML(l, filename)
}

// SaveHTML writes the level map as HTML to path
func SaveHTML(l *level.Level, path string) error {
	return os.WriteFile(path, []byte(RenderHTML(l, "Tank Arena")), 0644)
}
