package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
)

// fontCache holds the monospace face used for tank codes and status text
type fontCache struct {
	source     *text.GoTextFaceSource
	cachedFace *text.GoTextFace
	cachedSize float64
}

func newFontCache() (fontCache, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return fontCache{}, fmt.Errorf("failed to load font: %w", err)
	}
	return fontCache{source: source}, nil
}

// face returns a cached face of the given size
func (f *fontCache) face(size float64) *text.GoTextFace {
	if f.cachedFace == nil || f.cachedSize != size {
		f.cachedSize = size
		f.cachedFace = &text.GoTextFace{
			Source: f.source,
			Size:   size,
		}
	}
	return f.cachedFace
}

// getTileFontSize scales the map font with the tile size
func (v *Viewer) getTileFontSize() float64 {
	return baseFontSize * float64(v.tileSize) / float64(defaultTileSize)
}

// getUIFontSize returns the status text size, never smaller than the base size
func (v *Viewer) getUIFontSize() float64 {
	if size := v.getTileFontSize() * 0.75; size > baseFontSize {
		return size
	}
	return baseFontSize
}

// lineHeight is the vertical space one status line takes
func (v *Viewer) lineHeight() int {
	return int(v.getUIFontSize()) + 6
}
