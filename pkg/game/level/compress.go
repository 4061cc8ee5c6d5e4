package level

import (
	"errors"
	"fmt"

	"tankarena/pkg/engine/world"
	"tankarena/pkg/game/tanks"
)

// ErrInvalidMap is returned when a compressed map cannot be replayed
var ErrInvalidMap = errors.New("invalid compressed map")

// CompressedMap is the index form of a level: wall and tank cells as linear
// indices (x + y*width) and the tank types aligned with Tanks. Tank order is
// placement order, so the first tank is the player.
type CompressedMap struct {
	Width     int   `json:"width"`
	Height    int   `json:"height"`
	Walls     []int `json:"walls"`
	Tanks     []int `json:"tanks"`
	TankTypes []int `json:"tank_types"`
}

// Compress serializes the wall and tank placement of l
func Compress(l *Level) CompressedMap {
	g := l.grid
	cm := CompressedMap{
		Width:     g.Width(),
		Height:    g.Height(),
		Walls:     make([]int, 0, g.WallCount()),
		Tanks:     make([]int, 0, len(l.entries)),
		TankTypes: make([]int, 0, len(l.entries)),
	}

	for _, w := range g.WallCoords() {
		cm.Walls = append(cm.Walls, g.CoordToIndex(w))
	}
	for _, e := range l.entries {
		cm.Tanks = append(cm.Tanks, e.Index)
		cm.TankTypes = append(cm.TankTypes, e.Type.Code())
	}
	return cm
}

// Validate checks that cm describes a grid that can be replayed
func (cm CompressedMap) Validate() error {
	if cm.Width <= 0 || cm.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidMap, cm.Width, cm.Height)
	}
	if cm.Width > world.MaxDimension || cm.Height > world.MaxDimension {
		return fmt.Errorf("%w: dimensions %dx%d exceed %d per side", ErrInvalidMap, cm.Width, cm.Height, world.MaxDimension)
	}
	if len(cm.Tanks) != len(cm.TankTypes) {
		return fmt.Errorf("%w: %d tanks but %d tank types", ErrInvalidMap, len(cm.Tanks), len(cm.TankTypes))
	}

	size := cm.Width * cm.Height
	for _, list := range [][]int{cm.Walls, cm.Tanks} {
		for _, idx := range list {
			if idx < 0 || idx >= size {
				return fmt.Errorf("%w: index %d outside a %dx%d grid", ErrInvalidMap, idx, cm.Width, cm.Height)
			}
		}
	}

	for i, code := range cm.TankTypes {
		t, err := tanks.FromCode(code)
		if err != nil {
			return fmt.Errorf("%w: tank %d: %v", ErrInvalidMap, i, err)
		}
		if (i == 0) != (t == tanks.Player) {
			return fmt.Errorf("%w: the player must be exactly the first tank", ErrInvalidMap)
		}
	}
	return nil
}

// Restore replays cm onto a fresh grid with the given cell size: walls then
// tanks, in array order, without any validity rules. The rating is recomputed.
func Restore(cm CompressedMap, cellSize float64) (*Level, error) {
	if err := cm.Validate(); err != nil {
		return nil, err
	}
	if cellSize <= 0 {
		return nil, fmt.Errorf("%w: cell size %v", ErrInvalidMap, cellSize)
	}

	g := world.NewGrid(cm.Width, cm.Height, cellSize)
	for _, idx := range cm.Walls {
		if !g.AddWall(g.IndexToCoord(idx)) {
			return nil, fmt.Errorf("%w: duplicate wall at index %d", ErrInvalidMap, idx)
		}
	}

	entries := make([]tanks.Entry, 0, len(cm.Tanks))
	for i, idx := range cm.Tanks {
		c := g.IndexToCoord(idx)
		if !g.AddTank(c) {
			return nil, fmt.Errorf("%w: tank at index %d is not on an open cell", ErrInvalidMap, idx)
		}
		entries = append(entries, tanks.Entry{
			Type:     tanks.Type(cm.TankTypes[i]),
			Position: g.ToWorld(c, g.EntityHeight()),
			Index:    idx,
		})
	}

	return New(g, entries, 0), nil
}
