// Package tanks holds the tank type enumeration and its static metadata:
// display codes, whether a type is stationary, the difficulty score a type
// contributes to a map, and how likely it is to appear at a difficulty level.
package tanks

import (
	"errors"
	"fmt"

	"tankarena/pkg/engine/world"
)

// Type identifies a tank kind. The numeric value doubles as the tank's code in
// compressed maps and explicit placement arrays.
type Type int

const (
	Player Type = iota
	Brown
	Grey
	Teal
	Yellow
	Pink
	Green
	Violet
	White
	Black

	typeCount
)

// ErrUnknownCode is returned when a code does not name a tank type
var ErrUnknownCode = errors.New("unknown tank code")

// Weighting describes how often a type is drawn as difficulty rises. A type is
// unavailable below Unlock; from there its weight starts at Base, grows by
// Growth per level and is capped at Cap.
type Weighting struct {
	Unlock int
	Base   float64
	Growth float64
	Cap    float64
}

// At returns the draw weight at the given difficulty level
func (w Weighting) At(level int) float64 {
	if level < w.Unlock {
		return 0
	}
	weight := w.Base + w.Growth*float64(level-w.Unlock)
	if weight > w.Cap {
		weight = w.Cap
	}
	if weight < 0 {
		return 0
	}
	return weight
}

// Info is the static metadata attached to a tank type
type Info struct {
	Name   string
	Static bool
	// Score is the difficulty a type adds the first time it appears on a map
	Score  float64
	Weight Weighting
}

var typeInfo = [typeCount]Info{
	Player: {Name: "player"},
	Brown:  {Name: "brown", Static: true, Score: 1, Weight: Weighting{Unlock: 0, Base: 4, Growth: -0.5, Cap: 4}},
	Grey:   {Name: "grey", Score: 2, Weight: Weighting{Unlock: 1, Base: 3, Growth: 0, Cap: 3}},
	Teal:   {Name: "teal", Score: 3, Weight: Weighting{Unlock: 2, Base: 1, Growth: 0.5, Cap: 3}},
	Yellow: {Name: "yellow", Score: 4, Weight: Weighting{Unlock: 3, Base: 1, Growth: 0.5, Cap: 2.5}},
	Pink:   {Name: "pink", Score: 5, Weight: Weighting{Unlock: 4, Base: 1, Growth: 0.5, Cap: 2.5}},
	Green:  {Name: "green", Static: true, Score: 6, Weight: Weighting{Unlock: 5, Base: 0.5, Growth: 0.5, Cap: 2}},
	Violet: {Name: "violet", Score: 7, Weight: Weighting{Unlock: 6, Base: 0.5, Growth: 0.5, Cap: 2}},
	White:  {Name: "white", Score: 8, Weight: Weighting{Unlock: 8, Base: 0.5, Growth: 0.25, Cap: 1.5}},
	Black:  {Name: "black", Score: 10, Weight: Weighting{Unlock: 10, Base: 0.25, Growth: 0.25, Cap: 1}},
}

// AllTypes returns every tank type in enumeration order
func AllTypes() []Type {
	types := make([]Type, 0, typeCount)
	for t := Player; t < typeCount; t++ {
		types = append(types, t)
	}
	return types
}

// FromCode converts a stored code back to a Type
func FromCode(code int) (Type, error) {
	t := Type(code)
	if !t.IsValid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownCode, code)
	}
	return t, nil
}

// IsValid reports whether t is a known tank type
func (t Type) IsValid() bool {
	return t >= Player && t < typeCount
}

// Code returns the integer code stored in compressed maps
func (t Type) Code() int {
	return int(t)
}

// Info returns the metadata for t. Unknown types get a zero Info.
func (t Type) Info() Info {
	if !t.IsValid() {
		return Info{}
	}
	return typeInfo[t]
}

// IsStatic reports whether tanks of this type never move
func (t Type) IsStatic() bool {
	return t.Info().Static
}

// Score returns the first-appearance difficulty score of t
func (t Type) Score() float64 {
	return t.Info().Score
}

func (t Type) String() string {
	if !t.IsValid() {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeInfo[t].Name
}

// Entry records one placed tank. Position sits at the entity height of the
// grid; Index is the linear grid index of the tank's cell.
type Entry struct {
	Type     Type
	Position world.Vec3
	Index    int
}

// IsPlayer reports whether the entry is the player tank
func (e Entry) IsPlayer() bool {
	return e.Type == Player
}

// Score averages the first-appearance scores of every non-player entry.
// A map without opponents scores 0.
func Score(entries []Entry) float64 {
	if len(entries) < 2 {
		return 0
	}
	var sum float64
	for _, e := range entries {
		if !e.IsPlayer() {
			sum += e.Type.Score()
		}
	}
	return sum / float64(len(entries)-1)
}
