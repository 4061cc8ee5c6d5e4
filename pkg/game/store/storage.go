// Package store persists compressed arena maps so generated levels can be
// replayed later.
package store

import (
	"errors"
	"fmt"
	"slices"

	"tankarena/pkg/game/level"
)

// ErrNotFound is returned when no map is stored under a name
var ErrNotFound = errors.New("map not found")

// Record is a stored map with the metadata needed to restore it
type Record struct {
	Map      level.CompressedMap `json:"map"`
	CellSize float64             `json:"cell_size"`
	Rating   float64             `json:"rating"`
	Seed     int64               `json:"seed,omitempty"`
}

// NewRecord captures a level for storage
func NewRecord(l *level.Level, seed int64) *Record {
	return &Record{
		Map:      level.Compress(l),
		CellSize: l.Grid().CellSize(),
		Rating:   l.Rating(),
		Seed:     seed,
	}
}

// clone returns a deep copy so stored records never alias caller slices
func (r *Record) clone() *Record {
	c := *r
	c.Map.Walls = slices.Clone(r.Map.Walls)
	c.Map.Tanks = slices.Clone(r.Map.Tanks)
	c.Map.TankTypes = slices.Clone(r.Map.TankTypes)
	return &c
}

// Restore rebuilds the level described by the record
func (r *Record) Restore() (*level.Level, error) {
	return level.Restore(r.Map, r.CellSize)
}

// Storage defines the interface for map persistence
type Storage interface {
	SaveMap(name string, record *Record) error
	LoadMap(name string) (*Record, error)
	ListMaps() ([]string, error)
	DeleteMap(name string) error
	Close() error
}

// Open returns the store of the given kind: "json" treats target as a file
// path, "postgres" as a connection string.
func Open(kind, target string) (Storage, error) {
	switch kind {
	case "json":
		js, err := NewJSONStore(target)
		if err != nil {
			return nil, err
		}
		return js, nil
	case "postgres":
		ps, err := NewPostgresStore(target)
		if err != nil {
			return nil, err
		}
		return ps, nil
	default:
		return nil, fmt.Errorf("unknown store kind %q", kind)
	}
}
