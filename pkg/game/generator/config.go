package generator

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"tankarena/pkg/engine/world"
	"tankarena/pkg/game/tanks"
)

// Default generation limits
const (
	DefaultMinDistanceFromTank   = 2.5
	DefaultMinDistanceFromPlayer = 7
	DefaultMaxAttempts           = 32
)

// ErrInvalidConfig is returned for parameter combinations that can never generate a level
var ErrInvalidConfig = errors.New("invalid generator config")

// Config holds every input to level generation
type Config struct {
	CellSize float64 `json:"cell_size"` // World units per grid cell
	Width    int     `json:"width"`
	Height   int     `json:"height"`

	// Walls
	Walls             int  `json:"walls"`               // Desired wall count
	MaxWallNeighbours int  `json:"max_wall_neighbours"` // Upper bound on a wall's effective wall neighbours
	MaxChunks         int  `json:"max_chunks"`          // Upper bound on isolated wall chunks
	RequireExactWalls bool `json:"require_exact_walls"` // Retry until exactly Walls walls are placed

	// Tanks. TankCodes, when set, fixes every slot's type and the tank
	// count; otherwise Tanks slots are filled by weighted draw at Difficulty.
	Tanks                 int     `json:"tanks"` // Tank count including the player
	TankCodes             []int   `json:"tank_codes,omitempty"`
	Difficulty            int     `json:"difficulty"`
	MinDistanceFromTank   float64 `json:"min_distance_from_tank"`
	MinDistanceFromPlayer float64 `json:"min_distance_from_player"`

	Seed        int64 `json:"seed"`         // 0 picks a time-based seed
	MaxAttempts int   `json:"max_attempts"` // Restart cap for the wall and tank searches
	Debug       bool  `json:"debug"`        // Log grid dumps while generating
}

// DefaultConfig returns a playable mid-sized arena
func DefaultConfig() *Config {
	return &Config{
		CellSize:              8,
		Width:                 16,
		Height:                10,
		Walls:                 24,
		MaxWallNeighbours:     5,
		MaxChunks:             6,
		Tanks:                 4,
		Difficulty:            1,
		MinDistanceFromTank:   DefaultMinDistanceFromTank,
		MinDistanceFromPlayer: DefaultMinDistanceFromPlayer,
		MaxAttempts:           DefaultMaxAttempts,
	}
}

// LoadConfig loads a generator config from a JSON file. Fields missing from
// the file keep their default values; a missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read generator config: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse generator config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// TankCount returns the number of tanks to place, player included
func (c *Config) TankCount() int {
	if len(c.TankCodes) > 0 {
		return len(c.TankCodes)
	}
	return c.Tanks
}

// Validate reports the first problem that makes the config unusable
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: grid dimensions must be positive, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.Width > world.MaxDimension || c.Height > world.MaxDimension:
		return fmt.Errorf("%w: grid dimensions %dx%d exceed %d per side", ErrInvalidConfig, c.Width, c.Height, world.MaxDimension)
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell size must be positive, got %v", ErrInvalidConfig, c.CellSize)
	case c.Walls < 0 || c.Walls >= c.Width*c.Height:
		return fmt.Errorf("%w: wall count %d does not fit a %dx%d grid", ErrInvalidConfig, c.Walls, c.Width, c.Height)
	case c.MaxWallNeighbours < 0 || c.MaxWallNeighbours > 8:
		return fmt.Errorf("%w: max wall neighbours must be within 0..8, got %d", ErrInvalidConfig, c.MaxWallNeighbours)
	case c.MaxChunks < 0:
		return fmt.Errorf("%w: max chunks must not be negative", ErrInvalidConfig)
	case c.TankCount() < 1:
		return fmt.Errorf("%w: at least the player tank is required", ErrInvalidConfig)
	case c.MinDistanceFromTank < 0 || c.MinDistanceFromPlayer < 0:
		return fmt.Errorf("%w: tank distances must not be negative", ErrInvalidConfig)
	case c.MaxAttempts <= 0:
		return fmt.Errorf("%w: max attempts must be positive, got %d", ErrInvalidConfig, c.MaxAttempts)
	}

	for i, code := range c.TankCodes {
		t, err := tanks.FromCode(code)
		if err != nil {
			return fmt.Errorf("%w: slot %d: %v", ErrInvalidConfig, i, err)
		}
		if i == 0 && t != tanks.Player {
			return fmt.Errorf("%w: slot 0 must hold the player code %d, got %d", ErrInvalidConfig, tanks.Player.Code(), code)
		}
		if i > 0 && t == tanks.Player {
			return fmt.Errorf("%w: slot %d holds a second player", ErrInvalidConfig, i)
		}
	}
	return nil
}
