package generator

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "arena.json")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfig_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `{"width": 24, "walls": 40, "tank_codes": [0, 3, 3], "seed": 9}`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	def := DefaultConfig()
	if cfg.Width != 24 || cfg.Walls != 40 || cfg.Seed != 9 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Height != def.Height || cfg.CellSize != def.CellSize || cfg.MaxAttempts != def.MaxAttempts {
		t.Errorf("defaults lost: %+v", cfg)
	}
	if cfg.TankCount() != 3 {
		t.Errorf("TankCount() = %d, want 3", cfg.TankCount())
	}
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Width != DefaultConfig().Width {
		t.Errorf("Width = %d, want default %d", cfg.Width, DefaultConfig().Width)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	if _, err := LoadConfig(writeConfig(t, `{"width": `)); err == nil {
		t.Error("malformed JSON accepted")
	}

	_, err := LoadConfig(writeConfig(t, `{"max_wall_neighbours": 12}`))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadConfig() error = %v, want ErrInvalidConfig", err)
	}

	_, err = LoadConfig(writeConfig(t, `{"width": 4294967296, "height": 4294967296}`))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("oversized grid error = %v, want ErrInvalidConfig", err)
	}
}

func TestDefaultConfig_Valid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}
