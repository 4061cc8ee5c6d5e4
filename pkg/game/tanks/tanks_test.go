package tanks

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

// TestScore_IdenticalOpponents checks that three identical opponents rate as that type's score
func TestScore_IdenticalOpponents(t *testing.T) {
	entries := []Entry{
		{Type: Player},
		{Type: Teal, Index: 3},
		{Type: Teal, Index: 9},
		{Type: Teal, Index: 12},
	}
	if got := Score(entries); got != Teal.Score() {
		t.Errorf("Score() = %v, want %v", got, Teal.Score())
	}
}

func TestScore_Average(t *testing.T) {
	entries := []Entry{{Type: Player}, {Type: Brown}, {Type: Black}}
	want := (Brown.Score() + Black.Score()) / 2
	if got := Score(entries); got != want {
		t.Errorf("Score() = %v, want %v", got, want)
	}
}

func TestScore_NoOpponents(t *testing.T) {
	if got := Score([]Entry{{Type: Player}}); got != 0 {
		t.Errorf("Score(player only) = %v, want 0", got)
	}
	if got := Score(nil); got != 0 {
		t.Errorf("Score(nil) = %v, want 0", got)
	}
}

func TestFromCode(t *testing.T) {
	for _, tt := range AllTypes() {
		got, err := FromCode(tt.Code())
		if err != nil || got != tt {
			t.Errorf("FromCode(%d) = %v, %v; want %v", tt.Code(), got, err, tt)
		}
	}
	for _, code := range []int{-1, int(typeCount), 99} {
		if _, err := FromCode(code); !errors.Is(err, ErrUnknownCode) {
			t.Errorf("FromCode(%d) error = %v, want ErrUnknownCode", code, err)
		}
	}
}

func TestWeighting_At(t *testing.T) {
	w := Weighting{Unlock: 2, Base: 1, Growth: 0.5, Cap: 2}

	tests := []struct {
		level int
		want  float64
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{3, 1.5},
		{4, 2},
		{10, 2},
	}
	for _, tt := range tests {
		if got := w.At(tt.level); got != tt.want {
			t.Errorf("At(%d) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

// TestDefaultTable_NeverDrawsPlayer checks every level has a drawable opponent and no player entry
func TestDefaultTable_NeverDrawsPlayer(t *testing.T) {
	for level := 0; level <= 20; level++ {
		table := DefaultTable(level)
		if table.Total() <= 0 {
			t.Errorf("level %d: table total = %v", level, table.Total())
		}
		for _, w := range table {
			if w.Type == Player {
				t.Errorf("level %d: player present in opponent table", level)
			}
		}
	}
}

func TestPick_Distribution(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	table := Table{
		{Type: Grey, Value: 1},
		{Type: Teal, Value: 0},
		{Type: Pink, Value: 3},
	}

	counts := map[Type]int{}
	const draws = 20000
	for i := 0; i < draws; i++ {
		got, err := table.Pick(rng)
		if err != nil {
			t.Fatalf("Pick() error = %v", err)
		}
		counts[got]++
	}

	if counts[Teal] != 0 {
		t.Errorf("zero-weight type drawn %d times", counts[Teal])
	}
	ratio := float64(counts[Pink]) / draws
	if math.Abs(ratio-0.75) > 0.03 {
		t.Errorf("Pink drawn with frequency %.3f, want about 0.75", ratio)
	}
}

func TestPick_Misconfigured(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tables := map[string]Table{
		"empty":    {},
		"all zero": {{Type: Grey, Value: 0}, {Type: Teal, Value: 0}},
		"negative": {{Type: Grey, Value: -2}},
	}
	for name, table := range tables {
		t.Run(name, func(t *testing.T) {
			if _, err := table.Pick(rng); !errors.Is(err, ErrNoTankType) {
				t.Errorf("Pick() error = %v, want ErrNoTankType", err)
			}
		})
	}
}
