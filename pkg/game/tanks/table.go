package tanks

import (
	"errors"
	"math/rand"
)

// ErrNoTankType is returned when a weighted draw cannot resolve any type.
// This means the table is misconfigured, not that the draw was unlucky.
var ErrNoTankType = errors.New("no tank type can be drawn from the table")

// Weight pairs an opponent type with its draw weight
type Weight struct {
	Type  Type
	Value float64
}

// Table is an ordered list of draw weights. Order matters: the cumulative
// draw walks it front to back.
type Table []Weight

// DefaultTable builds the opponent table for a difficulty level from the
// static weightings, in enumeration order. The player is never drawn.
func DefaultTable(level int) Table {
	table := make(Table, 0, typeCount-1)
	for _, t := range AllTypes() {
		if t == Player {
			continue
		}
		table = append(table, Weight{Type: t, Value: typeInfo[t].Weight.At(level)})
	}
	return table
}

// Total sums the positive weights of the table
func (tb Table) Total() float64 {
	var total float64
	for _, w := range tb {
		if w.Value > 0 {
			total += w.Value
		}
	}
	return total
}

// Pick draws a type with probability proportional to its weight. A value is
// drawn from [0, total) and each weight is subtracted in order; the type that
// takes the value to zero or below is chosen. Zero and negative weights are
// never chosen.
func (tb Table) Pick(rng *rand.Rand) (Type, error) {
	total := tb.Total()
	if total <= 0 {
		return 0, ErrNoTankType
	}

	r := rng.Float64() * total
	last := -1
	for i, w := range tb {
		if w.Value <= 0 {
			continue
		}
		last = i
		r -= w.Value
		if r <= 0 {
			return w.Type, nil
		}
	}

	// Rounding can leave r a hair above zero after the final subtraction
	if last >= 0 {
		return tb[last].Type, nil
	}
	return 0, ErrNoTankType
}
