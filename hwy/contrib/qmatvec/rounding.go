package qmatvec

import (
	"fmt"
	"strings"

	"github.com/ajroetker/qmatvec/hwy"
)

const (
	// Shift is the number of fractional bits removed from each accumulator:
	// outputs are scaled by 1/128.
	Shift = 7

	// Bias is added before the shift so that the division rounds half up.
	Bias = 1 << (Shift - 1)
)

// Rounding selects where the fixed-point rescale is applied.
type Rounding int

const (
	// RoundPerRow accumulates the exact row sum and rounds it once.
	RoundPerRow Rounding = iota

	// RoundPerTerm rounds every product m[r,c]*v[c] before accumulating it.
	// The error of each term compounds, so results drift from RoundPerRow by
	// up to one unit per column.
	RoundPerTerm
)

// String returns the flag spelling of the discipline.
func (r Rounding) String() string {
	switch r {
	case RoundPerRow:
		return "per-row"
	case RoundPerTerm:
		return "per-term"
	default:
		return fmt.Sprintf("Rounding(%d)", int(r))
	}
}

// ParseRounding parses "per-row" or "per-term" (case-insensitive, "row" and
// "term" also accepted).
func ParseRounding(s string) (Rounding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "per-row", "row":
		return RoundPerRow, nil
	case "per-term", "term":
		return RoundPerTerm, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrRounding, s)
}

func (r Rounding) valid() bool {
	return r == RoundPerRow || r == RoundPerTerm
}

// rescale applies the rounding shift to a single accumulator.
func rescale(acc int32) int32 {
	return hwy.RoundingShift(acc, Shift)
}
