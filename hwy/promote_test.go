package hwy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromoteInt8x8(t *testing.T) {
	v := Int8x8{-128, -1, 0, 127, 1, 2, 3, 4}

	assert.Equal(t, Int16x4{-128, -1, 0, 127}, PromoteLowerInt8x8(v))
	assert.Equal(t, Int16x4{1, 2, 3, 4}, PromoteUpperInt8x8(v))
}

func TestPromoteInt16x4(t *testing.T) {
	v := Int16x4{math.MinInt16, -1, 0, math.MaxInt16}
	assert.Equal(t, Int32x4{math.MinInt16, -1, 0, math.MaxInt16}, PromoteInt16x4(v))
}

func TestMulWiden(t *testing.T) {
	tests := []struct {
		name string
		v    Int16x4
		s    int16
		want Int32x4
	}{
		{"zeros", Int16x4{}, 1234, Int32x4{}},
		{"signs", Int16x4{1, -1, 2, -2}, -3, Int32x4{-3, 3, -6, 6}},
		{"int8 range", Int16x4{-128, 127, 1, 0}, math.MaxInt16, Int32x4{-128 * math.MaxInt16, 127 * math.MaxInt16, math.MaxInt16, 0}},
		{"no wrap at extremes", Int16x4{math.MinInt16, math.MaxInt16, 0, 0}, math.MinInt16, Int32x4{1 << 30, -math.MaxInt16 * -math.MinInt16, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.MulWiden(tt.s))
		})
	}
}

func TestTruncate(t *testing.T) {
	v := Int32x4{1, -1, 70000, -70000}
	got := v.Truncate()

	// Truncation keeps the low 16 bits.
	for i := range 4 {
		assert.Equal(t, int16(v[i]), got[i], "lane %d", i)
	}
	assert.Equal(t, int16(4464), got[2])
	assert.Equal(t, int16(-4464), got[3])
}

func TestDemote(t *testing.T) {
	v := Int32x4{1, -1, 70000, -70000}
	assert.Equal(t, Int16x4{1, -1, math.MaxInt16, math.MinInt16}, v.Demote())
}
