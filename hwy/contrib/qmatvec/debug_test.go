//go:build qmvdebug

package qmatvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugAssertions(t *testing.T) {
	require.True(t, debugChecks)

	m := make([]int8, 24)
	v := make([]int16, 4)
	out := make([]int16, 6)

	assert.PanicsWithError(t,
		"qmatvec: MatVecQ8ColMajor 6x4 col-major: rows must be a multiple of 4",
		func() { MatVecQ8ColMajor(m, 6, 4, v, out) })

	assert.PanicsWithError(t,
		"qmatvec: MatVecQ8 4x4 row-major: buffer too short (output has 2 elements, need 4)",
		func() { MatVecQ8(m, 4, 4, v, out[:2]) })

	assert.Panics(t, func() { baseMatVecQ8ColMajorScalar(m, 4, 8, v, out, RoundPerRow) })

	// The row-major path accepts any positive shape.
	assert.NotPanics(t, func() { MatVecQ8(m, 6, 4, v, out) })
}
