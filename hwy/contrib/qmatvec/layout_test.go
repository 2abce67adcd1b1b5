package qmatvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranspose(t *testing.T) {
	// 2x3:
	//   [1 2 3]
	//   [4 5 6]
	rowMajor := []int8{1, 2, 3, 4, 5, 6}
	colMajor := make([]int8, 6)
	Transpose(rowMajor, 2, 3, colMajor)
	assert.Equal(t, []int8{1, 4, 2, 5, 3, 6}, colMajor)

	back := make([]int8, 6)
	TransposeToRowMajor(colMajor, 2, 3, back)
	assert.Equal(t, rowMajor, back)
}

func TestLayoutOffset(t *testing.T) {
	const rows, cols = 4, 8
	rowMajor := make([]int8, rows*cols)
	for i := range rowMajor {
		rowMajor[i] = int8(i)
	}
	colMajor := make([]int8, rows*cols)
	Transpose(rowMajor, rows, cols, colMajor)

	for r := range rows {
		for c := range cols {
			assert.Equal(t,
				rowMajor[RowMajor.Offset(r, c, rows, cols)],
				colMajor[ColMajor.Offset(r, c, rows, cols)],
				"element (%d,%d)", r, c)
		}
	}
}

func TestLayoutString(t *testing.T) {
	assert.Equal(t, "row-major", RowMajor.String())
	assert.Equal(t, "col-major", ColMajor.String())
	assert.Equal(t, "Layout(5)", Layout(5).String())
}
