package qmatvec

import "fmt"

// Layout is the storage order of a matrix buffer.
type Layout int

const (
	// RowMajor stores element (r, c) at offset r*cols + c.
	RowMajor Layout = iota

	// ColMajor stores element (r, c) at offset c*rows + r.
	ColMajor
)

// String returns a short name for the layout.
func (l Layout) String() string {
	switch l {
	case RowMajor:
		return "row-major"
	case ColMajor:
		return "col-major"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// Offset returns the buffer offset of element (r, c) of a rows x cols matrix.
func (l Layout) Offset(r, c, rows, cols int) int {
	if l == ColMajor {
		return c*rows + r
	}
	return r*cols + c
}

func (l Layout) valid() bool {
	return l == RowMajor || l == ColMajor
}

// Transpose converts a row-major rows x cols matrix into column-major order.
// src and dst must not overlap and must both hold rows*cols elements.
func Transpose(src []int8, rows, cols int, dst []int8) {
	for i := range rows {
		row := src[i*cols : (i+1)*cols]
		for j, w := range row {
			dst[j*rows+i] = w
		}
	}
}

// TransposeToRowMajor converts a column-major rows x cols matrix back into
// row-major order.
func TransposeToRowMajor(src []int8, rows, cols int, dst []int8) {
	for j := range cols {
		col := src[j*rows : (j+1)*rows]
		for i, w := range col {
			dst[i*cols+j] = w
		}
	}
}
