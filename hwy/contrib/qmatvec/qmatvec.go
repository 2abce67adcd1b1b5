package qmatvec

// MatVecQ8 is the scalar reference kernel over a row-major matrix, rounding
// once per row. See BaseMatVecQ8.
func MatVecQ8(m []int8, rows, cols int, v, result []int16) {
	BaseMatVecQ8(m, rows, cols, v, result, RoundPerRow)
}

// MatVecQ8Rounding is MatVecQ8 with an explicit rounding discipline.
func MatVecQ8Rounding(m []int8, rows, cols int, v, result []int16, rnd Rounding) {
	BaseMatVecQ8(m, rows, cols, v, result, rnd)
}

// MatVecQ8ColMajor is the accelerated kernel over a column-major matrix,
// rounding once per row. rows must be a multiple of Lanes.
//
// Given Transpose(m) it produces exactly the output of MatVecQ8(m).
func MatVecQ8ColMajor(m []int8, rows, cols int, v, result []int16) {
	matVecQ8ColMajor(m, rows, cols, v, result, RoundPerRow)
}

// MatVecQ8ColMajorRounding is MatVecQ8ColMajor with an explicit rounding discipline.
func MatVecQ8ColMajorRounding(m []int8, rows, cols int, v, result []int16, rnd Rounding) {
	matVecQ8ColMajor(m, rows, cols, v, result, rnd)
}

// MatVecQ8Layout runs the kernel matching layout. It panics on an unknown layout.
func MatVecQ8Layout(layout Layout, m []int8, rows, cols int, v, result []int16, rnd Rounding) {
	switch layout {
	case RowMajor:
		BaseMatVecQ8(m, rows, cols, v, result, rnd)
	case ColMajor:
		matVecQ8ColMajor(m, rows, cols, v, result, rnd)
	default:
		panic("qmatvec: " + layout.String())
	}
}

// MatVecQ8Checked validates the call with Validate and then runs
// MatVecQ8Layout. On error result is left untouched.
func MatVecQ8Checked(layout Layout, m []int8, rows, cols int, v, result []int16, rnd Rounding) error {
	if err := validate("MatVecQ8Checked", layout, m, rows, cols, v, result); err != nil {
		return err
	}
	if !rnd.valid() {
		return &ShapeError{Op: "MatVecQ8Checked", Layout: layout, Rows: rows, Cols: cols, Detail: rnd.String(), Err: ErrRounding}
	}
	MatVecQ8Layout(layout, m, rows, cols, v, result, rnd)
	return nil
}
