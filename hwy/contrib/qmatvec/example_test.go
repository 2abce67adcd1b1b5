package qmatvec_test

import (
	"fmt"

	"github.com/ajroetker/qmatvec/hwy/contrib/qmatvec"
)

func ExampleMatVecQ8ColMajor() {
	rowMajor := []int8{
		56, 34, 63, 23,
		2, 3, 4, 5,
		3, 5, 6, 7,
		1, 2, 5, 3,
	}
	colMajor := make([]int8, len(rowMajor))
	qmatvec.Transpose(rowMajor, 4, 4, colMajor)

	v := []int16{1000, 3000, 4000, 5000}
	scalar := make([]int16, 4)
	accel := make([]int16, 4)
	qmatvec.MatVecQ8(rowMajor, 4, 4, v, scalar)
	qmatvec.MatVecQ8ColMajor(colMajor, 4, 4, v, accel)

	fmt.Println(scalar)
	fmt.Println(accel)
	// Output:
	// [4102 406 602 328]
	// [4102 406 602 328]
}

func ExampleMatVecQ8Checked() {
	err := qmatvec.MatVecQ8Checked(qmatvec.ColMajor, make([]int8, 12), 3, 4,
		make([]int16, 4), make([]int16, 3), qmatvec.RoundPerRow)
	fmt.Println(err)
	// Output:
	// qmatvec: MatVecQ8Checked 3x4 col-major: rows must be a multiple of 4
}
