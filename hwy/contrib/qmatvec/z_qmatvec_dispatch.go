package qmatvec

import "github.com/ajroetker/qmatvec/hwy"

// matVecQ8ColMajor is bound at init to the column-major implementation for
// the detected dispatch level.
var matVecQ8ColMajor func(m []int8, rows, cols int, v, result []int16, rnd Rounding)

var (
	boundLevel  hwy.DispatchLevel
	boundKernel string
)

func init() {
	bindColMajor(hwy.CurrentLevel())
}

func bindColMajor(level hwy.DispatchLevel) {
	boundLevel = level
	if level.Vector() {
		matVecQ8ColMajor = BaseMatVecQ8ColMajor
		boundKernel = "int32x4-" + level.String()
		return
	}
	matVecQ8ColMajor = baseMatVecQ8ColMajorScalar
	boundKernel = "scalar"
}

// Level returns the dispatch level the column-major kernel was bound for.
func Level() hwy.DispatchLevel {
	return boundLevel
}

// KernelName names the bound column-major implementation, e.g. "int32x4-avx2"
// or "scalar".
func KernelName() string {
	return boundKernel
}
