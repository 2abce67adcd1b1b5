package qmatvec

import (
	"fmt"
	"testing"
)

func BenchmarkMatVecQ8(b *testing.B) {
	sizes := []struct {
		rows int
		cols int
	}{
		{4, 4},
		{100, 100},
		{256, 256},
		{1024, 1024},
	}

	for _, size := range sizes {
		m := make([]int8, size.rows*size.cols)
		for i := range m {
			m[i] = int8(i%255 - 127)
		}
		colMajor := make([]int8, len(m))
		Transpose(m, size.rows, size.cols, colMajor)
		v := make([]int16, size.cols)
		for i := range v {
			v[i] = int16(i)
		}
		result := make([]int16, size.rows)

		name := fmt.Sprintf("%dx%d", size.rows, size.cols)
		b.Run("RowMajor/"+name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(m)))
			for b.Loop() {
				MatVecQ8(m, size.rows, size.cols, v, result)
			}
		})
		b.Run("ColMajor/"+name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(m)))
			for b.Loop() {
				MatVecQ8ColMajor(colMajor, size.rows, size.cols, v, result)
			}
		})
		b.Run("ColMajorScalar/"+name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(m)))
			for b.Loop() {
				baseMatVecQ8ColMajorScalar(colMajor, size.rows, size.cols, v, result, RoundPerRow)
			}
		})
	}
}
