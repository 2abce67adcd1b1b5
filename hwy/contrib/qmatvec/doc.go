// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package qmatvec provides fixed-point quantized matrix-vector products:
// int8 weights times an int16 vector, rescaled by 1/128 into int16 outputs.
//
// # Matrix-Vector Product
//
// Two kernels compute the same result from two storage orders of the same
// logical matrix:
//   - MatVecQ8(m []int8, rows, cols int, v, result []int16) - scalar reference, m row-major
//   - MatVecQ8ColMajor(m []int8, rows, cols int, v, result []int16) - lane kernel, m column-major
//
// Mixing the layouts up does not fail; it silently computes the product of the
// transposed matrix. MatVecQ8Layout takes an explicit Layout tag for callers
// that carry the layout alongside the buffer, and Transpose converts between
// the two orders.
//
// # Algorithm
//
// For every row r:
//
//	acc       = sum_c int32(m[r,c]) * int32(v[c])
//	result[r] = int16((acc + 64) >> 7)
//
// Accumulation wraps in int32 and the final narrowing keeps the low 16 bits.
//
// The column-major kernel handles Lanes (4) output rows per group. For a fixed
// column the 4 weights of a group are adjacent in memory, so a single load
// fetches them without a gather. The weights are widened to int16, multiplied
// by v[c] into int32 lanes and accumulated; after the last column the group is
// rounded, narrowed and stored as result[r:r+4].
//
// # Rounding
//
// RoundPerRow (the default) adds the bias once to the full row sum.
// RoundPerTerm rounds every product before accumulating it. Both kernels honor
// both disciplines, so their outputs are identical under either one; the two
// disciplines differ from each other. For a 100x100 matrix of ones and
// v[c] = c, RoundPerRow gives 39 and RoundPerTerm gives 36.
//
// # Preconditions
//
// The kernels do not validate their arguments. The column-major kernel
// requires rows to be a multiple of Lanes and leaves any remainder rows of
// result untouched; every kernel requires len(m) >= rows*cols,
// len(v) >= cols and len(result) >= rows. Building with -tags qmvdebug turns
// these into panics at every entry point. Validate and MatVecQ8Checked report
// them as *ShapeError values for callers that want an error instead.
//
// # Example Usage
//
//	import "github.com/ajroetker/qmatvec/hwy/contrib/qmatvec"
//
//	rowMajor := []int8{
//	    56, 34, 63, 23,
//	    2, 3, 4, 5,
//	    3, 5, 6, 7,
//	    1, 2, 5, 3,
//	}
//	colMajor := make([]int8, len(rowMajor))
//	qmatvec.Transpose(rowMajor, 4, 4, colMajor)
//
//	v := []int16{1000, 3000, 4000, 5000}
//	a := make([]int16, 4)
//	b := make([]int16, 4)
//	qmatvec.MatVecQ8(rowMajor, 4, 4, v, a)
//	qmatvec.MatVecQ8ColMajor(colMajor, 4, 4, v, b)
//	// a == b == [4102 406 602 328]
package qmatvec
