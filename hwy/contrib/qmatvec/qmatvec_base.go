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

package qmatvec

import "github.com/ajroetker/qmatvec/hwy"

// Lanes is the number of output rows the column-major kernel computes per
// group: one Int32x4 accumulator.
const Lanes = 4

// BaseMatVecQ8 computes result = rescale(M * v) for a row-major matrix.
//
// Parameters:
//   - m: matrix in row-major order with shape [rows, cols]
//   - rows: number of rows in the matrix (any positive value)
//   - cols: number of columns in the matrix
//   - v: input vector of length cols
//   - result: output vector of length rows (must be pre-allocated)
//   - rnd: where the rounding shift is applied
//
// Each result[i] is int16(rescale(dot(row i, v))) under RoundPerRow, or the
// int16 of the sum of rescaled products under RoundPerTerm.
func BaseMatVecQ8(m []int8, rows, cols int, v, result []int16, rnd Rounding) {
	if debugChecks {
		assertShape("MatVecQ8", RowMajor, m, rows, cols, v, result)
	}
	v = v[:cols]

	for i := range rows {
		row := m[i*cols : (i+1)*cols]

		var acc int32
		if rnd == RoundPerTerm {
			for j, w := range row {
				acc += rescale(int32(w) * int32(v[j]))
			}
		} else {
			for j, w := range row {
				acc += int32(w) * int32(v[j])
			}
			acc = rescale(acc)
		}
		result[i] = int16(acc)
	}
}

// BaseMatVecQ8ColMajor computes the same product as BaseMatVecQ8 from the
// column-major form of the matrix, Lanes rows at a time.
//
// Element (r, c) lives at m[c*rows+r], so for a fixed column the Lanes
// weights of one row group are contiguous: each step loads them in one go,
// widens them to int16, multiplies by v[c] into int32 lanes and adds them to
// the group accumulator.
//
// rows must be a multiple of Lanes; trailing rows that do not fill a group
// are not written.
func BaseMatVecQ8ColMajor(m []int8, rows, cols int, v, result []int16, rnd Rounding) {
	if debugChecks {
		assertShape("MatVecQ8ColMajor", ColMajor, m, rows, cols, v, result)
	}
	v = v[:cols]
	perTerm := rnd == RoundPerTerm

	for r := 0; r+Lanes <= rows; r += Lanes {
		acc := hwy.ZeroInt32x4()
		for j, x := range v {
			w := hwy.PromoteLowerInt8x8(hwy.LoadInt8x8(m[j*rows+r:]))
			prod := w.MulWiden(x)
			if perTerm {
				prod = prod.RoundingShiftRight(Shift)
			}
			acc = acc.Add(prod)
		}
		if !perTerm {
			acc = acc.RoundingShiftRight(Shift)
		}
		acc.Truncate().StoreSlice(result[r:])
	}
}

// baseMatVecQ8ColMajorScalar is the column-major product without lane types.
// It is bound when no vector unit is available and also serves any row count.
func baseMatVecQ8ColMajorScalar(m []int8, rows, cols int, v, result []int16, rnd Rounding) {
	if debugChecks {
		assertShape("MatVecQ8ColMajor", ColMajor, m, rows, cols, v, result)
	}
	v = v[:cols]

	for i := range rows {
		var acc int32
		for j, x := range v {
			p := int32(m[j*rows+i]) * int32(x)
			if rnd == RoundPerTerm {
				p = rescale(p)
			}
			acc += p
		}
		if rnd != RoundPerTerm {
			acc = rescale(acc)
		}
		result[i] = int16(acc)
	}
}
