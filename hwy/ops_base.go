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

package hwy

// This file provides the pure Go implementations of the lane operations.
// Each loop is over a fixed-size array, so the compiler fully unrolls it.

// LoadInt8x8 loads up to 8 int8 lanes from src. Lanes past len(src) are
// zero, so a load near the end of a buffer never reads beyond it.
func LoadInt8x8(src []int8) Int8x8 {
	var v Int8x8
	copy(v[:], src)
	return v
}

// LoadInt16x4 loads up to 4 int16 lanes from src, zero-filling the rest.
func LoadInt16x4(src []int16) Int16x4 {
	var v Int16x4
	copy(v[:], src)
	return v
}

// LoadInt32x4 loads up to 4 int32 lanes from src, zero-filling the rest.
func LoadInt32x4(src []int32) Int32x4 {
	var v Int32x4
	copy(v[:], src)
	return v
}

// ZeroInt32x4 returns a vector with every lane zero.
func ZeroInt32x4() Int32x4 {
	return Int32x4{}
}

// SetInt32x4 creates a vector with all lanes set to value.
func SetInt32x4(value int32) Int32x4 {
	return Int32x4{value, value, value, value}
}

// StoreSlice writes the 4 lanes to dst[0:4].
// It panics if len(dst) < 4.
func (v Int16x4) StoreSlice(dst []int16) {
	_ = dst[3]
	dst[0] = v[0]
	dst[1] = v[1]
	dst[2] = v[2]
	dst[3] = v[3]
}

// StoreSlice writes the 4 lanes to dst[0:4].
// It panics if len(dst) < 4.
func (v Int32x4) StoreSlice(dst []int32) {
	_ = dst[3]
	dst[0] = v[0]
	dst[1] = v[1]
	dst[2] = v[2]
	dst[3] = v[3]
}

// Add performs element-wise wrapping addition.
func (v Int32x4) Add(other Int32x4) Int32x4 {
	return Int32x4{v[0] + other[0], v[1] + other[1], v[2] + other[2], v[3] + other[3]}
}

// Mul performs element-wise wrapping multiplication.
func (v Int32x4) Mul(other Int32x4) Int32x4 {
	return Int32x4{v[0] * other[0], v[1] * other[1], v[2] * other[2], v[3] * other[3]}
}

// ShiftRight performs an arithmetic right shift of every lane.
func (v Int32x4) ShiftRight(bits uint) Int32x4 {
	return Int32x4{v[0] >> bits, v[1] >> bits, v[2] >> bits, v[3] >> bits}
}

// RoundingShiftRight shifts every lane right by bits after adding
// 1<<(bits-1), i.e. division by 2^bits rounding half up. The bias is added in
// int32 and wraps like any other lane arithmetic. bits must be at least 1.
func (v Int32x4) RoundingShiftRight(bits uint) Int32x4 {
	return Int32x4{
		RoundingShift(v[0], bits),
		RoundingShift(v[1], bits),
		RoundingShift(v[2], bits),
		RoundingShift(v[3], bits),
	}
}

// ReduceSum returns the wrapping sum of all lanes.
func (v Int32x4) ReduceSum() int32 {
	return v[0] + v[1] + v[2] + v[3]
}

// RoundingShift is the single-lane form of RoundingShiftRight.
func RoundingShift[T SignedInts](x T, bits uint) T {
	return (x + T(1)<<(bits-1)) >> bits
}
