// Package hwy provides fixed-width integer lane types for quantized kernels
// with runtime CPU dispatch.
//
// The lane types mirror 64-bit and 128-bit vector registers: Int8x8 holds
// eight int8 lanes, Int16x4 four int16 lanes and Int32x4 four int32 lanes.
// They are plain value types, so a kernel written against them keeps its
// working set in locals and never allocates.
//
// Basic usage:
//
//	import "github.com/ajroetker/qmatvec/hwy"
//
//	m := hwy.LoadInt8x8(weights[j*rows+r:])
//	prod := hwy.PromoteLowerInt8x8(m).MulWiden(x)
//	acc = acc.Add(prod)
//	acc.RoundingShiftRight(7).Truncate().StoreSlice(out[r:])
//
// Integer arithmetic on lanes wraps on overflow, exactly like the Go integer
// types backing them.
package hwy

// SignedInts is a constraint for signed integer lane types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// Int8x8 represents a 64-bit vector of 8 int8 lanes.
type Int8x8 [8]int8

// Int16x4 represents a 64-bit vector of 4 int16 lanes.
type Int16x4 [4]int16

// Int32x4 represents a 128-bit vector of 4 int32 lanes.
type Int32x4 [4]int32

// NumLanes returns the number of lanes in an Int8x8.
func (Int8x8) NumLanes() int { return 8 }

// NumLanes returns the number of lanes in an Int16x4.
func (Int16x4) NumLanes() int { return 4 }

// NumLanes returns the number of lanes in an Int32x4.
func (Int32x4) NumLanes() int { return 4 }

// Get returns lane i.
func (v Int8x8) Get(i int) int8 { return v[i] }

// Get returns lane i.
func (v Int16x4) Get(i int) int16 { return v[i] }

// Get returns lane i.
func (v Int32x4) Get(i int) int32 { return v[i] }

// Data returns the lanes as a slice. This is primarily for testing and
// reporting and should not be used in performance-critical code.
func (v Int16x4) Data() []int16 {
	return v[:]
}

// Data returns the lanes as a slice.
func (v Int32x4) Data() []int32 {
	return v[:]
}
