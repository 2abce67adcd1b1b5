package hwy

// PromoteLowerInt8x8 sign-extends the lower 4 lanes of v to int16.
func PromoteLowerInt8x8(v Int8x8) Int16x4 {
	return Int16x4{int16(v[0]), int16(v[1]), int16(v[2]), int16(v[3])}
}

// PromoteUpperInt8x8 sign-extends the upper 4 lanes of v to int16.
func PromoteUpperInt8x8(v Int8x8) Int16x4 {
	return Int16x4{int16(v[4]), int16(v[5]), int16(v[6]), int16(v[7])}
}

// PromoteInt16x4 sign-extends every lane of v to int32.
func PromoteInt16x4(v Int16x4) Int32x4 {
	return Int32x4{int32(v[0]), int32(v[1]), int32(v[2]), int32(v[3])}
}

// MulWiden multiplies every lane by the scalar s, widening the products to
// int32. An int16 by int16 product always fits in int32, so this never wraps.
func (v Int16x4) MulWiden(s int16) Int32x4 {
	x := int32(s)
	return Int32x4{int32(v[0]) * x, int32(v[1]) * x, int32(v[2]) * x, int32(v[3]) * x}
}

// Truncate narrows every lane to int16 keeping only the low 16 bits.
// Values outside the int16 range wrap; use Demote for saturation.
func (v Int32x4) Truncate() Int16x4 {
	return Int16x4{int16(v[0]), int16(v[1]), int16(v[2]), int16(v[3])}
}

// Demote narrows every lane to int16, clamping to [-32768, 32767].
func (v Int32x4) Demote() Int16x4 {
	return Int16x4{saturate16(v[0]), saturate16(v[1]), saturate16(v[2]), saturate16(v[3])}
}

func saturate16(x int32) int16 {
	if x > 32767 {
		return 32767
	}
	if x < -32768 {
		return -32768
	}
	return int16(x)
}
