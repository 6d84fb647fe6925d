package num

import (
	"math"
	"math/bits"
)

func U128FromFloat32(f float32) (out U128, inRange bool) {
	return U128FromFloat64(float64(f))
}

// U128FromFloat64 creates a U128 from a float64. Any fractional portion
// will be truncated towards zero. Negative floats become 0 and floats at or
// above 2^128 are clamped to MaxU128; inRange is 'false' for both.
//
// NaN is treated as 0, inRange is set to false.
func U128FromFloat64(f float64) (out U128, inRange bool) {
	if f != f { // (f != f) == NaN
		return U128{}, false
	} else if f <= -1 {
		return U128{}, false
	} else if f < wrapUint64Float {
		if f < 0 {
			return U128{}, true // (-1, 0) truncates to zero
		}
		return U128{lo: uint64(f)}, true
	} else if f < maxU128Float {
		return u128FromLargeFloat(f), true
	}
	return MaxU128, false
}

// u128FromLargeFloat converts an integral f in [2^64, 2^128). The float is
// scaled down into a 64-bit mantissa, which is then shifted back up by the
// excess exponent.
func u128FromLargeFloat(f float64) U128 {
	shift := int(math.Ceil(math.Log2(f))) - 63
	m := math.Ldexp(f, -shift)
	if m >= wrapUint64Float {
		shift++
		m = math.Ldexp(f, -shift)
	}
	return U128{lo: uint64(m)}.Lsh(uint(shift))
}

// AsFloat64 returns the float64 nearest to u, rounding half to even.
func (u U128) AsFloat64() float64 {
	if u.hi == 0 {
		return float64(u.lo)
	}
	lz := uint(bits.LeadingZeros64(u.hi))
	top := u.Lsh(lz)
	m := top.hi
	if top.lo != 0 {
		m |= 1 // sticky bit keeps ties rounding correctly
	}
	return math.Ldexp(float64(m), int(64-lz))
}

func (u U128) AsFloat32() float32 {
	return float32(u.AsFloat64())
}

func I128FromFloat32(f float32) (out I128, inRange bool) {
	return I128FromFloat64(float64(f))
}

// I128FromFloat64 creates a I128 from a float64.
//
// Any fractional portion will be truncated towards zero.
//
// Floats outside the bounds of a I128 are clamped to MinI128 or MaxI128
// and inRange will be set to false.
//
// NaN is treated as 0, inRange is set to false.
func I128FromFloat64(f float64) (out I128, inRange bool) {
	if f != f {
		return out, false
	} else if f < 0 {
		if f < minI128Float {
			return MinI128, false
		}
		mag, _ := U128FromFloat64(-f)
		return mag.AsI128().Neg(), true
	} else if f >= -minI128Float {
		return MaxI128, false
	}
	mag, _ := U128FromFloat64(f)
	return mag.AsI128(), true
}

// AsFloat64 converts the magnitude and reapplies the sign.
func (i I128) AsFloat64() float64 {
	if i.hi&signBit != 0 {
		return -i.AbsU128().AsFloat64()
	}
	return i.AsU128().AsFloat64()
}

func (i I128) AsFloat32() float32 {
	return float32(i.AsFloat64())
}
