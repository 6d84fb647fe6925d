package num

import (
	"math/big"
)

type I128 struct {
	hi uint64
	lo uint64
}

const (
	signBit  = 0x8000000000000000
	signMask = 0x7FFFFFFFFFFFFFFF
)

var (
	minI128AsAbsU128 = U128{hi: signBit, lo: 0}
	maxI128AsU128    = U128{hi: signMask, lo: maxUint64}
)

// I128FromRaw is the complement to I128.Raw(); it creates an I128 from two
// uint64s representing the hi and lo bits.
func I128FromRaw(hi, lo uint64) I128 {
	return I128{hi: hi, lo: lo}
}

func I128From64(v int64) I128 {
	var hi uint64
	if v < 0 {
		hi = maxUint64
	}
	return I128{hi: hi, lo: uint64(v)}
}

func I128From32(v int32) I128   { return I128From64(int64(v)) }
func I128From16(v int16) I128   { return I128From64(int64(v)) }
func I128From8(v int8) I128     { return I128From64(int64(v)) }
func I128FromInt(v int) I128    { return I128From64(int64(v)) }
func I128FromU64(v uint64) I128 { return I128{lo: v} }

// I128FromBigInt creates an I128 from a big.Int. Overflow clamps to
// MaxI128/MinI128 and sets accurate to 'false'.
func I128FromBigInt(v *big.Int) (out I128, accurate bool) {
	neg := v.Sign() < 0
	mag, accurate := U128FromBigInt(new(big.Int).Abs(v))

	if !neg {
		if !accurate || mag.GreaterThan(maxI128AsU128) {
			return MaxI128, false
		}
		return mag.AsI128(), true
	}

	if !accurate || mag.GreaterThan(minI128AsAbsU128) {
		return MinI128, false
	}
	return mag.AsI128().Neg(), true
}

// RandI128 generates a positive signed 128-bit random integer from an external
// source.
func RandI128(source RandSource) (out I128) {
	return I128{hi: source.Uint64() & maxInt64, lo: source.Uint64()}
}

func (i I128) IsZero() bool { return i.hi|i.lo == 0 }
func (i I128) IsNeg() bool  { return i.hi&signBit != 0 }

// Raw returns access to the I128 as a pair of uint64s. See I128FromRaw() for
// the counterpart.
func (i I128) Raw() (hi uint64, lo uint64) { return i.hi, i.lo }

// IntoBigInt copies this I128 into a big.Int, allowing you to retain and
// recycle memory.
func (i I128) IntoBigInt(b *big.Int) {
	if i.hi&signBit == 0 {
		i.AsU128().IntoBigInt(b)
		return
	}
	i.AbsU128().IntoBigInt(b)
	b.Neg(b)
}

// AsBigInt allocates a new big.Int and copies this I128 into it.
func (i I128) AsBigInt() (b *big.Int) {
	b = new(big.Int)
	i.IntoBigInt(b)
	return b
}

func (i I128) AsBigFloat() (b *big.Float) {
	return new(big.Float).SetInt(i.AsBigInt())
}

// AsU128 performs a direct cast of an I128 to a U128. Negative numbers
// become values > math.MaxI128.
func (i I128) AsU128() U128 {
	return U128{lo: i.lo, hi: i.hi}
}

// IsU128 reports whether i can be represented in a U128.
func (i I128) IsU128() bool {
	return i.hi&signBit == 0
}

// AsInt64 truncates the I128 to fit in a int64. Values outside the range will
// over/underflow. See IsInt64() if you want to check before you convert.
func (i I128) AsInt64() int64 {
	return int64(i.lo)
}

// IsInt64 reports whether i can be represented as a int64.
func (i I128) IsInt64() bool {
	if i.hi&signBit != 0 {
		return i.hi == maxUint64 && i.lo >= signBit
	}
	return i.hi == 0 && i.lo <= maxInt64
}

func (i I128) Sign() int {
	if i.IsZero() {
		return 0
	} else if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

func (i I128) Inc() (v I128) { return i.AsU128().Inc().AsI128() }
func (i I128) Dec() (v I128) { return i.AsU128().Dec().AsI128() }

func (i I128) Add(n I128) (v I128) {
	v.lo = i.lo + n.lo
	v.hi = i.hi + n.hi
	if i.lo > v.lo {
		v.hi++
	}
	return v
}

func (i I128) Add64(n int64) I128 { return i.Add(I128From64(n)) }

func (i I128) Sub(n I128) (out I128) {
	out.lo = i.lo - n.lo
	out.hi = i.hi - n.hi
	if i.lo < out.lo {
		out.hi--
	}
	return out
}

func (i I128) Sub64(n int64) I128 { return i.Sub(I128From64(n)) }

// Neg returns -i. Negating MinI128 overflows back to MinI128.
func (i I128) Neg() (v I128) {
	return i.AsU128().Neg().AsI128()
}

// Abs returns |i|. Abs(MinI128) overflows back to MinI128; see AbsU128.
func (i I128) Abs() I128 {
	if i.hi&signBit != 0 {
		return i.Neg()
	}
	return i
}

// AbsU128 returns |i| as a U128, which is exact for every I128 including
// MinI128.
func (i I128) AbsU128() U128 {
	return i.Abs().AsU128()
}

// Cmp compares i to n and returns:
//
//	-1 if i <  n
//	 0 if i == n
//	+1 if i >  n
//
// The high limbs are compared as signed values and the low limbs as
// unsigned, so no negation is needed and MinI128 compares correctly.
func (i I128) Cmp(n I128) int {
	ih, nh := int64(i.hi), int64(n.hi)
	if ih > nh {
		return 1
	} else if ih < nh {
		return -1
	} else if i.lo > n.lo {
		return 1
	} else if i.lo < n.lo {
		return -1
	}
	return 0
}

func (i I128) Cmp64(n int64) int { return i.Cmp(I128From64(n)) }

func (i I128) Equal(n I128) bool {
	return i.hi == n.hi && i.lo == n.lo
}

func (i I128) Equal64(n int64) bool {
	return i.Equal(I128From64(n))
}

func (i I128) GreaterThan(n I128) bool {
	ih, nh := int64(i.hi), int64(n.hi)
	return ih > nh || (ih == nh && i.lo > n.lo)
}

func (i I128) GreaterOrEqualTo(n I128) bool {
	ih, nh := int64(i.hi), int64(n.hi)
	return ih > nh || (ih == nh && i.lo >= n.lo)
}

func (i I128) LessThan(n I128) bool {
	ih, nh := int64(i.hi), int64(n.hi)
	return ih < nh || (ih == nh && i.lo < n.lo)
}

func (i I128) LessOrEqualTo(n I128) bool {
	ih, nh := int64(i.hi), int64(n.hi)
	return ih < nh || (ih == nh && i.lo <= n.lo)
}

func (i I128) And(n I128) I128    { return i.AsU128().And(n.AsU128()).AsI128() }
func (i I128) AndNot(n I128) I128 { return i.AsU128().AndNot(n.AsU128()).AsI128() }
func (i I128) Or(n I128) I128     { return i.AsU128().Or(n.AsU128()).AsI128() }
func (i I128) Xor(n I128) I128    { return i.AsU128().Xor(n.AsU128()).AsI128() }
func (i I128) Not() I128          { return i.AsU128().Not().AsI128() }

// Lsh shifts i left by n bits. Shifting by 128 or more yields zero.
func (i I128) Lsh(n uint) I128 {
	return i.AsU128().Lsh(n).AsI128()
}

// Rsh is an arithmetic shift: the sign bit is copied into the vacated high
// bits. Shifting by 128 or more yields 0 or -1.
func (i I128) Rsh(n uint) (v I128) {
	sign := uint64(int64(i.hi) >> 63)
	if n == 0 {
		return i
	} else if n >= 128 {
		return I128{hi: sign, lo: sign}
	} else if n > 64 {
		v.lo = uint64(int64(i.hi) >> (n - 64))
		v.hi = sign
	} else if n < 64 {
		v.lo = (i.lo >> n) | (i.hi << (64 - n))
		v.hi = uint64(int64(i.hi) >> n)
	} else {
		v.lo = i.hi
		v.hi = sign
	}
	return v
}

// Mul returns the product of two I128s.
//
// Overflow wraps around, as it does for Go's native integers. The low 128
// bits of a two's complement product do not depend on the signs, so this is
// the unsigned multiply.
func (i I128) Mul(n I128) I128 {
	return i.AsU128().Mul(n.AsU128()).AsI128()
}

func (i I128) Mul64(n int64) I128 {
	return i.Mul(I128From64(n))
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
// The remainder takes the sign of the dividend. MinI128/-1 overflows to
// MinI128.
func (i I128) QuoRem(by I128) (q, r I128) {
	qu, ru := i.AbsU128().QuoRem(by.AbsU128())
	q, r = qu.AsI128(), ru.AsI128()
	if i.IsNeg() != by.IsNeg() {
		q = q.Neg()
	}
	if i.IsNeg() {
		r = r.Neg()
	}
	return q, r
}

// Quo returns the quotient x/y for y != 0. If y == 0, a division-by-zero
// run-time panic occurs. Quo implements truncated division (like Go); see
// QuoRem for more details.
func (i I128) Quo(by I128) (q I128) {
	q, _ = i.QuoRem(by)
	return q
}

// Rem returns the remainder of x%y for y != 0. If y == 0, a division-by-zero
// run-time panic occurs. Rem implements truncated modulus (like Go); see
// QuoRem for more details.
func (i I128) Rem(by I128) (r I128) {
	_, r = i.QuoRem(by)
	return r
}

func (i I128) Quo64(by int64) I128 {
	q, _ := i.QuoRem(I128From64(by))
	return q
}

func (i I128) QuoRem64(by int64) (q I128, r int64) {
	q, rr := i.QuoRem(I128From64(by))
	return q, rr.AsInt64()
}
