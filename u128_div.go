package num

import (
	"math/bits"
)

// Quo returns the quotient u/by for by != 0. If by == 0, a division-by-zero
// run-time panic occurs. Quo implements truncated division (like Go); see
// QuoRem for more details.
func (u U128) Quo(by U128) (q U128) {
	q, _ = u.QuoRem(by)
	return q
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
// U128 does not support big.Int.DivMod()-style Euclidean division.
func (u U128) QuoRem(by U128) (q, r U128) {
	if by.hi == 0 {
		var r64 uint64
		q, r64 = u.QuoRem64(by.lo)
		return q, U128{lo: r64}
	}
	if u.LessThan(by) {
		return q, u // it's 100% remainder
	}
	return quorem128(u, by)
}

// Rem returns the remainder of u%by for by != 0. If by == 0, a division-by-zero
// run-time panic occurs. Rem implements truncated modulus (like Go); see
// QuoRem for more details.
func (u U128) Rem(by U128) (r U128) {
	_, r = u.QuoRem(by)
	return r
}

func (u U128) Quo64(by uint64) (q U128) {
	q, _ = u.QuoRem64(by)
	return q
}

func (u U128) Rem64(by uint64) (r uint64) {
	_, r = u.QuoRem64(by)
	return r
}

// QuoRem64 divides u by a 64-bit divisor. The remainder always fits in 64
// bits.
func (u U128) QuoRem64(by uint64) (q U128, r uint64) {
	if by == 0 {
		panic(ErrDivideByZero)
	}

	if u.hi == 0 {
		return U128{lo: u.lo / by}, u.lo % by
	}

	if by <= maxUint32 {
		return quorem128by32(u, uint32(by))
	}

	if u.hi < by {
		q.lo, r = quorem128by64(u.hi, u.lo, by)
		return q, r
	}

	q.hi = u.hi / by
	q.lo, r = quorem128by64(u.hi%by, u.lo, by)
	return q, r
}

// quorem128by32 is schoolbook division of the three or four significant
// digits of u by a single digit.
func quorem128by32(u U128, by uint32) (q U128, r uint64) {
	ud := u.digits()
	n := 4
	if ud[3] == 0 {
		n = 3
	}
	var qd [4]uint32
	r = uint64(divDigit(qd[:n], ud[:n], by))
	return u128FromDigits(qd[:]), r
}

// quorem128by64 divides u1:u0 by v, where u1 < v. This is divlu from
// Hacker's Delight 9-4: a two-digit Knuth step on a normalized divisor.
func quorem128by64(u1, u0, v uint64) (q, r uint64) {
	const b = 1 << 32

	s := uint(bits.LeadingZeros64(v))
	v <<= s
	vn1, vn0 := v>>32, v&0xffffffff

	un32 := u1 << s
	if s > 0 {
		un32 |= u0 >> (64 - s)
	}
	un10 := u0 << s
	un1, un0 := un10>>32, un10&0xffffffff

	q1 := un32 / vn1
	rhat := un32 % vn1
	for q1 >= b || q1*vn0 > (rhat<<32|un1) {
		q1--
		rhat += vn1
		if rhat >= b {
			break
		}
	}

	un21 := (un32 << 32) + un1 - q1*v

	q0 := un21 / vn1
	rhat = un21 % vn1
	for q0 >= b || q0*vn0 > (rhat<<32|un0) {
		q0--
		rhat += vn1
		if rhat >= b {
			break
		}
	}

	return q1<<32 | q0, ((un21 << 32) + un0 - q0*v) >> s
}

// quorem128 divides u by a divisor wider than 64 bits, u >= v, using
// Algorithm D over 32-bit digits.
func quorem128(u, v U128) (q, r U128) {
	ud, vd := u.digits(), v.digits()
	n := 4
	if vd[3] == 0 {
		n = 3
	}
	s := uint(bits.LeadingZeros32(vd[n-1]))

	var vn [4]uint32
	var un [5]uint32
	shlDigits(vn[:n], vd[:n], s)
	shlDigits(un[:], ud[:], s)

	var qd [2]uint32
	divDigits(qd[:5-n], un[:], vn[:n])

	var rd [4]uint32
	shrDigits(rd[:n], un[:n], s)
	return u128FromDigits(qd[:]), u128FromDigits(rd[:n])
}

// MulDivU64 returns value*multiplier/divisor computed through a 128-bit
// intermediate, so the product can not overflow. The quotient is truncated
// to 64 bits. A zero divisor panics.
func MulDivU64(value, multiplier, divisor uint64) uint64 {
	hi, lo := mul64to128(value, multiplier)
	q, _ := U128{hi: hi, lo: lo}.QuoRem64(divisor)
	return q.lo
}

// MulDivI64 is the signed counterpart of MulDivU64. The quotient is truncated
// towards zero, then to 64 bits.
func MulDivI64(value, multiplier, divisor int64) int64 {
	if divisor == 0 {
		panic(ErrDivideByZero)
	}
	neg := (value < 0) != (multiplier < 0) != (divisor < 0)
	q := MulDivU64(absU64(value), absU64(multiplier), absU64(divisor))
	if neg {
		return -int64(q)
	}
	return int64(q)
}

func absU64(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}
