package num

import (
	"math/bits"
)

// GCD returns the greatest common divisor of u and v. GCD(u, 0) == u, so
// GCD(0, 0) == 0.
//
// Operands wider than 64 bits are reduced with Lehmer's algorithm, running
// the Euclidean quotient sequence on the leading 63 bits in signed 64-bit
// arithmetic and checking each step with Jebelean's condition. The tail runs
// as plain Euclid, first in 64 and then in 32 bits.
func (u U128) GCD(v U128) U128 {
	a, b := u, v

	// Bring a mixed-width pair down to two operands of at most 64 bits.
	if (a.hi == 0) != (b.hi == 0) && !a.IsZero() && !b.IsZero() {
		if a.LessThan(b) {
			b = b.Rem(a)
		} else {
			a = a.Rem(b)
		}
	}

	if a.IsZero() {
		return b
	}
	if b.IsZero() {
		return a
	}
	if a.LessThan(b) {
		a, b = b, a
	}

	for a.hi != 0 && !b.IsZero() {
		norm := 63 - bits.Len64(a.hi)
		var ahat, bhat U128
		if norm >= 0 {
			ahat, bhat = a.Lsh(uint(norm)), b.Lsh(uint(norm))
		} else {
			ahat, bhat = a.Rsh(uint(-norm)), b.Rsh(uint(-norm))
		}
		uhat, vhat := int64(ahat.hi), int64(bhat.hi)

		if vhat == 0 {
			// The quotient does not fit a single word.
			a, b = b, a.Rem(b)
			continue
		}

		x0, y0, x1, y1 := int64(1), int64(0), int64(0), int64(1)
		even := true
		for {
			q := uhat / vhat
			x2 := x0 - q*x1
			y2 := y0 - q*y1
			uhat, vhat = vhat, uhat-q*vhat
			even = !even

			if even {
				if vhat < -x2 || uhat-vhat < y2-y1 {
					break
				}
			} else {
				if vhat < -y2 || uhat-vhat < x2-x1 {
					break
				}
			}

			x0, y0, x1, y1 = x1, y1, x2, y2
		}

		if x0 == 1 && y0 == 0 {
			// No quotient was accepted; take one full-precision step.
			a, b = b, a.Rem(b)
			continue
		}

		if even {
			a, b = lincomb(y0, b, x0, a), lincomb(x1, a, y1, b)
		} else {
			a, b = lincomb(x0, a, y0, b), lincomb(y1, b, x1, a)
		}
	}

	if b.IsZero() {
		return a
	}

	a64, b64 := a.lo, b.lo
	if a64 < b64 {
		a64, b64 = b64, a64
	}
	for a64 > maxUint32 && b64 != 0 {
		a64, b64 = b64, a64%b64
	}
	if b64 == 0 {
		return U128{lo: a64}
	}

	a32, b32 := uint32(a64), uint32(b64)
	for b32 != 0 {
		a32, b32 = b32, a32%b32
	}
	return U128{lo: uint64(a32)}
}

// lincomb returns x*u + y*v for cosequence values of opposite sign. The true
// result is non-negative and below 2^128, so wrapping arithmetic is exact.
func lincomb(x int64, u U128, y int64, v U128) U128 {
	return scaleSigned(u, x).Add(scaleSigned(v, y))
}

func scaleSigned(u U128, x int64) U128 {
	if x < 0 {
		return u.Mul64(uint64(-x)).Neg()
	}
	return u.Mul64(uint64(x))
}

// GCD returns the greatest common divisor of |i| and |n|. The result is a
// U128 because GCD(MinI128, 0) is 2^127.
func (i I128) GCD(n I128) U128 {
	return i.AbsU128().GCD(n.AbsU128())
}
