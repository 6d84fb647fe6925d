package num

import (
	"math"
)

// Below this high limb the square of the float estimate fits comfortably in
// 106 bits, so the estimate is off by at most one.
const sqrtExactHi = 1 << (106 - 64)

// FloorSqrt returns the largest s such that s*s <= u.
func (u U128) FloorSqrt() U128 {
	s := sqrtSeed(u)
	if u.hi < sqrtExactHi {
		return U128{lo: correctSqrt(u, s)}
	}
	return U128{lo: newtonSqrt(u, s)}
}

// CeilingSqrt returns the smallest s such that s*s >= u. CeilingSqrt(MaxU128)
// is 2^64.
func (u U128) CeilingSqrt() U128 {
	s := u.FloorSqrt()
	if U128FromRaw(mul64to128(s.lo, s.lo)).Equal(u) {
		return s
	}
	return s.Inc()
}

func sqrtSeed(u U128) uint64 {
	f := math.Sqrt(u.AsFloat64())
	if f >= wrapUint64Float {
		return maxUint64
	}
	return uint64(f)
}

func correctSqrt(u U128, s uint64) uint64 {
	for s > 0 && U128FromRaw(mul64to128(s, s)).GreaterThan(u) {
		s--
	}
	for U128FromRaw(mul64to128(s+1, s+1)).LessOrEqualTo(u) {
		s++
	}
	return s
}

// newtonSqrt refines s with x' = (x + u/x) / 2. One step from any positive
// seed lands at or above the root, after which the sequence decreases until
// it reaches it.
func newtonSqrt(u U128, s uint64) uint64 {
	x := u.Quo64(s).Add64(s).Rsh(1)
	if x.hi != 0 {
		x = U128{lo: maxUint64}
	}
	for {
		y := u.Quo64(x.lo).Add64(x.lo).Rsh(1)
		if !y.LessThan(x) {
			return x.lo
		}
		x = y
	}
}

// FloorCbrt returns the largest s such that s*s*s <= u.
func (u U128) FloorCbrt() U128 {
	s := uint64(math.Cbrt(u.AsFloat64()))
	for s > 0 && cmpCube(s, u) > 0 {
		s--
	}

	// (s+1)^3 - s^3 == 3s(s+1) + 1, so s+1 still fits while u - s^3 exceeds
	// 3s(s+1).
	for {
		_, c := cube(s)
		if !u.Sub(c).GreaterThan(U128{lo: s}.Mul64(s + 1).Mul64(3)) {
			return U128{lo: s}
		}
		s++
	}
}

// CeilingCbrt returns the smallest s such that s*s*s >= u.
func (u U128) CeilingCbrt() U128 {
	s := u.FloorCbrt()
	if cmpCube(s.lo, u) == 0 {
		return s
	}
	return s.Inc()
}

// cube returns s^3 as a 192-bit value split into its top word and low 128
// bits.
func cube(s uint64) (top uint64, low U128) {
	h, l := mul64to128(s, s)
	p1h, p1l := mul64to128(s, l)
	p2h, p2l := mul64to128(s, h)

	var c uint64
	low.lo = p1l
	low.hi, c = addc(p1h, p2l, 0)
	top = p2h + c
	return top, low
}

func cmpCube(s uint64, u U128) int {
	top, low := cube(s)
	if top != 0 {
		return 1
	}
	return low.Cmp(u)
}

// FloorSqrt returns the largest s such that s*s <= i. A negative i panics
// with ErrDomain.
func (i I128) FloorSqrt() I128 {
	if i.IsNeg() {
		domainPanic("i128: sqrt of negative")
	}
	return i.AsU128().FloorSqrt().AsI128()
}

// CeilingSqrt returns the smallest s such that s*s >= i. A negative i panics
// with ErrDomain.
func (i I128) CeilingSqrt() I128 {
	if i.IsNeg() {
		domainPanic("i128: sqrt of negative")
	}
	return i.AsU128().CeilingSqrt().AsI128()
}

// FloorCbrt returns the largest s such that s*s*s <= i. For negative i this
// rounds towards negative infinity, unlike truncation: FloorCbrt(-9) is -3.
func (i I128) FloorCbrt() I128 {
	if i.IsNeg() {
		return i.AbsU128().CeilingCbrt().AsI128().Neg()
	}
	return i.AsU128().FloorCbrt().AsI128()
}

// CeilingCbrt returns the smallest s such that s*s*s >= i. For negative i
// this rounds towards zero: CeilingCbrt(-9) is -2.
func (i I128) CeilingCbrt() I128 {
	if i.IsNeg() {
		return i.AbsU128().FloorCbrt().AsI128().Neg()
	}
	return i.AsU128().CeilingCbrt().AsI128()
}
