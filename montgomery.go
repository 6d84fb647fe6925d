package num

import (
	"github.com/go-faster/errors"
)

// Montgomery holds the precomputed constants for Montgomery reduction modulo
// an odd n with R = 2^128. Values in Montgomery form are x*R mod n.
type Montgomery struct {
	n  U128
	k0 uint64 // -n^-1 mod 2^64
	rr U128   // R^2 mod n
}

// NewMontgomery prepares reduction modulo n, which must be odd and greater
// than one.
func NewMontgomery(n U128) (Montgomery, error) {
	if n.IsEven() || n.IsOne() {
		return Montgomery{}, errors.Wrapf(ErrDomain, "montgomery modulus %s must be odd and > 1", n)
	}

	// Newton's iteration doubles the correct low bits each round; an odd n
	// is its own inverse modulo 8.
	inv := n.lo
	for i := 0; i < 5; i++ {
		inv *= 2 - n.lo*inv
	}

	r := MaxU128.Rem(n).Inc().reduce(n) // 2^128 mod n
	return Montgomery{
		n:  n,
		k0: -inv,
		rr: r.ModMul(r, n),
	}, nil
}

func (mg Montgomery) Modulus() U128 { return mg.n }

// ToMontgomery returns x*R mod n.
func (mg Montgomery) ToMontgomery(x U128) U128 {
	return mg.MulReduce(x.reduce(mg.n), mg.rr)
}

// FromMontgomery returns x*R^-1 mod n, the inverse of ToMontgomery.
func (mg Montgomery) FromMontgomery(x U128) U128 {
	return mg.Reduce(x)
}

// Reduce returns t*R^-1 mod n.
func (mg Montgomery) Reduce(t U128) U128 {
	n, k0 := mg.n, mg.k0
	t0, t1, t2 := t.lo, t.hi, uint64(0)

	for i := 0; i < 2; i++ {
		m := t0 * k0
		hi, _ := mulAddWW(m, n.lo, t0)
		hi, t0 = mulAddWWW(m, n.hi, hi, t1)
		t1, t2 = addc(hi, t2, 0)
	}

	w := U128{hi: t1, lo: t0}
	if t2 != 0 || !w.LessThan(n) {
		w = w.Sub(n)
	}
	return w
}

// MulReduce returns u*v*R^-1 mod n for u, v < n, interleaving the product
// with the reduction one 64-bit word of v at a time.
func (mg Montgomery) MulReduce(u, v U128) U128 {
	n, k0 := mg.n, mg.k0

	hi, t0 := mul64to128(u.lo, v.lo)
	t2, t1 := mulAddWW(u.hi, v.lo, hi)

	m := t0 * k0
	hi, _ = mulAddWW(m, n.lo, t0)
	hi, t0 = mulAddWWW(m, n.hi, hi, t1)
	t1, t2 = addc(hi, t2, 0)

	hi, t0 = mulAddWW(u.lo, v.hi, t0)
	hi, t1 = mulAddWWW(u.hi, v.hi, hi, t1)
	var t3 uint64
	t2, t3 = addc(hi, t2, 0)

	m = t0 * k0
	hi, _ = mulAddWW(m, n.lo, t0)
	hi, t0 = mulAddWWW(m, n.hi, hi, t1)
	var c uint64
	t1, c = addc(hi, t2, 0)
	t2 = t3 + c

	w := U128{hi: t1, lo: t0}
	if t2 != 0 || !w.LessThan(n) {
		w = w.Sub(n)
	}
	return w
}

// ModMul multiplies two values in Montgomery form.
func (mg Montgomery) ModMul(a, b U128) U128 {
	return mg.MulReduce(a, b)
}

// ModPow returns v**e mod n for an ordinary (not Montgomery form) v, doing
// the intermediate products in Montgomery form.
func (mg Montgomery) ModPow(v, e U128) U128 {
	result := mg.ToMontgomery(OneU128)
	base := mg.ToMontgomery(v)
	for bit := e.BitLen() - 1; bit >= 0; bit-- {
		result = mg.MulReduce(result, result)
		if e.Bit(bit) != 0 {
			result = mg.MulReduce(result, base)
		}
	}
	return mg.FromMontgomery(result)
}
