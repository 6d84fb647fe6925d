package num

import (
	"math/bits"
)

// u256 implements just enough of a 256-bit integer to hold the full product
// of two U128s and reduce it by a 128-bit modulus.
type u256 struct {
	hi, hm, lm, lo uint64
}

// mul128to256 returns the full 256-bit product of u and v.
func mul128to256(u, v U128) (p u256) {
	p.lm, p.lo = mul64to128(u.lo, v.lo)
	p.hi, p.hm = mul64to128(u.hi, v.hi)

	var c uint64
	thi, tlo := mul64to128(u.hi, v.lo)
	p.lm, c = addc(p.lm, tlo, 0)
	p.hm, c = addc(p.hm, thi, c)
	p.hi += c

	thi, tlo = mul64to128(u.lo, v.hi)
	p.lm, c = addc(p.lm, tlo, 0)
	p.hm, c = addc(p.hm, thi, c)
	p.hi += c

	return p
}

func (u u256) digits() [8]uint32 {
	return [8]uint32{
		uint32(u.lo), uint32(u.lo >> 32),
		uint32(u.lm), uint32(u.lm >> 32),
		uint32(u.hm), uint32(u.hm >> 32),
		uint32(u.hi), uint32(u.hi >> 32),
	}
}

// rem128 returns u mod m for a modulus wider than 64 bits. Only the
// significant digits of u are divided, so a product that fits in 192 bits
// takes fewer steps than a full 256-bit one.
func (u u256) rem128(m U128) U128 {
	ud, vd := u.digits(), m.digits()

	n := 4
	if vd[3] == 0 {
		n = 3
	}

	ln := len(ud)
	for ln > n && ud[ln-1] == 0 {
		ln--
	}

	s := uint(bits.LeadingZeros32(vd[n-1]))

	var vn [4]uint32
	var un [9]uint32
	shlDigits(vn[:n], vd[:n], s)
	shlDigits(un[:ln+1], ud[:ln], s)
	divDigits(nil, un[:ln+1], vn[:n])

	var rd [4]uint32
	shrDigits(rd[:n], un[:n], s)
	return u128FromDigits(rd[:n])
}
