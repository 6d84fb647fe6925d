package num

// Limb and digit primitives shared by the 128-bit and 256-bit paths. Words
// are uint64 limbs; "digits" are little-endian uint32 slices used by the
// long division routines.

func mul64to128(u, v uint64) (hi, lo uint64) {
	var (
		u1 = (u & 0xffffffff)
		v1 = (v & 0xffffffff)
		t  = (u1 * v1)
		w3 = (t & 0xffffffff)
		k  = (t >> 32)
	)

	u >>= 32
	t = (u * v1) + k
	k = (t & 0xffffffff)
	var w1 = (t >> 32)

	v >>= 32
	t = (u1 * v) + k
	k = (t >> 32)

	return (u * v) + w1 + k,
		(t << 32) + w3
}

// addc returns x + y + carry and the carry out. carry must be 0 or 1.
func addc(x, y, carry uint64) (sum, carryOut uint64) {
	sum = x + y + carry
	carryOut = ((x & y) | ((x | y) &^ sum)) >> 63
	return sum, carryOut
}

// mulAddWW returns x*y + c, which can not overflow 128 bits.
func mulAddWW(x, y, c uint64) (hi, lo uint64) {
	hi, lo = mul64to128(x, y)
	lo += c
	if lo < c {
		hi++
	}
	return hi, lo
}

// mulAddWWW returns x*y + c + d, which can not overflow 128 bits.
func mulAddWWW(x, y, c, d uint64) (hi, lo uint64) {
	hi, lo = mulAddWW(x, y, c)
	lo += d
	if lo < d {
		hi++
	}
	return hi, lo
}

func (u U128) digits() [4]uint32 {
	return [4]uint32{uint32(u.lo), uint32(u.lo >> 32), uint32(u.hi), uint32(u.hi >> 32)}
}

func u128FromDigits(d []uint32) U128 {
	var w [4]uint32
	copy(w[:], d)
	return U128{
		hi: uint64(w[3])<<32 | uint64(w[2]),
		lo: uint64(w[1])<<32 | uint64(w[0]),
	}
}

// shlDigits shifts src left by s < 32 bits into dst. If dst is one digit
// longer than src, the bits shifted out of the top land there.
func shlDigits(dst, src []uint32, s uint) {
	var carry uint32
	for i, d := range src {
		dst[i] = d<<s | carry
		carry = d >> (32 - s)
	}
	if len(dst) > len(src) {
		dst[len(src)] = carry
	}
}

// shrDigits shifts src right by s < 32 bits into dst, which must be the same
// length as src.
func shrDigits(dst, src []uint32, s uint) {
	last := len(src) - 1
	for i := 0; i < last; i++ {
		dst[i] = src[i]>>s | src[i+1]<<(32-s)
	}
	dst[last] = src[last] >> s
}

// divDigit divides u by the single digit v, writing the quotient into q if q
// is not nil, and returns the remainder.
func divDigit(q, u []uint32, v uint32) (r uint32) {
	var rem uint64
	for j := len(u) - 1; j >= 0; j-- {
		t := rem<<32 | uint64(u[j])
		if q != nil {
			q[j] = uint32(t / uint64(v))
		}
		rem = t % uint64(v)
	}
	return uint32(rem)
}

// estimateDigit returns the trial quotient digit for the top three dividend
// digits u2:u1:u0 over the top two divisor digits v1:v0. The divisor must be
// normalized and u2 <= v1. The estimate is corrected downwards at most twice
// and is then either exact or one too large.
func estimateDigit(u2, u1, u0, v1, v0 uint32) uint64 {
	num := uint64(u2)<<32 | uint64(u1)

	var qhat, rhat uint64
	if u2 >= v1 {
		qhat = maxUint32
		rhat = num - qhat*uint64(v1)
	} else {
		qhat = num / uint64(v1)
		rhat = num % uint64(v1)
	}

	for i := 0; i < 2 && rhat <= maxUint32 && qhat*uint64(v0) > (rhat<<32|uint64(u0)); i++ {
		qhat--
		rhat += uint64(v1)
	}
	return qhat
}

// mulSubDigits computes u -= q*v in place, where len(u) == len(v)+1, and
// reports whether the result went negative.
func mulSubDigits(u, v []uint32, q uint64) (negative bool) {
	var carry uint64
	var borrow int64
	for i := range v {
		p := q*uint64(v[i]) + carry
		carry = p >> 32
		t := int64(u[i]) - int64(uint32(p)) + borrow
		u[i] = uint32(t)
		borrow = t >> 32
	}
	t := int64(u[len(v)]) - int64(carry) + borrow
	u[len(v)] = uint32(t)
	return t < 0
}

// addBackDigits computes u += v in place, where len(u) == len(v)+1. The
// carry out of the top digit is discarded; it cancels the borrow left by
// mulSubDigits.
func addBackDigits(u, v []uint32) {
	var c uint64
	for i := range v {
		s := uint64(u[i]) + uint64(v[i]) + c
		u[i] = uint32(s)
		c = s >> 32
	}
	u[len(v)] += uint32(c)
}

// divDigits is Knuth's Algorithm D (TAOCP vol. 2, 4.3.1). v must have at
// least two digits and be normalized so its top bit is set; u must carry one
// extra top digit produced by normalization. On return, the low len(v) digits
// of u hold the normalized remainder. The quotient is written into q (which
// needs len(u)-len(v) digits) unless q is nil.
func divDigits(q, u, v []uint32) {
	n := len(v)
	for j := len(u) - n - 1; j >= 0; j-- {
		qhat := estimateDigit(u[j+n], u[j+n-1], u[j+n-2], v[n-1], v[n-2])
		if mulSubDigits(u[j:j+n+1], v, qhat) {
			qhat--
			addBackDigits(u[j:j+n+1], v)
		}
		if q != nil {
			q[j] = uint32(qhat)
		}
	}
}
