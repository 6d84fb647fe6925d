package num

import (
	"math/big"
	"math/bits"
)

type U128 struct {
	hi, lo uint64
}

func U128FromRaw(hi, lo uint64) U128 { return U128{hi: hi, lo: lo} }
func U128From64(v uint64) U128       { return U128{hi: 0, lo: v} }
func U128From32(v uint32) U128       { return U128{hi: 0, lo: uint64(v)} }
func U128From16(v uint16) U128       { return U128{hi: 0, lo: uint64(v)} }
func U128From8(v uint8) U128         { return U128{hi: 0, lo: uint64(v)} }

// U128FromI64 sign-extends v, so negative values come out as their 128-bit
// two's complement.
func U128FromI64(v int64) U128 {
	var hi uint64
	if v < 0 {
		hi = maxUint64
	}
	return U128{hi: hi, lo: uint64(v)}
}

// U128FromBigInt creates a U128 from a big.Int. Overflow truncates to MaxU128
// and sets accurate to 'false'.
func U128FromBigInt(v *big.Int) (out U128, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}

	words := v.Bits()

	switch intSize {
	case 64:
		switch len(words) {
		case 0:
			return U128{}, true
		case 1:
			return U128{lo: uint64(words[0])}, true
		case 2:
			return U128{hi: uint64(words[1]), lo: uint64(words[0])}, true
		default:
			return MaxU128, false
		}

	case 32:
		if len(words) > 4 {
			return MaxU128, false
		}
		var d [4]uint32
		for i, w := range words {
			d[i] = uint32(w)
		}
		return u128FromDigits(d[:]), true

	default:
		panic("num: unsupported bit size")
	}
}

// RandU128 generates an unsigned 128-bit random integer from an external source.
func RandU128(source RandSource) (out U128) {
	return U128{hi: source.Uint64(), lo: source.Uint64()}
}

func (u U128) IsZero() bool { return u.hi|u.lo == 0 }
func (u U128) IsOne() bool  { return u.hi == 0 && u.lo == 1 }
func (u U128) IsEven() bool { return u.lo&1 == 0 }

// IsPowerOfTwo reports whether exactly one bit of u is set.
func (u U128) IsPowerOfTwo() bool {
	return !u.IsZero() && u.And(u.Dec()).IsZero()
}

// Raw returns access to the U128 as a pair of uint64s. See U128FromRaw() for
// the counterpart.
func (u U128) Raw() (hi, lo uint64) { return u.hi, u.lo }

// Sign returns 0 if u is zero and 1 otherwise.
func (u U128) Sign() int {
	if u.IsZero() {
		return 0
	}
	return 1
}

func (u U128) IntoBigInt(b *big.Int) {
	switch intSize {
	case 64:
		bits := b.Bits()
		if cap(bits) < 2 {
			bits = make([]big.Word, 2)
		}
		bits = bits[:2]
		bits[0] = big.Word(u.lo)
		bits[1] = big.Word(u.hi)
		b.SetBits(bits)

	case 32:
		bits := b.Bits()
		if cap(bits) < 4 {
			bits = make([]big.Word, 4)
		}
		bits = bits[:4]
		for i, d := range u.digits() {
			bits[i] = big.Word(d)
		}
		b.SetBits(bits)

	default:
		b.SetUint64(u.hi)
		b.Lsh(b, 64)
		var lo big.Int
		lo.SetUint64(u.lo)
		b.Add(b, &lo)
	}
}

func (u U128) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

func (u U128) AsBigFloat() (b *big.Float) {
	return new(big.Float).SetInt(u.AsBigInt())
}

// AsI128 performs a direct cast of a U128 to an I128, which will interpret it
// as a two's complement value.
func (u U128) AsI128() I128 {
	return I128{lo: u.lo, hi: u.hi}
}

// IsI128 reports whether u can be represented in an I128.
func (u U128) IsI128() bool {
	return u.hi&signBit == 0
}

// AsUint64 truncates the U128 to fit in a uint64. Values outside the range
// will over/underflow. See IsUint64() if you want to check before you convert.
func (u U128) AsUint64() uint64 { return u.lo }

// AsUint32 truncates the U128 to its low 32 bits.
func (u U128) AsUint32() uint32 { return uint32(u.lo) }

// AsInt64 reinterprets the low 64 bits of u as an int64.
func (u U128) AsInt64() int64 { return int64(u.lo) }

// IsUint64 reports whether u can be represented as a uint64.
func (u U128) IsUint64() bool {
	return u.hi == 0
}

func (u U128) Inc() (v U128) {
	v.lo = u.lo + 1
	v.hi = u.hi
	if u.lo > v.lo {
		v.hi++
	}
	return v
}

func (u U128) Dec() (v U128) {
	v.lo = u.lo - 1
	v.hi = u.hi
	if u.lo < v.lo {
		v.hi--
	}
	return v
}

func (u U128) Add(n U128) (v U128) {
	v.lo = u.lo + n.lo
	v.hi = u.hi + n.hi
	if u.lo > v.lo {
		v.hi++
	}
	return v
}

func (u U128) Add64(n uint64) (v U128) {
	v.lo = u.lo + n
	v.hi = u.hi
	if u.lo > v.lo {
		v.hi++
	}
	return v
}

func (u U128) Sub(n U128) (v U128) {
	v.lo = u.lo - n.lo
	v.hi = u.hi - n.hi
	if u.lo < v.lo {
		v.hi--
	}
	return v
}

func (u U128) Sub64(n uint64) (v U128) {
	v.lo = u.lo - n
	v.hi = u.hi
	if u.lo < v.lo {
		v.hi--
	}
	return v
}

// Neg returns the two's complement of u, which is 0-u modulo 2^128.
func (u U128) Neg() U128 {
	return U128{}.Sub(u)
}

// Abs returns u; it exists for symmetry with I128.
func (u U128) Abs() U128 { return u }

// Cmp compares u to n and returns:
//
//	-1 if u <  n
//	 0 if u == n
//	+1 if u >  n
func (u U128) Cmp(n U128) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (u U128) Cmp64(n uint64) int {
	if u.hi > 0 || u.lo > n {
		return 1
	} else if u.lo < n {
		return -1
	}
	return 0
}

func (u U128) Equal(n U128) bool {
	return u.hi == n.hi && u.lo == n.lo
}

func (u U128) Equal64(n uint64) bool {
	return u.hi == 0 && u.lo == n
}

func (u U128) GreaterThan(n U128) bool {
	return u.hi > n.hi || (u.hi == n.hi && u.lo > n.lo)
}

func (u U128) GreaterOrEqualTo(n U128) bool {
	return u.hi > n.hi || (u.hi == n.hi && u.lo >= n.lo)
}

func (u U128) LessThan(n U128) bool {
	return u.hi < n.hi || (u.hi == n.hi && u.lo < n.lo)
}

func (u U128) LessOrEqualTo(n U128) bool {
	return u.hi < n.hi || (u.hi == n.hi && u.lo <= n.lo)
}

func (u U128) And(v U128) (out U128) {
	out.hi = u.hi & v.hi
	out.lo = u.lo & v.lo
	return out
}

func (u U128) And64(v uint64) (out U128) {
	out.lo = u.lo & v
	return out
}

func (u U128) AndNot(v U128) (out U128) {
	out.hi = u.hi &^ v.hi
	out.lo = u.lo &^ v.lo
	return out
}

func (u U128) Not() (out U128) {
	out.hi = ^u.hi
	out.lo = ^u.lo
	return out
}

func (u U128) Or(v U128) (out U128) {
	out.hi = u.hi | v.hi
	out.lo = u.lo | v.lo
	return out
}

func (u U128) Xor(v U128) (out U128) {
	out.hi = u.hi ^ v.hi
	out.lo = u.lo ^ v.lo
	return out
}

// Lsh shifts u left by n bits. Shifting by 128 or more yields zero.
func (u U128) Lsh(n uint) (v U128) {
	if n == 0 {
		return u
	} else if n > 64 {
		v.hi = u.lo << (n - 64)
	} else if n < 64 {
		v.hi = (u.hi << n) | (u.lo >> (64 - n))
		v.lo = u.lo << n
	} else {
		v.hi = u.lo
	}
	return v
}

// Rsh shifts u right by n bits, filling with zeros. Shifting by 128 or more
// yields zero.
func (u U128) Rsh(n uint) (v U128) {
	if n == 0 {
		return u
	} else if n > 64 {
		v.lo = u.hi >> (n - 64)
	} else if n < 64 {
		v.lo = (u.lo >> n) | (u.hi << (64 - n))
		v.hi = u.hi >> n
	} else {
		v.lo = u.hi
	}
	return v
}

// Bit returns the value of the i'th bit of u.
func (u U128) Bit(i int) uint {
	if i < 0 || i >= 128 {
		return 0
	}
	if i >= 64 {
		return uint((u.hi >> uint(i-64)) & 1)
	}
	return uint((u.lo >> uint(i)) & 1)
}

// SetBit returns u with the i'th bit set to b (0 or 1).
func (u U128) SetBit(i int, b uint) (out U128) {
	if i < 0 || i >= 128 {
		panic("num: bit out of range")
	}
	out = u
	if i >= 64 {
		out.hi = out.hi&^(1<<uint(i-64)) | uint64(b&1)<<uint(i-64)
	} else {
		out.lo = out.lo&^(1<<uint(i)) | uint64(b&1)<<uint(i)
	}
	return out
}

func (u U128) LeadingZeros() uint {
	if u.hi == 0 {
		return uint(bits.LeadingZeros64(u.lo)) + 64
	}
	return uint(bits.LeadingZeros64(u.hi))
}

func (u U128) TrailingZeros() uint {
	if u.lo == 0 {
		return uint(bits.TrailingZeros64(u.hi)) + 64
	}
	return uint(bits.TrailingZeros64(u.lo))
}

// BitLen returns the number of bits needed to represent u; zero has length 0.
func (u U128) BitLen() int {
	return 128 - int(u.LeadingZeros())
}

// Mul returns the product of u and n modulo 2^128.
func (u U128) Mul(n U128) U128 {
	hi, lo := mul64to128(u.lo, n.lo)
	hi += u.hi*n.lo + u.lo*n.hi
	return U128{hi: hi, lo: lo}
}

// Mul64 returns the product of u and n modulo 2^128.
func (u U128) Mul64(n uint64) U128 {
	hi, lo := mul64to128(u.lo, n)
	return U128{hi: hi + u.hi*n, lo: lo}
}
