package num

import (
	"math"
)

func (u U128) Square() U128 { return u.Mul(u) }
func (u U128) Cube() U128   { return u.Mul(u).Mul(u) }

// MulAdd returns u + b*c modulo 2^128.
func (u U128) MulAdd(b, c U128) U128 { return u.Add(b.Mul(c)) }

// MulSub returns u - b*c modulo 2^128.
func (u U128) MulSub(b, c U128) U128 { return u.Sub(b.Mul(c)) }

// Pow returns u**e modulo 2^128.
func (u U128) Pow(e uint) U128 {
	result := OneU128
	for e != 0 {
		if e&1 != 0 {
			result = result.Mul(u)
		}
		e >>= 1
		if e != 0 {
			u = u.Mul(u)
		}
	}
	return result
}

// Log returns the natural logarithm of u. Zero panics with ErrDomain.
func (u U128) Log() float64 {
	if u.IsZero() {
		domainPanic("u128: log of zero")
	}
	return math.Log(u.AsFloat64())
}

// Log10 returns the base-10 logarithm of u. Zero panics with ErrDomain.
func (u U128) Log10() float64 {
	if u.IsZero() {
		domainPanic("u128: log10 of zero")
	}
	return math.Log10(u.AsFloat64())
}

// LogBase returns the logarithm of u in the given base.
func (u U128) LogBase(base float64) float64 {
	return u.Log() / math.Log(base)
}

func (i I128) Square() I128 { return i.Mul(i) }
func (i I128) Cube() I128   { return i.Mul(i).Mul(i) }

// MulAdd returns i + b*c, wrapping like Add and Mul.
func (i I128) MulAdd(b, c I128) I128 { return i.Add(b.Mul(c)) }

// MulSub returns i - b*c, wrapping like Sub and Mul.
func (i I128) MulSub(b, c I128) I128 { return i.Sub(b.Mul(c)) }

// Pow returns i**e modulo 2^128. A negative exponent panics with ErrDomain.
func (i I128) Pow(e int) I128 {
	if e < 0 {
		domainPanic("i128: pow negative exponent")
	}
	return i.AsU128().Pow(uint(e)).AsI128()
}

// Log returns the natural logarithm of i. Values <= 0 panic with ErrDomain.
func (i I128) Log() float64 {
	if i.Sign() <= 0 {
		domainPanic("i128: log of non-positive")
	}
	return i.AsU128().Log()
}

// Log10 returns the base-10 logarithm of i. Values <= 0 panic with ErrDomain.
func (i I128) Log10() float64 {
	if i.Sign() <= 0 {
		domainPanic("i128: log10 of non-positive")
	}
	return i.AsU128().Log10()
}

func (i I128) LogBase(base float64) float64 {
	return i.Log() / math.Log(base)
}
