package num

// ModAdd returns (u + n) mod m. A zero modulus panics with ErrDivideByZero.
func (u U128) ModAdd(n, m U128) U128 {
	u, n = u.reduce(m), n.reduce(m)
	c := u.Add(n)
	if !c.LessThan(m) || c.LessThan(u) { // c.LessThan(u) means the sum wrapped
		c = c.Sub(m)
	}
	return c
}

// ModSub returns (u - n) mod m. A zero modulus panics with ErrDivideByZero.
func (u U128) ModSub(n, m U128) U128 {
	u, n = u.reduce(m), n.reduce(m)
	c := u.Sub(n)
	if u.LessThan(n) {
		c = c.Add(m)
	}
	return c
}

// ModMul returns (u * n) mod m. A zero modulus panics with ErrDivideByZero.
func (u U128) ModMul(n, m U128) U128 {
	if m.hi == 0 {
		if m.lo == 0 {
			panic(ErrDivideByZero)
		}
		a, b := u.reduce(m), n.reduce(m)
		hi, lo := mul64to128(a.lo, b.lo)
		return U128{lo: U128{hi: hi, lo: lo}.Rem64(m.lo)}
	}
	return mul128to256(u, n).rem128(m)
}

// ModPow returns u**e mod m using square-and-multiply from the least
// significant exponent bit. A zero modulus panics with ErrDivideByZero.
func (u U128) ModPow(e, m U128) U128 {
	if m.IsZero() {
		panic(ErrDivideByZero)
	}

	result := OneU128.reduce(m)
	v := u
	x := e.lo
	if e.hi != 0 {
		for i := 0; i < 64; i++ {
			if x&1 != 0 {
				result = result.ModMul(v, m)
			}
			v = v.ModMul(v, m)
			x >>= 1
		}
		x = e.hi
	}
	for x != 0 {
		if x&1 != 0 {
			result = result.ModMul(v, m)
		}
		if x != 1 {
			v = v.ModMul(v, m)
		}
		x >>= 1
	}
	return result
}

func (u U128) reduce(m U128) U128 {
	if u.LessThan(m) {
		return u
	}
	return u.Rem(m)
}

// residue returns the least non-negative residue of i modulo a positive m.
func (i I128) residue(m U128) U128 {
	if !i.IsNeg() {
		return i.AsU128().reduce(m)
	}
	r := i.AbsU128().Rem(m)
	if r.IsZero() {
		return r
	}
	return m.Sub(r)
}

func signedModulus(op string, m I128) U128 {
	if m.Sign() <= 0 {
		domainPanic("i128: " + op + " modulus must be positive")
	}
	return m.AsU128()
}

// ModAdd returns (i + n) mod m in [0, m). The modulus must be positive.
func (i I128) ModAdd(n, m I128) I128 {
	mu := signedModulus("modadd", m)
	return i.residue(mu).ModAdd(n.residue(mu), mu).AsI128()
}

// ModSub returns (i - n) mod m in [0, m). The modulus must be positive.
func (i I128) ModSub(n, m I128) I128 {
	mu := signedModulus("modsub", m)
	return i.residue(mu).ModSub(n.residue(mu), mu).AsI128()
}

// ModMul returns (i * n) mod m in [0, m). The modulus must be positive.
func (i I128) ModMul(n, m I128) I128 {
	mu := signedModulus("modmul", m)
	return i.residue(mu).ModMul(n.residue(mu), mu).AsI128()
}

// ModPow returns i**e mod m in [0, m). The modulus must be positive and the
// exponent must not be negative.
func (i I128) ModPow(e, m I128) I128 {
	mu := signedModulus("modpow", m)
	if e.IsNeg() {
		domainPanic("i128: modpow negative exponent")
	}
	return i.residue(mu).ModPow(e.AsU128(), mu).AsI128()
}
