package num

import (
	"fmt"
	"strconv"
)

var pow10 = [...]uint64{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000,
	10000000000, 100000000000, 1000000000000, 10000000000000, 100000000000000,
	1000000000000000, 10000000000000000, 100000000000000000, 1000000000000000000,
	10000000000000000000,
}

// U128FromString creates a U128 from a base-10 string with an optional
// leading '+'. Overflow truncates to MaxU128 and sets accurate to 'false'.
// Invalid input, including a negative number, returns a *FormatError; "-0"
// is accepted as zero.
func U128FromString(s string) (out U128, accurate bool, err error) {
	neg, mag, overflow, ok := parseSigned(s)
	if !ok || (neg && (overflow || !mag.IsZero())) {
		return out, false, &FormatError{Type: "u128", Input: s, Err: ErrSyntax}
	}
	if overflow {
		return MaxU128, false, nil
	}
	return mag, true, nil
}

// ParseU128 is like U128FromString, but input that does not fit in a U128 is
// an error wrapping ErrRange rather than a truncated value.
func ParseU128(s string) (U128, error) {
	out, accurate, err := U128FromString(s)
	if err != nil {
		return U128{}, err
	}
	if !accurate {
		return U128{}, &FormatError{Type: "u128", Input: s, Err: ErrRange}
	}
	return out, nil
}

// I128FromString creates a I128 from a base-10 string with an optional
// leading sign. Overflow truncates to MaxI128/MinI128 and sets accurate to
// 'false'. Invalid input returns a *FormatError.
func I128FromString(s string) (out I128, accurate bool, err error) {
	neg, mag, overflow, ok := parseSigned(s)
	if !ok {
		return out, false, &FormatError{Type: "i128", Input: s, Err: ErrSyntax}
	}
	if neg {
		if overflow || mag.GreaterThan(minI128AsAbsU128) {
			return MinI128, false, nil
		}
		return mag.AsI128().Neg(), true, nil
	}
	if overflow || mag.GreaterThan(maxI128AsU128) {
		return MaxI128, false, nil
	}
	return mag.AsI128(), true, nil
}

// ParseI128 is like I128FromString, but input that does not fit in an I128
// is an error wrapping ErrRange rather than a clamped value.
func ParseI128(s string) (I128, error) {
	out, accurate, err := I128FromString(s)
	if err != nil {
		return I128{}, err
	}
	if !accurate {
		return I128{}, &FormatError{Type: "i128", Input: s, Err: ErrRange}
	}
	return out, nil
}

func parseSigned(s string) (neg bool, mag U128, overflow, ok bool) {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	mag, overflow, ok = parseMagnitude(s)
	return neg, mag, overflow, ok
}

// parseMagnitude reads an unsigned run of decimal digits, 19 at a time. After
// an overflow the remaining input is still checked for syntax.
func parseMagnitude(s string) (u U128, overflow, ok bool) {
	if s == "" {
		return u, false, false
	}

	for len(s) > 0 {
		n := len(s)
		if n > pow10ChunkDigits {
			n = pow10ChunkDigits
		}

		var chunk uint64
		for i := 0; i < n; i++ {
			c := s[i]
			if c < '0' || c > '9' {
				return U128{}, false, false
			}
			chunk = chunk*10 + uint64(c-'0')
		}

		if !overflow {
			u, overflow = mulAdd128(u, pow10[n], chunk)
		}
		s = s[n:]
	}

	if overflow {
		return MaxU128, true, true
	}
	return u, false, true
}

// mulAdd128 returns u*m + a and whether the result overflowed 128 bits.
func mulAdd128(u U128, m, a uint64) (out U128, overflow bool) {
	phi, plo := mul64to128(u.hi, m)
	if phi != 0 {
		return out, true
	}

	var c uint64
	out.hi, out.lo = mul64to128(u.lo, m)
	out.hi, c = addc(out.hi, plo, 0)
	if c != 0 {
		return out, true
	}

	out.lo, c = addc(out.lo, a, 0)
	out.hi, c = addc(out.hi, 0, c)
	return out, c != 0
}

func (u U128) String() string {
	if u.hi == 0 {
		return strconv.FormatUint(u.lo, 10)
	}

	var buf [40]byte
	i := len(buf)
	for u.hi != 0 {
		var r uint64
		u, r = u.QuoRem64(pow10Chunk)
		for j := 0; j < pow10ChunkDigits; j++ {
			i--
			buf[i] = byte('0' + r%10)
			r /= 10
		}
	}

	out := strconv.AppendUint(make([]byte, 0, len(buf)), u.lo, 10)
	return string(append(out, buf[i:]...))
}

func (u U128) Format(s fmt.State, c rune) {
	// FIXME: big.Int handles every verb and flag; decimal verbs could skip it.
	u.AsBigInt().Format(s, c)
}

func (u U128) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText rejects input that does not fit in a U128 with an error
// wrapping ErrRange.
func (u *U128) UnmarshalText(bts []byte) (err error) {
	v, err := ParseU128(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u U128) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *U128) UnmarshalJSON(bts []byte) (err error) {
	bts, err = unquoteJSON("u128", bts)
	if err != nil {
		return err
	}
	v, err := ParseU128(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (i I128) String() string {
	if i.hi&signBit == 0 {
		return i.AsU128().String()
	}
	return "-" + i.AbsU128().String()
}

func (i I128) Format(s fmt.State, c rune) {
	i.AsBigInt().Format(s, c)
}

func (i I128) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *I128) UnmarshalText(bts []byte) (err error) {
	v, err := ParseI128(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i I128) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

func (i *I128) UnmarshalJSON(bts []byte) (err error) {
	bts, err = unquoteJSON("i128", bts)
	if err != nil {
		return err
	}
	v, err := ParseI128(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func unquoteJSON(typ string, bts []byte) ([]byte, error) {
	ln := len(bts)
	if ln > 0 && bts[0] == '"' {
		if ln < 2 || bts[ln-1] != '"' {
			return nil, &FormatError{Type: typ, Input: string(bts), Err: ErrSyntax}
		}
		bts = bts[1 : ln-1]
	}
	return bts, nil
}
