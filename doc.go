/*
Package num provides fixed-width uint128 (U128) and int128 (I128) types built
on pairs of 64-bit limbs. Arithmetic wraps modulo 2^128 like Go's native
integers; no operation allocates or falls back to math/big.

U128 and I128 are value types; all operations return new values.

Simple example:

	u1 := U128From64(math.MaxUint64)
	u2 := U128From64(math.MaxUint64)
	fmt.Println(u1.Mul(u2))
	// Output: 340282366920938463426481119284349108225

Beyond the big.Int-style API (Add, Sub, Mul, Quo, Rem, QuoRem, Lsh, Rsh, Cmp
and friends) both types provide number-theoretic helpers:

	GCD(v)                     Lehmer's algorithm
	ModAdd, ModSub, ModMul     results in [0, m)
	ModPow(e, m)               square-and-multiply
	FloorSqrt, CeilingSqrt     exact integer square roots
	FloorCbrt, CeilingCbrt     exact integer cube roots

Montgomery holds precomputed constants for repeated reduction modulo one odd
modulus.

U128 and I128 can be created from a variety of sources:

	U128FromRaw(hi, lo uint64) U128
	U128From64(v uint64) U128
	U128From32(v uint32) U128
	U128From16(v uint16) U128
	U128From8(v uint8) U128
	U128FromString(s string) (out U128, accurate bool, err error)
	ParseU128(s string) (U128, error)
	U128FromBigInt(v *big.Int) (out U128, accurate bool)
	U128FromDecimal(d decimal.Decimal) (out U128, accurate bool)
	U128FromFloat32(f float32) (out U128, inRange bool)
	U128FromFloat64(f float64) (out U128, inRange bool)

Division by zero panics with ErrDivideByZero. Arguments outside an operation's
domain, such as the square root of a negative I128, panic with an error
wrapping ErrDomain. Parsing returns a *FormatError.

U128 and I128 support the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

Unmarshalling is strict: input that does not fit the type fails with an error
wrapping ErrRange, and a negative U128 fails with ErrSyntax.
*/
package num
