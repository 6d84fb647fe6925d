package num

// RandSource is satisfied by xoshiro.Source and math/rand.Source64.
type RandSource interface {
	Uint64() uint64
}

// DifferenceU128 subtracts the smaller of a and b from the larger.
func DifferenceU128(a, b U128) U128 {
	if a.LessThan(b) {
		return b.Sub(a)
	}
	return a.Sub(b)
}

func LargerU128(a, b U128) U128 {
	if b.GreaterThan(a) {
		return b
	}
	return a
}

func SmallerU128(a, b U128) U128 {
	if b.LessThan(a) {
		return b
	}
	return a
}

// DifferenceI128 subtracts the smaller of a and b from the larger. The
// result wraps if the distance exceeds MaxI128; see DifferenceI128U.
func DifferenceI128(a, b I128) I128 {
	if a.LessThan(b) {
		return b.Sub(a)
	}
	return a.Sub(b)
}

// DifferenceI128U is the distance between a and b, which always fits in a
// U128.
func DifferenceI128U(a, b I128) U128 {
	return DifferenceI128(a, b).AsU128()
}

func LargerI128(a, b I128) I128 {
	if b.GreaterThan(a) {
		return b
	}
	return a
}

func SmallerI128(a, b I128) I128 {
	if b.LessThan(a) {
		return b
	}
	return a
}
