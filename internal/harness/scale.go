// Package harness drives the num128 command: timing the 64-bit scaling
// strategies and 128-bit operations, differential verification against
// math/big, and a calculator over the named operations.
package harness

import (
	"math"

	num "github.com/shabbyrobe/go-num128"
)

// RangeU64 maps a uniformly random r onto [min, max] inclusive, swapping the
// bounds if they are reversed. The full uint64 range maps everything to min.
func RangeU64(r, min, max uint64) uint64 {
	if min > max {
		min, max = max, min
	}
	if r == math.MaxUint64 {
		r = 0 // r/MaxUint64 must stay below 1
	}
	diff := max - min + 1
	return min + num.MulDivU64(diff, r, math.MaxUint64)
}

// RangeI64 is the signed counterpart of RangeU64. The full int64 range maps
// everything to min.
func RangeI64(r uint64, min, max int64) int64 {
	if min > max {
		min, max = max, min
	}
	if r == math.MaxUint64 {
		r = 0
	}
	diff := uint64(max-min) + 1
	return min + int64(num.MulDivU64(diff, r, math.MaxUint64))
}
