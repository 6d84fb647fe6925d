package harness

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRangeU64(t *testing.T) {
	for _, tc := range []struct {
		r, min, max uint64
		out         uint64
	}{
		{0, 10, 20, 10},
		{math.MaxUint64, 10, 20, 10},
		{math.MaxUint64 - 1, 10, 20, 20},
		{math.MaxUint64 / 2, 0, 100, 50},
		{math.MaxUint64 / 2, 100, 0, 50},
		{12345, 0, math.MaxUint64 - 1, 12345},
		{12345, 7, 7, 7},
	} {
		require.Equal(t, tc.out, RangeU64(tc.r, tc.min, tc.max), "%d in [%d, %d]", tc.r, tc.min, tc.max)
	}
}

func TestRangeI64(t *testing.T) {
	for _, tc := range []struct {
		r        uint64
		min, max int64
		out      int64
	}{
		{0, -10, 10, -10},
		{math.MaxUint64, -10, 10, -10},
		{math.MaxUint64 - 1, -10, 10, 10},
		{math.MaxUint64 / 2, 10, -10, 0},
		{12345, 0, math.MaxInt64, 6172},
	} {
		require.Equal(t, tc.out, RangeI64(tc.r, tc.min, tc.max), "%d in [%d, %d]", tc.r, tc.min, tc.max)
	}
}
