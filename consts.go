package num

import (
	"math/big"
)

const (
	maxUint64 = 1<<64 - 1
	maxUint32 = 1<<32 - 1
	maxInt64  = 1<<63 - 1
	minInt64  = -1 << 63

	wrapUint64Float = float64(maxUint64) + 1 // 1 << 64

	maxU128Float = float64(340282366920938463463374607431768211455)  // (1<<128) - 1
	minI128Float = float64(-170141183460469231731687303715884105728) // -(1<<127)

	// Largest power of ten that fits in a uint64, used to move 19 decimal
	// digits at a time.
	pow10Chunk       = 10000000000000000000
	pow10ChunkDigits = 19

	intSize = 32 << (^uint(0) >> 63)
)

var (
	ZeroU128 = U128{}
	OneU128  = U128{lo: 1}
	MaxU128  = U128{hi: maxUint64, lo: maxUint64}

	ZeroI128     = I128{}
	OneI128      = I128{lo: 1}
	MinusOneI128 = I128{hi: maxUint64, lo: maxUint64}
	MaxI128      = I128{hi: 0x7FFFFFFFFFFFFFFF, lo: 0xFFFFFFFFFFFFFFFF}
	MinI128      = I128{hi: 0x8000000000000000, lo: 0}

	big1 = new(big.Int).SetInt64(1)

	maxBigU128, _ = new(big.Int).SetString("340282366920938463463374607431768211455", 10)
)
