package num

import (
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func (u u256) asBigInt() *big.Int {
	b := new(big.Int)
	for _, w := range []uint64{u.hi, u.hm, u.lm, u.lo} {
		b.Lsh(b, 64).Or(b, new(big.Int).SetUint64(w))
	}
	return b
}

func TestMul128To256(t *testing.T) {
	tt := assert.WrapTB(t)
	r := &rando{rng: globalRNG}

	for i := 0; i < 50000; i++ {
		b1, b2 := r.BigU128(), r.BigU128()
		u1, u2 := accU128FromBigInt(b1), accU128FromBigInt(b2)

		rb := new(big.Int).Mul(b1, b2)
		rc := mul128to256(u1, u2).asBigInt()
		tt.MustEqual(rb.String(), rc.String(), "failed at index %d", i)
		r.Clear()
	}
}

func TestMul128To256Max(t *testing.T) {
	tt := assert.WrapTB(t)
	p := mul128to256(MaxU128, MaxU128)

	// (2^128-1)^2 == 2^256 - 2^129 + 1
	tt.MustEqual(u256{hi: maxUint64, hm: maxUint64 - 1, lm: 0, lo: 1}, p)
}

func TestU256Rem128(t *testing.T) {
	tt := assert.WrapTB(t)
	r := &rando{rng: globalRNG}

	for i := 0; i < 20000; i++ {
		b1, b2, bm := r.BigU128(), r.BigU128(), r.BigU128()
		if bm.Cmp(maxBigUint64) <= 0 {
			bm.Or(bm, wrapBigU64) // rem128 is only used for moduli wider than 64 bits
		}
		p := mul128to256(accU128FromBigInt(b1), accU128FromBigInt(b2))
		got := p.rem128(accU128FromBigInt(bm))

		want := new(big.Int).Mul(b1, b2)
		want.Mod(want, bm)
		tt.MustEqual(want.String(), got.String(), "(%s * %s) mod %s", b1, b2, bm)
		r.Clear()
	}
}

func TestU128QuoRemWide(t *testing.T) {
	for idx, tc := range []struct {
		u, v U128
	}{
		{u128s("0xffffffffffffffffffffffffffffffff"), u128s("0x10000000000000001")},
		{u128s("0x80000000000000000000000000000000"), u128s("0x7fffffffffffffffffffffffffffffff")},
		{u128s("0x7fff800000000000000000000000"), u128s("0x800000000000ffff")},
		{u128s("0x800000000000000000000003"), u128s("0x200000000000000000000001")},
		{u128s("0x8000000000000000fffffffe00000000"), u128s("0x80000000000000000000000000000001")},
	} {
		tt := assert.WrapTB(t)
		q, r := tc.u.QuoRem(tc.v)
		bq, br := new(big.Int).QuoRem(tc.u.AsBigInt(), tc.v.AsBigInt(), new(big.Int))
		tt.MustEqual(bq.String(), q.String(), "%d: quo", idx)
		tt.MustEqual(br.String(), r.String(), "%d: rem", idx)
	}
}

func TestEstimateDigit(t *testing.T) {
	tt := assert.WrapTB(t)

	// u2 == v1 starts from the maximum digit.
	tt.MustEqual(uint64(maxUint32), estimateDigit(0x80000000, 0, 0, 0x80000000, 0))

	// 0x80000000_00000000_00000000 / 0x80000000_ffffffff overestimates by
	// one and must be corrected down.
	q := estimateDigit(0x80000000, 0, 0, 0x80000000, 0xffffffff)
	tt.MustEqual(uint64(0xfffffffe), q)
}

func TestQuoRem128By64(t *testing.T) {
	tt := assert.WrapTB(t)
	r := &rando{rng: globalRNG}

	for i := 0; i < 20000; i++ {
		v := (r.rng.Uint64() | 1<<63) >> uint(i%64) // divisors of every width
		bu := new(big.Int).Lsh(new(big.Int).SetUint64(r.rng.Uint64()%v), 64)
		bu.Or(bu, new(big.Int).SetUint64(r.rng.Uint64()))
		u := accU128FromBigInt(bu)

		q, rem := quorem128by64(u.hi, u.lo, v)
		bq, br := new(big.Int).QuoRem(bu, new(big.Int).SetUint64(v), new(big.Int))
		tt.MustEqual(bq.Uint64(), q, "%s / %d", bu, v)
		tt.MustEqual(br.Uint64(), rem, "%s %% %d", bu, v)
	}
}

var (
	BenchU128In1, BenchU128In2 = U128{hi: 1234, lo: 5678}, U128{hi: 9123, lo: 5678}
	BenchU256Result            u256
)

func BenchmarkMul128to256(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchU256Result = mul128to256(BenchU128In1, BenchU128In2)
	}
}
