package num

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/go-faster/errors"
	"github.com/shabbyrobe/golib/assert"
)

var i64 = I128From64

func bigI64(i int64) *big.Int { return new(big.Int).SetInt64(i) }

func TestI128Abs(t *testing.T) {
	for idx, tc := range []struct {
		a, b I128
	}{
		{i64(0), i64(0)},
		{i64(1), i64(1)},
		{I128{lo: maxUint64}, I128{lo: maxUint64}},
		{i64(-1), i64(1)},
		{I128{hi: maxUint64}, I128{hi: 1}},
		{MinI128, MinI128}, // overflow
	} {
		t.Run(fmt.Sprintf("%d/|%s|=%s", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.b, tc.a.Abs())
		})
	}
}

func TestI128AbsU128(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(u128s("0x80000000000000000000000000000000"), MinI128.AbsU128())
	tt.MustEqual(u64(5), i64(-5).AbsU128())
	tt.MustEqual(u64(5), i64(5).AbsU128())
}

func TestI128Add(t *testing.T) {
	for idx, tc := range []struct {
		a, b, c I128
	}{
		{i64(-2), i64(-1), i64(-3)},
		{i64(-2), i64(1), i64(-1)},
		{i64(1), i64(-2), i64(-1)},
		{i64(-1), i64(2), i64(1)},
		{i64(maxInt64), i64(1), i128s("9223372036854775808")}, // lo carries to hi
		{MaxI128, i64(1), MinI128},                            // Overflow wraps
		{MinI128, i64(-1), MaxI128},                           // Underflow wraps
	} {
		t.Run(fmt.Sprintf("%d/%s+%s=%s", idx, tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustAssert(tc.c.Equal(tc.a.Add(tc.b)), "found %s", tc.a.Add(tc.b))
			tt.MustAssert(tc.a.Equal(tc.c.Sub(tc.b)), "found %s", tc.c.Sub(tc.b))
		})
	}
}

func TestI128AsBigInt(t *testing.T) {
	for idx, tc := range []struct {
		a I128
		b *big.Int
	}{
		{I128{0, 2}, bigI64(2)},
		{I128{0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFE}, bigI64(-2)},
		{I128{0x1, 0x0}, bigs("18446744073709551616")},
		{I128{0x7FFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF}, bigs("170141183460469231731687303715884105727")},
		{I128{0x8000000000000000, 0}, bigs("-170141183460469231731687303715884105728")},
	} {
		t.Run(fmt.Sprintf("%d/%d,%d=%s", idx, tc.a.hi, tc.a.lo, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v := tc.a.AsBigInt()
			tt.MustAssert(tc.b.Cmp(v) == 0, "found: %s", v)
		})
	}
}

func TestI128FromBigInt(t *testing.T) {
	for idx, tc := range []struct {
		a   *big.Int
		b   I128
		acc bool
	}{
		{bigI64(-2), i64(-2), true},
		{bigs("170141183460469231731687303715884105727"), MaxI128, true},
		{bigs("-170141183460469231731687303715884105728"), MinI128, true},
		{bigs("170141183460469231731687303715884105728"), MaxI128, false},
		{bigs("-170141183460469231731687303715884105729"), MinI128, false},
		{bigs("0x 1 0000000000000000 0000000000000000"), MaxI128, false},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.a), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, acc := I128FromBigInt(tc.a)
			tt.MustEqual(tc.acc, acc)
			tt.MustEqual(tc.b, v)
		})
	}
}

func TestI128AsInt64(t *testing.T) {
	for _, tc := range []struct {
		a   I128
		out int64
		ok  bool
	}{
		{i64(-1), -1, true},
		{i64(minInt64), minInt64, true},
		{i64(maxInt64), maxInt64, true},
		{i128s("9223372036854775808"), minInt64, false},
		{i128s("-9223372036854775809"), maxInt64, false},
	} {
		t.Run(fmt.Sprintf("int64(%s)=%d", tc.a, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, tc.a.AsInt64())
			tt.MustEqual(tc.ok, tc.a.IsInt64())
		})
	}
}

func TestI128Cmp(t *testing.T) {
	for idx, tc := range []struct {
		a, b   I128
		result int
	}{
		{i64(12), i64(11), 1},
		{i64(11), i64(12), -1},
		{i64(11), i64(11), 0},
		{i64(-1), i64(0), -1},
		{i64(-1), i64(-2), 1},
		{MinI128, MaxI128, -1},
		{MinI128, i64(-1), -1},
		{i128s("-18446744073709551616"), i64(-1), -1},
	} {
		t.Run(fmt.Sprintf("%d/%s<=>%s=%d", idx, tc.a, tc.b, tc.result), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.result, tc.a.Cmp(tc.b))
			tt.MustEqual(-tc.result, tc.b.Cmp(tc.a))
			tt.MustEqual(tc.result < 0, tc.a.LessThan(tc.b))
			tt.MustEqual(tc.result > 0, tc.a.GreaterThan(tc.b))
		})
	}
}

func TestI128IncDec(t *testing.T) {
	for _, tc := range []struct {
		a, b I128
	}{
		{i64(-1), i64(0)},
		{i64(-2), i64(-1)},
		{i128s("-18446744073709551616"), i128s("-18446744073709551615")},
		{i64(maxInt64), i128s("9223372036854775808")},
		{MaxI128, MinI128},
	} {
		t.Run(fmt.Sprintf("%s+1=%s", tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.b, tc.a.Inc())
			tt.MustEqual(tc.a, tc.b.Dec())
		})
	}
}

func TestI128FromSize(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(I128From8(-128), i128s("-128"))
	tt.MustEqual(I128From16(-32768), i128s("-32768"))
	tt.MustEqual(I128From32(-2147483648), i128s("-2147483648"))
	tt.MustEqual(I128FromInt(-1), MinusOneI128)
	tt.MustEqual(I128FromU64(maxUint64), i128s("18446744073709551615"))
}

func TestI128Mul(t *testing.T) {
	for _, tc := range []struct {
		a, b, out I128
	}{
		{i64(1), i64(0), i64(0)},
		{i64(-2), i64(2), i64(-4)},
		{i64(-2), i64(-2), i64(4)},
		{i64(maxInt64), i64(maxInt64), i128s("85070591730234615847396907784232501249")},
		{i64(minInt64), i64(minInt64), i128s("85070591730234615865843651857942052864")},
		{i64(minInt64), i64(maxInt64), i128s("-85070591730234615856620279821087277056")},
		{MaxI128, i64(2), i128s("-2")}, // Overflow
		{MaxI128, MaxI128, i128s("1")}, // Overflow
	} {
		t.Run(fmt.Sprintf("%s*%s=%s", tc.a, tc.b, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v := tc.a.Mul(tc.b)
			tt.MustAssert(tc.out.Equal(v), "%s * %s != %s, found %s", tc.a, tc.b, tc.out, v)
		})
	}
}

func TestI128Neg(t *testing.T) {
	for idx, tc := range []struct {
		a, b I128
	}{
		{i64(0), i64(0)},
		{i64(-2), i64(2)},
		{I128{lo: 0xFFFFFFFFFFFFFFFF}, I128{hi: 0xFFFFFFFFFFFFFFFF, lo: 1}},
		{i128s("-18446744073709551617"), i128s("18446744073709551617")},
		{MaxI128, MinI128.Inc()},
		{MinI128, MinI128},
	} {
		t.Run(fmt.Sprintf("%d/-%s=%s", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.b, tc.a.Neg())
		})
	}
}

func TestI128QuoRem(t *testing.T) {
	for _, tc := range []struct {
		i, by, q, r I128
	}{
		{i: i64(1), by: i64(2), q: i64(0), r: i64(1)},
		{i: i64(10), by: i64(3), q: i64(3), r: i64(1)},
		{i: i64(10), by: i64(-3), q: i64(-3), r: i64(1)},
		{i: i64(-10), by: i64(3), q: i64(-3), r: i64(-1)},
		{i: i64(-10), by: i64(-3), q: i64(3), r: i64(-1)},
		{i: i64(-5), by: i64(2), q: i64(-2), r: i64(-1)},
		{i: i128s("0x12345678901234567"), by: i128s("0x12345678901234567"), q: i64(1), r: i64(0)},
		{i: MinI128, by: i64(-1), q: MinI128, r: i64(0)}, // overflow
		{i: MinI128, by: i64(2), q: i128s("-85070591730234615865843651857942052864"), r: i64(0)},
		{i: MinI128, by: MaxI128, q: i64(-1), r: i64(-1)},
	} {
		t.Run(fmt.Sprintf("%s÷%s=%s,%s", tc.i, tc.by, tc.q, tc.r), func(t *testing.T) {
			tt := assert.WrapTB(t)
			q, r := tc.i.QuoRem(tc.by)
			tt.MustEqual(tc.q.String(), q.String())
			tt.MustEqual(tc.r.String(), r.String())
			tt.MustEqual(q, tc.i.Quo(tc.by))
			tt.MustEqual(r, tc.i.Rem(tc.by))
		})
	}
}

func TestI128QuoRem64(t *testing.T) {
	tt := assert.WrapTB(t)
	q, r := i64(-7).QuoRem64(2)
	tt.MustEqual(i64(-3), q)
	tt.MustEqual(int64(-1), r)
	tt.MustEqual(i64(-3), i64(-7).Quo64(2))

	err, _ := catchPanic(func() { i64(1).Quo(ZeroI128) }).(error)
	tt.MustAssert(errors.Is(err, ErrDivideByZero), "found %v", err)
}

func TestI128Rsh(t *testing.T) {
	for _, tc := range []struct {
		i  I128
		by uint
		r  I128
	}{
		{i64(-4), 1, i64(-2)},
		{i64(-1), 100, i64(-1)},
		{i64(-5), 1, i64(-3)}, // rounds towards negative infinity
		{MinI128, 127, i64(-1)},
		{MinI128, 64, I128{hi: maxUint64, lo: 0x8000000000000000}},
		{MinI128, 128, i64(-1)},
		{MaxI128, 126, i64(1)},
		{MaxI128, 200, i64(0)},
	} {
		t.Run(fmt.Sprintf("%s>>%d=%s", tc.i, tc.by, tc.r), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.r, tc.i.Rsh(tc.by))
		})
	}
}

func TestI128Bitwise(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(i64(-1), ZeroI128.Not())
	tt.MustEqual(i64(2), i64(-2).And(i64(3)))
	tt.MustEqual(i64(-1), i64(-2).Or(i64(1)))
	tt.MustEqual(i64(-3), i64(-2).Xor(i64(3)))
	tt.MustEqual(i64(-4), i64(-1).AndNot(i64(3)))
	tt.MustEqual(MinI128, OneI128.Lsh(127))
}

func TestI128String(t *testing.T) {
	for _, tc := range []struct {
		in  I128
		out string
	}{
		{ZeroI128, "0"},
		{MinusOneI128, "-1"},
		{MaxI128, "170141183460469231731687303715884105727"},
		{MinI128, "-170141183460469231731687303715884105728"},
		{i128s("-10000000000000000000"), "-10000000000000000000"},
	} {
		t.Run(tc.out, func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, tc.in.String())
			tt.MustEqual(tc.out, fmt.Sprintf("%d", tc.in))

			back, err := ParseI128(tc.out)
			tt.MustOK(err)
			tt.MustEqual(tc.in, back)
		})
	}
}

func TestI128FromString(t *testing.T) {
	for idx, tc := range []struct {
		in  string
		out I128
		acc bool
		err error
	}{
		{"-1", MinusOneI128, true, nil},
		{"+1", OneI128, true, nil},
		{"-170141183460469231731687303715884105728", MinI128, true, nil},
		{"-170141183460469231731687303715884105729", MinI128, false, nil},
		{"170141183460469231731687303715884105728", MaxI128, false, nil},
		{"-99999999999999999999999999999999999999999", MinI128, false, nil},
		{"-", ZeroI128, false, ErrSyntax},
		{"--1", ZeroI128, false, ErrSyntax},
		{"1.5", ZeroI128, false, ErrSyntax},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, acc, err := I128FromString(tc.in)
			if tc.err != nil {
				tt.MustAssert(errors.Is(err, tc.err), "expected %v, found %v", tc.err, err)
				return
			}
			tt.MustOK(err)
			tt.MustEqual(tc.acc, acc)
			tt.MustEqual(tc.out, out)
		})
	}

	tt := assert.WrapTB(t)
	_, err := ParseI128("170141183460469231731687303715884105728")
	tt.MustAssert(errors.Is(err, ErrRange), "found %v", err)
}

func TestI128AsFloat64(t *testing.T) {
	for _, tc := range []struct {
		a   I128
		out float64
	}{
		{i64(-1), -1},
		{MinI128, -170141183460469231731687303715884105728},
		{MaxI128, 170141183460469231731687303715884105728},
		{i128s("-18446744073709553665"), -18446744073709555712},
	} {
		t.Run(fmt.Sprintf("float64(%s)", tc.a), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, tc.a.AsFloat64())
		})
	}
}

func TestI128FromFloat64(t *testing.T) {
	for idx, tc := range []struct {
		f       float64
		out     I128
		inRange bool
	}{
		{math.NaN(), i64(0), false},
		{math.Inf(0), MaxI128, false},
		{math.Inf(-1), MinI128, false},
		{-1.5, i64(-1), true},
		{-170141183460469231731687303715884105728, MinI128, true},
		{170141183460469231731687303715884105728, MaxI128, false},
		{-18446744073709551616, i128s("-18446744073709551616"), true},
	} {
		t.Run(fmt.Sprintf("%d/fromfloat64(%g)==%s", idx, tc.f, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			rn, inRange := I128FromFloat64(tc.f)
			tt.MustEqual(tc.inRange, inRange)
			tt.MustEqual(tc.out, rn)
		})
	}
}

func TestI128MarshalJSON(t *testing.T) {
	tt := assert.WrapTB(t)
	r := &rando{rng: globalRNG}

	for i := 0; i < 5000; i++ {
		n := accI128FromBigInt(r.BigI128())
		r.Clear()

		bts, err := json.Marshal(n)
		tt.MustOK(err)

		var result I128
		tt.MustOK(json.Unmarshal(bts, &result))
		tt.MustAssert(result.Equal(n))
	}
	for _, tc := range []struct {
		in  string
		err error
	}{
		{`{"I":"170141183460469231731687303715884105728"}`, ErrRange},
		{`{"I":"-170141183460469231731687303715884105729"}`, ErrRange},
		{`{"I":"999999999999999999999999999999999999999999"}`, ErrRange},
		{`{"I":"--5"}`, ErrSyntax},
	} {
		var v struct{ I I128 }
		v.I = i64(7)
		err := json.Unmarshal([]byte(tc.in), &v)
		tt.MustAssert(errors.Is(err, tc.err), "%s: expected %v, found %v", tc.in, tc.err, err)
		tt.MustEqual(i64(7), v.I)
	}

	var v I128
	tt.MustOK(v.UnmarshalText([]byte("-170141183460469231731687303715884105728")))
	tt.MustEqual(MinI128, v)
	err := v.UnmarshalText([]byte("170141183460469231731687303715884105728"))
	tt.MustAssert(errors.Is(err, ErrRange), "found %v", err)
}

func TestI128MulAddSub(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(i64(-7), i64(5).MulAdd(i64(-3), i64(4)))
	tt.MustEqual(i64(17), i64(5).MulSub(i64(-3), i64(4)))
	tt.MustEqual(MinI128, MaxI128.MulAdd(OneI128, OneI128))
	tt.MustEqual(MaxI128, MinI128.MulSub(MinusOneI128, MinusOneI128))
}

func TestI128Pow(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(i64(-8), i64(-2).Pow(3))
	tt.MustEqual(i64(16), i64(-2).Pow(4))
	tt.MustEqual(MinI128, i64(-2).Pow(127))
	tt.MustEqual(i64(-27), i64(-3).Cube())
	tt.MustEqual(i64(9), i64(-3).Square())

	err, _ := catchPanic(func() { i64(2).Pow(-1) }).(error)
	tt.MustAssert(errors.Is(err, ErrDomain), "found %v", err)
}

func TestI128Log(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustAssert(math.Abs(i64(100).Log10()-2) < 1e-12)
	for _, v := range []I128{ZeroI128, MinusOneI128, MinI128} {
		err, _ := catchPanic(func() { v.Log() }).(error)
		tt.MustAssert(errors.Is(err, ErrDomain), "log(%s): found %v", v, err)
	}
}

var (
	BenchI128Result I128
)

func BenchmarkI128FromBigInt(b *testing.B) {
	for _, bi := range []*big.Int{
		bigs("0"),
		bigs("0xfedcba98"),
		bigs("-0xfedcba9876543210"),
		bigs("0xfedcba9876543210fedcba9876543210"),
	} {
		b.Run(fmt.Sprintf("%x", bi), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchI128Result, _ = I128FromBigInt(bi)
			}
		})
	}
}

func BenchmarkI128QuoRem(b *testing.B) {
	n, d := i128s("-0x7edcba9876543210fedcba9876543210"), i128s("0x123456789abcdef01")
	for i := 0; i < b.N; i++ {
		BenchI128Result, _ = n.QuoRem(d)
	}
}

func BenchmarkI128LessThan(b *testing.B) {
	for _, iv := range []struct {
		a, b I128
	}{
		{i64(1), i64(1)},
		{i64(-1), i64(1)},
		{MinI128, MaxI128},
	} {
		b.Run(fmt.Sprintf("%s<%s", iv.a, iv.b), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchBoolResult = iv.a.LessThan(iv.b)
			}
		})
	}
}
