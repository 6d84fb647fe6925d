package harness

import (
	"context"
	"math/big"
	"math/rand"

	"github.com/go-faster/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	num "github.com/shabbyrobe/go-num128"
	"github.com/shabbyrobe/go-num128/xoshiro"
)

// Each worker stops recording after this many failures, but keeps counting.
const maxFailuresPerWorker = 50

var (
	bigWrap128 = new(big.Int).Lsh(big.NewInt(1), 128)
	bigR       = bigWrap128
)

type VerifyConfig struct {
	Workers    int
	Iterations int
	Seed       uint64
	Logger     *zap.Logger

	// Checks limits the run to the named checks; empty runs all of them.
	Checks []string
}

// Check compares one operation against math/big for random operands.
type Check struct {
	Name string
	Run  func(rng *rand.Rand) error
}

// Checks returns every differential check Verify knows about.
func Checks() []Check {
	return []Check{
		{"u128.add", checkU128Binary(func(a, b num.U128) num.U128 { return a.Add(b) }, func(z, a, b *big.Int) *big.Int { return z.Add(a, b) })},
		{"u128.sub", checkU128Binary(func(a, b num.U128) num.U128 { return a.Sub(b) }, func(z, a, b *big.Int) *big.Int { return z.Sub(a, b) })},
		{"u128.mul", checkU128Binary(func(a, b num.U128) num.U128 { return a.Mul(b) }, func(z, a, b *big.Int) *big.Int { return z.Mul(a, b) })},
		{"u128.quorem", checkU128QuoRem},
		{"u128.gcd", checkU128Binary(func(a, b num.U128) num.U128 { return a.GCD(b) }, func(z, a, b *big.Int) *big.Int { return z.GCD(nil, nil, a, b) })},
		{"u128.modadd", checkU128Mod("modadd", num.U128.ModAdd, (*big.Int).Add)},
		{"u128.modsub", checkU128Mod("modsub", num.U128.ModSub, (*big.Int).Sub)},
		{"u128.modmul", checkU128ModMul},
		{"u128.modpow", checkU128ModPow},
		{"u128.sqrt", checkU128Sqrt},
		{"u128.cbrt", checkU128Cbrt},
		{"u128.string", checkU128String},
		{"i128.quorem", checkI128QuoRem},
		{"montgomery.modpow", checkMontgomery},
	}
}

// Verify runs the checks on cfg.Workers goroutines, each with its own
// generator seeded from cfg.Seed plus the worker index. All mismatches are
// returned combined.
func Verify(ctx context.Context, cfg VerifyConfig) error {
	lg := cfg.Logger
	if lg == nil {
		lg = zap.NewNop()
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}

	checks, err := selectChecks(cfg.Checks)
	if err != nil {
		return err
	}

	failures := make([]error, cfg.Workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < cfg.Workers; w++ {
		w := w
		g.Go(func() error {
			rng := rand.New(xoshiro.New(cfg.Seed + uint64(w)))
			var errs error
			var count int
			for i := 0; i < cfg.Iterations; i++ {
				if i%1024 == 0 {
					if err := ctx.Err(); err != nil {
						return errors.Wrapf(err, "worker %d", w)
					}
				}
				for _, c := range checks {
					if err := c.Run(rng); err != nil {
						count++
						if count <= maxFailuresPerWorker {
							errs = multierr.Append(errs, errors.Wrapf(err, "worker %d: %s", w, c.Name))
						}
					}
				}
			}
			if count > maxFailuresPerWorker {
				errs = multierr.Append(errs, errors.Errorf("worker %d: %d more failures", w, count-maxFailuresPerWorker))
			}
			lg.Debug("Worker done", zap.Int("worker", w), zap.Int("failures", count))
			failures[w] = errs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return errors.Wrap(err, "wait")
	}
	return multierr.Combine(failures...)
}

func selectChecks(names []string) ([]Check, error) {
	all := Checks()
	if len(names) == 0 {
		return all, nil
	}
	var out []Check
	for _, name := range names {
		found := false
		for _, c := range all {
			if c.Name == name {
				out = append(out, c)
				found = true
			}
		}
		if !found {
			return nil, errors.Errorf("unknown check %q", name)
		}
	}
	return out, nil
}

// randU128 draws a value whose bit length is uniform over 0..128, so small
// and mixed-width operands turn up as often as full-width ones.
func randU128(rng *rand.Rand) num.U128 {
	bits := rng.Intn(129)
	return num.U128FromRaw(rng.Uint64(), rng.Uint64()).Rsh(uint(128 - bits))
}

func randI128(rng *rand.Rand) num.I128 {
	bits := rng.Intn(128)
	v := num.U128FromRaw(rng.Uint64(), rng.Uint64()).Rsh(uint(128 - bits)).AsI128()
	if rng.Intn(2) == 1 {
		v = v.Neg()
	}
	return v
}

func wrap128(b *big.Int) *big.Int {
	return b.Mod(b, bigWrap128)
}

func mismatch(op string, got, want interface{ String() string }, args ...*big.Int) error {
	return errors.Errorf("%s%v: got %s, want %s", op, args, got.String(), want.String())
}

func checkU128Binary(op func(a, b num.U128) num.U128, ref func(z, a, b *big.Int) *big.Int) func(*rand.Rand) error {
	return func(rng *rand.Rand) error {
		a, b := randU128(rng), randU128(rng)
		ba, bb := a.AsBigInt(), b.AsBigInt()
		want := wrap128(ref(new(big.Int), ba, bb))
		if got := op(a, b); got.AsBigInt().Cmp(want) != 0 {
			return mismatch("op", got, want, ba, bb)
		}
		return nil
	}
}

func checkU128QuoRem(rng *rand.Rand) error {
	a, b := randU128(rng), randU128(rng)
	if b.IsZero() {
		return nil
	}
	ba, bb := a.AsBigInt(), b.AsBigInt()
	wq, wr := new(big.Int).QuoRem(ba, bb, new(big.Int))
	q, r := a.QuoRem(b)
	if q.AsBigInt().Cmp(wq) != 0 {
		return mismatch("quo", q, wq, ba, bb)
	}
	if r.AsBigInt().Cmp(wr) != 0 {
		return mismatch("rem", r, wr, ba, bb)
	}
	return nil
}

func checkU128Mod(name string, op func(a, b, m num.U128) num.U128, ref func(z, a, b *big.Int) *big.Int) func(*rand.Rand) error {
	return func(rng *rand.Rand) error {
		a, b, m := randU128(rng), randU128(rng), randU128(rng)
		if m.IsZero() {
			return nil
		}
		ba, bb, bm := a.AsBigInt(), b.AsBigInt(), m.AsBigInt()
		want := ref(new(big.Int), ba, bb)
		want.Mod(want, bm)
		if got := op(a, b, m); got.AsBigInt().Cmp(want) != 0 {
			return mismatch(name, got, want, ba, bb, bm)
		}
		return nil
	}
}

func checkU128ModMul(rng *rand.Rand) error {
	a, b, m := randU128(rng), randU128(rng), randU128(rng)
	if m.IsZero() {
		return nil
	}
	ba, bb, bm := a.AsBigInt(), b.AsBigInt(), m.AsBigInt()
	want := new(big.Int).Mul(ba, bb)
	want.Mod(want, bm)
	if got := a.ModMul(b, m); got.AsBigInt().Cmp(want) != 0 {
		return mismatch("modmul", got, want, ba, bb, bm)
	}
	return nil
}

func checkU128ModPow(rng *rand.Rand) error {
	a, e, m := randU128(rng), randU128(rng), randU128(rng)
	if m.IsZero() {
		return nil
	}
	ba, be, bm := a.AsBigInt(), e.AsBigInt(), m.AsBigInt()
	want := new(big.Int).Exp(ba, be, bm)
	if got := a.ModPow(e, m); got.AsBigInt().Cmp(want) != 0 {
		return mismatch("modpow", got, want, ba, be, bm)
	}
	return nil
}

func checkU128Sqrt(rng *rand.Rand) error {
	a := randU128(rng)
	ba := a.AsBigInt()
	want := new(big.Int).Sqrt(ba)
	if got := a.FloorSqrt(); got.AsBigInt().Cmp(want) != 0 {
		return mismatch("floorsqrt", got, want, ba)
	}
	if new(big.Int).Mul(want, want).Cmp(ba) != 0 {
		want.Add(want, big.NewInt(1))
	}
	if got := a.CeilingSqrt(); got.AsBigInt().Cmp(want) != 0 {
		return mismatch("ceilingsqrt", got, want, ba)
	}
	return nil
}

func checkU128Cbrt(rng *rand.Rand) error {
	a := randU128(rng)
	ba := a.AsBigInt()
	s := a.FloorCbrt().AsBigInt()
	cube := func(x *big.Int) *big.Int { return new(big.Int).Mul(x, new(big.Int).Mul(x, x)) }
	next := new(big.Int).Add(s, big.NewInt(1))
	if cube(s).Cmp(ba) > 0 || cube(next).Cmp(ba) <= 0 {
		return errors.Errorf("floorcbrt(%s) = %s out of bounds", ba, s)
	}
	c := a.CeilingCbrt().AsBigInt()
	want := s
	if cube(s).Cmp(ba) != 0 {
		want = next
	}
	if c.Cmp(want) != 0 {
		return mismatch("ceilingcbrt", c, want, ba)
	}
	return nil
}

func checkU128String(rng *rand.Rand) error {
	a := randU128(rng)
	s := a.String()
	if want := a.AsBigInt().String(); s != want {
		return errors.Errorf("string(%s): got %s", want, s)
	}
	back, err := num.ParseU128(s)
	if err != nil {
		return errors.Wrap(err, "parse")
	}
	if !back.Equal(a) {
		return errors.Errorf("parse(%s): got %s", s, back)
	}
	return nil
}

func checkI128QuoRem(rng *rand.Rand) error {
	a, b := randI128(rng), randI128(rng)
	if b.IsZero() {
		return nil
	}
	ba, bb := a.AsBigInt(), b.AsBigInt()
	wq, wr := new(big.Int).QuoRem(ba, bb, new(big.Int))
	q, r := a.QuoRem(b)
	if q.AsBigInt().Cmp(wq) != 0 {
		return mismatch("quo", q, wq, ba, bb)
	}
	if r.AsBigInt().Cmp(wr) != 0 {
		return mismatch("rem", r, wr, ba, bb)
	}
	return nil
}

func checkMontgomery(rng *rand.Rand) error {
	n := randU128(rng).Or(num.U128From64(3)) // odd and > 1
	mg, err := num.NewMontgomery(n)
	if err != nil {
		return errors.Wrap(err, "new montgomery")
	}
	a, b, e := randU128(rng).Rem(n), randU128(rng).Rem(n), randU128(rng)
	ba, bb, bn := a.AsBigInt(), b.AsBigInt(), n.AsBigInt()

	// MulReduce(a, b) * R == a * b (mod n)
	got := mg.MulReduce(a, b).AsBigInt()
	got.Mul(got, bigR).Mod(got, bn)
	want := new(big.Int).Mul(ba, bb)
	want.Mod(want, bn)
	if got.Cmp(want) != 0 {
		return mismatch("mulreduce", got, want, ba, bb, bn)
	}

	be := e.AsBigInt()
	wantPow := new(big.Int).Exp(ba, be, bn)
	if gotPow := mg.ModPow(a, e); gotPow.AsBigInt().Cmp(wantPow) != 0 {
		return mismatch("modpow", gotPow, wantPow, ba, be, bn)
	}
	return nil
}
