package harness

import (
	"context"
	"io"
	"math"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-faster/errors"
	"go.uber.org/zap"
	"golang.org/x/text/message"

	num "github.com/shabbyrobe/go-num128"
	"github.com/shabbyrobe/go-num128/xoshiro"
)

// Scaling factors for the 64-bit scaling scenarios: 15873012/MaxInt64 and
// 15873012/MaxUint64 overflow a 64-bit product for almost every input.
const (
	scaleNumer  = 15873012
	scaleDenomI = math.MaxInt64
	scaleDenomU = math.MaxUint64
)

type BenchConfig struct {
	Iterations int
	Seed       uint64

	// Chained selects the chained splitmix64 seeding of xoshiro.NewChained.
	Chained bool

	// Stats collects min/max/mean of each scenario's outputs.
	Stats bool

	Logger *zap.Logger
}

type BenchResult struct {
	Name     string
	N        int
	Elapsed  time.Duration
	Checksum uint64
	Stats    *Stats
}

// Stats summarises a scenario's outputs. Position is where the mean falls
// between min and max, in percent.
type Stats struct {
	Min, Max, Mean num.I128
	Position       float64
}

type scenario struct {
	name   string
	signed bool
	op     func(i int) uint64
}

// Bench generates cfg.Iterations random inputs and times each scenario over
// them. The inputs are drawn before any timing starts.
func Bench(ctx context.Context, cfg BenchConfig) ([]BenchResult, error) {
	if cfg.Iterations <= 0 {
		return nil, errors.Errorf("iterations must be positive, got %d", cfg.Iterations)
	}
	lg := cfg.Logger
	if lg == nil {
		lg = zap.NewNop()
	}

	var src *xoshiro.Source
	if cfg.Chained {
		src = xoshiro.NewChained(cfg.Seed)
	} else {
		src = xoshiro.New(cfg.Seed)
	}

	n := cfg.Iterations
	ints := make([]int64, n)
	uints := make([]uint64, n)
	wide := make([]num.U128, n)

	var results []BenchResult
	results = append(results, timeScenario(cfg, scenario{name: "PRNG int64", signed: true, op: func(i int) uint64 {
		ints[i] = RangeI64(src.Uint64(), 0, math.MaxInt64)
		return uint64(ints[i])
	}}))
	results = append(results, timeScenario(cfg, scenario{name: "PRNG uint64", op: func(i int) uint64 {
		uints[i] = RangeU64(src.Uint64(), 0, math.MaxUint64-1)
		return uints[i]
	}}))
	for i := range wide {
		wide[i] = num.RandU128(src)
	}

	modulus := num.U128FromRaw(uints[0]|1<<63, uints[n-1]|1)

	scenarios := []scenario{
		{name: "float64 int64 scaling", signed: true, op: func(i int) uint64 {
			return uint64(int64(float64(ints[i]) * float64(scaleNumer) / float64(scaleDenomI)))
		}},
		{name: "float64 uint64 scaling", op: func(i int) uint64 {
			return uint64(float64(uints[i]) * float64(scaleNumer) / float64(scaleDenomU))
		}},
		{name: "MulDivI64 scaling", signed: true, op: func(i int) uint64 {
			return uint64(num.MulDivI64(ints[i], scaleNumer, scaleDenomI))
		}},
		{name: "MulDivU64 scaling", op: func(i int) uint64 {
			return num.MulDivU64(uints[i], scaleNumer, scaleDenomU)
		}},
		{name: "I128 int64 scaling", signed: true, op: func(i int) uint64 {
			return uint64(num.I128From64(ints[i]).Mul64(scaleNumer).Quo64(scaleDenomI).AsInt64())
		}},
		{name: "U128 uint64 scaling", op: func(i int) uint64 {
			return num.U128From64(uints[i]).Mul64(scaleNumer).Quo64(scaleDenomU).AsUint64()
		}},
		{name: "U128 Mul", op: func(i int) uint64 {
			return wide[i].Mul(wide[(i+1)%n]).AsUint64()
		}},
		{name: "U128 QuoRem", op: func(i int) uint64 {
			d := wide[(i+1)%n].Rsh(uint(i % 128))
			if d.IsZero() {
				d = num.OneU128
			}
			q, r := wide[i].QuoRem(d)
			return q.AsUint64() ^ r.AsUint64()
		}},
		{name: "U128 GCD", op: func(i int) uint64 {
			return wide[i].GCD(wide[(i+1)%n]).AsUint64()
		}},
		{name: "U128 ModMul", op: func(i int) uint64 {
			return wide[i].ModMul(wide[(i+1)%n], modulus).AsUint64()
		}},
		{name: "U128 ModPow", op: func(i int) uint64 {
			return wide[i].ModPow(wide[(i+1)%n], modulus).AsUint64()
		}},
		{name: "U128 FloorSqrt", op: func(i int) uint64 {
			return wide[i].FloorSqrt().AsUint64()
		}},
		{name: "U128 String", op: func(i int) uint64 {
			return uint64(len(wide[i].String()))
		}},
		{name: "I128 QuoRem", signed: true, op: func(i int) uint64 {
			a, b := wide[i].AsI128(), wide[(i+1)%n].AsI128().Rsh(uint(i%127))
			if b.IsZero() {
				b = num.MinusOneI128
			}
			q, r := a.QuoRem(b)
			return q.AsU128().AsUint64() ^ r.AsU128().AsUint64()
		}},
	}

	for _, sc := range scenarios {
		if err := ctx.Err(); err != nil {
			return results, errors.Wrap(err, "bench")
		}
		res := timeScenario(cfg, sc)
		if ce := lg.Check(zap.DebugLevel, "Scenario done"); ce != nil {
			ce.Write(
				zap.String("name", res.Name),
				zap.Duration("elapsed", res.Elapsed),
				zap.Uint64("checksum", res.Checksum),
			)
		}
		results = append(results, res)
	}
	return results, nil
}

func timeScenario(cfg BenchConfig, sc scenario) BenchResult {
	n := cfg.Iterations
	var out []uint64
	if cfg.Stats {
		out = make([]uint64, n)
	}

	var sum uint64
	start := time.Now()
	for i := 0; i < n; i++ {
		v := sc.op(i)
		sum += v
		if out != nil {
			out[i] = v
		}
	}
	res := BenchResult{Name: sc.name, N: n, Elapsed: time.Since(start), Checksum: sum}
	if out != nil {
		res.Stats = collectStats(out, sc.signed)
	}
	return res
}

// collectStats sums into an I128 so a million 64-bit values can not
// overflow the total.
func collectStats(vals []uint64, signed bool) *Stats {
	conv := func(v uint64) num.I128 {
		if signed {
			return num.I128From64(int64(v))
		}
		return num.I128FromU64(v)
	}

	st := &Stats{Min: num.MaxI128, Max: num.MinI128}
	var total num.I128
	for _, v := range vals {
		x := conv(v)
		total = total.Add(x)
		st.Min = num.SmallerI128(st.Min, x)
		st.Max = num.LargerI128(st.Max, x)
	}
	st.Mean = total.Quo64(int64(len(vals)))

	span := num.DifferenceI128U(st.Max, st.Min).AsFloat64()
	if span > 0 {
		st.Position = num.DifferenceI128U(st.Mean, st.Min).AsFloat64() / span * 100
	}
	return st
}

// WriteBenchTable prints one line per result, with counts grouped for lang.
func WriteBenchTable(w io.Writer, results []BenchResult, lang string) error {
	p := message.NewPrinter(message.MatchLanguage(lang))
	for _, r := range results {
		var avg time.Duration
		var rate float64
		if r.N > 0 && r.Elapsed > 0 {
			avg = r.Elapsed / time.Duration(r.N)
			rate = float64(r.N) / r.Elapsed.Seconds()
		}
		if _, err := p.Fprintf(w, "%-24s %12d ops %12s %8s/op %14s\n",
			r.Name, r.N, r.Elapsed.Round(time.Microsecond), avg, humanize.SI(rate, "op/s"),
		); err != nil {
			return errors.Wrap(err, "write result")
		}
		if r.Stats != nil {
			if _, err := p.Fprintf(w, "    min %s, max %s, mean %s (%.1f%%)\n",
				r.Stats.Min.String(), r.Stats.Max.String(), r.Stats.Mean.String(), r.Stats.Position,
			); err != nil {
				return errors.Wrap(err, "write stats")
			}
		}
	}
	return nil
}
