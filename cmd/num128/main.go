// Command num128 benchmarks, verifies and evaluates 128-bit integer
// operations.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-faster/errors"
	flags "github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/shabbyrobe/go-num128/internal/harness"
)

// dumper shows the limbs of U128 and I128 values rather than their decimal
// strings.
var dumper = spew.ConfigState{Indent: " ", DisableMethods: true}

// app holds the global options and what every command shares.
type app struct {
	Verbose bool `short:"v" long:"verbose" description:"log debug output"`

	ctx context.Context
	out io.Writer
}

func (a *app) logger() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableCaller = true
	if !a.Verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}

type benchCommand struct {
	Iterations int    `short:"n" long:"iterations" default:"1000000" description:"random inputs per scenario"`
	Seed       uint64 `short:"s" long:"seed" default:"1" description:"generator seed"`
	Chained    bool   `long:"chained" description:"seed the generator with chained splitmix64 outputs"`
	Stats      bool   `long:"stats" description:"report min, max and mean of each scenario's outputs"`
	Lang       string `long:"lang" default:"en" description:"language tag for number formatting"`

	app *app
}

func (cmd *benchCommand) Execute(args []string) error {
	lg, err := cmd.app.logger()
	if err != nil {
		return errors.Wrap(err, "logger")
	}
	defer func() { _ = lg.Sync() }()

	start := time.Now()
	results, err := harness.Bench(cmd.app.ctx, harness.BenchConfig{
		Iterations: cmd.Iterations,
		Seed:       cmd.Seed,
		Chained:    cmd.Chained,
		Stats:      cmd.Stats,
		Logger:     lg,
	})
	if err != nil {
		return errors.Wrap(err, "bench")
	}
	lg.Info("Bench done",
		zap.Int("scenarios", len(results)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return harness.WriteBenchTable(cmd.app.out, results, cmd.Lang)
}

type verifyCommand struct {
	Workers    int      `short:"w" long:"workers" default:"4" description:"concurrent workers"`
	Iterations int      `short:"n" long:"iterations" default:"100000" description:"rounds of checks per worker"`
	Seed       uint64   `short:"s" long:"seed" default:"1" description:"base generator seed; worker i uses seed+i"`
	Checks     []string `short:"c" long:"check" description:"run only the named check; may be repeated"`
	List       bool     `long:"list" description:"list the available checks and exit"`

	app *app
}

func (cmd *verifyCommand) Execute(args []string) error {
	if cmd.List {
		for _, c := range harness.Checks() {
			fmt.Fprintln(cmd.app.out, c.Name)
		}
		return nil
	}

	lg, err := cmd.app.logger()
	if err != nil {
		return errors.Wrap(err, "logger")
	}
	defer func() { _ = lg.Sync() }()

	start := time.Now()
	if err := harness.Verify(cmd.app.ctx, harness.VerifyConfig{
		Workers:    cmd.Workers,
		Iterations: cmd.Iterations,
		Seed:       cmd.Seed,
		Checks:     cmd.Checks,
		Logger:     lg,
	}); err != nil {
		return errors.Wrap(err, "verify")
	}
	lg.Info("Verify passed",
		zap.Int("workers", cmd.Workers),
		zap.Int("iterations", cmd.Iterations),
		zap.Duration("elapsed", time.Since(start)),
	)
	fmt.Fprintln(cmd.app.out, "ok")
	return nil
}

type calcCommand struct {
	Signed bool `short:"i" long:"signed" description:"treat operands as I128"`
	Dump   bool `short:"d" long:"dump" description:"dump the raw result values"`

	app *app
}

func (cmd *calcCommand) Execute(args []string) error {
	if len(args) == 0 {
		fmt.Fprintf(cmd.app.out, "ops: %s\n", strings.Join(harness.Ops(cmd.Signed), " "))
		return nil
	}
	res, err := harness.Eval(args[0], cmd.Signed, args[1:])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.app.out, res.String())
	if cmd.Dump {
		dumper.Fdump(cmd.app.out, res.Values...)
	}
	return nil
}

func run(ctx context.Context, args []string, out io.Writer) error {
	a := &app{ctx: ctx, out: out}
	parser := flags.NewParser(a, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "num128"

	for _, c := range []struct {
		name, short, long string
		cmd               any
	}{
		{"bench", "Time 64-bit scaling and 128-bit operations", "Times float64 scaling against MulDivU64 and the 128-bit types over random inputs.", &benchCommand{app: a}},
		{"verify", "Check operations against math/big", "Runs randomised differential checks on concurrent workers and reports every mismatch.", &verifyCommand{app: a}},
		{"calc", "Evaluate a single operation", "Evaluates OP over base-10 operands, e.g. 'calc modpow 4 13 497'.", &calcCommand{app: a}},
	} {
		if _, err := parser.AddCommand(c.name, c.short, c.long, c.cmd); err != nil {
			return errors.Wrapf(err, "add command %s", c.name)
		}
	}

	_, err := parser.ParseArgs(args)
	return err
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, ferr.Message)
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(2)
	}
}
