package harness

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-faster/errors"

	num "github.com/shabbyrobe/go-num128"
)

// Result is the outcome of Eval. Values holds num.U128, num.I128, int or
// float64 depending on the operation.
type Result struct {
	Op     string
	Values []any
}

func (r Result) String() string {
	parts := make([]string, len(r.Values))
	for i, v := range r.Values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " ")
}

type unsignedOp struct {
	arity int
	fn    func(a []num.U128) []any
}

type signedOp struct {
	arity int
	fn    func(a []num.I128) []any
}

var unsignedOps = map[string]unsignedOp{
	"add":    {2, func(a []num.U128) []any { return []any{a[0].Add(a[1])} }},
	"sub":    {2, func(a []num.U128) []any { return []any{a[0].Sub(a[1])} }},
	"mul":    {2, func(a []num.U128) []any { return []any{a[0].Mul(a[1])} }},
	"quo":    {2, func(a []num.U128) []any { return []any{a[0].Quo(a[1])} }},
	"rem":    {2, func(a []num.U128) []any { return []any{a[0].Rem(a[1])} }},
	"quorem": {2, func(a []num.U128) []any { q, r := a[0].QuoRem(a[1]); return []any{q, r} }},
	"and":    {2, func(a []num.U128) []any { return []any{a[0].And(a[1])} }},
	"or":     {2, func(a []num.U128) []any { return []any{a[0].Or(a[1])} }},
	"xor":    {2, func(a []num.U128) []any { return []any{a[0].Xor(a[1])} }},
	"not":    {1, func(a []num.U128) []any { return []any{a[0].Not()} }},
	"neg":    {1, func(a []num.U128) []any { return []any{a[0].Neg()} }},
	"lsh":    {2, func(a []num.U128) []any { return []any{a[0].Lsh(uint(a[1].AsUint64()))} }},
	"rsh":    {2, func(a []num.U128) []any { return []any{a[0].Rsh(uint(a[1].AsUint64()))} }},
	"cmp":    {2, func(a []num.U128) []any { return []any{a[0].Cmp(a[1])} }},
	"min":    {2, func(a []num.U128) []any { return []any{num.SmallerU128(a[0], a[1])} }},
	"max":    {2, func(a []num.U128) []any { return []any{num.LargerU128(a[0], a[1])} }},
	"square": {1, func(a []num.U128) []any { return []any{a[0].Square()} }},
	"cube":   {1, func(a []num.U128) []any { return []any{a[0].Cube()} }},
	"pow":    {2, func(a []num.U128) []any { return []any{a[0].Pow(uint(a[1].AsUint64()))} }},
	"gcd":    {2, func(a []num.U128) []any { return []any{a[0].GCD(a[1])} }},
	"modadd": {3, func(a []num.U128) []any { return []any{a[0].ModAdd(a[1], a[2])} }},
	"modsub": {3, func(a []num.U128) []any { return []any{a[0].ModSub(a[1], a[2])} }},
	"modmul": {3, func(a []num.U128) []any { return []any{a[0].ModMul(a[1], a[2])} }},
	"modpow": {3, func(a []num.U128) []any { return []any{a[0].ModPow(a[1], a[2])} }},
	"sqrt":   {1, func(a []num.U128) []any { return []any{a[0].FloorSqrt()} }},
	"csqrt":  {1, func(a []num.U128) []any { return []any{a[0].CeilingSqrt()} }},
	"cbrt":   {1, func(a []num.U128) []any { return []any{a[0].FloorCbrt()} }},
	"ccbrt":  {1, func(a []num.U128) []any { return []any{a[0].CeilingCbrt()} }},
	"log":    {1, func(a []num.U128) []any { return []any{a[0].Log()} }},
	"log10":  {1, func(a []num.U128) []any { return []any{a[0].Log10()} }},
	"float":  {1, func(a []num.U128) []any { return []any{a[0].AsFloat64()} }},
}

var signedOps = map[string]signedOp{
	"add":    {2, func(a []num.I128) []any { return []any{a[0].Add(a[1])} }},
	"sub":    {2, func(a []num.I128) []any { return []any{a[0].Sub(a[1])} }},
	"mul":    {2, func(a []num.I128) []any { return []any{a[0].Mul(a[1])} }},
	"quo":    {2, func(a []num.I128) []any { return []any{a[0].Quo(a[1])} }},
	"rem":    {2, func(a []num.I128) []any { return []any{a[0].Rem(a[1])} }},
	"quorem": {2, func(a []num.I128) []any { q, r := a[0].QuoRem(a[1]); return []any{q, r} }},
	"and":    {2, func(a []num.I128) []any { return []any{a[0].And(a[1])} }},
	"or":     {2, func(a []num.I128) []any { return []any{a[0].Or(a[1])} }},
	"xor":    {2, func(a []num.I128) []any { return []any{a[0].Xor(a[1])} }},
	"not":    {1, func(a []num.I128) []any { return []any{a[0].Not()} }},
	"neg":    {1, func(a []num.I128) []any { return []any{a[0].Neg()} }},
	"abs":    {1, func(a []num.I128) []any { return []any{a[0].AbsU128()} }},
	"lsh":    {2, func(a []num.I128) []any { return []any{a[0].Lsh(uint(a[1].AsInt64()))} }},
	"rsh":    {2, func(a []num.I128) []any { return []any{a[0].Rsh(uint(a[1].AsInt64()))} }},
	"cmp":    {2, func(a []num.I128) []any { return []any{a[0].Cmp(a[1])} }},
	"min":    {2, func(a []num.I128) []any { return []any{num.SmallerI128(a[0], a[1])} }},
	"max":    {2, func(a []num.I128) []any { return []any{num.LargerI128(a[0], a[1])} }},
	"square": {1, func(a []num.I128) []any { return []any{a[0].Square()} }},
	"cube":   {1, func(a []num.I128) []any { return []any{a[0].Cube()} }},
	"pow":    {2, func(a []num.I128) []any { return []any{a[0].Pow(int(a[1].AsInt64()))} }},
	"gcd":    {2, func(a []num.I128) []any { return []any{a[0].GCD(a[1])} }},
	"modadd": {3, func(a []num.I128) []any { return []any{a[0].ModAdd(a[1], a[2])} }},
	"modsub": {3, func(a []num.I128) []any { return []any{a[0].ModSub(a[1], a[2])} }},
	"modmul": {3, func(a []num.I128) []any { return []any{a[0].ModMul(a[1], a[2])} }},
	"modpow": {3, func(a []num.I128) []any { return []any{a[0].ModPow(a[1], a[2])} }},
	"sqrt":   {1, func(a []num.I128) []any { return []any{a[0].FloorSqrt()} }},
	"csqrt":  {1, func(a []num.I128) []any { return []any{a[0].CeilingSqrt()} }},
	"cbrt":   {1, func(a []num.I128) []any { return []any{a[0].FloorCbrt()} }},
	"ccbrt":  {1, func(a []num.I128) []any { return []any{a[0].CeilingCbrt()} }},
	"log":    {1, func(a []num.I128) []any { return []any{a[0].Log()} }},
	"log10":  {1, func(a []num.I128) []any { return []any{a[0].Log10()} }},
	"float":  {1, func(a []num.I128) []any { return []any{a[0].AsFloat64()} }},
}

// Ops lists the operation names Eval accepts.
func Ops(signed bool) []string {
	var names []string
	if signed {
		for name := range signedOps {
			names = append(names, name)
		}
	} else {
		for name := range unsignedOps {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Eval parses args as base-10 operands and applies op. Panics raised by the
// arithmetic, such as division by zero, come back as errors wrapping
// num.ErrDivideByZero or num.ErrDomain.
func Eval(op string, signed bool, args []string) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			perr, ok := r.(error)
			if !ok {
				panic(r)
			}
			err = errors.Wrap(perr, op)
		}
	}()

	res.Op = op
	if signed {
		sop, ok := signedOps[op]
		if !ok {
			return res, errors.Errorf("unknown signed op %q", op)
		}
		if len(args) != sop.arity {
			return res, errors.Errorf("%s takes %d operands, got %d", op, sop.arity, len(args))
		}
		vals := make([]num.I128, len(args))
		for i, s := range args {
			if vals[i], err = num.ParseI128(s); err != nil {
				return res, errors.Wrapf(err, "operand %d", i+1)
			}
		}
		res.Values = sop.fn(vals)
		return res, nil
	}

	uop, ok := unsignedOps[op]
	if !ok {
		return res, errors.Errorf("unknown op %q", op)
	}
	if len(args) != uop.arity {
		return res, errors.Errorf("%s takes %d operands, got %d", op, uop.arity, len(args))
	}
	vals := make([]num.U128, len(args))
	for i, s := range args {
		if vals[i], err = num.ParseU128(s); err != nil {
			return res, errors.Wrapf(err, "operand %d", i+1)
		}
	}
	res.Values = uop.fn(vals)
	return res, nil
}
