package main

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/shabbyrobe/hypernum"
)

type binaryOp func(a, b hypernum.Number) hypernum.Number
type unaryOp func(a hypernum.Number) hypernum.Number

var binaryOps = map[string]binaryOp{
	"+":    hypernum.Number.Add,
	"-":    hypernum.Number.Sub,
	"*":    hypernum.Number.Mul,
	"/":    hypernum.Number.Div,
	"^":    hypernum.Number.Pow,
	"%":    hypernum.Number.Mod,
	"root": hypernum.Number.Root,
	"log":  hypernum.Number.Log,
	"tet":  hypernum.Number.Tet,
	"pent": hypernum.Number.Pent,
	"hext": hypernum.Number.Hext,
	"slog": hypernum.Number.Slog,
	"min":  hypernum.Min,
	"max":  hypernum.Max,
	"cmp":  func(a, b hypernum.Number) hypernum.Number { return hypernum.FromInt(a.Cmp(b)) },
}

var unaryOps = map[string]unaryOp{
	"neg":      hypernum.Number.Neg,
	"abs":      hypernum.Number.Abs,
	"recip":    hypernum.Number.Reciprocal,
	"ln":       hypernum.Number.Ln,
	"log10":    hypernum.Number.Log10,
	"floor":    hypernum.Number.Floor,
	"ceil":     hypernum.Number.Ceil,
	"round":    hypernum.Number.Round,
	"lambertw": hypernum.Number.LambertW,
}

func binaryOpNames() []string {
	out := make([]string, 0, len(binaryOps))
	for k := range binaryOps {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func unaryOpNames() []string {
	out := make([]string, 0, len(unaryOps))
	for k := range unaryOps {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// eval runs a reverse Polish expression. Anything that is not an operator
// is parsed with FromScientific. The expression must leave exactly one
// value on the stack.
func eval(tokens []string, log *zap.Logger) (hypernum.Number, error) {
	var stack []hypernum.Number
	pop := func(tok string) (hypernum.Number, error) {
		if len(stack) == 0 {
			return hypernum.Absent, fmt.Errorf("hypernum: %q: stack underflow", tok)
		}
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return v, nil
	}

	for _, tok := range tokens {
		if op, ok := binaryOps[tok]; ok {
			b, err := pop(tok)
			if err != nil {
				return hypernum.Absent, err
			}
			a, err := pop(tok)
			if err != nil {
				return hypernum.Absent, err
			}
			r := op(a, b)
			log.Debug("eval", zap.String("op", tok), zap.Stringer("a", a), zap.Stringer("b", b), zap.Stringer("result", r))
			stack = append(stack, r)
			continue
		}
		if op, ok := unaryOps[tok]; ok {
			a, err := pop(tok)
			if err != nil {
				return hypernum.Absent, err
			}
			r := op(a)
			log.Debug("eval", zap.String("op", tok), zap.Stringer("a", a), zap.Stringer("result", r))
			stack = append(stack, r)
			continue
		}
		n, err := hypernum.FromScientific(tok)
		if err != nil {
			return hypernum.Absent, err
		}
		stack = append(stack, n)
	}

	if len(stack) != 1 {
		return hypernum.Absent, fmt.Errorf("hypernum: expression left %d values on the stack", len(stack))
	}
	return stack[0], nil
}
