// Package algebra: numeric evaluation.
package algebra

import (
	"fmt"
	"math"
)

// Eval numerically evaluates e, reading every symbol's value from values.
//
// Errors:
//
//	- ErrUnboundSymbol  if a symbol has no entry in values.
//	- ErrDivisionByZero if a denominator evaluates to zero.
//	- ErrNegativeSqrt   if a square-root argument evaluates negative.
//	- ErrNonFinite      if the final result is ±Inf or NaN.
func Eval(e Expr, values map[Symbol]float64) (float64, error) {
	v, err := eval(e, values)
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, ErrNonFinite
	}

	return v, nil
}

func eval(e Expr, values map[Symbol]float64) (float64, error) {
	switch n := e.(type) {
	case Const:
		f, _ := n.value.Float64()

		return f, nil
	case Symbol:
		v, ok := values[n]
		if !ok {
			return 0, fmt.Errorf("symbol %q: %w", n.name, ErrUnboundSymbol)
		}

		return v, nil
	case Unary:
		x, err := eval(n.X, values)
		if err != nil {
			return 0, err
		}
		if n.Op == OpNeg {
			return -x, nil
		}
		if x < 0 {
			return 0, fmt.Errorf("sqrt(%v): %w", x, ErrNegativeSqrt)
		}

		return math.Sqrt(x), nil
	case Binary:
		l, err := eval(n.L, values)
		if err != nil {
			return 0, err
		}
		r, err := eval(n.R, values)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case OpAdd:
			return l + r, nil
		case OpSub:
			return l - r, nil
		case OpMul:
			return l * r, nil
		case OpDiv:
			if r == 0 {
				return 0, fmt.Errorf("%v / 0: %w", l, ErrDivisionByZero)
			}

			return l / r, nil
		default: // OpPow
			return math.Pow(l, r), nil
		}
	}

	return 0, fmt.Errorf("algebra: unknown node %T", e)
}
