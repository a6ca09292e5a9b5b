// Package equation: substitution-then-isolation solving.
package equation

import (
	"github.com/katalvlaran/eqlath/algebra"
)

// Solve substitutes every known value into the equation's residual and
// classifies the result; when exactly one symbol remains unknown it
// attempts to isolate it. See the package documentation for the outcome
// taxonomy and the branch-selection rule.
func Solve(eq *Equation, known map[algebra.Symbol]algebra.Expr) Outcome {
	resid := algebra.SubstituteAll(eq.residual, known)
	unknowns := unknownsOf(resid, known)

	switch len(unknowns) {
	case 0:
		if algebra.IsZero(resid) {
			return Outcome{Kind: Vacuous}
		}

		return Outcome{Kind: Contradiction}
	case 1:
		s := unknowns[0]
		value, ok := isolate(resid, algebra.Num(0), s)
		if !ok || !algebra.IsZero(algebra.Substitute(resid, s, value)) {
			// peeling can cross a branch cut; only a candidate whose
			// back-substitution makes the residual vanish is a root
			return Outcome{Kind: NoClosedForm, For: s}
		}

		return Outcome{Kind: Resolved, For: s, Value: value}
	default:
		return Outcome{Kind: NotReady}
	}
}

// SolveFor is Solve restricted to a chosen symbol: the outcome is Resolved
// or NoClosedForm only when s is exactly the one remaining unknown;
// any other single unknown reports NotReady.
func SolveFor(eq *Equation, s algebra.Symbol, known map[algebra.Symbol]algebra.Expr) Outcome {
	out := Solve(eq, known)
	if (out.Kind == Resolved || out.Kind == NoClosedForm) && out.For != s {
		return Outcome{Kind: NotReady}
	}

	return out
}

// Isolate rewrites the equation (after substituting known values) into
// "s = expression", treating every other unknown as an opaque parameter.
// It reports failure when s does not occur, occurs more than once along a
// node, or sits behind an operation with no elementary inverse. The
// propagation engine uses this for elimination between pending equations.
func Isolate(eq *Equation, s algebra.Symbol, known map[algebra.Symbol]algebra.Expr) (algebra.Expr, bool) {
	resid := algebra.SubstituteAll(eq.residual, known)

	value, ok := isolate(resid, algebra.Num(0), s)
	if !ok || !algebra.IsZero(algebra.Substitute(resid, s, value)) {
		return nil, false
	}

	return value, true
}

// isolate solves e = target for s by peeling inverse operations off e.
// Every rewrite goes through the simplifying constructors, so the returned
// value is canonical.
func isolate(e, target algebra.Expr, s algebra.Symbol) (algebra.Expr, bool) {
	switch n := e.(type) {
	case algebra.Symbol:
		if n == s {
			return target, true
		}

		return nil, false
	case algebra.Unary:
		if n.Op == algebra.OpNeg {
			return isolate(n.X, algebra.Neg(target), s)
		}

		// sqrt(x) = t  →  x = t², only for t ≥ 0
		if c, ok := algebra.IsConst(target); ok && c.Sign() < 0 {
			return nil, false
		}

		return isolate(n.X, algebra.Pow(target, algebra.Num(2)), s)
	case algebra.Binary:
		lHas := algebra.ContainsSymbol(n.L, s)
		rHas := algebra.ContainsSymbol(n.R, s)
		if lHas == rHas {
			// absent, or present on both sides: no single path to peel
			return nil, false
		}

		switch n.Op {
		case algebra.OpAdd:
			if lHas {
				return isolate(n.L, algebra.Sub(target, n.R), s)
			}

			return isolate(n.R, algebra.Sub(target, n.L), s)
		case algebra.OpSub:
			if lHas {
				return isolate(n.L, algebra.Add(target, n.R), s)
			}

			return isolate(n.R, algebra.Sub(n.L, target), s)
		case algebra.OpMul:
			// the co-factor is non-zero: literal zero factors fold away
			// during simplification
			if lHas {
				return isolate(n.L, algebra.Div(target, n.R), s)
			}

			return isolate(n.R, algebra.Div(target, n.L), s)
		case algebra.OpDiv:
			if lHas {
				return isolate(n.L, algebra.Mul(target, n.R), s)
			}
			if algebra.IsZero(target) {
				// a/x = 0 has no finite root
				return nil, false
			}

			// a/x = t  →  x = a/t
			return isolate(n.R, algebra.Div(n.L, target), s)
		default: // OpPow
			return isolatePow(n, target, s, lHas)
		}
	}

	return nil, false
}

// isolatePow inverts base^k = target for constant integer exponents.
// Even powers take the principal non-negative root; odd powers of three or
// more and symbolic exponents have no elementary inverse here.
func isolatePow(n algebra.Binary, target algebra.Expr, s algebra.Symbol, baseHas bool) (algebra.Expr, bool) {
	if !baseHas {
		// unknown in the exponent: needs logarithms
		return nil, false
	}
	k, ok := algebra.IsConst(n.R)
	if !ok || !k.IsInt() || !k.Num().IsInt64() {
		return nil, false
	}

	kk := k.Num().Int64()
	if kk%2 == 0 {
		// even powers cannot reach negative values
		if c, isConst := algebra.IsConst(target); isConst && c.Sign() < 0 {
			return nil, false
		}
	}
	switch {
	case kk == 2:
		return isolate(n.L, algebra.Sqrt(target), s)
	case kk > 2 && kk%2 == 0:
		// x^(2m) = t  →  x^m = sqrt(t)
		return isolate(algebra.Pow(n.L, algebra.Num(kk/2)), algebra.Sqrt(target), s)
	case kk < 0:
		// x^(-m) = t  →  x^m = 1/t
		return isolate(algebra.Pow(n.L, algebra.Num(-kk)), algebra.Div(algebra.Num(1), target), s)
	default:
		return nil, false
	}
}

// Unknowns lists the symbols of the equation that remain unknown once the
// known values are substituted, sorted by name.
func (e *Equation) Unknowns(known map[algebra.Symbol]algebra.Expr) []algebra.Symbol {
	return unknownsOf(algebra.SubstituteAll(e.residual, known), known)
}

// unknownsOf lists the free symbols of e that are not known, sorted.
func unknownsOf(e algebra.Expr, known map[algebra.Symbol]algebra.Expr) []algebra.Symbol {
	var out []algebra.Symbol
	for _, s := range algebra.FreeSymbols(e) {
		if _, ok := known[s]; !ok {
			out = append(out, s)
		}
	}

	return out
}
