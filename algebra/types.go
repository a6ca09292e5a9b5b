// Package algebra: symbol identities and sentinel errors.
package algebra

import (
	"errors"
	"sort"
)

// Sentinel errors returned by numeric evaluation.
var (
	// ErrUnboundSymbol indicates that Eval met a symbol with no entry in
	// the supplied value map.
	ErrUnboundSymbol = errors.New("algebra: unbound symbol in evaluation")

	// ErrDivisionByZero indicates that Eval divided by a zero denominator.
	ErrDivisionByZero = errors.New("algebra: division by zero")

	// ErrNegativeSqrt indicates that Eval took the square root of a
	// negative value. Symbolic square roots of negative constants are
	// kept unevaluated; they only fail once numbers are demanded.
	ErrNegativeSqrt = errors.New("algebra: square root of negative value")

	// ErrNonFinite indicates that Eval produced ±Inf or NaN.
	ErrNonFinite = errors.New("algebra: non-finite evaluation result")
)

// Symbol is an interned variable identity. Symbols with equal names are
// equal (==), hashable and usable as map keys. A Symbol is itself an Expr,
// so it can appear directly as a leaf in expression trees.
type Symbol struct {
	name string
}

// Sym returns the canonical Symbol for the given name.
// Equal names always return equal symbols.
func Sym(name string) Symbol {
	return Symbol{name: name}
}

// Symbols returns one Symbol per name, in argument order.
// It is a thin convenience factory for declaring several variables at once:
//
//	vars := algebra.Symbols("radius", "area")
func Symbols(names ...string) []Symbol {
	out := make([]Symbol, len(names))
	for i, n := range names {
		out[i] = Sym(n)
	}

	return out
}

// Name returns the symbol's name.
func (s Symbol) Name() string { return s.name }

// String implements fmt.Stringer; the textual form of a symbol is its name.
func (s Symbol) String() string { return s.name }

func (Symbol) isExpr() {}

// sortSymbols orders symbols by name, in place, and returns the slice.
func sortSymbols(ss []Symbol) []Symbol {
	sort.Slice(ss, func(i, j int) bool { return ss[i].name < ss[j].name })

	return ss
}
