// Package algebra: expression tree variants and constructors.
package algebra

import (
	"fmt"
	"math/big"
)

// Expr is an immutable algebraic expression tree over symbols and exact
// rational constants. The variant set is closed: Const, Symbol, Unary and
// Binary are the only node kinds.
type Expr interface {
	fmt.Stringer

	// isExpr closes the variant set to this package.
	isExpr()
}

// Const is an exact rational constant leaf.
type Const struct {
	value *big.Rat
}

// Value returns a copy of the constant's exact rational value.
func (c Const) Value() *big.Rat { return new(big.Rat).Set(c.value) }

// String renders the constant as an integer or a p/q fraction.
func (c Const) String() string { return c.value.RatString() }

func (Const) isExpr() {}

// UnaryOp enumerates unary operator kinds.
type UnaryOp uint8

const (
	// OpNeg is arithmetic negation.
	OpNeg UnaryOp = iota

	// OpSqrt is the principal (non-negative) square root.
	OpSqrt
)

// Unary is a unary operator node.
type Unary struct {
	Op UnaryOp
	X  Expr
}

func (Unary) isExpr() {}

// String renders negation as (-x) and square root as sqrt(x).
func (u Unary) String() string {
	if u.Op == OpSqrt {
		return "sqrt(" + u.X.String() + ")"
	}

	return "(-" + u.X.String() + ")"
}

// BinaryOp enumerates binary operator kinds.
type BinaryOp uint8

const (
	// OpAdd is addition.
	OpAdd BinaryOp = iota

	// OpSub is subtraction.
	OpSub

	// OpMul is multiplication.
	OpMul

	// OpDiv is division.
	OpDiv

	// OpPow is exponentiation.
	OpPow
)

// opGlyph maps binary operators to their textual glyphs.
var opGlyph = [...]string{OpAdd: "+", OpSub: "-", OpMul: "*", OpDiv: "/", OpPow: "^"}

// Binary is a binary operator node.
type Binary struct {
	Op   BinaryOp
	L, R Expr
}

func (Binary) isExpr() {}

// String renders the node fully parenthesized: (L op R). Full
// parenthesization keeps the textual form unambiguous, which canonical
// ordering and deduplication depend on.
func (b Binary) String() string {
	return "(" + b.L.String() + " " + opGlyph[b.Op] + " " + b.R.String() + ")"
}

// Num returns the integer constant n as an expression.
func Num(n int64) Expr {
	return Const{value: new(big.Rat).SetInt64(n)}
}

// Rat returns the exact rational constant p/q as an expression.
// A zero denominator is a programmer error and panics.
func Rat(p, q int64) Expr {
	if q == 0 {
		panic("algebra: Rat with zero denominator")
	}

	return Const{value: big.NewRat(p, q)}
}

// Float returns the exact rational value of the float64 f as an expression.
// Every finite float64 has an exact rational representation, so no
// precision is lost; ±Inf and NaN are programmer errors and panic.
func Float(f float64) Expr {
	v := new(big.Rat).SetFloat64(f)
	if v == nil {
		panic("algebra: Float with non-finite value")
	}

	return Const{value: v}
}

// Add returns the simplified sum l + r.
func Add(l, r Expr) Expr { return Simplify(Binary{Op: OpAdd, L: l, R: r}) }

// Sub returns the simplified difference l - r.
func Sub(l, r Expr) Expr { return Simplify(Binary{Op: OpSub, L: l, R: r}) }

// Mul returns the simplified product l * r.
func Mul(l, r Expr) Expr { return Simplify(Binary{Op: OpMul, L: l, R: r}) }

// Div returns the simplified quotient l / r.
func Div(l, r Expr) Expr { return Simplify(Binary{Op: OpDiv, L: l, R: r}) }

// Pow returns the simplified power l ^ r.
func Pow(l, r Expr) Expr { return Simplify(Binary{Op: OpPow, L: l, R: r}) }

// Neg returns the simplified negation -x.
func Neg(x Expr) Expr { return Simplify(Unary{Op: OpNeg, X: x}) }

// Sqrt returns the simplified principal square root of x.
func Sqrt(x Expr) Expr { return Simplify(Unary{Op: OpSqrt, X: x}) }

// IsConst reports whether e is a constant, returning its value if so.
func IsConst(e Expr) (*big.Rat, bool) {
	c, ok := e.(Const)
	if !ok {
		return nil, false
	}

	return c.Value(), true
}

// IsZero reports whether e is the constant zero.
func IsZero(e Expr) bool {
	c, ok := e.(Const)

	return ok && c.value.Sign() == 0
}
