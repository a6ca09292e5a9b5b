// Package algebra provides the symbolic foundation of eqlath: interned
// variable identities (Symbol) and immutable algebraic expression trees
// (Expr) with substitution, simplification and exact numeric evaluation.
//
// Overview:
//
//   - A Symbol is a variable identity. Equal names are equal symbols, so
//     symbols are safe map keys and safe to compare with ==.
//   - An Expr is an immutable tree of constants, symbols, unary operators
//     (negation, square root) and binary operators (+, -, *, /, ^).
//     Constants are exact rationals (math/big.Rat); no floating-point
//     drift ever enters a symbolic result.
//   - Every constructor (Add, Sub, Mul, Div, Pow, Neg, Sqrt) returns a new
//     simplified tree and never mutates its operands.
//
// Canonical form:
//
//	Simplify rewrites a tree into a canonical shape so that structurally
//	different spellings of the same value compare equal:
//	  – constants are folded over exact rationals;
//	  – sums are flattened, like terms collected, operands sorted
//	    (constant first, then terms ordered by their textual form);
//	  – products are flattened, like factors collected into powers,
//	    constant coefficients extracted, operands sorted;
//	  – trivial identities are applied (x+0, x·1, x·0, x−x, x/x, x^0,
//	    x^1, double negation, square roots of perfect squares).
//	Simplification is contraction-only: it never distributes products
//	over sums, so it always terminates and is idempotent.
//
// Equality:
//
//	Equal(a, b) reports whether Simplify(a − b) is the zero constant.
//	This is the equality used to detect vanished residuals in package
//	equation and package system.
//
// Determinism:
//
//	All orderings are total and derived from symbol names and canonical
//	textual forms. Identical input trees always produce byte-identical
//	String() output across runs and process restarts.
//
// Errors (sentinel):
//
//	– ErrUnboundSymbol  if Eval meets a symbol absent from the value map.
//	– ErrDivisionByZero if Eval divides by zero.
//	– ErrNegativeSqrt   if Eval takes the square root of a negative value.
//	– ErrNonFinite      if Eval produces ±Inf or NaN.
//
// Complexity: all operations are linear-to-quadratic in tree size with a
// log factor from operand sorting. Trees in the intended domain hold a
// handful of nodes, so none of this matters in practice.
package algebra
