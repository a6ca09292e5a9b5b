// Package algebra: canonical simplification.
//
// The simplifier rewrites a tree into a canonical additive-of-multiplicative
// form: a sum is a constant plus coefficient·base terms sorted by the base's
// textual form; a product is a rational coefficient times base^exponent
// factors sorted the same way. Exponents are exact rationals restricted to
// halves (integers plus square roots); anything outside that shape stays as
// an opaque factor. Rewriting is contraction-only (products are never
// distributed over sums), so the pass terminates and is idempotent.
package algebra

import (
	"math/big"
	"sort"
)

var (
	ratOne      = big.NewRat(1, 1)
	ratMinusOne = big.NewRat(-1, 1)
	ratHalf     = big.NewRat(1, 2)
	bigOne      = big.NewInt(1)
	bigTwo      = big.NewInt(2)
)

// Simplify returns the canonical form of e. The input is never mutated.
// Simplify is idempotent: Simplify(Simplify(e)) is structurally identical
// to Simplify(e).
func Simplify(e Expr) Expr { return canon(e) }

func canon(e Expr) Expr {
	switch n := e.(type) {
	case Const:
		return Const{value: new(big.Rat).Set(n.value)}
	case Symbol:
		return n
	case Unary:
		if n.Op == OpSqrt {
			return rebuildMul(sqrtForm(canon(n.X)))
		}

		// negation distributes over the additive form
		return rebuildAdd(addCanon(n))
	case Binary:
		if n.Op == OpAdd || n.Op == OpSub {
			return rebuildAdd(addCanon(n))
		}

		return rebuildMul(mulCanon(n))
	}

	return e
}

// factor is one base^exponent part of a canonical product.
// The exponent is non-zero with denominator 1 or 2.
type factor struct {
	base Expr
	key  string // base.String(), cached for total ordering
	exp  *big.Rat
}

// mulForm is a canonical product: coef · ∏ base^exp, factors sorted by key.
type mulForm struct {
	coef    *big.Rat
	factors []factor
}

func constForm(v *big.Rat) mulForm {
	return mulForm{coef: new(big.Rat).Set(v)}
}

// opaque wraps an irreducible canonical expression as a single factor.
func opaque(e Expr) mulForm {
	return mulForm{
		coef:    new(big.Rat).Set(ratOne),
		factors: []factor{{base: e, key: e.String(), exp: new(big.Rat).Set(ratOne)}},
	}
}

// mulCanon flattens e into canonical product form.
func mulCanon(e Expr) mulForm {
	switch n := e.(type) {
	case Const:
		return constForm(n.value)
	case Symbol:
		return mulForm{
			coef:    new(big.Rat).Set(ratOne),
			factors: []factor{{base: n, key: n.name, exp: new(big.Rat).Set(ratOne)}},
		}
	case Unary:
		if n.Op == OpNeg {
			m := mulCanon(n.X)
			m.coef = new(big.Rat).Neg(m.coef)

			return m
		}

		return sqrtForm(canon(n.X))
	case Binary:
		switch n.Op {
		case OpMul:
			return mulMerge(mulCanon(n.L), mulCanon(n.R))
		case OpDiv:
			inv, ok := invertForm(mulCanon(n.R))
			if !ok {
				// division by a literal zero cannot fold; keep the node opaque
				return opaque(Binary{Op: OpDiv, L: canon(n.L), R: canon(n.R)})
			}

			return mulMerge(mulCanon(n.L), inv)
		case OpPow:
			return powForm(canon(n.L), canon(n.R))
		default: // OpAdd, OpSub
			return termSplit(rebuildAdd(addCanon(n)))
		}
	}

	return opaque(e)
}

// termSplit converts an already-canonical expression into product form.
// A sum at the top stays opaque (products are never distributed).
func termSplit(a Expr) mulForm {
	if b, ok := a.(Binary); ok && (b.Op == OpAdd || b.Op == OpSub) {
		return opaque(a)
	}

	return mulCanon(a)
}

// sqrtForm returns the canonical product form of sqrt(x) for canonical x.
func sqrtForm(x Expr) mulForm {
	if c, ok := x.(Const); ok {
		if root, ok2 := ratSqrt(c.value); ok2 {
			return constForm(root)
		}

		return opaque(Unary{Op: OpSqrt, X: x})
	}
	if r, ok := raiseForm(mulCanon(x), ratHalf); ok {
		return r
	}

	return opaque(Unary{Op: OpSqrt, X: x})
}

// powForm returns the canonical product form of base^exp for canonical
// operands.
func powForm(base, exp Expr) mulForm {
	ec, ok := exp.(Const)
	if !ok {
		// symbolic exponent: no elementary rewrite applies
		return opaque(Binary{Op: OpPow, L: base, R: exp})
	}
	if ec.value.Sign() == 0 {
		return constForm(ratOne) // x^0 = 1
	}
	if ec.value.Cmp(ratOne) == 0 {
		return mulCanon(base)
	}
	if !ec.value.IsInt() && ec.value.Denom().Cmp(bigTwo) != 0 {
		return opaque(Binary{Op: OpPow, L: base, R: exp})
	}
	// (sqrt u)^k folds to u^(k/2); roots of negative constants stay put
	if root, isRoot := base.(Unary); isRoot && root.Op == OpSqrt {
		if c, isConst := root.X.(Const); !isConst || c.value.Sign() >= 0 {
			half := new(big.Rat).Mul(ec.value, ratHalf)
			if half.IsInt() || half.Denom().Cmp(bigTwo) == 0 {
				return powForm(root.X, Const{value: half})
			}
		}
	}
	if r, ok := raiseForm(mulCanon(base), ec.value); ok {
		return r
	}

	return opaque(Binary{Op: OpPow, L: base, R: exp})
}

// raiseForm raises a product form to the rational power r, failing when the
// result would leave the supported exponent shape (halves) or require an
// irrational coefficient.
func raiseForm(m mulForm, r *big.Rat) (mulForm, bool) {
	coef, ok := ratPow(m.coef, r)
	if !ok {
		return mulForm{}, false
	}
	out := mulForm{coef: coef}
	for _, f := range m.factors {
		e := new(big.Rat).Mul(f.exp, r)
		if e.Sign() == 0 {
			continue
		}
		if !e.IsInt() && e.Denom().Cmp(bigTwo) != 0 {
			return mulForm{}, false
		}
		out.factors = append(out.factors, factor{base: f.base, key: f.key, exp: e})
	}

	return out, true
}

// invertForm returns 1/m; it fails only for the literal zero product.
func invertForm(m mulForm) (mulForm, bool) {
	if m.coef.Sign() == 0 {
		return mulForm{}, false
	}
	out := mulForm{coef: new(big.Rat).Inv(m.coef)}
	for _, f := range m.factors {
		out.factors = append(out.factors, factor{base: f.base, key: f.key, exp: new(big.Rat).Neg(f.exp)})
	}

	return out, true
}

// mulMerge multiplies two product forms, combining like factors.
func mulMerge(a, b mulForm) mulForm {
	coef := new(big.Rat).Mul(a.coef, b.coef)
	if coef.Sign() == 0 {
		return mulForm{coef: coef} // x·0 = 0
	}
	merged := make(map[string]factor, len(a.factors)+len(b.factors))
	keys := make([]string, 0, len(a.factors)+len(b.factors))
	for _, f := range append(append([]factor(nil), a.factors...), b.factors...) {
		if have, ok := merged[f.key]; ok {
			have.exp = new(big.Rat).Add(have.exp, f.exp)
			merged[f.key] = have

			continue
		}
		merged[f.key] = factor{base: f.base, key: f.key, exp: new(big.Rat).Set(f.exp)}
		keys = append(keys, f.key)
	}
	sort.Strings(keys)
	out := mulForm{coef: coef}
	for _, k := range keys {
		if f := merged[k]; f.exp.Sign() != 0 { // x·(1/x) = 1
			out.factors = append(out.factors, f)
		}
	}

	return out
}

// rebuildMul renders a product form back into a canonical expression tree:
// an optional leading constant, sorted numerator factors, and a denominator
// for negative exponents.
func rebuildMul(m mulForm) Expr {
	if m.coef.Sign() == 0 || len(m.factors) == 0 {
		return Const{value: new(big.Rat).Set(m.coef)}
	}

	var num, den []factor
	for _, f := range m.factors {
		if f.exp.Sign() > 0 {
			num = append(num, f)
		} else {
			den = append(den, factor{base: f.base, key: f.key, exp: new(big.Rat).Neg(f.exp)})
		}
	}

	numExpr := chainFactors(num)
	denExpr := chainFactors(den)

	coef := new(big.Rat).Set(m.coef)
	switch {
	case numExpr == nil:
		numExpr = Const{value: coef}
	case coef.Cmp(ratOne) == 0:
		// coefficient one is implicit
	case coef.Cmp(ratMinusOne) == 0:
		numExpr = Unary{Op: OpNeg, X: numExpr}
	default:
		numExpr = Binary{Op: OpMul, L: Const{value: coef}, R: numExpr}
	}
	if denExpr == nil {
		return numExpr
	}

	return Binary{Op: OpDiv, L: numExpr, R: denExpr}
}

// chainFactors builds a left-associated product over factors already sorted
// by key; nil for an empty list.
func chainFactors(fs []factor) Expr {
	var acc Expr
	for _, f := range fs {
		p := powExpr(f)
		if acc == nil {
			acc = p
		} else {
			acc = Binary{Op: OpMul, L: acc, R: p}
		}
	}

	return acc
}

// powExpr renders base^exp for a positive exponent with denominator 1 or 2.
func powExpr(f factor) Expr {
	if f.exp.IsInt() {
		if f.exp.Cmp(ratOne) == 0 {
			return f.base
		}

		return Binary{Op: OpPow, L: f.base, R: Const{value: new(big.Rat).Set(f.exp)}}
	}

	// exp = p/2 with p odd: base^((p-1)/2) · sqrt(base)
	whole := new(big.Int).Rsh(f.exp.Num(), 1)
	root := Unary{Op: OpSqrt, X: f.base}
	if whole.Sign() == 0 {
		return root
	}
	var w Expr = f.base
	if whole.Cmp(bigOne) != 0 {
		w = Binary{Op: OpPow, L: f.base, R: Const{value: new(big.Rat).SetInt(whole)}}
	}

	return Binary{Op: OpMul, L: w, R: root}
}

// addTerm is one coefficient·base term of a canonical sum; base carries no
// constant coefficient of its own.
type addTerm struct {
	coef *big.Rat
	base Expr
	key  string
}

// addForm is a canonical sum: constant + Σ coef·base, terms sorted by key.
type addForm struct {
	constant *big.Rat
	terms    []addTerm
}

// addCanon flattens e into canonical sum form.
func addCanon(e Expr) addForm {
	switch n := e.(type) {
	case Binary:
		switch n.Op {
		case OpAdd:
			return addMerge(addCanon(n.L), addCanon(n.R))
		case OpSub:
			return addMerge(addCanon(n.L), addNegate(addCanon(n.R)))
		}
	case Unary:
		if n.Op == OpNeg {
			return addNegate(addCanon(n.X))
		}
	}

	m := mulCanon(e)
	if len(m.factors) == 0 || m.coef.Sign() == 0 {
		return addForm{constant: m.coef}
	}
	base := rebuildMul(mulForm{coef: new(big.Rat).Set(ratOne), factors: m.factors})

	return addForm{
		constant: new(big.Rat),
		terms:    []addTerm{{coef: m.coef, base: base, key: base.String()}},
	}
}

// addMerge adds two sum forms, collecting like terms.
func addMerge(a, b addForm) addForm {
	out := addForm{constant: new(big.Rat).Add(a.constant, b.constant)}
	merged := make(map[string]addTerm, len(a.terms)+len(b.terms))
	keys := make([]string, 0, len(a.terms)+len(b.terms))
	for _, t := range append(append([]addTerm(nil), a.terms...), b.terms...) {
		if have, ok := merged[t.key]; ok {
			have.coef = new(big.Rat).Add(have.coef, t.coef)
			merged[t.key] = have

			continue
		}
		merged[t.key] = addTerm{coef: new(big.Rat).Set(t.coef), base: t.base, key: t.key}
		keys = append(keys, t.key)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if t := merged[k]; t.coef.Sign() != 0 { // x - x = 0
			out.terms = append(out.terms, t)
		}
	}

	return out
}

func addNegate(f addForm) addForm {
	out := addForm{constant: new(big.Rat).Neg(f.constant)}
	for _, t := range f.terms {
		out.terms = append(out.terms, addTerm{coef: new(big.Rat).Neg(t.coef), base: t.base, key: t.key})
	}

	return out
}

// rebuildAdd renders a sum form back into a canonical tree: the constant
// first (when non-zero), then terms in key order, negative coefficients
// rendered as subtraction.
func rebuildAdd(f addForm) Expr {
	if len(f.terms) == 0 {
		return Const{value: new(big.Rat).Set(f.constant)}
	}

	var acc Expr
	if f.constant.Sign() != 0 {
		acc = Const{value: new(big.Rat).Set(f.constant)}
	}
	for _, t := range f.terms {
		if acc == nil {
			acc = signedTerm(t)

			continue
		}
		if t.coef.Sign() > 0 {
			acc = Binary{Op: OpAdd, L: acc, R: scaledTerm(t.coef, t.base)}
		} else {
			acc = Binary{Op: OpSub, L: acc, R: scaledTerm(new(big.Rat).Neg(t.coef), t.base)}
		}
	}

	return acc
}

// signedTerm renders a leading term, keeping its sign.
func signedTerm(t addTerm) Expr {
	if t.coef.Cmp(ratMinusOne) == 0 {
		return Unary{Op: OpNeg, X: t.base}
	}

	return scaledTerm(t.coef, t.base)
}

// scaledTerm renders coef·base for a positive-position term.
func scaledTerm(coef *big.Rat, base Expr) Expr {
	if coef.Cmp(ratOne) == 0 {
		return base
	}

	return Binary{Op: OpMul, L: Const{value: new(big.Rat).Set(coef)}, R: base}
}

// ratSqrt returns the exact rational square root of v when both numerator
// and denominator are perfect squares.
func ratSqrt(v *big.Rat) (*big.Rat, bool) {
	if v.Sign() < 0 {
		return nil, false
	}
	nr, ok := intSqrt(v.Num())
	if !ok {
		return nil, false
	}
	dr, ok := intSqrt(v.Denom())
	if !ok {
		return nil, false
	}

	return new(big.Rat).SetFrac(nr, dr), true
}

func intSqrt(v *big.Int) (*big.Int, bool) {
	if v.Sign() < 0 {
		return nil, false
	}
	r := new(big.Int).Sqrt(v)
	if new(big.Int).Mul(r, r).Cmp(v) != 0 {
		return nil, false
	}

	return r, true
}

// ratPow computes c^r over the rationals; it fails when the result is
// irrational (odd power of a non-square under a half exponent) or undefined
// (zero to a negative power).
func ratPow(c, r *big.Rat) (*big.Rat, bool) {
	if r.IsInt() {
		if !r.Num().IsInt64() {
			return nil, false
		}

		return ratPowInt(c, r.Num().Int64())
	}

	// r = p/2: c^(p/2) = (sqrt c)^p
	root, ok := ratSqrt(c)
	if !ok {
		return nil, false
	}
	if !r.Num().IsInt64() {
		return nil, false
	}

	return ratPowInt(root, r.Num().Int64())
}

func ratPowInt(c *big.Rat, k int64) (*big.Rat, bool) {
	if k < 0 {
		if c.Sign() == 0 {
			return nil, false
		}
		inv, ok := ratPowInt(c, -k)
		if !ok {
			return nil, false
		}

		return inv.Inv(inv), true
	}
	out := new(big.Rat).Set(ratOne)
	base := new(big.Rat).Set(c)
	for ; k > 0; k >>= 1 {
		if k&1 == 1 {
			out.Mul(out, base)
		}
		base.Mul(base, base)
	}

	return out, true
}
