// Package algebra: substitution, free-symbol analysis and equality.
package algebra

// Substitute returns e with every occurrence of s replaced by value,
// re-simplified into canonical form. Neither e nor value is mutated.
func Substitute(e Expr, s Symbol, value Expr) Expr {
	return canon(rewrite(e, map[Symbol]Expr{s: value}))
}

// SubstituteAll replaces every symbol present in values simultaneously and
// re-simplifies. Identity entries (symbol mapped to itself) are no-ops.
func SubstituteAll(e Expr, values map[Symbol]Expr) Expr {
	if len(values) == 0 {
		return canon(e)
	}

	return canon(rewrite(e, values))
}

// rewrite walks the raw tree performing the replacements without
// simplifying; canon runs once over the final result.
func rewrite(e Expr, values map[Symbol]Expr) Expr {
	switch n := e.(type) {
	case Symbol:
		if v, ok := values[n]; ok {
			return v
		}

		return n
	case Unary:
		return Unary{Op: n.Op, X: rewrite(n.X, values)}
	case Binary:
		return Binary{Op: n.Op, L: rewrite(n.L, values), R: rewrite(n.R, values)}
	default: // Const
		return e
	}
}

// FreeSymbols returns the set of symbols reachable in the simplified form
// of e, sorted by name and deduplicated.
func FreeSymbols(e Expr) []Symbol {
	seen := make(map[Symbol]struct{})
	collect(canon(e), seen)
	out := make([]Symbol, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}

	return sortSymbols(out)
}

// ContainsSymbol reports whether s occurs anywhere in e (without
// simplification; callers pass canonical trees).
func ContainsSymbol(e Expr, s Symbol) bool {
	switch n := e.(type) {
	case Symbol:
		return n == s
	case Unary:
		return ContainsSymbol(n.X, s)
	case Binary:
		return ContainsSymbol(n.L, s) || ContainsSymbol(n.R, s)
	default:
		return false
	}
}

func collect(e Expr, seen map[Symbol]struct{}) {
	switch n := e.(type) {
	case Symbol:
		seen[n] = struct{}{}
	case Unary:
		collect(n.X, seen)
	case Binary:
		collect(n.L, seen)
		collect(n.R, seen)
	}
}

// Equal reports whether a and b denote the same value: the canonical form
// of their difference is the zero constant.
func Equal(a, b Expr) bool {
	return IsZero(canon(Binary{Op: OpSub, L: a, R: b}))
}
