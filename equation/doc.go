// Package equation represents algebraic equations in residual form and
// implements the single-unknown solving step the propagation engine is
// built on.
//
// An Equation is an expression asserted equal to zero: "area = π·r²"
// is stored as the residual "area − π·r²". Equations are immutable;
// substitution always produces a new Equation and the old one is simply
// discarded by the caller.
//
// Solving model:
//
//	Solve(eq, known) first substitutes every known value into the
//	residual, then classifies the result by the number of symbols that
//	remain unknown (free symbols that are not keys of the known map):
//
//	  – 0 unknowns, residual ≡ 0 → Vacuous: the equation carries no new
//	    information and can be discarded.
//	  – 0 unknowns, residual ≠ 0 → Contradiction: the residual depends
//	    only on caller-fixed root symbols, which are free parameters, so
//	    it cannot vanish identically.
//	  – 1 unknown  → attempt to isolate it by inverse-operation peeling;
//	    success is Resolved with the closed-form value, failure is
//	    NoClosedForm.
//	  – 2+ unknowns → NotReady: the equation must wait for more facts.
//
// Branch selection (documented rule, not an accident):
//
//	When inverting an even power (x² = t, x⁴ = t, sqrt peeling) the
//	principal non-negative root is always chosen: x² = t rewrites to
//	x = sqrt(t). Odd powers of three or more and symbols appearing in
//	exponents have no elementary inverse here and yield NoClosedForm.
//
// Isolation handles one occurrence of the unknown: a + x, a − x, x − a,
// a·x, x/a, a/x, x², x⁴ (and further even powers), sqrt(x) and −x peel;
// an unknown occurring on both sides of a node (x + 1/x) does not.
//
// Peeling an even power or a reciprocal can cross a branch cut, so a
// candidate only counts as Resolved when substituting it back makes the
// residual vanish identically. Infeasible shapes such as sqrt(x) = −y,
// a/x = 0 and x² = −1 therefore yield NoClosedForm rather than a value
// that fails the original equation.
package equation
