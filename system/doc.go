// Package system implements the constraint registry: the incremental
// engine that turns a set of equations plus progressively revealed root
// symbols into complete symbolic solutions.
//
// Model:
//
//   - A System is built once from a set of equations; its symbol universe
//     is the union of the equations' free symbols and never changes.
//   - The caller reveals knowledge one symbol at a time with
//     ConstrainSymbol. A constrained symbol becomes a root: its solution
//     is itself, and every derived solution bottoms out in roots only.
//   - After each ConstrainSymbol call, propagation runs synchronously to a
//     fixed point. No partial-progress state is ever observable from
//     outside a call.
//
// Per-symbol state machine:
//
//	Unconstrained ──ConstrainSymbol──▶ Constrained   (terminal)
//	Unconstrained ──propagation─────▶ Solved         (terminal)
//
//	No other transitions are legal. Constraining a Solved symbol is
//	ErrAlreadySolved; re-constraining a Constrained symbol is a no-op.
//
// Propagation:
//
//	Each pass walks the pending equation pool calling equation.Solve with
//	the current known map:
//	  – Resolved      → record the value, mark Solved, drop the equation.
//	  – Vacuous       → drop the equation (consistency confirmed).
//	  – Contradiction → fail the call; the registry state the caller can
//	                    observe is exactly what it was before the call.
//	  – NotReady / NoClosedForm → keep the equation for a later pass.
//	When a pass stalls with two or more pending equations, one elimination
//	step runs: the first pending equation (declaration order) whose
//	alphabetically-first unknown isolates in closed form is rewritten into
//	solved form and that form is substituted into the other pending
//	equations. This lets coupled pairs like {product − a·b, ratio − a/b}
//	resolve once enough roots exist, while staying fully deterministic.
//	The loop terminates: the pool only shrinks or stalls, and each symbol
//	is eliminated at most once per call.
//
// Monotonicity:
//
//	The known map only grows; a recorded solution is never removed or
//	replaced. Underdetermination is reported by absence from Solutions(),
//	never by a default or a guess.
//
// Concurrency:
//
//	A System is a single-owner, short-lived object (one registry per
//	construction attempt of a record). All operations are synchronous
//	pure computation; there is no internal locking. Callers sharing an
//	instance across goroutines must serialize access externally.
//
// Errors (sentinel):
//
//	– ErrNoEquations   if New is given an empty equation set.
//	– ErrNilEquation   if New is given a nil equation.
//	– ErrUnknownSymbol if a symbol outside the universe is referenced.
//	– ErrAlreadySolved if ConstrainSymbol targets a Solved symbol.
//	– ErrContradiction if a fully-substituted residual cannot vanish.
//	– ErrNoClosedForm  if Query targets a symbol stuck behind an
//	                   equation with no elementary solve.
//	– ErrUnderdetermined if Query targets a symbol with no solution yet.
//	– ErrNotDetermined if Evaluate runs before the system is complete.
//	– ErrValueMismatch if Evaluate's values don't match the root set.
package system
