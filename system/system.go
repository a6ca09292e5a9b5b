// Package system: the System type and its public operations.
package system

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/eqlath/algebra"
	"github.com/katalvlaran/eqlath/equation"
)

// System is the constraint registry: the full symbol universe, the pool of
// pending equations and the monotonically growing map of known solutions.
//
// Construct with New, reveal roots with ConstrainSymbol, read results with
// Solutions or Evaluate. See the package documentation for the state
// machine and propagation semantics.
type System struct {
	symbols []algebra.Symbol                   // sorted universe, fixed at construction
	status  map[algebra.Symbol]Status          // per-symbol lifecycle state
	known   map[algebra.Symbol]algebra.Expr    // symbol → solution, grounded in roots
	pending []*equation.Equation               // equations not yet consumed
	log     zerolog.Logger
}

// New creates a System from the given equation set. The symbol universe is
// derived from the union of free symbols across all equations and is
// invariant thereafter. Structurally duplicate equations (identical
// canonical residuals) are collapsed.
//
// Returns ErrNoEquations for an empty set and ErrNilEquation for a nil
// entry.
func New(eqs []*equation.Equation, opts ...Option) (*System, error) {
	if len(eqs) == 0 {
		return nil, ErrNoEquations
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	seen := make(map[string]struct{}, len(eqs))
	universe := make(map[algebra.Symbol]struct{})
	sys := &System{
		status: make(map[algebra.Symbol]Status),
		known:  make(map[algebra.Symbol]algebra.Expr),
		log:    o.Logger,
	}
	for _, eq := range eqs {
		if eq == nil {
			return nil, ErrNilEquation
		}
		key := eq.String()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		sys.pending = append(sys.pending, eq)
		for _, s := range eq.FreeSymbols() {
			universe[s] = struct{}{}
		}
	}
	for s := range universe {
		sys.symbols = append(sys.symbols, s)
		sys.status[s] = Unconstrained
	}
	sort.Slice(sys.symbols, func(i, j int) bool { return sys.symbols[i].Name() < sys.symbols[j].Name() })

	return sys, nil
}

// ConstrainSymbol marks s as an explicitly fixed root symbol and runs
// propagation to a fixed point. It reports whether the call caused at
// least one additional symbol to become Solved — net progress, not
// completeness of the whole system.
//
// Re-constraining an already Constrained symbol is a no-op returning
// false. Constraining a Solved symbol is ErrAlreadySolved: its value is
// already pinned by previously revealed roots. On ErrContradiction the
// observable registry state is unchanged.
func (sys *System) ConstrainSymbol(s algebra.Symbol) (bool, error) {
	st, ok := sys.status[s]
	if !ok {
		return false, fmt.Errorf("symbol %q: %w", s.Name(), ErrUnknownSymbol)
	}
	switch st {
	case Constrained:
		return false, nil
	case Solved:
		return false, fmt.Errorf("symbol %q = %s: %w", s.Name(), sys.known[s], ErrAlreadySolved)
	}

	// propagate on scratch state; commit only on success
	known := make(map[algebra.Symbol]algebra.Expr, len(sys.known)+1)
	for k, v := range sys.known {
		known[k] = v
	}
	known[s] = s // a root solves to itself
	pending := append([]*equation.Equation(nil), sys.pending...)

	remaining, solved, err := sys.propagate(known, pending)
	if err != nil {
		return false, err
	}

	sys.known = known
	sys.pending = remaining
	sys.status[s] = Constrained
	for _, x := range solved {
		sys.status[x] = Solved
	}

	sys.log.Debug().
		Str("constrained", s.Name()).
		Int("solved", len(solved)).
		Int("pending", len(remaining)).
		Msg("constrain symbol")

	return len(solved) > 0, nil
}

// Solutions returns a snapshot mapping every symbol currently known to its
// solution expression. Root symbols map to themselves; symbols absent from
// the map are underdetermined. The snapshot is safe to retain: expressions
// are immutable and the map is a copy.
func (sys *System) Solutions() map[algebra.Symbol]algebra.Expr {
	out := make(map[algebra.Symbol]algebra.Expr, len(sys.known))
	for k, v := range sys.known {
		out[k] = v
	}

	return out
}

// Symbols returns the sorted symbol universe of the system.
func (sys *System) Symbols() []algebra.Symbol {
	return append([]algebra.Symbol(nil), sys.symbols...)
}

// Status returns the lifecycle status of s; symbols outside the universe
// report Unconstrained.
func (sys *System) Status(s algebra.Symbol) Status {
	return sys.status[s]
}

// FullyDetermined reports whether every symbol in the universe has a
// solution.
func (sys *System) FullyDetermined() bool {
	return len(sys.known) == len(sys.symbols)
}

// Query returns the solution for s, distinguishing why one is missing:
// ErrNoClosedForm when a pending equation pins s as its only unknown but
// has no elementary solve, ErrUnderdetermined otherwise.
func (sys *System) Query(s algebra.Symbol) (algebra.Expr, error) {
	if _, ok := sys.status[s]; !ok {
		return nil, fmt.Errorf("symbol %q: %w", s.Name(), ErrUnknownSymbol)
	}
	if v, ok := sys.known[s]; ok {
		return v, nil
	}
	for _, eq := range sys.pending {
		if out := equation.Solve(eq, sys.known); out.Kind == equation.NoClosedForm && out.For == s {
			return nil, fmt.Errorf("symbol %q blocked by %s: %w", s.Name(), eq, ErrNoClosedForm)
		}
	}

	return nil, fmt.Errorf("symbol %q: %w", s.Name(), ErrUnderdetermined)
}

// Evaluate numerically evaluates every symbol's solution given a value for
// each constrained root. The value map must key exactly the Constrained
// symbols; the system must be fully determined.
func (sys *System) Evaluate(values map[algebra.Symbol]float64) (map[algebra.Symbol]float64, error) {
	if !sys.FullyDetermined() {
		return nil, ErrNotDetermined
	}
	roots := sys.constrainedRoots()
	if err := sys.checkRootValues(values, roots); err != nil {
		return nil, err
	}

	out := make(map[algebra.Symbol]float64, len(sys.known))
	for s, expr := range sys.known {
		v, err := algebra.Eval(expr, values)
		if err != nil {
			return nil, fmt.Errorf("symbol %q: %w", s.Name(), err)
		}
		out[s] = v
	}

	return out, nil
}

// constrainedRoots lists the Constrained symbols in sorted order.
func (sys *System) constrainedRoots() []algebra.Symbol {
	var roots []algebra.Symbol
	for _, s := range sys.symbols {
		if sys.status[s] == Constrained {
			roots = append(roots, s)
		}
	}

	return roots
}

// checkRootValues verifies that values keys exactly the root set.
func (sys *System) checkRootValues(values map[algebra.Symbol]float64, roots []algebra.Symbol) error {
	if len(values) != len(roots) {
		return fmt.Errorf("got %d values for %d roots (%s): %w",
			len(values), len(roots), symbolNames(roots), ErrValueMismatch)
	}
	for _, r := range roots {
		if _, ok := values[r]; !ok {
			return fmt.Errorf("missing value for root %q: %w", r.Name(), ErrValueMismatch)
		}
	}

	return nil
}

// symbolNames joins symbol names for error messages.
func symbolNames(ss []algebra.Symbol) string {
	names := make([]string, len(ss))
	for i, s := range ss {
		names[i] = s.Name()
	}

	return strings.Join(names, ", ")
}
