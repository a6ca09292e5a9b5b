// Package system: the fixed-point propagation loop.
package system

import (
	"fmt"

	"github.com/katalvlaran/eqlath/algebra"
	"github.com/katalvlaran/eqlath/equation"
)

// propagate runs substitution-and-solve passes over the pending pool until
// a full pass produces no state change. It mutates the caller's scratch
// known map and pending slice and returns the surviving pool plus the
// symbols newly solved; on contradiction nothing is committed by the
// caller.
//
// Termination: a pass either shrinks the pool, solves a symbol, eliminates
// a not-yet-eliminated symbol, or stalls; pools and universes are finite
// and nothing is ever re-added.
func (sys *System) propagate(
	known map[algebra.Symbol]algebra.Expr,
	pending []*equation.Equation,
) ([]*equation.Equation, []algebra.Symbol, error) {
	var solved []algebra.Symbol
	eliminated := make(map[algebra.Symbol]struct{})

	for pass := 1; ; pass++ {
		changed := false
		next := pending[:0:0]
		for _, eq := range pending {
			out := equation.Solve(eq, known)
			switch out.Kind {
			case equation.Resolved:
				known[out.For] = out.Value
				solved = append(solved, out.For)
				changed = true
				sys.log.Debug().
					Int("pass", pass).
					Str("symbol", out.For.Name()).
					Str("value", out.Value.String()).
					Msg("solved")
			case equation.Vacuous:
				changed = true // consistency confirmed, equation spent
			case equation.Contradiction:
				return nil, nil, fmt.Errorf("equation %s: %w", eq, ErrContradiction)
			default: // NotReady, NoClosedForm
				next = append(next, eq)
			}
		}
		pending = next

		if changed {
			continue
		}
		if len(pending) < 2 || !sys.eliminateOne(known, pending, eliminated) {
			return pending, solved, nil
		}
	}
}

// eliminateOne performs one deterministic elimination step on a stalled
// pool: the first pending equation (declaration order) whose
// alphabetically-first isolatable unknown can be expressed in terms of the
// remaining symbols is rewritten into solved form, and that form is
// substituted into every other pending equation. Each symbol is eliminated
// at most once per propagation run.
func (sys *System) eliminateOne(
	known map[algebra.Symbol]algebra.Expr,
	pending []*equation.Equation,
	eliminated map[algebra.Symbol]struct{},
) bool {
	for i, eq := range pending {
		for _, s := range eq.Unknowns(known) {
			if _, done := eliminated[s]; done {
				continue
			}
			value, ok := equation.Isolate(eq, s, known)
			if !ok || algebra.ContainsSymbol(value, s) {
				continue
			}

			eliminated[s] = struct{}{}
			pending[i] = equation.Equate(s, value)
			for j, other := range pending {
				if j != i {
					pending[j] = other.Substitute(s, value)
				}
			}
			sys.log.Debug().
				Str("symbol", s.Name()).
				Str("as", value.String()).
				Msg("eliminated")

			return true
		}
	}

	return false
}
