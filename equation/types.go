// Package equation: the Equation type and the solve outcome taxonomy.
package equation

import (
	"github.com/katalvlaran/eqlath/algebra"
)

// Equation is an expression asserted equal to zero. It is immutable once
// created; the residual is held in canonical form so that structurally
// different spellings of the same constraint deduplicate.
type Equation struct {
	residual algebra.Expr
}

// New creates an Equation asserting residual = 0. The residual is
// simplified into canonical form. A nil residual is a programmer error
// and panics.
func New(residual algebra.Expr) *Equation {
	if residual == nil {
		panic("equation: nil residual")
	}

	return &Equation{residual: algebra.Simplify(residual)}
}

// Equate creates the Equation lhs = rhs, stored as lhs - rhs = 0.
func Equate(lhs, rhs algebra.Expr) *Equation {
	if lhs == nil || rhs == nil {
		panic("equation: nil operand")
	}

	return New(algebra.Sub(lhs, rhs))
}

// Residual returns the canonical residual expression. Expressions are
// immutable, so sharing is safe.
func (e *Equation) Residual() algebra.Expr { return e.residual }

// FreeSymbols returns the sorted set of symbols in the residual.
func (e *Equation) FreeSymbols() []algebra.Symbol {
	return algebra.FreeSymbols(e.residual)
}

// Substitute returns a new Equation with s replaced by value throughout.
func (e *Equation) Substitute(s algebra.Symbol, value algebra.Expr) *Equation {
	return &Equation{residual: algebra.Substitute(e.residual, s, value)}
}

// String renders the equation as "<residual> = 0"; the form is canonical
// and deterministic, so it doubles as the equation's identity for set
// membership.
func (e *Equation) String() string { return e.residual.String() + " = 0" }

// Kind classifies the result of a solve attempt.
type Kind uint8

const (
	// Resolved means a unique closed-form value was found for the single
	// remaining unknown.
	Resolved Kind = iota

	// NotReady means two or more symbols remain unknown; the equation
	// must wait for more constrained values.
	NotReady

	// NoClosedForm means exactly one symbol remains unknown but no
	// elementary algebraic inverse isolates it.
	NoClosedForm

	// Vacuous means no symbols remain unknown and the residual
	// simplifies to zero: the equation is consistent and spent.
	Vacuous

	// Contradiction means no symbols remain unknown and the residual
	// does not simplify to zero: the supplied values conflict with the
	// equation set.
	Contradiction
)

// kindNames maps kinds to their textual names.
var kindNames = [...]string{
	Resolved:      "Resolved",
	NotReady:      "NotReady",
	NoClosedForm:  "NoClosedForm",
	Vacuous:       "Vacuous",
	Contradiction: "Contradiction",
}

// String returns the kind's name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "Unknown"
}

// Outcome is the result of a solve attempt. For and Value are populated
// when Kind is Resolved; For alone is populated for NoClosedForm.
type Outcome struct {
	Kind  Kind
	For   algebra.Symbol
	Value algebra.Expr
}
