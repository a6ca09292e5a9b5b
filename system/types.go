// Package system: status machine, sentinel errors and configuration.
package system

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/eqlath/logger"
)

// Sentinel errors returned by the constraint registry.
var (
	// ErrNoEquations indicates that New was called with no equations.
	ErrNoEquations = errors.New("system: equation set is empty")

	// ErrNilEquation indicates that New was given a nil *Equation.
	ErrNilEquation = errors.New("system: nil equation")

	// ErrUnknownSymbol indicates a symbol that appears in no equation of
	// this system.
	ErrUnknownSymbol = errors.New("system: symbol not in system")

	// ErrAlreadySolved indicates an attempt to constrain a symbol whose
	// value was already derived by propagation. A root and a derived
	// value for the same symbol cannot coexist.
	ErrAlreadySolved = errors.New("system: symbol already solved")

	// ErrContradiction indicates that a fully-substituted equation's
	// residual does not simplify to zero: the constrained roots conflict
	// with the equation set.
	ErrContradiction = errors.New("system: contradiction")

	// ErrNoClosedForm indicates that the queried symbol is pinned by an
	// equation with exactly one unknown left but no elementary solve.
	ErrNoClosedForm = errors.New("system: no closed-form solution")

	// ErrUnderdetermined indicates that the queried symbol has no
	// solution under the currently constrained roots.
	ErrUnderdetermined = errors.New("system: symbol underdetermined")

	// ErrNotDetermined indicates that Evaluate was called before every
	// symbol in the universe had a solution.
	ErrNotDetermined = errors.New("system: system not fully determined")

	// ErrValueMismatch indicates that Evaluate's value map does not key
	// exactly the explicitly constrained root symbols.
	ErrValueMismatch = errors.New("system: values must match constrained symbols")
)

// Status is the lifecycle state of a symbol within a System.
//
// Unconstrained: initial; nothing known.
// Constrained:   explicitly fixed by the caller; terminal.
// Solved:        derived by propagation; terminal.
type Status uint8

const (
	// Unconstrained is the initial status of every symbol.
	Unconstrained Status = iota

	// Constrained marks a root symbol, explicitly fixed by the caller.
	Constrained

	// Solved marks a symbol whose value was derived by propagation.
	Solved
)

// statusNames maps statuses to their textual names.
var statusNames = [...]string{
	Unconstrained: "Unconstrained",
	Constrained:   "Constrained",
	Solved:        "Solved",
}

// String returns the status name.
func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}

	return "Unknown"
}

// Options configures a System.
//
// Logger: destination for propagation traces (Debug level). Defaults to
// the package-global eqlath logger, which is a no-op under `go test`.
type Options struct {
	Logger zerolog.Logger
}

// Option is a functional option for configuring a System.
type Option func(*Options)

// WithLogger directs propagation traces to the given logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns the Options a System starts from before
// functional options are applied.
func DefaultOptions() Options {
	return Options{Logger: logger.Logger()}
}
