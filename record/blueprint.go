// Package record: the Blueprint type and the resolution stage.
package record

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/eqlath/algebra"
	"github.com/katalvlaran/eqlath/equation"
	"github.com/katalvlaran/eqlath/system"
)

// Sentinel errors returned by blueprint construction and resolution.
var (
	// ErrNoFields indicates a blueprint with an empty field map.
	ErrNoFields = errors.New("record: no fields declared")

	// ErrFieldNotInSystem indicates a declared field whose symbol occurs
	// in none of the blueprint's equations.
	ErrFieldNotInSystem = errors.New("record: field symbol not in equation set")

	// ErrUnknownField indicates a supplied name the blueprint never
	// declared.
	ErrUnknownField = errors.New("record: unknown field")

	// ErrNoValues indicates that Resolve was given an empty value map.
	ErrNoValues = errors.New("record: no field values supplied")

	// ErrDoubleSet indicates a supplied field that was already determined
	// by the fields supplied before it.
	ErrDoubleSet = errors.New("record: field already determined")

	// ErrUnresolved indicates declared fields left without a solution
	// after every supplied field was constrained.
	ErrUnresolved = errors.New("record: unresolved fields")
)

// Blueprint binds a record type's field names to symbols and carries the
// equation set relating them. A Blueprint is immutable and reusable; each
// Resolve call runs on a fresh one-shot System.
type Blueprint struct {
	fields map[string]algebra.Symbol
	eqs    []*equation.Equation
	opts   []system.Option
}

// NewBlueprint creates a Blueprint for the given field→symbol bindings and
// equations. Every declared field symbol must appear in at least one
// equation; options are forwarded to each per-attempt System.
func NewBlueprint(
	fields map[string]algebra.Symbol,
	eqs []*equation.Equation,
	opts ...system.Option,
) (*Blueprint, error) {
	if len(fields) == 0 {
		return nil, ErrNoFields
	}

	universe := make(map[algebra.Symbol]struct{})
	for _, eq := range eqs {
		if eq == nil {
			return nil, system.ErrNilEquation
		}
		for _, s := range eq.FreeSymbols() {
			universe[s] = struct{}{}
		}
	}
	for name, sym := range fields {
		if _, ok := universe[sym]; !ok {
			return nil, fmt.Errorf("field %q (symbol %q): %w", name, sym.Name(), ErrFieldNotInSystem)
		}
	}

	bp := &Blueprint{
		fields: make(map[string]algebra.Symbol, len(fields)),
		eqs:    append([]*equation.Equation(nil), eqs...),
		opts:   opts,
	}
	for name, sym := range fields {
		bp.fields[name] = sym
	}

	return bp, nil
}

// Fields returns the declared field names, sorted.
func (bp *Blueprint) Fields() []string {
	names := make([]string, 0, len(bp.fields))
	for name := range bp.fields {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Resolve completes a partial field set: it constrains the symbol of every
// supplied field (in sorted name order, for determinism), then returns a
// numeric value for every declared field. The result is the complete map
// the caller passes to the record's ordinary constructor.
//
// Resolution never guesses: if any declared field has no solution, the
// returned error wraps ErrUnresolved and names every missing field.
func (bp *Blueprint) Resolve(supplied map[string]float64) (map[string]float64, error) {
	if len(supplied) == 0 {
		return nil, ErrNoValues
	}

	names := make([]string, 0, len(supplied))
	for name := range supplied {
		if _, ok := bp.fields[name]; !ok {
			return nil, fmt.Errorf("field %q: %w", name, ErrUnknownField)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	sys, err := system.New(bp.eqs, bp.opts...)
	if err != nil {
		return nil, err
	}

	rootValues := make(map[algebra.Symbol]float64, len(names))
	for _, name := range names {
		sym := bp.fields[name]
		if _, err = sys.ConstrainSymbol(sym); err != nil {
			if errors.Is(err, system.ErrAlreadySolved) {
				return nil, fmt.Errorf("field %q: %w", name, ErrDoubleSet)
			}

			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		rootValues[sym] = supplied[name]
	}

	solutions := sys.Solutions()
	var missing []string
	for name, sym := range bp.fields {
		if _, ok := solutions[sym]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)

		return nil, fmt.Errorf("%w: %s", ErrUnresolved, strings.Join(missing, ", "))
	}

	out := make(map[string]float64, len(bp.fields))
	for name, sym := range bp.fields {
		v, evalErr := algebra.Eval(solutions[sym], rootValues)
		if evalErr != nil {
			return nil, fmt.Errorf("field %q: %w", name, evalErr)
		}
		out[name] = v
	}

	return out, nil
}
