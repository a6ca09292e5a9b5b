// Package record adapts the constraint engine to the "constrained record"
// pattern: an immutable data type that declares several equivalent ways to
// be constructed (a circle from its radius, or from its area) and wants
// missing fields filled in automatically from a declared equation set.
//
// Two-stage construction:
//
//	Stage 1 — resolution (this package): a Blueprint binds field names to
//	symbols and carries the equation set. Resolve takes the subset of
//	fields the caller actually supplied, constrains the matching symbols
//	on a fresh one-shot System, and demands a numeric value for every
//	declared field.
//
//	Stage 2 — construction (the caller): the complete field→value map is
//	passed to the record type's ordinary constructor. The record type
//	itself stays untouched; there is no constructor hooking and nothing
//	magic.
//
// Example:
//
//	radius, area := algebra.Sym("radius"), algebra.Sym("area")
//	bp, _ := record.NewBlueprint(
//	    map[string]algebra.Symbol{"radius": radius, "area": area},
//	    []*equation.Equation{
//	        equation.Equate(area, algebra.Mul(algebra.Float(math.Pi), algebra.Pow(radius, algebra.Num(2)))),
//	    },
//	)
//	fields, _ := bp.Resolve(map[string]float64{"area": 42})
//	c := Circle{Radius: fields["radius"], Area: fields["area"]}
//
// Error contract (the adapter always names the offending field):
//
//	– ErrNoFields         if the blueprint declares no fields.
//	– ErrFieldNotInSystem if a declared field's symbol appears in no
//	                      equation.
//	– ErrUnknownField     if Resolve is given a name the blueprint never
//	                      declared.
//	– ErrNoValues         if Resolve is given nothing to start from.
//	– ErrDoubleSet        if a supplied field was already pinned by the
//	                      fields supplied before it.
//	– ErrUnresolved       if, after constraining everything supplied, one
//	                      or more declared fields have no solution; the
//	                      error lists them all, sorted.
//
// Contradictions and other engine failures propagate unchanged and can be
// matched with errors.Is against the system package sentinels.
package record
