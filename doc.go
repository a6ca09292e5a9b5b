// Package eqlath is your in-memory toolkit for linking named symbolic
// variables with algebraic equations and turning partial knowledge into
// complete solutions — incrementally, deterministically, without a CAS server.
//
// 🚀 What is eqlath?
//
//	A small, deterministic library that brings together:
//		• Symbols & expressions: interned variables, exact-rational trees
//		• Simplification: constant folding, like-term & like-factor collection
//		• Equations: residual-equals-zero form with single-unknown solving
//		• Systems: incremental constrain → propagate → fixed point
//		• Records: fill the missing fields of an immutable record from the rest
//
// ✨ Why choose eqlath?
//
//   - Predictable – identical inputs always produce identical solutions
//   - Honest – missing information is absent, never guessed or defaulted
//   - Pure Go – exact math/big rationals, no cgo, no external solver
//   - Small – built for a handful of equations per record, not for Mathematica
//
// Under the hood, everything is organized under five subpackages:
//
//	algebra/  — Symbol, Expr trees, Substitute/Simplify/FreeSymbols/Eval
//	equation/ — Equation (expr = 0) and the SolveFor outcome taxonomy
//	system/   — the constraint registry: ConstrainSymbol, propagation, Solutions
//	record/   — two-stage builder adapter for constrained record types
//	logger/   — zerolog-backed package logger (Nop under `go test`)
//
// Quick example — a circle knows itself from either side:
//
//	radius, area := algebra.Sym("radius"), algebra.Sym("area")
//	eq := equation.New(algebra.Sub(area, algebra.Mul(algebra.Float(math.Pi), algebra.Pow(radius, algebra.Num(2)))))
//	sys, _ := system.New([]*equation.Equation{eq})
//	sys.ConstrainSymbol(area)          // radius is now solved symbolically
//	sys.Solutions()[radius]            // sqrt(area / π)
//
// Dive into README-style doc.go files in each subpackage for invariants,
// error contracts and complexity notes.
//
//	go get github.com/katalvlaran/eqlath
package eqlath
