// Package system_test covers construction validation, the symbol state
// machine and the query surface.
package system_test

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/katalvlaran/eqlath/algebra"
	"github.com/katalvlaran/eqlath/equation"
	"github.com/katalvlaran/eqlath/system"
)

//-------------------------------------------------------------------//
//                     construction validation                       //
//-------------------------------------------------------------------//

func TestNew_Validation(t *testing.T) {
	x, y := algebra.Sym("x"), algebra.Sym("y")

	if _, err := system.New(nil); !errors.Is(err, system.ErrNoEquations) {
		t.Errorf("New(nil) error = %v; want ErrNoEquations", err)
	}
	if _, err := system.New([]*equation.Equation{}); !errors.Is(err, system.ErrNoEquations) {
		t.Errorf("New(empty) error = %v; want ErrNoEquations", err)
	}
	if _, err := system.New([]*equation.Equation{nil}); !errors.Is(err, system.ErrNilEquation) {
		t.Errorf("New([nil]) error = %v; want ErrNilEquation", err)
	}

	sys, err := system.New([]*equation.Equation{equation.Equate(x, y)})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	ss := sys.Symbols()
	if len(ss) != 2 || ss[0] != x || ss[1] != y {
		t.Fatalf("Symbols = %v; want [x y]", ss)
	}
}

func TestNew_DeduplicatesEquations(t *testing.T) {
	x, y := algebra.Sym("x"), algebra.Sym("y")

	// the same residual supplied twice collapses to one equation
	sys, err := system.New([]*equation.Equation{
		equation.Equate(x, y),
		equation.Equate(x, y),
	})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if _, err := sys.ConstrainSymbol(x); err != nil {
		t.Fatalf("ConstrainSymbol error: %v", err)
	}
	if !sys.FullyDetermined() {
		t.Error("system must be fully determined after constraining x")
	}
}

//-------------------------------------------------------------------//
//                        state machine                              //
//-------------------------------------------------------------------//

func TestConstrainSymbol_StateMachine(t *testing.T) {
	d, r := algebra.Sym("diameter"), algebra.Sym("radius")
	sys, err := system.New([]*equation.Equation{
		equation.Equate(d, algebra.Mul(algebra.Num(2), r)),
	})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	if got := sys.Status(r); got != system.Unconstrained {
		t.Fatalf("initial Status = %v; want Unconstrained", got)
	}

	// unknown symbols are rejected outright
	if _, err := sys.ConstrainSymbol(algebra.Sym("bogus")); !errors.Is(err, system.ErrUnknownSymbol) {
		t.Errorf("ConstrainSymbol(bogus) error = %v; want ErrUnknownSymbol", err)
	}

	newSolved, err := sys.ConstrainSymbol(r)
	if err != nil {
		t.Fatalf("ConstrainSymbol(radius) error: %v", err)
	}
	if !newSolved {
		t.Error("constraining radius must report newly solved symbols")
	}
	if got := sys.Status(r); got != system.Constrained {
		t.Errorf("Status(radius) = %v; want Constrained", got)
	}
	if got := sys.Status(d); got != system.Solved {
		t.Errorf("Status(diameter) = %v; want Solved", got)
	}

	// constraining an already-constrained symbol is a no-op
	newSolved, err = sys.ConstrainSymbol(r)
	if err != nil || newSolved {
		t.Errorf("second ConstrainSymbol(radius) = (%v, %v); want (false, nil)", newSolved, err)
	}

	// Solved is terminal
	if _, err := sys.ConstrainSymbol(d); !errors.Is(err, system.ErrAlreadySolved) {
		t.Errorf("ConstrainSymbol(diameter) error = %v; want ErrAlreadySolved", err)
	}
}

// TestSolutions_RootIdentity checks that a constrained root appears in
// the solutions as itself, and that the snapshot is a copy.
func TestSolutions_RootIdentity(t *testing.T) {
	x, y := algebra.Sym("x"), algebra.Sym("y")
	sys, _ := system.New([]*equation.Equation{equation.Equate(y, algebra.Mul(algebra.Num(2), x))})

	if _, err := sys.ConstrainSymbol(x); err != nil {
		t.Fatalf("ConstrainSymbol error: %v", err)
	}

	sol := sys.Solutions()
	if !algebra.Equal(sol[x], x) {
		t.Errorf("Solutions[x] = %v; want x", sol[x])
	}
	if !algebra.Equal(sol[y], algebra.Mul(algebra.Num(2), x)) {
		t.Errorf("Solutions[y] = %v; want 2x", sol[y])
	}

	// mutating the snapshot must not leak back
	sol[x] = algebra.Num(99)
	if !algebra.Equal(sys.Solutions()[x], x) {
		t.Error("Solutions snapshot is not a copy")
	}
}

// TestSolutions_Monotonic constrains roots one at a time and checks that
// every solution present after the first step survives the second
// byte-for-byte.
func TestSolutions_Monotonic(t *testing.T) {
	a, b := algebra.Sym("a"), algebra.Sym("b")
	c, d := algebra.Sym("c"), algebra.Sym("d")

	sys, err := system.New([]*equation.Equation{
		equation.Equate(b, algebra.Mul(algebra.Num(2), a)),
		equation.Equate(d, algebra.Mul(c, b)),
	})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	snapshot := func() map[string]string {
		out := make(map[string]string)
		for s, e := range sys.Solutions() {
			out[s.Name()] = e.String()
		}
		return out
	}

	if _, err := sys.ConstrainSymbol(a); err != nil {
		t.Fatalf("ConstrainSymbol(a) error: %v", err)
	}
	first := snapshot()
	if first["b"] != "(2 * a)" {
		t.Fatalf("Solutions[b] = %q; want (2 * a)", first["b"])
	}

	if _, err := sys.ConstrainSymbol(c); err != nil {
		t.Fatalf("ConstrainSymbol(c) error: %v", err)
	}
	second := snapshot()
	if len(second) <= len(first) {
		t.Fatalf("second snapshot has %d entries; want more than %d", len(second), len(first))
	}
	for name := range second {
		if _, ok := first[name]; !ok {
			delete(second, name)
		}
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("earlier solutions changed after new constraint (-first +second):\n%s", diff)
	}
}

// TestInfeasibleRootStaysOpen covers an equation whose only unknown has no
// real root: constraining the other side must not mint a bogus solution.
func TestInfeasibleRootStaysOpen(t *testing.T) {
	x, y := algebra.Sym("x"), algebra.Sym("y")
	sys, err := system.New([]*equation.Equation{
		equation.Equate(algebra.Sqrt(x), algebra.Neg(y)),
	})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	newSolved, err := sys.ConstrainSymbol(y)
	if err != nil {
		t.Fatalf("ConstrainSymbol(y) error: %v", err)
	}
	if newSolved {
		t.Error("sqrt(x) = -y must not solve x")
	}
	if got := sys.Status(x); got != system.Unconstrained {
		t.Errorf("Status(x) = %v; want Unconstrained", got)
	}
	if _, err := sys.Query(x); !errors.Is(err, system.ErrNoClosedForm) {
		t.Errorf("Query(x) error = %v; want ErrNoClosedForm", err)
	}
	if _, err := sys.Evaluate(map[algebra.Symbol]float64{y: 3}); !errors.Is(err, system.ErrNotDetermined) {
		t.Errorf("Evaluate error = %v; want ErrNotDetermined", err)
	}
}

//-------------------------------------------------------------------//
//                            queries                                //
//-------------------------------------------------------------------//

func TestQuery(t *testing.T) {
	x, y := algebra.Sym("x"), algebra.Sym("y")
	a, b, c := algebra.Sym("a"), algebra.Sym("b"), algebra.Sym("c")

	t.Run("Underdetermined", func(t *testing.T) {
		sys, _ := system.New([]*equation.Equation{
			equation.Equate(c, algebra.Mul(a, b)),
		})
		if _, err := sys.ConstrainSymbol(a); err != nil {
			t.Fatalf("ConstrainSymbol error: %v", err)
		}
		if _, err := sys.Query(b); !errors.Is(err, system.ErrUnderdetermined) {
			t.Errorf("Query(b) error = %v; want ErrUnderdetermined", err)
		}
	})

	t.Run("NoClosedForm", func(t *testing.T) {
		sys, _ := system.New([]*equation.Equation{
			equation.Equate(algebra.Add(x, algebra.Div(algebra.Num(1), x)), y),
		})
		if _, err := sys.ConstrainSymbol(y); err != nil {
			t.Fatalf("ConstrainSymbol error: %v", err)
		}
		if _, err := sys.Query(x); !errors.Is(err, system.ErrNoClosedForm) {
			t.Errorf("Query(x) error = %v; want ErrNoClosedForm", err)
		}
	})

	t.Run("Known", func(t *testing.T) {
		sys, _ := system.New([]*equation.Equation{equation.Equate(y, x)})
		if _, err := sys.ConstrainSymbol(x); err != nil {
			t.Fatalf("ConstrainSymbol error: %v", err)
		}
		value, err := sys.Query(y)
		if err != nil {
			t.Fatalf("Query(y) error: %v", err)
		}
		if !algebra.Equal(value, x) {
			t.Errorf("Query(y) = %v; want x", value)
		}
	})
}

func TestVacuousEquationsDrop(t *testing.T) {
	x, y := algebra.Sym("x"), algebra.Sym("y")

	// the second equation is a scaled copy of the first and must not
	// block full determination
	sys, _ := system.New([]*equation.Equation{
		equation.Equate(x, y),
		equation.Equate(algebra.Mul(algebra.Num(2), x), algebra.Mul(algebra.Num(2), y)),
	})
	if _, err := sys.ConstrainSymbol(x); err != nil {
		t.Fatalf("ConstrainSymbol error: %v", err)
	}
	if !sys.FullyDetermined() {
		t.Error("scaled duplicate must resolve vacuously")
	}
}

//-------------------------------------------------------------------//
//                            evaluate                               //
//-------------------------------------------------------------------//

func TestEvaluate_Errors(t *testing.T) {
	d, r := algebra.Sym("diameter"), algebra.Sym("radius")
	sys, _ := system.New([]*equation.Equation{
		equation.Equate(d, algebra.Mul(algebra.Num(2), r)),
	})

	if _, err := sys.Evaluate(map[algebra.Symbol]float64{r: 1}); !errors.Is(err, system.ErrNotDetermined) {
		t.Errorf("Evaluate before determination error = %v; want ErrNotDetermined", err)
	}

	if _, err := sys.ConstrainSymbol(r); err != nil {
		t.Fatalf("ConstrainSymbol error: %v", err)
	}

	cases := []struct {
		name   string
		values map[algebra.Symbol]float64
	}{
		{"MissingRoot", map[algebra.Symbol]float64{}},
		{"ExtraSymbol", map[algebra.Symbol]float64{r: 1, d: 2}},
		{"WrongSymbol", map[algebra.Symbol]float64{d: 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := sys.Evaluate(tc.values); !errors.Is(err, system.ErrValueMismatch) {
				t.Errorf("Evaluate error = %v; want ErrValueMismatch", err)
			}
		})
	}

	got, err := sys.Evaluate(map[algebra.Symbol]float64{r: 1.5})
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	if math.Abs(got[d]-3) > 1e-12 || math.Abs(got[r]-1.5) > 1e-12 {
		t.Errorf("Evaluate = %v; want diameter=3 radius=1.5", got)
	}
}

//-------------------------------------------------------------------//
//                          determinism                              //
//-------------------------------------------------------------------//

// TestDeterminism runs the same constraint sequence on two fresh systems
// and demands byte-identical solution sets.
func TestDeterminism(t *testing.T) {
	build := func() map[string]string {
		a, b := algebra.Sym("a"), algebra.Sym("b")
		product, ratio := algebra.Sym("product"), algebra.Sym("ratio")

		sys, err := system.New([]*equation.Equation{
			equation.Equate(product, algebra.Mul(a, b)),
			equation.Equate(ratio, algebra.Div(a, b)),
		})
		if err != nil {
			t.Fatalf("New error: %v", err)
		}
		if _, err := sys.ConstrainSymbol(ratio); err != nil {
			t.Fatalf("ConstrainSymbol(ratio) error: %v", err)
		}
		if _, err := sys.ConstrainSymbol(product); err != nil {
			t.Fatalf("ConstrainSymbol(product) error: %v", err)
		}

		out := make(map[string]string)
		for s, e := range sys.Solutions() {
			out[s.Name()] = e.String()
		}
		return out
	}

	if diff := cmp.Diff(build(), build()); diff != "" {
		t.Errorf("solutions differ between identical runs (-first +second):\n%s", diff)
	}
}

func TestStatus_String(t *testing.T) {
	for s, want := range map[system.Status]string{
		system.Unconstrained: "Unconstrained",
		system.Constrained:   "Constrained",
		system.Solved:        "Solved",
	} {
		if got := s.String(); got != want {
			t.Errorf("Status(%d).String() = %q; want %q", s, got, want)
		}
	}
}
