package kinematics

import (
	"errors"
	"math"
	"testing"
)

type eqValues struct {
	u, v, a, t, s *float64
}

func eqInput(vals eqValues) *InputSet {
	in := NewInputSet(InitialVelocity, FinalVelocity, Acceleration, Time, Distance)
	if vals.u != nil {
		in.Set(InitialVelocity, *vals.u)
	}
	if vals.v != nil {
		in.Set(FinalVelocity, *vals.v)
	}
	if vals.a != nil {
		in.Set(Acceleration, *vals.a)
	}
	if vals.t != nil {
		in.Set(Time, *vals.t)
	}
	if vals.s != nil {
		in.Set(Distance, *vals.s)
	}
	return in
}

func TestEquationOfMotion_SolvePaths(t *testing.T) {
	tests := []struct {
		name    string
		in      eqValues
		want    Quantity
		value   float64
		formula string
	}{
		// v = u + at
		{"v from u,a,t", eqValues{u: f(0), a: f(2), t: f(3)}, FinalVelocity, 6, FormulaVUAT},
		{"u from v,a,t", eqValues{v: f(6), a: f(2), t: f(3)}, InitialVelocity, 0, FormulaVUAT},
		{"a from v,u,t", eqValues{v: f(6), u: f(0), t: f(3)}, Acceleration, 2, FormulaVUAT},
		{"t from v,u,a", eqValues{v: f(6), u: f(0), a: f(2)}, Time, 3, FormulaVUAT},

		// s = ut + 0.5at² (v must be known too, or v = u + at fires first)
		{"s from v,u,t,a", eqValues{v: f(8), u: f(2), t: f(3), a: f(2)}, Distance, 15, FormulaSUT},
		{"u from s,t,a", eqValues{s: f(15), t: f(3), a: f(2)}, InitialVelocity, 2, FormulaSUT},
		{"a from s,u,t", eqValues{s: f(15), u: f(2), t: f(3)}, Acceleration, 2, FormulaSUT},

		// v² = u² + 2as; the solve-s branch of this formula is shadowed:
		// with v, u, a known, a missing t resolves via v = u + at and a
		// known t resolves s via s = ut + 0.5at²
		{"v from u,a,s", eqValues{u: f(3), a: f(2), s: f(4)}, FinalVelocity, 5, FormulaV2U2},
		{"u from v,a,s", eqValues{v: f(5), a: f(2), s: f(4)}, InitialVelocity, 3, FormulaV2U2},
		{"a from v,u,s", eqValues{v: f(5), u: f(3), s: f(4)}, Acceleration, 2, FormulaV2U2},
		{"t before s when both unknown", eqValues{v: f(5), u: f(3), a: f(2)}, Time, 1, FormulaVUAT},
	}

	e := NewEquationOfMotion()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := e.Solve(eqInput(tt.in))
			if err != nil {
				t.Fatalf("Solve() error = %v", err)
			}
			if res.Formula != tt.formula {
				t.Errorf("formula = %q, want %q", res.Formula, tt.formula)
			}
			got, ok := res.Values[tt.want]
			if !ok {
				t.Fatalf("expected %s in result, got %v", tt.want, res.Values)
			}
			if math.Abs(got-tt.value) > 1e-9 {
				t.Errorf("%s = %v, want %v", tt.want, got, tt.value)
			}
		})
	}
}

func TestEquationOfMotion_DomainGuards(t *testing.T) {
	tests := []struct {
		name string
		in   eqValues
	}{
		{"a with time=0", eqValues{v: f(6), u: f(0), t: f(0)}},
		{"t with acceleration=0", eqValues{v: f(6), u: f(0), a: f(0)}},
		{"u with time=0 (displacement)", eqValues{s: f(15), t: f(0), a: f(2)}},
		{"a with time=0 (displacement)", eqValues{s: f(15), u: f(2), t: f(0)}},
		{"v with negative square", eqValues{u: f(3), a: f(-10), s: f(5)}},
		{"u with negative square", eqValues{v: f(3), a: f(10), s: f(5)}},
		{"a with distance=0", eqValues{v: f(5), u: f(3), s: f(0)}},
	}

	e := NewEquationOfMotion()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := e.Solve(eqInput(tt.in))
			if !errors.Is(err, ErrDomain) {
				t.Errorf("Solve() = %v, error %v, want ErrDomain", res, err)
			}
		})
	}
}

func TestEquationOfMotion_NoMatchingBranch(t *testing.T) {
	tests := []struct {
		name string
		in   eqValues
	}{
		{"all known", eqValues{u: f(0), v: f(6), a: f(2), t: f(3), s: f(9)}},
		{"all unknown", eqValues{}},
		{"only u and v", eqValues{u: f(0), v: f(6)}},
		{"only time", eqValues{t: f(3)}},
	}

	e := NewEquationOfMotion()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Solve(eqInput(tt.in))
			if !errors.Is(err, ErrValidation) {
				t.Errorf("Solve() error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestEquationOfMotion_RoundTrip(t *testing.T) {
	e := NewEquationOfMotion()

	res, err := e.Solve(eqInput(eqValues{u: f(0), a: f(2), t: f(3)}))
	if err != nil {
		t.Fatal(err)
	}
	v := res.Values[FinalVelocity]
	if math.Abs(v-6) > 1e-9 {
		t.Fatalf("v = %v, want 6", v)
	}

	res, err = e.Solve(eqInput(eqValues{v: f(v), a: f(2), t: f(3)}))
	if err != nil {
		t.Fatal(err)
	}
	if u := res.Values[InitialVelocity]; math.Abs(u) > 1e-9 {
		t.Errorf("u = %v, want 0", u)
	}
}
