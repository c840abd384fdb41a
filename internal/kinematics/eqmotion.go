package kinematics

import "math"

// Formula labels for the equation-of-motion family.
const (
	FormulaVUAT = "v = u + at"
	FormulaSUT  = "s = ut + 0.5at²"
	FormulaV2U2 = "v² = u² + 2as"
)

// EquationOfMotion solves uniformly-accelerated motion over
// {initial_velocity, final_velocity, acceleration, time, distance}.
//
// Three formulas overlap; the one applied is the first (in the order
// v = u + at, s = ut + 0.5at², v² = u² + 2as) whose four quantities have
// exactly one unknown. The branch order is part of the contract: some
// presence patterns satisfy more than one formula, and reordering the
// checks would change which quantity gets solved.
type EquationOfMotion struct{}

func NewEquationOfMotion() *EquationOfMotion { return &EquationOfMotion{} }

func (e *EquationOfMotion) Topic() string { return "equation_of_motion" }

func (e *EquationOfMotion) Title() string { return "Equation of Motion" }

func (e *EquationOfMotion) Quantities() []Quantity {
	return []Quantity{InitialVelocity, FinalVelocity, Acceleration, Time, Distance}
}

func (e *EquationOfMotion) Formulas() []string {
	return []string{FormulaVUAT, FormulaSUT, FormulaV2U2}
}

func (e *EquationOfMotion) Solve(in *InputSet) (*Result, error) {
	u, haveU := in.Get(InitialVelocity)
	v, haveV := in.Get(FinalVelocity)
	a, haveA := in.Get(Acceleration)
	t, haveT := in.Get(Time)
	s, haveS := in.Get(Distance)

	switch {
	// v = u + at
	case !haveV && haveU && haveA && haveT:
		return newResult(FormulaVUAT, FinalVelocity, u+a*t), nil
	case haveV && !haveU && haveA && haveT:
		return newResult(FormulaVUAT, InitialVelocity, v-a*t), nil
	case haveV && haveU && !haveA && haveT:
		if t == 0 {
			return nil, domainErr("time cannot be zero")
		}
		return newResult(FormulaVUAT, Acceleration, (v-u)/t), nil
	case haveV && haveU && haveA && !haveT:
		if a == 0 {
			return nil, domainErr("acceleration cannot be zero")
		}
		return newResult(FormulaVUAT, Time, (v-u)/a), nil

	// s = ut + 0.5at²
	case !haveS && haveU && haveT && haveA:
		return newResult(FormulaSUT, Distance, u*t+0.5*a*t*t), nil
	case haveS && !haveU && haveT && haveA:
		if t == 0 {
			return nil, domainErr("time cannot be zero")
		}
		return newResult(FormulaSUT, InitialVelocity, (s-0.5*a*t*t)/t), nil
	case haveS && haveU && haveT && !haveA:
		if t == 0 {
			return nil, domainErr("time cannot be zero")
		}
		return newResult(FormulaSUT, Acceleration, 2*(s-u*t)/(t*t)), nil

	// v² = u² + 2as
	case !haveV && haveU && haveA && haveS:
		sq := u*u + 2*a*s
		if sq < 0 {
			return nil, domainErr("cannot take square root of a negative number")
		}
		return newResult(FormulaV2U2, FinalVelocity, math.Sqrt(sq)), nil
	case haveV && !haveU && haveA && haveS:
		sq := v*v - 2*a*s
		if sq < 0 {
			return nil, domainErr("cannot take square root of a negative number")
		}
		return newResult(FormulaV2U2, InitialVelocity, math.Sqrt(sq)), nil
	case haveV && haveU && !haveA && haveS:
		if s == 0 {
			return nil, domainErr("distance cannot be zero")
		}
		return newResult(FormulaV2U2, Acceleration, (v*v-u*u)/(2*s)), nil
	case haveV && haveU && haveA && !haveS:
		if a == 0 {
			return nil, domainErr("acceleration cannot be zero")
		}
		return newResult(FormulaV2U2, Distance, (v*v-u*u)/(2*a)), nil

	default:
		return nil, validationErr("insufficient or invalid combination of inputs")
	}
}
