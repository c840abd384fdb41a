package kinematics

import "math"

// Formula labels for the free-fall family.
const (
	FormulaVGT  = "v = gt"
	FormulaV2GH = "v² = 2gh"
	FormulaHGT2 = "h = 0.5gt²"
)

// FreeFall solves free-fall problems over {final_velocity, height, time}
// with gravity fixed at 9.8 m/s². Exactly one quantity must be unknown.
//
// The v = gt pair is checked before the height formulas, so when both
// height and time are known the unknown velocity comes from v = gt, not
// v² = 2gh. The branch order is deliberate and part of the contract.
type FreeFall struct{}

func NewFreeFall() *FreeFall { return &FreeFall{} }

func (f *FreeFall) Topic() string { return "free_fall" }

func (f *FreeFall) Title() string { return "Free Fall" }

func (f *FreeFall) Quantities() []Quantity {
	return []Quantity{FinalVelocity, Height, Time}
}

func (f *FreeFall) Formulas() []string {
	return []string{FormulaVGT, FormulaV2GH, FormulaHGT2}
}

func (f *FreeFall) Solve(in *InputSet) (*Result, error) {
	v, haveV := in.Get(FinalVelocity)
	h, haveH := in.Get(Height)
	t, haveT := in.Get(Time)

	absent := 0
	for _, have := range []bool{haveV, haveH, haveT} {
		if !have {
			absent++
		}
	}
	if absent != 1 {
		return nil, validationErr("must provide exactly 2 values")
	}

	switch {
	// v = gt
	case !haveV && haveT:
		return newResult(FormulaVGT, FinalVelocity, Gravity*t), nil
	case !haveT && haveV:
		return newResult(FormulaVGT, Time, v/Gravity), nil

	// v² = 2gh
	case !haveV && haveH:
		return newResult(FormulaV2GH, FinalVelocity, math.Sqrt(2*Gravity*h)), nil
	case !haveH && haveV:
		return newResult(FormulaV2GH, Height, v*v/(2*Gravity)), nil

	// h = 0.5gt²
	case !haveH && haveT:
		return newResult(FormulaHGT2, Height, 0.5*Gravity*t*t), nil
	case !haveT && haveH:
		return newResult(FormulaHGT2, Time, math.Sqrt(2*h/Gravity)), nil

	default:
		return nil, validationErr("insufficient or invalid combination of inputs")
	}
}
