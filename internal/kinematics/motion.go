package kinematics

// Motion solves uniform motion problems over {speed, time, distance}
// using v = s / t.
type Motion struct{}

func NewMotion() *Motion { return &Motion{} }

func (m *Motion) Topic() string { return "motion" }

func (m *Motion) Title() string { return "Basic Motion" }

func (m *Motion) Quantities() []Quantity {
	return []Quantity{Speed, Time, Distance}
}

func (m *Motion) Formulas() []string {
	return []string{"v = s / t"}
}

// Solve requires exactly one of the three quantities to be unknown and
// computes it directly from the other two.
func (m *Motion) Solve(in *InputSet) (*Result, error) {
	speed, haveSpeed := in.Get(Speed)
	t, haveTime := in.Get(Time)
	distance, haveDistance := in.Get(Distance)

	absent := 0
	for _, have := range []bool{haveSpeed, haveTime, haveDistance} {
		if !have {
			absent++
		}
	}
	if absent != 1 {
		return nil, validationErr("must provide exactly 2 values")
	}

	switch {
	case !haveSpeed:
		if t == 0 {
			return nil, domainErr("time cannot be zero")
		}
		return newResult("", Speed, distance/t), nil
	case !haveDistance:
		return newResult("", Distance, speed*t), nil
	default: // time unknown
		if speed == 0 {
			return nil, domainErr("speed cannot be zero")
		}
		return newResult("", Time, distance/speed), nil
	}
}
