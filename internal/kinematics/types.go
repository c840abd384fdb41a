package kinematics

import "strings"

// Quantity names a scalar physical variable.
type Quantity string

const (
	Speed           Quantity = "speed"
	Time            Quantity = "time"
	Distance        Quantity = "distance"
	InitialVelocity Quantity = "initial_velocity"
	FinalVelocity   Quantity = "final_velocity"
	Acceleration    Quantity = "acceleration"
	Height          Quantity = "height"
)

// Gravity is the free-fall acceleration constant in m/s².
const Gravity = 9.8

var units = map[Quantity]string{
	Speed:           "m/s",
	Time:            "s",
	Distance:        "m",
	InitialVelocity: "m/s",
	FinalVelocity:   "m/s",
	Acceleration:    "m/s²",
	Height:          "m",
}

// Unit returns the display unit for a quantity, or "" if unknown.
func Unit(q Quantity) string { return units[q] }

// Label returns a human-readable name, e.g. "Initial Velocity".
func Label(q Quantity) string {
	parts := strings.Split(string(q), "_")
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}

// InputSet maps quantities to optional values. A nil value marks the
// quantity as unknown, i.e. the candidate to solve for. Iteration order
// is the order quantities were added.
type InputSet struct {
	order  []Quantity
	values map[Quantity]*float64
}

// NewInputSet creates an input set with every quantity unknown.
func NewInputSet(quantities ...Quantity) *InputSet {
	s := &InputSet{values: make(map[Quantity]*float64, len(quantities))}
	for _, q := range quantities {
		s.order = append(s.order, q)
		s.values[q] = nil
	}
	return s
}

// Quantities returns the quantities in insertion order.
func (s *InputSet) Quantities() []Quantity {
	out := make([]Quantity, len(s.order))
	copy(out, s.order)
	return out
}

// Set records a known value for q, adding q to the set if needed.
func (s *InputSet) Set(q Quantity, v float64) {
	if _, ok := s.values[q]; !ok {
		s.order = append(s.order, q)
	}
	val := v
	s.values[q] = &val
}

// Unset marks q as unknown again.
func (s *InputSet) Unset(q Quantity) {
	if _, ok := s.values[q]; !ok {
		s.order = append(s.order, q)
	}
	s.values[q] = nil
}

// Get returns the value of q and whether it is known.
func (s *InputSet) Get(q Quantity) (float64, bool) {
	v := s.values[q]
	if v == nil {
		return 0, false
	}
	return *v, true
}

// Known reports whether q has a value.
func (s *InputSet) Known(q Quantity) bool {
	return s.values[q] != nil
}

// Absent returns the unknown quantities in insertion order.
func (s *InputSet) Absent() []Quantity {
	var out []Quantity
	for _, q := range s.order {
		if s.values[q] == nil {
			out = append(out, q)
		}
	}
	return out
}

// Snapshot copies the set into a plain map for persistence. Unknown
// quantities map to nil, which encodes as JSON null.
func (s *InputSet) Snapshot() map[string]*float64 {
	out := make(map[string]*float64, len(s.order))
	for _, q := range s.order {
		if v := s.values[q]; v != nil {
			val := *v
			out[string(q)] = &val
		} else {
			out[string(q)] = nil
		}
	}
	return out
}

// Result holds the solved quantities and the formula label used.
// Formula is empty for single-formula families.
type Result struct {
	Formula string
	Values  map[Quantity]float64
}

func newResult(formula string, q Quantity, v float64) *Result {
	return &Result{Formula: formula, Values: map[Quantity]float64{q: v}}
}

// Snapshot copies the result into a plain map for persistence, with the
// formula label stored under "formula" when present.
func (r *Result) Snapshot() map[string]any {
	out := make(map[string]any, len(r.Values)+1)
	for q, v := range r.Values {
		out[string(q)] = v
	}
	if r.Formula != "" {
		out["formula"] = r.Formula
	}
	return out
}
