package kinematics

import "fmt"

// Rule solves one formula family. The variant set is closed: motion,
// equation of motion and free fall.
type Rule interface {
	Topic() string
	Title() string
	Quantities() []Quantity
	Formulas() []string
	Solve(in *InputSet) (*Result, error)
}

// Registry maps topic names to solver rules.
type Registry struct {
	rules map[string]Rule
	order []string
}

func NewRegistry() *Registry {
	r := &Registry{rules: make(map[string]Rule)}
	r.register(NewMotion())
	r.register(NewEquationOfMotion())
	r.register(NewFreeFall())
	return r
}

func (r *Registry) register(rule Rule) {
	r.rules[rule.Topic()] = rule
	r.order = append(r.order, rule.Topic())
}

func (r *Registry) Get(topic string) (Rule, error) {
	rule, ok := r.rules[topic]
	if !ok {
		return nil, fmt.Errorf("unknown topic: %s", topic)
	}
	return rule, nil
}

// Topics returns topic names in registration order.
func (r *Registry) Topics() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
