// Package calculator wires input sets through solver rules and forwards
// successful results to the history log.
package calculator

import (
	"log"

	"github.com/R4ns0m101/physika/internal/kinematics"
)

// Sink receives completed calculations. *history.Log satisfies it.
type Sink interface {
	Append(topic string, inputs map[string]*float64, results map[string]any) error
}

// Calculator orchestrates one calculation at a time: resolve the topic,
// solve, and record the outcome. Solver failures are returned to the
// caller and nothing is logged; history write failures are demoted to
// warnings so a computed result is never lost to a disk error.
type Calculator struct {
	registry *kinematics.Registry
	sink     Sink
}

func New(registry *kinematics.Registry, sink Sink) *Calculator {
	return &Calculator{registry: registry, sink: sink}
}

func (c *Calculator) Registry() *kinematics.Registry { return c.registry }

// Solve runs the rule for topic against in and records the result.
func (c *Calculator) Solve(topic string, in *kinematics.InputSet) (*kinematics.Result, error) {
	rule, err := c.registry.Get(topic)
	if err != nil {
		return nil, err
	}

	res, err := rule.Solve(in)
	if err != nil {
		return nil, err
	}

	if c.sink != nil {
		if err := c.sink.Append(topic, in.Snapshot(), res.Snapshot()); err != nil {
			log.Printf("warning: could not save history: %v", err)
		}
	}
	return res, nil
}
