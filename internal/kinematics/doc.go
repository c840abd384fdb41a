// Package kinematics provides the variable-solving engine for basic
// kinematics problems.
//
// The package defines the fundamental types for single-formula,
// single-unknown solving:
//
//   - [Quantity]: a named scalar physical variable
//   - [InputSet]: ordered quantity -> optional value mapping (nil = unknown)
//   - [Result]: solved value(s) plus the formula label that produced them
//   - [Rule]: one solver per formula family (motion, equation of motion, free fall)
//   - [Registry]: topic name -> Rule lookup
//
// # Example
//
//	rule, _ := kinematics.NewRegistry().Get("motion")
//	in := kinematics.NewInputSet(rule.Quantities()...)
//	in.Set(kinematics.Distance, 100)
//	in.Set(kinematics.Speed, 20)
//	res, _ := rule.Solve(in) // res.Values[kinematics.Time] == 5
//
// # Branch Precedence
//
// Equation-of-motion and free-fall inputs can match more than one formula.
// Rules resolve this with a fixed first-match branch order, so a given
// presence pattern always solves the same quantity with the same formula.
package kinematics
