package kinematics

import (
	"errors"
	"fmt"
)

// Error kinds for solver failures. Both are recoverable: the calculation
// is aborted and nothing is written to history.
var (
	// ErrValidation indicates a wrong known/unknown count or a presence
	// pattern matching no formula branch.
	ErrValidation = errors.New("kinematics: invalid combination of inputs")

	// ErrDomain indicates a physically-zero denominator or a negative
	// square root intermediate.
	ErrDomain = errors.New("kinematics: formula domain violated")
)

// SolveError wraps an error kind with the user-facing reason.
type SolveError struct {
	Kind   error
	Reason string
}

func (e *SolveError) Error() string {
	return e.Reason
}

func (e *SolveError) Unwrap() error {
	return e.Kind
}

func validationErr(format string, args ...any) error {
	return &SolveError{Kind: ErrValidation, Reason: fmt.Sprintf(format, args...)}
}

func domainErr(format string, args ...any) error {
	return &SolveError{Kind: ErrDomain, Reason: fmt.Sprintf(format, args...)}
}
