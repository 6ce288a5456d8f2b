package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for solver operations.
var (
	// ErrDiverged indicates the integration produced a non-finite state.
	ErrDiverged = errors.New("dynamo: integration diverged (NaN or Inf state)")

	// ErrStepTooSmall indicates the adaptive step size underflowed while
	// trying to meet the tolerance, which points at an unphysical model.
	ErrStepTooSmall = errors.New("dynamo: adaptive step below minimum")

	// ErrBadGrid indicates a grid with a non-positive step or no samples.
	ErrBadGrid = errors.New("dynamo: invalid time grid")
)

// SolveError wraps a solver failure with the time it occurred at.
type SolveError struct {
	Time    float64
	Sample  int
	Wrapped error
}

func (e *SolveError) Error() string {
	return fmt.Sprintf("t=%.6f (sample %d): %v", e.Time, e.Sample, e.Wrapped)
}

func (e *SolveError) Unwrap() error { return e.Wrapped }
