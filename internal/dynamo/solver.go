package dynamo

import (
	"context"
	"fmt"
	"math"
)

const (
	safety   = 0.9
	minScale = 0.2
	maxScale = 10.0
	minStep  = 1e-14
)

// Solver integrates a System across every sample of a Grid. With an
// AdaptiveIntegrator it controls the internal step size between output
// samples, shrinking on rejected steps and growing on cheap ones, and
// never steps past the next output time. With a fixed-step integrator
// each grid interval is taken in a single step.
type Solver struct {
	integ Integrator
	tol   float64
}

func NewSolver(integ Integrator, tol float64) *Solver {
	if tol <= 0 {
		tol = 1e-9
	}
	return &Solver{integ: integ, tol: tol}
}

func (s *Solver) Solve(ctx context.Context, sys System, x0 State, grid Grid) (*Result, error) {
	if grid.Step() <= 0 || grid.Len() < 2 {
		return nil, ErrBadGrid
	}
	if len(x0) != sys.StateDim() {
		return nil, fmt.Errorf("dynamo: state dimension %d does not match system dimension %d", len(x0), sys.StateDim())
	}

	times := grid.Times()
	result := &Result{
		States: make([]State, 0, len(times)),
		Times:  times,
	}

	x := x0.Clone()
	result.States = append(result.States, x.Clone())

	adaptive, _ := s.integ.(AdaptiveIntegrator)
	h := grid.Step()
	if adaptive != nil {
		h = grid.Step() / 10
	}

	t := 0.0
	for i := 1; i < len(times); i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		tNext := times[i]
		var err error
		if adaptive != nil {
			x, t, h, err = s.advanceAdaptive(adaptive, sys, x, t, tNext, h, result)
		} else {
			x = s.integ.Step(sys, x, t, tNext-t)
			t = tNext
			result.Steps++
		}
		if err != nil {
			return nil, &SolveError{Time: t, Sample: i, Wrapped: err}
		}
		if !x.IsValid() {
			return nil, &SolveError{Time: t, Sample: i, Wrapped: ErrDiverged}
		}
		result.States = append(result.States, x.Clone())
	}

	return result, nil
}

func (s *Solver) advanceAdaptive(integ AdaptiveIntegrator, sys System, x State, t, tNext, h float64, result *Result) (State, float64, float64, error) {
	eps := 1e-12 * math.Max(1, tNext)
	for t < tNext-eps {
		// Clamp the trial step to the output boundary but keep the
		// unclamped candidate so step size survives across samples.
		stepH := h
		clamped := false
		if t+stepH > tNext {
			stepH = tNext - t
			clamped = true
		}

		xNew, errNorm := integ.StepErr(sys, x, t, stepH)
		ratio := errNorm / s.tol

		if ratio > 1 {
			h = stepH * math.Max(minScale, safety*math.Pow(ratio, -0.25))
			if h < minStep {
				return x, t, h, ErrStepTooSmall
			}
			continue
		}

		if !xNew.IsValid() {
			return x, t, h, ErrDiverged
		}

		x = xNew
		t += stepH
		result.Steps++

		if !clamped {
			if ratio > 0 {
				h = stepH * math.Min(maxScale, safety*math.Pow(ratio, -0.2))
			} else {
				h = stepH * maxScale
			}
		}
	}
	return x, tNext, h, nil
}
