package dynamo

import "math"

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// System is the right-hand side of a first-order ODE dX/dt = f(X, t).
type System interface {
	Derive(x State, t float64) State
	StateDim() int
}

// Integrator advances a state by one step of size dt.
type Integrator interface {
	Step(sys System, x State, t, dt float64) State
}

// AdaptiveIntegrator additionally reports an embedded error estimate,
// already scaled against the local state magnitude, so the solver can
// accept or reject the step against a tolerance.
type AdaptiveIntegrator interface {
	Integrator
	StepErr(sys System, x State, t, dt float64) (State, float64)
}

// Grid is an ordered, fixed-resolution sequence of output times
// starting at t=0. Immutable once constructed.
type Grid struct {
	step    float64
	samples int
}

// NewGrid builds a grid of samples+1 times: 0, step, 2·step, ...
func NewGrid(step float64, samples int) Grid {
	return Grid{step: step, samples: samples}
}

func (g Grid) Step() float64 { return g.step }
func (g Grid) Len() int      { return g.samples + 1 }

func (g Grid) Times() []float64 {
	ts := make([]float64, g.Len())
	for i := range ts {
		ts[i] = float64(i) * g.step
	}
	return ts
}

// Result holds the state at every grid sample.
type Result struct {
	States []State
	Times  []float64
	Steps  int // internal integrator steps taken
}
