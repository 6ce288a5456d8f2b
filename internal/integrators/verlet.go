package integrators

import "github.com/san-kum/gunsim/internal/dynamo"

// Verlet is velocity Verlet for states laid out [velocities..., positions...]
// where the acceleration does not depend on velocity. The gas-gun state
// [velocity, position] satisfies both.
type Verlet struct {
	scratch dynamo.State
}

func NewVerlet() *Verlet {
	return &Verlet{}
}

func (v *Verlet) Step(sys dynamo.System, x dynamo.State, t, dt float64) dynamo.State {
	n := len(x)
	half := n / 2
	if len(v.scratch) != n {
		v.scratch = make(dynamo.State, n)
	}

	result := make(dynamo.State, n)
	dx := sys.Derive(x, t)
	dt2 := dt * dt

	for i := 0; i < half; i++ {
		result[half+i] = x[half+i] + x[i]*dt + 0.5*dx[i]*dt2
	}

	for i := 0; i < half; i++ {
		v.scratch[i] = x[i]
		v.scratch[half+i] = result[half+i]
	}

	dxNew := sys.Derive(v.scratch, t+dt)

	halfDt := 0.5 * dt
	for i := 0; i < half; i++ {
		result[i] = x[i] + (dx[i]+dxNew[i])*halfDt
	}

	return result
}
