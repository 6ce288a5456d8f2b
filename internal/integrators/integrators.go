// Package integrators implements single-step ODE methods: explicit
// Euler, classic RK4, the adaptive Dormand-Prince RK45 pair, and
// velocity Verlet for separable second-order systems.
package integrators

import (
	"fmt"

	"github.com/san-kum/gunsim/internal/dynamo"
)

// New returns the integrator registered under name.
func New(name string) (dynamo.Integrator, error) {
	switch name {
	case "euler":
		return NewEuler(), nil
	case "rk4":
		return NewRK4(), nil
	case "rk45":
		return NewRK45(), nil
	case "verlet":
		return NewVerlet(), nil
	default:
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
}

// Names lists the registered integrator names.
func Names() []string {
	return []string{"euler", "rk4", "rk45", "verlet"}
}
