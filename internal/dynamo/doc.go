// Package dynamo provides the core primitives for numerical integration
// of ordinary differential equations over a fixed output time grid:
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE systems (dX/dt = f(X, t))
//   - [Integrator] / [AdaptiveIntegrator]: single-step methods
//   - [Grid]: ordered, fixed-resolution sequence of output times
//   - [Solver]: advances a System across every grid sample, with
//     internal adaptive step control between samples
//
// # Example
//
//	gun := ballistics.NewGun(params)
//	solver := dynamo.NewSolver(integrators.NewRK45(), 1e-9)
//	result, err := solver.Solve(ctx, gun, dynamo.State{0, 0}, grid)
//
// Solver instances are not safe for concurrent use.
package dynamo
