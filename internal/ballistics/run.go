// Package ballistics models a projectile propelled down a smooth barrel
// by a transient injection of hot gas: unit derivation, the ODE model,
// trajectory post-processing, and the interpolated muzzle estimate.
package ballistics

import (
	"context"

	"github.com/san-kum/gunsim/internal/dynamo"
)

// Outcome bundles everything one firing produces.
type Outcome struct {
	Gun        *Gun
	Result     *dynamo.Result
	Trajectory *Trajectory
	Muzzle     MuzzleEstimate
}

// Run executes the whole pipeline: derive parameters, integrate over
// the grid, post-process the trajectory, estimate the muzzle crossing.
func Run(ctx context.Context, in Inputs, grid dynamo.Grid, solver *dynamo.Solver) (*Outcome, error) {
	params, err := in.Derive()
	if err != nil {
		return nil, err
	}
	gun := NewGun(params)

	res, err := solver.Solve(ctx, gun, dynamo.State{0, 0}, grid)
	if err != nil {
		return nil, err
	}

	tr, err := BuildTrajectory(gun, res)
	if err != nil {
		return nil, err
	}

	est, err := EstimateMuzzle(gun, res, tr)
	if err != nil {
		return nil, err
	}

	return &Outcome{Gun: gun, Result: res, Trajectory: tr, Muzzle: est}, nil
}
