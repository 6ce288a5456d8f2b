package ballistics

import (
	"fmt"

	"github.com/san-kum/gunsim/internal/dynamo"
	"github.com/san-kum/gunsim/internal/interp"
)

// MuzzleEstimate is the interpolated exit condition at the muzzle.
type MuzzleEstimate struct {
	ExitTime     float64 // s
	ExitVelocity float64 // m/s
	PeakGauge    float64 // Pa, from the in-barrel trajectory
	BarrelLength float64 // m
}

// EstimateMuzzle fits degree-2 Lagrange polynomials through the three
// samples bracketing the crossing (the two last in-barrel samples and
// the first out-of-barrel one), with position as the independent
// variable, and evaluates both at the barrel length.
func EstimateMuzzle(g *Gun, res *dynamo.Result, tr *Trajectory) (MuzzleEstimate, error) {
	n := tr.ExitIndex
	positions := make([]float64, 3)
	velocities := make([]float64, 3)
	times := make([]float64, 3)
	for k := 0; k < 3; k++ {
		i := n - 2 + k
		positions[k] = res.States[i][1]
		velocities[k] = res.States[i][0]
		times[k] = res.Times[i]
	}

	velFit, err := interp.NewPolynomial(positions, velocities)
	if err != nil {
		return MuzzleEstimate{}, fmt.Errorf("velocity fit: %w", err)
	}
	timeFit, err := interp.NewPolynomial(positions, times)
	if err != nil {
		return MuzzleEstimate{}, fmt.Errorf("time fit: %w", err)
	}

	barrel := g.Params().BarrelLength
	return MuzzleEstimate{
		ExitTime:     timeFit.Eval(barrel),
		ExitVelocity: velFit.Eval(barrel),
		PeakGauge:    tr.PeakGauge,
		BarrelLength: barrel,
	}, nil
}
