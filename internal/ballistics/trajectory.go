package ballistics

import (
	"errors"
	"fmt"

	"github.com/san-kum/gunsim/internal/dynamo"
)

var (
	// ErrBarrelNotExited indicates the projectile never crossed the
	// barrel length within the simulated time window.
	ErrBarrelNotExited = errors.New("ballistics: projectile did not exit barrel within simulated time")

	// ErrTooFewSamples indicates the time grid was too coarse to leave
	// three samples bracketing the muzzle crossing.
	ErrTooFewSamples = errors.New("ballistics: too few in-barrel samples for muzzle interpolation")
)

// Sample is one reported trajectory row, recomputed from the raw state
// rather than read out of the integrator.
type Sample struct {
	Time          float64 // s
	InjectionRate float64 // mol/s, zero after injection ends
	GaugePressure float64 // Pa
	Acceleration  float64 // m/s2
	Velocity      float64 // m/s
	Position      float64 // m
}

// Trajectory is the in-barrel portion of a solved run. Samples stops
// just before the first out-of-barrel state; ExitIndex is that state's
// index in the solver result, kept for the muzzle fit.
type Trajectory struct {
	Samples   []Sample
	PeakGauge float64 // Pa, running maximum over the samples
	ExitIndex int
}

// BuildTrajectory scans the solver result in time order, recomputing
// pressure and acceleration per sample and tracking the running peak
// gauge pressure. It stops at the first sample whose position strictly
// exceeds the barrel length; that sample is excluded from the table but
// its index is retained for interpolation.
func BuildTrajectory(g *Gun, res *dynamo.Result) (*Trajectory, error) {
	if len(res.States) != len(res.Times) {
		return nil, fmt.Errorf("ballistics: %d states but %d times", len(res.States), len(res.Times))
	}

	barrel := g.Params().BarrelLength
	tr := &Trajectory{ExitIndex: -1}

	for i, x := range res.States {
		t := res.Times[i]
		if x[1] > barrel {
			tr.ExitIndex = i
			break
		}
		gauge := g.GaugePressure(x[1], t)
		if gauge > tr.PeakGauge {
			tr.PeakGauge = gauge
		}
		tr.Samples = append(tr.Samples, Sample{
			Time:          t,
			InjectionRate: g.InjectionRateAt(t),
			GaugePressure: gauge,
			Acceleration:  g.Acceleration(x[1], t),
			Velocity:      x[0],
			Position:      x[1],
		})
	}

	if tr.ExitIndex < 0 {
		return nil, ErrBarrelNotExited
	}
	if tr.ExitIndex < 2 {
		return nil, fmt.Errorf("%w: crossing at sample %d", ErrTooFewSamples, tr.ExitIndex)
	}
	return tr, nil
}
