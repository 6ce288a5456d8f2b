package ballistics

import (
	"fmt"
	"io"
)

const tableHeader = `  time    gas in     Press     Accel     Vel      Pos
   ms      mol/s      psig      m/s2     m/s       m
`

// WriteTable emits one fixed-width row per in-barrel sample followed by
// the muzzle summary line: exit time (ms), injected gas volume (L),
// peak gauge pressure (psig), exit velocity (m/s), barrel length (m).
// Output is byte-stable for identical inputs.
func WriteTable(w io.Writer, tr *Trajectory, est MuzzleEstimate, gasLiters float64) error {
	if _, err := io.WriteString(w, tableHeader); err != nil {
		return err
	}
	for _, s := range tr.Samples {
		_, err := fmt.Fprintf(w, "%5.1f %9.5f %10.3f%10.2f %8.4f %8.4f\n",
			s.Time*1000.0,
			s.InjectionRate,
			s.GaugePressure/PascalsPerPSI,
			s.Acceleration,
			s.Velocity,
			s.Position,
		)
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%7.3f %7.5f %10.3f           %8.4f %8.4f\n",
		est.ExitTime*1000.0,
		gasLiters,
		est.PeakGauge/PascalsPerPSI,
		est.ExitVelocity,
		est.BarrelLength,
	)
	return err
}
