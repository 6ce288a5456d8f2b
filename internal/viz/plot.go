// Package viz renders trajectories in the terminal: post-run ascii
// charts and a live bubbletea view of a firing.
package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/gunsim/internal/ballistics"
)

const (
	plotWidth  = 80
	plotHeight = 10
)

// PlotTrajectory renders gauge pressure, velocity, and position charts
// for the in-barrel samples.
func PlotTrajectory(tr *ballistics.Trajectory) string {
	pressure := make([]float64, len(tr.Samples))
	velocity := make([]float64, len(tr.Samples))
	position := make([]float64, len(tr.Samples))
	for i, s := range tr.Samples {
		pressure[i] = s.GaugePressure / ballistics.PascalsPerPSI
		velocity[i] = s.Velocity
		position[i] = s.Position
	}

	var b strings.Builder
	for _, chart := range []struct {
		data    []float64
		caption string
	}{
		{pressure, "gauge pressure (psig)"},
		{velocity, "velocity (m/s)"},
		{position, "position (m)"},
	} {
		graph := asciigraph.Plot(chart.data,
			asciigraph.Height(plotHeight),
			asciigraph.Width(plotWidth),
			asciigraph.Caption(chart.caption),
		)
		b.WriteString(graph)
		b.WriteString("\n\n")
	}
	return b.String()
}

// Summary formats the muzzle estimate for the plot footer.
func Summary(est ballistics.MuzzleEstimate) string {
	return fmt.Sprintf("muzzle exit: t=%.3f ms  v=%.4f m/s  peak=%.3f psig  barrel=%.4f m",
		est.ExitTime*1000.0,
		est.ExitVelocity,
		est.PeakGauge/ballistics.PascalsPerPSI,
		est.BarrelLength,
	)
}
