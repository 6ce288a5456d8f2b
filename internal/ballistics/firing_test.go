package ballistics_test

import (
	"bytes"
	"context"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gunsim/internal/ballistics"
	"github.com/san-kum/gunsim/internal/config"
	"github.com/san-kum/gunsim/internal/dynamo"
	"github.com/san-kum/gunsim/internal/integrators"
)

func firePreset(name string) *ballistics.Outcome {
	cfg := config.GetPreset(name)
	Expect(cfg).NotTo(BeNil())
	Expect(cfg.Validate()).To(Succeed())

	integ, err := integrators.New(cfg.Solver.Integrator)
	Expect(err).NotTo(HaveOccurred())

	solver := dynamo.NewSolver(integ, cfg.Solver.Tolerance)
	out, err := ballistics.Run(context.Background(), cfg.Inputs(), cfg.TimeGrid(), solver)
	Expect(err).NotTo(HaveOccurred())
	return out
}

var _ = Describe("Firing the preset guns", func() {
	Describe("long-barrel", func() {
		var out *ballistics.Outcome

		BeforeEach(func() {
			out = firePreset("long-barrel")
		})

		It("exits the muzzle at the 28th sample", func() {
			Expect(out.Trajectory.ExitIndex).To(Equal(28))
			Expect(out.Trajectory.Samples).To(HaveLen(28))
		})

		It("reproduces the reference muzzle conditions", func() {
			Expect(out.Muzzle.ExitTime * 1000.0).To(BeNumerically("~", 27.1343, 0.005))
			Expect(out.Muzzle.ExitVelocity).To(BeNumerically("~", 115.2256, 0.01))
			Expect(out.Muzzle.PeakGauge / ballistics.PascalsPerPSI).To(BeNumerically("~", 110.250, 0.01))
		})

		It("starts from rest at ambient pressure", func() {
			first := out.Trajectory.Samples[0]
			Expect(first.Velocity).To(BeZero())
			Expect(first.Position).To(BeZero())
			Expect(first.GaugePressure).To(BeNumerically("~", 0, 1e-6))
		})

		It("renders a byte-stable table", func() {
			render := func() string {
				var buf bytes.Buffer
				o := firePreset("long-barrel")
				err := ballistics.WriteTable(&buf, o.Trajectory, o.Muzzle, 4.48)
				Expect(err).NotTo(HaveOccurred())
				return buf.String()
			}
			table := render()
			Expect(render()).To(Equal(table))
			Expect(strings.Count(table, "\n")).To(Equal(31)) // header 2 + rows 28 + summary
		})
	})

	Describe("short-barrel", func() {
		var out *ballistics.Outcome

		BeforeEach(func() {
			out = firePreset("short-barrel")
		})

		It("exits the muzzle at the 20th sample", func() {
			Expect(out.Trajectory.ExitIndex).To(Equal(20))
		})

		It("reproduces the reference muzzle conditions", func() {
			Expect(out.Muzzle.ExitTime * 1000.0).To(BeNumerically("~", 19.7807, 0.005))
			Expect(out.Muzzle.ExitVelocity).To(BeNumerically("~", 95.3387, 0.01))
			Expect(out.Muzzle.PeakGauge / ballistics.PascalsPerPSI).To(BeNumerically("~", 81.8205, 0.01))
		})

		It("is slower than the long barrel despite the stiffer charge rate", func() {
			long := firePreset("long-barrel")
			Expect(out.Muzzle.ExitVelocity).To(BeNumerically("<", long.Muzzle.ExitVelocity))
		})
	})

	Describe("integrator agreement", func() {
		It("matches rk45 with fixed-step rk4 to within table precision", func() {
			cfg := config.GetPreset("long-barrel")
			ref := firePreset("long-barrel")

			integ, err := integrators.New("rk4")
			Expect(err).NotTo(HaveOccurred())
			solver := dynamo.NewSolver(integ, cfg.Solver.Tolerance)
			out, err := ballistics.Run(context.Background(), cfg.Inputs(), cfg.TimeGrid(), solver)
			Expect(err).NotTo(HaveOccurred())

			Expect(out.Muzzle.ExitVelocity).To(BeNumerically("~", ref.Muzzle.ExitVelocity, 0.01))
			Expect(out.Muzzle.ExitTime).To(BeNumerically("~", ref.Muzzle.ExitTime, 1e-5))
		})
	})
})
