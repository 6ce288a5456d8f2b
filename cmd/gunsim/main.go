package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/gunsim/internal/ballistics"
	"github.com/san-kum/gunsim/internal/config"
	"github.com/san-kum/gunsim/internal/dynamo"
	"github.com/san-kum/gunsim/internal/integrators"
	"github.com/san-kum/gunsim/internal/viz"
)

var (
	configFile string
	preset     string
	// Gun inputs
	massGrams   float64
	boreIn      float64
	barrelIn    float64
	voidIn      float64
	frictionPSI float64
	gasLiters   float64
	injectionMs float64
	gasTempF    float64
	// Grid and solver
	stepMs     float64
	durationMs float64
	integrator string
	tolerance  float64
)

// main wires the gunsim CLI: with no subcommand it runs the built-in
// long-barrel firing and prints the trajectory table, the original
// one-shot behavior. It exits with status 1 on any fatal condition.
func main() {
	rootCmd := &cobra.Command{
		Use:   "gunsim",
		Short: "interior ballistics of a gas-driven projectile",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTable(config.Default())
		},
	}
	rootCmd.SilenceUsage = true

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a firing and print the trajectory table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}
			return runTable(cfg)
		},
	}
	addFiringFlags(runCmd)

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "run a firing and chart pressure, velocity, and position",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}
			out, err := simulate(cfg)
			if err != nil {
				return err
			}
			fmt.Print(viz.PlotTrajectory(out.Trajectory))
			fmt.Println(viz.Summary(out.Muzzle))
			return nil
		},
	}
	addFiringFlags(plotCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "watch a firing in slow motion",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			params, err := cfg.Inputs().Derive()
			if err != nil {
				return err
			}
			integ, err := integrators.New(cfg.Solver.Integrator)
			if err != nil {
				return err
			}
			dt := cfg.Grid.StepMs / 1000.0 / 10.0
			return viz.RunLive(ballistics.NewGun(params), integ, dt)
		},
	}
	addFiringFlags(liveCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset firings",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(runCmd, plotCmd, liveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addFiringFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "preset firing")
	cmd.Flags().Float64Var(&massGrams, "mass", 85.0, "projectile mass (g)")
	cmd.Flags().Float64Var(&boreIn, "bore", 1.5, "bore diameter (in)")
	cmd.Flags().Float64Var(&barrelIn, "barrel", 78.74, "barrel length (in)")
	cmd.Flags().Float64Var(&voidIn, "void", 1.75, "void length behind projectile (in)")
	cmd.Flags().Float64Var(&frictionPSI, "friction", 0.493129, "barrel friction back-pressure (psi)")
	cmd.Flags().Float64Var(&gasLiters, "gas", 4.48, "injected gas volume at STP (L)")
	cmd.Flags().Float64Var(&injectionMs, "duration", 40.0, "gas injection duration (ms)")
	cmd.Flags().Float64Var(&gasTempF, "temp", 400.0, "gas injection temperature (F)")
	cmd.Flags().Float64Var(&stepMs, "dt", config.DefaultStepMs, "output time step (ms)")
	cmd.Flags().Float64Var(&durationMs, "time", 70.0, "simulated time window (ms)")
	cmd.Flags().StringVar(&integrator, "integrator", config.DefaultIntegrator, "integrator")
	cmd.Flags().Float64Var(&tolerance, "tol", config.DefaultTolerance, "adaptive solver tolerance")
}

// buildConfig resolves precedence: defaults, then preset, then config
// file, then any explicitly set flags.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("mass") {
		cfg.Gun.MassGrams = massGrams
	}
	if flags.Changed("bore") {
		cfg.Gun.BoreDiameterIn = boreIn
	}
	if flags.Changed("barrel") {
		cfg.Gun.BarrelLengthIn = barrelIn
	}
	if flags.Changed("void") {
		cfg.Gun.VoidLengthIn = voidIn
	}
	if flags.Changed("friction") {
		cfg.Gun.FrictionPSI = frictionPSI
	}
	if flags.Changed("gas") {
		cfg.Gun.GasVolumeL = gasLiters
	}
	if flags.Changed("duration") {
		cfg.Gun.InjectionMs = injectionMs
	}
	if flags.Changed("temp") {
		cfg.Gun.GasTempF = gasTempF
	}
	if flags.Changed("dt") {
		cfg.Grid.StepMs = stepMs
	}
	if flags.Changed("time") {
		cfg.Grid.DurationMs = durationMs
	}
	if flags.Changed("integrator") {
		cfg.Solver.Integrator = integrator
	}
	if flags.Changed("tol") {
		cfg.Solver.Tolerance = tolerance
	}

	return cfg, nil
}

func simulate(cfg *config.Config) (*ballistics.Outcome, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	integ, err := integrators.New(cfg.Solver.Integrator)
	if err != nil {
		return nil, err
	}
	solver := dynamo.NewSolver(integ, cfg.Solver.Tolerance)
	return ballistics.Run(context.Background(), cfg.Inputs(), cfg.TimeGrid(), solver)
}

func runTable(cfg *config.Config) error {
	out, err := simulate(cfg)
	if err != nil {
		return err
	}
	return ballistics.WriteTable(os.Stdout, out.Trajectory, out.Muzzle, cfg.Gun.GasVolumeL)
}
