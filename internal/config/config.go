package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/gunsim/internal/ballistics"
	"github.com/san-kum/gunsim/internal/dynamo"
)

const (
	DefaultStepMs     = 1.0
	DefaultTolerance  = 1e-9
	DefaultIntegrator = "rk45"
)

type Config struct {
	Gun    GunConfig    `yaml:"gun"`
	Grid   GridConfig   `yaml:"grid"`
	Solver SolverConfig `yaml:"solver"`
}

// GunConfig mirrors ballistics.Inputs in the mixed units users specify.
type GunConfig struct {
	MassGrams      float64 `yaml:"mass_grams"`
	BoreDiameterIn float64 `yaml:"bore_diameter_in"`
	BarrelLengthIn float64 `yaml:"barrel_length_in"`
	VoidLengthIn   float64 `yaml:"void_length_in"`
	FrictionPSI    float64 `yaml:"friction_psi"`
	GasVolumeL     float64 `yaml:"gas_volume_l"`
	InjectionMs    float64 `yaml:"injection_ms"`
	GasTempF       float64 `yaml:"gas_temp_f"`
}

type GridConfig struct {
	StepMs     float64 `yaml:"step_ms"`
	DurationMs float64 `yaml:"duration_ms"`
}

type SolverConfig struct {
	Integrator string  `yaml:"integrator"`
	Tolerance  float64 `yaml:"tolerance"`
}

// Default is the long-barrel scenario.
func Default() *Config {
	return &Config{
		Gun: GunConfig{
			MassGrams:      85.0,
			BoreDiameterIn: 1.5,
			BarrelLengthIn: 78.74,
			VoidLengthIn:   1.75,
			FrictionPSI:    0.493129, // 3400 Pa back-pressure equivalent
			GasVolumeL:     4.48,
			InjectionMs:    40.0,
			GasTempF:       400.0,
		},
		Grid: GridConfig{
			StepMs:     DefaultStepMs,
			DurationMs: 70.0,
		},
		Solver: SolverConfig{
			Integrator: DefaultIntegrator,
			Tolerance:  DefaultTolerance,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if err := c.Inputs().Validate(); err != nil {
		return err
	}
	if c.Grid.StepMs <= 0 {
		return fmt.Errorf("grid step must be positive, got %g ms", c.Grid.StepMs)
	}
	if c.Grid.DurationMs < 3*c.Grid.StepMs {
		return fmt.Errorf("grid duration %g ms leaves fewer than 3 samples at %g ms steps", c.Grid.DurationMs, c.Grid.StepMs)
	}
	if c.Solver.Tolerance <= 0 {
		return fmt.Errorf("solver tolerance must be positive, got %g", c.Solver.Tolerance)
	}
	return nil
}

func (c *Config) Inputs() ballistics.Inputs {
	return ballistics.Inputs{
		ProjectileMassGrams: c.Gun.MassGrams,
		BoreDiameterInches:  c.Gun.BoreDiameterIn,
		BarrelLengthInches:  c.Gun.BarrelLengthIn,
		VoidLengthInches:    c.Gun.VoidLengthIn,
		FrictionPSI:         c.Gun.FrictionPSI,
		GasVolumeLiters:     c.Gun.GasVolumeL,
		InjectionMillis:     c.Gun.InjectionMs,
		GasTempF:            c.Gun.GasTempF,
	}
}

func (c *Config) TimeGrid() dynamo.Grid {
	samples := int(c.Grid.DurationMs/c.Grid.StepMs + 0.5)
	return dynamo.NewGrid(c.Grid.StepMs/1000.0, samples)
}
