package ballistics

import (
	"errors"
	"math"
	"testing"
)

// longBarrel matches the built-in default firing: 85 g projectile,
// 1.5 in bore, 78.74 in barrel.
func longBarrel() Inputs {
	return Inputs{
		ProjectileMassGrams: 85.0,
		BoreDiameterInches:  1.5,
		BarrelLengthInches:  78.74,
		VoidLengthInches:    1.75,
		FrictionPSI:         0.493129,
		GasVolumeLiters:     4.48,
		InjectionMillis:     40.0,
		GasTempF:            400.0,
	}
}

func shortBarrel() Inputs {
	in := longBarrel()
	in.BarrelLengthInches = 40.0
	in.VoidLengthInches = 4.0
	in.FrictionPSI = 0.5
	in.GasVolumeLiters = 3.36
	in.InjectionMillis = 30.0
	return in
}

func approx(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %.12g, want %.12g (tol %g)", name, got, want, tol)
	}
}

func TestDeriveLongBarrel(t *testing.T) {
	p, err := longBarrel().Derive()
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}

	approx(t, "Mass", p.Mass, 0.085, 1e-12)
	approx(t, "BoreArea", p.BoreArea, 0.00114009182796937, 1e-12)
	approx(t, "BarrelLength", p.BarrelLength, 1.999996, 1e-6)
	approx(t, "VoidLength", p.VoidLength, 0.04445, 1e-9)
	approx(t, "GasTemp", p.GasTemp, 477.594444444444, 1e-6)
	approx(t, "TrappedMoles", p.TrappedMoles, 0.0012761983351974, 1e-10)
	approx(t, "InjectedMoles", p.InjectedMoles, 0.2, 1e-12)
	approx(t, "InjectionRate", p.InjectionRate, 4.9680950416201, 1e-9)
	approx(t, "InjectionDuration", p.InjectionDuration, 0.04, 1e-12)
	approx(t, "FrictionPressure", p.FrictionPressure, 3400.0, 0.01)
	approx(t, "AmbientPressure", p.AmbientPressure, StandardPressure, 0)
}

func TestDeriveShortBarrel(t *testing.T) {
	p, err := shortBarrel().Derive()
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}

	approx(t, "BarrelLength", p.BarrelLength, 1.016, 1e-9)
	approx(t, "VoidLength", p.VoidLength, 0.1016, 1e-9)
	approx(t, "TrappedMoles", p.TrappedMoles, 0.0029170247661656, 1e-10)
	approx(t, "InjectedMoles", p.InjectedMoles, 0.15, 1e-12)
	approx(t, "InjectionRate", p.InjectionRate, 4.9027658411278, 1e-9)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Inputs)
	}{
		{"zero mass", func(in *Inputs) { in.ProjectileMassGrams = 0 }},
		{"negative bore", func(in *Inputs) { in.BoreDiameterInches = -1 }},
		{"zero gas volume", func(in *Inputs) { in.GasVolumeLiters = 0 }},
		{"zero injection", func(in *Inputs) { in.InjectionMillis = 0 }},
		{"negative friction", func(in *Inputs) { in.FrictionPSI = -0.1 }},
		{"void exceeds barrel", func(in *Inputs) { in.VoidLengthInches = 100 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := longBarrel()
			tc.mutate(&in)
			if err := in.Validate(); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
			if _, err := in.Derive(); err == nil {
				t.Error("Derive should reject invalid inputs")
			}
		})
	}

	if err := longBarrel().Validate(); err != nil {
		t.Errorf("valid inputs rejected: %v", err)
	}
}

func TestZeroFrictionAllowed(t *testing.T) {
	in := longBarrel()
	in.FrictionPSI = 0

	p, err := in.Derive()
	if err != nil {
		t.Fatalf("Derive failed: %v", err)
	}
	if p.FrictionPressure != 0 {
		t.Errorf("FrictionPressure = %g, want 0", p.FrictionPressure)
	}
}
