package ballistics

import (
	"errors"
	"fmt"
	"math"
)

// Fixed unit-conversion and physical constants.
const (
	MetersToInches   = 12.0 / 0.3048 // 39.37007874015748
	PascalsPerPSI    = 6894.7573
	MolarVolumeSTP   = 22.4      // L/mol
	StandardPressure = 100000.0  // Pa, used as ambient
	StandardTemp     = 273.15    // K
	GasConstant      = 8.3144621 // m3*Pa/(K*mol)
)

var ErrInvalidInput = errors.New("ballistics: invalid input")

// Inputs are the raw, mixed-unit quantities describing one firing.
type Inputs struct {
	ProjectileMassGrams float64 // projectile mass in grams
	BoreDiameterInches  float64
	BarrelLengthInches  float64
	VoidLengthInches    float64 // empty barrel length behind the projectile at rest
	FrictionPSI         float64 // barrel friction as back-pressure equivalent
	GasVolumeLiters     float64 // injected gas volume at STP
	InjectionMillis     float64 // injection duration
	GasTempF            float64 // injection temperature
}

func (in Inputs) Validate() error {
	checks := []struct {
		name string
		v    float64
	}{
		{"projectile mass", in.ProjectileMassGrams},
		{"bore diameter", in.BoreDiameterInches},
		{"barrel length", in.BarrelLengthInches},
		{"void length", in.VoidLengthInches},
		{"gas volume", in.GasVolumeLiters},
		{"injection duration", in.InjectionMillis},
	}
	for _, c := range checks {
		if c.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %g", ErrInvalidInput, c.name, c.v)
		}
	}
	if in.FrictionPSI < 0 {
		return fmt.Errorf("%w: friction must be non-negative, got %g", ErrInvalidInput, in.FrictionPSI)
	}
	if in.BarrelLengthInches <= in.VoidLengthInches {
		return fmt.Errorf("%w: barrel length %g in must exceed void length %g in", ErrInvalidInput, in.BarrelLengthInches, in.VoidLengthInches)
	}
	return nil
}

// Parameters are the derived SI constants consumed by the model.
// Immutable after derivation.
type Parameters struct {
	Mass              float64 // kg
	BoreArea          float64 // m2
	BarrelLength      float64 // m
	VoidLength        float64 // m
	VoidVolume        float64 // m3
	TrappedMoles      float64 // mol of air in the void at ambient pressure
	InjectedMoles     float64 // mol, total at end of injection
	InjectionRate     float64 // mol/s during the injection window
	InjectionDuration float64 // s
	GasTemp           float64 // K
	AmbientPressure   float64 // Pa
	FrictionPressure  float64 // Pa
}

// Derive converts the raw inputs into SI parameters. The moles schedule
// ramps from the trapped moles to the total injected moles, so the
// injection rate accounts for the trapped fraction.
func (in Inputs) Derive() (Parameters, error) {
	if err := in.Validate(); err != nil {
		return Parameters{}, err
	}

	bore := in.BoreDiameterInches / MetersToInches
	area := math.Pi / 4.0 * bore * bore
	voidLen := in.VoidLengthInches / MetersToInches
	voidVol := area * voidLen
	gasTemp := (in.GasTempF-32.0)/1.8 + StandardTemp
	trapped := StandardPressure * voidVol / (GasConstant * gasTemp)
	injected := in.GasVolumeLiters / MolarVolumeSTP
	duration := in.InjectionMillis / 1000.0

	return Parameters{
		Mass:              in.ProjectileMassGrams / 1000.0,
		BoreArea:          area,
		BarrelLength:      in.BarrelLengthInches / MetersToInches,
		VoidLength:        voidLen,
		VoidVolume:        voidVol,
		TrappedMoles:      trapped,
		InjectedMoles:     injected,
		InjectionRate:     (injected - trapped) / duration,
		InjectionDuration: duration,
		GasTemp:           gasTemp,
		AmbientPressure:   StandardPressure,
		FrictionPressure:  in.FrictionPSI * PascalsPerPSI,
	}, nil
}
