package ballistics

import "github.com/san-kum/gunsim/internal/dynamo"

// Gun is the gas-gun interior model: a projectile driven down a smooth
// barrel by hot gas injected behind it at a constant molar rate.
//
// State layout is [velocity m/s, position m]. Position is measured from
// the projectile's rest position; the gas volume term carries the fixed
// void length, so the volume never reaches zero.
type Gun struct {
	p Parameters
}

func NewGun(p Parameters) *Gun {
	return &Gun{p: p}
}

func (g *Gun) Params() Parameters { return g.p }

func (g *Gun) StateDim() int { return 2 }

// Derive is the ODE right-hand side: d[v,x]/dt = [a, v]. The driving
// pressure is the absolute barrel pressure less ambient and the
// friction back-pressure.
func (g *Gun) Derive(x dynamo.State, t float64) dynamo.State {
	gauge := g.AbsolutePressure(x[1], t) - g.p.AmbientPressure - g.p.FrictionPressure
	return dynamo.State{gauge * g.p.BoreArea / g.p.Mass, x[0]}
}

// MolesAt returns the gas moles behind the projectile at time t:
// a linear ramp from the trapped moles to the total injected moles
// over the injection window, constant afterwards. Continuous at the
// breakpoint.
func (g *Gun) MolesAt(t float64) float64 {
	if t < g.p.InjectionDuration {
		return g.p.TrappedMoles + g.p.InjectionRate*t
	}
	return g.p.InjectedMoles
}

// InjectionRateAt returns the molar injection rate at time t: constant
// during the window, zero after.
func (g *Gun) InjectionRateAt(t float64) float64 {
	if t < g.p.InjectionDuration {
		return g.p.InjectionRate
	}
	return 0.0
}

// AbsolutePressure is the ideal-gas barrel pressure for a projectile at
// pos, using the moles present at time t.
func (g *Gun) AbsolutePressure(pos, t float64) float64 {
	vol := g.p.BoreArea * (pos + g.p.VoidLength)
	return g.MolesAt(t) * GasConstant * g.p.GasTemp / vol
}

// GaugePressure is absolute pressure relative to ambient. The friction
// offset is not part of the gauge reading; it only enters the dynamics.
func (g *Gun) GaugePressure(pos, t float64) float64 {
	return g.AbsolutePressure(pos, t) - g.p.AmbientPressure
}

// Acceleration is the reported acceleration for a projectile at pos:
// gauge pressure times bore area over mass.
func (g *Gun) Acceleration(pos, t float64) float64 {
	return g.GaugePressure(pos, t) * g.p.BoreArea / g.p.Mass
}
