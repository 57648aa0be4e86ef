// Package thermo converts between conservative and primitive flow variables
// and evaluates the laminar Sutherland viscosity law. Grounded on
// original_source/cfd_commons.c (PrimitiveByConservative, ComputePressure,
// ComputeTemperature, ConservativeByPrimitive, Viscosity, PrandtlNumber) and
// the flow-function switch in model_problems/Euler2D/fluids.go.
package thermo

import (
	"fmt"
	"math"

	"github.com/artracfd/gocfd/internal/cfderrors"
	"github.com/artracfd/gocfd/internal/field"
)

// Prandtl is the fixed air Prandtl number used throughout; not user
// configurable (spec.md 4.2).
const Prandtl = 0.71

// sutherlandC1 and sutherlandC2 are Sutherland's law constants for air in SI
// units (kg/(m.s.K^0.5), K).
const (
	sutherlandC1 = 1.458e-6
	sutherlandC2 = 110.4
)

// Model carries the normalized gas constants a kernel needs: gamma, the
// nondimensional gas constant R, cv, and the reference values used to
// redimensionalize for Sutherland's law.
type Model struct {
	Gamma   float64
	GasR    float64
	Cv      float64
	RefMu   float64
	RefT    float64
}

// Primitive is (rho, u, v, w, p, T).
type Primitive struct {
	Rho, U, V, W, P, T float64
}

// ToPrimitive converts a conservative state to primitive variables. Returns
// a cfderrors.NonPhysicalState if rho<=0 or p<=0, per spec.md 4.2 and 4.7.
func (m Model) ToPrimitive(u [field.DimU]float64) (Primitive, error) {
	rho := u[0]
	if rho <= 0 {
		return Primitive{}, cfderrors.NonPhysicalState{Reason: fmt.Sprintf("rho=%g <= 0", rho)}
	}
	oorho := 1.0 / rho
	vx := u[1] * oorho
	vy := u[2] * oorho
	vz := u[3] * oorho
	p := (m.Gamma - 1.0) * (u[4] - 0.5*rho*(vx*vx+vy*vy+vz*vz))
	if p <= 0 {
		return Primitive{}, cfderrors.NonPhysicalState{Reason: fmt.Sprintf("p=%g <= 0", p)}
	}
	T := p / (rho * m.GasR)
	return Primitive{Rho: rho, U: vx, V: vy, W: vz, P: p, T: T}, nil
}

// ToConservative converts a primitive state to conservative variables
// (spec.md 4.2's inverse map).
func (m Model) ToConservative(p Primitive) [field.DimU]float64 {
	ke := 0.5 * p.Rho * (p.U*p.U + p.V*p.V + p.W*p.W)
	rhoE := ke + p.P/(m.Gamma-1.0)
	return [field.DimU]float64{p.Rho, p.Rho * p.U, p.Rho * p.V, p.Rho * p.W, rhoE}
}

// Pressure recovers p directly from conservative state without allocating a
// Primitive, used where only p is needed (SoundSpeed, the EnSight exporter).
func (m Model) Pressure(u [field.DimU]float64) float64 {
	rho := u[0]
	ke := 0.5 * (u[1]*u[1] + u[2]*u[2] + u[3]*u[3]) / rho
	return (m.Gamma - 1.0) * (u[4] - ke)
}

// Temperature recovers T directly from conservative state.
func (m Model) Temperature(u [field.DimU]float64) float64 {
	rho := u[0]
	return (u[4]/rho - 0.5*(u[1]*u[1]+u[2]*u[2]+u[3]*u[3])/(rho*rho)) / m.Cv
}

// SoundSpeed returns c = sqrt(gamma*p/rho).
func (m Model) SoundSpeed(u [field.DimU]float64) float64 {
	rho := u[0]
	p := m.Pressure(u)
	return math.Sqrt(math.Abs(m.Gamma * p / rho))
}

// Sutherland evaluates the dynamic viscosity law mu(T) = C1*T^1.5/(T+C2) for
// T in Kelvin (dimensional). Callers normalize by RefMu and pass the
// redimensionalized temperature T*RefT.
func Sutherland(tDimensional float64) float64 {
	return sutherlandC1 * math.Pow(tDimensional, 1.5) / (tDimensional + sutherlandC2)
}

// ViscosityAt returns the normalized (nondimensional) dynamic viscosity at
// normalized temperature That, following original_source's
// "model->refMu * Viscosity(That * model->refT)".
func (m Model) ViscosityAt(that float64) float64 {
	return m.RefMu * Sutherland(that*m.RefT)
}

// ThermalConductivity returns k = gamma*cv*mu/Pr for a viscosity value mu
// (normalized), reused by the viscous flux kernel at every face.
func (m Model) ThermalConductivity(mu float64) float64 {
	return m.Gamma * m.Cv * mu / Prandtl
}
