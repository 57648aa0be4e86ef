// Package flux assembles the inviscid (convective) and viscous flux vectors
// consumed by the time driver. Grounded on original_source/cfd_commons.c
// (ConvectiveFluxX/Y/Z, NumericalDiffusiveFluxX/Y/Z) and the closed-form
// flux table in model_problems/Euler2D/fluxes.go's FluxCalc.
package flux

import (
	"github.com/artracfd/gocfd/internal/field"
	"github.com/artracfd/gocfd/internal/geom"
)

// Convective returns the inviscid flux vector F_s(U) in direction s, per
// spec.md 4.4's closed-form table.
func Convective(s geom.Axis, gamma float64, u [field.DimU]float64) [field.DimU]float64 {
	rho := u[0]
	vx := u[1] / rho
	vy := u[2] / rho
	vz := u[3] / rho
	p := (gamma - 1.0) * (u[4] - 0.5*rho*(vx*vx+vy*vy+vz*vz))
	switch s {
	case geom.X:
		return [field.DimU]float64{u[1], u[1]*vx + p, u[1] * vy, u[1] * vz, (u[4] + p) * vx}
	case geom.Y:
		return [field.DimU]float64{u[2], u[2] * vx, u[2]*vy + p, u[2] * vz, (u[4] + p) * vy}
	default: // Z
		return [field.DimU]float64{u[3], u[3] * vx, u[3] * vy, u[3]*vz + p, (u[4] + p) * vz}
	}
}
