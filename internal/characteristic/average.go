// Package characteristic implements the per-direction characteristic
// decomposition of the Euler flux Jacobian: averaged primitive state,
// eigenvalues, closed-form left/right eigenvector matrices, and eigenvalue
// splitting. Grounded on original_source/cfd_commons.c
// (SymmetricAverage, Eigenvalue, EigenvectorL/R*, *Splitting) and the
// Roe-averaging idiom in model_problems/Euler2D/fluxes.go's RoeFlux.
package characteristic

import (
	"math"

	"github.com/artracfd/gocfd/internal/field"
	"github.com/artracfd/gocfd/internal/geom"
)

// Averager selects how the left/right conservative states are blended
// before computing the Jacobian eigenstructure.
type Averager int

const (
	Arithmetic Averager = iota
	Roe
)

// State is the averaged primitive state Uo=(u,v,w,hT,c) the eigenvector and
// eigenvalue routines consume. Density is intentionally absent: the Euler
// flux Jacobian's eigenstructure in any direction depends only on velocity,
// enthalpy and sound speed (see cfd_commons.c's SymmetricAverage, which
// likewise never touches Uo[0]).
type State struct {
	U, V, W, HT, C float64
}

// Average blends two conservative states UL, UR into the averaged primitive
// state used to build the eigenvectors at a face. D=1 for Arithmetic,
// D=sqrt(rhoR/rhoL) for Roe.
func Average(averager Averager, gamma float64, uL, uR [field.DimU]float64) State {
	rhoL := uL[0]
	velL := [3]float64{uL[1] / rhoL, uL[2] / rhoL, uL[3] / rhoL}
	hTL := (uL[4]/rhoL)*gamma - 0.5*(velL[0]*velL[0]+velL[1]*velL[1]+velL[2]*velL[2])*(gamma-1.0)

	rhoR := uR[0]
	velR := [3]float64{uR[1] / rhoR, uR[2] / rhoR, uR[3] / rhoR}
	hTR := (uR[4]/rhoR)*gamma - 0.5*(velR[0]*velR[0]+velR[1]*velR[1]+velR[2]*velR[2])*(gamma-1.0)

	d := 1.0
	if averager == Roe {
		d = math.Sqrt(rhoR / rhoL)
	}
	od := 1.0 / (1.0 + d)

	u := (velL[0] + d*velR[0]) * od
	v := (velL[1] + d*velR[1]) * od
	w := (velL[2] + d*velR[2]) * od
	hT := (hTL + d*hTR) * od
	c := math.Sqrt((gamma - 1.0) * (hT - 0.5*(u*u+v*v+w*w)))
	return State{U: u, V: v, W: w, HT: hT, C: c}
}

// Eigenvalue returns Lambda=(us-c, us, us, us, us+c) for direction s, where
// us is the averaged velocity component along s.
func Eigenvalue(s geom.Axis, avg State) [5]float64 {
	var us float64
	switch s {
	case geom.X:
		us = avg.U
	case geom.Y:
		us = avg.V
	default:
		us = avg.W
	}
	return [5]float64{us - avg.C, us, us, us, us + avg.C}
}
