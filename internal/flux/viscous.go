package flux

import (
	"fmt"

	"github.com/artracfd/gocfd/internal/cfderrors"
	"github.com/artracfd/gocfd/internal/field"
	"github.com/artracfd/gocfd/internal/geom"
	"github.com/artracfd/gocfd/internal/thermo"
)

// quantity selects which scalar a tangential/normal derivative is taken of.
type quantity int

const (
	qU quantity = iota
	qV
	qW
	qT
)

type nodeState struct {
	u, v, w, t float64
}

func (n nodeState) get(q quantity) float64 {
	switch q {
	case qU:
		return n.u
	case qV:
		return n.v
	case qW:
		return n.w
	default:
		return n.t
	}
}

func readState(m thermo.Model, buf []float64, idx int) (nodeState, error) {
	u := field.At(buf, idx)
	if u[0] <= 0 {
		return nodeState{}, cfderrors.NonPhysicalState{Reason: fmt.Sprintf("rho=%g <= 0 at flat index %d", u[0], idx)}
	}
	return nodeState{u: u[1] / u[0], v: u[2] / u[0], w: u[3] / u[0], t: m.Temperature(u)}, nil
}

// stride returns the flat-index step of a one-node move along axis s.
func stride(sp *field.Space, s geom.Axis) int {
	switch s {
	case geom.X:
		return 1
	case geom.Y:
		return sp.IMax
	default:
		return sp.IMax * sp.JMax
	}
}

func spacing(sp *field.Space, s geom.Axis) float64 {
	switch s {
	case geom.X:
		return sp.DX
	case geom.Y:
		return sp.DY
	default:
		return sp.DZ
	}
}

func axisOf(q quantity) geom.Axis {
	switch q {
	case qU:
		return geom.X
	case qV:
		return geom.Y
	default:
		return geom.Z
	}
}

// centralDerivative returns the 2-point central difference of quantity q
// along axis at the node idx, using its +1/-1 neighbors along axis.
func centralDerivative(sp *field.Space, m thermo.Model, buf []float64, idx int, axis geom.Axis, q quantity) (float64, error) {
	st := stride(sp, axis)
	fwd, err := readState(m, buf, idx+st)
	if err != nil {
		return 0, err
	}
	bwd, err := readState(m, buf, idx-st)
	if err != nil {
		return 0, err
	}
	return (fwd.get(q) - bwd.get(q)) / (2.0 * spacing(sp, axis)), nil
}

// Viscous returns the viscous (diffusive) flux vector at the face between
// node (k,j,i) and its +1 neighbor along direction s, per spec.md 4.5.
// Grounded on original_source/cfd_commons.c's
// NumericalDiffusiveFluxX/Y/Z: the normal derivative of every velocity
// component and T is a 2-point central difference across the face; every
// tangential derivative is the average of the two 2-point central
// differences taken at the face's two bracketing nodes (a 4-point stencil
// per tangential direction).
func Viscous(sp *field.Space, m thermo.Model, buf []float64, s geom.Axis, k, j, i int) ([field.DimU]float64, error) {
	idx0 := sp.Index(k, j, i)
	idx1 := idx0 + stride(sp, s)

	n0, err := readState(m, buf, idx0)
	if err != nil {
		return [field.DimU]float64{}, err
	}
	n1, err := readState(m, buf, idx1)
	if err != nil {
		return [field.DimU]float64{}, err
	}

	ds := spacing(sp, s)

	var t1, t2 geom.Axis
	switch s {
	case geom.X:
		t1, t2 = geom.Y, geom.Z
	case geom.Y:
		t1, t2 = geom.Z, geom.X
	default:
		t1, t2 = geom.X, geom.Y
	}

	// Normal derivatives (2-point), one per velocity component plus T.
	dUdS := (n1.u - n0.u) / ds
	dVdS := (n1.v - n0.v) / ds
	dWdS := (n1.w - n0.w) / ds
	dTdS := (n1.t - n0.t) / ds

	// Tangential derivatives (4-point: average the central difference at
	// each of the face's two bracketing nodes).
	dUdT1, err := faceAveragedTangential(sp, m, buf, idx0, idx1, t1, qU)
	if err != nil {
		return [field.DimU]float64{}, err
	}
	dVdT1, err := faceAveragedTangential(sp, m, buf, idx0, idx1, t1, qV)
	if err != nil {
		return [field.DimU]float64{}, err
	}
	dWdT1, err := faceAveragedTangential(sp, m, buf, idx0, idx1, t1, qW)
	if err != nil {
		return [field.DimU]float64{}, err
	}
	dUdT2, err := faceAveragedTangential(sp, m, buf, idx0, idx1, t2, qU)
	if err != nil {
		return [field.DimU]float64{}, err
	}
	dVdT2, err := faceAveragedTangential(sp, m, buf, idx0, idx1, t2, qV)
	if err != nil {
		return [field.DimU]float64{}, err
	}
	dWdT2, err := faceAveragedTangential(sp, m, buf, idx0, idx1, t2, qW)
	if err != nil {
		return [field.DimU]float64{}, err
	}

	dudx, dudy, dudz := axisTriplet(s, t1, t2, dUdS, dUdT1, dUdT2)
	dvdx, dvdy, dvdz := axisTriplet(s, t1, t2, dVdS, dVdT1, dVdT2)
	dwdx, dwdy, dwdz := axisTriplet(s, t1, t2, dWdS, dWdT1, dWdT2)

	divV := dudx + dvdy + dwdz

	tFace := 0.5 * (n0.t + n1.t)
	uFace := 0.5 * (n0.u + n1.u)
	vFace := 0.5 * (n0.v + n1.v)
	wFace := 0.5 * (n0.w + n1.w)

	mu := m.ViscosityAt(tFace)
	k_ := m.ThermalConductivity(mu)

	var tauS1, tauS2, tauSS float64
	var qS float64
	switch s {
	case geom.X:
		tauSS = 2 * mu * (dudx - divV/3.0)
		tauS1 = mu * (dudy + dvdx)
		tauS2 = mu * (dudz + dwdx)
		qS = -k_ * dTdS
		return [field.DimU]float64{
			0,
			tauSS,
			tauS1,
			tauS2,
			uFace*tauSS + vFace*tauS1 + wFace*tauS2 - qS,
		}, nil
	case geom.Y:
		tauSS = 2 * mu * (dvdy - divV/3.0)
		tauS1 = mu * (dvdz + dwdy)
		tauS2 = mu * (dvdx + dudy)
		qS = -k_ * dTdS
		return [field.DimU]float64{
			0,
			tauS2,
			tauSS,
			tauS1,
			uFace*tauS2 + vFace*tauSS + wFace*tauS1 - qS,
		}, nil
	default: // Z
		tauSS = 2 * mu * (dwdz - divV/3.0)
		tauS1 = mu * (dwdx + dudz)
		tauS2 = mu * (dwdy + dvdz)
		qS = -k_ * dTdS
		return [field.DimU]float64{
			0,
			tauS1,
			tauS2,
			tauSS,
			uFace*tauS1 + vFace*tauS2 + wFace*tauSS - qS,
		}, nil
	}
}

// faceAveragedTangential returns the tangential derivative of quantity q
// along axis at the face between idx0 and idx1, averaging the central
// difference at each bracketing node.
func faceAveragedTangential(sp *field.Space, m thermo.Model, buf []float64, idx0, idx1 int, axis geom.Axis, q quantity) (float64, error) {
	d0, err := centralDerivative(sp, m, buf, idx0, axis, q)
	if err != nil {
		return 0, err
	}
	d1, err := centralDerivative(sp, m, buf, idx1, axis, q)
	if err != nil {
		return 0, err
	}
	return 0.5 * (d0 + d1), nil
}

// axisTriplet maps a (normal, tangential1, tangential2) derivative triple
// back onto (dX, dY, dZ) given which physical axis each role played.
func axisTriplet(s, t1, t2 geom.Axis, dS, dT1, dT2 float64) (dx, dy, dz float64) {
	vals := map[geom.Axis]float64{s: dS, t1: dT1, t2: dT2}
	return vals[geom.X], vals[geom.Y], vals[geom.Z]
}
