package partition

import (
	"math"

	"github.com/artracfd/gocfd/internal/field"
	"github.com/artracfd/gocfd/internal/geom"
	"github.com/artracfd/gocfd/internal/thermo"
)

// Apply fills every ghost-layer node of the six exterior face boxes
// according to their BC kind, reading the adjacent interior state and, for
// Periodic, the opposite face's fluid state. Grounded on
// model_problems/Euler2D/bcs.go's WallBC/FarBC/RiemannBC, generalized from
// a 2D edge state to a 3D face plane.
func Apply(sp *field.Space, buf []float64, m thermo.Model, p *Partition) error {
	for faceBox := 1; faceBox <= 6; faceBox++ {
		if err := applyFace(sp, buf, m, p.Boxes[faceBox]); err != nil {
			return err
		}
	}
	return nil
}

func applyFace(sp *field.Space, buf []float64, m thermo.Model, box Box) error {
	axis, sign := axisSignFromNormal(box.Normal)

	for k := box.KSub; k < box.KSup; k++ {
		for j := box.JSub; j < box.JSup; j++ {
			for i := box.ISub; i < box.ISup; i++ {
				interiorK, interiorJ, interiorI := k, j, i
				mirrorK, mirrorJ, mirrorI := k, j, i
				periodicK, periodicJ, periodicI := k, j, i

				switch axis {
				case geom.X:
					if sign < 0 {
						interiorI = sp.NG
						mirrorI = 2*sp.NG - 1 - i
						periodicI = i + (sp.IMax - 2*sp.NG)
					} else {
						interiorI = sp.IMax - 1 - sp.NG
						mirrorI = 2*(sp.IMax-sp.NG) - 1 - i
						periodicI = i - (sp.IMax - 2*sp.NG)
					}
				case geom.Y:
					if sign < 0 {
						interiorJ = sp.NG
						mirrorJ = 2*sp.NG - 1 - j
						periodicJ = j + (sp.JMax - 2*sp.NG)
					} else {
						interiorJ = sp.JMax - 1 - sp.NG
						mirrorJ = 2*(sp.JMax-sp.NG) - 1 - j
						periodicJ = j - (sp.JMax - 2*sp.NG)
					}
				default: // Z
					if sign < 0 {
						interiorK = sp.NG
						mirrorK = 2*sp.NG - 1 - k
						periodicK = k + (sp.KMax - 2*sp.NG)
					} else {
						interiorK = sp.KMax - 1 - sp.NG
						mirrorK = 2*(sp.KMax-sp.NG) - 1 - k
						periodicK = k - (sp.KMax - 2*sp.NG)
					}
				}

				ghostIdx := sp.Index(k, j, i)
				interiorIdx := sp.Index(interiorK, interiorJ, interiorI)

				primInt, err := m.ToPrimitive(field.At(buf, interiorIdx))
				if err != nil {
					return err
				}

				var out thermo.Primitive
				switch box.Kind {
				case Inlet, Outlet:
					out = riemannBC(m, primInt, box.Value, box.Normal)
				case SlipWall:
					mirrorIdx := sp.Index(mirrorK, mirrorJ, mirrorI)
					primMirror, err := m.ToPrimitive(field.At(buf, mirrorIdx))
					if err != nil {
						return err
					}
					out = slipWallReflect(primMirror, box.Normal)
				case NoSlipWall:
					out = noSlipWall(primInt, box.Value)
				case Periodic:
					periodicIdx := sp.Index(periodicK, periodicJ, periodicI)
					out, err = m.ToPrimitive(field.At(buf, periodicIdx))
					if err != nil {
						return err
					}
				default: // Fluid: zero-gradient copy of the nearest interior node
					out = primInt
				}
				field.Set(buf, ghostIdx, m.ToConservative(out))
			}
		}
	}
	return nil
}

func axisSignFromNormal(n [3]int) (axis geom.Axis, sign int) {
	if n[2] != 0 {
		return geom.X, n[2]
	}
	if n[1] != 0 {
		return geom.Y, n[1]
	}
	return geom.Z, n[0]
}

// riemannBC generalizes bcs.go's RiemannBC from 2D edges to a 3D face:
// Riemann invariants along the boundary normal fix the normal velocity and
// sound speed, entropy and tangential velocity come from whichever side
// (interior or far field) the normal velocity indicates is upstream.
func riemannBC(m thermo.Model, interior, farField thermo.Primitive, normal [3]int) thermo.Primitive {
	nx, ny, nz := float64(normal[2]), float64(normal[1]), float64(normal[0])
	gamma := m.Gamma
	gm1 := gamma - 1.0

	vnInt := nx*interior.U + ny*interior.V + nz*interior.W
	cInt := math.Sqrt(gamma * interior.P / interior.Rho)
	vnInf := nx*farField.U + ny*farField.V + nz*farField.W
	cInf := math.Sqrt(gamma * farField.P / farField.Rho)

	rInf := vnInf - 2.0*cInf/gm1
	rInt := vnInt + 2.0*cInt/gm1
	vn := 0.5 * (rInt + rInf)
	c := 0.25 * gm1 * (rInt - rInf)

	var entropyP, entropyRho, tu, tv, tw float64
	if vnInt < 0 { // inflow: entropy and tangential velocity from the far field
		entropyP, entropyRho = farField.P, farField.Rho
		tu, tv, tw = farField.U-vnInf*nx, farField.V-vnInf*ny, farField.W-vnInf*nz
	} else { // outflow: entropy and tangential velocity from the interior
		entropyP, entropyRho = interior.P, interior.Rho
		tu, tv, tw = interior.U-vnInt*nx, interior.V-vnInt*ny, interior.W-vnInt*nz
	}
	beta := entropyP / math.Pow(entropyRho, gamma)
	rho := math.Pow(c*c/(gamma*beta), 1.0/gm1)
	p := beta * math.Pow(rho, gamma)
	return thermo.Primitive{
		Rho: rho,
		U:   vn*nx + tu,
		V:   vn*ny + tv,
		W:   vn*nz + tw,
		P:   p,
		T:   p / (rho * m.GasR),
	}
}

// slipWallReflect mirrors the normal velocity component of the node
// reflected across the wall, keeping its density/pressure/tangential
// velocity, reproducing WallBC's pressure-only normal flux with a
// ghost-cell state instead of a direct flux override.
func slipWallReflect(mirror thermo.Primitive, normal [3]int) thermo.Primitive {
	nx, ny, nz := float64(normal[2]), float64(normal[1]), float64(normal[0])
	vn := nx*mirror.U + ny*mirror.V + nz*mirror.W
	return thermo.Primitive{
		Rho: mirror.Rho,
		U:   mirror.U - 2*vn*nx,
		V:   mirror.V - 2*vn*ny,
		W:   mirror.W - 2*vn*nz,
		P:   mirror.P,
		T:   mirror.T,
	}
}

// noSlipWall sets the ghost state so the linearly-interpolated face velocity
// equals the wall's velocity exactly (ghost = 2*wall - interior), and
// copies density, pressure and temperature from the interior (an adiabatic
// wall; wallValue.T is not used).
func noSlipWall(interior, wallValue thermo.Primitive) thermo.Primitive {
	return thermo.Primitive{
		Rho: interior.Rho,
		U:   2*wallValue.U - interior.U,
		V:   2*wallValue.V - interior.V,
		W:   2*wallValue.W - interior.W,
		P:   interior.P,
		T:   interior.T,
	}
}
