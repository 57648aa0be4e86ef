// Package partition enumerates the thirteen fixed index boxes a solve
// visits every step and applies the boundary-condition kind each exterior
// face box carries. Grounded on original_source/main.c's Partition struct
// (kSub/kSup/jSub/jSup/iSub/iSup, typeBC, valueBC arrays) for the box
// layout, and model_problems/Euler2D/bcs.go's WallBC/FarBC/RiemannBC for
// the boundary-state construction, generalized from a 2D edge to a 3D face.
package partition

import "github.com/artracfd/gocfd/internal/thermo"

// BCKind is one of the six boundary-condition kinds spec.md's component
// design names.
type BCKind int

const (
	Fluid BCKind = iota
	Inlet
	Outlet
	SlipWall
	NoSlipWall
	Periodic
)

func (k BCKind) String() string {
	switch k {
	case Inlet:
		return "inlet"
	case Outlet:
		return "outlet"
	case SlipWall:
		return "slip-wall"
	case NoSlipWall:
		return "no-slip-wall"
	case Periodic:
		return "periodic"
	default:
		return "fluid"
	}
}

// Box is one of the thirteen index ranges. Sub is inclusive, Sup exclusive
// (count = Sup-Sub).
type Box struct {
	KSub, KSup int
	JSub, JSup int
	ISub, ISup int
	Kind       BCKind
	Value      thermo.Primitive // far-field/wall state for Inlet/Outlet/NoSlipWall
	Normal     [3]int           // outward (nZ,nY,nX) in {-1,0,1}
}

// Partition is the fixed 13-box enumeration. Box 0 is the entire padded
// domain; 1-6 are the six exterior boundary slabs (-x,+x,-y,+y,-z,+z); 7-11
// are five edge columns of the ghost padding where two exterior slabs meet
// (-y/-x, -y/+x, +y/-x, +y/+x, -z/-y); they do not cover the interior, and
// no operation iterates them (see DESIGN.md); 12 is the innermost fluid
// interior internal/ibm classifies.
type Partition struct {
	Boxes [13]Box
}

// New builds the fixed box geometry for a grid; every box defaults to kind
// Fluid. Callers (internal/caseinput) set Kind/Value on Boxes[1..6] per the
// case file's per-region boundary specification.
func New(kMax, jMax, iMax, ng int) *Partition {
	p := &Partition{}
	p.Boxes[0] = Box{0, kMax, 0, jMax, 0, iMax, Fluid, thermo.Primitive{}, [3]int{0, 0, 0}}

	p.Boxes[1] = Box{0, kMax, 0, jMax, 0, ng, Fluid, thermo.Primitive{}, [3]int{0, 0, -1}}
	p.Boxes[2] = Box{0, kMax, 0, jMax, iMax - ng, iMax, Fluid, thermo.Primitive{}, [3]int{0, 0, 1}}
	p.Boxes[3] = Box{0, kMax, 0, ng, 0, iMax, Fluid, thermo.Primitive{}, [3]int{0, -1, 0}}
	p.Boxes[4] = Box{0, kMax, jMax - ng, jMax, 0, iMax, Fluid, thermo.Primitive{}, [3]int{0, 1, 0}}
	p.Boxes[5] = Box{0, ng, 0, jMax, 0, iMax, Fluid, thermo.Primitive{}, [3]int{-1, 0, 0}}
	p.Boxes[6] = Box{kMax - ng, kMax, 0, jMax, 0, iMax, Fluid, thermo.Primitive{}, [3]int{1, 0, 0}}

	p.Boxes[7] = Box{0, kMax, 0, ng, 0, ng, Fluid, thermo.Primitive{}, [3]int{0, -1, -1}}
	p.Boxes[8] = Box{0, kMax, 0, ng, iMax - ng, iMax, Fluid, thermo.Primitive{}, [3]int{0, -1, 1}}
	p.Boxes[9] = Box{0, kMax, jMax - ng, jMax, 0, ng, Fluid, thermo.Primitive{}, [3]int{0, 1, -1}}
	p.Boxes[10] = Box{0, kMax, jMax - ng, jMax, iMax - ng, iMax, Fluid, thermo.Primitive{}, [3]int{0, 1, 1}}
	p.Boxes[11] = Box{0, ng, 0, ng, 0, iMax, Fluid, thermo.Primitive{}, [3]int{-1, -1, 0}}

	p.Boxes[12] = Box{ng, kMax - ng, ng, jMax - ng, ng, iMax - ng, Fluid, thermo.Primitive{}, [3]int{0, 0, 0}}
	return p
}

// SetFace assigns the boundary kind and value of one of the six exterior
// face boxes (1-6). faceBox must be in [1,6].
func (p *Partition) SetFace(faceBox int, kind BCKind, value thermo.Primitive) {
	p.Boxes[faceBox].Kind = kind
	p.Boxes[faceBox].Value = value
}
