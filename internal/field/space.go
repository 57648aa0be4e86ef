// Package field holds the uniform Cartesian grid (Space) and the
// conservative-variable double buffer (Field) that every kernel package
// indexes into. Grounded on the original ArtraCFD Space/Field structs
// (original_source/cfd_commons.c, cfdparameters.c) and the teacher's
// flat-array-plus-explicit-index style (model_problems/Euler2D/indexing.go).
package field

import (
	"math"

	"github.com/artracfd/gocfd/internal/geom"
)

// NodeFlag classifies a node as fluid, solid, ghost or exterior. This
// replaces the original sentinel-integer encoding ({-1,0,1,>=2}) with a
// tagged enum; Sentinel recovers the original integer for code (the EnSight
// iblank rule) that needs the old magnitude-based test.
type NodeFlag uint8

const (
	// FlagUninitialized marks a node Space has allocated but not yet
	// classified; no valid Space should contain one after ResetFlags
	// (the first pass of ibm.Classify).
	FlagUninitialized NodeFlag = iota
	FlagFluid
	FlagSolid
	FlagGhost
	FlagExterior
)

// Sentinel returns the original ArtraCFD integer encoding of the flag:
// solid=-1, fluid=0, ghost=1, exterior=2. Exporters and tests that follow
// the spec's "flag magnitude" iblank rule use this instead of the enum.
func (f NodeFlag) Sentinel() int {
	switch f {
	case FlagSolid:
		return -1
	case FlagFluid:
		return 0
	case FlagGhost:
		return 1
	default:
		return 2
	}
}

func (f NodeFlag) String() string {
	switch f {
	case FlagFluid:
		return "fluid"
	case FlagSolid:
		return "solid"
	case FlagGhost:
		return "ghost"
	case FlagExterior:
		return "exterior"
	default:
		return "uninitialized"
	}
}

// Space describes the padded uniform Cartesian grid: node counts, spacing
// and the per-node classification arrays shared by the flux and
// immersed-boundary packages.
type Space struct {
	NCX, NCY, NCZ int // user-supplied cell counts
	NG            int // ghost layer width

	NX, NY, NZ          int // node counts: NC+2
	IMax, JMax, KMax    int // padded node counts: N+2*NG
	NMax                int // flat length: IMax*JMax*KMax

	XMin, XMax float64
	YMin, YMax float64
	ZMin, ZMax float64

	DX, DY, DZ    float64
	DDX, DDY, DDZ float64
	TinyL         float64

	Flag  []NodeFlag
	GeoID []int // body index for Solid/Ghost nodes, -1 otherwise
}

// NewSpace builds the padded grid from user cell counts, ghost width and
// physical extents. Spacings and their reciprocals follow spec.md 4.1; see
// internal/cfdparams for the normalization pass that also touches these
// fields (reference-scale division happens there, not here).
func NewSpace(ncx, ncy, ncz, ng int, xMin, xMax, yMin, yMax, zMin, zMax float64) *Space {
	s := &Space{
		NCX: ncx, NCY: ncy, NCZ: ncz, NG: ng,
		XMin: xMin, XMax: xMax,
		YMin: yMin, YMax: yMax,
		ZMin: zMin, ZMax: zMax,
	}
	s.NX, s.NY, s.NZ = ncx+2, ncy+2, ncz+2
	s.IMax = s.NX + 2*ng
	s.JMax = s.NY + 2*ng
	s.KMax = s.NZ + 2*ng
	s.NMax = s.IMax * s.JMax * s.KMax

	s.DX = (xMax - xMin) / float64(s.NX-1)
	s.DY = (yMax - yMin) / float64(s.NY-1)
	s.DZ = (zMax - zMin) / float64(s.NZ-1)
	s.DDX = 1.0 / s.DX
	s.DDY = 1.0 / s.DY
	s.DDZ = 1.0 / s.DZ
	s.TinyL = 1.0e-3 * math.Min(s.DZ, math.Min(s.DX, s.DY))

	s.Flag = make([]NodeFlag, s.NMax)
	s.GeoID = make([]int, s.NMax)
	for i := range s.GeoID {
		s.GeoID[i] = -1
	}
	return s
}

// Index linearizes (k,j,i) into a flat offset into Flag/GeoID and, scaled by
// 5, into a Field buffer.
func (s *Space) Index(k, j, i int) int {
	return geom.Index(k, j, i, s.JMax, s.IMax)
}

// X returns the physical x coordinate of node layer i.
func (s *Space) X(i int) float64 { return geom.NodeCoord(i, s.XMin, s.DX, s.NG) }

// Y returns the physical y coordinate of node layer j.
func (s *Space) Y(j int) float64 { return geom.NodeCoord(j, s.YMin, s.DY, s.NG) }

// Z returns the physical z coordinate of node layer k.
func (s *Space) Z(k int) float64 { return geom.NodeCoord(k, s.ZMin, s.DZ, s.NG) }

// NodeAtX converts a physical x coordinate to the nearest clamped node
// index, per spec.md 4.1's half-cell rounding rule.
func (s *Space) NodeAtX(x float64) int {
	return geom.ClampNode(geom.CoordToNode(x, s.XMin, s.DDX, s.NG), s.NG, s.IMax)
}

// NodeAtY is the y-axis analogue of NodeAtX.
func (s *Space) NodeAtY(y float64) int {
	return geom.ClampNode(geom.CoordToNode(y, s.YMin, s.DDY, s.NG), s.NG, s.JMax)
}

// NodeAtZ is the z-axis analogue of NodeAtX.
func (s *Space) NodeAtZ(z float64) int {
	return geom.ClampNode(geom.CoordToNode(z, s.ZMin, s.DDZ, s.NG), s.NG, s.KMax)
}

// ResetFlags sets every node in the padded domain to the exterior sentinel,
// the first pass of the ghost-cell classifier (spec.md 4.6 step 1).
func (s *Space) ResetFlags() {
	for idx := range s.Flag {
		s.Flag[idx] = FlagExterior
		s.GeoID[idx] = -1
	}
}
