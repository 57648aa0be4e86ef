package partition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artracfd/gocfd/internal/field"
	"github.com/artracfd/gocfd/internal/thermo"
)

func uniformBuffer(sp *field.Space, u [field.DimU]float64) []float64 {
	buf := make([]float64, sp.NMax*field.DimU)
	for idx := 0; idx < sp.NMax; idx++ {
		field.Set(buf, idx, u)
	}
	return buf
}

func testModel() thermo.Model {
	gamma := 1.4
	return thermo.Model{Gamma: gamma, GasR: 1.0, Cv: 1.0 / (gamma - 1.0), RefMu: 1.0e-3, RefT: 1.0}
}

func TestNewPartitionBox12IsInnermostInterior(t *testing.T) {
	sp := field.NewSpace(10, 10, 10, 2, 0, 1, 0, 1, 0, 1)
	p := New(sp.KMax, sp.JMax, sp.IMax, sp.NG)
	box := p.Boxes[12]
	assert.Equal(t, sp.NG, box.KSub)
	assert.Equal(t, sp.KMax-sp.NG, box.KSup)
	assert.Equal(t, sp.NG, box.ISub)
	assert.Equal(t, sp.IMax-sp.NG, box.ISup)
}

func TestApplyFluidKindIsZeroGradientCopy(t *testing.T) {
	sp := field.NewSpace(10, 10, 10, 2, 0, 1, 0, 1, 0, 1)
	m := testModel()
	u := [field.DimU]float64{1.1, 0.2, -0.1, 0.05, 3.0}
	buf := uniformBuffer(sp, u)

	p := New(sp.KMax, sp.JMax, sp.IMax, sp.NG)
	require.NoError(t, Apply(sp, buf, m, p))

	for i := 0; i < sp.NG; i++ {
		idx := sp.Index(sp.KMax/2, sp.JMax/2, i)
		got := field.At(buf, idx)
		for c := 0; c < field.DimU; c++ {
			assert.InDelta(t, u[c], got[c], 1e-9)
		}
	}
}

func TestApplyNoSlipWallZeroVelocityReflectsGhost(t *testing.T) {
	sp := field.NewSpace(10, 10, 10, 2, 0, 1, 0, 1, 0, 1)
	m := testModel()
	u := [field.DimU]float64{1.0, 0.5, 0, 0, 3.0}
	buf := uniformBuffer(sp, u)

	p := New(sp.KMax, sp.JMax, sp.IMax, sp.NG)
	p.SetFace(1, NoSlipWall, thermo.Primitive{}) // wall at rest
	require.NoError(t, Apply(sp, buf, m, p))

	ghostIdx := sp.Index(sp.KMax/2, sp.JMax/2, sp.NG-1)
	prim, err := m.ToPrimitive(field.At(buf, ghostIdx))
	require.NoError(t, err)
	assert.InDelta(t, -0.5, prim.U, 1e-9, "ghost velocity must mirror the interior about the wall's zero velocity")
}

func TestApplySlipWallReflectsNormalVelocityOnly(t *testing.T) {
	sp := field.NewSpace(10, 10, 10, 2, 0, 1, 0, 1, 0, 1)
	m := testModel()
	u := [field.DimU]float64{1.0, 0.5, 0.2, 0, 3.0}
	buf := uniformBuffer(sp, u)

	p := New(sp.KMax, sp.JMax, sp.IMax, sp.NG)
	p.SetFace(1, SlipWall, thermo.Primitive{})
	require.NoError(t, Apply(sp, buf, m, p))

	ghostIdx := sp.Index(sp.KMax/2, sp.JMax/2, sp.NG-1)
	prim, err := m.ToPrimitive(field.At(buf, ghostIdx))
	require.NoError(t, err)
	assert.InDelta(t, -0.5, prim.U, 1e-9, "normal (X) component must flip sign")
	assert.InDelta(t, 0.2, prim.V, 1e-9, "tangential (Y) component must pass through unchanged")
}

func TestApplyPeriodicWrapsOppositeFace(t *testing.T) {
	sp := field.NewSpace(10, 10, 10, 2, 0, 1, 0, 1, 0, 1)
	m := testModel()
	u := [field.DimU]float64{1.0, 0.1, 0, 0, 3.0}
	buf := uniformBuffer(sp, u)

	marked := [field.DimU]float64{1.3, 0.1, 0, 0, 3.3}
	markedIdx := sp.Index(sp.KMax/2, sp.JMax/2, sp.NG)
	field.Set(buf, markedIdx, marked)

	p := New(sp.KMax, sp.JMax, sp.IMax, sp.NG)
	p.SetFace(2, Periodic, thermo.Primitive{})
	require.NoError(t, Apply(sp, buf, m, p))

	ghostIdx := sp.Index(sp.KMax/2, sp.JMax/2, sp.IMax-sp.NG)
	got := field.At(buf, ghostIdx)
	for c := 0; c < field.DimU; c++ {
		assert.InDelta(t, marked[c], got[c], 1e-9)
	}
}
