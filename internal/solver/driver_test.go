package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artracfd/gocfd/internal/characteristic"
	"github.com/artracfd/gocfd/internal/field"
	"github.com/artracfd/gocfd/internal/ibm"
	"github.com/artracfd/gocfd/internal/partition"
	"github.com/artracfd/gocfd/internal/thermo"
)

func uniformModel() thermo.Model {
	return thermo.Model{Gamma: 1.4, GasR: 1.0, Cv: 1.0 / 0.4, RefMu: 0, RefT: 1.0}
}

// uniformDriver builds a Driver over a body-free box with a spatially
// uniform conservative state, every exterior face set Fluid so applyFace's
// zero-gradient copy is a no-op.
func uniformDriver(t *testing.T, u [field.DimU]float64) *Driver {
	t.Helper()
	sp := field.NewSpace(8, 8, 8, 2, 0, 1, 0, 1, 0, 1)
	part := partition.New(sp.KMax, sp.JMax, sp.IMax, sp.NG)
	m := uniformModel()

	cfg := Config{CFL: 0.5, TotalTime: 1.0, TotalStep: 10, Averager: characteristic.Roe, Splitter: characteristic.LaxFriedrichs, Workers: 2}
	d := New(sp, m, part, nil, cfg, nil)

	buf := d.Field.Cur()
	for idx := 0; idx < sp.NMax; idx++ {
		field.Set(buf, idx, u)
	}
	copy(d.Field.Next(), buf)
	return d
}

func TestStepLeavesUniformFlowUnchanged(t *testing.T) {
	u := [field.DimU]float64{1.0, 0.3, 0.0, 0.0, 2.5}
	d := uniformDriver(t, u)

	_, err := d.Step()
	require.NoError(t, err)

	sp := d.Space
	box := d.Box12
	mid := sp.Index((box.KMin+box.KMax)/2, (box.JMin+box.JMax)/2, (box.IMin+box.IMax)/2)
	got := field.At(d.Field.Cur(), mid)
	for c := 0; c < field.DimU; c++ {
		assert.InDelta(t, u[c], got[c], 1e-9, "component %d", c)
	}
}

func TestStepAdvancesTimeAndStepCount(t *testing.T) {
	u := [field.DimU]float64{1.0, 0.3, 0.0, 0.0, 2.5}
	d := uniformDriver(t, u)

	dt, err := d.Step()
	require.NoError(t, err)
	assert.Greater(t, dt, 0.0)
	assert.Equal(t, 1, d.StepCount)
	assert.InDelta(t, dt, d.Time, 1e-12)
}

func TestRunStopsAtTotalStep(t *testing.T) {
	u := [field.DimU]float64{1.0, 0.0, 0.0, 0.0, 2.5}
	d := uniformDriver(t, u)
	d.Config.TotalStep = 3
	d.Config.TotalTime = 1.0e9

	require.NoError(t, d.Run())
	assert.Equal(t, 3, d.StepCount)
}

func TestAnyBodyMovingReflectsKinematicVelocity(t *testing.T) {
	u := [field.DimU]float64{1.0, 0.0, 0.0, 0.0, 2.5}
	d := uniformDriver(t, u)
	assert.False(t, d.anyBodyMoving())

	d.Bodies = []ibm.Body{ibm.Sphere{Radius: 0.1, Vel: [3]float64{1, 0, 0}}}
	assert.True(t, d.anyBodyMoving())
}

func TestSplitRangeCoversWholeRangeWithoutOverlap(t *testing.T) {
	total, n := 17, 4
	seen := make([]bool, total)
	for part := 0; part < n; part++ {
		start, end := splitRange(total, n, part)
		for i := start; i < end; i++ {
			require.False(t, seen[i], "index %d covered twice", i)
			seen[i] = true
		}
	}
	for i, ok := range seen {
		assert.True(t, ok, "index %d never covered", i)
	}
}
