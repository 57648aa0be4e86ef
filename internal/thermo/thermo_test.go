package thermo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artracfd/gocfd/internal/field"
)

func sampleModel() Model {
	return Model{Gamma: 1.4, GasR: 8.314462175, Cv: 8.314462175 / 0.4, RefMu: 1.0, RefT: 1.0}
}

func TestPrimitiveConservativeRoundTrip(t *testing.T) {
	m := sampleModel()
	cases := []Primitive{
		{Rho: 1.0, U: 0.3, V: -0.1, W: 0.05, P: 1.0},
		{Rho: 0.125, U: 0, V: 0, W: 0, P: 0.1},
		{Rho: 2.5, U: 10, V: 5, W: -3, P: 50},
	}
	for _, p0 := range cases {
		u := m.ToConservative(p0)
		p1, err := m.ToPrimitive(u)
		assert.NoError(t, err)
		assert.InDelta(t, p0.Rho, p1.Rho, 1e-12*math.Max(1, p0.Rho))
		assert.InDelta(t, p0.U, p1.U, 1e-12*math.Max(1, math.Abs(p0.U)))
		assert.InDelta(t, p0.V, p1.V, 1e-12*math.Max(1, math.Abs(p0.V)))
		assert.InDelta(t, p0.W, p1.W, 1e-12*math.Max(1, math.Abs(p0.W)))
		assert.InDelta(t, p0.P, p1.P, 1e-10*math.Max(1, p0.P))
	}
}

func TestNonPhysicalStateRejected(t *testing.T) {
	m := sampleModel()
	_, err := m.ToPrimitive([field.DimU]float64{-1, 0, 0, 0, 1})
	assert.Error(t, err)
	_, err = m.ToPrimitive([field.DimU]float64{1, 0, 0, 0, -1})
	assert.Error(t, err)
}

func TestSutherlandViscosityMonotonicInTemperature(t *testing.T) {
	mu1 := Sutherland(200)
	mu2 := Sutherland(400)
	assert.Greater(t, mu2, mu1)
	assert.InDelta(t, 1.458e-6*math.Pow(288.15, 1.5)/(288.15+110.4), Sutherland(288.15), 1e-18)
}

func TestThermalConductivity(t *testing.T) {
	m := sampleModel()
	mu := 1.0e-5
	k := m.ThermalConductivity(mu)
	assert.InDelta(t, m.Gamma*m.Cv*mu/Prandtl, k, 1e-18)
}
