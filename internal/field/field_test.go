package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpaceDerivedCounts(t *testing.T) {
	s := NewSpace(10, 10, 10, 2, 0, 1, 0, 1, 0, 1)
	assert.Equal(t, 12, s.NX)
	assert.Equal(t, 16, s.IMax)
	assert.InDelta(t, 1.0/11.0, s.DX, 1e-12)
	assert.InDelta(t, 11.0, s.DDX, 1e-9)
	assert.Equal(t, s.IMax*s.JMax*s.KMax, s.NMax)
}

func TestResetFlagsSetsExteriorSentinel(t *testing.T) {
	s := NewSpace(4, 4, 4, 1, 0, 1, 0, 1, 0, 1)
	s.ResetFlags()
	for _, fl := range s.Flag {
		assert.Equal(t, FlagExterior, fl)
		assert.Equal(t, 2, fl.Sentinel())
	}
	for _, g := range s.GeoID {
		assert.Equal(t, -1, g)
	}
}

func TestFieldSwapIsPointerExchangeAndIdempotentTwice(t *testing.T) {
	f := NewField(8)
	Set(f.Next(), 0, [DimU]float64{1, 2, 3, 4, 5})

	f.Swap()
	assert.Equal(t, [DimU]float64{1, 2, 3, 4, 5}, At(f.Cur(), 0))

	f.Swap()
	// Swapping twice restores both buffers to their initial roles (S5): the
	// freshly-written state is back in Next, not Cur.
	assert.Equal(t, [DimU]float64{1, 2, 3, 4, 5}, At(f.Next(), 0))
	assert.Equal(t, [DimU]float64{0, 0, 0, 0, 0}, At(f.Cur(), 0))
}

func TestAtSetRoundTrip(t *testing.T) {
	buf := make([]float64, 5*3)
	u := [DimU]float64{1.1, 2.2, 3.3, 4.4, 5.5}
	Set(buf, 1, u)
	assert.Equal(t, u, At(buf, 1))
}
