package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexIsBijection(t *testing.T) {
	const jMax, iMax, kMax = 5, 7, 4
	seen := make(map[int]bool, kMax*jMax*iMax)
	for k := 0; k < kMax; k++ {
		for j := 0; j < jMax; j++ {
			for i := 0; i < iMax; i++ {
				idx := Index(k, j, i, jMax, iMax)
				assert.False(t, seen[idx], "index %d produced twice", idx)
				seen[idx] = true
				assert.True(t, idx >= 0 && idx < kMax*jMax*iMax)
			}
		}
	}
	assert.Len(t, seen, kMax*jMax*iMax)
}

func TestNodeCoordRoundTrip(t *testing.T) {
	const (
		ng     = 2
		xMin   = -1.5
		dx     = 0.1
		ddx    = 1.0 / dx
		nMin   = ng
		nMax   = 40
	)
	for x0 := xMin; x0 <= xMin+3.0; x0 += 0.037 {
		n := ClampNode(CoordToNode(x0, xMin, ddx, ng), nMin, nMax)
		x := NodeCoord(n, xMin, dx, ng)
		assert.InDelta(t, x0, x, 0.5*dx+1e-9)
	}
}

func TestVectorAlgebra(t *testing.T) {
	a := Vec3{1, 0, 0}
	b := Vec3{0, 1, 0}
	assert.Equal(t, Vec3{0, 0, 1}, Cross(a, b))
	assert.InDelta(t, 0.0, Dot(a, b), 1e-15)
	assert.InDelta(t, 1.0, Norm(a), 1e-15)
}

func TestOrthogonalFrameIsRightHanded(t *testing.T) {
	n := Normalize(Vec3{1, 2, 2}, Norm(Vec3{1, 2, 2}))
	ta, tb := OrthogonalFrame(n)
	assert.InDelta(t, 0.0, Dot(n, ta), 1e-12)
	assert.InDelta(t, 0.0, Dot(n, tb), 1e-12)
	assert.InDelta(t, 0.0, Dot(ta, tb), 1e-12)
	assert.InDelta(t, 1.0, Norm(ta), 1e-12)
	assert.InDelta(t, 1.0, Dot(Cross(ta, tb), n), 1e-12)
}
