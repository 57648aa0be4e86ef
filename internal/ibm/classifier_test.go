package ibm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artracfd/gocfd/internal/field"
	"github.com/artracfd/gocfd/internal/geom"
)

func centeredSpace(t *testing.T) *field.Space {
	t.Helper()
	return field.NewSpace(16, 16, 16, 2, -1, 1, -1, 1, -1, 1)
}

func fullBox(sp *field.Space) Bounds {
	return Bounds{KMin: 0, KMax: sp.KMax, JMin: 0, JMax: sp.JMax, IMin: 0, IMax: sp.IMax}
}

func TestClassifyCenteredSphereProducesAllFourFlags(t *testing.T) {
	sp := centeredSpace(t)
	sphere := Sphere{Center: geom.Vec3{0, 0, 0}, Radius: 0.3, ID: 0}
	interior := Bounds{
		KMin: sp.NG, KMax: sp.KMax - sp.NG,
		JMin: sp.NG, JMax: sp.JMax - sp.NG,
		IMin: sp.NG, IMax: sp.IMax - sp.NG,
	}
	Classify(sp, []Body{sphere}, interior)

	seen := map[field.NodeFlag]bool{}
	for _, f := range sp.Flag {
		seen[f] = true
	}
	assert.True(t, seen[field.FlagFluid], "expect fluid nodes away from the sphere")
	assert.True(t, seen[field.FlagSolid], "expect solid nodes at the sphere core")
	assert.True(t, seen[field.FlagGhost], "expect ghost nodes at the sphere surface")
	assert.True(t, seen[field.FlagExterior], "expect exterior sentinel in the ghost-layer padding")
	assert.False(t, seen[field.FlagUninitialized], "every node must be classified")
}

func TestClassifyGhostNodesHaveFluidNeighbor(t *testing.T) {
	sp := centeredSpace(t)
	sphere := Sphere{Center: geom.Vec3{0, 0, 0}, Radius: 0.3, ID: 0}
	Classify(sp, []Body{sphere}, fullBox(sp))

	for k := 1; k < sp.KMax-1; k++ {
		for j := 1; j < sp.JMax-1; j++ {
			for i := 1; i < sp.IMax-1; i++ {
				idx := sp.Index(k, j, i)
				if sp.Flag[idx] != field.FlagGhost {
					continue
				}
				neighbors := [6]int{
					sp.Index(k, j, i-1), sp.Index(k, j, i+1),
					sp.Index(k, j-1, i), sp.Index(k, j+1, i),
					sp.Index(k-1, j, i), sp.Index(k+1, j, i),
				}
				anyFluid := false
				for _, n := range neighbors {
					if sp.Flag[n] == field.FlagFluid {
						anyFluid = true
					}
				}
				assert.True(t, anyFluid, "ghost node at (%d,%d,%d) has no fluid neighbor", k, j, i)
			}
		}
	}
}

func TestClassifyNoBodiesLeavesInteriorEntirelyFluid(t *testing.T) {
	sp := centeredSpace(t)
	Classify(sp, nil, fullBox(sp))
	box := fullBox(sp)
	for k := box.KMin; k < box.KMax; k++ {
		for j := box.JMin; j < box.JMax; j++ {
			for i := box.IMin; i < box.IMax; i++ {
				assert.Equal(t, field.FlagFluid, sp.Flag[sp.Index(k, j, i)])
			}
		}
	}
}

func TestClassifyInteriorReclassifiesMovedBodyWithoutStaleGhosts(t *testing.T) {
	sp := centeredSpace(t)
	box := fullBox(sp)
	sphere := Sphere{Center: geom.Vec3{-0.5, 0, 0}, Radius: 0.2, ID: 0}
	Classify(sp, []Body{sphere}, box)

	oldSolidIdx := sp.Index(sp.KMax/2, sp.JMax/2, sp.NodeAtX(-0.5))
	assert.Equal(t, field.FlagSolid, sp.Flag[oldSolidIdx])

	sphere.Center = geom.Vec3{0.5, 0, 0}
	ClassifyInterior(sp, []Body{sphere}, box)

	assert.NotEqual(t, field.FlagSolid, sp.Flag[oldSolidIdx], "stale solid flag must clear once the body has moved away")
	newSolidIdx := sp.Index(sp.KMax/2, sp.JMax/2, sp.NodeAtX(0.5))
	assert.Equal(t, field.FlagSolid, sp.Flag[newSolidIdx])
}

func TestBodyPredicates(t *testing.T) {
	sphere := Sphere{Center: geom.Vec3{0, 0, 0}, Radius: 1.0, ID: 1}
	assert.True(t, sphere.Inside(geom.Vec3{0.5, 0, 0}))
	assert.False(t, sphere.Inside(geom.Vec3{2, 0, 0}))

	box := Box{Min: geom.Vec3{-1, -1, -1}, Max: geom.Vec3{1, 1, 1}, ID: 2}
	assert.True(t, box.Inside(geom.Vec3{0.9, -0.9, 0}))
	assert.False(t, box.Inside(geom.Vec3{1.1, 0, 0}))

	wall := HalfSpace{Point: geom.Vec3{0, 0, 0}, Normal: geom.Vec3{1, 0, 0}, ID: 3}
	assert.True(t, wall.Inside(geom.Vec3{-0.1, 0, 0}))
	assert.False(t, wall.Inside(geom.Vec3{0.1, 0, 0}))
}
