package caseinput

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artracfd/gocfd/internal/partition"
)

func sampleCaseFile() *CaseFile {
	cf := &CaseFile{
		Title: "sample",
		NCX:   8, NCY: 8, NCZ: 8, NG: 2,
		XMin: 0, XMax: 1, YMin: 0, YMax: 1, ZMin: 0, ZMax: 1,
		RefLength: 1, RefVelocity: 1, RefDensity: 1, RefTemperature: 288,
		RefMu: 1.8e-5,
		TotalTime: 1, TotalStep: 100, CFL: 0.5,
	}
	cf.Faces[0] = FaceBC{Kind: "inlet", Rho: 1, U: 0.5, P: 1}
	cf.Faces[1] = FaceBC{Kind: "outlet", Rho: 1, P: 1}
	for i := 2; i < 6; i++ {
		cf.Faces[i] = FaceBC{Kind: "slip-wall"}
	}
	cf.Bodies = []BodySpec{{Shape: "sphere", X: 0.5, Y: 0.5, Z: 0.5, Radius: 0.1, U: 0.2}}
	return cf
}

func TestParseRoundTripsYAML(t *testing.T) {
	data := []byte(`
title: roundtrip
ncx: 4
ncy: 4
ncz: 4
ng: 2
refLength: 1
refVelocity: 1
refDensity: 1
refTemperature: 288
cfl: 0.4
faces:
  - kind: inlet
  - kind: outlet
`)
	cf, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "roundtrip", cf.Title)
	assert.Equal(t, 4, cf.NCX)
	assert.InDelta(t, 0.4, cf.CFL, 1e-12)
	assert.Equal(t, "inlet", cf.Faces[0].Kind)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("not: [valid"))
	require.Error(t, err)
}

func TestBuildResolvesFacesAndBodies(t *testing.T) {
	cf := sampleCaseFile()
	resolved, part, bodies, err := Build(cf)
	require.NoError(t, err)

	assert.Equal(t, partition.Inlet, part.Boxes[1].Kind)
	assert.Equal(t, partition.Outlet, part.Boxes[2].Kind)
	assert.Equal(t, partition.SlipWall, part.Boxes[3].Kind)
	assert.InDelta(t, 0.5, part.Boxes[1].Value.U, 1e-12)

	require.Len(t, bodies, 1)
	assert.Equal(t, 100, cf.TotalStep)
	assert.Greater(t, resolved.Space.NMax, 0)
}

func TestBuildRejectsUnknownFaceKind(t *testing.T) {
	cf := sampleCaseFile()
	cf.Faces[0].Kind = "not-a-kind"
	_, _, _, err := Build(cf)
	require.Error(t, err)
}

func TestBuildRejectsZeroReferenceScale(t *testing.T) {
	cf := sampleCaseFile()
	cf.RefLength = 0
	_, _, _, err := Build(cf)
	require.Error(t, err)
}

func TestApplyEnvOverridesLeavesUnsetKeysUnchanged(t *testing.T) {
	cf := sampleCaseFile()
	orig := cf.CFL
	ApplyEnvOverrides(cf)
	assert.InDelta(t, orig, cf.CFL, 1e-12)
}
