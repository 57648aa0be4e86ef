package ensight

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artracfd/gocfd/internal/field"
	"github.com/artracfd/gocfd/internal/ibm"
	"github.com/artracfd/gocfd/internal/partition"
	"github.com/artracfd/gocfd/internal/thermo"
)

func testFixture(t *testing.T) (*field.Space, []float64, thermo.Model, *partition.Partition) {
	t.Helper()
	sp := field.NewSpace(4, 4, 4, 1, 0, 1, 0, 1, 0, 1)
	buf := make([]float64, sp.NMax*field.DimU)
	u := [field.DimU]float64{1.0, 0.2, 0.0, 0.0, 2.5}
	for idx := 0; idx < sp.NMax; idx++ {
		field.Set(buf, idx, u)
	}
	box := ibm.Bounds{KMin: 0, KMax: sp.KMax, JMin: 0, JMax: sp.JMax, IMin: 0, IMax: sp.IMax}
	ibm.Classify(sp, nil, box)
	m := thermo.Model{Gamma: 1.4, GasR: 1.0, Cv: 1.0 / 0.4, RefMu: 1e-3, RefT: 1.0}
	part := partition.New(sp.KMax, sp.JMax, sp.IMax, sp.NG)
	return sp, buf, m, part
}

func TestWriteProducesAllExpectedFiles(t *testing.T) {
	dir := t.TempDir()
	sp, buf, m, part := testFixture(t)

	e, err := New(dir)
	require.NoError(t, err)
	require.NoError(t, e.Write(sp, buf, m, part, 0, 0.0))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make(map[string]bool, len(entries))
	for _, ent := range entries {
		names[ent.Name()] = true
	}

	stamp := e.RunID + "-ensight00000"
	for _, suffix := range []string{".geo", ".case", ".rho", ".u", ".v", ".w", ".p", ".T", ".Vel"} {
		assert.True(t, names[stamp+suffix], "missing %s", suffix)
	}
	assert.True(t, names[e.RunID+"-ensight.case"], "missing transient case file")
}

func TestWriteGeometryFileStartsWithBinaryHeader(t *testing.T) {
	dir := t.TempDir()
	sp, buf, m, part := testFixture(t)

	e, err := New(dir)
	require.NoError(t, err)
	require.NoError(t, e.Write(sp, buf, m, part, 0, 0.0))

	data, err := os.ReadFile(filepath.Join(dir, e.RunID+"-ensight00000.geo"))
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(data), stringLen)

	header := string(data[:8])
	assert.Equal(t, "C Binary", header)
}

func TestWriteRejectsUnwritableDirectory(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	_, err := New(filepath.Join(blocker, "child"))
	require.Error(t, err)
}
