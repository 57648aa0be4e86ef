package characteristic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"

	"github.com/artracfd/gocfd/internal/field"
	"github.com/artracfd/gocfd/internal/geom"
)

const gamma = 1.4

func sampleStates() [][2][field.DimU]float64 {
	return [][2][field.DimU]float64{
		{
			{1.0, 0.2, 0.0, 0.0, 2.5},
			{0.9, 0.25, 0.05, -0.02, 2.3},
		},
		{
			{0.125, 0.0, 0.0, 0.0, 0.25},
			{1.0, 0.0, 0.0, 0.0, 2.5},
		},
	}
}

func TestEigenvectorInverse(t *testing.T) {
	for _, averager := range []Averager{Arithmetic, Roe} {
		for _, pair := range sampleStates() {
			avg := Average(averager, gamma, pair[0], pair[1])
			assert.Greater(t, avg.C, 0.0)
			for _, s := range []geom.Axis{geom.X, geom.Y, geom.Z} {
				L := LeftEigenvectors(s, gamma, avg)
				R := RightEigenvectors(s, avg)
				var LR mat.Dense
				LR.Mul(L, R)
				maxErr := 0.0
				for i := 0; i < 5; i++ {
					for j := 0; j < 5; j++ {
						want := 0.0
						if i == j {
							want = 1.0
						}
						diff := math.Abs(LR.At(i, j) - want)
						if diff > maxErr {
							maxErr = diff
						}
					}
				}
				assert.Less(t, maxErr, 1e-10, "direction %v averager %v", s, averager)
			}
		}
	}
}

func TestSplitterSumAndSign(t *testing.T) {
	lambdas := [][5]float64{
		{-3.1, -0.2, -0.2, -0.2, 2.9},
		{-1.0, 0.0, 0.0, 0.0, 1.0},
		{1.0, 5.0, 5.0, 5.0, 9.0},
	}
	for _, lambda := range lambdas {
		plus, minus := Split(LaxFriedrichs, lambda)
		for row := 0; row < 5; row++ {
			assert.InDelta(t, lambda[row], plus[row]+minus[row], 1e-12)
		}
		plus, minus = Split(StegerWarming, lambda)
		for row := 0; row < 5; row++ {
			assert.InDelta(t, lambda[row], plus[row]+minus[row], 1e-3)
			assert.GreaterOrEqual(t, plus[row], 0.0)
			assert.LessOrEqual(t, minus[row], 0.0)
		}
	}
}
