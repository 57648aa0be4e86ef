package characteristic

import "math"

// Splitter selects the eigenvalue-splitting variant.
type Splitter int

const (
	LaxFriedrichs Splitter = iota
	StegerWarming
)

// stegerWarmingEpsilon is the entropy-fix smoothing parameter (spec.md 4.3).
const stegerWarmingEpsilon = 1.0e-3

// Split decomposes Lambda into LambdaPlus, LambdaMinus with
// LambdaPlus+LambdaMinus=Lambda. Grounded on
// original_source/cfd_commons.c's LocalLaxFriedrichs and StegerWarming.
func Split(splitter Splitter, lambda [5]float64) (plus, minus [5]float64) {
	switch splitter {
	case StegerWarming:
		for row := 0; row < 5; row++ {
			s := math.Sqrt(lambda[row]*lambda[row] + stegerWarmingEpsilon*stegerWarmingEpsilon)
			plus[row] = 0.5 * (lambda[row] + s)
			minus[row] = 0.5 * (lambda[row] - s)
		}
	default: // LaxFriedrichs
		lambdaStar := math.Abs(lambda[2]) + lambda[4] - lambda[2]
		for row := 0; row < 5; row++ {
			plus[row] = 0.5 * (lambda[row] + lambdaStar)
			minus[row] = 0.5 * (lambda[row] - lambdaStar)
		}
	}
	return plus, minus
}
