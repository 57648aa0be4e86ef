// Package cfdparams normalizes a case file's dimensional domain, reference
// scales and time controls into the nondimensional grid and gas model every
// other package consumes. Grounded on original_source/cfdparameters.c
// (NodeBasedMeshNumberRefine, InitializeCFDParameters).
package cfdparams

import (
	"math"

	"github.com/artracfd/gocfd/internal/field"
	"github.com/artracfd/gocfd/internal/thermo"
)

// RawInput carries a case file's dimensional inputs before normalization.
type RawInput struct {
	NCX, NCY, NCZ int
	NG            int
	XMin, XMax    float64
	YMin, YMax    float64
	ZMin, ZMax    float64

	RefLength      float64
	RefVelocity    float64
	RefDensity     float64
	RefTemperature float64
	RefMu          float64

	TotalTime float64
	TotalStep int
}

// Resolved carries the normalized grid, gas model and time controls a solve
// consumes.
type Resolved struct {
	Space     *field.Space
	Model     thermo.Model
	TotalTime float64
	TotalStep int
}

// gasRUniversal is the universal gas constant in SI units
// (J/(mol.K)), used only to compute the reference Mach number.
const gasRUniversal = 8.314462175

// gamma is fixed at 1.4 (air), matching
// original_source/cfdparameters.c's InitializeCFDParameters.
const gamma = 1.4

// Resolve implements spec.md 4.7's normalization: node-count refinement
// (handled by field.NewSpace's ncx+2 convention), reference-length
// nondimensionalization of the domain and spacings, reference-scale
// nondimensionalization of time, and the gamma/gasR/cv/refMu derivation
// chain, exactly as original_source/cfdparameters.c computes them.
func Resolve(in RawInput) Resolved {
	sp := field.NewSpace(in.NCX, in.NCY, in.NCZ, in.NG,
		in.XMin/in.RefLength, in.XMax/in.RefLength,
		in.YMin/in.RefLength, in.YMax/in.RefLength,
		in.ZMin/in.RefLength, in.ZMax/in.RefLength,
	)

	totalTime := in.TotalTime * in.RefVelocity / in.RefLength
	totalStep := in.TotalStep
	if totalStep < 0 {
		totalStep = 9000000
	}

	refMa := in.RefVelocity / math.Sqrt(gamma*gasRUniversal*in.RefTemperature)
	refMuNormalized := in.RefMu / (in.RefDensity * in.RefVelocity * in.RefLength)
	gasR := 1.0 / (gamma * refMa * refMa)
	cv := gasR / (gamma - 1.0)

	model := thermo.Model{
		Gamma: gamma,
		GasR:  gasR,
		Cv:    cv,
		RefMu: refMuNormalized,
		RefT:  in.RefTemperature,
	}

	return Resolved{Space: sp, Model: model, TotalTime: totalTime, TotalStep: totalStep}
}
