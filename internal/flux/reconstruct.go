package flux

import (
	"gonum.org/v1/gonum/mat"

	"github.com/artracfd/gocfd/internal/characteristic"
	"github.com/artracfd/gocfd/internal/field"
	"github.com/artracfd/gocfd/internal/geom"
)

// Reconstruct returns the numerical convective flux at the face between the
// conservative states uL, uR in direction s, by splitting the flux Jacobian
// eigenstructure into outgoing (Lambda+) and incoming (Lambda-) waves in
// characteristic space and recombining:
//
//	F_face = R_s * (Lambda+ .* (L_s*uL) + Lambda- .* (L_s*uR))
//
// This is the flux reconstruction in characteristic space spec.md 4.3/4.4
// call for; Convective (this package) remains the plain flux-function
// evaluation used inside that reconstruction's consistency checks.
func Reconstruct(s geom.Axis, averager characteristic.Averager, splitter characteristic.Splitter, gamma float64, uL, uR [field.DimU]float64) [field.DimU]float64 {
	avg := characteristic.Average(averager, gamma, uL, uR)
	lambda := characteristic.Eigenvalue(s, avg)
	lambdaPlus, lambdaMinus := characteristic.Split(splitter, lambda)
	L := characteristic.LeftEigenvectors(s, gamma, avg)
	R := characteristic.RightEigenvectors(s, avg)

	wL := mat.NewVecDense(field.DimU, uL[:])
	wR := mat.NewVecDense(field.DimU, uR[:])
	var cL, cR mat.VecDense
	cL.MulVec(L, wL)
	cR.MulVec(L, wR)

	comb := mat.NewVecDense(field.DimU, nil)
	for row := 0; row < field.DimU; row++ {
		comb.SetVec(row, lambdaPlus[row]*cL.AtVec(row)+lambdaMinus[row]*cR.AtVec(row))
	}

	var fFace mat.VecDense
	fFace.MulVec(R, comb)

	var out [field.DimU]float64
	for row := 0; row < field.DimU; row++ {
		out[row] = fFace.AtVec(row)
	}
	return out
}
