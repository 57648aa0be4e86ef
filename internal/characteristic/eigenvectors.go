package characteristic

import (
	"github.com/artracfd/gocfd/internal/geom"

	"gonum.org/v1/gonum/mat"
)

// LeftEigenvectors returns the 5x5 matrix L_s whose rows are the left
// eigenvectors of the Euler flux Jacobian in direction s, evaluated at the
// averaged state avg. Entries are the closed-form table from
// original_source/cfd_commons.c's EigenvectorLX/LY/LZ and must be
// reproduced exactly (spec.md 4.3).
func LeftEigenvectors(s geom.Axis, gamma float64, avg State) *mat.Dense {
	u, v, w, c := avg.U, avg.V, avg.W, avg.C
	q := 0.5 * (u*u + v*v + w*w)
	b := (gamma - 1.0) / (2.0 * c * c)
	d := 1.0 / (2.0 * c)

	var rows [5][5]float64
	switch s {
	case geom.X:
		rows = [5][5]float64{
			{b*q + d*u, -b*u - d, -b * v, -b * w, b},
			{-2*b*q + 1, 2 * b * u, 2 * b * v, 2 * b * w, -2 * b},
			{-2 * b * q * v, 2 * b * v * u, 2*b*v*v + 1, 2 * b * w * v, -2 * b * v},
			{-2 * b * q * w, 2 * b * w * u, 2 * b * w * v, 2*b*w*w + 1, -2 * b * w},
			{b*q - d*u, -b*u + d, -b * v, -b * w, b},
		}
	case geom.Y:
		rows = [5][5]float64{
			{b*q + d*v, -b * u, -b*v - d, -b * w, b},
			{-2 * b * q * u, 2*b*u*u + 1, 2 * b * v * u, 2 * b * w * u, -2 * b * u},
			{-2*b*q + 1, 2 * b * u, 2 * b * v, 2 * b * w, -2 * b},
			{-2 * b * q * w, 2 * b * w * u, 2 * b * w * v, 2*b*w*w + 1, -2 * b * w},
			{b*q - d*v, -b * u, -b*v + d, -b * w, b},
		}
	default: // Z
		rows = [5][5]float64{
			{b*q + d*w, -b * u, -b * v, -b*w - d, b},
			{-2 * b * q * u, 2*b*u*u + 1, 2 * b * v * u, 2 * b * w * u, -2 * b * u},
			{-2 * b * q * v, 2 * b * v * u, 2*b*v*v + 1, 2 * b * w * v, -2 * b * v},
			{-2*b*q + 1, 2 * b * u, 2 * b * v, 2 * b * w, -2 * b},
			{b*q - d*w, -b * u, -b * v, -b*w + d, b},
		}
	}
	data := make([]float64, 0, 25)
	for _, r := range rows {
		data = append(data, r[:]...)
	}
	return mat.NewDense(5, 5, data)
}

// RightEigenvectors returns the 5x5 matrix R_s whose columns are the right
// eigenvectors of the Euler flux Jacobian in direction s. Closed-form table
// from original_source/cfd_commons.c's EigenvectorRX/RY/RZ.
func RightEigenvectors(s geom.Axis, avg State) *mat.Dense {
	u, v, w, hT, c := avg.U, avg.V, avg.W, avg.HT, avg.C
	q := 0.5 * (u*u + v*v + w*w)

	var rows [5][5]float64
	switch s {
	case geom.X:
		rows = [5][5]float64{
			{1, 1, 0, 0, 1},
			{u - c, u, 0, 0, u + c},
			{v, 0, 1, 0, v},
			{w, 0, 0, 1, w},
			{hT - u*c, u*u - q, v, w, hT + u*c},
		}
	case geom.Y:
		rows = [5][5]float64{
			{1, 0, 1, 0, 1},
			{u, 1, 0, 0, u},
			{v - c, 0, v, 0, v + c},
			{w, 0, 0, 1, w},
			{hT - v*c, u, v*v - q, w, hT + v*c},
		}
	default: // Z
		rows = [5][5]float64{
			{1, 0, 0, 1, 1},
			{u, 1, 0, 0, u},
			{v, 0, 1, 0, v},
			{w - c, 0, 0, w, w + c},
			{hT - w*c, u, v, w*w - q, hT + w*c},
		}
	}
	data := make([]float64, 0, 25)
	for _, r := range rows {
		data = append(data, r[:]...)
	}
	return mat.NewDense(5, 5, data)
}
