package linreg

import "gonum.org/v1/gonum/floats"

// Norm returns the Euclidean (L2) norm of v.
//
// The norm of an empty vector is 0. NaN and Inf entries propagate.
func Norm(v []float64) float64 {
	return floats.Norm(v, 2)
}
