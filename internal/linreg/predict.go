package linreg

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Predict returns the model output betas[0] + Σ betas[j]·x[j-1] for every row
// of data. The target column of data is ignored.
func Predict(data mat.Matrix, betas []float64) ([]float64, error) {
	if _, _, err := checkShape(data, betas); err != nil {
		return nil, err
	}
	pred := predictions(asDense(data), betas)
	return mat.Col(nil, 0, pred), nil
}

// Loss returns the mean squared error of betas over data.
func Loss(data mat.Matrix, betas []float64) (float64, error) {
	n, _, err := checkShape(data, betas)
	if err != nil {
		return 0, err
	}
	r := residuals(asDense(data), betas).RawVector().Data
	return floats.Dot(r, r) / float64(n), nil
}

// RSquared returns the coefficient of determination of betas over data.
func RSquared(data mat.Matrix, betas []float64) (float64, error) {
	_, p, err := checkShape(data, betas)
	if err != nil {
		return 0, err
	}
	d := asDense(data)
	pred := predictions(d, betas).RawVector().Data
	y := mat.Col(nil, p-1, d)
	return stat.RSquaredFrom(pred, y, nil), nil
}
