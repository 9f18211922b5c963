package linreg

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Gradient returns the gradient of the mean squared error of the linear model
// betas over the rows of batch:
//
//	r_i     = y_i - betas[0] - Σ_j betas[j]·x_i[j-1]
//	grad[0] = -2·mean(r)
//	grad[j] = -2·mean(r_i·x_i[j-1])
//
// batch and betas are not modified. An empty batch is rejected with
// ErrInvalidArgument and a length mismatch with ErrDimensionMismatch.
func Gradient(batch mat.Matrix, betas []float64) ([]float64, error) {
	if _, _, err := checkShape(batch, betas); err != nil {
		return nil, err
	}
	return gradient(asDense(batch), betas), nil
}

// gradient assumes d has at least one row and len(betas) columns.
func gradient(d *mat.Dense, betas []float64) []float64 {
	n, p := d.Dims()
	x := d.Slice(0, n, 0, p-1)
	r := residuals(d, betas)

	scale := -2 / float64(n)
	grad := make([]float64, p)
	grad[0] = scale * mat.Sum(r)

	// grad[1:] = scale · Xᵀr, written straight into grad.
	xr := mat.NewVecDense(p-1, grad[1:])
	xr.MulVec(x.T(), r)
	floats.Scale(scale, grad[1:])

	return grad
}

// predictions returns betas[0] + X·betas[1:] for every row of d, where X is
// every column but the last.
func predictions(d *mat.Dense, betas []float64) *mat.VecDense {
	n, p := d.Dims()
	x := d.Slice(0, n, 0, p-1)

	pred := mat.NewVecDense(n, nil)
	pred.MulVec(x, mat.NewVecDense(p-1, betas[1:]))
	for i := range n {
		pred.SetVec(i, pred.AtVec(i)+betas[0])
	}
	return pred
}

// residuals returns y - prediction for every row of d.
func residuals(d *mat.Dense, betas []float64) *mat.VecDense {
	_, p := d.Dims()
	r := predictions(d, betas)
	r.SubVec(d.ColView(p-1), r)
	return r
}
