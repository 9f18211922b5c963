package linreg

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// checkShape validates a dataset against a parameter vector and returns the
// dataset dimensions.
func checkShape(data mat.Matrix, betas []float64) (n, p int, err error) {
	if data == nil {
		return 0, 0, fmt.Errorf("%w: nil dataset", ErrInvalidArgument)
	}
	if isNilMatrix(data) {
		return 0, 0, fmt.Errorf("%w: nil dataset", ErrInvalidArgument)
	}

	n, p = data.Dims()
	if n == 0 {
		return 0, 0, fmt.Errorf("%w: dataset has no rows", ErrInvalidArgument)
	}
	if p < 2 {
		return 0, 0, fmt.Errorf("%w: dataset needs a predictor and a target column, got %d columns",
			ErrInvalidArgument, p)
	}
	if len(betas) != p {
		return 0, 0, fmt.Errorf("%w: %d parameters for %d predictors (want %d)",
			ErrDimensionMismatch, len(betas), p-1, p)
	}
	return n, p, nil
}

// isNilMatrix reports whether m holds a nil pointer of one of the gonum
// matrix types. Other implementations are trusted to handle Dims themselves.
func isNilMatrix(m mat.Matrix) bool {
	switch v := m.(type) {
	case *mat.Dense:
		return v == nil
	case *mat.VecDense:
		return v == nil
	case *mat.SymDense:
		return v == nil
	case *mat.TriDense:
		return v == nil
	case *mat.BandDense:
		return v == nil
	case *mat.SymBandDense:
		return v == nil
	case *mat.TriBandDense:
		return v == nil
	case *mat.DiagDense:
		return v == nil
	case *mat.Tridiag:
		return v == nil
	}
	return false
}

// asDense returns m as a *mat.Dense, copying only when m is another kind of
// matrix.
func asDense(m mat.Matrix) *mat.Dense {
	if d, ok := m.(*mat.Dense); ok {
		return d
	}
	return mat.DenseCopyOf(m)
}

// rows returns a view of rows [lo, hi) of d, all columns.
func rows(d *mat.Dense, lo, hi int) *mat.Dense {
	_, p := d.Dims()
	return d.Slice(lo, hi, 0, p).(*mat.Dense)
}
