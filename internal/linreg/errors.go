package linreg

import "errors"

// Argument errors. Both are reported before any computation starts.
var (
	// ErrInvalidArgument is returned for a non-positive minibatch size, a nil
	// or empty dataset, or a dataset without at least one predictor column.
	ErrInvalidArgument = errors.New("linreg: invalid argument")

	// ErrDimensionMismatch is returned when the parameter vector length does
	// not equal the number of predictor columns plus one.
	ErrDimensionMismatch = errors.New("linreg: dimension mismatch")
)
