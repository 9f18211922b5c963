// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package linreg

import (
	"github.com/born-ml/linsgd/internal/linreg"
	"gonum.org/v1/gonum/mat"
)

// Errors reported for invalid arguments.
var (
	ErrInvalidArgument   = linreg.ErrInvalidArgument
	ErrDimensionMismatch = linreg.ErrDimensionMismatch
)

// Record is the state after one minibatch step.
type Record = linreg.Record

// Trajectory is the ordered list of steps of one or more epochs.
type Trajectory = linreg.Trajectory

// EpochResult holds the parameters and trajectory of one epoch.
type EpochResult = linreg.EpochResult

// Norm returns the Euclidean norm of v; 0 for an empty vector.
func Norm(v []float64) float64 {
	return linreg.Norm(v)
}

// Gradient returns the mean squared error gradient of betas over batch.
//
// Example:
//
//	data := mat.NewDense(3, 2, []float64{1, 2, 2, 4, 3, 6})
//	grad, err := linreg.Gradient(data, []float64{0, 0}) // [-8, -18.67]
func Gradient(batch mat.Matrix, betas []float64) ([]float64, error) {
	return linreg.Gradient(batch, betas)
}

// EpochUpdate runs one epoch of minibatch gradient descent with learning
// rate alpha. betas is never modified; the updated parameters are returned
// in the result.
//
// Example:
//
//	res, err := linreg.EpochUpdate(data, betas, 0.01, epoch, 32)
//	if err != nil {
//	    return err
//	}
//	betas = res.Betas
func EpochUpdate(data mat.Matrix, betas []float64, alpha float64, epoch, batchSize int) (*EpochResult, error) {
	return linreg.EpochUpdate(data, betas, alpha, epoch, batchSize)
}

// Predict returns the model output for every row of data.
func Predict(data mat.Matrix, betas []float64) ([]float64, error) {
	return linreg.Predict(data, betas)
}

// Loss returns the mean squared error of betas over data.
func Loss(data mat.Matrix, betas []float64) (float64, error) {
	return linreg.Loss(data, betas)
}

// RSquared returns the coefficient of determination of betas over data.
func RSquared(data mat.Matrix, betas []float64) (float64, error) {
	return linreg.RSquared(data, betas)
}
