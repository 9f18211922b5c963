// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package linreg provides mini-batch stochastic gradient descent for
// ordinary least-squares linear regression.
//
// # Overview
//
// A dataset is an n×p gonum matrix: columns 0..p-2 are predictors and column
// p-1 is the target. A parameter vector has length p, index 0 being the
// intercept.
//
// This package contains:
//   - Norm: Euclidean norm of a vector
//   - Gradient: gradient of the mean squared error over a batch of rows
//   - EpochUpdate: one epoch of minibatch updates with a per-step trajectory
//   - Predict, Loss, RSquared: model evaluation helpers
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/linsgd/linreg"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    data := mat.NewDense(3, 2, []float64{
//	        1, 2,
//	        2, 4,
//	        3, 6,
//	    })
//	    betas := []float64{0, 0}
//
//	    for epoch := 1; epoch <= 100; epoch++ {
//	        res, err := linreg.EpochUpdate(data, betas, 0.05, epoch, 2)
//	        if err != nil {
//	            log.Fatal(err)
//	        }
//	        betas = res.Betas
//	    }
//	}
//
// # Trajectory
//
// Every minibatch step yields a Record holding the epoch label, the 1-based
// step index, the gradient norm and the parameters after the step. A
// Trajectory can be exported as a gonum matrix or as CSV:
//
//	m, err := res.Trajectory.Matrix()
//	err = res.Trajectory.WriteCSV(os.Stdout)
//
// # Errors
//
// Invalid arguments are reported before any computation, wrapping
// ErrInvalidArgument or ErrDimensionMismatch; match them with errors.Is.
// NaN and Inf in the data propagate to the outputs unchecked.
package linreg
