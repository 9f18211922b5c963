// Package optim implements parameter update rules for gradient descent.
//
// This package provides:
//   - Optimizer interface: Base interface for update rules
//   - SGD: plain (stochastic) gradient descent
//
// Parameters and gradients are flat float64 vectors with matching indexing.
//
// Example usage:
//
//	opt := optim.NewSGD(optim.SGDConfig{LR: 0.01})
//
//	for r := range batch.Ranges(n, batchSize) {
//	    grad := gradient(rows(r), params)
//	    if err := opt.Step(params, grad); err != nil {
//	        return err
//	    }
//	}
package optim

import (
	"errors"
	"fmt"
)

// ErrLengthMismatch is returned when parameter and gradient lengths differ.
var ErrLengthMismatch = errors.New("optim: parameter and gradient lengths differ")

// Optimizer is the base interface for all update rules.
//
// All optimizers must implement:
//   - Step: Apply a gradient update to the parameters
//   - GetLR: Get current learning rate (for monitoring)
type Optimizer interface {
	// Step applies one gradient update to params in-place.
	//
	// Every entry of params is updated from the same gradient, so the
	// update is simultaneous rather than coordinate-wise.
	Step(params, grads []float64) error

	// GetLR returns the current learning rate.
	GetLR() float64
}

// checkLengths validates that params and grads can be combined.
func checkLengths(params, grads []float64) error {
	if len(params) != len(grads) {
		return fmt.Errorf("%w: %d parameters, %d gradients", ErrLengthMismatch, len(params), len(grads))
	}
	return nil
}
