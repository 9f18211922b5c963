package optim

import "gonum.org/v1/gonum/floats"

// SGD implements plain gradient descent.
//
// Update rule:
//
//	param = param - lr * gradient
//
// Applied to one minibatch gradient at a time this is stochastic
// gradient descent. The learning rate is constant; scheduling, if any,
// belongs to the caller through SetLR.
//
// Example:
//
//	optimizer := optim.NewSGD(optim.SGDConfig{LR: 0.01})
//
//	for epoch := range epochs {
//	    grads := computeGradient(batch, params)
//	    optimizer.Step(params, grads)
//	}
type SGD struct {
	lr float64
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR float64 // Learning rate. Zero leaves parameters unchanged.
}

// NewSGD creates a new SGD optimizer.
//
// The learning rate is taken as given: callers own its validation, and a
// zero rate produces a no-op step.
func NewSGD(config SGDConfig) *SGD {
	return &SGD{lr: config.LR}
}

// Step performs a single optimization step: params -= lr * grads.
//
// grads is read-only. Returns ErrLengthMismatch if the vectors differ in
// length; params is left untouched in that case.
func (s *SGD) Step(params, grads []float64) error {
	if err := checkLengths(params, grads); err != nil {
		return err
	}
	floats.AddScaled(params, -s.lr, grads)
	return nil
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling between epochs.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
