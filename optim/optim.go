// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import "github.com/born-ml/linsgd/internal/optim"

// Optimizer interface defines the common interface for all update rules.
type Optimizer = optim.Optimizer

// ErrLengthMismatch is returned by Step when params and grads differ in length.
var ErrLengthMismatch = optim.ErrLengthMismatch

// SGD represents the plain gradient descent optimizer.
type SGD = optim.SGD

// SGDConfig contains configuration for SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	optimizer := optim.NewSGD(optim.SGDConfig{LR: 0.01})
//	err := optimizer.Step(params, grads)
func NewSGD(config SGDConfig) *SGD {
	return optim.NewSGD(config)
}
