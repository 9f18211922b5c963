// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides parameter update rules for gradient descent.
//
// # Overview
//
// This package contains:
//   - SGD: plain stochastic gradient descent, param -= lr * grad
//   - Optimizer interface for custom update rules
//
// Parameters and gradients are flat []float64 vectors with the same indexing.
//
// # Basic Usage
//
//	import "github.com/born-ml/linsgd/optim"
//
//	func main() {
//	    params := []float64{0, 0}
//	    optimizer := optim.NewSGD(optim.SGDConfig{LR: 0.01})
//
//	    for step := range 100 {
//	        grads := computeGradient(params)
//	        if err := optimizer.Step(params, grads); err != nil {
//	            log.Fatal(err)
//	        }
//	    }
//	}
//
// # Learning Rate
//
// SGD keeps a constant learning rate. A caller that wants a schedule
// adjusts it between epochs:
//
//	optimizer.SetLR(optimizer.GetLR() * 0.5)
package optim
