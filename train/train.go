// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package train runs multi-epoch mini-batch SGD for linear regression.
//
// Example:
//
//	cfg := train.DefaultConfig()
//	cfg.LR = 0.1
//	cfg.OnEpoch = func(s train.EpochSummary) {
//	    fmt.Printf("epoch %d: loss=%.4f\n", s.Epoch, s.Loss)
//	}
//	res, err := train.Run(data, make([]float64, cols), cfg)
package train

import (
	"github.com/born-ml/linsgd/internal/train"
	"gonum.org/v1/gonum/mat"
)

// ErrInvalidConfig is returned for a configuration that cannot run.
var ErrInvalidConfig = train.ErrInvalidConfig

// Config controls a training run.
type Config = train.Config

// EpochSummary describes the state at the end of one epoch.
type EpochSummary = train.EpochSummary

// Result is the outcome of Run.
type Result = train.Result

// DefaultConfig returns LR 0.01, 100 epochs and minibatches of 32 rows.
func DefaultConfig() Config {
	return train.DefaultConfig()
}

// Run trains from init for cfg.Epochs epochs.
func Run(data mat.Matrix, init []float64, cfg Config) (*Result, error) {
	return train.Run(data, init, cfg)
}
