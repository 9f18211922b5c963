// Package train drives linreg.EpochUpdate over several epochs.
package train

import (
	"errors"
	"fmt"
	"slices"

	"github.com/born-ml/linsgd/internal/linreg"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ErrInvalidConfig is returned for a configuration that cannot run.
var ErrInvalidConfig = errors.New("train: invalid configuration")

// Config controls a training run.
type Config struct {
	LR        float64 // Constant learning rate.
	Epochs    int     // Number of passes over the data.
	BatchSize int     // Rows per minibatch; the last batch holds the remainder.

	// OnEpoch, if set, is called after every epoch.
	OnEpoch func(EpochSummary)
}

// DefaultConfig returns LR 0.01, 100 epochs and minibatches of 32 rows.
func DefaultConfig() Config {
	return Config{
		LR:        0.01,
		Epochs:    100,
		BatchSize: 32,
	}
}

// EpochSummary describes the state at the end of one epoch.
type EpochSummary struct {
	Epoch        int       // 1-based epoch index.
	Steps        int       // Minibatch steps taken in the epoch.
	Loss         float64   // Mean squared error over the full dataset.
	MeanGradNorm float64   // Mean gradient norm across the epoch's steps.
	Betas        []float64 // Parameters after the epoch.
}

// Result is the outcome of Run.
type Result struct {
	Betas      []float64         // Final parameters.
	Trajectory linreg.Trajectory // Steps of every epoch, in order.
	Epochs     []EpochSummary    // One summary per epoch.
}

// Run trains from init for cfg.Epochs epochs, feeding each epoch's parameters
// into the next. Epochs are numbered from 1 in the trajectory. init is not
// modified.
func Run(data mat.Matrix, init []float64, cfg Config) (*Result, error) {
	if cfg.Epochs <= 0 {
		return nil, fmt.Errorf("%w: epochs must be positive, got %d", ErrInvalidConfig, cfg.Epochs)
	}

	betas := slices.Clone(init)
	res := &Result{Epochs: make([]EpochSummary, 0, cfg.Epochs)}

	for epoch := 1; epoch <= cfg.Epochs; epoch++ {
		out, err := linreg.EpochUpdate(data, betas, cfg.LR, epoch, cfg.BatchSize)
		if err != nil {
			return nil, fmt.Errorf("epoch %d: %w", epoch, err)
		}
		betas = out.Betas
		res.Trajectory = append(res.Trajectory, out.Trajectory...)

		loss, err := linreg.Loss(data, betas)
		if err != nil {
			return nil, fmt.Errorf("epoch %d: %w", epoch, err)
		}

		summary := EpochSummary{
			Epoch:        epoch,
			Steps:        len(out.Trajectory),
			Loss:         loss,
			MeanGradNorm: stat.Mean(out.Trajectory.GradNorms(), nil),
			Betas:        slices.Clone(betas),
		}
		res.Epochs = append(res.Epochs, summary)

		if cfg.OnEpoch != nil {
			cfg.OnEpoch(summary)
		}
	}

	res.Betas = betas
	return res, nil
}
