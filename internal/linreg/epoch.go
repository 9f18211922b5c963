package linreg

import (
	"fmt"
	"slices"

	"github.com/born-ml/linsgd/internal/batch"
	"github.com/born-ml/linsgd/internal/optim"
	"gonum.org/v1/gonum/mat"
)

// EpochResult holds the output of one EpochUpdate call.
type EpochResult struct {
	Betas      []float64  // Parameters after the last step of the epoch.
	Trajectory Trajectory // One record per minibatch step.
}

// EpochUpdate runs one epoch of minibatch gradient descent over data.
//
// Rows are split into contiguous batches of batchSize rows, the last batch
// holding the remainder. For each batch, in order, the gradient is computed at
// the current parameters and the step betas -= alpha·grad is applied. Each step
// appends a Record with the gradient norm and the parameters after the update.
// epoch is copied into the records and is otherwise unused.
//
// betasIn is copied once and never modified. Argument errors
// (ErrInvalidArgument, ErrDimensionMismatch) are returned before any step runs.
func EpochUpdate(data mat.Matrix, betasIn []float64, alpha float64, epoch, batchSize int) (*EpochResult, error) {
	if batchSize <= 0 {
		return nil, fmt.Errorf("%w: minibatch size must be positive, got %d", ErrInvalidArgument, batchSize)
	}
	n, _, err := checkShape(data, betasIn)
	if err != nil {
		return nil, err
	}

	d := asDense(data)
	betas := slices.Clone(betasIn)
	opt := optim.NewSGD(optim.SGDConfig{LR: alpha})
	traj := make(Trajectory, 0, batch.Count(n, batchSize))

	for r := range batch.Ranges(n, batchSize) {
		grad := gradient(rows(d, r.Offset, r.End()), betas)
		if err := opt.Step(betas, grad); err != nil {
			return nil, err
		}
		traj = append(traj, Record{
			Epoch:    epoch,
			Step:     len(traj) + 1,
			GradNorm: Norm(grad),
			Params:   slices.Clone(betas),
		})
	}

	return &EpochResult{Betas: betas, Trajectory: traj}, nil
}
