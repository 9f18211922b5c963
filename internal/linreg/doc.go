// Package linreg implements mini-batch stochastic gradient descent for
// ordinary least-squares linear regression.
//
// A dataset is an n×p matrix: columns 0..p-2 hold predictors and column p-1
// holds the target. Parameters (betas) have length p: betas[0] is the
// intercept and betas[j] pairs with predictor column j-1.
//
// The package exposes three numeric operations:
//   - Norm: Euclidean norm of a vector
//   - Gradient: gradient of the mean squared error over a batch of rows
//   - EpochUpdate: one pass of minibatch updates over a dataset
//
// EpochUpdate is meant to be called once per epoch by a training loop that
// feeds the returned parameters back into the next call:
//
//	betas := make([]float64, data.RawMatrix().Cols)
//	var history linreg.Trajectory
//	for epoch := 1; epoch <= epochs; epoch++ {
//	    res, err := linreg.EpochUpdate(data, betas, 0.01, epoch, 32)
//	    if err != nil {
//	        return err
//	    }
//	    betas = res.Betas
//	    history = append(history, res.Trajectory...)
//	}
//
// Rows are consumed in the order given; no shuffling takes place. The caller's
// parameter slice is never modified.
package linreg
