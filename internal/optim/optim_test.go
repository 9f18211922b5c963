package optim_test

import (
	"errors"
	"math"
	"testing"

	"github.com/born-ml/linsgd/internal/optim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check float equality with tolerance.
func floatEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// TestSGD_SimpleUpdate tests a single SGD step.
func TestSGD_SimpleUpdate(t *testing.T) {
	params := []float64{2.0}
	optimizer := optim.NewSGD(optim.SGDConfig{LR: 0.1})

	require.NoError(t, optimizer.Step(params, []float64{1.0}))

	// Expected: x_new = x_old - lr * grad = 2.0 - 0.1 * 1.0 = 1.9
	if !floatEqual(params[0], 1.9, 1e-12) {
		t.Errorf("SGD update: got %f, want %f", params[0], 1.9)
	}
}

// TestSGD_SimultaneousUpdate checks that every parameter uses the same gradient.
func TestSGD_SimultaneousUpdate(t *testing.T) {
	params := []float64{1, 2, 3}
	grads := []float64{10, -20, 0.5}
	optimizer := optim.NewSGD(optim.SGDConfig{LR: 0.01})

	require.NoError(t, optimizer.Step(params, grads))

	assert.InDeltaSlice(t, []float64{0.9, 2.2, 2.995}, params, 1e-12)
	assert.Equal(t, []float64{10, -20, 0.5}, grads, "gradient must not be modified")
}

// TestSGD_MultipleSteps runs SGD on f(x) = x^2.
func TestSGD_MultipleSteps(t *testing.T) {
	params := []float64{5.0}
	optimizer := optim.NewSGD(optim.SGDConfig{LR: 0.1})

	for range 100 {
		grad := []float64{2 * params[0]}
		require.NoError(t, optimizer.Step(params, grad))
	}

	// x_k = 5 * 0.8^k
	assert.InDelta(t, 5*math.Pow(0.8, 100), params[0], 1e-9)
}

// TestSGD_ZeroLR leaves parameters unchanged.
func TestSGD_ZeroLR(t *testing.T) {
	params := []float64{1, 2}
	optimizer := optim.NewSGD(optim.SGDConfig{})

	require.NoError(t, optimizer.Step(params, []float64{3, 4}))
	assert.Equal(t, []float64{1, 2}, params)
}

// TestSGD_LengthMismatch rejects mismatched vectors without mutation.
func TestSGD_LengthMismatch(t *testing.T) {
	params := []float64{1, 2}
	optimizer := optim.NewSGD(optim.SGDConfig{LR: 1})

	err := optimizer.Step(params, []float64{1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, optim.ErrLengthMismatch))
	assert.Equal(t, []float64{1, 2}, params)
}

// TestSGD_GetSetLR tests learning rate accessors.
func TestSGD_GetSetLR(t *testing.T) {
	optimizer := optim.NewSGD(optim.SGDConfig{LR: 0.05})
	assert.Equal(t, 0.05, optimizer.GetLR())

	optimizer.SetLR(0.001)
	assert.Equal(t, 0.001, optimizer.GetLR())

	var _ optim.Optimizer = optimizer
}
