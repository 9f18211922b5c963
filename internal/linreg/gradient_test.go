package linreg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// lineData is y = 2x at x = 1, 2, 3.
func lineData() *mat.Dense {
	return mat.NewDense(3, 2, []float64{
		1, 2,
		2, 4,
		3, 6,
	})
}

func TestGradient_SinglePredictor(t *testing.T) {
	grad, err := Gradient(lineData(), []float64{0, 0})
	require.NoError(t, err)

	// -2·mean(y) and -2·mean(x·y)
	require.Len(t, grad, 2)
	assert.InDelta(t, -8.0, grad[0], 1e-12)
	assert.InDelta(t, -56.0/3.0, grad[1], 1e-12)
}

func TestGradient_ZeroAtExactFit(t *testing.T) {
	grad, err := Gradient(lineData(), []float64{0, 2})
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{0, 0}, grad, 1e-12)
}

func TestGradient_SingleRow(t *testing.T) {
	// One row x=(1, -2), y=4 at betas (0.5, 1, 1): residual = 4 - 0.5 - 1 + 2 = 4.5
	data := mat.NewDense(1, 3, []float64{1, -2, 4})

	grad, err := Gradient(data, []float64{0.5, 1, 1})
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{-9, -9, 18}, grad, 1e-12)
}

// TestGradient_MatchesFiniteDifference compares against a central difference
// of the mean squared error.
func TestGradient_MatchesFiniteDifference(t *testing.T) {
	data := mat.NewDense(5, 4, []float64{
		0.1, 1.0, -0.5, 2.0,
		0.7, -0.3, 0.2, 1.1,
		-1.2, 0.4, 0.9, -0.7,
		0.0, 2.2, 1.5, 3.3,
		1.8, -1.1, 0.6, 0.4,
	})
	betas := []float64{0.3, -0.2, 0.5, 1.1}

	grad, err := Gradient(data, betas)
	require.NoError(t, err)

	const h = 1e-6
	for j := range betas {
		plus := append([]float64(nil), betas...)
		minus := append([]float64(nil), betas...)
		plus[j] += h
		minus[j] -= h

		lp, err := Loss(data, plus)
		require.NoError(t, err)
		lm, err := Loss(data, minus)
		require.NoError(t, err)

		assert.InDelta(t, (lp-lm)/(2*h), grad[j], 1e-6, "parameter %d", j)
	}
}

func TestGradient_DoesNotMutateInputs(t *testing.T) {
	data := lineData()
	before := mat.DenseCopyOf(data)
	betas := []float64{0.25, -1}

	_, err := Gradient(data, betas)
	require.NoError(t, err)

	assert.True(t, mat.Equal(before, data))
	assert.Equal(t, []float64{0.25, -1}, betas)
}

func TestGradient_Pure(t *testing.T) {
	data := lineData()
	betas := []float64{1, 1}

	first, err := Gradient(data, betas)
	require.NoError(t, err)
	second, err := Gradient(data, betas)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGradient_AnyMatrix(t *testing.T) {
	// Transposed view of the same data exercises the non-Dense path.
	transposed := mat.NewDense(2, 3, []float64{
		1, 2, 3,
		2, 4, 6,
	})

	grad, err := Gradient(transposed.T(), []float64{0, 0})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-8, -56.0 / 3.0}, grad, 1e-12)
}

func TestGradient_Errors(t *testing.T) {
	_, err := Gradient(&mat.Dense{}, []float64{0, 0})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Gradient(nil, []float64{0, 0})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Gradient((*mat.VecDense)(nil), []float64{0, 0})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Gradient(mat.NewDense(2, 1, []float64{1, 2}), []float64{0})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Gradient(lineData(), []float64{0, 0, 0})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}
