package linreg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestPredict(t *testing.T) {
	data := mat.NewDense(2, 3, []float64{
		1, 2, 0,
		-1, 0.5, 0,
	})

	pred, err := Predict(data, []float64{1, 2, -1})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, -1.5}, pred, 1e-12)
}

func TestLoss(t *testing.T) {
	loss, err := Loss(lineData(), []float64{0, 2})
	require.NoError(t, err)
	assert.InDelta(t, 0, loss, 1e-12)

	// Residuals are y = 2, 4, 6.
	loss, err = Loss(lineData(), []float64{0, 0})
	require.NoError(t, err)
	assert.InDelta(t, 56.0/3.0, loss, 1e-12)
}

func TestRSquared(t *testing.T) {
	r2, err := RSquared(lineData(), []float64{0, 2})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, r2, 1e-12)

	// Predicting the mean everywhere explains nothing.
	r2, err = RSquared(lineData(), []float64{4, 0})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, r2, 1e-12)
}

func TestPredict_Errors(t *testing.T) {
	_, err := Predict(lineData(), []float64{1})
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = Loss(&mat.Dense{}, []float64{1, 2})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = RSquared(nil, []float64{1, 2})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
