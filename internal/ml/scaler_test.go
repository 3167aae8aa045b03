package ml

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestStandardScaler_FitTransform(t *testing.T) {
	x := mat.NewDense(4, 2, []float64{
		1, 10,
		2, 20,
		3, 30,
		4, 40,
	})

	scaler := &StandardScaler{}
	scaled, err := scaler.FitTransform(x)
	require.NoError(t, err)

	rows, cols := scaled.Dims()
	for j := 0; j < cols; j++ {
		col := mat.Col(nil, j, scaled)
		mean, std := 0.0, 0.0
		for _, v := range col {
			mean += v
		}
		mean /= float64(rows)
		for _, v := range col {
			std += (v - mean) * (v - mean)
		}
		std = math.Sqrt(std / float64(rows))

		assert.InDelta(t, 0.0, mean, 1e-12, "column %d mean", j)
		assert.InDelta(t, 1.0, std, 1e-12, "column %d std", j)
	}
}

func TestStandardScaler_Transform(t *testing.T) {
	x := mat.NewDense(2, 2, []float64{
		0, 100,
		10, 200,
	})

	scaler := &StandardScaler{}
	_, err := scaler.FitTransform(x)
	require.NoError(t, err)

	// Column means are 5 and 150, population stds 5 and 50.
	scaled, err := scaler.Transform([]float64{5, 250})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, scaled[0], 1e-12)
	assert.InDelta(t, 2.0, scaled[1], 1e-12)
}

func TestStandardScaler_ConstantColumn(t *testing.T) {
	x := mat.NewDense(3, 1, []float64{7, 7, 7})

	scaler := &StandardScaler{}
	scaled, err := scaler.FitTransform(x)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		assert.Equal(t, 0.0, scaled.At(i, 0), "constant columns scale to zero")
	}
}

func TestStandardScaler_Errors(t *testing.T) {
	scaler := &StandardScaler{}

	t.Run("not fitted", func(t *testing.T) {
		_, err := scaler.Transform([]float64{1})
		assert.Error(t, err)
	})

	t.Run("dimension mismatch", func(t *testing.T) {
		_, err := scaler.FitTransform(mat.NewDense(2, 2, []float64{1, 2, 3, 4}))
		require.NoError(t, err)

		_, err = scaler.Transform([]float64{1, 2, 3})
		assert.Error(t, err)
	})

	t.Run("non-finite input", func(t *testing.T) {
		_, err := scaler.FitTransform(mat.NewDense(2, 1, []float64{1, 2}))
		require.NoError(t, err)

		_, err = scaler.Transform([]float64{math.NaN()})
		assert.Error(t, err)

		_, err = scaler.Transform([]float64{math.Inf(1)})
		assert.Error(t, err)
	})
}
