package ml

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// StandardScaler centers every feature column to zero mean and unit variance.
// Scaling parameters are fit on the training matrix and then reused verbatim
// for inference-time vectors.
type StandardScaler struct {
	mean []float64
	std  []float64
}

// Fit computes per-column mean and population standard deviation.
// Constant columns get a standard deviation of 1 so they scale to zero
// instead of dividing by zero.
func (s *StandardScaler) Fit(x *mat.Dense) error {
	rows, cols := x.Dims()
	if rows == 0 || cols == 0 {
		return fmt.Errorf("scaler: empty training matrix (%dx%d)", rows, cols)
	}

	s.mean = make([]float64, cols)
	s.std = make([]float64, cols)

	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, x)
		s.mean[j] = stat.Mean(col, nil)
		s.std[j] = stat.PopStdDev(col, nil)
		if s.std[j] == 0 || math.IsNaN(s.std[j]) {
			s.std[j] = 1.0
		}
	}

	return nil
}

// FitTransform fits the scaler and returns the scaled copy of the matrix.
func (s *StandardScaler) FitTransform(x *mat.Dense) (*mat.Dense, error) {
	if err := s.Fit(x); err != nil {
		return nil, err
	}

	rows, cols := x.Dims()
	scaled := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			scaled.Set(i, j, (x.At(i, j)-s.mean[j])/s.std[j])
		}
	}
	return scaled, nil
}

// Transform scales a single vector with the fitted parameters.
func (s *StandardScaler) Transform(features []float64) ([]float64, error) {
	if s.mean == nil {
		return nil, fmt.Errorf("scaler: not fitted")
	}
	if len(features) != len(s.mean) {
		return nil, fmt.Errorf("scaler: dimension mismatch: got %d features, fitted on %d", len(features), len(s.mean))
	}

	scaled := make([]float64, len(features))
	for j, v := range features {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("scaler: non-finite value %v at column %d", v, j)
		}
		scaled[j] = (v - s.mean[j]) / s.std[j]
	}
	return scaled, nil
}
