package model

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// StandardScaler removes the fitted mean and divides by the fitted scale.
type StandardScaler struct {
	mean  *mat.VecDense
	scale *mat.VecDense
}

func NewStandardScaler(mean, scale []float64) (*StandardScaler, error) {
	if len(mean) == 0 {
		return nil, fmt.Errorf("%w: empty mean vector", ErrShapeMismatch)
	}
	if err := checkShape(scale, len(mean)); err != nil {
		return nil, err
	}

	// Constant columns are fitted with a zero scale; they pass through unscaled.
	safe := make([]float64, len(scale))
	for i, v := range scale {
		if v == 0 {
			v = 1
		}
		safe[i] = v
	}
	return &StandardScaler{
		mean:  vec(mean),
		scale: mat.NewVecDense(len(safe), safe),
	}, nil
}

func (s *StandardScaler) Transform(x []float64) ([]float64, error) {
	if err := checkShape(x, s.mean.Len()); err != nil {
		return nil, err
	}
	if err := checkFinite(x); err != nil {
		return nil, err
	}

	out := mat.NewVecDense(len(x), nil)
	out.SubVec(vec(x), s.mean)
	out.DivElemVec(out, s.scale)
	return out.RawVector().Data, nil
}

// MinMaxScaler applies x*scale + min, the fitted form of a [lo, hi] range
// scaling.
type MinMaxScaler struct {
	min   *mat.VecDense
	scale *mat.VecDense
}

func NewMinMaxScaler(min, scale []float64) (*MinMaxScaler, error) {
	if len(min) == 0 {
		return nil, fmt.Errorf("%w: empty min vector", ErrShapeMismatch)
	}
	if err := checkShape(scale, len(min)); err != nil {
		return nil, err
	}
	return &MinMaxScaler{min: vec(min), scale: vec(scale)}, nil
}

func (s *MinMaxScaler) Transform(x []float64) ([]float64, error) {
	if err := checkShape(x, s.min.Len()); err != nil {
		return nil, err
	}
	if err := checkFinite(x); err != nil {
		return nil, err
	}

	out := mat.NewVecDense(len(x), nil)
	out.MulElemVec(vec(x), s.scale)
	out.AddVec(out, s.min)
	return out.RawVector().Data, nil
}

// vec copies x into a column vector; mat.NewVecDense would alias it.
func vec(x []float64) *mat.VecDense {
	return mat.NewVecDense(len(x), append([]float64(nil), x...))
}
