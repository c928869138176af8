package model

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// LogisticRegression is a fitted binary logistic model.
type LogisticRegression struct {
	coef      *mat.VecDense
	intercept float64
	classes   [2]int
}

func NewLogisticRegression(coef []float64, intercept float64, classes []int) (*LogisticRegression, error) {
	if len(coef) == 0 {
		return nil, fmt.Errorf("%w: empty coefficient vector", ErrShapeMismatch)
	}
	if len(classes) == 0 {
		classes = []int{0, 1}
	}
	if len(classes) != 2 {
		return nil, fmt.Errorf("logistic regression must be binary, got %d classes", len(classes))
	}
	return &LogisticRegression{
		coef:      vec(coef),
		intercept: intercept,
		classes:   [2]int{classes[0], classes[1]},
	}, nil
}

func (m *LogisticRegression) Classes() []int {
	return []int{m.classes[0], m.classes[1]}
}

// DecisionFunction returns the signed distance w·x + b.
func (m *LogisticRegression) DecisionFunction(x []float64) (float64, error) {
	if err := checkShape(x, m.coef.Len()); err != nil {
		return 0, err
	}
	if err := checkFinite(x); err != nil {
		return 0, err
	}

	return mat.Dot(m.coef, vec(x)) + m.intercept, nil
}

// Predict picks the second class only when the decision score is strictly
// positive, so a score of exactly zero yields the first class.
func (m *LogisticRegression) Predict(x []float64) (int, error) {
	score, err := m.DecisionFunction(x)
	if err != nil {
		return 0, err
	}
	if score > 0 {
		return m.classes[1], nil
	}
	return m.classes[0], nil
}

func (m *LogisticRegression) PredictProba(x []float64) ([]float64, error) {
	score, err := m.DecisionFunction(x)
	if err != nil {
		return nil, err
	}
	p := sigmoid(score)
	return []float64{1 - p, p}, nil
}

func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}
