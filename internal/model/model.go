// Package model holds the pre-fitted scaler and classifier used to score
// a feature vector. Both are loaded once at startup and never mutated, so
// they are safe for concurrent use without locking.
package model

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrShapeMismatch       = errors.New("feature vector shape mismatch")
	ErrNonFinite           = errors.New("input contains NaN or infinity")
	ErrUnknownArtifactType = errors.New("unknown artifact type")
	ErrFeatureOrder        = errors.New("artifact feature order does not match")
)

// Scaler maps a raw feature vector to the space the classifier was fitted in.
type Scaler interface {
	Transform(x []float64) ([]float64, error)
}

// Classifier maps a scaled feature vector to a class label.
type Classifier interface {
	Predict(x []float64) (int, error)
}

// ProbabilisticClassifier also exposes the class probability distribution,
// ordered like Classes().
type ProbabilisticClassifier interface {
	Classifier
	PredictProba(x []float64) ([]float64, error)
}

func checkShape(x []float64, want int) error {
	if len(x) != want {
		return fmt.Errorf("%w: expected %d features, got %d", ErrShapeMismatch, want, len(x))
	}
	return nil
}

func checkFinite(x []float64) error {
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w (feature %d)", ErrNonFinite, i)
		}
	}
	return nil
}
