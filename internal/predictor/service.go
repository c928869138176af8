package predictor

import (
	"context"
	"fmt"
	"math"

	"github.com/OldStager01/diabetes-risk/internal/logger"
	"github.com/OldStager01/diabetes-risk/internal/model"
	"github.com/OldStager01/diabetes-risk/pkg/models"
	lru "github.com/hashicorp/golang-lru/v2"
)

type Options struct {
	// IncludeConfidence adds the winning class probability to each result
	// when the classifier can produce one.
	IncludeConfidence bool

	// CacheSize bounds the number of scored feature vectors kept in memory.
	// Zero disables caching.
	CacheSize int
}

type featureKey [models.NumFeatures]float64

// score is the cacheable part of a prediction.
type score struct {
	label      models.Label
	confidence *float64
}

// Service scores patient inputs against the loaded artifacts. The artifacts
// are read-only and the cache is synchronized, so a Service may be shared
// across goroutines.
type Service struct {
	artifacts *model.Artifacts
	opts      Options
	cache     *lru.Cache[featureKey, score]
}

func NewService(artifacts *model.Artifacts, opts Options) *Service {
	s := &Service{artifacts: artifacts, opts: opts}
	if opts.CacheSize > 0 {
		// lru.New only fails for a non-positive size
		s.cache, _ = lru.New[featureKey, score](opts.CacheSize)
	}
	return s
}

func (s *Service) Predict(ctx context.Context, in models.PatientInput) (*models.PredictionResult, error) {
	features := in.FeatureVector()

	var key featureKey
	copy(key[:], features)

	sc, cached := s.lookup(key)
	if !cached {
		var err error
		sc, err = s.score(features)
		if err != nil {
			return nil, err
		}
		if s.cache != nil {
			s.cache.Add(key, sc)
		}
	}

	result := models.NewPredictionResult(in, sc.label)
	if sc.confidence != nil {
		result.WithConfidence(*sc.confidence)
	}

	logger.DebugCtxf(ctx, "prediction %s: label=%d phrase=%q cached=%t", result.ID, result.Label, result.Phrase, cached)
	return result, nil
}

// CacheLen reports how many scored vectors are cached.
func (s *Service) CacheLen() int {
	if s.cache == nil {
		return 0
	}
	return s.cache.Len()
}

func (s *Service) lookup(key featureKey) (score, bool) {
	if s.cache == nil {
		return score{}, false
	}
	return s.cache.Get(key)
}

func (s *Service) score(features []float64) (score, error) {
	scaled, err := s.artifacts.Scaler().Transform(features)
	if err != nil {
		return score{}, modelFailure(fmt.Errorf("scaler transform: %w", err))
	}

	classifier := s.artifacts.Classifier()
	label, err := classifier.Predict(scaled)
	if err != nil {
		return score{}, modelFailure(fmt.Errorf("classifier predict: %w", err))
	}

	sc := score{label: models.Label(label)}

	if s.opts.IncludeConfidence {
		if pc, ok := classifier.(model.ProbabilisticClassifier); ok {
			proba, err := pc.PredictProba(scaled)
			if err != nil {
				return score{}, modelFailure(fmt.Errorf("classifier predict_proba: %w", err))
			}
			confidence := Confidence(proba)
			sc.confidence = &confidence
		}
	}
	return sc, nil
}

// Confidence is the largest class probability as a percentage, rounded to
// one decimal place and clamped to [0, 100].
func Confidence(proba []float64) float64 {
	best := 0.0
	for _, p := range proba {
		if p > best {
			best = p
		}
	}

	pct := math.Round(best*1000) / 10
	return math.Max(0, math.Min(100, pct))
}
