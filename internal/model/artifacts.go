package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/OldStager01/diabetes-risk/pkg/models"
)

const (
	TypeStandardScaler     = "standard_scaler"
	TypeMinMaxScaler       = "min_max_scaler"
	TypeLogisticRegression = "logistic_regression"
)

// artifactFile is the on-disk JSON shape of both artifacts. Only the
// fields relevant to Type are read.
type artifactFile struct {
	Type         string    `json:"type"`
	FeatureNames []string  `json:"feature_names,omitempty"`
	Mean         []float64 `json:"mean,omitempty"`
	Min          []float64 `json:"min,omitempty"`
	Scale        []float64 `json:"scale,omitempty"`
	Classes      []int     `json:"classes,omitempty"`
	Coef         []float64 `json:"coef,omitempty"`
	Intercept    float64   `json:"intercept,omitempty"`
}

type Paths struct {
	Scaler string
	Model  string
}

// Resolve makes relative paths relative to baseDir.
func (p Paths) Resolve(baseDir string) Paths {
	return Paths{
		Scaler: ResolvePath(baseDir, p.Scaler),
		Model:  ResolvePath(baseDir, p.Model),
	}
}

func ResolvePath(baseDir, path string) string {
	if path == "" || filepath.IsAbs(path) || baseDir == "" {
		return path
	}
	return filepath.Join(baseDir, path)
}

// ExecutableDir returns the directory holding the running binary, with
// symlinks resolved.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// Info describes what was loaded, for health reporting.
type Info struct {
	ScalerType string    `json:"scaler_type"`
	ScalerPath string    `json:"scaler_path,omitempty"`
	ModelType  string    `json:"model_type"`
	ModelPath  string    `json:"model_path,omitempty"`
	Features   []string  `json:"features"`
	LoadedAt   time.Time `json:"loaded_at"`
}

// Artifacts is the immutable scaler/classifier pair shared by all requests.
type Artifacts struct {
	scaler     Scaler
	classifier Classifier
	info       Info
}

func New(scaler Scaler, classifier Classifier, info Info) *Artifacts {
	if info.LoadedAt.IsZero() {
		info.LoadedAt = time.Now()
	}
	if info.Features == nil {
		info.Features = append([]string(nil), models.FeatureOrder[:]...)
	}
	return &Artifacts{scaler: scaler, classifier: classifier, info: info}
}

func (a *Artifacts) Scaler() Scaler {
	return a.scaler
}

func (a *Artifacts) Classifier() Classifier {
	return a.classifier
}

func (a *Artifacts) Info() Info {
	return a.info
}

// Load reads both artifacts. Any failure is fatal for the caller; there is
// no fallback model.
func Load(paths Paths) (*Artifacts, error) {
	scaler, scalerType, err := LoadScaler(paths.Scaler)
	if err != nil {
		return nil, err
	}
	classifier, modelType, err := LoadClassifier(paths.Model)
	if err != nil {
		return nil, err
	}

	return New(scaler, classifier, Info{
		ScalerType: scalerType,
		ScalerPath: paths.Scaler,
		ModelType:  modelType,
		ModelPath:  paths.Model,
	}), nil
}

func LoadScaler(path string) (Scaler, string, error) {
	doc, err := readArtifact(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load scaler: %w", err)
	}

	var scaler Scaler
	switch doc.Type {
	case TypeStandardScaler:
		if err := checkShape(doc.Mean, models.NumFeatures); err != nil {
			return nil, "", fmt.Errorf("scaler %s mean: %w", path, err)
		}
		scaler, err = NewStandardScaler(doc.Mean, doc.Scale)
	case TypeMinMaxScaler:
		if err := checkShape(doc.Min, models.NumFeatures); err != nil {
			return nil, "", fmt.Errorf("scaler %s min: %w", path, err)
		}
		scaler, err = NewMinMaxScaler(doc.Min, doc.Scale)
	default:
		return nil, "", fmt.Errorf("scaler %s: %w %q", path, ErrUnknownArtifactType, doc.Type)
	}
	if err != nil {
		return nil, "", fmt.Errorf("scaler %s: %w", path, err)
	}
	return scaler, doc.Type, nil
}

func LoadClassifier(path string) (Classifier, string, error) {
	doc, err := readArtifact(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load classifier: %w", err)
	}

	switch doc.Type {
	case TypeLogisticRegression:
		if err := checkShape(doc.Coef, models.NumFeatures); err != nil {
			return nil, "", fmt.Errorf("classifier %s coef: %w", path, err)
		}
		lr, err := NewLogisticRegression(doc.Coef, doc.Intercept, doc.Classes)
		if err != nil {
			return nil, "", fmt.Errorf("classifier %s: %w", path, err)
		}
		return lr, doc.Type, nil
	default:
		return nil, "", fmt.Errorf("classifier %s: %w %q", path, ErrUnknownArtifactType, doc.Type)
	}
}

func readArtifact(path string) (*artifactFile, error) {
	if path == "" {
		return nil, errors.New("artifact path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc artifactFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	// Older exports carry no feature names; those are trusted as-is.
	if len(doc.FeatureNames) > 0 && !slices.Equal(doc.FeatureNames, models.FeatureOrder[:]) {
		return nil, fmt.Errorf("%s: %w: got %v, want %v", path, ErrFeatureOrder, doc.FeatureNames, models.FeatureOrder)
	}
	return &doc, nil
}
