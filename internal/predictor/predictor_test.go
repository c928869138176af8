package predictor_test

import (
	"context"
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OldStager01/diabetes-risk/internal/model"
	"github.com/OldStager01/diabetes-risk/internal/model/modeltest"
	"github.com/OldStager01/diabetes-risk/internal/predictor"
	"github.com/OldStager01/diabetes-risk/pkg/config"
	"github.com/OldStager01/diabetes-risk/pkg/models"
	"github.com/OldStager01/diabetes-risk/pkg/validation"
)

func lookupFrom(form map[string]string) predictor.LookupFunc {
	return func(name string) (string, bool) {
		v, ok := form[name]
		return v, ok
	}
}

func TestParseForm(t *testing.T) {
	in, err := predictor.ParseForm(lookupFrom(modeltest.ScenarioForm()))

	require.NoError(t, err)
	assert.Equal(t, modeltest.ScenarioInput(), in)
}

func TestParseForm_Errors(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(form map[string]string)
		expectField string
		expectMsg   string
	}{
		{
			name:        "missing age",
			mutate:      func(f map[string]string) { delete(f, models.FieldAge) },
			expectField: models.FieldAge,
			expectMsg:   "field Age is required",
		},
		{
			name:        "non numeric bmi",
			mutate:      func(f map[string]string) { f[models.FieldBMI] = "abc" },
			expectField: models.FieldBMI,
			expectMsg:   `invalid literal for float field BMI: "abc"`,
		},
		{
			name:        "decimal in integer field",
			mutate:      func(f map[string]string) { f[models.FieldGlucose] = "148.5" },
			expectField: models.FieldGlucose,
		},
		{
			name:        "empty string",
			mutate:      func(f map[string]string) { f[models.FieldInsulin] = "" },
			expectField: models.FieldInsulin,
		},
		{
			name: "first failure in display order wins",
			mutate: func(f map[string]string) {
				delete(f, models.FieldDiabetesPedigreeFunction)
				f[models.FieldBloodPressure] = "high"
			},
			expectField: models.FieldBloodPressure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := modeltest.ScenarioForm()
			tt.mutate(form)

			_, err := predictor.ParseForm(lookupFrom(form))

			require.Error(t, err)
			assert.ErrorIs(t, err, predictor.ErrInvalidInput)
			assert.Equal(t, predictor.KindInvalidInput, predictor.KindOf(err))

			var fieldErr *validation.FieldError
			require.True(t, errors.As(err, &fieldErr))
			assert.Equal(t, tt.expectField, fieldErr.Field)
			if tt.expectMsg != "" {
				assert.Equal(t, tt.expectMsg, err.Error())
			}
		})
	}
}

func TestParseForm_NegativeAndWhitespace(t *testing.T) {
	form := modeltest.ScenarioForm()
	form[models.FieldAge] = " -5 "
	form[models.FieldBMI] = "1e400"

	in, err := predictor.ParseForm(lookupFrom(form))

	require.NoError(t, err)
	assert.Equal(t, -5, in.Age)
	assert.True(t, math.IsInf(in.BMI, 1))
}

func TestFromRequest(t *testing.T) {
	age, glucose, bp, insulin, skin := 45, 148, 72, 0, 35
	bmi, dpf := 33.6, 0.627

	in, err := predictor.FromRequest(models.PatientRequest{
		Age: &age, Glucose: &glucose, BloodPressure: &bp, Insulin: &insulin,
		BMI: &bmi, SkinThickness: &skin, DiabetesPedigreeFunction: &dpf,
	})
	require.NoError(t, err)
	assert.Equal(t, modeltest.ScenarioInput(), in)

	_, err = predictor.FromRequest(models.PatientRequest{Age: &age})
	require.Error(t, err)
	assert.ErrorIs(t, err, predictor.ErrInvalidInput)
	assert.Contains(t, err.Error(), models.FieldGlucose)
}

func TestService_Predict(t *testing.T) {
	svc := predictor.NewService(modeltest.Artifacts(t), predictor.Options{IncludeConfidence: true})

	tests := []struct {
		glucose          int
		expectPhrase     string
		expectLabel      models.Label
		expectConfidence float64
	}{
		{glucose: 148, expectPhrase: "indicates", expectLabel: models.LabelPositive, expectConfidence: 100.0},
		{glucose: 101, expectPhrase: "indicates", expectLabel: models.LabelPositive, expectConfidence: 73.1},
		{glucose: 100, expectPhrase: "does not indicate", expectLabel: models.LabelNegative, expectConfidence: 50.0},
		{glucose: 99, expectPhrase: "does not indicate", expectLabel: models.LabelNegative, expectConfidence: 73.1},
	}

	for _, tt := range tests {
		t.Run(tt.expectPhrase, func(t *testing.T) {
			in := modeltest.ScenarioInput()
			in.Glucose = tt.glucose

			result, err := svc.Predict(context.Background(), in)

			require.NoError(t, err)
			assert.Equal(t, tt.expectLabel, result.Label)
			assert.Equal(t, tt.expectPhrase, result.Phrase)
			require.True(t, result.HasConfidence())
			assert.InDelta(t, tt.expectConfidence, *result.Confidence, 1e-9)
			assert.Equal(t, in, result.Input)
			assert.NotEmpty(t, result.ID)
		})
	}
}

// The artifacts shipped under artifacts/ must load with the default paths and
// score the reference patient.
func TestService_PredictShippedArtifacts(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Artifacts.BaseDir = filepath.Join("..", "..")

	artifacts, err := model.LoadFromConfig(cfg.Artifacts)
	require.NoError(t, err)
	assert.Equal(t, model.TypeStandardScaler, artifacts.Info().ScalerType)
	assert.Equal(t, model.TypeLogisticRegression, artifacts.Info().ModelType)

	svc := predictor.NewService(artifacts, predictor.Options{IncludeConfidence: true})
	result, err := svc.Predict(context.Background(), modeltest.ScenarioInput())

	require.NoError(t, err)
	assert.Equal(t, "indicates", result.Phrase)
	require.True(t, result.HasConfidence())
	assert.InDelta(t, 65.2, *result.Confidence, 1e-9)
}

func TestService_PredictWithoutConfidence(t *testing.T) {
	svc := predictor.NewService(modeltest.Artifacts(t), predictor.Options{})

	result, err := svc.Predict(context.Background(), modeltest.ScenarioInput())

	require.NoError(t, err)
	assert.False(t, result.HasConfidence())
	assert.Equal(t, "indicates", result.Phrase)
}

func TestService_PredictIsDeterministic(t *testing.T) {
	svc := predictor.NewService(modeltest.Artifacts(t), predictor.Options{IncludeConfidence: true})
	in := modeltest.ScenarioInput()

	first, err := svc.Predict(context.Background(), in)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		next, err := svc.Predict(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, first.Label, next.Label)
		assert.Equal(t, *first.Confidence, *next.Confidence)
	}
}

func TestService_PredictNonFinite(t *testing.T) {
	svc := predictor.NewService(modeltest.Artifacts(t), predictor.Options{IncludeConfidence: true})
	in := modeltest.ScenarioInput()
	in.BMI = math.NaN()

	_, err := svc.Predict(context.Background(), in)

	require.Error(t, err)
	assert.ErrorIs(t, err, predictor.ErrModel)
	assert.ErrorIs(t, err, model.ErrNonFinite)
	assert.NotErrorIs(t, err, predictor.ErrInvalidInput)
	assert.Equal(t, predictor.KindModel, predictor.KindOf(err))
}

func TestService_PredictCache(t *testing.T) {
	svc := predictor.NewService(modeltest.Artifacts(t), predictor.Options{IncludeConfidence: true, CacheSize: 2})
	in := modeltest.ScenarioInput()

	first, err := svc.Predict(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 1, svc.CacheLen())

	second, err := svc.Predict(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 1, svc.CacheLen())

	// Cached scores still produce a fresh result per request
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, first.Label, second.Label)
	assert.Equal(t, *first.Confidence, *second.Confidence)

	for _, glucose := range []int{99, 100, 101} {
		in.Glucose = glucose
		_, err := svc.Predict(context.Background(), in)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, svc.CacheLen())
}

func TestService_PredictErrorsAreNotCached(t *testing.T) {
	svc := predictor.NewService(modeltest.Artifacts(t), predictor.Options{CacheSize: 8})
	in := modeltest.ScenarioInput()
	in.BMI = math.Inf(1)

	_, err := svc.Predict(context.Background(), in)

	require.Error(t, err)
	assert.Zero(t, svc.CacheLen())
}

type labelOnly struct{ label int }

func (c labelOnly) Predict([]float64) (int, error) { return c.label, nil }

type failingScaler struct{}

func (failingScaler) Transform([]float64) ([]float64, error) {
	return nil, errors.New("boom")
}

func TestService_PredictClassifierWithoutProba(t *testing.T) {
	artifacts := model.New(modeltest.Artifacts(t).Scaler(), labelOnly{label: 1}, model.Info{})
	svc := predictor.NewService(artifacts, predictor.Options{IncludeConfidence: true})

	result, err := svc.Predict(context.Background(), modeltest.ScenarioInput())

	require.NoError(t, err)
	assert.Equal(t, "indicates", result.Phrase)
	assert.False(t, result.HasConfidence())
}

func TestService_PredictUnexpectedLabel(t *testing.T) {
	artifacts := model.New(modeltest.Artifacts(t).Scaler(), labelOnly{label: 7}, model.Info{})
	svc := predictor.NewService(artifacts, predictor.Options{})

	result, err := svc.Predict(context.Background(), modeltest.ScenarioInput())

	require.NoError(t, err)
	assert.Equal(t, "does not indicate", result.Phrase)
}

func TestService_PredictScalerFailure(t *testing.T) {
	artifacts := model.New(failingScaler{}, labelOnly{label: 1}, model.Info{})
	svc := predictor.NewService(artifacts, predictor.Options{})

	_, err := svc.Predict(context.Background(), modeltest.ScenarioInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, predictor.ErrModel)
	assert.Equal(t, "scaler transform: boom", err.Error())
}

func TestConfidence(t *testing.T) {
	tests := []struct {
		name     string
		proba    []float64
		expected float64
	}{
		{name: "rounds to one decimal", proba: []float64{0.27586, 0.72414}, expected: 72.4},
		{name: "picks larger class", proba: []float64{0.9, 0.1}, expected: 90.0},
		{name: "even split", proba: []float64{0.5, 0.5}, expected: 50.0},
		{name: "certain", proba: []float64{0, 1}, expected: 100.0},
		{name: "clamped above", proba: []float64{0, 1.2}, expected: 100.0},
		{name: "empty", proba: nil, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, predictor.Confidence(tt.proba), 1e-9)
		})
	}
}
