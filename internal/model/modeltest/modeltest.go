// Package modeltest provides small, hand-checkable artifacts for tests.
//
// The fixture scaler is the identity and the classifier weighs Glucose
// only, with its boundary at Glucose = 100:
//
//	Glucose 148 -> "indicates", confidence 100.0
//	Glucose 101 -> "indicates", confidence 73.1
//	Glucose 100 -> "does not indicate", confidence 50.0
//	Glucose  99 -> "does not indicate", confidence 73.1
package modeltest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/OldStager01/diabetes-risk/internal/model"
	"github.com/OldStager01/diabetes-risk/pkg/models"
)

const (
	ScalerFile = "scaler.json"
	ModelFile  = "lr.json"
)

func ScalerDoc() map[string]interface{} {
	return map[string]interface{}{
		"type":          model.TypeStandardScaler,
		"feature_names": models.FeatureOrder[:],
		"mean":          make([]float64, models.NumFeatures),
		"scale":         []float64{1, 1, 1, 1, 1, 1, 1},
	}
}

func ModelDoc() map[string]interface{} {
	return map[string]interface{}{
		"type":          model.TypeLogisticRegression,
		"feature_names": models.FeatureOrder[:],
		"classes":       []int{0, 1},
		"coef":          []float64{1, 0, 0, 0, 0, 0, 0},
		"intercept":     -100.0,
	}
}

// Artifacts builds the fixture pair in memory.
func Artifacts(t testing.TB) *model.Artifacts {
	t.Helper()

	scaler, err := model.NewStandardScaler(make([]float64, models.NumFeatures), []float64{1, 1, 1, 1, 1, 1, 1})
	if err != nil {
		t.Fatalf("fixture scaler: %v", err)
	}
	lr, err := model.NewLogisticRegression([]float64{1, 0, 0, 0, 0, 0, 0}, -100, []int{0, 1})
	if err != nil {
		t.Fatalf("fixture classifier: %v", err)
	}
	return model.New(scaler, lr, model.Info{
		ScalerType: model.TypeStandardScaler,
		ModelType:  model.TypeLogisticRegression,
	})
}

// WriteArtifacts writes the fixture documents into dir and returns their paths.
func WriteArtifacts(t testing.TB, dir string) model.Paths {
	t.Helper()

	return model.Paths{
		Scaler: WriteJSON(t, filepath.Join(dir, ScalerFile), ScalerDoc()),
		Model:  WriteJSON(t, filepath.Join(dir, ModelFile), ModelDoc()),
	}
}

func WriteJSON(t testing.TB, path string, doc interface{}) string {
	t.Helper()

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// ScenarioInput is the reference patient: Age 45, Glucose 148, BloodPressure
// 72, Insulin 0, BMI 33.6, SkinThickness 35, DiabetesPedigreeFunction 0.627.
func ScenarioInput() models.PatientInput {
	return models.PatientInput{
		Age:                      45,
		Glucose:                  148,
		BloodPressure:            72,
		Insulin:                  0,
		BMI:                      33.6,
		SkinThickness:            35,
		DiabetesPedigreeFunction: 0.627,
	}
}

// ScenarioForm is ScenarioInput as submitted form values.
func ScenarioForm() map[string]string {
	return map[string]string{
		models.FieldAge:                      "45",
		models.FieldGlucose:                  "148",
		models.FieldBloodPressure:            "72",
		models.FieldInsulin:                  "0",
		models.FieldBMI:                      "33.6",
		models.FieldSkinThickness:            "35",
		models.FieldDiabetesPedigreeFunction: "0.627",
	}
}
