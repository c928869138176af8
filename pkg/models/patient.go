package models

import (
	"fmt"
	"strconv"

	"github.com/OldStager01/diabetes-risk/pkg/validation"
)

// Form field names. They double as the feature names recorded in the
// fitted artifacts.
const (
	FieldAge                      = "Age"
	FieldGlucose                  = "Glucose"
	FieldBloodPressure            = "BloodPressure"
	FieldInsulin                  = "Insulin"
	FieldBMI                      = "BMI"
	FieldSkinThickness            = "SkinThickness"
	FieldDiabetesPedigreeFunction = "DiabetesPedigreeFunction"
)

// NumFeatures is the length of every feature vector.
const NumFeatures = 7

type FieldKind string

const (
	FieldKindInt   FieldKind = "int"
	FieldKindFloat FieldKind = "float"
)

// Field describes one form input. Min and Max are the plausible range the
// browser checks before submitting; the server parses without range checks.
type Field struct {
	Name  string
	Label string
	Unit  string
	Kind  FieldKind
	Step  string
	Min   string
	Max   string
	Hint  string
}

// RangeMessage explains the plausible range, for the input's tooltip.
func (f Field) RangeMessage() string {
	msg := fmt.Sprintf("%s must be between %s and %s", f.Label, f.Min, f.Max)
	if f.Unit != "" {
		msg += " " + f.Unit
	}
	return msg
}

// Fields lists the form fields in display order. This is NOT the feature
// order; see FeatureOrder.
var Fields = []Field{
	{Name: FieldAge, Label: "Age", Unit: "years", Kind: FieldKindInt, Step: "1",
		Min: "1", Max: "120", Hint: "Typical range: 21-81 years"},
	{Name: FieldGlucose, Label: "Glucose", Unit: "mg/dL", Kind: FieldKindInt, Step: "1",
		Min: "0", Max: "300", Hint: "Normal fasting level: 70-99 mg/dL"},
	{Name: FieldBloodPressure, Label: "Blood Pressure", Unit: "mm Hg", Kind: FieldKindInt, Step: "1",
		Min: "40", Max: "140", Hint: "Normal diastolic: 60-80 mm Hg"},
	{Name: FieldInsulin, Label: "Insulin", Unit: "mu U/ml", Kind: FieldKindInt, Step: "1",
		Min: "0", Max: "1000", Hint: "Normal: 2.6-24.9 mu U/ml"},
	{Name: FieldBMI, Label: "BMI", Unit: "kg/m²", Kind: FieldKindFloat, Step: "any",
		Min: "10", Max: "70", Hint: "Normal: 18.5-24.9"},
	{Name: FieldSkinThickness, Label: "Skin Thickness", Unit: "mm", Kind: FieldKindInt, Step: "1",
		Min: "0", Max: "100", Hint: "Typical range: 7-47 mm"},
	{Name: FieldDiabetesPedigreeFunction, Label: "Diabetes Pedigree Function", Kind: FieldKindFloat, Step: "any",
		Min: "0", Max: "3", Hint: "Family history score, usually 0.078-2.42"},
}

// FeatureOrder is the column order the scaler and classifier were fitted
// with. Reordering it silently corrupts every prediction.
var FeatureOrder = [NumFeatures]string{
	FieldGlucose,
	FieldBloodPressure,
	FieldSkinThickness,
	FieldInsulin,
	FieldBMI,
	FieldDiabetesPedigreeFunction,
	FieldAge,
}

// PatientInput holds the seven measurements of one prediction request.
type PatientInput struct {
	Age                      int     `json:"Age"`
	Glucose                  int     `json:"Glucose"`
	BloodPressure            int     `json:"BloodPressure"`
	Insulin                  int     `json:"Insulin"`
	BMI                      float64 `json:"BMI"`
	SkinThickness            int     `json:"SkinThickness"`
	DiabetesPedigreeFunction float64 `json:"DiabetesPedigreeFunction"`
}

// FeatureVector returns the input in FeatureOrder.
func (p PatientInput) FeatureVector() []float64 {
	return []float64{
		float64(p.Glucose),
		float64(p.BloodPressure),
		float64(p.SkinThickness),
		float64(p.Insulin),
		p.BMI,
		p.DiabetesPedigreeFunction,
		float64(p.Age),
	}
}

// Value formats a single field as the user entered it.
func (p PatientInput) Value(name string) string {
	switch name {
	case FieldAge:
		return strconv.Itoa(p.Age)
	case FieldGlucose:
		return strconv.Itoa(p.Glucose)
	case FieldBloodPressure:
		return strconv.Itoa(p.BloodPressure)
	case FieldInsulin:
		return strconv.Itoa(p.Insulin)
	case FieldBMI:
		return strconv.FormatFloat(p.BMI, 'f', -1, 64)
	case FieldSkinThickness:
		return strconv.Itoa(p.SkinThickness)
	case FieldDiabetesPedigreeFunction:
		return strconv.FormatFloat(p.DiabetesPedigreeFunction, 'f', -1, 64)
	default:
		return ""
	}
}

type FieldValue struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Unit  string `json:"unit,omitempty"`
	Value string `json:"value"`
}

// Values echoes the raw input in display order.
func (p PatientInput) Values() []FieldValue {
	values := make([]FieldValue, len(Fields))
	for i, f := range Fields {
		values[i] = FieldValue{
			Name:  f.Name,
			Label: f.Label,
			Unit:  f.Unit,
			Value: p.Value(f.Name),
		}
	}
	return values
}

// PatientRequest is the JSON shape accepted by the API and the live
// preview socket. Pointers distinguish a missing field from a zero.
type PatientRequest struct {
	Age                      *int     `json:"Age" example:"45"`
	Glucose                  *int     `json:"Glucose" example:"148"`
	BloodPressure            *int     `json:"BloodPressure" example:"72"`
	Insulin                  *int     `json:"Insulin" example:"0"`
	BMI                      *float64 `json:"BMI" example:"33.6"`
	SkinThickness            *int     `json:"SkinThickness" example:"35"`
	DiabetesPedigreeFunction *float64 `json:"DiabetesPedigreeFunction" example:"0.627"`
}

// ToInput checks presence in the same order the form handler parses
// fields and returns the first missing one.
func (r PatientRequest) ToInput() (PatientInput, error) {
	switch {
	case r.Age == nil:
		return PatientInput{}, validation.Missing(FieldAge)
	case r.Glucose == nil:
		return PatientInput{}, validation.Missing(FieldGlucose)
	case r.BloodPressure == nil:
		return PatientInput{}, validation.Missing(FieldBloodPressure)
	case r.Insulin == nil:
		return PatientInput{}, validation.Missing(FieldInsulin)
	case r.BMI == nil:
		return PatientInput{}, validation.Missing(FieldBMI)
	case r.SkinThickness == nil:
		return PatientInput{}, validation.Missing(FieldSkinThickness)
	case r.DiabetesPedigreeFunction == nil:
		return PatientInput{}, validation.Missing(FieldDiabetesPedigreeFunction)
	}

	return PatientInput{
		Age:                      *r.Age,
		Glucose:                  *r.Glucose,
		BloodPressure:            *r.BloodPressure,
		Insulin:                  *r.Insulin,
		BMI:                      *r.BMI,
		SkinThickness:            *r.SkinThickness,
		DiabetesPedigreeFunction: *r.DiabetesPedigreeFunction,
	}, nil
}
