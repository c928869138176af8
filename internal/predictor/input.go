package predictor

import (
	"github.com/OldStager01/diabetes-risk/pkg/models"
	"github.com/OldStager01/diabetes-risk/pkg/validation"
)

// LookupFunc returns a submitted form value and whether it was present.
type LookupFunc func(name string) (string, bool)

// ParseForm converts the seven submitted fields, stopping at the first
// failure. Fields are converted in display order, so a request missing
// both Age and BMI reports Age.
func ParseForm(lookup LookupFunc) (models.PatientInput, error) {
	p := &formParser{lookup: lookup}
	in := models.PatientInput{
		Age:                      p.int(models.FieldAge),
		Glucose:                  p.int(models.FieldGlucose),
		BloodPressure:            p.int(models.FieldBloodPressure),
		Insulin:                  p.int(models.FieldInsulin),
		BMI:                      p.float(models.FieldBMI),
		SkinThickness:            p.int(models.FieldSkinThickness),
		DiabetesPedigreeFunction: p.float(models.FieldDiabetesPedigreeFunction),
	}
	if p.err != nil {
		return models.PatientInput{}, invalidInput(p.err)
	}
	return in, nil
}

type formParser struct {
	lookup LookupFunc
	err    error
}

func (p *formParser) int(name string) int {
	if p.err != nil {
		return 0
	}
	raw, ok := p.lookup(name)
	v, err := validation.ParseInt(name, raw, ok)
	p.err = err
	return v
}

func (p *formParser) float(name string) float64 {
	if p.err != nil {
		return 0
	}
	raw, ok := p.lookup(name)
	v, err := validation.ParseFloat(name, raw, ok)
	p.err = err
	return v
}

// FromRequest converts a decoded JSON request.
func FromRequest(req models.PatientRequest) (models.PatientInput, error) {
	in, err := req.ToInput()
	if err != nil {
		return models.PatientInput{}, invalidInput(err)
	}
	return in, nil
}

// InvalidInput wraps a decoding error raised outside this package.
func InvalidInput(err error) error {
	return invalidInput(err)
}
