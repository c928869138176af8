package models

import "time"

// Label is the binary class produced by the classifier.
type Label int

const (
	LabelNegative Label = 0
	LabelPositive Label = 1
)

const (
	PhrasePositive = "indicates"
	PhraseNegative = "does not indicate"
)

// Phrase maps the label to the wording used on the result page. Anything
// other than the positive class reads as negative.
func (l Label) Phrase() string {
	if l == LabelPositive {
		return PhrasePositive
	}
	return PhraseNegative
}

// PredictionResult is created per request and discarded once rendered.
type PredictionResult struct {
	ID         string       `json:"id" example:"5f0c2b7e-1a8d-4b8e-9a55-0d8f3f2f6b11"`
	CreatedAt  time.Time    `json:"created_at"`
	Label      Label        `json:"label" example:"1"`
	Phrase     string       `json:"phrase" example:"indicates"`
	Confidence *float64     `json:"confidence,omitempty" example:"72.4"`
	Input      PatientInput `json:"input"`
}

func NewPredictionResult(input PatientInput, label Label) *PredictionResult {
	return &PredictionResult{
		ID:        NewUUID(),
		CreatedAt: time.Now(),
		Label:     label,
		Phrase:    label.Phrase(),
		Input:     input,
	}
}

func (r *PredictionResult) WithConfidence(percent float64) *PredictionResult {
	r.Confidence = &percent
	return r
}

func (r *PredictionResult) HasConfidence() bool {
	return r.Confidence != nil
}

func (r *PredictionResult) IsPositive() bool {
	return r.Label == LabelPositive
}

// Values echoes the non-scaled input for display.
func (r *PredictionResult) Values() []FieldValue {
	return r.Input.Values()
}
