package predictor

import (
	"errors"

	"github.com/OldStager01/diabetes-risk/pkg/validation"
)

var (
	// ErrInvalidInput marks a missing or unparseable field.
	ErrInvalidInput = validation.ErrInvalidInput

	// ErrModel marks a failure inside the scaler or classifier.
	ErrModel = errors.New("model computation failed")
)

type Kind string

const (
	KindInvalidInput Kind = "invalid_input"
	KindModel        Kind = "model_error"
)

// Error carries the failure kind alongside the underlying error. Its
// message is the underlying error's message only.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() []error {
	if e.Kind == KindModel {
		return []error{ErrModel, e.Err}
	}
	return []error{ErrInvalidInput, e.Err}
}

func invalidInput(err error) *Error {
	return &Error{Kind: KindInvalidInput, Err: err}
}

func modelFailure(err error) *Error {
	return &Error{Kind: KindModel, Err: err}
}

// KindOf reports the kind of err, or "" when err did not come from this
// package.
func KindOf(err error) Kind {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Kind
	}
	return ""
}
