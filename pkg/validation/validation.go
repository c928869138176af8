package validation

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrInvalidInput indicates the input failed validation
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingField indicates a required field was absent
	ErrMissingField = errors.New("missing required field")
)

// FieldError describes a single field that could not be converted.
type FieldError struct {
	Field string
	Value string
	Kind  string
	Err   error
}

func (e *FieldError) Error() string {
	if errors.Is(e.Err, ErrMissingField) {
		return fmt.Sprintf("field %s is required", e.Field)
	}
	return fmt.Sprintf("invalid literal for %s field %s: %q", e.Kind, e.Field, e.Value)
}

func (e *FieldError) Unwrap() []error {
	return []error{ErrInvalidInput, e.Err}
}

// ParseInt converts a required integer field. Only surrounding whitespace is
// trimmed; decimal notation such as "45.0" and any interior character that
// is not part of the literal are rejected.
func ParseInt(field, raw string, present bool) (int, error) {
	if !present {
		return 0, &FieldError{Field: field, Kind: "int", Err: ErrMissingField}
	}

	value := strings.TrimSpace(raw)
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &FieldError{Field: field, Value: raw, Kind: "int", Err: err}
	}
	return n, nil
}

// ParseFloat converts a required floating-point field. No range checks are
// applied; NaN and infinities parse and are rejected later by the model.
func ParseFloat(field, raw string, present bool) (float64, error) {
	if !present {
		return 0, &FieldError{Field: field, Kind: "float", Err: ErrMissingField}
	}

	value := strings.TrimSpace(raw)
	f, err := strconv.ParseFloat(value, 64)
	if err != nil && !isRangeError(err, f) {
		return 0, &FieldError{Field: field, Value: raw, Kind: "float", Err: err}
	}
	return f, nil
}

// strconv reports overflow as an error but still returns ±Inf, which is what
// a float literal like "1e400" means.
func isRangeError(err error, f float64) bool {
	return errors.Is(err, strconv.ErrRange) && math.IsInf(f, 0)
}

// Missing reports a required field absent from a request.
func Missing(field string) *FieldError {
	return &FieldError{Field: field, Err: ErrMissingField}
}
