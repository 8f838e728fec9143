// Package fieldval re-exports the typed field-validation layer from a single
// import path: field variants that coerce an untyped submitted value to
// their primitive type and run composable validators against the result.
package fieldval

import (
	"github.com/goliatone/go-fieldval/pkg/field"
	"github.com/goliatone/go-fieldval/pkg/value"
)

// Error is a single human-readable validation failure.
type Error = field.Error

// Validatable is the capability a form aggregator needs from a field.
type Validatable = field.Validatable

// NamedField binds a field to its submission key.
type NamedField = field.NamedField

// Fieldset is an ordered collection of named fields.
type Fieldset = field.Fieldset

// Results collects per-field validation outcomes.
type Results = field.Results

// NewString builds a string field; validators run in the order given.
func NewString(label string, validators ...field.Validator[string]) *field.String {
	return field.NewString(label, validators...)
}

// NewInteger builds a signed whole-number field.
func NewInteger(label string, validators ...field.Validator[int64]) *field.Integer {
	return field.NewInteger(label, validators...)
}

// NewUnsigned builds a non-negative whole-number field.
func NewUnsigned(label string, validators ...field.Validator[uint64]) *field.Unsigned {
	return field.NewUnsigned(label, validators...)
}

// NewDouble builds a floating-point field.
func NewDouble(label string, validators ...field.Validator[float64]) *field.Double {
	return field.NewDouble(label, validators...)
}

// NewBool builds a checkbox-style boolean field.
func NewBool(label string, validators ...field.Validator[bool]) *field.Bool {
	return field.NewBool(label, validators...)
}

// Named pairs a submission key with a field.
func Named(name string, f field.Validatable) field.NamedField {
	return field.Named(name, f)
}

// NewFieldset builds an ordered fieldset.
func NewFieldset(fields ...field.NamedField) *field.Fieldset {
	return field.NewFieldset(fields...)
}

// ValidateJSON decodes a JSON payload and validates it against the
// fieldset; the simplest entry point for callers holding raw request
// bytes.
func ValidateJSON(fs *field.Fieldset, payload []byte) (field.Results, error) {
	decoded, err := value.FromJSON(payload)
	if err != nil {
		return nil, err
	}
	return fs.Validate(decoded), nil
}
