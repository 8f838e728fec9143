package field

import "github.com/goliatone/go-fieldval/pkg/value"

// Coercion failure messages are part of the observable contract; they are
// the exact text shown to end users.
const (
	msgInvalidText          = "Please enter valid text."
	msgInvalidWholeNumber   = "Please enter a whole number."
	msgInvalidUnsignedWhole = "Please enter a positive whole number."
	msgInvalidNumber        = "Please enter a number."
)

// Validatable is the capability a form aggregator needs from a field: a
// display label and a validate operation over the untyped submitted value.
// Successful results re-wrap the coerced primitive in the untyped
// representation so heterogeneous field collections share one result type.
type Validatable interface {
	Label() string
	Validate(input value.Value) Result[value.Value]
}

// String validates values expected to carry text.
type String struct {
	label      string
	validators []Validator[string]
}

// NewString builds a string field. Validators run in the order given.
func NewString(label string, validators ...Validator[string]) *String {
	return &String{label: label, validators: append([]Validator[string](nil), validators...)}
}

// Label returns the display label.
func (f *String) Label() string { return f.label }

// Validate requires a string payload; any other payload fails coercion and
// skips the validators entirely.
func (f *String) Validate(input value.Value) Result[value.Value] {
	s, ok := input.AsString()
	if !ok {
		return Failure[value.Value](ValidationFailed(msgInvalidText))
	}
	s, errs := runAll(f.validators, s)
	if len(errs) > 0 {
		return Failure[value.Value](errs...)
	}
	return Success(value.String(s))
}

// Integer validates values expected to carry a signed whole number.
type Integer struct {
	label      string
	validators []Validator[int64]
}

// NewInteger builds an integer field. Validators run in the order given.
func NewInteger(label string, validators ...Validator[int64]) *Integer {
	return &Integer{label: label, validators: append([]Validator[int64](nil), validators...)}
}

// Label returns the display label.
func (f *Integer) Label() string { return f.label }

// Validate requires an int-shaped numeric payload. A double-shaped payload
// is rejected even when numerically whole.
func (f *Integer) Validate(input value.Value) Result[value.Value] {
	i, ok := input.AsInt()
	if !ok {
		return Failure[value.Value](ValidationFailed(msgInvalidWholeNumber))
	}
	i, errs := runAll(f.validators, i)
	if len(errs) > 0 {
		return Failure[value.Value](errs...)
	}
	return Success(value.Int(i))
}

// Unsigned validates values expected to carry a non-negative whole number.
type Unsigned struct {
	label      string
	validators []Validator[uint64]
}

// NewUnsigned builds an unsigned integer field. Validators run in the order
// given.
func NewUnsigned(label string, validators ...Validator[uint64]) *Unsigned {
	return &Unsigned{label: label, validators: append([]Validator[uint64](nil), validators...)}
}

// Label returns the display label.
func (f *Unsigned) Label() string { return f.label }

// Validate rejects double-shaped payloads before the sign check; both
// failures share one message.
func (f *Unsigned) Validate(input value.Value) Result[value.Value] {
	if input.Kind() == value.KindDouble {
		return Failure[value.Value](ValidationFailed(msgInvalidUnsignedWhole))
	}
	u, ok := input.AsUint()
	if !ok {
		return Failure[value.Value](ValidationFailed(msgInvalidUnsignedWhole))
	}
	u, errs := runAll(f.validators, u)
	if len(errs) > 0 {
		return Failure[value.Value](errs...)
	}
	return Success(value.Uint(u))
}

// Double validates values expected to carry any numeric payload.
type Double struct {
	label      string
	validators []Validator[float64]
}

// NewDouble builds a floating-point field. Validators run in the order
// given.
func NewDouble(label string, validators ...Validator[float64]) *Double {
	return &Double{label: label, validators: append([]Validator[float64](nil), validators...)}
}

// Label returns the display label.
func (f *Double) Label() string { return f.label }

// Validate accepts either numeric shape, widening int payloads.
func (f *Double) Validate(input value.Value) Result[value.Value] {
	d, ok := input.AsDouble()
	if !ok {
		return Failure[value.Value](ValidationFailed(msgInvalidNumber))
	}
	d, errs := runAll(f.validators, d)
	if len(errs) > 0 {
		return Failure[value.Value](errs...)
	}
	return Success(value.Double(d))
}

// Bool validates checkbox-style values. Coercion never fails: a missing or
// non-boolean payload means the box was not checked.
type Bool struct {
	label      string
	validators []Validator[bool]
}

// NewBool builds a boolean field. Validators run in the order given.
func NewBool(label string, validators ...Validator[bool]) *Bool {
	return &Bool{label: label, validators: append([]Validator[bool](nil), validators...)}
}

// Label returns the display label.
func (f *Bool) Label() string { return f.label }

// Validate coerces any non-boolean payload, including null, to false.
func (f *Bool) Validate(input value.Value) Result[value.Value] {
	b, _ := input.AsBool()
	b, errs := runAll(f.validators, b)
	if len(errs) > 0 {
		return Failure[value.Value](errs...)
	}
	return Success(value.Bool(b))
}
