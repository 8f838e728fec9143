package field

// Validator is a single reusable rule checked against an already-coerced
// value. Implementations must be pure: no side effects, no state mutated
// across calls. A successful result may carry a normalized form of the
// input, which is handed to the next validator in the chain.
type Validator[T any] interface {
	Validate(value T) Result[T]
}

// ValidatorFunc adapts a plain function to the Validator interface.
type ValidatorFunc[T any] func(value T) Result[T]

// Validate calls the wrapped function.
func (f ValidatorFunc[T]) Validate(value T) Result[T] {
	return f(value)
}

// runAll applies every validator in order against the coerced value,
// concatenating errors instead of short-circuiting so the caller sees every
// failed rule at once. Successful validators may normalize the value; a
// failed validator leaves it untouched for the ones after it.
func runAll[T any](validators []Validator[T], value T) (T, []Error) {
	var errs []Error
	for _, validator := range validators {
		result := validator.Validate(value)
		if !result.OK() {
			errs = append(errs, result.Errors()...)
			continue
		}
		value = result.Value()
	}
	return value, errs
}
