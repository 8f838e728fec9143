package field

// Result is the outcome of validating a value of type T: either success
// carrying the (possibly normalized) value, or failure carrying one or more
// errors in the order they were produced.
type Result[T any] struct {
	value T
	errs  []Error
}

// Success wraps a value that passed every check.
func Success[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Failure wraps one or more validation errors. Calling it with no errors
// still yields a failure, carrying a generic message so a result never
// claims failure with nothing to show.
func Failure[T any](errs ...Error) Result[T] {
	if len(errs) == 0 {
		errs = []Error{ValidationFailed("Invalid value.")}
	}
	return Result[T]{errs: append([]Error(nil), errs...)}
}

// OK reports whether the result is a success.
func (r Result[T]) OK() bool {
	return len(r.errs) == 0
}

// Value returns the successful value. On failure it returns the zero value
// of T; check OK first.
func (r Result[T]) Value() T {
	return r.value
}

// Errors returns the failure errors in order, or nil on success.
func (r Result[T]) Errors() []Error {
	if len(r.errs) == 0 {
		return nil
	}
	return append([]Error(nil), r.errs...)
}

// Messages returns the failure messages in order, or nil on success.
func (r Result[T]) Messages() []string {
	if len(r.errs) == 0 {
		return nil
	}
	out := make([]string, 0, len(r.errs))
	for _, err := range r.errs {
		out = append(out, err.Message)
	}
	return out
}
