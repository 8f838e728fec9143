package field

// ErrorKind tags the category of a validation error. The set is open:
// callers matching on kinds should treat unknown values as a generic
// failure rather than rejecting them.
type ErrorKind string

// ErrorKindValidation marks a value that failed coercion or a validator
// rule. Both surface through the same result channel, distinguished only by
// message text.
const ErrorKindValidation ErrorKind = "validation_failed"

// Error is a single human-readable validation failure.
type Error struct {
	Kind    ErrorKind
	Message string
}

// ValidationFailed builds an Error carrying a user-facing message.
func ValidationFailed(message string) Error {
	return Error{Kind: ErrorKindValidation, Message: message}
}

// Error implements the error interface.
func (e Error) Error() string {
	return e.Message
}
