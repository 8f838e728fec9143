// Package field implements typed form fields that sit between an untyped
// submitted payload and form business logic. Each field variant coerces a
// value.Value to its primitive type and, only when coercion succeeds, runs
// its validators in declaration order, concatenating every failure into a
// single result. Fields and validators are immutable after construction, so
// concurrent Validate calls on a shared instance are safe.
package field
