package validators

import (
	"cmp"
	"fmt"

	"github.com/goliatone/go-fieldval/pkg/field"
)

// Min requires the value to be at least min.
func Min[T cmp.Ordered](min T) field.Validator[T] {
	return field.ValidatorFunc[T](func(v T) field.Result[T] {
		if v < min {
			return field.Failure[T](field.ValidationFailed(
				fmt.Sprintf("Please enter a value of at least %v.", min)))
		}
		return field.Success(v)
	})
}

// Max requires the value to be at most max.
func Max[T cmp.Ordered](max T) field.Validator[T] {
	return field.ValidatorFunc[T](func(v T) field.Result[T] {
		if v > max {
			return field.Failure[T](field.ValidationFailed(
				fmt.Sprintf("Please enter a value of no more than %v.", max)))
		}
		return field.Success(v)
	})
}

// GreaterThan requires the value to be strictly above the bound.
func GreaterThan[T cmp.Ordered](bound T) field.Validator[T] {
	return field.ValidatorFunc[T](func(v T) field.Result[T] {
		if v <= bound {
			return field.Failure[T](field.ValidationFailed(
				fmt.Sprintf("Please enter a value greater than %v.", bound)))
		}
		return field.Success(v)
	})
}

// LessThan requires the value to be strictly below the bound.
func LessThan[T cmp.Ordered](bound T) field.Validator[T] {
	return field.ValidatorFunc[T](func(v T) field.Result[T] {
		if v >= bound {
			return field.Failure[T](field.ValidationFailed(
				fmt.Sprintf("Please enter a value less than %v.", bound)))
		}
		return field.Success(v)
	})
}

// Between requires the value to fall within [lo, hi].
func Between[T cmp.Ordered](lo, hi T) field.Validator[T] {
	return field.ValidatorFunc[T](func(v T) field.Result[T] {
		if v < lo || v > hi {
			return field.Failure[T](field.ValidationFailed(
				fmt.Sprintf("Please enter a value between %v and %v.", lo, hi)))
		}
		return field.Success(v)
	})
}

// Positive requires an integer greater than zero.
func Positive() field.Validator[int64] {
	return field.ValidatorFunc[int64](func(v int64) field.Result[int64] {
		if v <= 0 {
			return field.Failure[int64](field.ValidationFailed(
				"Please enter a number greater than zero."))
		}
		return field.Success(v)
	})
}
