package validators

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-fieldval/pkg/field"
)

// NonEmpty rejects empty and whitespace-only strings.
func NonEmpty() field.Validator[string] {
	return field.ValidatorFunc[string](func(s string) field.Result[string] {
		if strings.TrimSpace(s) == "" {
			return field.Failure[string](field.ValidationFailed("Please fill in this field."))
		}
		return field.Success(s)
	})
}

// MinLength requires at least min characters, counted in runes.
func MinLength(min int) field.Validator[string] {
	return field.ValidatorFunc[string](func(s string) field.Result[string] {
		if utf8.RuneCountInString(s) < min {
			return field.Failure[string](field.ValidationFailed(
				fmt.Sprintf("Please enter at least %d characters.", min)))
		}
		return field.Success(s)
	})
}

// MaxLength allows at most max characters, counted in runes.
func MaxLength(max int) field.Validator[string] {
	return field.ValidatorFunc[string](func(s string) field.Result[string] {
		if utf8.RuneCountInString(s) > max {
			return field.Failure[string](field.ValidationFailed(
				fmt.Sprintf("Please enter no more than %d characters.", max)))
		}
		return field.Success(s)
	})
}

// LengthBetween requires the rune count to fall within [min, max].
func LengthBetween(min, max int) field.Validator[string] {
	return field.ValidatorFunc[string](func(s string) field.Result[string] {
		count := utf8.RuneCountInString(s)
		if count < min || count > max {
			return field.Failure[string](field.ValidationFailed(
				fmt.Sprintf("Please enter between %d and %d characters.", min, max)))
		}
		return field.Success(s)
	})
}

// Pattern requires the whole value to match the regular expression. An
// empty message falls back to a generic one. A malformed expression is a
// declaration bug; rather than panicking at form-declaration time the
// validator fails every value and says so.
func Pattern(expr, message string) field.Validator[string] {
	if strings.TrimSpace(message) == "" {
		message = "Please match the requested format."
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		broken := field.ValidationFailed(fmt.Sprintf("Field pattern %q is invalid.", expr))
		return field.ValidatorFunc[string](func(string) field.Result[string] {
			return field.Failure[string](broken)
		})
	}
	failed := field.ValidationFailed(message)
	return field.ValidatorFunc[string](func(s string) field.Result[string] {
		if !re.MatchString(s) {
			return field.Failure[string](failed)
		}
		return field.Success(s)
	})
}

// Trimmed normalizes leading and trailing whitespace away. It never fails;
// downstream validators and the final result see the trimmed value.
func Trimmed() field.Validator[string] {
	return field.ValidatorFunc[string](func(s string) field.Result[string] {
		return field.Success(strings.TrimSpace(s))
	})
}
