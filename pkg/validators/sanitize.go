package validators

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-fieldval/pkg/field"
)

var (
	plainPolicyOnce sync.Once
	plainPolicy     *bluemonday.Policy
)

func plainTextPolicy() *bluemonday.Policy {
	plainPolicyOnce.Do(func() {
		plainPolicy = bluemonday.StrictPolicy()
	})
	return plainPolicy
}

// PlainText rejects strings that change under strict HTML sanitization,
// catching markup smuggled into fields meant for plain text. The sanitizer
// entity-escapes bare &, <, and >, so the comparison runs against the
// unescaped output; text like "A & B" passes.
func PlainText() field.Validator[string] {
	return field.ValidatorFunc[string](func(s string) field.Result[string] {
		cleaned := html.UnescapeString(plainTextPolicy().Sanitize(s))
		if cleaned != s {
			return field.Failure[string](field.ValidationFailed(
				"Please remove any HTML or markup from this field."))
		}
		return field.Success(s)
	})
}

// StripMarkup sanitizes instead of rejecting: markup is removed and the
// cleaned value flows on, unescaped back to plain text. It never fails.
func StripMarkup() field.Validator[string] {
	return field.ValidatorFunc[string](func(s string) field.Result[string] {
		cleaned := strings.TrimSpace(html.UnescapeString(plainTextPolicy().Sanitize(s)))
		return field.Success(cleaned)
	})
}
