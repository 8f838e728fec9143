// Package prompt fills a fieldset interactively: one prompt per field, with
// answers validated through the field layer before they are accepted. The
// survey-backed driver runs against a real terminal; tests substitute a
// scripted driver.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-fieldval/pkg/field"
	"github.com/goliatone/go-fieldval/pkg/value"
)

// ErrAttemptsExhausted is returned when a field stays invalid after the
// configured number of answers.
var ErrAttemptsExhausted = errors.New("prompt: attempts exhausted")

const defaultAttempts = 3

// Option configures a Runner.
type Option func(*Runner)

// WithDriver swaps the prompt driver; the default is the survey terminal
// driver.
func WithDriver(driver Driver) Option {
	return func(r *Runner) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithAttempts sets how many answers a field may take before Run gives up.
func WithAttempts(attempts int) Option {
	return func(r *Runner) {
		if attempts > 0 {
			r.attempts = attempts
		}
	}
}

// Runner drives a fieldset through a prompt driver.
type Runner struct {
	driver   Driver
	attempts int
}

// NewRunner builds a Runner with the given options.
func NewRunner(options ...Option) *Runner {
	runner := &Runner{
		driver:   NewSurveyDriver(),
		attempts: defaultAttempts,
	}
	for _, option := range options {
		option(runner)
	}
	return runner
}

// Run prompts for every field in declaration order and returns the object
// value holding each field's validated result. A field that stays invalid
// after the attempt budget aborts the run.
func (r *Runner) Run(ctx context.Context, fs *field.Fieldset) (value.Value, error) {
	members := make(map[string]value.Value)
	for _, entry := range fs.Fields() {
		validated, err := r.askField(ctx, entry)
		if err != nil {
			return value.Null(), err
		}
		members[entry.Name] = validated
	}
	return value.Object(members), nil
}

func (r *Runner) askField(ctx context.Context, entry field.NamedField) (value.Value, error) {
	for attempt := 0; attempt < r.attempts; attempt++ {
		answer, err := r.askOnce(ctx, entry)
		if err != nil {
			return value.Null(), err
		}

		result := entry.Field.Validate(answer)
		if result.OK() {
			return result.Value(), nil
		}
		for _, msg := range result.Messages() {
			if err := r.driver.Info(ctx, msg); err != nil {
				return value.Null(), err
			}
		}
	}
	return value.Null(), fmt.Errorf("%w: field %q", ErrAttemptsExhausted, entry.Name)
}

func (r *Runner) askOnce(ctx context.Context, entry field.NamedField) (value.Value, error) {
	message := promptMessage(entry)

	switch entry.Field.(type) {
	case *field.Bool:
		checked, err := r.driver.Confirm(ctx, ConfirmConfig{Message: message})
		if err != nil {
			return value.Null(), err
		}
		return value.Bool(checked), nil
	case *field.Integer, *field.Unsigned, *field.Double:
		answer, err := r.driver.Input(ctx, InputConfig{
			Message:   message,
			Validator: answerValidator(entry.Field, numericAnswer),
		})
		if err != nil {
			return value.Null(), err
		}
		return numericAnswer(answer), nil
	default:
		answer, err := r.driver.Input(ctx, InputConfig{
			Message:   message,
			Validator: answerValidator(entry.Field, value.String),
		})
		if err != nil {
			return value.Null(), err
		}
		return value.String(answer), nil
	}
}

// answerValidator adapts a field into the driver's validator seam so the
// terminal re-prompts on a bad answer before it is ever submitted. The
// retry loop in askField stays as the backstop for drivers that do not run
// validators.
func answerValidator(f field.Validatable, wrap func(string) value.Value) func(string) error {
	return func(answer string) error {
		result := f.Validate(wrap(answer))
		if result.OK() {
			return nil
		}
		return errors.New(result.Messages()[0])
	}
}

func promptMessage(entry field.NamedField) string {
	if label := strings.TrimSpace(entry.Field.Label()); label != "" {
		return label
	}
	return entry.Name
}

// numericAnswer keeps the payload shape faithful to what was typed: integer
// literals become int payloads, other numeric literals double payloads, and
// anything else stays a string so the field reports its own coercion
// message.
func numericAnswer(answer string) value.Value {
	trimmed := strings.TrimSpace(answer)
	if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return value.Int(i)
	}
	if d, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return value.Double(d)
	}
	return value.String(answer)
}
