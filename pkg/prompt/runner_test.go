package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-fieldval/pkg/field"
	"github.com/goliatone/go-fieldval/pkg/validators"
	"github.com/goliatone/go-fieldval/pkg/value"
)

type stubDriver struct {
	inputs     []string
	confirms   []bool
	info       []string
	inputCfgs  []InputConfig
	inputPos   int
	confirmPos int
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.inputCfgs = append(s.inputCfgs, cfg)
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirms) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirms[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.info = append(s.info, msg)
	return nil
}

func TestRunCollectsValidatedValues(t *testing.T) {
	driver := &stubDriver{
		inputs:   []string{"ada", "36", "99.5"},
		confirms: []bool{true},
	}
	runner := NewRunner(WithDriver(driver))

	fs := field.NewFieldset(
		field.Named("username", field.NewString("Username", validators.NonEmpty())),
		field.Named("age", field.NewUnsigned("Age")),
		field.Named("score", field.NewDouble("Score")),
		field.Named("newsletter", field.NewBool("Newsletter")),
	)

	result, err := runner.Run(context.Background(), fs)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := value.Object(map[string]value.Value{
		"username":   value.String("ada"),
		"age":        value.Int(36),
		"score":      value.Double(99.5),
		"newsletter": value.Bool(true),
	})
	if !result.Equal(want) {
		t.Fatalf("unexpected result object")
	}
}

func TestRunRetriesInvalidAnswers(t *testing.T) {
	driver := &stubDriver{inputs: []string{"4.5", "7"}}
	runner := NewRunner(WithDriver(driver))

	fs := field.NewFieldset(field.Named("count", field.NewInteger("Count")))

	result, err := runner.Run(context.Background(), fs)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !result.Member("count").Equal(value.Int(7)) {
		t.Fatal("second answer should win after the first fails coercion")
	}
	if diff := cmp.Diff([]string{"Please enter a whole number."}, driver.info); diff != "" {
		t.Fatalf("failure messages mismatch (-want +got):\n%s", diff)
	}
}

func TestRunExhaustsAttempts(t *testing.T) {
	driver := &stubDriver{inputs: []string{"no", "nope", "never"}}
	runner := NewRunner(WithDriver(driver), WithAttempts(3))

	fs := field.NewFieldset(field.Named("count", field.NewInteger("Count")))

	_, err := runner.Run(context.Background(), fs)
	if !errors.Is(err, ErrAttemptsExhausted) {
		t.Fatalf("err = %v, want ErrAttemptsExhausted", err)
	}
	if driver.inputPos != 3 {
		t.Fatalf("asked %d times, want 3", driver.inputPos)
	}
}

func TestAnswersValidateThroughTheDriverSeam(t *testing.T) {
	driver := &stubDriver{inputs: []string{"ada", "7"}}
	runner := NewRunner(WithDriver(driver))

	fs := field.NewFieldset(
		field.Named("username", field.NewString("Username", validators.NonEmpty())),
		field.Named("count", field.NewInteger("Count")),
	)

	if _, err := runner.Run(context.Background(), fs); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(driver.inputCfgs) != 2 {
		t.Fatalf("recorded %d input configs, want 2", len(driver.inputCfgs))
	}
	for idx, cfg := range driver.inputCfgs {
		if cfg.Validator == nil {
			t.Fatalf("input %d carries no validator", idx)
		}
	}

	if err := driver.inputCfgs[0].Validator("   "); err == nil || err.Error() != "Please fill in this field." {
		t.Fatalf("string validator err = %v, want the rule message", err)
	}
	if err := driver.inputCfgs[0].Validator("ada"); err != nil {
		t.Fatalf("string validator rejected a valid answer: %v", err)
	}
	if err := driver.inputCfgs[1].Validator("4.5"); err == nil || err.Error() != "Please enter a whole number." {
		t.Fatalf("numeric validator err = %v, want the coercion message", err)
	}
	if err := driver.inputCfgs[1].Validator("7"); err != nil {
		t.Fatalf("numeric validator rejected a valid answer: %v", err)
	}
}

func TestNumericAnswerShapes(t *testing.T) {
	tests := []struct {
		answer string
		want   value.Value
	}{
		{answer: "7", want: value.Int(7)},
		{answer: " -3 ", want: value.Int(-3)},
		{answer: "4.5", want: value.Double(4.5)},
		{answer: "abc", want: value.String("abc")},
	}
	for _, tc := range tests {
		if got := numericAnswer(tc.answer); !got.Equal(tc.want) {
			t.Fatalf("numericAnswer(%q) kind = %v, want %v", tc.answer, got.Kind(), tc.want.Kind())
		}
	}
}
