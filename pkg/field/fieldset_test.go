package field_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-fieldval/pkg/field"
	"github.com/goliatone/go-fieldval/pkg/value"
)

func signupFieldset() *field.Fieldset {
	return field.NewFieldset(
		field.Named("username", field.NewString("Username")),
		field.Named("age", field.NewUnsigned("Age")),
		field.Named("newsletter", field.NewBool("Newsletter")),
	)
}

func TestFieldsetValidatesEachMember(t *testing.T) {
	form := value.Object(map[string]value.Value{
		"username": value.String("ada"),
		"age":      value.Int(36),
		// newsletter intentionally absent
	})

	results := signupFieldset().Validate(form)
	if !results.OK() {
		t.Fatalf("expected success, got %v", results.Messages())
	}

	values := results.Values()
	if !values["username"].Equal(value.String("ada")) {
		t.Fatal("username should survive validation unchanged")
	}
	if !values["newsletter"].Equal(value.Bool(false)) {
		t.Fatal("absent checkbox should validate to false")
	}
}

func TestFieldsetCollectsFailuresByName(t *testing.T) {
	form := value.Object(map[string]value.Value{
		"username": value.Int(1),
		"age":      value.Int(-3),
	})

	results := signupFieldset().Validate(form)
	if results.OK() {
		t.Fatal("expected failures")
	}

	want := map[string][]string{
		"username": {"Please enter valid text."},
		"age":      {"Please enter a positive whole number."},
	}
	if diff := cmp.Diff(want, results.Messages()); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestFieldsetPreservesDeclarationOrder(t *testing.T) {
	results := signupFieldset().Validate(value.Object(nil))

	wantOrder := []string{"username", "age", "newsletter"}
	gotOrder := make([]string, 0, len(results))
	for _, res := range results {
		gotOrder = append(gotOrder, res.Name)
	}
	if diff := cmp.Diff(wantOrder, gotOrder); diff != "" {
		t.Fatalf("result order mismatch (-want +got):\n%s", diff)
	}
}

func TestNewFieldsetDropsInvalidEntries(t *testing.T) {
	fs := field.NewFieldset(
		field.Named("", field.NewString("unnamed")),
		field.Named("ok", nil),
		field.Named("kept", field.NewString("Kept")),
	)

	fields := fs.Fields()
	if len(fields) != 1 || fields[0].Name != "kept" {
		t.Fatalf("expected only the valid entry, got %d entries", len(fields))
	}
}

func TestResultsValuesOmitFailedFields(t *testing.T) {
	form := value.Object(map[string]value.Value{
		"username": value.Bool(true),
		"age":      value.Int(5),
	})

	results := signupFieldset().Validate(form)
	values := results.Values()
	if _, present := values["username"]; present {
		t.Fatal("failed field must not contribute a value")
	}
	if !values["age"].Equal(value.Int(5)) {
		t.Fatal("passing field should contribute its value")
	}
}
