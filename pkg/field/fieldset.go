package field

import (
	"strings"

	"github.com/goliatone/go-fieldval/pkg/value"
)

// NamedField binds a field to the submission key it reads its value from.
type NamedField struct {
	Name  string
	Field Validatable
}

// Named is a convenience constructor for NamedField.
func Named(name string, field Validatable) NamedField {
	return NamedField{Name: name, Field: field}
}

// Fieldset is an ordered collection of named fields validated against one
// submitted object. Fields are fixed at construction; declaration order is
// result-reporting order.
type Fieldset struct {
	fields []NamedField
}

// NewFieldset builds a fieldset from the given fields, skipping entries with
// an empty name or nil field.
func NewFieldset(fields ...NamedField) *Fieldset {
	kept := make([]NamedField, 0, len(fields))
	for _, entry := range fields {
		if strings.TrimSpace(entry.Name) == "" || entry.Field == nil {
			continue
		}
		kept = append(kept, entry)
	}
	return &Fieldset{fields: kept}
}

// Fields returns the named fields in declaration order.
func (fs *Fieldset) Fields() []NamedField {
	return append([]NamedField(nil), fs.fields...)
}

// Validate runs every field against its member of the submitted object.
// Missing members validate as null, which lets boolean fields apply their
// unchecked-checkbox semantics and makes every other variant report its
// coercion message.
func (fs *Fieldset) Validate(form value.Value) Results {
	results := make(Results, 0, len(fs.fields))
	for _, entry := range fs.fields {
		results = append(results, FieldResult{
			Name:   entry.Name,
			Label:  entry.Field.Label(),
			Result: entry.Field.Validate(form.Member(entry.Name)),
		})
	}
	return results
}

// FieldResult pairs one field's outcome with its submission key and label.
type FieldResult struct {
	Name   string
	Label  string
	Result Result[value.Value]
}

// Results collects per-field outcomes in fieldset declaration order.
type Results []FieldResult

// OK reports whether every field validated successfully.
func (rs Results) OK() bool {
	for _, res := range rs {
		if !res.Result.OK() {
			return false
		}
	}
	return true
}

// Messages returns failure messages keyed by field name, trimmed and with
// empty messages dropped. Fields that passed are absent.
func (rs Results) Messages() map[string][]string {
	out := make(map[string][]string)
	for _, res := range rs {
		for _, msg := range res.Result.Messages() {
			trimmed := strings.TrimSpace(msg)
			if trimmed == "" {
				continue
			}
			out[res.Name] = append(out[res.Name], trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Values returns the validated values keyed by field name. Only fields that
// passed contribute; call OK first when completeness matters.
func (rs Results) Values() map[string]value.Value {
	out := make(map[string]value.Value, len(rs))
	for _, res := range rs {
		if res.Result.OK() {
			out[res.Name] = res.Result.Value()
		}
	}
	return out
}
