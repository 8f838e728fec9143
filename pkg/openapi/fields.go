// Package openapi derives runtime fieldsets from OpenAPI request schemas,
// mapping schema types to field variants and schema constraints
// (minLength/maxLength/pattern/minimum/maximum) to validators.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-fieldval/pkg/field"
	"github.com/goliatone/go-fieldval/pkg/validators"
)

var (
	ErrOperationNotFound = errors.New("openapi fields: operation not found")
	ErrNoRequestSchema   = errors.New("openapi fields: operation has no JSON request schema")
	ErrNotObjectSchema   = errors.New("openapi fields: request schema is not an object")
)

// FieldsFromDocument loads an OpenAPI document, finds the operation by id,
// and builds a fieldset from its JSON request body schema.
func FieldsFromDocument(ctx context.Context, raw []byte, operationID string) (*field.Fieldset, error) {
	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi fields: load document: %w", err)
	}

	operation := findOperation(spec, operationID)
	if operation == nil {
		return nil, fmt.Errorf("%w: %q", ErrOperationNotFound, operationID)
	}

	schema := requestSchema(operation)
	if schema == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoRequestSchema, operationID)
	}
	return FieldsFromSchema(schema)
}

// FieldsFromSchema builds a fieldset from an object schema. Properties are
// emitted in sorted name order so the result is deterministic. Array,
// object, and untyped properties are skipped; this layer validates flat
// primitive fields only.
func FieldsFromSchema(schema *openapi3.Schema) (*field.Fieldset, error) {
	if schema == nil || firstSchemaType(schema.Type) != "object" {
		return nil, ErrNotObjectSchema
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	named := make([]field.NamedField, 0, len(names))
	for _, name := range names {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		built := buildField(name, ref.Value)
		if built == nil {
			continue
		}
		named = append(named, field.Named(name, built))
	}
	return field.NewFieldset(named...), nil
}

func findOperation(spec *openapi3.T, operationID string) *openapi3.Operation {
	if spec.Paths == nil {
		return nil
	}
	for _, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for _, operation := range item.Operations() {
			if operation != nil && operation.OperationID == operationID {
				return operation
			}
		}
	}
	return nil
}

func requestSchema(operation *openapi3.Operation) *openapi3.Schema {
	if operation.RequestBody == nil || operation.RequestBody.Value == nil {
		return nil
	}
	media := operation.RequestBody.Value.Content.Get("application/json")
	if media == nil || media.Schema == nil {
		return nil
	}
	return media.Schema.Value
}

func buildField(name string, schema *openapi3.Schema) field.Validatable {
	label := fieldLabel(name, schema)
	switch firstSchemaType(schema.Type) {
	case "string":
		return field.NewString(label, stringValidators(schema)...)
	case "integer":
		if unsignedSchema(schema) {
			return field.NewUnsigned(label, integerBounds[uint64](schema, func(f float64) uint64 { return uint64(f) })...)
		}
		return field.NewInteger(label, integerBounds[int64](schema, func(f float64) int64 { return int64(f) })...)
	case "number":
		return field.NewDouble(label, doubleBounds(schema)...)
	case "boolean":
		return field.NewBool(label)
	default:
		return nil
	}
}

func fieldLabel(name string, schema *openapi3.Schema) string {
	if title := strings.TrimSpace(schema.Title); title != "" {
		return title
	}
	return name
}

// unsignedSchema treats an inclusive minimum at or above zero as the signal
// for unsigned semantics, the same way a format hint would.
func unsignedSchema(schema *openapi3.Schema) bool {
	if schema.Format == "uint32" || schema.Format == "uint64" {
		return true
	}
	return schema.Min != nil && *schema.Min >= 0 && !schema.ExclusiveMin
}

func stringValidators(schema *openapi3.Schema) []field.Validator[string] {
	var out []field.Validator[string]
	if schema.MinLength > 0 {
		out = append(out, validators.MinLength(int(schema.MinLength)))
	}
	if schema.MaxLength != nil {
		out = append(out, validators.MaxLength(int(*schema.MaxLength)))
	}
	if schema.Pattern != "" {
		out = append(out, validators.Pattern(schema.Pattern, ""))
	}
	return out
}

// integerBounds maps inclusive schema bounds onto Min/Max; exclusive bounds
// shift by one since the domain is whole numbers.
func integerBounds[T interface{ int64 | uint64 }](schema *openapi3.Schema, convert func(float64) T) []field.Validator[T] {
	var out []field.Validator[T]
	if schema.Min != nil {
		min := convert(*schema.Min)
		if schema.ExclusiveMin {
			min++
		}
		out = append(out, validators.Min(min))
	}
	if schema.Max != nil {
		max := convert(*schema.Max)
		if schema.ExclusiveMax {
			max--
		}
		out = append(out, validators.Max(max))
	}
	return out
}

func doubleBounds(schema *openapi3.Schema) []field.Validator[float64] {
	var out []field.Validator[float64]
	if schema.Min != nil {
		if schema.ExclusiveMin {
			out = append(out, validators.GreaterThan(*schema.Min))
		} else {
			out = append(out, validators.Min(*schema.Min))
		}
	}
	if schema.Max != nil {
		if schema.ExclusiveMax {
			out = append(out, validators.LessThan(*schema.Max))
		} else {
			out = append(out, validators.Max(*schema.Max))
		}
	}
	return out
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
