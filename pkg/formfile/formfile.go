// Package formfile loads declarative form documents (YAML or JSON) and
// builds runtime fieldsets from them. A document names its fields, their
// primitive types, and the validation rules attached to each; rule kinds
// follow the min/max/minLength/maxLength/pattern vocabulary.
package formfile

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-fieldval/pkg/field"
	"github.com/goliatone/go-fieldval/pkg/validators"
)

// Field type names accepted in form documents.
const (
	TypeString   = "string"
	TypeInteger  = "integer"
	TypeUnsigned = "unsigned"
	TypeNumber   = "number"
	TypeBoolean  = "boolean"
)

// Rule kind names accepted in form documents.
const (
	RuleMin       = "min"
	RuleMax       = "max"
	RuleMinLength = "minLength"
	RuleMaxLength = "maxLength"
	RulePattern   = "pattern"
	RuleNonEmpty  = "nonEmpty"
	RulePositive  = "positive"
	RulePlainText = "plainText"
)

var (
	ErrFieldNameMissing = errors.New("formfile: field name is required")
	ErrUnknownFieldType = errors.New("formfile: unknown field type")
	ErrUnknownRuleKind  = errors.New("formfile: unknown rule kind")
	ErrRuleNotSupported = errors.New("formfile: rule not supported for field type")
	ErrNoFields         = errors.New("formfile: document declares no fields")
)

// Rule is one declarative validation constraint.
type Rule struct {
	Kind    string   `yaml:"kind" json:"kind"`
	Value   *float64 `yaml:"value,omitempty" json:"value,omitempty"`
	Min     *float64 `yaml:"min,omitempty" json:"min,omitempty"`
	Max     *float64 `yaml:"max,omitempty" json:"max,omitempty"`
	Pattern string   `yaml:"pattern,omitempty" json:"pattern,omitempty"`
	Message string   `yaml:"message,omitempty" json:"message,omitempty"`
}

// Field declares one input slot in the form.
type Field struct {
	Name  string `yaml:"name" json:"name"`
	Label string `yaml:"label,omitempty" json:"label,omitempty"`
	Type  string `yaml:"type" json:"type"`
	Rules []Rule `yaml:"rules,omitempty" json:"rules,omitempty"`
}

// Form is a parsed form document.
type Form struct {
	Title  string  `yaml:"form,omitempty" json:"form,omitempty"`
	Fields []Field `yaml:"fields" json:"fields"`
}

// Parse decodes a YAML or JSON form document. JSON parses because YAML is a
// superset of it, matching how the schema loaders in this family of tools
// accept either encoding.
func Parse(raw []byte) (*Form, error) {
	var form Form
	if err := yaml.Unmarshal(raw, &form); err != nil {
		return nil, fmt.Errorf("formfile: parse document: %w", err)
	}
	if len(form.Fields) == 0 {
		return nil, ErrNoFields
	}
	return &form, nil
}

// Load reads a form document from disk and parses it.
func Load(path string) (*Form, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("formfile: read %s: %w", path, err)
	}
	return Parse(raw)
}

// Fieldset builds the runtime fieldset declared by the document. Unknown
// types and rules, and rules attached to a type they cannot check, are
// declaration errors.
func (f *Form) Fieldset() (*field.Fieldset, error) {
	named := make([]field.NamedField, 0, len(f.Fields))
	for _, declared := range f.Fields {
		name := strings.TrimSpace(declared.Name)
		if name == "" {
			return nil, ErrFieldNameMissing
		}
		built, err := buildField(declared)
		if err != nil {
			return nil, fmt.Errorf("%w (field %q)", err, name)
		}
		named = append(named, field.Named(name, built))
	}
	return field.NewFieldset(named...), nil
}

func buildField(declared Field) (field.Validatable, error) {
	switch strings.TrimSpace(declared.Type) {
	case TypeString:
		rules, err := stringRules(declared.Rules)
		if err != nil {
			return nil, err
		}
		return field.NewString(declared.Label, rules...), nil
	case TypeInteger:
		rules, err := integerRules(declared.Rules)
		if err != nil {
			return nil, err
		}
		return field.NewInteger(declared.Label, rules...), nil
	case TypeUnsigned:
		rules, err := unsignedRules(declared.Rules)
		if err != nil {
			return nil, err
		}
		return field.NewUnsigned(declared.Label, rules...), nil
	case TypeNumber:
		rules, err := numberRules(declared.Rules)
		if err != nil {
			return nil, err
		}
		return field.NewDouble(declared.Label, rules...), nil
	case TypeBoolean:
		if len(declared.Rules) > 0 {
			return nil, fmt.Errorf("%w: %s rules on boolean", ErrRuleNotSupported, declared.Rules[0].Kind)
		}
		return field.NewBool(declared.Label), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFieldType, declared.Type)
	}
}

func stringRules(rules []Rule) ([]field.Validator[string], error) {
	out := make([]field.Validator[string], 0, len(rules))
	for _, rule := range rules {
		switch rule.Kind {
		case RuleNonEmpty:
			out = append(out, validators.NonEmpty())
		case RuleMinLength:
			out = append(out, validators.MinLength(int(ruleValue(rule))))
		case RuleMaxLength:
			out = append(out, validators.MaxLength(int(ruleValue(rule))))
		case RulePattern:
			out = append(out, validators.Pattern(rule.Pattern, rule.Message))
		case RulePlainText:
			out = append(out, validators.PlainText())
		case RuleMin, RuleMax, RulePositive:
			return nil, fmt.Errorf("%w: %s on string", ErrRuleNotSupported, rule.Kind)
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownRuleKind, rule.Kind)
		}
	}
	return out, nil
}

func integerRules(rules []Rule) ([]field.Validator[int64], error) {
	out := make([]field.Validator[int64], 0, len(rules))
	for _, rule := range rules {
		switch rule.Kind {
		case RuleMin:
			out = append(out, validators.Min(int64(ruleValue(rule))))
		case RuleMax:
			out = append(out, validators.Max(int64(ruleValue(rule))))
		case RulePositive:
			out = append(out, validators.Positive())
		case RuleMinLength, RuleMaxLength, RulePattern, RuleNonEmpty, RulePlainText:
			return nil, fmt.Errorf("%w: %s on integer", ErrRuleNotSupported, rule.Kind)
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownRuleKind, rule.Kind)
		}
	}
	return out, nil
}

func unsignedRules(rules []Rule) ([]field.Validator[uint64], error) {
	out := make([]field.Validator[uint64], 0, len(rules))
	for _, rule := range rules {
		switch rule.Kind {
		case RuleMin:
			out = append(out, validators.Min(uint64(ruleValue(rule))))
		case RuleMax:
			out = append(out, validators.Max(uint64(ruleValue(rule))))
		case RuleMinLength, RuleMaxLength, RulePattern, RuleNonEmpty, RulePlainText, RulePositive:
			return nil, fmt.Errorf("%w: %s on unsigned", ErrRuleNotSupported, rule.Kind)
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownRuleKind, rule.Kind)
		}
	}
	return out, nil
}

func numberRules(rules []Rule) ([]field.Validator[float64], error) {
	out := make([]field.Validator[float64], 0, len(rules))
	for _, rule := range rules {
		switch rule.Kind {
		case RuleMin:
			out = append(out, validators.Min(ruleValue(rule)))
		case RuleMax:
			out = append(out, validators.Max(ruleValue(rule)))
		case RuleMinLength, RuleMaxLength, RulePattern, RuleNonEmpty, RulePlainText, RulePositive:
			return nil, fmt.Errorf("%w: %s on number", ErrRuleNotSupported, rule.Kind)
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownRuleKind, rule.Kind)
		}
	}
	return out, nil
}

// ruleValue reads the rule threshold from whichever key the document used.
func ruleValue(rule Rule) float64 {
	if rule.Value != nil {
		return *rule.Value
	}
	if rule.Min != nil {
		return *rule.Min
	}
	if rule.Max != nil {
		return *rule.Max
	}
	return 0
}
