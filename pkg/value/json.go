package value

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FromJSON decodes a JSON document into a Value. Numeric tokens keep their
// lexical shape: a token without a fraction or exponent becomes an int
// payload, everything else a double, so "4" and "4.0" remain
// distinguishable downstream.
func FromJSON(raw []byte) (Value, error) {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var node any
	if err := decoder.Decode(&node); err != nil {
		return Null(), fmt.Errorf("value: decode json: %w", err)
	}
	if decoder.More() {
		return Null(), fmt.Errorf("value: decode json: trailing data after document")
	}
	return fromDecoded(node)
}

func fromDecoded(node any) (Value, error) {
	switch typed := node.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(typed), nil
	case string:
		return String(typed), nil
	case json.Number:
		return fromNumber(typed)
	case []any:
		items := make([]Value, 0, len(typed))
		for _, raw := range typed {
			item, err := fromDecoded(raw)
			if err != nil {
				return Null(), err
			}
			items = append(items, item)
		}
		return Array(items...), nil
	case map[string]any:
		members := make(map[string]Value, len(typed))
		for name, raw := range typed {
			member, err := fromDecoded(raw)
			if err != nil {
				return Null(), err
			}
			members[name] = member
		}
		return Object(members), nil
	default:
		return Null(), fmt.Errorf("value: decode json: unsupported node %T", node)
	}
}

func fromNumber(num json.Number) (Value, error) {
	literal := num.String()
	if !strings.ContainsAny(literal, ".eE") {
		if i, err := num.Int64(); err == nil {
			return Int(i), nil
		}
	}
	d, err := num.Float64()
	if err != nil {
		return Null(), fmt.Errorf("value: decode json: number %q: %w", literal, err)
	}
	return Double(d), nil
}

// MarshalJSON encodes the value back into its JSON form. Int payloads emit
// integer literals; double payloads always carry a fraction or exponent so
// a whole-valued double survives a round trip as a double.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return []byte("null"), nil
	case KindBool:
		return json.Marshal(v.b)
	case KindInt:
		return json.Marshal(v.i)
	case KindDouble:
		return appendDouble(v.d)
	case KindString:
		return json.Marshal(v.s)
	case KindArray:
		if v.arr == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.arr)
	case KindObject:
		if v.obj == nil {
			return []byte("{}"), nil
		}
		return json.Marshal(v.obj)
	default:
		return nil, fmt.Errorf("value: marshal: unknown kind %d", v.kind)
	}
}

// appendDouble formats a double payload, forcing a decimal point onto whole
// values so the literal decodes back as double-shaped.
func appendDouble(d float64) ([]byte, error) {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return nil, fmt.Errorf("value: marshal: unsupported double %v", d)
	}
	literal := strconv.AppendFloat(nil, d, 'g', -1, 64)
	if !bytes.ContainsAny(literal, ".eE") {
		literal = append(literal, '.', '0')
	}
	return literal, nil
}
