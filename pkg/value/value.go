package value

// Kind identifies which payload a Value carries.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindDouble
	KindString
	KindArray
	KindObject
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is an immutable tagged union over the JSON-like payload kinds.
// The zero Value is null.
type Value struct {
	kind Kind
	b    bool
	i    int64
	d    float64
	s    string
	arr  []Value
	obj  map[string]Value
}

// Null returns the null value.
func Null() Value {
	return Value{}
}

// Bool wraps a boolean payload.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Int wraps an integer payload.
func Int(i int64) Value {
	return Value{kind: KindInt, i: i}
}

// Uint wraps an unsigned integer payload. Values above the int64 range are
// not representable and collapse to the double form to avoid silent
// truncation.
func Uint(u uint64) Value {
	if u > 1<<63-1 {
		return Double(float64(u))
	}
	return Int(int64(u))
}

// Double wraps a floating-point payload.
func Double(d float64) Value {
	return Value{kind: KindDouble, d: d}
}

// String wraps a string payload.
func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// Array wraps an ordered sequence of values.
func Array(items ...Value) Value {
	copied := append([]Value(nil), items...)
	return Value{kind: KindArray, arr: copied}
}

// Object wraps a set of named members. The map is copied so later mutation
// by the caller cannot reach the Value.
func Object(members map[string]Value) Value {
	copied := make(map[string]Value, len(members))
	for name, member := range members {
		copied[name] = member
	}
	return Value{kind: KindObject, obj: copied}
}

// Kind reports which payload the value carries.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the value is null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// AsString returns the string payload. Non-string values report false; no
// stringification of other kinds is attempted.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// AsInt returns the integer payload. Double-shaped numerics report false
// even when numerically whole.
func (v Value) AsInt() (int64, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.i, true
}

// AsUint returns the integer payload as unsigned. Double-shaped numerics and
// negative integers report false.
func (v Value) AsUint() (uint64, bool) {
	if v.kind != KindInt || v.i < 0 {
		return 0, false
	}
	return uint64(v.i), true
}

// AsDouble returns the numeric payload as a float, accepting either numeric
// shape. Integers widen; nothing else converts.
func (v Value) AsDouble() (float64, bool) {
	switch v.kind {
	case KindDouble:
		return v.d, true
	case KindInt:
		return float64(v.i), true
	default:
		return 0, false
	}
}

// AsBool returns the boolean payload.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// AsArray returns the array payload. The returned slice is a copy.
func (v Value) AsArray() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return append([]Value(nil), v.arr...), true
}

// AsObject returns the object payload. The returned map is a copy.
func (v Value) AsObject() (map[string]Value, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	copied := make(map[string]Value, len(v.obj))
	for name, member := range v.obj {
		copied[name] = member
	}
	return copied, true
}

// Member looks up an object member by name. Missing members and non-object
// receivers yield null, which lets absent checkbox inputs flow through as
// "unchecked" rather than erroring.
func (v Value) Member(name string) Value {
	if v.kind != KindObject {
		return Null()
	}
	member, ok := v.obj[name]
	if !ok {
		return Null()
	}
	return member
}

// Equal reports deep equality of two values, including numeric shape: an
// int-shaped 4 is not equal to a double-shaped 4.0.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindInt:
		return v.i == other.i
	case KindDouble:
		return v.d == other.d
	case KindString:
		return v.s == other.s
	case KindArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for idx := range v.arr {
			if !v.arr[idx].Equal(other.arr[idx]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.obj) != len(other.obj) {
			return false
		}
		for name, member := range v.obj {
			counterpart, ok := other.obj[name]
			if !ok || !member.Equal(counterpart) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
