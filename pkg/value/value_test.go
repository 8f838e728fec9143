package value_test

import (
	"testing"

	"github.com/goliatone/go-fieldval/pkg/value"
)

func TestAccessorsRespectPayloadShape(t *testing.T) {
	tests := []struct {
		name    string
		input   value.Value
		check   func(value.Value) bool
		satisfy bool
	}{
		{
			name:    "string payload as string",
			input:   value.String("hello"),
			check:   func(v value.Value) bool { s, ok := v.AsString(); return ok && s == "hello" },
			satisfy: true,
		},
		{
			name:    "bool payload is not string",
			input:   value.Bool(true),
			check:   func(v value.Value) bool { _, ok := v.AsString(); return ok },
			satisfy: false,
		},
		{
			name:    "int payload as int",
			input:   value.Int(-3),
			check:   func(v value.Value) bool { i, ok := v.AsInt(); return ok && i == -3 },
			satisfy: true,
		},
		{
			name:    "whole double payload is not int",
			input:   value.Double(4.0),
			check:   func(v value.Value) bool { _, ok := v.AsInt(); return ok },
			satisfy: false,
		},
		{
			name:    "negative int payload is not uint",
			input:   value.Int(-3),
			check:   func(v value.Value) bool { _, ok := v.AsUint(); return ok },
			satisfy: false,
		},
		{
			name:    "non-negative int payload as uint",
			input:   value.Int(7),
			check:   func(v value.Value) bool { u, ok := v.AsUint(); return ok && u == 7 },
			satisfy: true,
		},
		{
			name:    "int payload widens to double",
			input:   value.Int(7),
			check:   func(v value.Value) bool { d, ok := v.AsDouble(); return ok && d == 7.0 },
			satisfy: true,
		},
		{
			name:    "string payload is not double",
			input:   value.String("7"),
			check:   func(v value.Value) bool { _, ok := v.AsDouble(); return ok },
			satisfy: false,
		},
		{
			name:    "null is not bool",
			input:   value.Null(),
			check:   func(v value.Value) bool { _, ok := v.AsBool(); return ok },
			satisfy: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.check(tc.input); got != tc.satisfy {
				t.Fatalf("check = %v, want %v", got, tc.satisfy)
			}
		})
	}
}

func TestMemberLookup(t *testing.T) {
	obj := value.Object(map[string]value.Value{
		"name": value.String("ada"),
	})

	if got := obj.Member("name"); !got.Equal(value.String("ada")) {
		t.Fatalf("Member(name) = %v, want string ada", got.Kind())
	}
	if got := obj.Member("missing"); !got.IsNull() {
		t.Fatalf("missing member should be null, got kind %v", got.Kind())
	}
	if got := value.String("not an object").Member("name"); !got.IsNull() {
		t.Fatalf("member of non-object should be null, got kind %v", got.Kind())
	}
}

func TestEqualDistinguishesNumericShape(t *testing.T) {
	if value.Int(4).Equal(value.Double(4.0)) {
		t.Fatal("int 4 must not equal double 4.0")
	}
	if !value.Int(4).Equal(value.Int(4)) {
		t.Fatal("int 4 must equal int 4")
	}
	if !value.Array(value.Int(1), value.String("a")).Equal(value.Array(value.Int(1), value.String("a"))) {
		t.Fatal("equal arrays must compare equal")
	}
}

func TestObjectCopiesMembers(t *testing.T) {
	members := map[string]value.Value{"a": value.Int(1)}
	obj := value.Object(members)
	members["a"] = value.Int(2)

	if got := obj.Member("a"); !got.Equal(value.Int(1)) {
		t.Fatal("mutating the source map must not reach the value")
	}
}
