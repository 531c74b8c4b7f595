package record

import (
	"strings"
	"testing"
)

// ============================================================
// Decoding
// ============================================================

func TestDecodeJSON_PreservesKeyOrder(t *testing.T) {
	v, err := DecodeJSON(strings.NewReader(`{"zulu": 1, "alpha": 2, "mike": 3}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	fields := v.Fields()
	want := []string{"zulu", "alpha", "mike"}
	if len(fields) != len(want) {
		t.Fatalf("expected %d fields, got %d", len(want), len(fields))
	}
	for i, name := range want {
		if fields[i].Name != name {
			t.Errorf("field %d: expected %q, got %q", i, name, fields[i].Name)
		}
	}
}

func TestDecodeJSON_DuplicateKeysKeepFirstPosition(t *testing.T) {
	v, err := DecodeJSON(strings.NewReader(`{"a": 1, "b": 2, "a": 3}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	fields := v.Fields()
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}
	if fields[0].Name != "a" || fields[0].Value.Text() != "3" {
		t.Errorf("expected a=3 first, got %s=%s", fields[0].Name, fields[0].Value.Text())
	}
	if fields[1].Name != "b" {
		t.Errorf("expected b second, got %s", fields[1].Name)
	}
}

func TestDecodeJSON_NumberKinds(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
		text  string
	}{
		{`1`, KindInt, "1"},
		{`-42`, KindInt, "-42"},
		{`3.14`, KindFloat, "3.14"},
		{`2.0`, KindFloat, "2.0"},
		{`1e3`, KindFloat, "1e3"},
		{`99999999999999999999`, KindFloat, "99999999999999999999"},
	}

	for _, tt := range tests {
		v, err := DecodeJSON(strings.NewReader(tt.input))
		if err != nil {
			t.Fatalf("decode %q: %v", tt.input, err)
		}
		if v.Kind() != tt.kind {
			t.Errorf("%q: expected kind %s, got %s", tt.input, tt.kind, v.Kind())
		}
		if v.Text() != tt.text {
			t.Errorf("%q: expected text %q, got %q", tt.input, tt.text, v.Text())
		}
	}
}

func TestDecodeJSON_Scalars(t *testing.T) {
	v, err := DecodeJSON(strings.NewReader(`{"s": "hi", "b": true, "n": null}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if got := v.Get("s").Str(); got != "hi" {
		t.Errorf("expected s=hi, got %q", got)
	}
	if !v.Get("b").Bool() {
		t.Error("expected b=true")
	}
	if !v.Get("n").IsNull() {
		t.Error("expected n to be null")
	}
}

func TestDecodeJSON_TrailingContent(t *testing.T) {
	if _, err := DecodeJSON(strings.NewReader(`{} {}`)); err == nil {
		t.Error("expected error for trailing content")
	}
}

func TestDecodeJSON_Malformed(t *testing.T) {
	for _, input := range []string{``, `{`, `{"a":}`, `[1,]`} {
		if _, err := DecodeJSON(strings.NewReader(input)); err == nil {
			t.Errorf("expected error for %q", input)
		}
	}
}

// ============================================================
// Encoding
// ============================================================

func TestCompact_Separators(t *testing.T) {
	v := Object(
		Field{Name: "z", Value: Int(2)},
		Field{Name: "list", Value: List(Int(1), Str("x"))},
	)

	want := `{"z": 2, "list": [1, "x"]}`
	if got := Compact(v); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestCompact_EmptyContainers(t *testing.T) {
	if got := Compact(Object()); got != "{}" {
		t.Errorf("expected {}, got %s", got)
	}
	if got := Compact(List()); got != "[]" {
		t.Errorf("expected [], got %s", got)
	}
}

func TestCompact_NoHTMLEscaping(t *testing.T) {
	got := Compact(Str("<a href=\"x\"> & héllo"))
	want := `"<a href=\"x\"> & héllo"`
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestEncodeIndent(t *testing.T) {
	v := List(
		Object(
			Field{Name: "name", Value: Str("Ada")},
			Field{Name: "age", Value: Str("36")},
		),
	)

	want := "[\n  {\n    \"name\": \"Ada\",\n    \"age\": \"36\"\n  }\n]\n"
	if got := string(EncodeIndent(v, "  ")); got != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	inputs := []string{
		`{"a": 1, "b": [true, null, "x"], "c": {"d": 2.5}}`,
		`[1, 2.0, "three", {"four": 4}]`,
		`{"nested": {"deep": [{"deeper": []}]}}`,
	}

	for _, input := range inputs {
		v, err := DecodeJSON(strings.NewReader(input))
		if err != nil {
			t.Fatalf("decode %q: %v", input, err)
		}
		if got := Compact(v); got != input {
			t.Errorf("round trip changed %q to %q", input, got)
		}
	}
}

func TestEncode_ControlCharacterEscaping(t *testing.T) {
	got := Compact(Str("line1\nline2\ttab\x01"))
	want := `"line1\nline2\ttab"`
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

// ============================================================
// Value model
// ============================================================

func TestValue_Text(t *testing.T) {
	tests := []struct {
		v    *Value
		want string
	}{
		{Null(), ""},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Int(7), "7"},
		{Float(3.14), "3.14"},
		{Str("plain"), "plain"},
		{Object(Field{Name: "z", Value: Int(2)}), `{"z": 2}`},
		{List(Int(1)), "[1]"},
	}

	for _, tt := range tests {
		if got := tt.v.Text(); got != tt.want {
			t.Errorf("Text(%s): expected %q, got %q", tt.v.Kind(), tt.want, got)
		}
	}
}

func TestValue_SetReplacesInPlace(t *testing.T) {
	obj := Object()
	obj.Set("a", Int(1))
	obj.Set("b", Int(2))
	obj.Set("a", Int(3))

	fields := obj.Fields()
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}
	if fields[0].Name != "a" || fields[0].Value.Text() != "3" {
		t.Errorf("expected a=3 at position 0, got %s=%s", fields[0].Name, fields[0].Value.Text())
	}
}

func TestValue_GetOnNonObject(t *testing.T) {
	if Int(1).Get("a") != nil {
		t.Error("Get on non-object should return nil")
	}
	if Object().Get("missing") != nil {
		t.Error("Get of absent field should return nil")
	}
}
