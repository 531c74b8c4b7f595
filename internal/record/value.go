// =============================================================================
// datatool - Record Value Model
// =============================================================================
//
// This package defines the dynamic value model shared by every other module.
// A field in a record may hold a scalar (null, bool, int, float, string), a
// list, or a nested object, so Value is a tagged union rather than a Go
// interface soup. Objects keep their fields in document order, which matters
// for JSON round-trips and for schema iteration order during validation.
//
// =============================================================================

package record

import "strconv"

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindStr
	KindList
	KindObject
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindStr:
		return "str"
	case KindList:
		return "list"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a tagged union. Only the field matching kind is meaningful.
type Value struct {
	kind Kind

	boolVal  bool
	intVal   int64
	floatVal float64
	strVal   string

	// numText preserves the source literal for numbers decoded from JSON,
	// so re-encoding emits the same text the document contained.
	numText string

	listVal []*Value
	fields  []Field
}

// Field is a single name/value pair in an object.
type Field struct {
	Name  string
	Value *Value
}

// Record is an object-shaped Value. The alias exists for readability in
// signatures that only make sense for records.
type Record = Value

// Dataset is an ordered sequence of values, usually records. Non-record
// elements are representable; consumers that need record shape reject them.
type Dataset []*Value

// =============================================================================
// CONSTRUCTORS
// =============================================================================

// Null creates a null value.
func Null() *Value {
	return &Value{kind: KindNull}
}

// Bool creates a boolean value.
func Bool(v bool) *Value {
	return &Value{kind: KindBool, boolVal: v}
}

// Int creates an integer value.
func Int(v int64) *Value {
	return &Value{kind: KindInt, intVal: v}
}

// Float creates a floating-point value.
func Float(v float64) *Value {
	return &Value{kind: KindFloat, floatVal: v}
}

// Str creates a string value.
func Str(v string) *Value {
	return &Value{kind: KindStr, strVal: v}
}

// List creates a list value.
func List(values ...*Value) *Value {
	return &Value{kind: KindList, listVal: values}
}

// Object creates an object value from name/value pairs.
func Object(fields ...Field) *Value {
	return &Value{kind: KindObject, fields: fields}
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Kind returns the variant tag.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// IsNull reports whether the value is null (or nil).
func (v *Value) IsNull() bool {
	return v == nil || v.kind == KindNull
}

// IsObject reports whether the value is record-shaped.
func (v *Value) IsObject() bool {
	return v != nil && v.kind == KindObject
}

// IsScalar reports whether the value is null, bool, int, float, or string.
func (v *Value) IsScalar() bool {
	return v != nil && v.kind != KindList && v.kind != KindObject
}

// Bool returns the boolean value, or false for other kinds.
func (v *Value) Bool() bool {
	if v == nil || v.kind != KindBool {
		return false
	}
	return v.boolVal
}

// Str returns the string value, or "" for other kinds.
func (v *Value) Str() string {
	if v == nil || v.kind != KindStr {
		return ""
	}
	return v.strVal
}

// Fields returns the object fields in document order, or nil for other kinds.
func (v *Value) Fields() []Field {
	if v == nil {
		return nil
	}
	return v.fields
}

// Items returns the list elements, or nil for other kinds.
func (v *Value) Items() []*Value {
	if v == nil {
		return nil
	}
	return v.listVal
}

// Len returns the number of fields or elements of a container, 0 otherwise.
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	switch v.kind {
	case KindList:
		return len(v.listVal)
	case KindObject:
		return len(v.fields)
	default:
		return 0
	}
}

// Get returns the value of the named field, or nil if the field is absent
// or the value is not an object.
func (v *Value) Get(name string) *Value {
	if v == nil || v.kind != KindObject {
		return nil
	}
	for _, f := range v.fields {
		if f.Name == name {
			return f.Value
		}
	}
	return nil
}

// Set sets a field on an object. An existing field keeps its position and
// has its value replaced; a new field is appended.
func (v *Value) Set(name string, val *Value) {
	if v.kind != KindObject {
		panic("record: Set on non-object value")
	}
	for i := range v.fields {
		if v.fields[i].Name == name {
			v.fields[i].Value = val
			return
		}
	}
	v.fields = append(v.fields, Field{Name: name, Value: val})
}

// Text returns the default textual form of a scalar: null becomes empty
// text, booleans and numbers are stringified, strings pass through. For
// containers it returns their compact hierarchical re-serialization, so a
// Text of any value is always a faithful flat-cell representation.
func (v *Value) Text() string {
	if v == nil {
		return ""
	}
	switch v.kind {
	case KindNull:
		return ""
	case KindBool:
		return strconv.FormatBool(v.boolVal)
	case KindInt:
		if v.numText != "" {
			return v.numText
		}
		return strconv.FormatInt(v.intVal, 10)
	case KindFloat:
		if v.numText != "" {
			return v.numText
		}
		return strconv.FormatFloat(v.floatVal, 'g', -1, 64)
	case KindStr:
		return v.strVal
	default:
		return Compact(v)
	}
}
