// =============================================================================
// datatool - JSON Encoding
// =============================================================================
//
// Canonical serialization of the Value model back to JSON text. Two forms
// are produced from the same writer:
//
//   - Compact: single line, ", " and ": " separators. Used for nested values
//     stored in flat CSV cells.
//   - Indented: one field per line with a fixed indent. Used for converted
//     output documents.
//
// Output is unicode-preserving: strings are escaped minimally (quotes,
// backslashes, control characters) and never HTML-escaped.
//
// =============================================================================

package record

import (
	"bytes"
	"fmt"
	"strconv"
)

// Compact returns the single-line canonical serialization of v.
func Compact(v *Value) string {
	var buf bytes.Buffer
	writeValue(&buf, v, "", 0)
	return buf.String()
}

// EncodeIndent returns the serialization of v indented with the given unit,
// followed by a trailing newline.
func EncodeIndent(v *Value, indent string) []byte {
	var buf bytes.Buffer
	writeValue(&buf, v, indent, 0)
	buf.WriteByte('\n')
	return buf.Bytes()
}

// writeValue appends the serialization of v to buf. An empty indent selects
// the compact form.
func writeValue(buf *bytes.Buffer, v *Value, indent string, level int) {
	if v == nil {
		buf.WriteString("null")
		return
	}

	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.boolVal))
	case KindInt:
		buf.WriteString(v.numberText())
	case KindFloat:
		buf.WriteString(v.numberText())
	case KindStr:
		writeString(buf, v.strVal)
	case KindList:
		writeList(buf, v, indent, level)
	case KindObject:
		writeObject(buf, v, indent, level)
	}
}

// numberText returns the literal to emit for a numeric value, preferring the
// source text captured at decode time.
func (v *Value) numberText() string {
	if v.numText != "" {
		return v.numText
	}
	if v.kind == KindInt {
		return strconv.FormatInt(v.intVal, 10)
	}
	s := strconv.FormatFloat(v.floatVal, 'g', -1, 64)
	// 'g' omits the decimal point for integral floats; keep the float-ness
	// visible so the value re-reads as a float.
	if !bytes.ContainsAny([]byte(s), ".eE") {
		s += ".0"
	}
	return s
}

func writeList(buf *bytes.Buffer, v *Value, indent string, level int) {
	if len(v.listVal) == 0 {
		buf.WriteString("[]")
		return
	}

	buf.WriteByte('[')
	for i, elem := range v.listVal {
		if indent == "" {
			if i > 0 {
				buf.WriteString(", ")
			}
		} else {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
			writeIndent(buf, indent, level+1)
		}
		writeValue(buf, elem, indent, level+1)
	}
	if indent != "" {
		buf.WriteByte('\n')
		writeIndent(buf, indent, level)
	}
	buf.WriteByte(']')
}

func writeObject(buf *bytes.Buffer, v *Value, indent string, level int) {
	if len(v.fields) == 0 {
		buf.WriteString("{}")
		return
	}

	buf.WriteByte('{')
	for i, f := range v.fields {
		if indent == "" {
			if i > 0 {
				buf.WriteString(", ")
			}
		} else {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
			writeIndent(buf, indent, level+1)
		}
		writeString(buf, f.Name)
		buf.WriteString(": ")
		writeValue(buf, f.Value, indent, level+1)
	}
	if indent != "" {
		buf.WriteByte('\n')
		writeIndent(buf, indent, level)
	}
	buf.WriteByte('}')
}

func writeIndent(buf *bytes.Buffer, indent string, level int) {
	for i := 0; i < level; i++ {
		buf.WriteString(indent)
	}
}

// writeString appends s as a quoted JSON string with minimal escaping.
func writeString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(buf, `\u%04x`, r)
			} else {
				// Invalid UTF-8 input bytes surface as the replacement rune,
				// same as encoding/json.
				buf.WriteRune(r)
			}
		}
	}
	buf.WriteByte('"')
}
