// =============================================================================
// datatool - JSON Decoding
// =============================================================================
//
// Token-level JSON decoding into the Value model. The standard library's
// map-based unmarshalling discards object key order, which the rest of the
// tool depends on, so objects are assembled field by field from the token
// stream instead.
//
// =============================================================================

package record

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DecodeJSON decodes a single JSON document from r into a Value, preserving
// object key order. Trailing non-whitespace content after the top-level
// value is an error. Duplicate object keys keep the last value at the first
// key's position.
func DecodeJSON(r io.Reader) (*Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("unexpected end of document")
		}
		return nil, err
	}

	// The document must contain exactly one top-level value.
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after top-level value")
	}

	return v, nil
}

// decodeValue decodes the next complete value from the token stream.
func decodeValue(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeFromToken(dec, tok)
}

// decodeFromToken decodes a value whose first token has already been read.
func decodeFromToken(dec *json.Decoder, tok json.Token) (*Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeList(dec)
		default:
			// ')' / ']' here would be a decoder bug; Token already rejects
			// mismatched delimiters.
			return nil, fmt.Errorf("unexpected delimiter %q", t.String())
		}
	case string:
		return Str(t), nil
	case bool:
		return Bool(t), nil
	case json.Number:
		return decodeNumber(t), nil
	case nil:
		return Null(), nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

// decodeObject decodes the fields of an object whose '{' has been consumed.
func decodeObject(dec *json.Decoder) (*Value, error) {
	obj := Object()

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is not a string: %v", keyTok)
		}

		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		obj.Set(key, val)
	}

	// Consume the closing '}'.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

// decodeList decodes the elements of an array whose '[' has been consumed.
func decodeList(dec *json.Decoder) (*Value, error) {
	list := List()

	for dec.More() {
		elem, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		list.listVal = append(list.listVal, elem)
	}

	// Consume the closing ']'.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return list, nil
}

// decodeNumber classifies a JSON number literal as int or float. Integer
// literals too large for int64 fall back to float, matching the usual
// dynamic-language reading of JSON numbers.
func decodeNumber(n json.Number) *Value {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			v := Int(i)
			v.numText = s
			return v
		}
	}
	f, _ := strconv.ParseFloat(s, 64)
	v := Float(f)
	v.numText = s
	return v
}
