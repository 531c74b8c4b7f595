// =============================================================================
// datatool - Schema Loading
// =============================================================================
//
// A schema is a flat mapping from field name to a type tag. Canonical tags
// are "str", "int", and "float"; common aliases are folded during load the
// same way data-type names are normalized elsewhere ("text" -> str,
// "integer" -> int, "real" -> float). Tags that normalize to nothing are
// kept verbatim so the validator can report them per record.
//
// Schema documents are JSON objects by default; files with a .yaml or .yml
// extension are parsed as YAML mappings instead. Either way the field order
// of the document is preserved, because validation errors are emitted in
// schema order.
//
// =============================================================================

package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/datatool-dev/datatool/internal/record"
)

// Canonical type tags.
const (
	TypeStr   = "str"
	TypeInt   = "int"
	TypeFloat = "float"
)

// Field is one field->type pair, in document order.
type Field struct {
	Name string
	Type string
}

// Schema is an ordered field->type mapping.
type Schema struct {
	fields []Field
}

// Fields returns the schema pairs in document order.
func (s *Schema) Fields() []Field {
	return s.fields
}

// Len returns the number of schema pairs.
func (s *Schema) Len() int {
	return len(s.fields)
}

// Load reads a schema document from path. The document root must be a
// mapping of field name to type tag; anything else is a SchemaError.
func Load(path string) (*Schema, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return loadYAML(path)
	default:
		return loadJSON(path)
	}
}

// loadJSON loads a schema from a JSON object.
func loadJSON(path string) (*Schema, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	root, err := record.DecodeJSON(file)
	if err != nil {
		return nil, &record.ParseError{Path: path, Err: err}
	}
	if !root.IsObject() {
		return nil, &record.SchemaError{
			Msg: "schema must be a JSON object mapping field -> type",
		}
	}

	s := &Schema{}
	for _, f := range root.Fields() {
		s.fields = append(s.fields, Field{
			Name: f.Name,
			Type: normalizeTypeTag(f.Value.Text()),
		})
	}
	return s, nil
}

// loadYAML loads a schema from a YAML mapping. Decoding goes through
// yaml.Node rather than a map so that document order survives.
func loadYAML(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &record.ParseError{Path: path, Err: err}
	}
	if len(doc.Content) == 0 {
		return nil, &record.SchemaError{
			Msg: "schema must be a YAML mapping of field -> type",
		}
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, &record.SchemaError{
			Msg: "schema must be a YAML mapping of field -> type",
		}
	}

	s := &Schema{}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i]
		val := root.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return nil, &record.SchemaError{
				Msg: fmt.Sprintf("schema type for %s must be a scalar", key.Value),
			}
		}
		s.fields = append(s.fields, Field{
			Name: key.Value,
			Type: normalizeTypeTag(val.Value),
		})
	}
	return s, nil
}

// normalizeTypeTag folds type-tag aliases onto the canonical tags. Unknown
// tags are returned trimmed but otherwise untouched, so the "unknown schema
// type" message shows what the document actually said.
func normalizeTypeTag(tag string) string {
	trimmed := strings.TrimSpace(tag)
	switch strings.ToLower(trimmed) {
	case "str", "string", "text":
		return TypeStr
	case "int", "integer":
		return TypeInt
	case "float", "real", "double":
		return TypeFloat
	default:
		return trimmed
	}
}
