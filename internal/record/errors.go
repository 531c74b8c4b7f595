// =============================================================================
// datatool - Error Kinds
// =============================================================================
//
// The core packages surface four error kinds. They carry no behavior beyond
// error and Unwrap; the CLI boundary maps them to exit codes and one-line
// messages. Validation findings are ordinary strings, never errors.
//
// =============================================================================

package record

import "fmt"

// FormatError reports a document whose root has the wrong shape, e.g. a JSON
// root that is neither an object nor an array of objects.
type FormatError struct {
	Msg string
}

func (e *FormatError) Error() string {
	return e.Msg
}

// ParseError reports a malformed row or document. Err is the underlying
// decoder error.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("parse error: %v", e.Err)
	}
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ShapeError reports a non-record element encountered where record shape is
// required, identified by its zero-based position in the dataset.
type ShapeError struct {
	Index int
	Kind  Kind
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("element %d is not a record (got %s)", e.Index, e.Kind)
}

// SchemaError reports a schema document whose root is not a mapping of
// field name to type tag.
type SchemaError struct {
	Msg string
}

func (e *SchemaError) Error() string {
	return e.Msg
}
