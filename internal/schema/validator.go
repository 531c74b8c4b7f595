// =============================================================================
// datatool - Schema Validator
// =============================================================================
//
// Validation walks every record against every schema pair and collects
// human-readable findings. Findings are data, not errors: the scan never
// short-circuits and never fails, and the caller decides pass/fail on
// emptiness of the returned list.
//
// Rules, per (record, field) pair in (record index, schema order):
//   - absent field or empty text       -> "row {i}: missing {field}"
//     (absence and present-but-blank are deliberately the same state)
//   - tag int, value not parseable     -> "row {i}: field {f} expected int, got {v}"
//   - tag float, value not parseable   -> same with "expected float"
//   - tag str                          -> always passes
//   - unrecognized tag                 -> "unknown schema type for {f}: {tag}",
//     once per (record, field) pair, repeated across records
//
// Non-string values are checked against their textual form, so a record
// that arrived from a hierarchical document validates the same way it
// would after flattening to cells.
//
// =============================================================================

package schema

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/datatool-dev/datatool/internal/record"
)

// Validate checks every record in the dataset against the schema and
// returns the full list of findings. Rows are 1-indexed in messages. A
// non-record dataset element has no fields, so every schema field of that
// row is reported missing.
func Validate(ds record.Dataset, s *Schema) []string {
	var errs []string

	for i, rec := range ds {
		row := i + 1
		for _, f := range s.Fields() {
			errs = appendFieldErrors(errs, row, rec, f)
		}
	}

	return errs
}

// appendFieldErrors validates a single (record, schema field) pair.
func appendFieldErrors(errs []string, row int, rec *record.Value, f Field) []string {
	val := rec.Get(f.Name)
	if val == nil || val.IsNull() {
		return append(errs, fmt.Sprintf("row %d: missing %s", row, f.Name))
	}

	text := val.Text()
	if text == "" && val.IsScalar() {
		return append(errs, fmt.Sprintf("row %d: missing %s", row, f.Name))
	}

	switch f.Type {
	case TypeInt:
		if _, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64); err != nil {
			errs = append(errs, fmt.Sprintf("row %d: field %s expected int, got %q", row, f.Name, text))
		}
	case TypeFloat:
		if _, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err != nil {
			errs = append(errs, fmt.Sprintf("row %d: field %s expected float, got %q", row, f.Name, text))
		}
	case TypeStr:
		// Everything has a textual form; nothing to check.
	default:
		errs = append(errs, fmt.Sprintf("unknown schema type for %s: %s", f.Name, f.Type))
	}

	return errs
}
