// =============================================================================
// datatool - Record Flattener
// =============================================================================
//
// Flattening turns a dataset of hierarchical records into a header plus
// rows of text cells for delimited output.
//
// The header is the lexicographically sorted union of every field name seen
// in any record. This is a deliberate normalization: output column order is
// deterministic regardless of record insertion order, unlike the delimited
// reader, which preserves header order as encountered when going the other
// direction.
//
// Cell rules, per field of each record:
//   - absent field        -> empty text
//   - null                -> empty text
//   - bool / number / str -> default textual conversion
//   - list / object       -> compact canonical JSON, so nested information
//                            is preserved re-encoded as a string cell
//
// =============================================================================

package flatten

import (
	"sort"

	"github.com/datatool-dev/datatool/internal/record"
)

// Flatten computes the sorted union header and one row of text cells per
// record. A non-record element fails the whole conversion with a ShapeError
// naming the offending index.
func Flatten(ds record.Dataset) (header []string, rows [][]string, err error) {
	seen := make(map[string]struct{})
	for i, rec := range ds {
		if !rec.IsObject() {
			return nil, nil, &record.ShapeError{Index: i, Kind: rec.Kind()}
		}
		for _, f := range rec.Fields() {
			if _, ok := seen[f.Name]; !ok {
				seen[f.Name] = struct{}{}
				header = append(header, f.Name)
			}
		}
	}
	sort.Strings(header)

	rows = make([][]string, len(ds))
	for i, rec := range ds {
		row := make([]string, len(header))
		for j, name := range header {
			row[j] = cellText(rec.Get(name))
		}
		rows[i] = row
	}

	return header, rows, nil
}

// cellText renders one field value as a flat cell.
func cellText(v *record.Value) string {
	if v == nil || v.IsNull() {
		return ""
	}
	if v.IsScalar() {
		return v.Text()
	}
	return record.Compact(v)
}
