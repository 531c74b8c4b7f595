// =============================================================================
// datatool - Hierarchical Document Reader
// =============================================================================

package reader

import (
	"bufio"
	"os"

	"github.com/datatool-dev/datatool/internal/record"
)

// readJSON parses a whole hierarchical document once and shapes its root
// into a dataset: an object root becomes a one-element dataset, an array
// root becomes its elements truncated to maxRows. Any other root shape is a
// FormatError. Non-record array elements are passed through as-is; they
// surface as errors only in consumers that require record shape.
func readJSON(path string, maxRows int) (record.Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	root, err := record.DecodeJSON(bufio.NewReader(file))
	if err != nil {
		return nil, &record.ParseError{Path: path, Err: err}
	}

	switch root.Kind() {
	case record.KindObject:
		return record.Dataset{root}, nil
	case record.KindList:
		items := root.Items()
		if maxRows > 0 && len(items) > maxRows {
			items = items[:maxRows]
		}
		ds := make(record.Dataset, len(items))
		copy(ds, items)
		return ds, nil
	default:
		return nil, &record.FormatError{
			Msg: "JSON root must be an object or an array of objects",
		}
	}
}
